package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/thalassophobia/internal/catalog"
	"github.com/KirkDiggler/thalassophobia/internal/definition"
)

func main() {
	ctx := context.Background()

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatalf("Failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)
	defer client.Close()

	if _, pingErr := client.Ping(ctx).Result(); pingErr != nil {
		log.Fatalf("Failed to connect to Redis: %v", pingErr)
	}

	service := catalog.NewRedis(client)

	defKeys, err := client.Keys(ctx, "catalog:def:*").Result()
	if err != nil {
		log.Fatalf("Failed to get definition keys: %v", err)
	}

	fmt.Printf("Found %d definitions:\n", len(defKeys))
	for _, key := range defKeys {
		handle, getErr := client.Get(ctx, key).Result()
		if getErr != nil {
			fmt.Printf("  %s: ERROR - %v\n", key, getErr)
			continue
		}

		tier, tierErr := service.Tier(ctx, definition.Handle(handle))
		if tierErr != nil {
			fmt.Printf("  %s: %s (tier unknown: %v)\n", strings.TrimPrefix(key, "catalog:def:"), handle, tierErr)
			continue
		}
		fmt.Printf("  %s: %s [%s]\n", strings.TrimPrefix(key, "catalog:def:"), handle, tier)
	}

	pairs, err := service.Relationships(ctx, catalog.RelationshipContagious)
	if err != nil {
		log.Fatalf("Failed to get relationships: %v", err)
	}

	fmt.Printf("\nFound %d %s pairs:\n", len(pairs), catalog.RelationshipContagious)
	for _, pair := range pairs {
		fmt.Printf("  %s -> %s\n", pair.ReplacedName, pair.ReplacementName)
	}
}
