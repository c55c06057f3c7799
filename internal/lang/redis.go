package lang

import (
	"context"
	"errors"
	"fmt"

	dnderr "github.com/KirkDiggler/thalassophobia/internal/errors"
	"github.com/redis/go-redis/v9"
	"golang.org/x/text/language"
)

const tableKeyPattern = "lang:%s"

type redisTable struct {
	client redis.UniversalClient
}

// NewRedis creates a table that keeps one hash per language
func NewRedis(client redis.UniversalClient) Table {
	if client == nil {
		panic("redis client is required")
	}
	return &redisTable{client: client}
}

func (t *redisTable) Put(ctx context.Context, tag language.Tag, key Key, value string) error {
	if err := key.Validate(); err != nil {
		return err
	}

	if err := t.client.HSet(ctx, fmt.Sprintf(tableKeyPattern, tag), key.String(), value).Err(); err != nil {
		return fmt.Errorf("failed to store %s string %s: %w", tag, key, err)
	}
	return nil
}

func (t *redisTable) Get(ctx context.Context, tag language.Tag, key Key) (string, error) {
	value, err := t.client.HGet(ctx, fmt.Sprintf(tableKeyPattern, tag), key.String()).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", dnderr.NotFoundf("no %s string for %s", tag, key)
		}
		return "", fmt.Errorf("failed to load %s string %s: %w", tag, key, err)
	}
	return value, nil
}
