package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/thalassophobia/internal/definition"
	dnderr "github.com/KirkDiggler/thalassophobia/internal/errors"
	"github.com/KirkDiggler/thalassophobia/internal/uuid"
)

const (
	definitionKeyPrefix   = "catalog:def:"
	handleKeyPrefix       = "catalog:handle:"
	relationshipKeyPrefix = "catalog:rel:"
	relationshipsKey      = "catalog:rels:%s"
	pairKey               = "catalog:pair:%s:%s:%s"

	defaultCacheSize = 256
	defaultCacheTTL  = 10 * time.Minute
)

// RedisConfig configures the Redis-backed catalog
type RedisConfig struct {
	Client        redis.UniversalClient
	UUIDGenerator uuid.Generator
	CacheSize     int
	CacheTTL      time.Duration
}

type redisService struct {
	client        redis.UniversalClient
	uuidGenerator uuid.Generator
	handles       *expirable.LRU[string, definition.Handle]
}

// NewRedis creates a Redis-backed catalog with default configuration
func NewRedis(client redis.UniversalClient) Service {
	return NewRedisService(&RedisConfig{
		Client:        client,
		UUIDGenerator: uuid.NewGoogleUUIDGenerator(),
	})
}

// NewRedisService creates a Redis-backed catalog
func NewRedisService(cfg *RedisConfig) Service {
	if cfg == nil || cfg.Client == nil {
		panic("redis client is required")
	}

	generator := cfg.UUIDGenerator
	if generator == nil {
		generator = uuid.NewGoogleUUIDGenerator()
	}

	size := cfg.CacheSize
	if size <= 0 {
		size = defaultCacheSize
	}
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}

	return &redisService{
		client:        cfg.Client,
		uuidGenerator: generator,
		handles:       expirable.NewLRU[string, definition.Handle](size, nil, ttl),
	}
}

func (s *redisService) CreateHandle(ctx context.Context, def *definition.Definition) (definition.Handle, error) {
	if def == nil {
		return "", dnderr.InvalidArgumentf("definition is required")
	}

	id := def.Key().String()
	if handle, ok := s.handles.Get(id); ok {
		return handle, nil
	}

	defKey := definitionKeyPrefix + id
	handle := definition.Handle(s.uuidGenerator.New())

	created, err := s.client.SetNX(ctx, defKey, string(handle), 0).Result()
	if err != nil {
		return "", fmt.Errorf("failed to reserve handle for %s: %w", id, err)
	}

	if !created {
		existing, err := s.client.Get(ctx, defKey).Result()
		if err != nil {
			return "", fmt.Errorf("failed to load handle for %s: %w", id, err)
		}
		handle = definition.Handle(existing)
	}

	if err := s.client.HSet(ctx, handleKeyPrefix+string(handle),
		"name", def.Name(),
		"token", def.Token(),
		"tier", string(def.Tier()),
	).Err(); err != nil {
		return "", fmt.Errorf("failed to store handle %s: %w", handle, err)
	}

	s.handles.Add(id, handle)
	return handle, nil
}

func (s *redisService) RegisterRelationship(ctx context.Context, pair Pair) error {
	if pair.Replaced == "" || pair.Replacement == "" {
		return dnderr.InvalidArgumentf("relationship %s needs both handles", pair.Type)
	}

	data, err := json.Marshal(pair)
	if err != nil {
		return fmt.Errorf("failed to serialize relationship: %w", err)
	}

	id := s.uuidGenerator.New()

	reserved, err := s.client.SetNX(ctx, fmt.Sprintf(pairKey, pair.Type, pair.Replaced, pair.Replacement), id, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to reserve relationship %s -> %s: %w", pair.ReplacedName, pair.ReplacementName, err)
	}
	if !reserved {
		return nil
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, relationshipKeyPrefix+id, data, 0)
	pipe.RPush(ctx, fmt.Sprintf(relationshipsKey, pair.Type), id)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to register relationship %s -> %s: %w", pair.ReplacedName, pair.ReplacementName, err)
	}
	return nil
}

func (s *redisService) Relationships(ctx context.Context, relType RelationshipType) ([]Pair, error) {
	ids, err := s.client.LRange(ctx, fmt.Sprintf(relationshipsKey, relType), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list %s relationships: %w", relType, err)
	}

	pairs := make([]Pair, len(ids))
	g, ctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			data, err := s.client.Get(ctx, relationshipKeyPrefix+id).Bytes()
			if err != nil {
				return fmt.Errorf("failed to get relationship %s: %w", id, err)
			}
			if err := json.Unmarshal(data, &pairs[i]); err != nil {
				return fmt.Errorf("failed to parse relationship %s: %w", id, err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return pairs, nil
}

func (s *redisService) SetTier(ctx context.Context, handle definition.Handle, tier definition.Tier) error {
	key := handleKeyPrefix + string(handle)

	exists, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("failed to check handle %s: %w", handle, err)
	}
	if exists == 0 {
		return dnderr.NotFoundf("handle %s not found", handle)
	}

	if err := s.client.HSet(ctx, key, "tier", string(tier)).Err(); err != nil {
		return fmt.Errorf("failed to set tier of %s: %w", handle, err)
	}
	return nil
}

func (s *redisService) Tier(ctx context.Context, handle definition.Handle) (definition.Tier, error) {
	tier, err := s.client.HGet(ctx, handleKeyPrefix+string(handle), "tier").Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", dnderr.NotFoundf("handle %s not found", handle)
		}
		return "", fmt.Errorf("failed to get tier of %s: %w", handle, err)
	}
	return definition.Tier(tier), nil
}
