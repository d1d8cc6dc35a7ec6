package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/emre/postova/internal/pkg/logger"
)

// RedisCache is a PageCache backed by redis. Expiry is delegated to the
// redis key TTL.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates a redis-backed page cache.
func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

// GetOrCompute implements PageCache. Redis errors degrade to computing the
// value directly; a broken cache must not take the feed down with it.
func (c *RedisCache) GetOrCompute(ctx context.Context, key string, ttl time.Duration, compute ComputeFn) ([]byte, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, redis.Nil) {
		logger.Warn().Err(err).Str("key", key).Msg("Page cache read failed, computing directly")
	}

	data, err = compute(ctx)
	if err != nil {
		return nil, err
	}

	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("Page cache write failed")
	}

	return data, nil
}
