package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is the cache-aside store used by the API service layer for
// geocoding and translation results. Adapters themselves never cache;
// disablement and upstream failures must stay observable per call.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration)
}

// RedisCache backs Cache with a redis instance
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates a cache over the given redis address
func NewRedisCache(addr, password string, db int) *RedisCache {
	return &RedisCache{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
	}
}

// Get returns the cached value and whether it was present. Redis errors
// are treated as misses; the caller falls through to the upstream call.
func (c *RedisCache) Get(ctx context.Context, key string) (string, bool) {
	value, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return value, true
}

// Set stores value under key with a TTL, best-effort
func (c *RedisCache) Set(ctx context.Context, key, value string, ttl time.Duration) {
	c.client.Set(ctx, key, value, ttl)
}

// Ping verifies connectivity, for startup checks
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// NoopCache disables caching; every lookup is a miss
type NoopCache struct{}

// NewNoopCache creates a cache that stores nothing
func NewNoopCache() *NoopCache { return &NoopCache{} }

// Get always misses
func (*NoopCache) Get(context.Context, string) (string, bool) { return "", false }

// Set discards the value
func (*NoopCache) Set(context.Context, string, string, time.Duration) {}
