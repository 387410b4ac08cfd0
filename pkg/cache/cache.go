// Package cache stores raw provider responses for a limited time. Redis is the
// primary backend; an in-process go-cache instance takes over whenever redis
// is not configured or unhealthy.
package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is a string key/value store with per-entry expiration.
type Cache interface {
	// Get returns the cached value and whether it was found. A miss is not an error.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	IsHealthy() bool
}

// Options configures New.
type Options struct {
	// RedisAddr enables the redis backend when non-empty.
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	// CleanupInterval is how often expired in-memory entries are purged.
	CleanupInterval time.Duration
	// HealthRetry is how long an unhealthy redis is skipped before it is tried again.
	HealthRetry time.Duration
}

// New builds the cache described by options. The returned close function
// releases the redis client, if any.
func New(ctx context.Context, options Options) (Cache, func() error) {
	memory := NewMemory(options.CleanupInterval)
	if options.RedisAddr == "" {
		return memory, func() error { return nil }
	}

	client := redis.NewClient(&redis.Options{
		Addr:     options.RedisAddr,
		Password: options.RedisPassword,
		DB:       options.RedisDB,
	})

	return NewFallback(NewRedis(ctx, client, options.HealthRetry), memory), client.Close
}
