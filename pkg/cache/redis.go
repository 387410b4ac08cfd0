package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"domainintel/pkg/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	defaultHealthRetry = 30 * time.Second
	pingTimeout        = 2 * time.Second
)

// Redis is a Cache backed by a redis server. After a failed command it
// reports itself unhealthy until the retry period elapses.
type Redis struct {
	client redis.UniversalClient
	retry  time.Duration

	mu        sync.Mutex
	healthy   bool
	downUntil time.Time
	now       func() time.Time
}

// NewRedis pings client once to establish the initial health.
func NewRedis(ctx context.Context, client redis.UniversalClient, retry time.Duration) *Redis {
	if retry <= 0 {
		retry = defaultHealthRetry
	}
	r := &Redis{client: client, retry: retry, now: time.Now}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Warn(ctx, "redis unavailable, using in-memory cache", zap.Error(err))
		r.markDown()
	} else {
		r.healthy = true
	}

	return r
}

func (r *Redis) markDown() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.healthy = false
	r.downUntil = r.now().Add(r.retry)
}

func (r *Redis) markUp() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.healthy = true
}

// IsHealthy reports true when redis answered last time or the retry period is over.
func (r *Redis) IsHealthy() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.healthy || !r.now().Before(r.downUntil)
}

func (r *Redis) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := r.client.Get(ctx, key).Result()
	switch {
	case err == nil:
		r.markUp()

		return v, true, nil
	case errors.Is(err, redis.Nil):
		r.markUp()

		return "", false, nil
	default:
		r.markDown()

		return "", false, fmt.Errorf("could not get %q from redis: %w", key, err)
	}
}

func (r *Redis) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		r.markDown()

		return fmt.Errorf("could not set %q in redis: %w", key, err)
	}
	r.markUp()

	return nil
}
