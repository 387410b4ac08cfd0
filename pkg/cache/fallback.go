package cache

import (
	"context"
	"time"

	"domainintel/pkg/logger"

	"go.uber.org/zap"
)

// Fallback reads from primary while it is healthy and from fallback otherwise.
// Writes go to both so that a failover does not start cold.
type Fallback struct {
	primary  Cache
	fallback Cache
}

func NewFallback(primary, fallback Cache) *Fallback {
	return &Fallback{primary: primary, fallback: fallback}
}

func (f *Fallback) Get(ctx context.Context, key string) (string, bool, error) {
	if f.primary.IsHealthy() {
		v, ok, err := f.primary.Get(ctx, key)
		if err == nil {
			return v, ok, nil
		}
		logger.Debug(ctx, "primary cache failed, reading fallback", zap.Error(err))
	}

	return f.fallback.Get(ctx, key)
}

func (f *Fallback) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	var primaryErr error
	if f.primary.IsHealthy() {
		primaryErr = f.primary.Set(ctx, key, value, ttl)
	}

	if err := f.fallback.Set(ctx, key, value, ttl); err != nil {
		return err
	}

	return primaryErr
}

func (f *Fallback) IsHealthy() bool {
	return f.primary.IsHealthy() || f.fallback.IsHealthy()
}
