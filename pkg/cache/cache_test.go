package cache_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"domainintel/pkg/cache"
	"domainintel/pkg/logger"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

type brokenCache struct {
	healthy bool
	sets    int
}

func (b *brokenCache) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("connection refused")
}

func (b *brokenCache) Set(context.Context, string, string, time.Duration) error {
	b.sets++

	return errors.New("connection refused")
}

func (b *brokenCache) IsHealthy() bool { return b.healthy }

func TestMemory(t *testing.T) {
	ctx := context.Background()
	c := cache.NewMemory(time.Second)

	require.NoError(t, c.Set(ctx, "whois:example.com", "raw", time.Minute))
	v, ok, err := c.Get(ctx, "whois:example.com")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "raw", v)

	require.NoError(t, c.Set(ctx, "short", "lived", 50*time.Millisecond))
	require.Eventually(t, func() bool {
		_, ok, _ := c.Get(ctx, "short")

		return !ok
	}, time.Second, 10*time.Millisecond)

	_, ok, err = c.Get(ctx, "missing")
	require.NoError(t, err)
	require.False(t, ok)
	require.True(t, c.IsHealthy())
}

func TestFallback(t *testing.T) {
	ctx := context.Background()

	t.Run("healthy primary serves reads", func(t *testing.T) {
		primary, secondary := cache.NewMemory(0), cache.NewMemory(0)
		f := cache.NewFallback(primary, secondary)

		require.NoError(t, f.Set(ctx, "k", "v", time.Minute))

		v, ok, err := primary.Get(ctx, "k")
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, "v", v)

		v, ok, err = secondary.Get(ctx, "k")
		require.NoError(t, err)
		require.True(t, ok, "writes go to both caches")
		require.Equal(t, "v", v)
	})

	t.Run("failing primary falls back", func(t *testing.T) {
		primary := &brokenCache{healthy: true}
		secondary := cache.NewMemory(0)
		f := cache.NewFallback(primary, secondary)

		err := f.Set(ctx, "k", "v", time.Minute)
		require.Error(t, err, "primary error is reported")
		require.Equal(t, 1, primary.sets)

		v, ok, err := f.Get(ctx, "k")
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, "v", v)
	})

	t.Run("unhealthy primary is skipped", func(t *testing.T) {
		primary := &brokenCache{healthy: false}
		f := cache.NewFallback(primary, cache.NewMemory(0))

		require.NoError(t, f.Set(ctx, "k", "v", time.Minute))
		require.Zero(t, primary.sets)
		require.True(t, f.IsHealthy())
	})
}

func TestNewWithoutRedis(t *testing.T) {
	c, closeFn := cache.New(context.Background(), cache.Options{})
	defer func() { require.NoError(t, closeFn()) }()

	_, isMemory := c.(*cache.Memory)
	require.True(t, isMemory)
}

func TestRedisUnreachable(t *testing.T) {
	ctx := context.Background()
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 100 * time.Millisecond})
	defer func() { _ = client.Close() }()

	r := cache.NewRedis(ctx, client, time.Hour)
	require.False(t, r.IsHealthy())

	_, _, err := r.Get(ctx, "k")
	require.Error(t, err)
}

func startRedis(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7",
			ExposedPorts: []string{"6379"},
			WaitingFor:   wait.ForListeningPort("6379"),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	return fmt.Sprintf("%s:%d", host, port.Int())
}

func TestRedis(t *testing.T) {
	ctx := context.Background()
	addr := startRedis(t)

	c, closeFn := cache.New(ctx, cache.Options{RedisAddr: addr})
	defer func() { require.NoError(t, closeFn()) }()
	require.True(t, c.IsHealthy())

	require.NoError(t, c.Set(ctx, "whois:example.com", "Registrar: IANA", time.Minute))

	client := redis.NewClient(&redis.Options{Addr: addr})
	defer func() { _ = client.Close() }()
	stored, err := client.Get(ctx, "whois:example.com").Result()
	require.NoError(t, err)
	require.Equal(t, "Registrar: IANA", stored)

	r := cache.NewRedis(ctx, client, time.Minute)
	v, ok, err := r.Get(ctx, "whois:example.com")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "Registrar: IANA", v)

	_, ok, err = r.Get(ctx, "missing")
	require.NoError(t, err)
	require.False(t, ok)
}
