package postgres_test

import (
	"context"
	"testing"
	"time"

	"domainintel"
	"domainintel/pkg/logger"
	"domainintel/pkg/storage/postgres"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

// setupTestDB starts a throwaway postgres, applies all migrations and
// terminates the container when the test ends.
func setupTestDB(t *testing.T) *postgres.PgSQL {
	t.Helper()
	ctx := context.Background()

	opts := postgres.Options{
		Username:           "domainintel",
		Password:           "domainintel",
		Database:           "domainintel_test",
		SslMode:            "disable",
		ConnMaxLifetime:    time.Minute,
		ConnMaxIdleTime:    time.Minute,
		MaxOpenConnections: 5,
		MaxIdleConnections: 1,
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:17-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     opts.Username,
				"POSTGRES_PASSWORD": opts.Password,
				"POSTGRES_DB":       opts.Database,
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	opts.Host, err = container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)
	opts.Port = port.Int()

	pg, err := postgres.New(ctx, opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pg.Close() })

	require.Eventually(t, func() bool {
		return pg.Ping(ctx) == nil
	}, 30*time.Second, 250*time.Millisecond)
	require.NoError(t, pg.Migrate(ctx, domainintel.Migrations, "migrations"))

	return pg
}

func TestPgSQL_MigrateIsIdempotent(t *testing.T) {
	pg := setupTestDB(t)

	require.NoError(t, pg.Migrate(context.Background(), domainintel.Migrations, "migrations"))
}

func TestNew_InvalidOptions(t *testing.T) {
	_, err := postgres.New(context.Background(), postgres.Options{Host: "localhost", Port: -1})
	require.Error(t, err)
}
