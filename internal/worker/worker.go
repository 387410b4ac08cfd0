package worker

import (
	"context"
	"fmt"

	"domainintel/internal/aggregator"
	"domainintel/internal/session"
	"domainintel/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
)

type Options struct {
	// MaxWorkers bounds concurrently running jobs of the default queue.
	MaxWorkers int
	// JobsPerSecond and Burst throttle job starts. Zero disables throttling.
	JobsPerSecond float64
	Burst         int
}

func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	agg aggregator.Aggregator,
	sessions *session.Registry,
	options Options) (*river.Client[pgx.Tx], error) {
	if options.MaxWorkers <= 0 {
		options.MaxWorkers = 10
	}

	workers := river.NewWorkers()
	river.AddWorker(workers, NewRunChecksWorker(agg, sessions, options))

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: options.MaxWorkers},
		},
		Workers: workers,
		Logger:  logger.Slog(logger.Named(ctx, "river")),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
