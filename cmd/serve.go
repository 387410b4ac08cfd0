package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	root "domainintel"
	"domainintel/internal/aggregator"
	"domainintel/internal/api"
	"domainintel/internal/api/handler/v1handler"
	"domainintel/internal/config"
	"domainintel/internal/history"
	"domainintel/internal/poller"
	"domainintel/internal/session"
	"domainintel/internal/worker"
	"domainintel/pkg/logger"
	"domainintel/pkg/pricing"
	"domainintel/pkg/storage/postgres"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

// setupWorker starts the river workers running queued check batches. It is a
// no-op without a database.
func setupWorker(
	ctx context.Context,
	cfg *config.Config,
	pg *postgres.PgSQL,
	agg aggregator.Aggregator,
	sessions *session.Registry,
) func(ctx context.Context) {
	if pg == nil || !cfg.Worker.Enabled {
		return func(context.Context) {}
	}

	client, err := worker.Start(ctx, pg.Pool, agg, sessions, worker.Options{
		MaxWorkers:    cfg.Worker.MaxWorkers,
		JobsPerSecond: cfg.Worker.JobsPerSecond,
		Burst:         cfg.Worker.Burst,
	})
	if err != nil {
		logger.Fatal(ctx, "could not start workers", zap.Error(err))
	}

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping workers...")
		if err := client.Stop(ctx); err != nil {
			logger.Error(ctx, "could not stop workers", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server, status poller and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			strg, pg, closeStrg := openStorage(ctx, cfg)
			defer closeStrg()
			if pg != nil && cfg.Database.AutoMigrate {
				if err := pg.Migrate(ctx, root.Migrations, "migrations"); err != nil {
					logger.Fatal(ctx, "could not migrate database", zap.Error(err))
				}
			}

			table, err := pricing.Load(cfg.Pricing.Path)
			if err != nil {
				logger.Fatal(ctx, "could not load pricing table", zap.Error(err))
			}

			providers, closeProviders := newProviders(ctx, cfg)
			defer closeProviders()

			agg := newAggregator(strg, providers, cfg)
			sessions := session.NewRegistryWithOptions(session.Options{
				IdleTTL:     cfg.Sessions.IdleTTL,
				MaxSessions: cfg.Sessions.MaxSessions,
			})
			go sessions.Run(ctx)
			statusPoller := poller.New(newProber(cfg), poller.Options{
				Interval:    cfg.Poller.Interval,
				Concurrency: cfg.Poller.Concurrency,
			})

			stopWorker := setupWorker(ctx, cfg, pg, agg, sessions)
			stopWebserver := setupServer(ctx, cfg, api.Deps{Deps: v1handler.Deps{
				Aggregator: agg,
				History:    history.New(strg, table, statusPoller),
				Sessions:   sessions,
			}})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
			statusPoller.Stop()
			stopWorker(shutdownCtx)
		},
	}

	return cmd
}
