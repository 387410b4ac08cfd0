package worker

import (
	"context"
	"errors"
	"fmt"

	"domainintel/internal/aggregator"
	"domainintel/internal/session"
	"domainintel/pkg/logger"
	"domainintel/pkg/serrors"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RunChecksWorker runs queued check requests. Results land in the record store
// and in the last run of the requesting session.
type RunChecksWorker struct {
	river.WorkerDefaults[aggregator.RunChecksJob]

	agg      aggregator.Aggregator
	sessions *session.Registry
	// limiter throttles job starts so bursts of queued requests do not hammer
	// the WHOIS servers. Nil means unlimited.
	limiter *rate.Limiter
}

func NewRunChecksWorker(agg aggregator.Aggregator, sessions *session.Registry, options Options) *RunChecksWorker {
	w := &RunChecksWorker{agg: agg, sessions: sessions}
	if options.JobsPerSecond > 0 {
		burst := options.Burst
		if burst <= 0 {
			burst = 1
		}
		w.limiter = rate.NewLimiter(rate.Limit(options.JobsPerSecond), burst)
	}

	return w
}

func (w *RunChecksWorker) Work(ctx context.Context, job *river.Job[aggregator.RunChecksJob]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.String("session", job.Args.SessionID),
		zap.Strings("domains", job.Args.Domains))

	req, err := job.Args.Request()
	if err != nil {
		logger.Error(ctx, "invalid job arguments", zap.Error(err))

		return river.JobCancel(err) //nolint: wrapcheck
	}

	if w.limiter != nil {
		if err := w.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("could not wait for rate limiter: %w", err)
		}
	}

	batch, err := w.agg.RunChecks(ctx, w.sessions.Get(job.Args.SessionID), req)
	if err != nil {
		if errors.Is(err, serrors.ErrBadRequest) {
			return river.JobCancel(err) //nolint: wrapcheck
		}
		logger.Error(ctx, "error running checks", zap.Error(err))

		return fmt.Errorf("could not run checks: %w", err)
	}

	for _, warning := range batch.Warnings {
		logger.Warn(ctx, "check run warning", zap.String("warning", warning))
	}
	logger.Info(ctx, "checks completed", zap.Int("records", len(batch.Records)))

	return nil
}
