package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues background jobs.
type JobStorage interface {
	// AddJob inserts a job and reports whether it was actually added; false
	// means a unique job with the same arguments already exists. Inside a
	// transaction the job only becomes visible on commit.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
