package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues background jobs.
type JobStorage interface {
	// AddJob enqueues a new job with the given arguments. Inside a transaction the
	// job only becomes visible once the transaction commits. The returned bool is
	// false when the job was skipped as a duplicate of a unique job.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
