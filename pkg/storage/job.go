package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage defines the minimal interface for enqueueing background jobs.
// Implementations persist the job into the underlying queue backend so that it
// commits or rolls back together with the surrounding transaction, if any.
type JobStorage interface {
	// AddJob enqueues a new job with the given arguments. It returns false when
	// the queue skipped the insert as a duplicate of a unique job.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
