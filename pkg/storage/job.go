package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage defines the minimal interface for enqueueing background jobs.
// Implementations are responsible for persisting the job into the underlying
// queue backend. The args parameter contains the job payload and opts can be
// used to customize insertion behavior (e.g., queue name, delay, priority).
//
// Inserts should be atomic with respect to any surrounding transaction when
// the backend supports it; this is what makes "store broadcast row + enqueue
// delivery job" a single unit of work.
type JobStorage interface {
	// AddJob enqueues a new job with the given arguments. The boolean result
	// reports whether a job was actually inserted (false when uniqueness
	// constraints marked it as a duplicate).
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
