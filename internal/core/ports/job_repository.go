// Package ports defines the contracts between the dispatch core and its infrastructure:
// repositories bound to a unit of work, and the outbound notification collaborators.
package ports

import (
	"context"

	"dispatch/internal/core/domain/model/job"
	"dispatch/internal/core/domain/model/kernel"
)

// JobRepository is the Job Record Store.
type JobRepository interface {
	// Add persists a newly published job.
	// Returns errs.ErrDuplicateActiveJob if the order already has an active job.
	Add(ctx context.Context, aggregate *job.Job) error

	// Update writes the job if its stored version still matches the one it was read with,
	// and bumps the version. A lost race returns errs.ErrBusy.
	Update(ctx context.Context, aggregate *job.Job) error

	// Get reads a job without locking it.
	Get(ctx context.Context, id kernel.UUID) (*job.Job, error)

	// GetForUpdate reads a job and holds its row lock until the transaction ends.
	// Waiting longer than the configured lock timeout returns errs.ErrBusy.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*job.Job, error)

	// GetActiveByOrderForUpdate locks the order's active job, if any.
	// Returns errs.ErrObjectNotFound when the order has no active job.
	GetActiveByOrderForUpdate(ctx context.Context, orderID kernel.UUID) (*job.Job, error)
}
