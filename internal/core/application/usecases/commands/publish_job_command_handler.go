package commands

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/job"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// PublishJobCommandHandler adds a job to the pool when an order is placed.
//
// The order must not already have an active job. The check runs inside the transaction,
// and the repository maps a concurrent insert that slips past it (unique index on the
// active order) to the same errs.ErrDuplicateActiveJob.
type PublishJobCommandHandler struct {
	uowFactory JobUoWFactory
	fanout     Fanout
	clock      kernel.Clock
}

func NewPublishJobCommandHandler(uowFactory JobUoWFactory, fanout Fanout, clock kernel.Clock) PublishJobCommandHandler {
	return PublishJobCommandHandler{
		uowFactory: uowFactory,
		fanout:     fanout,
		clock:      clock,
	}
}

// Handle creates the job and announces it to agents after commit.
func (h PublishJobCommandHandler) Handle(ctx context.Context, cmd PublishJobCommand) (*job.Job, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	jobRepo := uow.JobRepository()

	_, err := jobRepo.GetActiveByOrderForUpdate(ctx, cmd.OrderID())
	switch {
	case err == nil:
		return nil, errs.ErrDuplicateActiveJob
	case !errors.Is(err, errs.ErrObjectNotFound):
		return nil, err
	}

	published, err := job.NewJob(
		kernel.NewUUID(),
		cmd.OrderID(),
		cmd.DistanceKm(),
		cmd.ExpectedDeliveryTime(),
		h.clock(),
	)
	if err != nil {
		return nil, err
	}

	if err = jobRepo.Add(ctx, published); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.fanout.JobPooled(ctx, published)
	return published, nil
}
