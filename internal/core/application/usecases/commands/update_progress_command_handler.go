package commands

import (
	"context"

	"dispatch/internal/core/domain/model/job"
	"dispatch/internal/core/domain/model/kernel"
)

// UpdateProgressCommandHandler stores progress telemetry. It never changes status and
// therefore notifies nobody.
type UpdateProgressCommandHandler struct {
	uowFactory JobUoWFactory
	clock      kernel.Clock
}

func NewUpdateProgressCommandHandler(uowFactory JobUoWFactory, clock kernel.Clock) UpdateProgressCommandHandler {
	return UpdateProgressCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h UpdateProgressCommandHandler) Handle(ctx context.Context, cmd UpdateProgressCommand) (*job.Job, error) {
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

	tracked, err := jobRepo.GetForUpdate(ctx, cmd.JobID())
	if err != nil {
		return nil, err
	}

	if err = tracked.UpdateProgress(cmd.Actor(), cmd.Percent(), cmd.Position(), h.clock()); err != nil {
		return nil, err
	}

	if err = jobRepo.Update(ctx, tracked); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return tracked, nil
}
