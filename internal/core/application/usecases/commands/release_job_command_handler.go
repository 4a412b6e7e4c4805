package commands

import (
	"context"

	"dispatch/internal/core/domain/model/job"
	"dispatch/internal/core/domain/model/kernel"
)

// ReleaseJobCommandHandler returns an ASSIGNED job to the pool. The owning agent or an
// admin may release; availableSince restarts so the job is ordered as newly pooled.
type ReleaseJobCommandHandler struct {
	uowFactory JobUoWFactory
	fanout     Fanout
	clock      kernel.Clock
}

func NewReleaseJobCommandHandler(uowFactory JobUoWFactory, fanout Fanout, clock kernel.Clock) ReleaseJobCommandHandler {
	return ReleaseJobCommandHandler{
		uowFactory: uowFactory,
		fanout:     fanout,
		clock:      clock,
	}
}

func (h ReleaseJobCommandHandler) Handle(ctx context.Context, cmd ReleaseJobCommand) (*job.Job, error) {
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

	released, err := jobRepo.GetForUpdate(ctx, cmd.JobID())
	if err != nil {
		return nil, err
	}

	decision, err := released.Apply(cmd.Actor(), job.ReleasePayload{}, h.clock())
	if err != nil {
		return nil, err
	}

	if err = jobRepo.Update(ctx, released); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.fanout.Transitioned(ctx, released, decision)
	return released, nil
}
