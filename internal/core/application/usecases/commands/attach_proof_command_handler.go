package commands

import (
	"context"

	"dispatch/internal/core/domain/model/job"
	"dispatch/internal/core/domain/model/kernel"
)

// AttachProofCommandHandler stores proof of delivery on an in-progress job. Once the
// job is DELIVERED the proof is frozen and the handler returns errs.ErrTerminalJob.
type AttachProofCommandHandler struct {
	uowFactory JobUoWFactory
	clock      kernel.Clock
}

func NewAttachProofCommandHandler(uowFactory JobUoWFactory, clock kernel.Clock) AttachProofCommandHandler {
	return AttachProofCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h AttachProofCommandHandler) Handle(ctx context.Context, cmd AttachProofCommand) (*job.Job, error) {
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

	proven, err := jobRepo.GetForUpdate(ctx, cmd.JobID())
	if err != nil {
		return nil, err
	}

	if err = proven.AttachProof(cmd.Actor(), cmd.Proof(), h.clock()); err != nil {
		return nil, err
	}

	if err = jobRepo.Update(ctx, proven); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return proven, nil
}
