package commands

import (
	"context"

	"dispatch/internal/core/domain/model/job"
	"dispatch/internal/core/domain/model/kernel"
)

// ClaimJobCommandHandler is the race-free claim.
//
// The job row is read with a row lock held until commit, so of two agents claiming the
// same job the second one waits and then sees the first one's assignment:
//
//	agent A: lock ─ check AVAILABLE ─ assign ─ commit
//	agent B:   lock (waits) ──────────────────────── check ─ errs.ErrAlreadyClaimed
//
// A wait longer than the configured lock timeout is reported as errs.ErrBusy.
type ClaimJobCommandHandler struct {
	uowFactory AssignUoWFactory
	fanout     Fanout
	clock      kernel.Clock
}

func NewClaimJobCommandHandler(uowFactory AssignUoWFactory, fanout Fanout, clock kernel.Clock) ClaimJobCommandHandler {
	return ClaimJobCommandHandler{
		uowFactory: uowFactory,
		fanout:     fanout,
		clock:      clock,
	}
}

func (h ClaimJobCommandHandler) Handle(ctx context.Context, cmd ClaimJobCommand) (*job.Job, error) {
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
	agentRepo := uow.AgentRepository()

	claimed, err := jobRepo.GetForUpdate(ctx, cmd.JobID())
	if err != nil {
		return nil, err
	}

	decision, err := claimed.Claim(cmd.Actor(), cmd.AgentID(), h.clock())
	if err != nil {
		return nil, err
	}

	claimant, err := agentRepo.Get(ctx, cmd.AgentID())
	if err != nil {
		return nil, err
	}
	if err = claimant.ValidateCanClaim(); err != nil {
		return nil, err
	}

	if err = jobRepo.Update(ctx, claimed); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.fanout.Transitioned(ctx, claimed, decision)
	return claimed, nil
}
