package commands

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/job"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// ForceAssignCommandHandler assigns the order's active job to an agent chosen by an admin.
//
// Business rules:
//   - no active job: a job is published and assigned in the same transaction
//   - AVAILABLE: the job is claimed on the agent's behalf
//   - ASSIGNED to the same agent: nothing changes
//   - ASSIGNED to another agent: the job is released and re-claimed in the same
//     transaction, and the previous agent is told after commit
//   - PICKED_UP or later: errs.ErrInvalidTransition, the goods are already with someone
type ForceAssignCommandHandler struct {
	uowFactory AssignUoWFactory
	fanout     Fanout
	clock      kernel.Clock
}

func NewForceAssignCommandHandler(uowFactory AssignUoWFactory, fanout Fanout, clock kernel.Clock) ForceAssignCommandHandler {
	return ForceAssignCommandHandler{
		uowFactory: uowFactory,
		fanout:     fanout,
		clock:      clock,
	}
}

func (h ForceAssignCommandHandler) Handle(ctx context.Context, cmd ForceAssignCommand) (*job.Job, error) {
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

	assignee, err := agentRepo.Get(ctx, cmd.AgentID())
	if err != nil {
		return nil, err
	}
	if err = assignee.ValidateCanClaim(); err != nil {
		return nil, err
	}

	admin := job.NewAdminActor()
	now := h.clock()

	assigned, err := jobRepo.GetActiveByOrderForUpdate(ctx, cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return h.publishAssigned(ctx, uow, jobRepo, cmd, admin, now)
	}
	if err != nil {
		return nil, err
	}

	if assigned.Status() == job.Assigned && assigned.IsOwnedBy(cmd.AgentID()) {
		return assigned, nil
	}

	var previous *kernel.UUID
	if assigned.Status() == job.Assigned {
		holder := *assigned.AgentID()
		previous = &holder
		if _, err = assigned.Apply(admin, job.ReleasePayload{}, now); err != nil {
			return nil, err
		}
	}
	if assigned.Status() != job.Available {
		return nil, errs.NewInvalidTransitionError(assigned.Status(), job.EventClaim)
	}

	decision, err := assigned.Claim(admin, cmd.AgentID(), now)
	if err != nil {
		return nil, err
	}

	if err = jobRepo.Update(ctx, assigned); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if previous != nil {
		h.fanout.Revoked(ctx, assigned, *previous)
	}
	h.fanout.Transitioned(ctx, assigned, decision)
	return assigned, nil
}

func (h ForceAssignCommandHandler) publishAssigned(
	ctx context.Context,
	tx TxManager,
	jobRepo ports.JobRepository,
	cmd ForceAssignCommand,
	admin job.Actor,
	now time.Time,
) (*job.Job, error) {
	published, err := job.NewJob(kernel.NewUUID(), cmd.OrderID(), cmd.DistanceKm(), cmd.ExpectedDeliveryTime(), now)
	if err != nil {
		return nil, err
	}

	decision, err := published.Claim(admin, cmd.AgentID(), now)
	if err != nil {
		return nil, err
	}

	if err = jobRepo.Add(ctx, published); err != nil {
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}

	h.fanout.Transitioned(ctx, published, decision)
	return published, nil
}
