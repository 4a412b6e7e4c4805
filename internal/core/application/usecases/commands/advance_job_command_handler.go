package commands

import (
	"context"

	"dispatch/internal/core/domain/model/earning"
	"dispatch/internal/core/domain/model/job"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"
)

// AdvanceJobCommandHandler is the lifecycle driver.
//
// Within one transaction it locks the job, lets the state machine decide, applies the
// effects and, for a completed delivery, appends the earning entry. Either all of it is
// committed or none of it. The ledger's unique index on job_id makes a second completion
// that somehow got past the lock fail with errs.ErrDuplicateEntry.
type AdvanceJobCommandHandler struct {
	uowFactory UoWFactory
	fees       services.FeeCalculator
	fanout     Fanout
	clock      kernel.Clock
}

func NewAdvanceJobCommandHandler(
	uowFactory UoWFactory,
	fees services.FeeCalculator,
	fanout Fanout,
	clock kernel.Clock,
) AdvanceJobCommandHandler {
	return AdvanceJobCommandHandler{
		uowFactory: uowFactory,
		fees:       fees,
		fanout:     fanout,
		clock:      clock,
	}
}

func (h AdvanceJobCommandHandler) Handle(ctx context.Context, cmd AdvanceJobCommand) (*job.Job, error) {
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

	advanced, err := jobRepo.GetForUpdate(ctx, cmd.JobID())
	if err != nil {
		return nil, err
	}

	decision, err := advanced.Apply(cmd.Actor(), cmd.Payload(), h.clock())
	if err != nil {
		return nil, err
	}

	if err = jobRepo.Update(ctx, advanced); err != nil {
		return nil, err
	}

	if decision.Has(job.EffectRecordEarnings) {
		if err = h.recordEarning(ctx, uow, advanced); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.fanout.Transitioned(ctx, advanced, decision)
	return advanced, nil
}

func (h AdvanceJobCommandHandler) recordEarning(ctx context.Context, uow UoW, delivered *job.Job) error {
	amount, err := h.fees.Calculate(delivered)
	if err != nil {
		return err
	}

	entry, err := earning.NewEntry(
		kernel.NewUUID(),
		delivered.ID(),
		*delivered.AgentID(),
		amount,
		*delivered.DeliveredAt(),
	)
	if err != nil {
		return err
	}

	return uow.EarningRepository().Add(ctx, entry)
}
