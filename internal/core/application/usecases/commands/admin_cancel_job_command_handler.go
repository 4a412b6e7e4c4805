package commands

import (
	"context"

	"dispatch/internal/core/domain/model/job"
)

// AdminCancelJobCommandHandler runs the cancel event as an admin through the lifecycle driver.
type AdminCancelJobCommandHandler struct {
	advance AdvanceJobCommandHandler
}

func NewAdminCancelJobCommandHandler(advance AdvanceJobCommandHandler) AdminCancelJobCommandHandler {
	return AdminCancelJobCommandHandler{advance: advance}
}

func (h AdminCancelJobCommandHandler) Handle(ctx context.Context, cmd AdminCancelJobCommand) (*job.Job, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	advance, err := NewAdvanceJobCommand(cmd.JobID(), job.NewAdminActor(), job.CancelPayload{})
	if err != nil {
		return nil, err
	}

	return h.advance.Handle(ctx, advance)
}
