package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrAdminCancelJobCommandIsNotConstructed = errors.New(
	"AdminCancelJobCommand must be created via NewAdminCancelJobCommand constructor",
)

// AdminCancelJobCommand pulls an in-progress job away from its agent and puts it back
// in the pool.
type AdminCancelJobCommand struct {
	jobID kernel.UUID
	guard guard.ConstructorGuard
}

func NewAdminCancelJobCommand(jobID kernel.UUID) (AdminCancelJobCommand, error) {
	if err := jobID.Validate(); err != nil {
		return AdminCancelJobCommand{}, errs.NewValueIsRequiredErrorWithCause("jobID", err)
	}
	return AdminCancelJobCommand{jobID: jobID, guard: guard.NewConstructorGuard()}, nil
}

func (c AdminCancelJobCommand) Validate() error {
	return c.guard.Validate(ErrAdminCancelJobCommandIsNotConstructed)
}

func (c AdminCancelJobCommand) JobID() kernel.UUID { return c.jobID }
