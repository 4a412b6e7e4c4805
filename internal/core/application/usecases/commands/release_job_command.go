package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/job"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrReleaseJobCommandIsNotConstructed = errors.New(
	"ReleaseJobCommand must be created via NewReleaseJobCommand constructor",
)

// ReleaseJobCommand gives an ASSIGNED job back to the pool.
type ReleaseJobCommand struct {
	jobID kernel.UUID
	actor job.Actor

	guard guard.ConstructorGuard
}

func NewReleaseJobCommand(jobID kernel.UUID, actor job.Actor) (ReleaseJobCommand, error) {
	if err := jobID.Validate(); err != nil {
		return ReleaseJobCommand{}, errs.NewValueIsRequiredErrorWithCause("jobID", err)
	}
	if err := actor.Validate(); err != nil {
		return ReleaseJobCommand{}, errs.NewValueIsRequiredErrorWithCause("actor", err)
	}

	return ReleaseJobCommand{
		jobID: jobID,
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c ReleaseJobCommand) Validate() error {
	return c.guard.Validate(ErrReleaseJobCommandIsNotConstructed)
}

func (c ReleaseJobCommand) JobID() kernel.UUID { return c.jobID }
func (c ReleaseJobCommand) Actor() job.Actor   { return c.actor }
