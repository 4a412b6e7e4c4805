package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/job"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrUpdateProgressCommandIsNotConstructed = errors.New(
	"UpdateProgressCommand must be created via NewUpdateProgressCommand constructor",
)

// UpdateProgressCommand reports delivery progress and, optionally, the agent's position.
type UpdateProgressCommand struct {
	jobID    kernel.UUID
	actor    job.Actor
	percent  int
	position *kernel.GeoPoint

	guard guard.ConstructorGuard
}

func NewUpdateProgressCommand(
	jobID kernel.UUID,
	actor job.Actor,
	percent int,
	position *kernel.GeoPoint,
) (UpdateProgressCommand, error) {
	if err := jobID.Validate(); err != nil {
		return UpdateProgressCommand{}, errs.NewValueIsRequiredErrorWithCause("jobID", err)
	}
	if err := actor.Validate(); err != nil {
		return UpdateProgressCommand{}, errs.NewValueIsRequiredErrorWithCause("actor", err)
	}
	if percent < 0 || percent > job.MaxProgress {
		return UpdateProgressCommand{}, errs.NewValueIsOutOfRangeError("percent", percent, 0, job.MaxProgress)
	}

	return UpdateProgressCommand{
		jobID:    jobID,
		actor:    actor,
		percent:  percent,
		position: position,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateProgressCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProgressCommandIsNotConstructed)
}

func (c UpdateProgressCommand) JobID() kernel.UUID         { return c.jobID }
func (c UpdateProgressCommand) Actor() job.Actor           { return c.actor }
func (c UpdateProgressCommand) Percent() int               { return c.percent }
func (c UpdateProgressCommand) Position() *kernel.GeoPoint { return c.position }
