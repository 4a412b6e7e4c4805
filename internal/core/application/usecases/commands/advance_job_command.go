package commands

import (
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/job"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrAdvanceJobCommandIsNotConstructed = errors.New(
	"AdvanceJobCommand must be created via NewAdvanceJobCommand constructor",
)

// AdvanceJobCommand requests one lifecycle event. The payload type selects the event:
//
//	cmd, err := NewAdvanceJobCommand(jobID, actor, job.CompletePayload{Proof: &proof})
//
// Claims go through ClaimJobCommand, which also checks the agent record.
type AdvanceJobCommand struct {
	jobID   kernel.UUID
	actor   job.Actor
	payload job.Payload

	guard guard.ConstructorGuard
}

func NewAdvanceJobCommand(jobID kernel.UUID, actor job.Actor, payload job.Payload) (AdvanceJobCommand, error) {
	if err := jobID.Validate(); err != nil {
		return AdvanceJobCommand{}, errs.NewValueIsRequiredErrorWithCause("jobID", err)
	}
	if err := actor.Validate(); err != nil {
		return AdvanceJobCommand{}, errs.NewValueIsRequiredErrorWithCause("actor", err)
	}
	if payload == nil {
		return AdvanceJobCommand{}, errs.NewValueIsRequiredError("payload")
	}
	if payload.Event() == job.EventClaim {
		return AdvanceJobCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"payload",
			fmt.Errorf("%s must be sent as a claim request", job.EventClaim),
		)
	}

	return AdvanceJobCommand{
		jobID:   jobID,
		actor:   actor,
		payload: payload,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c AdvanceJobCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceJobCommandIsNotConstructed)
}

func (c AdvanceJobCommand) JobID() kernel.UUID   { return c.jobID }
func (c AdvanceJobCommand) Actor() job.Actor     { return c.actor }
func (c AdvanceJobCommand) Payload() job.Payload { return c.payload }
