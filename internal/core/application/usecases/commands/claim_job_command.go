package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/job"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrClaimJobCommandIsNotConstructed = errors.New(
	"ClaimJobCommand must be created via NewClaimJobCommand constructor",
)

// ClaimJobCommand asks for an AVAILABLE job to be handed to an agent.
// Agents claim for themselves; an admin may claim on behalf of any agent.
type ClaimJobCommand struct { //nolint:recvcheck //using for validation
	jobID   kernel.UUID
	actor   job.Actor
	agentID kernel.UUID

	guard guard.ConstructorGuard
}

func NewClaimJobCommand(jobID kernel.UUID, actor job.Actor, agentID kernel.UUID) (ClaimJobCommand, error) {
	cmd := ClaimJobCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setJobID(jobID),
		cmd.setActor(actor),
		cmd.setAgentID(agentID),
	); err != nil {
		return ClaimJobCommand{}, err
	}

	return cmd, nil
}

func (c ClaimJobCommand) Validate() error {
	return c.guard.Validate(ErrClaimJobCommandIsNotConstructed)
}

func (c ClaimJobCommand) JobID() kernel.UUID   { return c.jobID }
func (c ClaimJobCommand) Actor() job.Actor     { return c.actor }
func (c ClaimJobCommand) AgentID() kernel.UUID { return c.agentID }

func (c *ClaimJobCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("jobID", err)
	}
	c.jobID = jobID
	return nil
}

func (c *ClaimJobCommand) setActor(actor job.Actor) error {
	if err := actor.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("actor", err)
	}
	c.actor = actor
	return nil
}

func (c *ClaimJobCommand) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("agentID", err)
	}
	c.agentID = agentID
	return nil
}
