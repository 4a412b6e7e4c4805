package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/job"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrAttachProofCommandIsNotConstructed = errors.New(
	"AttachProofCommand must be created via NewAttachProofCommand constructor",
)

// AttachProofCommand stores proof of delivery ahead of the complete event.
type AttachProofCommand struct {
	jobID kernel.UUID
	actor job.Actor
	proof job.ProofOfDelivery

	guard guard.ConstructorGuard
}

func NewAttachProofCommand(
	jobID kernel.UUID,
	actor job.Actor,
	imageRef, signatureRef, notes string,
) (AttachProofCommand, error) {
	if err := jobID.Validate(); err != nil {
		return AttachProofCommand{}, errs.NewValueIsRequiredErrorWithCause("jobID", err)
	}
	if err := actor.Validate(); err != nil {
		return AttachProofCommand{}, errs.NewValueIsRequiredErrorWithCause("actor", err)
	}

	proof, err := job.NewProofOfDelivery(imageRef, signatureRef, notes)
	if err != nil {
		return AttachProofCommand{}, err
	}

	return AttachProofCommand{
		jobID: jobID,
		actor: actor,
		proof: proof,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c AttachProofCommand) Validate() error {
	return c.guard.Validate(ErrAttachProofCommandIsNotConstructed)
}

func (c AttachProofCommand) JobID() kernel.UUID         { return c.jobID }
func (c AttachProofCommand) Actor() job.Actor           { return c.actor }
func (c AttachProofCommand) Proof() job.ProofOfDelivery { return c.proof }
