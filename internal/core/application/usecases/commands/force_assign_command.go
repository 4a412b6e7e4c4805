package commands

import (
	"errors"
	"math"
	"time"

	"dispatch/internal/core/domain/model/job"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrForceAssignCommandIsNotConstructed = errors.New(
	"ForceAssignCommand must be created via NewForceAssignCommand constructor",
)

// ForceAssignCommand lets an admin put an order's job on a specific agent.
// DistanceKm and ExpectedDeliveryTime are only used when the order has no active job yet
// and one has to be published first.
type ForceAssignCommand struct {
	orderID              kernel.UUID
	agentID              kernel.UUID
	distanceKm           float64
	expectedDeliveryTime *time.Time

	guard guard.ConstructorGuard
}

func NewForceAssignCommand(
	orderID kernel.UUID,
	agentID kernel.UUID,
	distanceKm float64,
	expectedDeliveryTime *time.Time,
) (ForceAssignCommand, error) {
	var validationErrs []error
	if err := orderID.Validate(); err != nil {
		validationErrs = append(validationErrs, errs.NewValueIsRequiredErrorWithCause("orderID", err))
	}
	if err := agentID.Validate(); err != nil {
		validationErrs = append(validationErrs, errs.NewValueIsRequiredErrorWithCause("agentID", err))
	}
	if math.IsNaN(distanceKm) || distanceKm < 0 || distanceKm > job.MaxDistanceKm {
		validationErrs = append(validationErrs,
			errs.NewValueIsOutOfRangeError("distanceKm", distanceKm, 0, job.MaxDistanceKm))
	}
	if err := errors.Join(validationErrs...); err != nil {
		return ForceAssignCommand{}, err
	}

	return ForceAssignCommand{
		orderID:              orderID,
		agentID:              agentID,
		distanceKm:           distanceKm,
		expectedDeliveryTime: expectedDeliveryTime,
		guard:                guard.NewConstructorGuard(),
	}, nil
}

func (c ForceAssignCommand) Validate() error {
	return c.guard.Validate(ErrForceAssignCommandIsNotConstructed)
}

func (c ForceAssignCommand) OrderID() kernel.UUID              { return c.orderID }
func (c ForceAssignCommand) AgentID() kernel.UUID              { return c.agentID }
func (c ForceAssignCommand) DistanceKm() float64               { return c.distanceKm }
func (c ForceAssignCommand) ExpectedDeliveryTime() *time.Time { return c.expectedDeliveryTime }
