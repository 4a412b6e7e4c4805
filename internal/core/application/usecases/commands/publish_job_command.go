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

var ErrPublishJobCommandIsNotConstructed = errors.New(
	"PublishJobCommand must be created via NewPublishJobCommand constructor",
)

// PublishJobCommand turns a placed order into an AVAILABLE job.
//
// Example:
//
//	cmd, err := NewPublishJobCommand(orderID, 4.2, &expectedAt)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	j, err := handler.Handle(ctx, cmd)
type PublishJobCommand struct { //nolint:recvcheck //using for validation
	orderID              kernel.UUID
	distanceKm           float64
	expectedDeliveryTime *time.Time

	guard guard.ConstructorGuard
}

func NewPublishJobCommand(
	orderID kernel.UUID,
	distanceKm float64,
	expectedDeliveryTime *time.Time,
) (PublishJobCommand, error) {
	cmd := PublishJobCommand{
		expectedDeliveryTime: expectedDeliveryTime,
		guard:                guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDistanceKm(distanceKm),
	); err != nil {
		return PublishJobCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PublishJobCommand) Validate() error {
	return c.guard.Validate(ErrPublishJobCommandIsNotConstructed)
}

func (c PublishJobCommand) OrderID() kernel.UUID              { return c.orderID }
func (c PublishJobCommand) DistanceKm() float64               { return c.distanceKm }
func (c PublishJobCommand) ExpectedDeliveryTime() *time.Time { return c.expectedDeliveryTime }

func (c *PublishJobCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}
	c.orderID = orderID
	return nil
}

func (c *PublishJobCommand) setDistanceKm(distanceKm float64) error {
	if math.IsNaN(distanceKm) || distanceKm < 0 || distanceKm > job.MaxDistanceKm {
		return errs.NewValueIsOutOfRangeError("distanceKm", distanceKm, 0, job.MaxDistanceKm)
	}
	c.distanceKm = distanceKm
	return nil
}
