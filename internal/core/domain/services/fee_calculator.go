package services

import (
	"errors"
	"fmt"
	"math"

	"dispatch/internal/core/domain/model/job"
	"dispatch/internal/pkg/errs"
)

// ErrFeeIsNotPositive is returned when the configured rules produce a non-positive amount.
var ErrFeeIsNotPositive = errors.New("computed fee must be positive")

// FeeCalculator prices a delivered job in minor currency units.
//
// Business rules:
//   - every delivery earns BaseFee
//   - PerKmBonus is paid per kilometre of the job's distance, rounded to the nearest unit
//   - OnTimeBonus is added when the job was delivered no later than its expected time
//
// Example:
//
//	calc := services.NewFeeCalculator(300, 50, 100)
//	amount, err := calc.Calculate(deliveredJob) // 300 + 4.2*50 + 100 = 610
type FeeCalculator struct {
	baseFee     int64
	perKmBonus  int64
	onTimeBonus int64
}

func NewFeeCalculator(baseFee, perKmBonus, onTimeBonus int64) FeeCalculator {
	return FeeCalculator{baseFee: baseFee, perKmBonus: perKmBonus, onTimeBonus: onTimeBonus}
}

// Calculate returns the amount owed for j. The job must be DELIVERED.
func (c FeeCalculator) Calculate(j *job.Job) (int64, error) {
	if err := j.Validate(); err != nil {
		return 0, err
	}
	if j.Status() != job.Delivered {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"job",
			fmt.Errorf("%s jobs are not paid", j.Status()),
		)
	}

	amount := c.baseFee + int64(math.Round(j.DistanceKm()*float64(c.perKmBonus)))

	expected, actual := j.ExpectedDeliveryTime(), j.ActualDeliveryTime()
	if expected != nil && actual != nil && !actual.After(*expected) {
		amount += c.onTimeBonus
	}

	if amount <= 0 {
		return 0, ErrFeeIsNotPositive
	}
	return amount, nil
}
