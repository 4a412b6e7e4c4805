package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrGetJobQueryIsNotConstructed = errors.New(
	"GetJobQuery must be created via NewGetJobQuery constructor",
)

type GetJobQuery struct {
	jobID kernel.UUID
	guard guard.ConstructorGuard
}

func NewGetJobQuery(jobID kernel.UUID) (GetJobQuery, error) {
	if err := jobID.Validate(); err != nil {
		return GetJobQuery{}, errs.NewValueIsRequiredErrorWithCause("jobID", err)
	}
	return GetJobQuery{jobID: jobID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetJobQuery) Validate() error {
	return q.guard.Validate(ErrGetJobQueryIsNotConstructed)
}

func (q GetJobQuery) JobID() kernel.UUID {
	return q.jobID
}
