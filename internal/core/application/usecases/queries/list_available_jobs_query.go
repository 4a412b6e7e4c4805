package queries

import (
	"errors"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrListAvailableJobsQueryIsNotConstructed = errors.New(
	"ListAvailableJobsQuery must be created via NewListAvailableJobsQuery constructor",
)

const MaxPageSize = 500

// ListAvailableJobsQuery reads the pool as agents see it: AVAILABLE jobs, oldest first.
// A zero limit returns the whole pool.
//
// Example:
//
//	query, err := NewListAvailableJobsQuery(0)
//	jobs, err := handler.Handle(ctx, query)
type ListAvailableJobsQuery struct {
	limit int
	guard guard.ConstructorGuard
}

// NewListAvailableJobsQuery creates the query. limit is 0 for no limit, otherwise within
// 1..MaxPageSize.
func NewListAvailableJobsQuery(limit int) (ListAvailableJobsQuery, error) {
	if limit < 0 || limit > MaxPageSize {
		return ListAvailableJobsQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 0, MaxPageSize)
	}
	return ListAvailableJobsQuery{limit: limit, guard: guard.NewConstructorGuard()}, nil
}

func (q ListAvailableJobsQuery) Validate() error {
	return q.guard.Validate(ErrListAvailableJobsQueryIsNotConstructed)
}

// Limit returns the page size, 0 meaning the whole pool.
func (q ListAvailableJobsQuery) Limit() int {
	return q.limit
}
