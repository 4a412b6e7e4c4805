package queries

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrListPoolQueryIsNotConstructed = errors.New(
	"ListPoolQuery must be created via NewListPoolQuery constructor",
)

// ListPoolQuery is the admin view of every active job, assigned or not.
type ListPoolQuery struct {
	guard guard.ConstructorGuard
}

func NewListPoolQuery() ListPoolQuery {
	return ListPoolQuery{guard: guard.NewConstructorGuard()}
}

func (q ListPoolQuery) Validate() error {
	return q.guard.Validate(ErrListPoolQueryIsNotConstructed)
}
