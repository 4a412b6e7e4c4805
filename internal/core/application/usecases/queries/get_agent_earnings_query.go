package queries

import (
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrGetAgentEarningsQueryIsNotConstructed = errors.New(
	"GetAgentEarningsQuery must be created via NewGetAgentEarningsQuery constructor",
)

// GetAgentEarningsQuery asks for an agent's ledger over the half-open period [from, to).
type GetAgentEarningsQuery struct {
	agentID kernel.UUID
	from    time.Time
	to      time.Time
	guard   guard.ConstructorGuard
}

func NewGetAgentEarningsQuery(agentID kernel.UUID, from, to time.Time) (GetAgentEarningsQuery, error) {
	if err := agentID.Validate(); err != nil {
		return GetAgentEarningsQuery{}, errs.NewValueIsRequiredErrorWithCause("agentID", err)
	}
	if !from.Before(to) {
		return GetAgentEarningsQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"period",
			fmt.Errorf("from (%s) must be before to (%s)", from.Format(time.RFC3339), to.Format(time.RFC3339)),
		)
	}

	return GetAgentEarningsQuery{
		agentID: agentID,
		from:    from.UTC(),
		to:      to.UTC(),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetAgentEarningsQuery) Validate() error {
	return q.guard.Validate(ErrGetAgentEarningsQueryIsNotConstructed)
}

func (q GetAgentEarningsQuery) AgentID() kernel.UUID { return q.agentID }
func (q GetAgentEarningsQuery) From() time.Time      { return q.from }
func (q GetAgentEarningsQuery) To() time.Time        { return q.to }

// EarningView is one ledger line.
type EarningView struct {
	ID       kernel.UUID
	JobID    kernel.UUID
	Amount   int64
	EarnedAt time.Time
}

// AgentEarningsResponse carries the period total and the entries that make it up.
type AgentEarningsResponse struct {
	AgentID kernel.UUID
	From    time.Time
	To      time.Time
	Total   int64
	Entries []EarningView
}
