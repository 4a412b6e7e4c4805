// Package earning models the append-only ledger of pay owed to agents.
package earning

import (
	"errors"
	"math"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry or RestoreEntry constructor")

// Entry is one ledger line: the amount, in minor currency units, an agent earned for a
// delivered job. Entries are never updated; corrections are new entries elsewhere.
type Entry struct {
	id       kernel.UUID
	jobID    kernel.UUID
	agentID  kernel.UUID
	amount   int64
	earnedAt time.Time
	guard    guard.ConstructorGuard
}

// NewEntry validates a ledger line for a job. Amount must be positive.
func NewEntry(id, jobID, agentID kernel.UUID, amount int64, earnedAt time.Time) (*Entry, error) {
	e := &Entry{earnedAt: earnedAt, guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		requireID("id", id),
		requireID("jobID", jobID),
		requireID("agentID", agentID),
		validateAmount(amount),
	); err != nil {
		return nil, err
	}
	if earnedAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("earnedAt")
	}

	e.id, e.jobID, e.agentID, e.amount = id, jobID, agentID, amount
	return e, nil
}

// RestoreEntry rebuilds an entry read from the ledger table.
func RestoreEntry(id, jobID, agentID kernel.UUID, amount int64, earnedAt time.Time) (*Entry, error) {
	return NewEntry(id, jobID, agentID, amount, earnedAt)
}

func (e *Entry) Validate() error {
	if e == nil {
		return ErrEntryIsNotConstructed
	}
	return e.guard.Validate(ErrEntryIsNotConstructed)
}

func (e *Entry) ID() kernel.UUID      { return e.id }
func (e *Entry) JobID() kernel.UUID   { return e.jobID }
func (e *Entry) AgentID() kernel.UUID { return e.agentID }
func (e *Entry) Amount() int64        { return e.amount }
func (e *Entry) EarnedAt() time.Time  { return e.earnedAt }

func requireID(name string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(name, err)
	}
	return nil
}

func validateAmount(amount int64) error {
	if amount <= 0 {
		return errs.NewValueIsOutOfRangeError("amount", amount, 1, int64(math.MaxInt64))
	}
	return nil
}
