package job

import (
	"slices"

	"dispatch/internal/pkg/errs"
)

// Effect is a side effect the caller must apply when a transition is accepted.
type Effect int

const (
	EffectAssignAgent Effect = iota + 1
	EffectStampAssigned
	EffectStampPickedUp
	EffectRequireProof
	EffectStampDelivered
	EffectRecordEarnings
	EffectStoreFailureReason
	EffectReleaseAgent
	EffectStampAvailable
)

// Decision is the outcome of an accepted transition.
type Decision struct {
	From    Status
	To      Status
	Event   Event
	Effects []Effect

	ownerRequired bool
}

// Has reports whether the decision carries the given effect.
func (d Decision) Has(effect Effect) bool {
	return slices.Contains(d.Effects, effect)
}

// RequiresOwner reports whether the caller must be the agent that owns the job.
func (d Decision) RequiresOwner() bool {
	return d.ownerRequired
}

type transition struct {
	from    []Status
	event   Event
	to      Status
	roles   []Role
	owner   bool // applies to RoleAgent only
	effects []Effect
}

func transitions() []transition {
	inProgress := InProgressStatuses()

	return []transition{
		{
			from: []Status{Available}, event: EventClaim, to: Assigned,
			roles:   []Role{RoleAgent, RoleAdmin},
			effects: []Effect{EffectAssignAgent, EffectStampAssigned},
		},
		{
			from: []Status{Assigned}, event: EventPickup, to: PickedUp,
			roles: []Role{RoleAgent}, owner: true,
			effects: []Effect{EffectStampPickedUp},
		},
		{
			from: []Status{PickedUp}, event: EventDepart, to: InTransit,
			roles: []Role{RoleAgent}, owner: true,
		},
		{
			from: []Status{InTransit}, event: EventComplete, to: Delivered,
			roles: []Role{RoleAgent}, owner: true,
			effects: []Effect{EffectRequireProof, EffectStampDelivered, EffectRecordEarnings},
		},
		{
			from: inProgress, event: EventFail, to: Failed,
			roles: []Role{RoleAgent, RoleAdmin}, owner: true,
			effects: []Effect{EffectStoreFailureReason},
		},
		{
			from: inProgress, event: EventCancel, to: Available,
			roles:   []Role{RoleAdmin},
			effects: []Effect{EffectReleaseAgent, EffectStampAvailable},
		},
		{
			from: []Status{Assigned}, event: EventRelease, to: Available,
			roles: []Role{RoleAgent, RoleAdmin}, owner: true,
			effects: []Effect{EffectReleaseAgent, EffectStampAvailable},
		},
	}
}

// Decide is the dispatch state machine. It never touches a job; callers apply the
// returned effects inside the transaction that persists the new status.
//
// Errors:
//   - InvalidTransitionError when no edge leaves from with event
//   - ForbiddenError when the edge exists but role may not take it
//
// Example:
//
//	d, err := job.Decide(job.InTransit, job.EventComplete, job.RoleAgent)
//	// d.To == job.Delivered, d.Has(job.EffectRecordEarnings) == true
func Decide(from Status, event Event, role Role) (Decision, error) {
	for _, t := range transitions() {
		if t.event != event || !slices.Contains(t.from, from) {
			continue
		}

		if !slices.Contains(t.roles, role) {
			return Decision{}, errs.NewForbiddenError(role.String(), event.String())
		}

		return Decision{
			From:          from,
			To:            t.to,
			Event:         event,
			Effects:       slices.Clone(t.effects),
			ownerRequired: t.owner && role == RoleAgent,
		}, nil
	}

	return Decision{}, errs.NewInvalidTransitionError(from, event)
}
