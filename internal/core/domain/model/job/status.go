package job

import (
	"fmt"
	"strings"

	"dispatch/internal/pkg/errs"
)

// Status is the lifecycle state of a delivery job.
//
// State transitions:
//
//	AVAILABLE ──claim──> ASSIGNED ──pickup──> PICKED_UP ──depart──> IN_TRANSIT ──complete──> DELIVERED
//	    ^                   │                     │                      │
//	    │                   └─────────────────────┴─────────fail─────────┴─────────────────> FAILED
//	    └──release (ASSIGNED) / cancel (ASSIGNED, PICKED_UP, IN_TRANSIT)
//
// Cancellation re-pools the job, so there is no persisted CANCELLED status.
// Values are stored as integers; Unknown (0) catches uninitialised values.
type Status int

const (
	Unknown Status = iota
	Available
	Assigned
	PickedUp
	InTransit
	Delivered
	Failed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Available: "AVAILABLE",
		Assigned:  "ASSIGNED",
		PickedUp:  "PICKED_UP",
		InTransit: "IN_TRANSIT",
		Delivered: "DELIVERED",
		Failed:    "FAILED",
	}
}

// ActiveStatuses lists the statuses that count towards the one-active-job-per-order rule.
func ActiveStatuses() []Status {
	return []Status{Available, Assigned, PickedUp, InTransit}
}

// InProgressStatuses lists the statuses in which a job has an owner working on it.
func InProgressStatuses() []Status {
	return []Status{Assigned, PickedUp, InTransit}
}

// ParseStatus converts the wire name (e.g. "PICKED_UP") back to a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && strings.EqualFold(name, s) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a known status", s))
}

// Validate rejects Unknown and out-of-range values read from storage.
func (s Status) Validate() error {
	if s <= Unknown || s > Failed {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsActive reports whether the job still blocks a new publication for its order.
func (s Status) IsActive() bool {
	return s >= Available && s <= InTransit
}

// IsInProgress reports whether an agent currently owns and works the job.
func (s Status) IsInProgress() bool {
	return s >= Assigned && s <= InTransit
}

// IsTerminal reports whether no further lifecycle event is accepted.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Failed
}

// ValidateCanHaveAgent checks that an agent is recorded exactly when the status requires one.
// Failed jobs keep the agent that worked them.
func (s Status) ValidateCanHaveAgent(hasAgent bool) error {
	needsAgent := s != Available
	if hasAgent && !needsAgent {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have an agent", s),
		)
	}
	if !hasAgent && needsAgent {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no agent", s),
		)
	}
	return nil
}
