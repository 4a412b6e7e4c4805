package agent

import (
	"fmt"
	"strings"

	"dispatch/internal/pkg/errs"
)

// Status is the account state of a delivery agent as maintained by the agent registry.
type Status int

const (
	StatusUnknown Status = iota
	StatusPending
	StatusActive
	StatusInactive
	StatusSuspended
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "UNKNOWN",
		StatusPending:   "PENDING",
		StatusActive:    "ACTIVE",
		StatusInactive:  "INACTIVE",
		StatusSuspended: "SUSPENDED",
	}
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != StatusUnknown && strings.EqualFold(name, s) {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("agent status", fmt.Errorf("%q is not a known status", s))
}

func (s Status) Validate() error {
	if s <= StatusUnknown || s > StatusSuspended {
		return errs.NewValueIsInvalidErrorWithCause("agent status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}
