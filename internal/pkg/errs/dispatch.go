package errs

import (
	"errors"
	"fmt"
)

// Dispatch errors. Callers match them with errors.Is; AlreadyClaimed, NotAvailable and Busy
// are safe to retry after refreshing the pool view, the others are not.
var (
	ErrAlreadyClaimed     = errors.New("job is already claimed")
	ErrNotAvailable       = errors.New("job is not available")
	ErrInvalidTransition  = errors.New("transition is invalid")
	ErrDuplicateActiveJob = errors.New("order already has an active job")
	ErrDuplicateEntry     = errors.New("earning entry already exists")
	ErrBusy               = errors.New("resource is busy")
	ErrTerminalJob        = errors.New("job is not in progress")
	ErrForbidden          = errors.New("action is forbidden")
	ErrAgentNotActive     = errors.New("agent is not active")
)

// InvalidTransitionError carries the rejected status/event pair so that callers can
// show the exact reason instead of a generic failure.
type InvalidTransitionError struct {
	From  string
	Event string
}

func NewInvalidTransitionError(from fmt.Stringer, event fmt.Stringer) *InvalidTransitionError {
	return &InvalidTransitionError{From: from.String(), Event: event.String()}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s is not allowed from %s", ErrInvalidTransition, e.Event, e.From)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// ForbiddenError names the actor role and action that was refused.
type ForbiddenError struct {
	Actor  string
	Action string
}

func NewForbiddenError(actor string, action string) *ForbiddenError {
	return &ForbiddenError{Actor: actor, Action: action}
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("%s: %s may not %s", ErrForbidden, e.Actor, e.Action)
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// BusyError wraps a storage-level lock or version conflict.
type BusyError struct {
	Resource string
	Cause    error
}

func NewBusyError(resource string, cause error) *BusyError {
	return &BusyError{Resource: resource, Cause: cause}
}

func (e *BusyError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrBusy, e.Resource, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrBusy, e.Resource)
}

func (e *BusyError) Unwrap() error {
	return ErrBusy
}
