// Package guard detects value objects, aggregates and commands that were created as
// zero values instead of through their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in types whose zero value is invalid. Only the type's
// constructor sets it, so Validate fails for instances created with a struct literal.
//
// Example:
//
//	type ClaimJobCommand struct {
//	    jobID kernel.UUID
//	    guard guard.ConstructorGuard
//	}
//
//	func (c ClaimJobCommand) Validate() error {
//	    return c.guard.Validate(ErrClaimJobCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero value it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
