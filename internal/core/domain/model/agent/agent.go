// Package agent holds the dispatch view of a delivery agent. Agents are owned by the
// agent registry; dispatch only reads them to decide whether a claim may proceed.
package agent

import (
	"errors"
	"fmt"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

const (
	MinRating = 0.0
	MaxRating = 5.0
)

var ErrAgentIsNotConstructed = errors.New("Agent must be created via RestoreAgent constructor")

// Agent is a read-only reference to a delivery worker.
type Agent struct {
	id       kernel.UUID
	userRef  string
	isOnline bool
	rating   float64
	status   Status
	guard    guard.ConstructorGuard
}

// RestoreAgent rebuilds an agent from the registry's data.
func RestoreAgent(id kernel.UUID, userRef string, isOnline bool, rating float64, status Status) (*Agent, error) {
	a := &Agent{isOnline: isOnline, guard: guard.NewConstructorGuard()}

	if err := id.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("id", err)
	}
	a.id = id

	userRef = strings.TrimSpace(userRef)
	if userRef == "" {
		return nil, errs.NewValueIsRequiredError("userRef")
	}
	a.userRef = userRef

	if rating < MinRating || rating > MaxRating {
		return nil, errs.NewValueIsOutOfRangeError("rating", rating, MinRating, MaxRating)
	}
	a.rating = rating

	if err := status.Validate(); err != nil {
		return nil, err
	}
	a.status = status

	return a, nil
}

func (a *Agent) Validate() error {
	if a == nil {
		return ErrAgentIsNotConstructed
	}
	return a.guard.Validate(ErrAgentIsNotConstructed)
}

func (a *Agent) ID() kernel.UUID { return a.id }
func (a *Agent) UserRef() string { return a.userRef }
func (a *Agent) IsOnline() bool  { return a.isOnline }
func (a *Agent) Rating() float64 { return a.rating }
func (a *Agent) Status() Status  { return a.status }

// ValidateCanClaim rejects agents whose account is not ACTIVE. Being offline does not
// block a claim; the client app controls visibility of the pool.
func (a *Agent) ValidateCanClaim() error {
	if err := a.Validate(); err != nil {
		return err
	}
	if a.status != StatusActive {
		return fmt.Errorf("%w: %s is %s", errs.ErrAgentNotActive, a.id, a.status)
	}
	return nil
}
