package job

import (
	"errors"
	"fmt"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// Event is a requested lifecycle step.
type Event int

const (
	EventUnknown Event = iota
	EventClaim
	EventPickup
	EventDepart
	EventComplete
	EventFail
	EventCancel
	EventRelease
)

func getEventStrings() map[Event]string {
	return map[Event]string{
		EventUnknown:  "unknown",
		EventClaim:    "claim",
		EventPickup:   "pickup",
		EventDepart:   "depart",
		EventComplete: "complete",
		EventFail:     "fail",
		EventCancel:   "cancel",
		EventRelease:  "release",
	}
}

func (e Event) String() string {
	if str, ok := getEventStrings()[e]; ok {
		return str
	}
	return "unknown"
}

// ParseEvent converts a wire name such as "pickup" to an Event.
func ParseEvent(s string) (Event, error) {
	for event, name := range getEventStrings() {
		if event != EventUnknown && strings.EqualFold(name, s) {
			return event, nil
		}
	}
	return EventUnknown, errs.NewValueIsInvalidErrorWithCause("event", fmt.Errorf("%q is not a known event", s))
}

// Role is the kind of caller driving a transition.
type Role int

const (
	RoleUnknown Role = iota
	RoleAgent
	RoleAdmin
)

func (r Role) String() string {
	switch r {
	case RoleAgent:
		return "agent"
	case RoleAdmin:
		return "admin"
	default:
		return "unknown"
	}
}

var ErrActorIsNotConstructed = errors.New("Actor must be created via NewAgentActor or NewAdminActor")

// Actor is the authenticated caller of a dispatch operation. Agents carry their id,
// admins do not.
type Actor struct {
	role    Role
	agentID kernel.UUID
	guard   guard.ConstructorGuard
}

func NewAgentActor(agentID kernel.UUID) (Actor, error) {
	if err := agentID.Validate(); err != nil {
		return Actor{}, errs.NewValueIsRequiredErrorWithCause("agentID", err)
	}
	return Actor{role: RoleAgent, agentID: agentID, guard: guard.NewConstructorGuard()}, nil
}

func NewAdminActor() Actor {
	return Actor{role: RoleAdmin, guard: guard.NewConstructorGuard()}
}

func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

func (a Actor) Role() Role {
	return a.role
}

func (a Actor) IsAdmin() bool {
	return a.role == RoleAdmin
}

// AgentID returns the agent identity and false for admins.
func (a Actor) AgentID() (kernel.UUID, bool) {
	return a.agentID, a.role == RoleAgent
}

func (a Actor) String() string {
	if a.role == RoleAgent {
		return "agent " + a.agentID.String()
	}
	return a.role.String()
}
