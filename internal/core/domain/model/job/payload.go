package job

import "dispatch/internal/core/domain/model/kernel"

// Payload is the typed argument of a lifecycle event. Each event has exactly one
// payload type, so callers cannot send fields an event does not understand.
type Payload interface {
	Event() Event
	isPayload()
}

type ClaimPayload struct {
	AgentID kernel.UUID
}

type PickupPayload struct{}

type DepartPayload struct{}

// CompletePayload may carry the proof of delivery. Without it the job must already
// have proof attached, or the caller must waive it explicitly.
type CompletePayload struct {
	Proof      *ProofOfDelivery
	WaiveProof bool
}

type FailPayload struct {
	Reason string
}

type CancelPayload struct{}

type ReleasePayload struct{}

func (ClaimPayload) Event() Event    { return EventClaim }
func (PickupPayload) Event() Event   { return EventPickup }
func (DepartPayload) Event() Event   { return EventDepart }
func (CompletePayload) Event() Event { return EventComplete }
func (FailPayload) Event() Event     { return EventFail }
func (CancelPayload) Event() Event   { return EventCancel }
func (ReleasePayload) Event() Event  { return EventRelease }

func (ClaimPayload) isPayload()    {}
func (PickupPayload) isPayload()   {}
func (DepartPayload) isPayload()   {}
func (CompletePayload) isPayload() {}
func (FailPayload) isPayload()     {}
func (CancelPayload) isPayload()   {}
func (ReleasePayload) isPayload()  {}
