package ports

import (
	"context"

	"dispatch/internal/core/domain/model/job"
	"dispatch/internal/core/domain/model/kernel"
)

// JobAnnouncement is broadcast to agents when a job enters the pool.
type JobAnnouncement struct {
	JobID      kernel.UUID
	OrderID    kernel.UUID
	DistanceKm float64
}

// Outcome is the fulfillment result reported to the order subsystem.
type Outcome string

const (
	OutcomeDelivered Outcome = "DELIVERED"
	OutcomeFailed    Outcome = "FAILED"
	OutcomeCancelled Outcome = "CANCELLED"
)

// FulfillmentEvent tells the order subsystem how a job for its order ended.
type FulfillmentEvent struct {
	OrderID kernel.UUID
	JobID   kernel.UUID
	Outcome Outcome
}

// Notifier fans dispatch events out to agents. Delivery is best-effort:
// callers log failures and carry on.
type Notifier interface {
	NotifyNewJob(ctx context.Context, announcement JobAnnouncement) error
	NotifyStatusChanged(ctx context.Context, jobID kernel.UUID, status job.Status) error
	// NotifyJobRevoked tells agentID that a job it held was given to someone else.
	NotifyJobRevoked(ctx context.Context, jobID, agentID kernel.UUID) error
}

// OrderEventSink receives fulfillment outcomes for the order subsystem.
type OrderEventSink interface {
	FulfillmentChanged(ctx context.Context, event FulfillmentEvent) error
}
