package commands

import (
	"context"
	"log/slog"

	"dispatch/internal/core/domain/model/job"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
)

// Fanout forwards committed changes to the notification collaborators. Failures are
// logged and never returned: the transaction has already committed.
type Fanout struct {
	notifier ports.Notifier
	orders   ports.OrderEventSink
	logger   *slog.Logger
}

// NewFanout accepts nil collaborators, in which case the matching events are dropped.
func NewFanout(notifier ports.Notifier, orders ports.OrderEventSink, logger *slog.Logger) Fanout {
	if logger == nil {
		logger = slog.Default()
	}
	return Fanout{
		notifier: notifier,
		orders:   orders,
		logger:   logger.With("component", "fanout"),
	}
}

// JobPooled announces a job that has (re-)entered the pool.
func (f Fanout) JobPooled(ctx context.Context, j *job.Job) {
	if f.notifier == nil {
		return
	}

	err := f.notifier.NotifyNewJob(ctx, ports.JobAnnouncement{
		JobID:      j.ID(),
		OrderID:    j.OrderID(),
		DistanceKm: j.DistanceKm(),
	})
	if err != nil {
		f.logger.WarnContext(ctx, "new job notification failed",
			"job_id", j.ID().String(), "error", err)
	}
}

// Transitioned reports an accepted decision: the new status to agents, a fulfillment
// outcome to the order subsystem, and a fresh announcement if the job went back to the pool.
func (f Fanout) Transitioned(ctx context.Context, j *job.Job, decision job.Decision) {
	if f.notifier != nil {
		if err := f.notifier.NotifyStatusChanged(ctx, j.ID(), j.Status()); err != nil {
			f.logger.WarnContext(ctx, "status notification failed",
				"job_id", j.ID().String(), "status", j.Status().String(), "error", err)
		}
	}

	if outcome, ok := outcomeOf(decision); ok && f.orders != nil {
		err := f.orders.FulfillmentChanged(ctx, ports.FulfillmentEvent{
			OrderID: j.OrderID(),
			JobID:   j.ID(),
			Outcome: outcome,
		})
		if err != nil {
			f.logger.WarnContext(ctx, "fulfillment event failed",
				"order_id", j.OrderID().String(), "outcome", string(outcome), "error", err)
		}
	}

	if decision.To == job.Available {
		f.JobPooled(ctx, j)
	}
}

// Revoked tells the agent that lost j to a reassignment. The status event for the new
// assignment goes through Transitioned.
func (f Fanout) Revoked(ctx context.Context, j *job.Job, agentID kernel.UUID) {
	if f.notifier == nil {
		return
	}

	if err := f.notifier.NotifyJobRevoked(ctx, j.ID(), agentID); err != nil {
		f.logger.WarnContext(ctx, "revocation notification failed",
			"job_id", j.ID().String(), "agent_id", agentID.String(), "error", err)
	}
}

func outcomeOf(decision job.Decision) (ports.Outcome, bool) {
	switch {
	case decision.Event == job.EventCancel:
		return ports.OutcomeCancelled, true
	case decision.To == job.Delivered:
		return ports.OutcomeDelivered, true
	case decision.To == job.Failed:
		return ports.OutcomeFailed, true
	default:
		return "", false
	}
}
