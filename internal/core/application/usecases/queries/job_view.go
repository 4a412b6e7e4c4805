// Package queries contains the read side of the dispatch service. Handlers run plain SQL
// against the connection pool and return flat views; they never lock rows or load
// aggregates.
package queries

import (
	"database/sql"
	"time"

	"dispatch/internal/core/domain/model/job"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// JobView is the read model of a job shown to agents and admins.
type JobView struct {
	ID                   kernel.UUID
	OrderID              kernel.UUID
	AgentID              *kernel.UUID
	Status               job.Status
	IsAvailable          bool
	AvailableSince       time.Time
	AssignedAt           *time.Time
	PickedUpAt           *time.Time
	DeliveredAt          *time.Time
	ExpectedDeliveryTime *time.Time
	ActualDeliveryTime   *time.Time
	DistanceKm           float64
	PodImageRef          string
	SignatureRef         string
	DeliveryNotes        string
	FailureReason        string
	ProgressPercent      int
	LastLatitude         *float64
	LastLongitude        *float64
	Version              int
}

const jobColumns = `
	id,
	order_id,
	agent_id,
	status,
	is_available,
	available_since,
	assigned_at,
	picked_up_at,
	delivered_at,
	expected_delivery_time,
	actual_delivery_time,
	distance_km,
	pod_image_ref,
	signature_ref,
	delivery_notes,
	failure_reason,
	progress_percent,
	last_latitude,
	last_longitude,
	version`

func scanJobViews(rows *sql.Rows) ([]JobView, error) {
	views := make([]JobView, 0)

	for rows.Next() {
		var view JobView
		var id, orderID uuid.UUID
		var agentID *uuid.UUID
		var status int

		err := rows.Scan(
			&id,
			&orderID,
			&agentID,
			&status,
			&view.IsAvailable,
			&view.AvailableSince,
			&view.AssignedAt,
			&view.PickedUpAt,
			&view.DeliveredAt,
			&view.ExpectedDeliveryTime,
			&view.ActualDeliveryTime,
			&view.DistanceKm,
			&view.PodImageRef,
			&view.SignatureRef,
			&view.DeliveryNotes,
			&view.FailureReason,
			&view.ProgressPercent,
			&view.LastLatitude,
			&view.LastLongitude,
			&view.Version,
		)
		if err != nil {
			return nil, err
		}

		if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if view.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}
		if view.AgentID, err = kernel.UUIDPtrFromNullable(agentID); err != nil {
			return nil, err
		}
		view.Status = job.Status(status)

		views = append(views, view)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}
