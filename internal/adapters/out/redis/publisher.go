// Package redis publishes dispatch notifications on Redis pub/sub channels.
//
// Channels:
//   - dispatch.jobs.new            a job entered the pool
//   - dispatch.jobs.status         a job changed status
//   - dispatch.jobs.revoked        an admin took a job away from its agent
//   - dispatch.orders.fulfillment  a job reached an outcome the order service cares about
//
// Messages are JSON objects. Delivery is at most once: subscribers that are not
// connected when a message is published never see it.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/job"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

const (
	ChannelNewJob      = "dispatch.jobs.new"
	ChannelJobStatus   = "dispatch.jobs.status"
	ChannelJobRevoked  = "dispatch.jobs.revoked"
	ChannelFulfillment = "dispatch.orders.fulfillment"
)

var (
	_ ports.Notifier       = (*Publisher)(nil)
	_ ports.OrderEventSink = (*Publisher)(nil)
)

// NewJobMessage is published on ChannelNewJob.
type NewJobMessage struct {
	JobID      string  `json:"job_id"`
	OrderID    string  `json:"order_id"`
	DistanceKm float64 `json:"distance_km"`
}

// StatusMessage is published on ChannelJobStatus.
type StatusMessage struct {
	JobID  string `json:"job_id"`
	Status string `json:"status"`
}

// RevokedMessage is published on ChannelJobRevoked.
type RevokedMessage struct {
	JobID   string `json:"job_id"`
	AgentID string `json:"agent_id"`
}

// FulfillmentMessage is published on ChannelFulfillment.
type FulfillmentMessage struct {
	OrderID string `json:"order_id"`
	JobID   string `json:"job_id"`
	Outcome string `json:"outcome"`
}

// Publisher implements ports.Notifier and ports.OrderEventSink.
type Publisher struct {
	client  redis.UniversalClient
	timeout time.Duration
}

// NewPublisher wraps client. Each publish is bounded by timeout so that a slow Redis
// cannot hold up the request that triggered the notification; zero means no bound.
func NewPublisher(client redis.UniversalClient, timeout time.Duration) *Publisher {
	return &Publisher{client: client, timeout: timeout}
}

func (p *Publisher) NotifyNewJob(ctx context.Context, a ports.JobAnnouncement) error {
	return p.publish(ctx, ChannelNewJob, NewJobMessage{
		JobID:      a.JobID.String(),
		OrderID:    a.OrderID.String(),
		DistanceKm: a.DistanceKm,
	})
}

func (p *Publisher) NotifyStatusChanged(ctx context.Context, jobID kernel.UUID, status job.Status) error {
	return p.publish(ctx, ChannelJobStatus, StatusMessage{
		JobID:  jobID.String(),
		Status: status.String(),
	})
}

func (p *Publisher) NotifyJobRevoked(ctx context.Context, jobID, agentID kernel.UUID) error {
	return p.publish(ctx, ChannelJobRevoked, RevokedMessage{
		JobID:   jobID.String(),
		AgentID: agentID.String(),
	})
}

func (p *Publisher) FulfillmentChanged(ctx context.Context, e ports.FulfillmentEvent) error {
	return p.publish(ctx, ChannelFulfillment, FulfillmentMessage{
		OrderID: e.OrderID.String(),
		JobID:   e.JobID.String(),
		Outcome: string(e.Outcome),
	})
}

func (p *Publisher) publish(ctx context.Context, channel string, msg any) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal %s message: %w", channel, err)
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	if err = p.client.Publish(ctx, channel, data).Err(); err != nil {
		return fmt.Errorf("redis publish %s: %w", channel, err)
	}
	return nil
}
