package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/job"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// DefaultPoolMonitorSchedule runs the monitor every 30 seconds.
const DefaultPoolMonitorSchedule = "*/30 * * * * *"

// PoolReader lists active jobs. queries.ListPoolQueryHandler satisfies it.
type PoolReader interface {
	Handle(ctx context.Context, query queries.ListPoolQuery) ([]queries.JobView, error)
}

// PoolMonitorJob reports pool depth and re-announces jobs nobody has claimed for longer
// than staleAfter. It only reads; job state is never changed here.
type PoolMonitorJob struct {
	pool       PoolReader
	notifier   ports.Notifier
	clock      kernel.Clock
	schedule   string
	staleAfter time.Duration
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewPoolMonitorJob creates the monitor. A nil notifier disables re-announcement, and a
// zero staleAfter as well.
func NewPoolMonitorJob(
	pool PoolReader,
	notifier ports.Notifier,
	clock kernel.Clock,
	schedule string,
	staleAfter time.Duration,
	logger *slog.Logger,
) *PoolMonitorJob {
	if schedule == "" {
		schedule = DefaultPoolMonitorSchedule
	}
	return &PoolMonitorJob{
		pool:       pool,
		notifier:   notifier,
		clock:      clock,
		schedule:   schedule,
		staleAfter: staleAfter,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "pool_monitor_job"),
	}
}

// PoolStats is what one monitor run observed.
type PoolStats struct {
	ByStatus    map[job.Status]int
	Stale       int
	Reannounced int
}

// Start schedules the monitor.
func (j *PoolMonitorJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if _, err := j.RunOnce(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Pool monitor run failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pool monitor job started", "schedule", j.schedule)
	return nil
}

// Stop stops scheduling and waits for a run in progress.
func (j *PoolMonitorJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Pool monitor job stopped")
}

// RunOnce takes one look at the pool.
func (j *PoolMonitorJob) RunOnce(ctx context.Context) (PoolStats, error) {
	views, err := j.pool.Handle(ctx, queries.NewListPoolQuery())
	if err != nil {
		return PoolStats{}, err
	}

	stats := PoolStats{ByStatus: make(map[job.Status]int)}
	now := j.clock()

	for _, v := range views {
		stats.ByStatus[v.Status]++

		if v.Status != job.Available || j.staleAfter <= 0 || now.Sub(v.AvailableSince) < j.staleAfter {
			continue
		}
		stats.Stale++

		if j.notifier == nil {
			continue
		}
		err = j.notifier.NotifyNewJob(ctx, ports.JobAnnouncement{
			JobID:      v.ID,
			OrderID:    v.OrderID,
			DistanceKm: v.DistanceKm,
		})
		if err != nil {
			j.logger.WarnContext(ctx, "Re-announcing stale job failed", "job_id", v.ID.String(), "error", err)
			continue
		}
		stats.Reannounced++
	}

	j.logger.InfoContext(ctx, "Pool depth",
		"available", stats.ByStatus[job.Available],
		"assigned", stats.ByStatus[job.Assigned],
		"picked_up", stats.ByStatus[job.PickedUp],
		"in_transit", stats.ByStatus[job.InTransit],
		"stale", stats.Stale,
	)

	return stats, nil
}
