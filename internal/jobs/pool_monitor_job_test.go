package jobs_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/job"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
	"dispatch/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type MockPoolReader struct {
	mock.Mock
}

func (m *MockPoolReader) Handle(ctx context.Context, query queries.ListPoolQuery) ([]queries.JobView, error) {
	args := m.Called(ctx, query)
	views, _ := args.Get(0).([]queries.JobView)
	return views, args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) NotifyNewJob(ctx context.Context, a ports.JobAnnouncement) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockNotifier) NotifyStatusChanged(ctx context.Context, jobID kernel.UUID, status job.Status) error {
	return m.Called(ctx, jobID, status).Error(0)
}

func (m *MockNotifier) NotifyJobRevoked(ctx context.Context, jobID, agentID kernel.UUID) error {
	args := m.Called(ctx, jobID, agentID)
	return args.Error(0)
}

func view(status job.Status, waited time.Duration) queries.JobView {
	return queries.JobView{
		ID:             kernel.NewUUID(),
		OrderID:        kernel.NewUUID(),
		Status:         status,
		IsAvailable:    status == job.Available,
		AvailableSince: now.Add(-waited),
		DistanceKm:     2.5,
	}
}

func newMonitor(pool jobs.PoolReader, notifier ports.Notifier) *jobs.PoolMonitorJob {
	return jobs.NewPoolMonitorJob(
		pool,
		notifier,
		func() time.Time { return now },
		"",
		10*time.Minute,
		slog.New(slog.DiscardHandler),
	)
}

func TestPoolMonitorJob_RunOnce_ReannouncesStaleJobs(t *testing.T) {
	ctx := t.Context()
	stale := view(job.Available, 15*time.Minute)
	fresh := view(job.Available, time.Minute)
	assigned := view(job.Assigned, time.Hour)

	pool := new(MockPoolReader)
	pool.On("Handle", ctx, mock.Anything).Return([]queries.JobView{stale, fresh, assigned}, nil)

	notifier := new(MockNotifier)
	notifier.On("NotifyNewJob", ctx, ports.JobAnnouncement{
		JobID:      stale.ID,
		OrderID:    stale.OrderID,
		DistanceKm: 2.5,
	}).Return(nil).Once()

	stats, err := newMonitor(pool, notifier).RunOnce(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, stats.ByStatus[job.Available])
	assert.Equal(t, 1, stats.ByStatus[job.Assigned])
	assert.Equal(t, 1, stats.Stale)
	assert.Equal(t, 1, stats.Reannounced)
	notifier.AssertExpectations(t)
}

func TestPoolMonitorJob_RunOnce_NotifierFailureIsNotFatal(t *testing.T) {
	ctx := t.Context()
	pool := new(MockPoolReader)
	pool.On("Handle", ctx, mock.Anything).Return([]queries.JobView{
		view(job.Available, time.Hour),
		view(job.Available, 2*time.Hour),
	}, nil)

	notifier := new(MockNotifier)
	notifier.On("NotifyNewJob", ctx, mock.Anything).Return(errors.New("redis down")).Once()
	notifier.On("NotifyNewJob", ctx, mock.Anything).Return(nil).Once()

	stats, err := newMonitor(pool, notifier).RunOnce(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, stats.Stale)
	assert.Equal(t, 1, stats.Reannounced)
}

func TestPoolMonitorJob_RunOnce_WithoutNotifier(t *testing.T) {
	ctx := t.Context()
	pool := new(MockPoolReader)
	pool.On("Handle", ctx, mock.Anything).Return([]queries.JobView{view(job.Available, time.Hour)}, nil)

	stats, err := newMonitor(pool, nil).RunOnce(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, stats.Stale)
	assert.Zero(t, stats.Reannounced)
}

func TestPoolMonitorJob_RunOnce_ReadError(t *testing.T) {
	ctx := t.Context()
	pool := new(MockPoolReader)
	pool.On("Handle", ctx, mock.Anything).Return(nil, errors.New("db down"))

	_, err := newMonitor(pool, nil).RunOnce(ctx)

	require.Error(t, err)
}

func TestPoolMonitorJob_InvalidSchedule(t *testing.T) {
	monitor := jobs.NewPoolMonitorJob(new(MockPoolReader), nil, kernel.SystemClock,
		"not a schedule", time.Minute, slog.New(slog.DiscardHandler))

	require.Error(t, monitor.Start())
}

func TestPoolMonitorJob_StartStop(t *testing.T) {
	pool := new(MockPoolReader)
	pool.On("Handle", mock.Anything, mock.Anything).Return([]queries.JobView{}, nil).Maybe()

	monitor := newMonitor(pool, nil)

	require.NoError(t, monitor.Start())
	monitor.Stop()
}
