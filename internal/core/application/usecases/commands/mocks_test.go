package commands_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/agent"
	"dispatch/internal/core/domain/model/earning"
	"dispatch/internal/core/domain/model/job"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return now }

type MockJobRepository struct{ mock.Mock }

func (m *MockJobRepository) Add(ctx context.Context, j *job.Job) error {
	args := m.Called(ctx, j)
	return args.Error(0)
}

func (m *MockJobRepository) Update(ctx context.Context, j *job.Job) error {
	args := m.Called(ctx, j)
	return args.Error(0)
}

func (m *MockJobRepository) Get(ctx context.Context, id kernel.UUID) (*job.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*job.Job), args.Error(1)
}

func (m *MockJobRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*job.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*job.Job), args.Error(1)
}

func (m *MockJobRepository) GetActiveByOrderForUpdate(ctx context.Context, orderID kernel.UUID) (*job.Job, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*job.Job), args.Error(1)
}

type MockEarningRepository struct{ mock.Mock }

func (m *MockEarningRepository) Add(ctx context.Context, e *earning.Entry) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

type MockAgentRepository struct{ mock.Mock }

func (m *MockAgentRepository) Get(ctx context.Context, id kernel.UUID) (*agent.Agent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*agent.Agent), args.Error(1)
}

// MockUoW satisfies JobUoW, AssignUoW and UoW.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) JobRepository() ports.JobRepository {
	args := m.Called()
	return args.Get(0).(ports.JobRepository)
}

func (m *MockUoW) EarningRepository() ports.EarningRepository {
	args := m.Called()
	return args.Get(0).(ports.EarningRepository)
}

func (m *MockUoW) AgentRepository() ports.AgentRepository {
	args := m.Called()
	return args.Get(0).(ports.AgentRepository)
}

type MockJobUoWFactory struct{ mock.Mock }

func (m *MockJobUoWFactory) Create() commands.JobUoW {
	args := m.Called()
	return args.Get(0).(commands.JobUoW)
}

type MockAssignUoWFactory struct{ mock.Mock }

func (m *MockAssignUoWFactory) Create() commands.AssignUoW {
	args := m.Called()
	return args.Get(0).(commands.AssignUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) NotifyNewJob(ctx context.Context, a ports.JobAnnouncement) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockNotifier) NotifyStatusChanged(ctx context.Context, jobID kernel.UUID, status job.Status) error {
	args := m.Called(ctx, jobID, status)
	return args.Error(0)
}

func (m *MockNotifier) NotifyJobRevoked(ctx context.Context, jobID, agentID kernel.UUID) error {
	args := m.Called(ctx, jobID, agentID)
	return args.Error(0)
}

type MockOrderEventSink struct{ mock.Mock }

func (m *MockOrderEventSink) FulfillmentChanged(ctx context.Context, e ports.FulfillmentEvent) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func quietFanout() commands.Fanout {
	return commands.NewFanout(nil, nil, discardLogger())
}

func agentActor(t *testing.T, id kernel.UUID) job.Actor {
	t.Helper()
	actor, err := job.NewAgentActor(id)
	require.NoError(t, err)
	return actor
}

func activeAgent(t *testing.T, id kernel.UUID) *agent.Agent {
	t.Helper()
	a, err := agent.RestoreAgent(id, "user-"+id.String(), true, 4.8, agent.StatusActive)
	require.NoError(t, err)
	return a
}

func availableJob(t *testing.T) *job.Job {
	t.Helper()
	j, err := job.NewJob(kernel.NewUUID(), kernel.NewUUID(), 4.2, nil, now.Add(-time.Hour))
	require.NoError(t, err)
	return j
}

// jobIn walks a fresh job to the requested status with agentID as owner.
func jobIn(t *testing.T, status job.Status, agentID kernel.UUID) *job.Job {
	t.Helper()
	j := availableJob(t)
	if status == job.Available {
		return j
	}

	actor := agentActor(t, agentID)
	at := now.Add(-50 * time.Minute)

	_, err := j.Claim(actor, agentID, at)
	require.NoError(t, err)

	steps := []struct {
		until   job.Status
		payload job.Payload
	}{
		{job.PickedUp, job.PickupPayload{}},
		{job.InTransit, job.DepartPayload{}},
		{job.Delivered, job.CompletePayload{WaiveProof: true}},
	}
	for _, step := range steps {
		if j.Status() == status {
			break
		}
		at = at.Add(10 * time.Minute)
		_, err = j.Apply(actor, step.payload, at)
		require.NoError(t, err)
	}
	require.Equal(t, status, j.Status())
	return j
}
