package earningrepo_test

import (
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres/earningrepo"
	"dispatch/internal/core/domain/model/earning"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

func TestGormEarningRepository_Add(t *testing.T) {
	ctx := t.Context()
	db := testdb.New(t, &earningrepo.EarningEntryDTO{})
	tracker := new(MockAggregateTracker)
	repo := earningrepo.NewGormEarningRepository(db, tracker)

	jobID, agentID := kernel.NewUUID(), kernel.NewUUID()
	earnedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	entry, err := earning.NewEntry(kernel.NewUUID(), jobID, agentID, 510, earnedAt)
	require.NoError(t, err)

	tracker.On("TrackAggregate", entry.ID(), entry).Once()
	require.NoError(t, repo.Add(ctx, entry))
	tracker.AssertExpectations(t)

	got, err := repo.GetByJob(ctx, jobID)
	require.NoError(t, err)
	assert.Equal(t, entry.ID(), got.ID())
	assert.Equal(t, agentID, got.AgentID())
	assert.Equal(t, int64(510), got.Amount())
	assert.True(t, got.EarnedAt().Equal(earnedAt))
}

func TestGormEarningRepository_OneEntryPerJob(t *testing.T) {
	ctx := t.Context()
	db := testdb.New(t, &earningrepo.EarningEntryDTO{})
	tracker := new(MockAggregateTracker)
	tracker.On("TrackAggregate", mock.Anything, mock.Anything).Once()
	repo := earningrepo.NewGormEarningRepository(db, tracker)

	jobID, agentID := kernel.NewUUID(), kernel.NewUUID()
	earnedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	first, err := earning.NewEntry(kernel.NewUUID(), jobID, agentID, 500, earnedAt)
	require.NoError(t, err)
	second, err := earning.NewEntry(kernel.NewUUID(), jobID, agentID, 500, earnedAt)
	require.NoError(t, err)

	require.NoError(t, repo.Add(ctx, first))
	require.ErrorIs(t, repo.Add(ctx, second), errs.ErrDuplicateEntry)

	var count int64
	require.NoError(t, db.Model(&earningrepo.EarningEntryDTO{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
	tracker.AssertNumberOfCalls(t, "TrackAggregate", 1)
}

func TestGormEarningRepository_GetByJobNotFound(t *testing.T) {
	db := testdb.New(t, &earningrepo.EarningEntryDTO{})
	repo := earningrepo.NewGormEarningRepository(db, new(MockAggregateTracker))

	_, err := repo.GetByJob(t.Context(), kernel.NewUUID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
