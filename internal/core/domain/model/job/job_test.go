package job_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/job"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

func newAvailableJob(t *testing.T) *job.Job {
	t.Helper()
	j, err := job.NewJob(kernel.NewUUID(), kernel.NewUUID(), 3.5, nil, t0)
	require.NoError(t, err)
	return j
}

func agentActor(t *testing.T, id kernel.UUID) job.Actor {
	t.Helper()
	a, err := job.NewAgentActor(id)
	require.NoError(t, err)
	return a
}

func claimedJob(t *testing.T, agentID kernel.UUID) *job.Job {
	t.Helper()
	j := newAvailableJob(t)
	_, err := j.Claim(agentActor(t, agentID), agentID, t0.Add(time.Minute))
	require.NoError(t, err)
	return j
}

func TestNewJob(t *testing.T) {
	t.Run("starts available", func(t *testing.T) {
		j := newAvailableJob(t)

		require.NoError(t, j.Validate())
		assert.Equal(t, job.Available, j.Status())
		assert.True(t, j.IsAvailable())
		assert.Nil(t, j.AgentID())
		assert.Equal(t, t0, j.AvailableSince())
		assert.Equal(t, 1, j.Version())
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		_, err := job.NewJob(kernel.UUID{}, kernel.NewUUID(), 1, nil, t0)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = job.NewJob(kernel.NewUUID(), kernel.UUID{}, 1, nil, t0)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = job.NewJob(kernel.NewUUID(), kernel.NewUUID(), -1, nil, t0)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var j job.Job
		require.ErrorIs(t, j.Validate(), job.ErrJobIsNotConstructed)

		var nilJob *job.Job
		require.ErrorIs(t, nilJob.Validate(), job.ErrJobIsNotConstructed)
	})
}

func TestJob_Claim(t *testing.T) {
	agentID := kernel.NewUUID()

	t.Run("assigns the agent", func(t *testing.T) {
		j := newAvailableJob(t)

		d, err := j.Claim(agentActor(t, agentID), agentID, t0.Add(time.Minute))
		require.NoError(t, err)

		assert.Equal(t, job.Assigned, d.To)
		assert.Equal(t, job.Assigned, j.Status())
		assert.False(t, j.IsAvailable())
		assert.True(t, j.IsOwnedBy(agentID))
		require.NotNil(t, j.AssignedAt())
		assert.Equal(t, t0.Add(time.Minute), *j.AssignedAt())
	})

	t.Run("second claim reports already claimed", func(t *testing.T) {
		j := claimedJob(t, agentID)
		other := kernel.NewUUID()

		_, err := j.Claim(agentActor(t, other), other, t0.Add(2*time.Minute))
		require.ErrorIs(t, err, errs.ErrAlreadyClaimed)
		assert.True(t, j.IsOwnedBy(agentID))
	})

	t.Run("agent cannot claim for someone else", func(t *testing.T) {
		j := newAvailableJob(t)

		_, err := j.Claim(agentActor(t, agentID), kernel.NewUUID(), t0)
		require.ErrorIs(t, err, errs.ErrForbidden)
		assert.Equal(t, job.Available, j.Status())
	})

	t.Run("admin assigns any agent", func(t *testing.T) {
		j := newAvailableJob(t)

		_, err := j.Claim(job.NewAdminActor(), agentID, t0)
		require.NoError(t, err)
		assert.True(t, j.IsOwnedBy(agentID))
	})

	t.Run("failed job keeps its agent", func(t *testing.T) {
		j, err := job.RestoreJob(job.Snapshot{
			ID: kernel.NewUUID(), OrderID: kernel.NewUUID(), Status: job.Available,
			AvailableSince: t0, Version: 1,
		})
		require.NoError(t, err)
		_, err = j.Claim(job.NewAdminActor(), agentID, t0)
		require.NoError(t, err)
		_, err = j.Apply(job.NewAdminActor(), job.FailPayload{Reason: "damaged"}, t0)
		require.NoError(t, err)

		// the failing agent stays recorded, so a claim reports AlreadyClaimed
		_, err = j.Claim(job.NewAdminActor(), kernel.NewUUID(), t0)
		require.ErrorIs(t, err, errs.ErrAlreadyClaimed)
	})
}

func TestJob_HappyPath(t *testing.T) {
	agentID := kernel.NewUUID()
	actor := agentActor(t, agentID)
	j := claimedJob(t, agentID)

	_, err := j.Apply(actor, job.PickupPayload{}, t0.Add(10*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, job.PickedUp, j.Status())

	_, err = j.Apply(actor, job.DepartPayload{}, t0.Add(11*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, job.InTransit, j.Status())

	proof, err := job.NewProofOfDelivery("x", "", "left at door")
	require.NoError(t, err)

	d, err := j.Apply(actor, job.CompletePayload{Proof: &proof}, t0.Add(30*time.Minute))
	require.NoError(t, err)
	assert.True(t, d.Has(job.EffectRecordEarnings))
	assert.Equal(t, job.Delivered, j.Status())
	require.NotNil(t, j.DeliveredAt())
	assert.Equal(t, *j.DeliveredAt(), *j.ActualDeliveryTime())
	assert.Equal(t, "x", j.Proof().ImageRef())
	assert.Equal(t, job.MaxProgress, j.ProgressPercent())

	// monotonic timestamps
	assert.False(t, j.PickedUpAt().Before(*j.AssignedAt()))
	assert.False(t, j.DeliveredAt().Before(*j.PickedUpAt()))

	// completing twice is rejected and changes nothing
	before := j.Snapshot()
	_, err = j.Apply(actor, job.CompletePayload{WaiveProof: true}, t0.Add(time.Hour))
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, before, j.Snapshot())
}

func TestJob_TimestampsStayMonotonicWhenClockStepsBack(t *testing.T) {
	agentID := kernel.NewUUID()
	actor := agentActor(t, agentID)
	j := claimedJob(t, agentID)

	_, err := j.Apply(actor, job.PickupPayload{}, t0) // earlier than assignedAt
	require.NoError(t, err)
	assert.Equal(t, *j.AssignedAt(), *j.PickedUpAt())
}

func TestJob_Apply_OwnerChecks(t *testing.T) {
	owner := kernel.NewUUID()
	stranger := agentActor(t, kernel.NewUUID())

	j := claimedJob(t, owner)
	before := j.Snapshot()

	_, err := j.Apply(stranger, job.PickupPayload{}, t0)
	require.ErrorIs(t, err, errs.ErrForbidden)
	assert.Equal(t, before, j.Snapshot())

	_, err = j.Apply(stranger, job.ReleasePayload{}, t0)
	require.ErrorIs(t, err, errs.ErrForbidden)

	_, err = j.Apply(stranger, job.FailPayload{Reason: "x"}, t0)
	require.ErrorIs(t, err, errs.ErrForbidden)
}

func TestJob_Complete_RequiresProofOrWaiver(t *testing.T) {
	agentID := kernel.NewUUID()
	actor := agentActor(t, agentID)

	inTransit := func(t *testing.T) *job.Job {
		t.Helper()
		j := claimedJob(t, agentID)
		_, err := j.Apply(actor, job.PickupPayload{}, t0.Add(2*time.Minute))
		require.NoError(t, err)
		_, err = j.Apply(actor, job.DepartPayload{}, t0.Add(3*time.Minute))
		require.NoError(t, err)
		return j
	}

	t.Run("missing proof", func(t *testing.T) {
		j := inTransit(t)
		before := j.Snapshot()

		_, err := j.Apply(actor, job.CompletePayload{}, t0.Add(time.Hour))
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, before, j.Snapshot())
	})

	t.Run("explicit waiver", func(t *testing.T) {
		j := inTransit(t)
		_, err := j.Apply(actor, job.CompletePayload{WaiveProof: true}, t0.Add(time.Hour))
		require.NoError(t, err)
		assert.Nil(t, j.Proof())
	})

	t.Run("proof attached earlier", func(t *testing.T) {
		j := inTransit(t)
		proof, err := job.NewProofOfDelivery("", "sig-1", "")
		require.NoError(t, err)
		require.NoError(t, j.AttachProof(actor, proof, t0.Add(4*time.Minute)))

		_, err = j.Apply(actor, job.CompletePayload{}, t0.Add(time.Hour))
		require.NoError(t, err)
		assert.Equal(t, "sig-1", j.Proof().SignatureRef())

		// frozen after delivery
		err = j.AttachProof(actor, proof, t0.Add(2*time.Hour))
		require.ErrorIs(t, err, errs.ErrTerminalJob)
	})
}

func TestJob_Fail(t *testing.T) {
	agentID := kernel.NewUUID()
	actor := agentActor(t, agentID)
	j := claimedJob(t, agentID)

	_, err := j.Apply(actor, job.FailPayload{Reason: "   "}, t0)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = j.Apply(actor, job.FailPayload{Reason: " customer unreachable "}, t0.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, job.Failed, j.Status())
	assert.Equal(t, "customer unreachable", j.FailureReason())
	assert.True(t, j.IsOwnedBy(agentID))

	_, err = j.Apply(actor, job.CompletePayload{WaiveProof: true}, t0.Add(2*time.Hour))
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
}

func TestJob_CancelRepools(t *testing.T) {
	agentID := kernel.NewUUID()
	actor := agentActor(t, agentID)
	admin := job.NewAdminActor()

	j := claimedJob(t, agentID)
	_, err := j.Apply(actor, job.PickupPayload{}, t0.Add(5*time.Minute))
	require.NoError(t, err)
	pos, err := kernel.NewGeoPoint(1, 2)
	require.NoError(t, err)
	require.NoError(t, j.UpdateProgress(actor, 40, &pos, t0.Add(6*time.Minute)))

	_, err = j.Apply(actor, job.CancelPayload{}, t0.Add(7*time.Minute))
	require.ErrorIs(t, err, errs.ErrForbidden)

	_, err = j.Apply(admin, job.CancelPayload{}, t0.Add(8*time.Minute))
	require.NoError(t, err)

	assert.Equal(t, job.Available, j.Status())
	assert.Nil(t, j.AgentID())
	assert.Nil(t, j.AssignedAt())
	assert.Nil(t, j.PickedUpAt())
	assert.Nil(t, j.LastPosition())
	assert.Zero(t, j.ProgressPercent())
	assert.Equal(t, t0.Add(8*time.Minute), j.AvailableSince())

	_, err = j.Apply(admin, job.CancelPayload{}, t0.Add(9*time.Minute))
	require.ErrorIs(t, err, errs.ErrInvalidTransition)

	next := kernel.NewUUID()
	_, err = j.Claim(agentActor(t, next), next, t0.Add(10*time.Minute))
	require.NoError(t, err)
	assert.True(t, j.IsOwnedBy(next))
}

func TestJob_Release(t *testing.T) {
	agentID := kernel.NewUUID()
	actor := agentActor(t, agentID)

	j := claimedJob(t, agentID)
	_, err := j.Apply(actor, job.ReleasePayload{}, t0.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, job.Available, j.Status())
	assert.Nil(t, j.AgentID())

	j = claimedJob(t, agentID)
	_, err = j.Apply(actor, job.PickupPayload{}, t0.Add(time.Hour))
	require.NoError(t, err)
	_, err = j.Apply(actor, job.ReleasePayload{}, t0.Add(2*time.Hour))
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
}

func TestJob_UpdateProgress(t *testing.T) {
	agentID := kernel.NewUUID()
	actor := agentActor(t, agentID)

	t.Run("available job is rejected", func(t *testing.T) {
		j := newAvailableJob(t)
		err := j.UpdateProgress(job.NewAdminActor(), 10, nil, t0)
		require.ErrorIs(t, err, errs.ErrTerminalJob)
	})

	t.Run("records telemetry", func(t *testing.T) {
		j := claimedJob(t, agentID)
		require.NoError(t, j.UpdateProgress(actor, 25, nil, t0.Add(time.Minute)))
		assert.Equal(t, 25, j.ProgressPercent())
		assert.Nil(t, j.LastPosition())
		assert.Equal(t, job.Assigned, j.Status())
	})

	t.Run("out of range", func(t *testing.T) {
		j := claimedJob(t, agentID)
		require.ErrorIs(t, j.UpdateProgress(actor, 101, nil, t0), errs.ErrValueIsOutOfRange)
	})

	t.Run("other agent", func(t *testing.T) {
		j := claimedJob(t, agentID)
		err := j.UpdateProgress(agentActor(t, kernel.NewUUID()), 10, nil, t0)
		require.ErrorIs(t, err, errs.ErrForbidden)
	})
}

func TestRestoreJob(t *testing.T) {
	agentID := kernel.NewUUID()
	delivered := t0.Add(time.Hour)

	base := job.Snapshot{
		ID: kernel.NewUUID(), OrderID: kernel.NewUUID(),
		AvailableSince: t0, Version: 3, CreatedAt: t0, UpdatedAt: t0,
	}

	t.Run("round trip", func(t *testing.T) {
		s := base
		s.Status = job.Delivered
		s.AgentID = &agentID
		s.DeliveredAt = &delivered

		j, err := job.RestoreJob(s)
		require.NoError(t, err)
		assert.Equal(t, s, j.Snapshot())
	})

	t.Run("assigned without agent", func(t *testing.T) {
		s := base
		s.Status = job.Assigned
		_, err := job.RestoreJob(s)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("available with agent", func(t *testing.T) {
		s := base
		s.Status = job.Available
		s.AgentID = &agentID
		_, err := job.RestoreJob(s)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("delivered without timestamp", func(t *testing.T) {
		s := base
		s.Status = job.Delivered
		s.AgentID = &agentID
		_, err := job.RestoreJob(s)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("unknown status", func(t *testing.T) {
		_, err := job.RestoreJob(base)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
