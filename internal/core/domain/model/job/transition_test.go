package job_test

import (
	"fmt"
	"testing"

	"dispatch/internal/core/domain/model/job"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type edge struct {
	from  job.Status
	event job.Event
}

// legal lists every accepted (status, event) pair with its target status.
var legal = map[edge]job.Status{
	{job.Available, job.EventClaim}:    job.Assigned,
	{job.Assigned, job.EventPickup}:    job.PickedUp,
	{job.PickedUp, job.EventDepart}:    job.InTransit,
	{job.InTransit, job.EventComplete}: job.Delivered,
	{job.Assigned, job.EventFail}:      job.Failed,
	{job.PickedUp, job.EventFail}:      job.Failed,
	{job.InTransit, job.EventFail}:     job.Failed,
	{job.Assigned, job.EventCancel}:    job.Available,
	{job.PickedUp, job.EventCancel}:    job.Available,
	{job.InTransit, job.EventCancel}:   job.Available,
	{job.Assigned, job.EventRelease}:   job.Available,
}

func allEvents() []job.Event {
	return []job.Event{
		job.EventClaim, job.EventPickup, job.EventDepart, job.EventComplete,
		job.EventFail, job.EventCancel, job.EventRelease,
	}
}

func TestDecide_EveryPairOutsideTableIsInvalid(t *testing.T) {
	for _, from := range append(allStatuses(), job.Unknown) {
		for _, event := range allEvents() {
			if _, ok := legal[edge{from, event}]; ok {
				continue
			}
			for _, role := range []job.Role{job.RoleAgent, job.RoleAdmin} {
				t.Run(fmt.Sprintf("%s_%s_%s", from, event, role), func(t *testing.T) {
					_, err := job.Decide(from, event, role)
					require.ErrorIs(t, err, errs.ErrInvalidTransition)

					var ite *errs.InvalidTransitionError
					require.ErrorAs(t, err, &ite)
					assert.Equal(t, from.String(), ite.From)
					assert.Equal(t, event.String(), ite.Event)
				})
			}
		}
	}
}

func TestDecide_LegalTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    job.Status
		event   job.Event
		role    job.Role
		owner   bool
		effects []job.Effect
	}{
		{"agent claims", job.Available, job.EventClaim, job.RoleAgent, false,
			[]job.Effect{job.EffectAssignAgent, job.EffectStampAssigned}},
		{"admin force claims", job.Available, job.EventClaim, job.RoleAdmin, false,
			[]job.Effect{job.EffectAssignAgent, job.EffectStampAssigned}},
		{"agent picks up", job.Assigned, job.EventPickup, job.RoleAgent, true,
			[]job.Effect{job.EffectStampPickedUp}},
		{"agent departs", job.PickedUp, job.EventDepart, job.RoleAgent, true, nil},
		{"agent completes", job.InTransit, job.EventComplete, job.RoleAgent, true,
			[]job.Effect{job.EffectRequireProof, job.EffectStampDelivered, job.EffectRecordEarnings}},
		{"agent fails", job.PickedUp, job.EventFail, job.RoleAgent, true,
			[]job.Effect{job.EffectStoreFailureReason}},
		{"admin fails", job.InTransit, job.EventFail, job.RoleAdmin, false,
			[]job.Effect{job.EffectStoreFailureReason}},
		{"admin cancels", job.PickedUp, job.EventCancel, job.RoleAdmin, false,
			[]job.Effect{job.EffectReleaseAgent, job.EffectStampAvailable}},
		{"agent releases", job.Assigned, job.EventRelease, job.RoleAgent, true,
			[]job.Effect{job.EffectReleaseAgent, job.EffectStampAvailable}},
		{"admin releases", job.Assigned, job.EventRelease, job.RoleAdmin, false,
			[]job.Effect{job.EffectReleaseAgent, job.EffectStampAvailable}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := job.Decide(tt.from, tt.event, tt.role)
			require.NoError(t, err)

			assert.Equal(t, tt.from, d.From)
			assert.Equal(t, legal[edge{tt.from, tt.event}], d.To)
			assert.Equal(t, tt.owner, d.RequiresOwner())
			assert.ElementsMatch(t, tt.effects, d.Effects)
			for _, e := range tt.effects {
				assert.True(t, d.Has(e))
			}
		})
	}
}

func TestDecide_RoleNotAllowed(t *testing.T) {
	tests := []struct {
		from  job.Status
		event job.Event
		role  job.Role
	}{
		{job.Assigned, job.EventCancel, job.RoleAgent},
		{job.Assigned, job.EventPickup, job.RoleAdmin},
		{job.PickedUp, job.EventDepart, job.RoleAdmin},
		{job.InTransit, job.EventComplete, job.RoleAdmin},
		{job.Available, job.EventClaim, job.RoleUnknown},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s_%s_%s", tt.from, tt.event, tt.role), func(t *testing.T) {
			_, err := job.Decide(tt.from, tt.event, tt.role)
			require.ErrorIs(t, err, errs.ErrForbidden)
		})
	}
}

func TestDecide_ReturnsIndependentEffects(t *testing.T) {
	d1, err := job.Decide(job.Available, job.EventClaim, job.RoleAgent)
	require.NoError(t, err)
	d1.Effects[0] = job.EffectRecordEarnings

	d2, err := job.Decide(job.Available, job.EventClaim, job.RoleAgent)
	require.NoError(t, err)
	assert.Equal(t, job.EffectAssignAgent, d2.Effects[0])
}
