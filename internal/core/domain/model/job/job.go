package job

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrJobIsNotConstructed = errors.New("Job must be created via NewJob or RestoreJob constructor")

const (
	MaxDistanceKm   = 1000.0
	MaxProgress     = 100
	maxReasonLength = 500
)

// Job is the dispatch aggregate root: one deliverable unit derived from an order.
//
// Job follows these invariants:
//   - an agent is recorded exactly when the status is not AVAILABLE
//   - deliveredAt is set exactly when the status is DELIVERED and never changes afterwards
//   - assignedAt <= pickedUpAt <= deliveredAt whenever they are set
//   - every status change goes through Decide
//
// Fields are private; persistence goes through Snapshot and RestoreJob.
type Job struct {
	id      kernel.UUID
	orderID kernel.UUID
	agentID *kernel.UUID
	status  Status

	availableSince       time.Time
	assignedAt           *time.Time
	pickedUpAt           *time.Time
	deliveredAt          *time.Time
	expectedDeliveryTime *time.Time
	actualDeliveryTime   *time.Time

	distanceKm    float64
	proof         *ProofOfDelivery
	failureReason string

	progressPercent   int
	lastPosition      *kernel.GeoPoint
	progressUpdatedAt *time.Time

	version   int
	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewJob publishes a job for an order. The job starts AVAILABLE with availableSince = now.
//
// Example:
//
//	j, err := job.NewJob(kernel.NewUUID(), orderID, 4.2, nil, clock())
func NewJob(
	id kernel.UUID,
	orderID kernel.UUID,
	distanceKm float64,
	expectedDeliveryTime *time.Time,
	now time.Time,
) (*Job, error) {
	j := &Job{
		status:               Available,
		availableSince:       now,
		expectedDeliveryTime: expectedDeliveryTime,
		version:              1,
		createdAt:            now,
		updatedAt:            now,
		guard:                guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		j.setID(id),
		j.setOrderID(orderID),
		j.setDistanceKm(distanceKm),
	); err != nil {
		return nil, err
	}

	return j, nil
}

// Snapshot is the flat persisted form of a Job.
type Snapshot struct {
	ID                   kernel.UUID
	OrderID              kernel.UUID
	AgentID              *kernel.UUID
	Status               Status
	AvailableSince       time.Time
	AssignedAt           *time.Time
	PickedUpAt           *time.Time
	DeliveredAt          *time.Time
	ExpectedDeliveryTime *time.Time
	ActualDeliveryTime   *time.Time
	DistanceKm           float64
	Proof                *ProofOfDelivery
	FailureReason        string
	ProgressPercent      int
	LastPosition         *kernel.GeoPoint
	ProgressUpdatedAt    *time.Time
	Version              int
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// RestoreJob rebuilds a job from storage and re-checks the aggregate invariants.
func RestoreJob(s Snapshot) (*Job, error) {
	j := &Job{
		agentID:              s.AgentID,
		availableSince:       s.AvailableSince,
		assignedAt:           s.AssignedAt,
		pickedUpAt:           s.PickedUpAt,
		deliveredAt:          s.DeliveredAt,
		expectedDeliveryTime: s.ExpectedDeliveryTime,
		actualDeliveryTime:   s.ActualDeliveryTime,
		proof:                s.Proof,
		failureReason:        s.FailureReason,
		lastPosition:         s.LastPosition,
		progressUpdatedAt:    s.ProgressUpdatedAt,
		version:              s.Version,
		createdAt:            s.CreatedAt,
		updatedAt:            s.UpdatedAt,
		guard:                guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		j.setID(s.ID),
		j.setOrderID(s.OrderID),
		j.setDistanceKm(s.DistanceKm),
		j.setStatus(s.Status),
		j.setProgress(s.ProgressPercent),
	); err != nil {
		return nil, err
	}

	if err := s.Status.ValidateCanHaveAgent(s.AgentID != nil); err != nil {
		return nil, err
	}

	if (s.Status == Delivered) != (s.DeliveredAt != nil) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"deliveredAt",
			fmt.Errorf("deliveredAt must be set only for %s jobs", Delivered),
		)
	}

	return j, nil
}

// Validate ensures the job was created through NewJob or RestoreJob.
func (j *Job) Validate() error {
	if j == nil {
		return ErrJobIsNotConstructed
	}
	return j.guard.Validate(ErrJobIsNotConstructed)
}

func (j *Job) ID() kernel.UUID                  { return j.id }
func (j *Job) OrderID() kernel.UUID             { return j.orderID }
func (j *Job) AgentID() *kernel.UUID            { return j.agentID }
func (j *Job) Status() Status                   { return j.status }
func (j *Job) IsAvailable() bool                { return j.status == Available }
func (j *Job) AvailableSince() time.Time        { return j.availableSince }
func (j *Job) AssignedAt() *time.Time           { return j.assignedAt }
func (j *Job) PickedUpAt() *time.Time           { return j.pickedUpAt }
func (j *Job) DeliveredAt() *time.Time          { return j.deliveredAt }
func (j *Job) ExpectedDeliveryTime() *time.Time { return j.expectedDeliveryTime }
func (j *Job) ActualDeliveryTime() *time.Time   { return j.actualDeliveryTime }
func (j *Job) DistanceKm() float64              { return j.distanceKm }
func (j *Job) Proof() *ProofOfDelivery          { return j.proof }
func (j *Job) FailureReason() string            { return j.failureReason }
func (j *Job) ProgressPercent() int             { return j.progressPercent }
func (j *Job) LastPosition() *kernel.GeoPoint   { return j.lastPosition }
func (j *Job) ProgressUpdatedAt() *time.Time    { return j.progressUpdatedAt }
func (j *Job) Version() int                     { return j.version }
func (j *Job) CreatedAt() time.Time             { return j.createdAt }
func (j *Job) UpdatedAt() time.Time             { return j.updatedAt }

// Snapshot exports the current state for persistence.
func (j *Job) Snapshot() Snapshot {
	return Snapshot{
		ID:                   j.id,
		OrderID:              j.orderID,
		AgentID:              j.agentID,
		Status:               j.status,
		AvailableSince:       j.availableSince,
		AssignedAt:           j.assignedAt,
		PickedUpAt:           j.pickedUpAt,
		DeliveredAt:          j.deliveredAt,
		ExpectedDeliveryTime: j.expectedDeliveryTime,
		ActualDeliveryTime:   j.actualDeliveryTime,
		DistanceKm:           j.distanceKm,
		Proof:                j.proof,
		FailureReason:        j.failureReason,
		ProgressPercent:      j.progressPercent,
		LastPosition:         j.lastPosition,
		ProgressUpdatedAt:    j.progressUpdatedAt,
		Version:              j.version,
		CreatedAt:            j.createdAt,
		UpdatedAt:            j.updatedAt,
	}
}

// IsOwnedBy reports whether agentID is the agent currently recorded on the job.
func (j *Job) IsOwnedBy(agentID kernel.UUID) bool {
	return j.agentID != nil && j.agentID.IsEqual(agentID)
}

// MarkStored is called by the repository once a versioned write succeeded, so that a
// later write in the same transaction expects the new version.
func (j *Job) MarkStored() {
	j.version++
}

// Claim hands an AVAILABLE job to agentID. It must run on a row read under lock.
//
// Errors:
//   - errs.ErrAlreadyClaimed if an agent is already recorded
//   - errs.ErrNotAvailable if the job is not AVAILABLE
//   - errs.ErrForbidden if an agent tries to claim on behalf of someone else
func (j *Job) Claim(actor Actor, agentID kernel.UUID, now time.Time) (Decision, error) {
	if err := j.Validate(); err != nil {
		return Decision{}, err
	}
	if j.agentID != nil {
		return Decision{}, errs.ErrAlreadyClaimed
	}
	if j.status != Available {
		return Decision{}, errs.ErrNotAvailable
	}
	if self, ok := actor.AgentID(); ok && !self.IsEqual(agentID) {
		return Decision{}, errs.NewForbiddenError(actor.Role().String(), "claim on behalf of another agent")
	}

	return j.Apply(actor, ClaimPayload{AgentID: agentID}, now)
}

// Apply runs payload's event through Decide and applies the resulting effects.
// Preconditions are checked before any field changes, so a rejected event leaves the
// job untouched. The returned decision tells the caller which effects need work
// outside the aggregate (EffectRecordEarnings).
func (j *Job) Apply(actor Actor, payload Payload, now time.Time) (Decision, error) {
	if err := errors.Join(j.Validate(), actor.Validate()); err != nil {
		return Decision{}, err
	}
	if payload == nil {
		return Decision{}, errs.NewValueIsRequiredError("payload")
	}

	decision, err := Decide(j.status, payload.Event(), actor.Role())
	if err != nil {
		return Decision{}, err
	}

	if decision.RequiresOwner() {
		if err = j.checkOwner(actor, decision.Event.String()); err != nil {
			return Decision{}, err
		}
	}

	if err = j.checkEffects(decision, payload); err != nil {
		return Decision{}, err
	}

	j.applyEffects(decision, payload, now)
	j.status = decision.To
	j.updatedAt = now

	return decision, nil
}

// UpdateProgress records telemetry without changing status.
// Only the owning agent or an admin may report; the job must be in progress.
func (j *Job) UpdateProgress(actor Actor, percent int, position *kernel.GeoPoint, now time.Time) error {
	if err := j.checkInProgress(actor, "update progress"); err != nil {
		return err
	}
	if percent < 0 || percent > MaxProgress {
		return errs.NewValueIsOutOfRangeError("percent", percent, 0, MaxProgress)
	}
	if position != nil {
		if err := position.Validate(); err != nil {
			return err
		}
	}

	j.progressPercent = percent
	if position != nil {
		p := *position
		j.lastPosition = &p
	}
	j.progressUpdatedAt = &now
	j.updatedAt = now
	return nil
}

// AttachProof stores proof of delivery ahead of the complete event. Proof can be replaced
// while the job is in progress and is frozen once the job is DELIVERED.
func (j *Job) AttachProof(actor Actor, proof ProofOfDelivery, now time.Time) error {
	if err := j.checkInProgress(actor, "attach proof of delivery"); err != nil {
		return err
	}
	if err := proof.Validate(); err != nil {
		return err
	}

	j.proof = &proof
	j.updatedAt = now
	return nil
}

func (j *Job) checkInProgress(actor Actor, action string) error {
	if err := errors.Join(j.Validate(), actor.Validate()); err != nil {
		return err
	}
	if !j.status.IsInProgress() {
		return fmt.Errorf("%w: %s", errs.ErrTerminalJob, j.status)
	}
	return j.checkOwner(actor, action)
}

func (j *Job) checkOwner(actor Actor, action string) error {
	if actor.IsAdmin() {
		return nil
	}
	if self, ok := actor.AgentID(); ok && j.IsOwnedBy(self) {
		return nil
	}
	return errs.NewForbiddenError(actor.String(), action+" on a job it does not own")
}

func (j *Job) checkEffects(d Decision, payload Payload) error {
	if d.Has(EffectAssignAgent) {
		claim, ok := payload.(ClaimPayload)
		if !ok {
			return errs.NewValueIsInvalidError("payload")
		}
		if err := claim.AgentID.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause("agentID", err)
		}
	}

	if d.Has(EffectRequireProof) {
		complete, ok := payload.(CompletePayload)
		if !ok {
			return errs.NewValueIsInvalidError("payload")
		}
		if complete.Proof != nil {
			if err := complete.Proof.Validate(); err != nil {
				return err
			}
		} else if j.proof == nil && !complete.WaiveProof {
			return errs.NewValueIsRequiredError("proof of delivery")
		}
	}

	if d.Has(EffectStoreFailureReason) {
		fail, ok := payload.(FailPayload)
		if !ok {
			return errs.NewValueIsInvalidError("payload")
		}
		reason := strings.TrimSpace(fail.Reason)
		if reason == "" {
			return errs.NewValueIsRequiredError("reason")
		}
		if len(reason) > maxReasonLength {
			return errs.NewValueIsOutOfRangeError("reason length", len(reason), 1, maxReasonLength)
		}
	}

	return nil
}

func (j *Job) applyEffects(d Decision, payload Payload, now time.Time) {
	for _, effect := range d.Effects {
		switch effect {
		case EffectAssignAgent:
			agentID := payload.(ClaimPayload).AgentID
			j.agentID = &agentID
		case EffectStampAssigned:
			j.assignedAt = stampAfter(now, &j.availableSince)
		case EffectStampPickedUp:
			j.pickedUpAt = stampAfter(now, j.assignedAt)
		case EffectRequireProof:
			if proof := payload.(CompletePayload).Proof; proof != nil {
				p := *proof
				j.proof = &p
			}
		case EffectStampDelivered:
			j.deliveredAt = stampAfter(now, j.pickedUpAt)
			j.actualDeliveryTime = j.deliveredAt
			j.progressPercent = MaxProgress
		case EffectStoreFailureReason:
			j.failureReason = strings.TrimSpace(payload.(FailPayload).Reason)
		case EffectReleaseAgent:
			j.agentID = nil
			j.assignedAt = nil
			j.pickedUpAt = nil
			j.proof = nil
			j.progressPercent = 0
			j.lastPosition = nil
			j.progressUpdatedAt = nil
		case EffectStampAvailable:
			j.availableSince = now
		case EffectRecordEarnings:
			// applied by the caller in the same transaction
		}
	}
}

// stampAfter keeps lifecycle timestamps monotonic even if the clock steps backwards.
func stampAfter(now time.Time, previous *time.Time) *time.Time {
	if previous != nil && now.Before(*previous) {
		t := *previous
		return &t
	}
	return &now
}

func (j *Job) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("id", err)
	}
	j.id = id
	return nil
}

func (j *Job) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}
	j.orderID = orderID
	return nil
}

func (j *Job) setDistanceKm(distanceKm float64) error {
	if math.IsNaN(distanceKm) || distanceKm < 0 || distanceKm > MaxDistanceKm {
		return errs.NewValueIsOutOfRangeError("distanceKm", distanceKm, 0, MaxDistanceKm)
	}
	j.distanceKm = distanceKm
	return nil
}

func (j *Job) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	j.status = status
	return nil
}

func (j *Job) setProgress(percent int) error {
	if percent < 0 || percent > MaxProgress {
		return errs.NewValueIsOutOfRangeError("progressPercent", percent, 0, MaxProgress)
	}
	j.progressPercent = percent
	return nil
}
