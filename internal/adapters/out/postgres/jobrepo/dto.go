// Package jobrepo stores job aggregates in the jobs table.
package jobrepo

import (
	"time"

	"dispatch/internal/core/domain/model/job"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ActiveOrderIndex enforces at most one active job per order. The predicate spells out
// the active status range (AVAILABLE..IN_TRANSIT) without commas because gorm splits
// index settings on them.
const ActiveOrderIndex = "idx_jobs_active_order"

// JobDTO is the row layout of the jobs table.
type JobDTO struct {
	ID      uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:idx_jobs_active_order,where:status BETWEEN 1 AND 4"`
	AgentID *uuid.UUID `gorm:"type:uuid;index"`
	Status  int        `gorm:"not null;index:idx_jobs_pool,priority:1"`

	// IsAvailable is written from Status on every save and never set on its own.
	IsAvailable bool `gorm:"not null"`

	AvailableSince       time.Time `gorm:"not null;index:idx_jobs_pool,priority:2"`
	AssignedAt           *time.Time
	PickedUpAt           *time.Time
	DeliveredAt          *time.Time
	ExpectedDeliveryTime *time.Time
	ActualDeliveryTime   *time.Time

	DistanceKm    float64 `gorm:"not null"`
	PodImageRef   string
	SignatureRef  string
	DeliveryNotes string
	FailureReason string

	ProgressPercent   int `gorm:"not null;default:0"`
	LastLatitude      *float64
	LastLongitude     *float64
	ProgressUpdatedAt *time.Time

	Version   int       `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime:false"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime:false"`
}

func (JobDTO) TableName() string {
	return "jobs"
}

func fromDomain(j *job.Job) JobDTO {
	s := j.Snapshot()

	dto := JobDTO{
		ID:                   s.ID.Bytes(),
		OrderID:              s.OrderID.Bytes(),
		AgentID:              kernel.NullableBytes(s.AgentID),
		Status:               int(s.Status),
		IsAvailable:          s.Status == job.Available,
		AvailableSince:       s.AvailableSince,
		AssignedAt:           s.AssignedAt,
		PickedUpAt:           s.PickedUpAt,
		DeliveredAt:          s.DeliveredAt,
		ExpectedDeliveryTime: s.ExpectedDeliveryTime,
		ActualDeliveryTime:   s.ActualDeliveryTime,
		DistanceKm:           s.DistanceKm,
		FailureReason:        s.FailureReason,
		ProgressPercent:      s.ProgressPercent,
		ProgressUpdatedAt:    s.ProgressUpdatedAt,
		Version:              s.Version,
		CreatedAt:            s.CreatedAt,
		UpdatedAt:            s.UpdatedAt,
	}

	if s.Proof != nil {
		dto.PodImageRef = s.Proof.ImageRef()
		dto.SignatureRef = s.Proof.SignatureRef()
		dto.DeliveryNotes = s.Proof.Notes()
	}

	if s.LastPosition != nil {
		lat, lng := s.LastPosition.Latitude(), s.LastPosition.Longitude()
		dto.LastLatitude = &lat
		dto.LastLongitude = &lng
	}

	return dto
}

func toDomain(dto JobDTO) (*job.Job, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	agentID, err := kernel.UUIDPtrFromNullable(dto.AgentID)
	if err != nil {
		return nil, err
	}

	var proof *job.ProofOfDelivery
	if dto.PodImageRef != "" || dto.SignatureRef != "" {
		p, proofErr := job.NewProofOfDelivery(dto.PodImageRef, dto.SignatureRef, dto.DeliveryNotes)
		if proofErr != nil {
			return nil, proofErr
		}
		proof = &p
	}

	var position *kernel.GeoPoint
	if dto.LastLatitude != nil && dto.LastLongitude != nil {
		p, posErr := kernel.NewGeoPoint(*dto.LastLatitude, *dto.LastLongitude)
		if posErr != nil {
			return nil, posErr
		}
		position = &p
	}

	return job.RestoreJob(job.Snapshot{
		ID:                   id,
		OrderID:              orderID,
		AgentID:              agentID,
		Status:               job.Status(dto.Status),
		AvailableSince:       dto.AvailableSince,
		AssignedAt:           dto.AssignedAt,
		PickedUpAt:           dto.PickedUpAt,
		DeliveredAt:          dto.DeliveredAt,
		ExpectedDeliveryTime: dto.ExpectedDeliveryTime,
		ActualDeliveryTime:   dto.ActualDeliveryTime,
		DistanceKm:           dto.DistanceKm,
		Proof:                proof,
		FailureReason:        dto.FailureReason,
		ProgressPercent:      dto.ProgressPercent,
		LastPosition:         position,
		ProgressUpdatedAt:    dto.ProgressUpdatedAt,
		Version:              dto.Version,
		CreatedAt:            dto.CreatedAt,
		UpdatedAt:            dto.UpdatedAt,
	})
}
