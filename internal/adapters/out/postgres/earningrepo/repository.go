package earningrepo

import (
	"context"
	"errors"

	"dispatch/internal/adapters/out/postgres/pgerr"
	"dispatch/internal/core/domain/model/earning"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormEarningRepository implements ports.EarningRepository using GORM.
// Entries are inserted and read, never updated or deleted.
type GormEarningRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormEarningRepository(db *gorm.DB, tracker aggregateTracker) *GormEarningRepository {
	return &GormEarningRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add appends an entry. The unique index on job_id turns a second entry for the same
// job into errs.ErrDuplicateEntry.
func (r *GormEarningRepository) Add(ctx context.Context, entry *earning.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err, JobIndex) {
			return errs.ErrDuplicateEntry
		}
		return err
	}

	r.tracker.TrackAggregate(entry.ID(), entry)
	return nil
}

// GetByJob returns the entry recorded for a job.
func (r *GormEarningRepository) GetByJob(ctx context.Context, jobID kernel.UUID) (*earning.Entry, error) {
	if err := jobID.Validate(); err != nil {
		return nil, err
	}

	var dto EarningEntryDTO
	if err := r.db.WithContext(ctx).First(&dto, "job_id = ?", jobID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("jobID", jobID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
