package jobrepo

import (
	"context"
	"errors"

	"dispatch/internal/adapters/out/postgres/pgerr"
	"dispatch/internal/core/domain/model/job"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormJobRepository implements ports.JobRepository using GORM.
type GormJobRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormJobRepository(db *gorm.DB, tracker aggregateTracker) *GormJobRepository {
	return &GormJobRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a newly published job. A second active job for the same order violates
// the partial unique index and is reported as errs.ErrDuplicateActiveJob.
func (r *GormJobRepository) Add(ctx context.Context, aggregate *job.Job) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err, ActiveOrderIndex) {
			return errs.ErrDuplicateActiveJob
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes every column of the job, guarded by the version it was read with.
// Zero affected rows means the row changed or vanished since it was read.
func (r *GormJobRepository) Update(ctx context.Context, aggregate *job.Job) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	expected := dto.Version
	dto.Version = expected + 1

	result := r.db.WithContext(ctx).
		Model(&JobDTO{}).
		Where("id = ? AND version = ?", dto.ID, expected).
		Select("*").
		Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		if pgerr.IsUniqueViolation(result.Error, ActiveOrderIndex) {
			return errs.ErrDuplicateActiveJob
		}
		if pgerr.IsLockContention(result.Error) {
			return errs.NewBusyError("job "+aggregate.ID().String(), result.Error)
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewBusyError(
			"job "+aggregate.ID().String(),
			errs.NewVersionIsInvalidErrorWithCause("version"),
		)
	}

	aggregate.MarkStored()
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get reads a job without locking it.
func (r *GormJobRepository) Get(ctx context.Context, id kernel.UUID) (*job.Job, error) {
	return r.first(r.db.WithContext(ctx), id)
}

// GetForUpdate reads a job under SELECT ... FOR UPDATE. On PostgreSQL the wait is bounded
// by the lock_timeout the unit of work set for the transaction.
func (r *GormJobRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*job.Job, error) {
	return r.first(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

// GetActiveByOrderForUpdate locks the order's active job.
func (r *GormJobRepository) GetActiveByOrderForUpdate(ctx context.Context, orderID kernel.UUID) (*job.Job, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto JobDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("order_id = ? AND status IN ?", orderID.Bytes(), activeStatusValues()).
		First(&dto).Error
	if err != nil {
		return nil, r.translateReadError(err, "orderID", orderID)
	}

	return toDomain(dto)
}

func (r *GormJobRepository) first(db *gorm.DB, id kernel.UUID) (*job.Job, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto JobDTO
	if err := db.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, r.translateReadError(err, "job", id)
	}

	return toDomain(dto)
}

func (r *GormJobRepository) translateReadError(err error, param string, id kernel.UUID) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return errs.NewObjectNotFoundError(param, id.String())
	case pgerr.IsLockContention(err):
		return errs.NewBusyError("job", err)
	default:
		return err
	}
}

func activeStatusValues() []int {
	statuses := job.ActiveStatuses()
	values := make([]int, 0, len(statuses))
	for _, s := range statuses {
		values = append(values, int(s))
	}
	return values
}
