// Package postgres provides the GORM-based Unit of Work for the dispatch service.
//
// One UnitOfWork is one database transaction. Repositories obtained from it run inside
// that transaction, and row locks they take (GetForUpdate) are held until Commit or
// Rollback.
//
// Basic usage:
//
//	factory := NewGormUnitOfWorkFactory(db, 2*time.Second)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	j, err := uow.JobRepository().GetForUpdate(ctx, jobID)
//	if err != nil {
//	    return err
//	}
//	// ... change the job
//	if err := uow.JobRepository().Update(ctx, j); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Lock waits:
//   - on PostgreSQL Begin issues SET LOCAL lock_timeout, so a claim that queues behind
//     another transaction gives up after the configured duration with errs.ErrBusy
//   - other dialects (SQLite in tests) have no row locks and serialise writers instead
package postgres

import (
	"context"
	"fmt"
	"time"

	"dispatch/internal/adapters/out/postgres/agentrepo"
	"dispatch/internal/adapters/out/postgres/earningrepo"
	"dispatch/internal/adapters/out/postgres/jobrepo"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate written during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db          *gorm.DB
	lockTimeout time.Duration
}

// NewGormUnitOfWorkFactory creates a factory. A zero lockTimeout leaves the server
// default (wait forever) in place.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
//	if err != nil {
//	    return err
//	}
//	factory := NewGormUnitOfWorkFactory(db, cfg.LockTimeout)
func NewGormUnitOfWorkFactory(db *gorm.DB, lockTimeout time.Duration) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db, lockTimeout: lockTimeout}
}

// Create produces a new UnitOfWork with its own transaction state.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		lockTimeout:       f.lockTimeout,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one transaction and records which aggregates were written.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	lockTimeout       time.Duration
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. Calling Begin on an active unit of work is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	if uow.lockTimeout > 0 && uow.db.Dialector.Name() == "postgres" {
		// SET does not take bind parameters; the value is a formatted integer.
		stmt := fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", uow.lockTimeout.Milliseconds())
		if err := tx.Exec(stmt).Error; err != nil {
			_ = tx.Rollback()
			return err
		}
	}

	uow.tx = tx
	return nil
}

// Commit finalizes the transaction and releases its row locks.
// Returns gorm.ErrInvalidTransaction if no transaction is active.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the transaction. After Commit there is nothing to roll back and
// gorm.ErrInvalidTransaction is returned, which deferred calls ignore.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// JobRepository returns the job store bound to the current transaction, or to the
// connection pool when no transaction is active.
func (uow *GormUnitOfWork) JobRepository() ports.JobRepository {
	return jobrepo.NewGormJobRepository(uow.conn(), uow)
}

// EarningRepository returns the ledger bound to the current transaction.
func (uow *GormUnitOfWork) EarningRepository() ports.EarningRepository {
	return earningrepo.NewGormEarningRepository(uow.conn(), uow)
}

// AgentRepository returns agent records bound to the current transaction.
func (uow *GormUnitOfWork) AgentRepository() ports.AgentRepository {
	return agentrepo.NewGormAgentRepository(uow.conn())
}

// TrackAggregate registers an aggregate written within this unit of work.
// Repositories call it after each successful Add or Update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// TrackedCount returns how many writes the unit of work has seen.
func (uow *GormUnitOfWork) TrackedCount() int {
	return len(uow.trackedAggregates)
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
