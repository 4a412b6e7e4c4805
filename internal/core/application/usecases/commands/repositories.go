// Package commands contains the dispatch operations that modify state: the assignment
// pool manager (publish, claim, release, force assign) and the lifecycle driver
// (advance, cancel, progress, proof). Every handler runs in one transaction and only
// notifies collaborators after a successful commit.
package commands

import (
	"context"

	"dispatch/internal/core/ports"
)

// Unit of Work interfaces give each handler only the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// JobRepoFactory provides access to the job store within a transaction.
	JobRepoFactory interface {
		JobRepository() ports.JobRepository
	}

	// AgentRepoFactory provides access to agent records within a transaction.
	AgentRepoFactory interface {
		AgentRepository() ports.AgentRepository
	}

	// EarningRepoFactory provides access to the ledger within a transaction.
	EarningRepoFactory interface {
		EarningRepository() ports.EarningRepository
	}

	// JobUoW covers operations that change a single job and nothing else.
	JobUoW interface {
		TxManager
		JobRepoFactory
	}

	// JobUoWFactory creates new job unit of work instances.
	JobUoWFactory interface {
		Create() JobUoW
	}

	// AssignUoW covers claim and force assign, which check the agent record.
	AssignUoW interface {
		TxManager
		JobRepoFactory
		AgentRepoFactory
	}

	// AssignUoWFactory creates new assign unit of work instances.
	AssignUoWFactory interface {
		Create() AssignUoW
	}

	// UoW covers lifecycle transitions, which may append to the ledger in the same
	// transaction as the job update.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   j, err := uow.JobRepository().GetForUpdate(ctx, jobID)
	//   // ... apply the event, append the earning entry
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		JobRepoFactory
		EarningRepoFactory
	}

	// UoWFactory creates new lifecycle unit of work instances.
	UoWFactory interface {
		Create() UoW
	}
)
