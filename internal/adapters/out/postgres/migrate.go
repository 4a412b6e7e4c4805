package postgres

import (
	"dispatch/internal/adapters/out/postgres/agentrepo"
	"dispatch/internal/adapters/out/postgres/earningrepo"
	"dispatch/internal/adapters/out/postgres/jobrepo"

	"gorm.io/gorm"
)

// Models lists every table owned by the dispatch service.
func Models() []any {
	return []any{
		&agentrepo.AgentDTO{},
		&jobrepo.JobDTO{},
		&earningrepo.EarningEntryDTO{},
	}
}

// Migrate creates or alters the tables and indexes, including the partial unique index
// that allows one active job per order.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
