// Package earningrepo stores the append-only earnings ledger in the earning_entries table.
package earningrepo

import (
	"time"

	"dispatch/internal/core/domain/model/earning"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// JobIndex allows one ledger entry per job.
const JobIndex = "idx_earning_entries_job"

type EarningEntryDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	JobID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_earning_entries_job"`
	AgentID  uuid.UUID `gorm:"type:uuid;not null;index:idx_earning_entries_agent,priority:1"`
	Amount   int64     `gorm:"not null"`
	EarnedAt time.Time `gorm:"not null;index:idx_earning_entries_agent,priority:2"`
}

func (EarningEntryDTO) TableName() string {
	return "earning_entries"
}

func fromDomain(e *earning.Entry) EarningEntryDTO {
	return EarningEntryDTO{
		ID:       e.ID().Bytes(),
		JobID:    e.JobID().Bytes(),
		AgentID:  e.AgentID().Bytes(),
		Amount:   e.Amount(),
		EarnedAt: e.EarnedAt(),
	}
}

func toDomain(dto EarningEntryDTO) (*earning.Entry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	jobID, err := kernel.UUIDFromBytes(dto.JobID[:])
	if err != nil {
		return nil, err
	}
	agentID, err := kernel.UUIDFromBytes(dto.AgentID[:])
	if err != nil {
		return nil, err
	}

	return earning.RestoreEntry(id, jobID, agentID, dto.Amount, dto.EarnedAt)
}
