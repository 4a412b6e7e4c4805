// Package agentrepo reads agent records. Agents are owned by the accounts subsystem;
// dispatch only checks that a claimant exists and is active.
package agentrepo

import (
	"dispatch/internal/core/domain/model/agent"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type AgentDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserRef  string    `gorm:"not null;uniqueIndex"`
	IsOnline bool      `gorm:"not null;default:false"`
	Rating   float64   `gorm:"not null;default:0"`
	Status   int       `gorm:"not null;index"`
}

func (AgentDTO) TableName() string {
	return "agents"
}

func fromDomain(a *agent.Agent) AgentDTO {
	return AgentDTO{
		ID:       a.ID().Bytes(),
		UserRef:  a.UserRef(),
		IsOnline: a.IsOnline(),
		Rating:   a.Rating(),
		Status:   int(a.Status()),
	}
}

func toDomain(dto AgentDTO) (*agent.Agent, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return agent.RestoreAgent(id, dto.UserRef, dto.IsOnline, dto.Rating, agent.Status(dto.Status))
}
