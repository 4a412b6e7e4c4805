package ports

import (
	"context"

	"dispatch/internal/core/domain/model/agent"
	"dispatch/internal/core/domain/model/kernel"
)

// AgentRepository reads agent records owned by the accounts subsystem.
type AgentRepository interface {
	Get(ctx context.Context, id kernel.UUID) (*agent.Agent, error)
}
