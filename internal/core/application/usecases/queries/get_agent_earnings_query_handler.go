package queries

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAgentEarningsQueryHandler sums and lists an agent's earning entries.
// An agent with no entries in the period gets a zero total and an empty list.
type GetAgentEarningsQueryHandler struct {
	db *gorm.DB
}

func NewGetAgentEarningsQueryHandler(db *gorm.DB) GetAgentEarningsQueryHandler {
	return GetAgentEarningsQueryHandler{db: db}
}

func (h GetAgentEarningsQueryHandler) Handle(
	ctx context.Context,
	query GetAgentEarningsQuery,
) (AgentEarningsResponse, error) {
	if err := query.Validate(); err != nil {
		return AgentEarningsResponse{}, err
	}

	response := AgentEarningsResponse{
		AgentID: query.AgentID(),
		From:    query.From(),
		To:      query.To(),
		Entries: make([]EarningView, 0),
	}

	db := h.db.WithContext(ctx)
	agentID := query.AgentID().Bytes()

	err := db.Raw(`
		SELECT CAST(COALESCE(SUM(amount), 0) AS BIGINT)
		FROM earning_entries
		WHERE agent_id = ? AND earned_at >= ? AND earned_at < ?
	`, agentID, query.From(), query.To()).Scan(&response.Total).Error
	if err != nil {
		return AgentEarningsResponse{}, err
	}

	rows, err := db.Raw(`
		SELECT id, job_id, amount, earned_at
		FROM earning_entries
		WHERE agent_id = ? AND earned_at >= ? AND earned_at < ?
		ORDER BY earned_at, id
	`, agentID, query.From(), query.To()).Rows()
	if err != nil {
		return AgentEarningsResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry EarningView
		var id, jobID uuid.UUID

		if err = rows.Scan(&id, &jobID, &entry.Amount, &entry.EarnedAt); err != nil {
			return AgentEarningsResponse{}, err
		}
		if entry.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return AgentEarningsResponse{}, err
		}
		if entry.JobID, err = kernel.UUIDFromBytes(jobID[:]); err != nil {
			return AgentEarningsResponse{}, err
		}

		response.Entries = append(response.Entries, entry)
	}

	if err = rows.Err(); err != nil {
		return AgentEarningsResponse{}, err
	}

	return response, nil
}
