package queries

import (
	"context"

	"dispatch/internal/core/domain/model/job"

	"gorm.io/gorm"
)

// ListPoolQueryHandler returns all jobs in AVAILABLE, ASSIGNED, PICKED_UP or IN_TRANSIT.
type ListPoolQueryHandler struct {
	db *gorm.DB
}

func NewListPoolQueryHandler(db *gorm.DB) ListPoolQueryHandler {
	return ListPoolQueryHandler{db: db}
}

func (h ListPoolQueryHandler) Handle(ctx context.Context, query ListPoolQuery) ([]JobView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	active := make([]int, 0, len(job.ActiveStatuses()))
	for _, s := range job.ActiveStatuses() {
		active = append(active, int(s))
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+jobColumns+`
		FROM jobs
		WHERE status IN ?
		ORDER BY status, available_since, id
	`, active).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanJobViews(rows)
}
