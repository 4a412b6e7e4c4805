package queries

import (
	"context"

	"dispatch/internal/core/domain/model/job"

	"gorm.io/gorm"
)

// ListAvailableJobsQueryHandler lists AVAILABLE jobs ordered by the time they entered the
// pool, ties broken by id so that pages are stable. Without a limit every AVAILABLE job
// is returned.
type ListAvailableJobsQueryHandler struct {
	db *gorm.DB
}

func NewListAvailableJobsQueryHandler(db *gorm.DB) ListAvailableJobsQueryHandler {
	return ListAvailableJobsQueryHandler{db: db}
}

func (h ListAvailableJobsQueryHandler) Handle(ctx context.Context, query ListAvailableJobsQuery) ([]JobView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := `
		SELECT ` + jobColumns + `
		FROM jobs
		WHERE status = ?
		ORDER BY available_since, id`
	args := []any{int(job.Available)}
	if query.Limit() > 0 {
		stmt += `
		LIMIT ?`
		args = append(args, query.Limit())
	}

	rows, err := h.db.WithContext(ctx).Raw(stmt, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanJobViews(rows)
}
