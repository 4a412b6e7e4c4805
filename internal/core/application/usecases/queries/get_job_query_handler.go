package queries

import (
	"context"

	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetJobQueryHandler struct {
	db *gorm.DB
}

func NewGetJobQueryHandler(db *gorm.DB) GetJobQueryHandler {
	return GetJobQueryHandler{db: db}
}

// Handle returns the job or errs.ErrObjectNotFound.
func (h GetJobQueryHandler) Handle(ctx context.Context, query GetJobQuery) (JobView, error) {
	if err := query.Validate(); err != nil {
		return JobView{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+jobColumns+`
		FROM jobs
		WHERE id = ?
	`, query.JobID().Bytes()).Rows()
	if err != nil {
		return JobView{}, err
	}
	defer rows.Close()

	views, err := scanJobViews(rows)
	if err != nil {
		return JobView{}, err
	}
	if len(views) == 0 {
		return JobView{}, errs.NewObjectNotFoundError("job", query.JobID().String())
	}

	return views[0], nil
}
