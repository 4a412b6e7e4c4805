package ports

import (
	"context"

	"dispatch/internal/core/domain/model/earning"
)

// EarningRepository is the append-only earnings ledger. Entries are never updated.
type EarningRepository interface {
	// Add records an entry. A second entry for the same job returns errs.ErrDuplicateEntry.
	Add(ctx context.Context, entry *earning.Entry) error
}
