// Package pgerr classifies database errors returned through gorm so that repositories
// can translate them into dispatch errors.
package pgerr

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// IsUniqueViolation reports a unique constraint violation. With constraint names given,
// only a PostgreSQL violation of one of those constraints matches; errors translated by
// gorm (gorm.ErrDuplicatedKey) carry no constraint name and always match.
func IsUniqueViolation(err error, constraints ...string) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code != pgerrcode.UniqueViolation {
			return false
		}
		if len(constraints) == 0 {
			return true
		}
		for _, name := range constraints {
			if pgErr.ConstraintName == name {
				return true
			}
		}
		return false
	}

	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// IsLockContention reports that the statement gave up waiting for a row lock, or that
// PostgreSQL aborted it to resolve a conflict. Retrying later may succeed.
func IsLockContention(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgerrcode.LockNotAvailable,
		pgerrcode.DeadlockDetected,
		pgerrcode.SerializationFailure:
		return true
	default:
		return false
	}
}
