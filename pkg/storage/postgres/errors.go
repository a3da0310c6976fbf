package postgres

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"scanguard/pkg/serrors"
	"scanguard/pkg/storage"
)

// wrapUniqueViolation marks unique constraint violations with storage.ErrDuplicate.
func wrapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return serrors.Wrap(storage.ErrDuplicate, err, "duplicate %s", pgErr.ConstraintName)
	}

	return err
}

// isRetryableTx reports whether err aborted a transaction that can be run again as is.
func isRetryableTx(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	return pgErr.Code == pgerrcode.SerializationFailure || pgErr.Code == pgerrcode.DeadlockDetected
}
