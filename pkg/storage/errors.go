package storage

import (
	"errors"

	"scanguard/pkg/serrors"
)

// ErrDuplicate marks an insert rejected by a uniqueness constraint. It is a
// serrors kind so callers can translate it into their own semantic error.
var ErrDuplicate = serrors.NewKind("DUPLICATE") //nolint: gochecknoglobals

// Transaction misuse.
var (
	ErrAlreadyInTx = errors.New("storage: transaction already started")
	ErrNotInTx     = errors.New("storage: no transaction in progress")
)
