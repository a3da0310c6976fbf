// Package storage declares the persistence contract of scanguard: one
// interface per aggregate (accounts, scans, review decisions, webhook events,
// background jobs) and a transactional handle combining them.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import "context"

// AllStorage is everything a service can do inside or outside a transaction.
type AllStorage interface {
	AccountStorage
	ScanStorage
	ReviewStorage
	WebhookEventStorage
	JobStorage
}

// TxStorage is a storage handle bound to one transaction. It must not be used
// after Commit or Rollback.
type TxStorage interface {
	AllStorage

	Commit() error
	Rollback() error
}

// Storage is the root handle. Its methods run outside any transaction.
type Storage interface {
	AllStorage

	// Ping verifies the backend is reachable.
	Ping(ctx context.Context) error
	// Close releases the connection pool.
	Close() error

	Begin(ctx context.Context) (TxStorage, error)
	// WithTx runs cb in a transaction, committing when cb returns nil. A
	// transaction aborted by a serialization failure or deadlock is retried, so
	// cb must not have side effects outside storage.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
