// Package storage defines the persistence interfaces of the record store.
// Backends live in sub-packages: postgres for the durable store and noop for
// the degraded mode used when the database cannot be reached at startup.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import "context"

// AllStorage is every capability a handle exposes, inside or outside a transaction.
type AllStorage interface {
	SearchStorage
	JobStorage
}

// TxStorage is a handle bound to a database transaction. It becomes unusable
// after Commit or Rollback.
type TxStorage interface {
	AllStorage

	Commit() error
	Rollback() error
}

// Storage is a non-transactional handle that can start transactions.
type Storage interface {
	AllStorage

	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error
	// Close releases the underlying connection pool.
	Close() error

	// Begin starts a new transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx runs cb inside a transaction, committing when cb returns nil and
	// rolling back otherwise.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
