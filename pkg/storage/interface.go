// Package storage declares the persistence the commission engine needs:
// placements, payment requests, commission configuration and the job queue.
// Every method is usable both on a plain handle and inside a transaction.
//
//go:generate mockgen -package mockstorage -destination=mock/mockstorage.go commissions/pkg/storage AllStorage,Storage
package storage

import "context"

// AllStorage groups the domain reads and writes.
type AllStorage interface {
	PlacementStorage
	PaymentRequestStorage
	CommissionStorage
	JobStorage
}

// TxStorage is an AllStorage bound to an open transaction. It is unusable
// after Commit or Rollback.
type TxStorage interface {
	AllStorage

	Commit() error
	Rollback() error
}

// Storage is the root handle. Transactions do not nest: Begin and WithTx
// are only available here.
type Storage interface {
	AllStorage

	// Close releases the connection pool.
	Close() error

	// Begin opens a transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx runs cb inside a transaction that is committed when cb returns
	// nil and rolled back otherwise.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
