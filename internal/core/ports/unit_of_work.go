package ports

import (
	"context"
)

// UnitOfWorkFactory produces a fresh UnitOfWork per request or command,
// isolating concurrent operations from each other.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transaction boundary for a single business operation.
// Callers control the lifecycle explicitly: Begin, do work through the
// repositories, then Commit or Rollback.
type UnitOfWork interface {
	// Begin opens a database transaction.
	Begin(ctx context.Context) error

	// Commit commits the active transaction.
	// Fails when no transaction is active.
	Commit(ctx context.Context) error

	// Rollback aborts the active transaction.
	// Fails when no transaction is active.
	Rollback(ctx context.Context) error

	// OrderRepository returns a repository bound to the transaction
	// opened by Begin, or to the base connection before Begin.
	OrderRepository() OrderRepository
}
