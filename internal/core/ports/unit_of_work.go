package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Every workflow mutation (batch create, exchange, transfer toggle, submit,
// resolve, shipper creation) runs inside exactly one unit of work: either
// all of its writes commit or none do.
// Client code must explicitly manage the transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// BillRepository returns a BillRepository bound to the current transaction.
	BillRepository() BillRepository

	// ShipperRepository returns a ShipperRepository bound to the current transaction.
	ShipperRepository() ShipperRepository

	// RequestRepository returns a RequestRepository bound to the current transaction.
	RequestRepository() RequestRepository

	// UserRepository returns a UserRepository bound to the current transaction.
	UserRepository() UserRepository
}
