// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"backoffice/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// BillRepoFactory provides access to the bill repository within a transaction.
	BillRepoFactory interface {
		BillRepository() ports.BillRepository
	}

	// ShipperRepoFactory provides access to the shipper repository within a transaction.
	ShipperRepoFactory interface {
		ShipperRepository() ports.ShipperRepository
	}

	// RequestRepoFactory provides access to the request repository within a transaction.
	RequestRepoFactory interface {
		RequestRepository() ports.RequestRepository
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// BillUoW manages transactions for bill mutations. The shipper
	// repository rides along because every bill mutation resolves a
	// shipper, either the assignee or the caller's own profile.
	BillUoW interface {
		TxManager
		BillRepoFactory
		ShipperRepoFactory
	}

	// BillUoWFactory creates new bill unit of work instances.
	BillUoWFactory interface {
		Create() BillUoW
	}

	// RequestUoW manages transactions for the request workflow. Submission
	// reads the bill and the requester's shipper profile; resolution reads
	// the request and applies its effect to the bill.
	RequestUoW interface {
		TxManager
		BillRepoFactory
		RequestRepoFactory
		ShipperRepoFactory
	}

	// RequestUoWFactory creates new request unit of work instances.
	RequestUoWFactory interface {
		Create() RequestUoW
	}

	// ShipperUoW manages transactions for shipper registration, which
	// checks the linked system user before inserting the profile.
	ShipperUoW interface {
		TxManager
		ShipperRepoFactory
		UserRepoFactory
	}

	// ShipperUoWFactory creates new shipper unit of work instances.
	ShipperUoWFactory interface {
		Create() ShipperUoW
	}
)
