package ports

import (
	"context"

	"backoffice/internal/core/domain/model/bill"
	"backoffice/internal/core/domain/model/kernel"
)

// BillRepository defines the persistence contract for bill aggregates.
//
// Uniqueness of bill codes is enforced by the store, not by the
// application: AddBatch surfaces a collision as a structured
// errs.DuplicateBillCodeError carrying the conflicting code, and the
// surrounding transaction guarantees the batch is all-or-nothing.
type BillRepository interface {
	// AddBatch persists a batch of new bills in one statement.
	// Returns errs.DuplicateBillCodeError if any code already exists.
	AddBatch(ctx context.Context, bills []*bill.Bill) error

	// Update persists changes to an existing bill.
	// Returns errs.ObjectNotFoundError if the bill does not exist.
	Update(ctx context.Context, aggregate *bill.Bill) error

	// Get retrieves a bill by its code.
	// Returns errs.ObjectNotFoundError if absent.
	Get(ctx context.Context, code kernel.BillCode) (*bill.Bill, error)

	// Delete removes a bill row entirely. Invoked only as the effect of an
	// accepted REMOVE_BILL request.
	// Returns errs.ObjectNotFoundError if the bill does not exist.
	Delete(ctx context.Context, code kernel.BillCode) error
}
