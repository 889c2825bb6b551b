package ports

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/request"
)

// RequestRepository defines the persistence contract for change requests.
//
// Two store-level mechanisms back the workflow invariants:
//   - a partial unique index over (requester, bill_code, type) restricted to
//     pending rows serializes concurrent submissions: Add surfaces the loser
//     as errs.DuplicateRequestError
//   - MarkResolved updates conditionally on the pending status, so of two
//     concurrent resolvers exactly one wins and the other sees
//     errs.ObjectNotFoundError
type RequestRepository interface {
	// Add persists a new pending request and assigns its auto-increment id.
	Add(ctx context.Context, aggregate *request.Request) error

	// GetPending retrieves a request by id only while its status is CREATE.
	// Returns errs.ObjectNotFoundError both for unknown ids and for already
	// resolved requests; callers cannot distinguish the two.
	GetPending(ctx context.Context, id int64) (*request.Request, error)

	// HasBlocking reports whether a prior request of the given type for the
	// same (requester, bill) pair blocks a new submission. Which statuses
	// block depends on the type (request.Type.BlockingStatuses).
	HasBlocking(ctx context.Context, requesterID int64, code kernel.BillCode, t request.Type) (bool, error)

	// MarkResolved persists the terminal status, approver, reason, and
	// timestamp of a resolved request. The update applies only if the stored
	// row is still pending; otherwise errs.ObjectNotFoundError is returned
	// and nothing is written.
	MarkResolved(ctx context.Context, aggregate *request.Request) error
}
