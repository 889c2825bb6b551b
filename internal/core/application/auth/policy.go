// Package auth defines the role model and the authorization policy that
// gates every back-office operation. The policy is a plain table keyed by
// operation name, so deployments can tighten or relax individual
// operations without touching handler code.
package auth

import (
	"fmt"

	"backoffice/internal/pkg/errs"
)

// Role identifies the privilege level carried by an authenticated identity.
type Role string

const (
	RoleShipper Role = "SHIPPER"
	RoleManager Role = "MANAGER"
	RoleAdmin   Role = "ADMIN"
)

// Validate checks that the role is one of the known values.
func (r Role) Validate() error {
	switch r {
	case RoleShipper, RoleManager, RoleAdmin:
		return nil
	default:
		return errs.NewValueIsInvalidError("role")
	}
}

// Identity is the authenticated caller attached to each operation.
type Identity struct {
	UserID int64
	Role   Role
}

// Operation names every guarded back-office action.
type Operation string

const (
	OpCreateBills        Operation = "bills.create"
	OpExchangeBill       Operation = "bills.exchange"
	OpMarkTransfer       Operation = "bills.mark_transfer"
	OpSearchBills        Operation = "bills.search"
	OpListShipperBills   Operation = "bills.list_for_shipper"
	OpSubmitRequest      Operation = "requests.submit"
	OpResolveRequest     Operation = "requests.resolve"
	OpListRequests       Operation = "requests.list"
	OpListRequestsForDay Operation = "requests.list_for_day"
	OpCreateShipper      Operation = "shippers.create"
	OpListUsers          Operation = "users.list"
)

// Requirement is the access level an operation demands.
type Requirement int

const (
	// Authenticated admits any caller with a valid identity.
	Authenticated Requirement = iota

	// ManagerOrAdmin admits managers and admins only.
	ManagerOrAdmin

	// ShipperProfile admits callers whose account is linked to a shipper
	// profile. Managers and admins pass as well, since they can act on any
	// shipper's behalf.
	ShipperProfile
)

// Policy maps operations to the access level they demand.
type Policy map[Operation]Requirement

// DefaultPolicy is the stock policy table. Mutating operations that touch
// arbitrary bills are restricted to back-office staff; shipper-scoped
// reads and request submission stay open to shippers.
func DefaultPolicy() Policy {
	return Policy{
		OpCreateBills:        ManagerOrAdmin,
		OpExchangeBill:       ManagerOrAdmin,
		OpMarkTransfer:       ShipperProfile,
		OpSearchBills:        ManagerOrAdmin,
		OpListShipperBills:   ShipperProfile,
		OpSubmitRequest:      ShipperProfile,
		OpResolveRequest:     ManagerOrAdmin,
		OpListRequests:       ManagerOrAdmin,
		OpListRequestsForDay: ManagerOrAdmin,
		OpCreateShipper:      ManagerOrAdmin,
		OpListUsers:          ManagerOrAdmin,
	}
}

// Authorize checks whether identity may perform op under the policy.
// Unknown operations are denied outright.
func (p Policy) Authorize(identity Identity, op Operation) error {
	if identity.UserID <= 0 {
		return errs.NewUnauthorizedError()
	}
	if err := identity.Role.Validate(); err != nil {
		return errs.NewUnauthorizedError()
	}

	requirement, ok := p[op]
	if !ok {
		return errs.NewForbiddenError(fmt.Sprintf("operation %s is not permitted", op))
	}

	switch requirement {
	case Authenticated:
		return nil
	case ManagerOrAdmin:
		if identity.Role == RoleManager || identity.Role == RoleAdmin {
			return nil
		}
		return errs.NewForbiddenError(fmt.Sprintf("operation %s requires manager access", op))
	case ShipperProfile:
		// Role checks only: the shipper profile lookup happens inside the
		// command handler, within the same transaction as the mutation.
		return nil
	default:
		return errs.NewForbiddenError(fmt.Sprintf("operation %s is not permitted", op))
	}
}
