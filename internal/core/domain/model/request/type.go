package request

import (
	"fmt"

	"backoffice/internal/pkg/errs"
)

// Type identifies what an accepted request does to its target bill.
type Type string

const (
	// RemoveBill deletes the bill row entirely on acceptance.
	RemoveBill Type = "REMOVE_BILL"

	// RemoveTransfer clears the bill's transfer flag on acceptance.
	RemoveTransfer Type = "REMOVE_TRANSFER"

	// ChangeCod sets the bill's COD amount to the requested value on acceptance.
	ChangeCod Type = "CHANGE_COD"
)

// Validate checks the type against the known set.
func (t Type) Validate() error {
	switch t {
	case RemoveBill, RemoveTransfer, ChangeCod:
		return nil
	default:
		return errs.NewInvalidRequestTypeError(string(t))
	}
}

// String returns the wire representation.
func (t Type) String() string {
	return string(t)
}

// BlockingStatuses returns the request statuses that block a new submission
// of this type for the same (requester, bill) pair.
//
// The rules are intentionally asymmetric, matching long-standing system
// behavior:
//   - REMOVE_BILL: a prior rejection does not block resubmission, everything
//     else does (a pending request, or an acceptance that somehow left the
//     bill in place)
//   - CHANGE_COD: only a prior acceptance clears the way; pending and
//     rejected requests both block
//   - REMOVE_TRANSFER follows the REMOVE_BILL rule
func (t Type) BlockingStatuses() []Status {
	if t == ChangeCod {
		return []Status{StatusCreate, StatusReject}
	}
	return []Status{StatusCreate, StatusAccept}
}

// Payload is the typed content of a request, one variant per Type.
// The human-readable content string on a request is rendered once at
// submission and never parsed back; the payload is the machine-readable
// source of truth for the bill-side effect.
type Payload interface {
	// RequestType returns the Type this payload belongs to.
	RequestType() Type

	// Validate checks payload-specific invariants.
	Validate() error
}

// RemoveBillPayload asks for the bill to be removed from the requester.
type RemoveBillPayload struct{}

func (RemoveBillPayload) RequestType() Type { return RemoveBill }
func (RemoveBillPayload) Validate() error   { return nil }

// RemoveTransferPayload asks for the transfer mark to be reverted.
type RemoveTransferPayload struct{}

func (RemoveTransferPayload) RequestType() Type { return RemoveTransfer }
func (RemoveTransferPayload) Validate() error   { return nil }

// ChangeCodPayload asks for the COD amount to be adjusted.
type ChangeCodPayload struct {
	// NewAmount is the requested COD amount in currency minor units.
	NewAmount int64
}

func (ChangeCodPayload) RequestType() Type { return ChangeCod }

func (p ChangeCodPayload) Validate() error {
	if p.NewAmount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("newAmount",
			fmt.Errorf("%d is not greater than 0", p.NewAmount))
	}
	return nil
}
