package request

import (
	"errors"
	"fmt"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

var (
	// ErrRequestIsNotConstructed is returned when a Request instance was not
	// created through NewRequest or RestoreRequest.
	ErrRequestIsNotConstructed = errors.New("Request must be created via NewRequest or RestoreRequest")

	// ErrRequestIDAlreadyAssigned is returned when the persistence layer tries
	// to assign an id to a request that already has one.
	ErrRequestIDAlreadyAssigned = errors.New("request id is already assigned")
)

// Request represents a shipper-initiated change proposal that requires
// manager or admin approval before taking effect on a bill.
//
// Request is the aggregate root of the approval workflow. Its invariants:
//   - The payload variant matches the request type and is valid
//   - Status follows CREATE -> {ACCEPT | REJECT}, both terminal
//   - Approver identity, reason, and timestamp are stamped exactly once,
//     at resolution
//
// A request references its target bill by code; it never owns the bill.
type Request struct {
	// id is the auto-increment identity, zero until persisted
	id int64

	// requesterID is the system user id of the submitting shipper
	requesterID int64

	// billCode identifies the target bill
	billCode kernel.BillCode

	// payload is the typed content; its variant determines reqType
	payload Payload
	reqType Type

	// content is a rendered human-readable summary, display-only
	content string

	status Status

	// approverID, reason, approvedAt are zero until the request is resolved
	approverID int64
	reason     string
	approvedAt time.Time

	// businessDate is the operational day the request was filed under
	businessDate kernel.BusinessDate

	guard guard.ConstructorGuard
}

// NewRequest creates a pending request from a shipper submission.
// The content string is a rendered description for display and audit
// listings; the payload is what acceptance acts on.
func NewRequest(
	requesterID int64,
	billCode kernel.BillCode,
	payload Payload,
	content string,
	businessDate kernel.BusinessDate,
) (*Request, error) {
	r := &Request{
		content: content,
		status:  StatusCreate,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setRequesterID(requesterID),
		r.setBillCode(billCode),
		r.setPayload(payload),
		r.setBusinessDate(businessDate),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRequest reconstructs a request from persistence, including its
// resolution fields.
func RestoreRequest(
	id int64,
	requesterID int64,
	billCode kernel.BillCode,
	payload Payload,
	content string,
	status Status,
	approverID int64,
	reason string,
	approvedAt time.Time,
	businessDate kernel.BusinessDate,
) (*Request, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	r, err := NewRequest(requesterID, billCode, payload, content, businessDate)
	if err != nil {
		return nil, err
	}

	r.id = id
	r.status = status
	r.approverID = approverID
	r.reason = reason
	r.approvedAt = approvedAt
	return r, nil
}

// Validate ensures the Request instance was properly constructed.
func (r *Request) Validate() error {
	if r == nil {
		return ErrRequestIsNotConstructed
	}
	return r.guard.Validate(ErrRequestIsNotConstructed)
}

// ID returns the persistence identity, zero until the request is stored.
func (r *Request) ID() int64 {
	return r.id
}

// AssignID records the auto-increment identity after the first insert.
// Assigning twice is a programming error.
func (r *Request) AssignID(id int64) error {
	if r.id != 0 {
		return ErrRequestIDAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("requestID",
			fmt.Errorf("%d is not greater than 0", id))
	}

	r.id = id
	return nil
}

// RequesterID returns the submitting shipper's system user id.
func (r *Request) RequesterID() int64 {
	return r.requesterID
}

// BillCode returns the target bill's code.
func (r *Request) BillCode() kernel.BillCode {
	return r.billCode
}

// Type returns the request type.
func (r *Request) Type() Type {
	return r.reqType
}

// Payload returns the typed request content.
func (r *Request) Payload() Payload {
	return r.payload
}

// Content returns the rendered human-readable summary.
func (r *Request) Content() string {
	return r.content
}

// Status returns the current workflow status.
func (r *Request) Status() Status {
	return r.status
}

// ApproverID returns the resolving user's id, zero while pending.
func (r *Request) ApproverID() int64 {
	return r.approverID
}

// Reason returns the resolution reason, empty while pending.
func (r *Request) Reason() string {
	return r.reason
}

// ApprovedAt returns the resolution timestamp, zero while pending.
func (r *Request) ApprovedAt() time.Time {
	return r.approvedAt
}

// BusinessDate returns the operational day the request was filed under.
func (r *Request) BusinessDate() kernel.BusinessDate {
	return r.businessDate
}

// Accept resolves the request positively, stamping the approver identity,
// reason, and timestamp. The caller is responsible for applying the
// bill-side effect in the same transaction.
func (r *Request) Accept(approverID int64, reason string, at time.Time) error {
	newStatus, err := r.status.Accept()
	if err != nil {
		return err
	}

	r.resolve(newStatus, approverID, reason, at)
	return nil
}

// Reject resolves the request negatively. No bill-side effect follows.
func (r *Request) Reject(approverID int64, reason string, at time.Time) error {
	newStatus, err := r.status.Reject()
	if err != nil {
		return err
	}

	r.resolve(newStatus, approverID, reason, at)
	return nil
}

func (r *Request) resolve(status Status, approverID int64, reason string, at time.Time) {
	r.status = status
	r.approverID = approverID
	r.reason = reason
	r.approvedAt = at
}

func (r *Request) setRequesterID(requesterID int64) error {
	if requesterID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("requesterID",
			fmt.Errorf("%d is not greater than 0", requesterID))
	}
	r.requesterID = requesterID
	return nil
}

func (r *Request) setBillCode(billCode kernel.BillCode) error {
	if err := billCode.Validate(); err != nil {
		return err
	}
	r.billCode = billCode
	return nil
}

func (r *Request) setPayload(payload Payload) error {
	if payload == nil {
		return errs.NewValueIsRequiredError("payload")
	}
	if err := payload.Validate(); err != nil {
		return err
	}

	r.payload = payload
	r.reqType = payload.RequestType()
	return r.reqType.Validate()
}

func (r *Request) setBusinessDate(businessDate kernel.BusinessDate) error {
	if err := businessDate.Validate(); err != nil {
		return err
	}
	r.businessDate = businessDate
	return nil
}
