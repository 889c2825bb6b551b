package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used for classification with errors.Is.
// Each structured error type below unwraps to one of these.
var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrObjectNotFound     = errors.New("object not found")
	ErrBillLocked         = errors.New("bill is locked")
	ErrDuplicateBillCode  = errors.New("duplicate bill code")
	ErrDuplicateShipper   = errors.New("duplicate shipper")
	ErrDuplicateRequest   = errors.New("duplicate request")
	ErrInvalidRequestType = errors.New("invalid request type")
	ErrValueIsInvalid     = errors.New("value is invalid")
	ErrValueIsRequired    = errors.New("value is required")
	ErrStoreFailure       = errors.New("store failure")
)

// sanitize collapses newlines so error messages stay single-line in logs.
func sanitize(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\r", " "), "\n", " ")
}

// UnauthorizedError indicates the caller presented no usable identity.
type UnauthorizedError struct {
	Cause error
}

func NewUnauthorizedError() *UnauthorizedError {
	return &UnauthorizedError{}
}

func NewUnauthorizedErrorWithCause(cause error) *UnauthorizedError {
	return &UnauthorizedError{Cause: cause}
}

func (e *UnauthorizedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", ErrUnauthorized, sanitize(e.Cause.Error()))
	}
	return ErrUnauthorized.Error()
}

func (e *UnauthorizedError) Unwrap() error {
	return ErrUnauthorized
}

// ForbiddenError indicates an authenticated caller lacks the role or
// ownership required for the operation.
type ForbiddenError struct {
	Reason string
	Cause  error
}

func NewForbiddenError(reason string) *ForbiddenError {
	return &ForbiddenError{Reason: reason}
}

func NewForbiddenErrorWithCause(reason string, cause error) *ForbiddenError {
	return &ForbiddenError{Reason: reason, Cause: cause}
}

func (e *ForbiddenError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrForbidden, sanitize(e.Reason), sanitize(e.Cause.Error()))
	}
	return fmt.Sprintf("%s: %s", ErrForbidden, sanitize(e.Reason))
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// ObjectNotFoundError indicates a lookup by identifier found nothing.
// Also returned when a request to resolve has already left the CREATE
// status, so "does not exist" and "already resolved" are indistinguishable.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, sanitize(e.Cause.Error()))
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// BillLockedError indicates the bill has been audited (nonzero status) and
// shipper-initiated mutations are no longer permitted.
type BillLockedError struct {
	BillCode string
}

func NewBillLockedError(billCode string) *BillLockedError {
	return &BillLockedError{BillCode: billCode}
}

func (e *BillLockedError) Error() string {
	return fmt.Sprintf("%s: %s has been audited", ErrBillLocked, sanitize(e.BillCode))
}

func (e *BillLockedError) Unwrap() error {
	return ErrBillLocked
}

// DuplicateBillCodeError carries the conflicting bill code extracted from a
// storage-level unique violation. The whole batch that contained the code
// has been rolled back.
type DuplicateBillCodeError struct {
	BillCode string
	Cause    error
}

func NewDuplicateBillCodeError(billCode string) *DuplicateBillCodeError {
	return &DuplicateBillCodeError{BillCode: billCode}
}

func NewDuplicateBillCodeErrorWithCause(billCode string, cause error) *DuplicateBillCodeError {
	return &DuplicateBillCodeError{BillCode: billCode, Cause: cause}
}

func (e *DuplicateBillCodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrDuplicateBillCode, sanitize(e.BillCode), sanitize(e.Cause.Error()))
	}
	return fmt.Sprintf("%s: %s", ErrDuplicateBillCode, sanitize(e.BillCode))
}

func (e *DuplicateBillCodeError) Unwrap() error {
	return ErrDuplicateBillCode
}

// DuplicateShipperError indicates the user_id or phone is already
// registered to another shipper.
type DuplicateShipperError struct {
	Field string
	Value string
	Cause error
}

func NewDuplicateShipperError(field, value string) *DuplicateShipperError {
	return &DuplicateShipperError{Field: field, Value: value}
}

func NewDuplicateShipperErrorWithCause(field, value string, cause error) *DuplicateShipperError {
	return &DuplicateShipperError{Field: field, Value: value, Cause: cause}
}

func (e *DuplicateShipperError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s %s already registered (cause: %s)",
			ErrDuplicateShipper, e.Field, sanitize(e.Value), sanitize(e.Cause.Error()))
	}
	return fmt.Sprintf("%s: %s %s already registered", ErrDuplicateShipper, e.Field, sanitize(e.Value))
}

func (e *DuplicateShipperError) Unwrap() error {
	return ErrDuplicateShipper
}

// DuplicateRequestError indicates a request of the same type for the same
// bill by the same requester is still blocking resubmission.
type DuplicateRequestError struct {
	BillCode string
	Type     string
	Cause    error
}

func NewDuplicateRequestError(billCode, requestType string) *DuplicateRequestError {
	return &DuplicateRequestError{BillCode: billCode, Type: requestType}
}

func NewDuplicateRequestErrorWithCause(billCode, requestType string, cause error) *DuplicateRequestError {
	return &DuplicateRequestError{BillCode: billCode, Type: requestType, Cause: cause}
}

func (e *DuplicateRequestError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s for bill %s (cause: %s)",
			ErrDuplicateRequest, e.Type, sanitize(e.BillCode), sanitize(e.Cause.Error()))
	}
	return fmt.Sprintf("%s: %s for bill %s", ErrDuplicateRequest, e.Type, sanitize(e.BillCode))
}

func (e *DuplicateRequestError) Unwrap() error {
	return ErrDuplicateRequest
}

// InvalidRequestTypeError indicates a request carries a type the resolver
// does not know how to apply, or a payload that does not match its type.
type InvalidRequestTypeError struct {
	Type  string
	Cause error
}

func NewInvalidRequestTypeError(requestType string) *InvalidRequestTypeError {
	return &InvalidRequestTypeError{Type: requestType}
}

func NewInvalidRequestTypeErrorWithCause(requestType string, cause error) *InvalidRequestTypeError {
	return &InvalidRequestTypeError{Type: requestType, Cause: cause}
}

func (e *InvalidRequestTypeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrInvalidRequestType, sanitize(e.Type), sanitize(e.Cause.Error()))
	}
	return fmt.Sprintf("%s: %s", ErrInvalidRequestType, sanitize(e.Type))
}

func (e *InvalidRequestTypeError) Unwrap() error {
	return ErrInvalidRequestType
}

// ValueIsInvalidError indicates a supplied value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, sanitize(e.ParamName), sanitize(e.Cause.Error()))
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, sanitize(e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsRequiredError indicates a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, sanitize(e.ParamName), sanitize(e.Cause.Error()))
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, sanitize(e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// StoreFailureError wraps an unexpected persistence error after the
// surrounding transaction has been rolled back.
type StoreFailureError struct {
	Op    string
	Cause error
}

func NewStoreFailureError(op string, cause error) *StoreFailureError {
	return &StoreFailureError{Op: op, Cause: cause}
}

func (e *StoreFailureError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrStoreFailure, e.Op, sanitize(e.Cause.Error()))
	}
	return fmt.Sprintf("%s: %s", ErrStoreFailure, e.Op)
}

func (e *StoreFailureError) Unwrap() error {
	return ErrStoreFailure
}
