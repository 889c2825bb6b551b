// Package errs provides standardized error types for the back-office application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package defines one error type per failure kind the workflow can report:
//   - UnauthorizedError / ForbiddenError: authentication and authorization failures
//   - ObjectNotFoundError: lookups that found nothing (or requests already resolved)
//   - BillLockedError: mutations rejected because the bill has been audited
//   - DuplicateBillCodeError, DuplicateShipperError, DuplicateRequestError:
//     uniqueness violations carrying the conflicting value
//   - InvalidRequestTypeError: unrecognized or malformed change requests
//   - ValueIsRequiredError, ValueIsInvalidError: input validation failures
//   - StoreFailureError: unexpected persistence errors after rollback
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Callers never parse error strings: classification happens via errors.Is
// against the sentinels, and details travel in the struct fields.
package errs
