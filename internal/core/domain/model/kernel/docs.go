// Package kernel provides core domain primitives for the back-office system.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package includes:
//   - BillCode: the externally supplied bill identifier, with org-code derivation
//   - BusinessDate: the YYYYMMDD operational day stamped on bills and requests
//   - GroupCode: the short batch correlation token shared by one intake call
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are immutable and
// safe for concurrent use.
package kernel
