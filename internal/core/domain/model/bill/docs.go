// Package bill provides the Bill aggregate for the back-office system:
// a COD/parcel delivery record to be collected and reconciled.
//
// The package includes:
//   - Bill: the aggregate root managing identity, assignment, and the
//     COD amount, plus the guards on every mutation path
//   - Status: the audit state; any nonzero value freezes the bill against
//     shipper-initiated edits
//
// Key business rules:
//   - Bills are created in intake batches sharing a group code
//   - The org code is derived from the first eight characters of the bill code
//   - Shipper self-service edits require ownership and an Open status
//   - Manager operations (bill exchange, accepted change requests) bypass
//     the self-service guards
package bill
