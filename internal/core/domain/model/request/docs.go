// Package request provides the change-request aggregate for the approval
// workflow: shippers propose mutations to their bills, managers accept or
// reject them.
//
// The package includes:
//   - Request: the aggregate root holding requester, target bill, typed
//     payload, rendered content, and resolution fields
//   - Status: the CREATE -> {ACCEPT | REJECT} state machine, both terminal
//   - Type and Payload: one payload variant per request type
//     (REMOVE_BILL, REMOVE_TRANSFER, CHANGE_COD)
//
// Key business rules:
//   - At most one pending request per (requester, bill, type); which
//     resolved statuses also block a resubmission depends on the type
//     (see Type.BlockingStatuses)
//   - Resolution stamps approver, reason, and timestamp exactly once
//   - The bill-side effect of an acceptance is applied by the workflow
//     engine in the same transaction as the status change
package request
