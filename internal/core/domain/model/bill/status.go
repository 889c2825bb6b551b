package bill

import "backoffice/internal/pkg/errs"

// Status represents the audit state of a bill.
//
// Unlike a multi-step lifecycle, bills know only two logical states:
// open (zero) and audited (any nonzero value). The reconciliation system
// writes various nonzero markers during auditing; all of them freeze the
// bill against shipper-initiated edits, so this package treats every
// nonzero value as Audited.
type Status int

const (
	// Open is the initial status. Open bills accept shipper self-service
	// edits and change requests.
	Open Status = 0

	// Audited is the canonical nonzero marker. Restored bills may carry
	// other nonzero values; they are equally frozen.
	Audited Status = 1
)

// IsOpen reports whether the bill still accepts shipper-initiated mutations.
func (s Status) IsOpen() bool {
	return s == Open
}

// EnsureOpen returns a BillLockedError for the given bill code when the
// status is anything other than Open.
func (s Status) EnsureOpen(billCode string) error {
	if !s.IsOpen() {
		return errs.NewBillLockedError(billCode)
	}
	return nil
}

// String returns "OPEN" or "AUDITED".
func (s Status) String() string {
	if s.IsOpen() {
		return "OPEN"
	}
	return "AUDITED"
}
