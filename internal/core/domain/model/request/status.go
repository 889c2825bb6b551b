package request

import (
	"fmt"

	"backoffice/internal/pkg/errs"
)

// Status represents the lifecycle state of a change request.
//
// State transitions:
//
//	CREATE ──┬──> ACCEPT
//	         └──> REJECT
//
// Both ACCEPT and REJECT are terminal; a resubmission after rejection is a
// new request row, never a transition of the old one.
type Status string

const (
	// StatusCreate is the initial status: submitted, awaiting a decision.
	StatusCreate Status = "CREATE"

	// StatusAccept is terminal: the request was approved and its bill-side
	// effect has been applied.
	StatusAccept Status = "ACCEPT"

	// StatusReject is terminal: the request was declined with no bill-side
	// effect.
	StatusReject Status = "REJECT"
)

// Validate checks the status against the known set.
func (s Status) Validate() error {
	switch s {
	case StatusCreate, StatusAccept, StatusReject:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid request status", string(s)))
	}
}

// String returns the wire representation.
func (s Status) String() string {
	return string(s)
}

// IsPending reports whether the request still awaits a decision.
func (s Status) IsPending() bool {
	return s == StatusCreate
}

// Accept transitions the status to ACCEPT. Only pending requests may be
// accepted; resolved requests are reported as not found by the workflow,
// which this error feeds.
func (s Status) Accept() (Status, error) {
	if !s.IsPending() {
		return "", errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to accept", s))
	}
	return StatusAccept, nil
}

// Reject transitions the status to REJECT. Only pending requests may be
// rejected.
func (s Status) Reject() (Status, error) {
	if !s.IsPending() {
		return "", errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to reject", s))
	}
	return StatusReject, nil
}
