package commands

import (
	"errors"

	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

var ErrResolveRequestCommandIsNotConstructed = errors.New(
	"ResolveRequestCommand must be created via NewResolveRequestCommand constructor",
)

// ResolveRequestCommand represents a manager accepting or rejecting a
// pending change request. The reason is an optional resolution note for
// either decision.
type ResolveRequestCommand struct { //nolint:recvcheck //using for validation
	requestID      int64
	approverUserID int64
	accept         bool
	reason         string

	guard guard.ConstructorGuard
}

// NewResolveRequestCommand creates a command to resolve a pending request.
func NewResolveRequestCommand(
	requestID int64,
	approverUserID int64,
	accept bool,
	reason string,
) (ResolveRequestCommand, error) {
	command := ResolveRequestCommand{
		accept: accept,
		reason: reason,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRequestID(requestID),
		command.setApproverUserID(approverUserID),
	); err != nil {
		return ResolveRequestCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrResolveRequestCommandIsNotConstructed if validation fails.
func (c ResolveRequestCommand) Validate() error {
	return c.guard.Validate(ErrResolveRequestCommandIsNotConstructed)
}

// RequestID returns the id of the request to resolve.
func (c ResolveRequestCommand) RequestID() int64 {
	return c.requestID
}

// ApproverUserID returns the system user id of the resolver.
func (c ResolveRequestCommand) ApproverUserID() int64 {
	return c.approverUserID
}

// Accept reports whether the request is being accepted.
func (c ResolveRequestCommand) Accept() bool {
	return c.accept
}

// Reason returns the resolution note.
func (c ResolveRequestCommand) Reason() string {
	return c.reason
}

func (c *ResolveRequestCommand) setRequestID(requestID int64) error {
	if requestID <= 0 {
		return errs.NewValueIsInvalidError("requestId")
	}

	c.requestID = requestID
	return nil
}

func (c *ResolveRequestCommand) setApproverUserID(approverUserID int64) error {
	if approverUserID <= 0 {
		return errs.NewValueIsInvalidError("approverUserId")
	}

	c.approverUserID = approverUserID
	return nil
}
