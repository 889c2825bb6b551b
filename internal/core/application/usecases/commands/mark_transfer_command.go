package commands

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

var ErrMarkTransferCommandIsNotConstructed = errors.New(
	"MarkTransferCommand must be created via NewMarkTransferCommand constructor",
)

// MarkTransferCommand represents a shipper toggling the transfer flag on
// one of their own bills. The caller is identified by system user id; the
// handler resolves the shipper profile and checks ownership.
type MarkTransferCommand struct { //nolint:recvcheck //using for validation
	callerUserID int64
	billCode     kernel.BillCode
	value        bool

	guard guard.ConstructorGuard
}

// NewMarkTransferCommand creates a command to set the transfer flag.
func NewMarkTransferCommand(
	callerUserID int64,
	billCode kernel.BillCode,
	value bool,
) (MarkTransferCommand, error) {
	command := MarkTransferCommand{
		value: value,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCallerUserID(callerUserID),
		command.setBillCode(billCode),
	); err != nil {
		return MarkTransferCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrMarkTransferCommandIsNotConstructed if validation fails.
func (c MarkTransferCommand) Validate() error {
	return c.guard.Validate(ErrMarkTransferCommandIsNotConstructed)
}

// CallerUserID returns the system user id of the caller.
func (c MarkTransferCommand) CallerUserID() int64 {
	return c.callerUserID
}

// BillCode returns the code of the bill to flag.
func (c MarkTransferCommand) BillCode() kernel.BillCode {
	return c.billCode
}

// Value returns the desired transfer flag state.
func (c MarkTransferCommand) Value() bool {
	return c.value
}

func (c *MarkTransferCommand) setCallerUserID(callerUserID int64) error {
	if callerUserID <= 0 {
		return errs.NewValueIsInvalidError("callerUserId")
	}

	c.callerUserID = callerUserID
	return nil
}

func (c *MarkTransferCommand) setBillCode(billCode kernel.BillCode) error {
	if err := billCode.Validate(); err != nil {
		return err
	}

	c.billCode = billCode
	return nil
}
