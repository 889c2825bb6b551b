package commands

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

var ErrExchangeBillCommandIsNotConstructed = errors.New(
	"ExchangeBillCommand must be created via NewExchangeBillCommand constructor",
)

// ExchangeBillCommand represents a back-office correction of a bill's
// assignment and terms: a new shipper, amount, and transfer flag in one
// step. Corrections apply regardless of audit status.
type ExchangeBillCommand struct { //nolint:recvcheck //using for validation
	billCode   kernel.BillCode
	shipperID  int64
	amount     int64
	isTransfer bool

	guard guard.ConstructorGuard
}

// NewExchangeBillCommand creates a command to reassign and reprice a bill.
func NewExchangeBillCommand(
	billCode kernel.BillCode,
	shipperID int64,
	amount int64,
	isTransfer bool,
) (ExchangeBillCommand, error) {
	command := ExchangeBillCommand{
		isTransfer: isTransfer,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setBillCode(billCode),
		command.setShipperID(shipperID),
		command.setAmount(amount),
	); err != nil {
		return ExchangeBillCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrExchangeBillCommandIsNotConstructed if validation fails.
func (c ExchangeBillCommand) Validate() error {
	return c.guard.Validate(ErrExchangeBillCommandIsNotConstructed)
}

// BillCode returns the code of the bill to correct.
func (c ExchangeBillCommand) BillCode() kernel.BillCode {
	return c.billCode
}

// ShipperID returns the id of the shipper taking over the bill.
func (c ExchangeBillCommand) ShipperID() int64 {
	return c.shipperID
}

// Amount returns the corrected cash-on-delivery amount.
func (c ExchangeBillCommand) Amount() int64 {
	return c.amount
}

// IsTransfer returns the corrected transfer flag.
func (c ExchangeBillCommand) IsTransfer() bool {
	return c.isTransfer
}

func (c *ExchangeBillCommand) setBillCode(billCode kernel.BillCode) error {
	if err := billCode.Validate(); err != nil {
		return err
	}

	c.billCode = billCode
	return nil
}

func (c *ExchangeBillCommand) setShipperID(shipperID int64) error {
	if shipperID <= 0 {
		return errs.NewValueIsInvalidError("shipperId")
	}

	c.shipperID = shipperID
	return nil
}

func (c *ExchangeBillCommand) setAmount(amount int64) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidError("amount")
	}

	c.amount = amount
	return nil
}
