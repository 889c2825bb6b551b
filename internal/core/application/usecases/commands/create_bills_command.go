package commands

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

var (
	ErrBillDraftIsNotConstructed = errors.New(
		"BillDraft must be created via NewBillDraft constructor",
	)
	ErrCreateBillsCommandIsNotConstructed = errors.New(
		"CreateBillsCommand must be created via NewCreateBillsCommand constructor",
	)
)

// BillDraft carries one bill of an intake batch before it becomes an
// aggregate. Drafts reference the assigned shipper by id only; the handler
// resolves the profile inside the transaction.
type BillDraft struct { //nolint:recvcheck //using for validation
	code        kernel.BillCode
	custName    string
	custPhone   string
	custAddress string
	amount      int64
	isTransfer  bool
	shipperID   int64

	guard guard.ConstructorGuard
}

// NewBillDraft creates a validated draft for one bill of the batch.
func NewBillDraft(
	code kernel.BillCode,
	custName, custPhone, custAddress string,
	amount int64,
	isTransfer bool,
	shipperID int64,
) (BillDraft, error) {
	draft := BillDraft{
		custPhone:   custPhone,
		custAddress: custAddress,
		isTransfer:  isTransfer,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		draft.setCode(code),
		draft.setCustName(custName),
		draft.setAmount(amount),
		draft.setShipperID(shipperID),
	); err != nil {
		return BillDraft{}, err
	}

	return draft, nil
}

// Validate ensures the draft was created through the constructor.
func (d BillDraft) Validate() error {
	return d.guard.Validate(ErrBillDraftIsNotConstructed)
}

// Code returns the bill code of the draft.
func (d BillDraft) Code() kernel.BillCode {
	return d.code
}

// CustName returns the customer name of the draft.
func (d BillDraft) CustName() string {
	return d.custName
}

// CustPhone returns the customer phone of the draft.
func (d BillDraft) CustPhone() string {
	return d.custPhone
}

// CustAddress returns the customer address of the draft.
func (d BillDraft) CustAddress() string {
	return d.custAddress
}

// Amount returns the cash-on-delivery amount of the draft.
func (d BillDraft) Amount() int64 {
	return d.amount
}

// IsTransfer reports whether the draft is flagged as a transfer.
func (d BillDraft) IsTransfer() bool {
	return d.isTransfer
}

// ShipperID returns the assigned shipper id of the draft.
func (d BillDraft) ShipperID() int64 {
	return d.shipperID
}

func (d *BillDraft) setCode(code kernel.BillCode) error {
	if err := code.Validate(); err != nil {
		return err
	}

	d.code = code
	return nil
}

func (d *BillDraft) setCustName(custName string) error {
	if custName == "" {
		return errs.NewValueIsRequiredError("custName")
	}

	d.custName = custName
	return nil
}

func (d *BillDraft) setAmount(amount int64) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidError("amount")
	}

	d.amount = amount
	return nil
}

func (d *BillDraft) setShipperID(shipperID int64) error {
	if shipperID <= 0 {
		return errs.NewValueIsInvalidError("shipperId")
	}

	d.shipperID = shipperID
	return nil
}

// CreateBillsCommand represents an intake batch of bills to register.
// A fresh group code is generated for the batch; every bill created from
// the command shares it.
type CreateBillsCommand struct { //nolint:recvcheck //using for validation
	drafts    []BillDraft
	groupCode kernel.GroupCode

	guard guard.ConstructorGuard
}

// NewCreateBillsCommand creates a command to register a batch of bills.
// Requires at least one draft; every draft must come from NewBillDraft.
func NewCreateBillsCommand(drafts []BillDraft) (CreateBillsCommand, error) {
	command := CreateBillsCommand{
		groupCode: kernel.NewGroupCode(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := command.setDrafts(drafts); err != nil {
		return CreateBillsCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateBillsCommandIsNotConstructed if validation fails.
func (c CreateBillsCommand) Validate() error {
	return c.guard.Validate(ErrCreateBillsCommandIsNotConstructed)
}

// Drafts returns the bill drafts of the batch.
func (c CreateBillsCommand) Drafts() []BillDraft {
	return c.drafts
}

// GroupCode returns the group code generated for the batch.
func (c CreateBillsCommand) GroupCode() kernel.GroupCode {
	return c.groupCode
}

func (c *CreateBillsCommand) setDrafts(drafts []BillDraft) error {
	if len(drafts) == 0 {
		return errs.NewValueIsRequiredError("bills")
	}

	for _, draft := range drafts {
		if err := draft.Validate(); err != nil {
			return err
		}
	}

	c.drafts = drafts
	return nil
}
