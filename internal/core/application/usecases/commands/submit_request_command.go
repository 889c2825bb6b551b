package commands

import (
	"errors"
	"fmt"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/request"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

var ErrSubmitRequestCommandIsNotConstructed = errors.New(
	"SubmitRequestCommand must be created via NewSubmitRequestCommand constructor",
)

// SubmitRequestCommand represents a shipper asking the back office to
// change one of their bills. The payload carries the requested change in
// typed form; a rendered description is derived from it for audit
// listings and is never parsed back.
type SubmitRequestCommand struct { //nolint:recvcheck //using for validation
	requesterUserID int64
	billCode        kernel.BillCode
	payload         request.Payload
	content         string

	guard guard.ConstructorGuard
}

// NewSubmitRequestCommand creates a command to submit a change request.
// Validates the payload and renders the display content from it.
func NewSubmitRequestCommand(
	requesterUserID int64,
	billCode kernel.BillCode,
	payload request.Payload,
) (SubmitRequestCommand, error) {
	command := SubmitRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRequesterUserID(requesterUserID),
		command.setBillCode(billCode),
		command.setPayload(payload),
	); err != nil {
		return SubmitRequestCommand{}, err
	}

	command.content = renderContent(command.billCode, command.payload)
	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSubmitRequestCommandIsNotConstructed if validation fails.
func (c SubmitRequestCommand) Validate() error {
	return c.guard.Validate(ErrSubmitRequestCommandIsNotConstructed)
}

// RequesterUserID returns the system user id of the submitting shipper.
func (c SubmitRequestCommand) RequesterUserID() int64 {
	return c.requesterUserID
}

// BillCode returns the code of the bill the request targets.
func (c SubmitRequestCommand) BillCode() kernel.BillCode {
	return c.billCode
}

// Payload returns the typed change the request asks for.
func (c SubmitRequestCommand) Payload() request.Payload {
	return c.payload
}

// Content returns the rendered description of the request.
func (c SubmitRequestCommand) Content() string {
	return c.content
}

func (c *SubmitRequestCommand) setRequesterUserID(requesterUserID int64) error {
	if requesterUserID <= 0 {
		return errs.NewValueIsInvalidError("requesterUserId")
	}

	c.requesterUserID = requesterUserID
	return nil
}

func (c *SubmitRequestCommand) setBillCode(billCode kernel.BillCode) error {
	if err := billCode.Validate(); err != nil {
		return err
	}

	c.billCode = billCode
	return nil
}

func (c *SubmitRequestCommand) setPayload(payload request.Payload) error {
	if payload == nil {
		return errs.NewValueIsRequiredError("payload")
	}
	if err := payload.Validate(); err != nil {
		return err
	}

	c.payload = payload
	return nil
}

func renderContent(billCode kernel.BillCode, payload request.Payload) string {
	switch p := payload.(type) {
	case request.ChangeCodPayload:
		return fmt.Sprintf("change cod on %s to %d", billCode, p.NewAmount)
	case request.RemoveTransferPayload:
		return fmt.Sprintf("remove transfer flag on %s", billCode)
	default:
		return fmt.Sprintf("remove bill %s", billCode)
	}
}
