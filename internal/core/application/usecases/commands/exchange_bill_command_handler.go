package commands

import (
	"context"
)

// ExchangeBillCommandHandler handles back-office corrections of a bill's
// assignment, amount, and transfer flag. Corrections bypass the audit
// freeze because they originate from staff, not from shippers.
type ExchangeBillCommandHandler struct {
	uowFactory BillUoWFactory
}

// NewExchangeBillCommandHandler creates a handler for bill corrections.
func NewExchangeBillCommandHandler(uowFactory BillUoWFactory) ExchangeBillCommandHandler {
	return ExchangeBillCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the correction command.
// Loads the bill and the replacement shipper in one transaction, applies
// the new terms, and persists the result.
func (h *ExchangeBillCommandHandler) Handle(ctx context.Context, cmd ExchangeBillCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	billRepo := uow.BillRepository()
	billEntity, err := billRepo.Get(ctx, cmd.BillCode())
	if err != nil {
		return err
	}

	assignee, err := uow.ShipperRepository().GetByID(ctx, cmd.ShipperID())
	if err != nil {
		return err
	}

	if err = billEntity.Exchange(assignee.ID(), assignee.FullName(), cmd.Amount(), cmd.IsTransfer()); err != nil {
		return err
	}

	if err = billRepo.Update(ctx, billEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
