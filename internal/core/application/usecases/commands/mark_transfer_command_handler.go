package commands

import (
	"context"
	"errors"

	"backoffice/internal/pkg/errs"
)

// MarkTransferCommandHandler handles shippers toggling the transfer flag
// on their own bills. Ownership and the audit freeze are enforced by the
// bill aggregate.
type MarkTransferCommandHandler struct {
	uowFactory BillUoWFactory
}

// NewMarkTransferCommandHandler creates a handler for transfer flagging.
func NewMarkTransferCommandHandler(uowFactory BillUoWFactory) MarkTransferCommandHandler {
	return MarkTransferCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the transfer flag command.
// Resolves the caller's shipper profile, loads the bill, and lets the
// aggregate decide whether the toggle is allowed.
func (h *MarkTransferCommandHandler) Handle(ctx context.Context, cmd MarkTransferCommand) error {
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

	profile, err := uow.ShipperRepository().GetByUserID(ctx, cmd.CallerUserID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errs.NewForbiddenError("caller has no shipper profile")
		}
		return err
	}

	if !profile.IsActive() {
		return errs.NewForbiddenError("shipper profile is deactivated")
	}

	billRepo := uow.BillRepository()
	billEntity, err := billRepo.Get(ctx, cmd.BillCode())
	if err != nil {
		return err
	}

	if err = billEntity.MarkTransfer(profile.ID(), cmd.Value()); err != nil {
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
