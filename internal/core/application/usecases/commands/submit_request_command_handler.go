package commands

import (
	"context"
	"errors"

	"backoffice/internal/core/domain/model/request"
	"backoffice/internal/core/ports"
	"backoffice/internal/pkg/errs"
)

// SubmitRequestCommandHandler handles shippers submitting change requests
// against their own open bills.
//
// Two layers guard against duplicate submissions: a repository check over
// the type's blocking statuses, and the store's partial unique index over
// pending rows, which serializes submissions racing past the check.
type SubmitRequestCommandHandler struct {
	uowFactory RequestUoWFactory
	clock      ports.Clock
}

// NewSubmitRequestCommandHandler creates a handler for request submission.
func NewSubmitRequestCommandHandler(uowFactory RequestUoWFactory, clock ports.Clock) SubmitRequestCommandHandler {
	return SubmitRequestCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the submission command.
// Verifies the caller owns the bill and the bill is still open, checks
// for a blocking prior request, and persists the new pending request.
func (h *SubmitRequestCommandHandler) Handle(ctx context.Context, cmd SubmitRequestCommand) error {
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

	profile, err := uow.ShipperRepository().GetByUserID(ctx, cmd.RequesterUserID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errs.NewForbiddenError("caller has no shipper profile")
		}
		return err
	}

	if !profile.IsActive() {
		return errs.NewForbiddenError("shipper profile is deactivated")
	}

	billEntity, err := uow.BillRepository().Get(ctx, cmd.BillCode())
	if err != nil {
		return err
	}

	if !billEntity.OwnedBy(profile.ID()) {
		return errs.NewForbiddenError("bill belongs to another shipper")
	}

	if err = billEntity.Status().EnsureOpen(billEntity.Code().String()); err != nil {
		return err
	}

	requestRepo := uow.RequestRepository()
	requestType := cmd.Payload().RequestType()
	blocked, err := requestRepo.HasBlocking(ctx, cmd.RequesterUserID(), cmd.BillCode(), requestType)
	if err != nil {
		return err
	}
	if blocked {
		return errs.NewDuplicateRequestError(cmd.BillCode().String(), requestType.String())
	}

	requestEntity, err := request.NewRequest(
		cmd.RequesterUserID(),
		cmd.BillCode(),
		cmd.Payload(),
		cmd.Content(),
		h.clock.Today(),
	)
	if err != nil {
		return err
	}

	if err = requestRepo.Add(ctx, requestEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
