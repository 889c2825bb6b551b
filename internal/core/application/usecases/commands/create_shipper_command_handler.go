package commands

import (
	"context"

	"backoffice/internal/core/domain/model/shipper"
	"backoffice/internal/pkg/errs"
)

// CreateShipperCommandHandler handles shipper profile registration.
// The profile must link to an existing system user and carries uniqueness
// constraints on the user link and the phone number.
type CreateShipperCommandHandler struct {
	uowFactory ShipperUoWFactory
}

// NewCreateShipperCommandHandler creates a handler for shipper registration.
func NewCreateShipperCommandHandler(uowFactory ShipperUoWFactory) CreateShipperCommandHandler {
	return CreateShipperCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipper registration command.
func (h *CreateShipperCommandHandler) Handle(ctx context.Context, cmd CreateShipperCommand) error {
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

	exists, err := uow.UserRepository().Exists(ctx, cmd.UserID())
	if err != nil {
		return err
	}
	if !exists {
		return errs.NewObjectNotFoundError("userId", cmd.UserID())
	}

	shipperEntity, err := shipper.NewShipper(
		cmd.UserID(),
		cmd.Username(),
		cmd.FullName(),
		cmd.Phone(),
		cmd.ShipperType(),
	)
	if err != nil {
		return err
	}

	if err = uow.ShipperRepository().Add(ctx, shipperEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
