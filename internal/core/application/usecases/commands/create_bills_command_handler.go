package commands

import (
	"context"

	"backoffice/internal/core/domain/model/bill"
	"backoffice/internal/core/domain/model/shipper"
	"backoffice/internal/core/ports"
	"backoffice/internal/pkg/errs"
)

// CreateBillsCommandHandler handles the business logic for batch bill
// intake. Every bill of the batch is stamped with the same generated
// group code and the current business date, and the whole batch commits
// or rolls back as one.
type CreateBillsCommandHandler struct {
	uowFactory BillUoWFactory
	clock      ports.Clock
}

// NewCreateBillsCommandHandler creates a handler for batch bill intake.
func NewCreateBillsCommandHandler(uowFactory BillUoWFactory, clock ports.Clock) CreateBillsCommandHandler {
	return CreateBillsCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the batch intake command.
// Resolves each draft's shipper inside the transaction, builds the bill
// aggregates, and persists them in one statement. A duplicate bill code
// anywhere in the batch fails the entire batch.
func (h *CreateBillsCommandHandler) Handle(ctx context.Context, cmd CreateBillsCommand) error {
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

	shipperRepo := uow.ShipperRepository()
	businessDate := h.clock.Today()

	shippers := make(map[int64]*shipper.Shipper)
	bills := make([]*bill.Bill, 0, len(cmd.Drafts()))
	for _, draft := range cmd.Drafts() {
		assignee, ok := shippers[draft.ShipperID()]
		if !ok {
			var err error
			assignee, err = shipperRepo.GetByID(ctx, draft.ShipperID())
			if err != nil {
				return err
			}
			shippers[draft.ShipperID()] = assignee
		}

		if !assignee.IsActive() {
			return errs.NewValueIsInvalidError("shipperId")
		}

		billEntity, err := bill.NewBill(
			draft.Code(),
			draft.CustName(),
			draft.CustPhone(),
			draft.CustAddress(),
			draft.Amount(),
			draft.IsTransfer(),
			assignee.ID(),
			assignee.FullName(),
			cmd.GroupCode(),
			businessDate,
		)
		if err != nil {
			return err
		}

		bills = append(bills, billEntity)
	}

	if err := uow.BillRepository().AddBatch(ctx, bills); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
