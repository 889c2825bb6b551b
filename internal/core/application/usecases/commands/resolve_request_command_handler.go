package commands

import (
	"context"

	"backoffice/internal/core/domain/model/request"
	"backoffice/internal/core/ports"
	"backoffice/internal/pkg/errs"
)

// ResolveRequestCommandHandler handles managers accepting or rejecting
// pending change requests. Acceptance applies the requested change to the
// bill in the same transaction that records the resolution; rejection
// only records it.
//
// Concurrent resolvers are serialized by the conditional resolution
// update: the loser observes the request as already gone.
type ResolveRequestCommandHandler struct {
	uowFactory RequestUoWFactory
	clock      ports.Clock
}

// NewResolveRequestCommandHandler creates a handler for request resolution.
func NewResolveRequestCommandHandler(uowFactory RequestUoWFactory, clock ports.Clock) ResolveRequestCommandHandler {
	return ResolveRequestCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the resolution command.
func (h *ResolveRequestCommandHandler) Handle(ctx context.Context, cmd ResolveRequestCommand) error {
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

	requestRepo := uow.RequestRepository()
	requestEntity, err := requestRepo.GetPending(ctx, cmd.RequestID())
	if err != nil {
		return err
	}

	now := h.clock.Now()
	if cmd.Accept() {
		if err = h.applyEffect(ctx, uow, requestEntity); err != nil {
			return err
		}
		if err = requestEntity.Accept(cmd.ApproverUserID(), cmd.Reason(), now); err != nil {
			return err
		}
	} else {
		if err = requestEntity.Reject(cmd.ApproverUserID(), cmd.Reason(), now); err != nil {
			return err
		}
	}

	if err = requestRepo.MarkResolved(ctx, requestEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// applyEffect performs the accepted request's change on the bill. The
// open-status guard applies at submission, not here: acceptance is a
// manager action and goes through even if the bill was audited after
// the request was filed. The bill must still exist; otherwise the whole
// resolution fails and the request stays pending.
func (h *ResolveRequestCommandHandler) applyEffect(ctx context.Context, uow RequestUoW, requestEntity *request.Request) error {
	billRepo := uow.BillRepository()
	billEntity, err := billRepo.Get(ctx, requestEntity.BillCode())
	if err != nil {
		return err
	}

	switch payload := requestEntity.Payload().(type) {
	case request.RemoveBillPayload:
		return billRepo.Delete(ctx, billEntity.Code())
	case request.RemoveTransferPayload:
		billEntity.ApplyRemoveTransfer()
		return billRepo.Update(ctx, billEntity)
	case request.ChangeCodPayload:
		if err = billEntity.ApplyChangeCod(payload.NewAmount); err != nil {
			return err
		}
		return billRepo.Update(ctx, billEntity)
	default:
		return errs.NewInvalidRequestTypeError(requestEntity.Type().String())
	}
}
