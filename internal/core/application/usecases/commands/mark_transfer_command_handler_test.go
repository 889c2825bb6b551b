package commands_test

import (
	"testing"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/domain/model/bill"
	"backoffice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMarkTransferCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	code := mustBillCode(t, "BK20240105001")
	cmd, err := commands.NewMarkTransferCommand(42, code, true)
	require.NoError(t, err)

	billEntity := newOpenBill(t, "BK20240105001", 7)

	mockBillRepo := new(MockBillRepository)
	mockShipperRepo := new(MockShipperRepository)
	mockUoW := new(MockBillUoW)
	mockFactory := new(MockBillUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("ShipperRepository").Return(mockShipperRepo).Once(),
		mockShipperRepo.On("GetByUserID", ctx, int64(42)).Return(newTestShipper(t, 7, 42, true), nil).Once(),
		mockUoW.On("BillRepository").Return(mockBillRepo).Once(),
		mockBillRepo.On("Get", ctx, code).Return(billEntity, nil).Once(),
		mockBillRepo.On("Update", ctx, billEntity).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewMarkTransferCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.True(t, billEntity.IsTransfer())
	mockUoW.AssertExpectations(t)
	mockBillRepo.AssertExpectations(t)
}

func TestMarkTransferCommandHandler_Handle_NoShipperProfile(t *testing.T) {
	// Arrange
	ctx := t.Context()
	code := mustBillCode(t, "BK20240105001")
	cmd, err := commands.NewMarkTransferCommand(42, code, true)
	require.NoError(t, err)

	mockShipperRepo := new(MockShipperRepository)
	mockUoW := new(MockBillUoW)
	mockFactory := new(MockBillUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("ShipperRepository").Return(mockShipperRepo).Once(),
		mockShipperRepo.On("GetByUserID", ctx, int64(42)).
			Return(nil, errs.NewObjectNotFoundError("userId", int64(42))).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewMarkTransferCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrForbidden)
}

func TestMarkTransferCommandHandler_Handle_ForeignBill(t *testing.T) {
	// Arrange
	ctx := t.Context()
	code := mustBillCode(t, "BK20240105001")
	cmd, err := commands.NewMarkTransferCommand(42, code, true)
	require.NoError(t, err)

	// The bill is assigned to shipper 99, not the caller's profile 7.
	billEntity := newOpenBill(t, "BK20240105001", 99)

	mockBillRepo := new(MockBillRepository)
	mockShipperRepo := new(MockShipperRepository)
	mockUoW := new(MockBillUoW)
	mockFactory := new(MockBillUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("ShipperRepository").Return(mockShipperRepo).Once(),
		mockShipperRepo.On("GetByUserID", ctx, int64(42)).Return(newTestShipper(t, 7, 42, true), nil).Once(),
		mockUoW.On("BillRepository").Return(mockBillRepo).Once(),
		mockBillRepo.On("Get", ctx, code).Return(billEntity, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewMarkTransferCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrForbidden)
	assert.False(t, billEntity.IsTransfer())
	mockUoW.AssertNotCalled(t, "Commit", ctx)
}

func TestMarkTransferCommandHandler_Handle_AuditedBill(t *testing.T) {
	// Arrange
	ctx := t.Context()
	code := mustBillCode(t, "BK20240105001")
	cmd, err := commands.NewMarkTransferCommand(42, code, true)
	require.NoError(t, err)

	billEntity := newBillWithStatus(t, "BK20240105001", 7, bill.Audited)

	mockBillRepo := new(MockBillRepository)
	mockShipperRepo := new(MockShipperRepository)
	mockUoW := new(MockBillUoW)
	mockFactory := new(MockBillUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("ShipperRepository").Return(mockShipperRepo).Once(),
		mockShipperRepo.On("GetByUserID", ctx, int64(42)).Return(newTestShipper(t, 7, 42, true), nil).Once(),
		mockUoW.On("BillRepository").Return(mockBillRepo).Once(),
		mockBillRepo.On("Get", ctx, code).Return(billEntity, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewMarkTransferCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrBillLocked)
	mockUoW.AssertNotCalled(t, "Commit", ctx)
}
