package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/domain/model/bill"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/shipper"
	"backoffice/internal/core/ports"
	"backoffice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock implementations for testing.
type MockBillRepository struct{ mock.Mock }

func (m *MockBillRepository) AddBatch(ctx context.Context, bills []*bill.Bill) error {
	args := m.Called(ctx, bills)
	return args.Error(0)
}

func (m *MockBillRepository) Update(ctx context.Context, aggregate *bill.Bill) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockBillRepository) Get(ctx context.Context, code kernel.BillCode) (*bill.Bill, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bill.Bill), args.Error(1)
}

func (m *MockBillRepository) Delete(ctx context.Context, code kernel.BillCode) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

type MockShipperRepository struct{ mock.Mock }

func (m *MockShipperRepository) Add(ctx context.Context, aggregate *shipper.Shipper) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockShipperRepository) GetByUserID(ctx context.Context, userID int64) (*shipper.Shipper, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipper.Shipper), args.Error(1)
}

func (m *MockShipperRepository) GetByID(ctx context.Context, id int64) (*shipper.Shipper, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipper.Shipper), args.Error(1)
}

type MockBillUoW struct{ mock.Mock }

func (m *MockBillUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockBillUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockBillUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockBillUoW) BillRepository() ports.BillRepository {
	args := m.Called()
	return args.Get(0).(ports.BillRepository)
}

func (m *MockBillUoW) ShipperRepository() ports.ShipperRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipperRepository)
}

type MockBillUoWFactory struct{ mock.Mock }

func (m *MockBillUoWFactory) Create() commands.BillUoW {
	args := m.Called()
	return args.Get(0).(commands.BillUoW)
}

// fixedClock pins the handlers to a known instant and business date.
type fixedClock struct {
	now   time.Time
	today kernel.BusinessDate
}

func (c fixedClock) Now() time.Time             { return c.now }
func (c fixedClock) Today() kernel.BusinessDate { return c.today }

func testClock(t *testing.T) fixedClock {
	t.Helper()
	today, err := kernel.NewBusinessDate(20240105)
	require.NoError(t, err)
	return fixedClock{
		now:   time.Date(2024, 1, 5, 10, 30, 0, 0, time.UTC),
		today: today,
	}
}

func newTestShipper(t *testing.T, id, userID int64, active bool) *shipper.Shipper {
	t.Helper()
	profile, err := shipper.RestoreShipper(id, userID, "jroe", "Jane Roe", "555-0101", shipper.FullTime, active)
	require.NoError(t, err)
	return profile
}

func newOpenBill(t *testing.T, code string, shipperID int64) *bill.Bill {
	t.Helper()
	return newBillWithStatus(t, code, shipperID, bill.Open)
}

func newBillWithStatus(t *testing.T, code string, shipperID int64, status bill.Status) *bill.Bill {
	t.Helper()
	today, err := kernel.NewBusinessDate(20240105)
	require.NoError(t, err)
	b, err := bill.RestoreBill(
		mustBillCode(t, code), "Jane Roe", "555-0101", "12 Pier St",
		1500, false, shipperID, "Jane Roe", kernel.NewGroupCode(), today, status,
	)
	require.NoError(t, err)
	return b
}

func TestCreateBillsCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewCreateBillsCommand([]commands.BillDraft{
		mustDraft(t, "BK20240105001", 7),
		mustDraft(t, "BK20240105002", 7),
	})
	require.NoError(t, err)

	mockBillRepo := new(MockBillRepository)
	mockShipperRepo := new(MockShipperRepository)
	mockUoW := new(MockBillUoW)
	mockFactory := new(MockBillUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("ShipperRepository").Return(mockShipperRepo).Once(),
		// Both drafts reference the same shipper; the profile is fetched once.
		mockShipperRepo.On("GetByID", ctx, int64(7)).Return(newTestShipper(t, 7, 42, true), nil).Once(),
		mockUoW.On("BillRepository").Return(mockBillRepo).Once(),
		mockBillRepo.On("AddBatch", ctx, mock.MatchedBy(func(bills []*bill.Bill) bool {
			return len(bills) == 2 &&
				bills[0].GroupCode() == bills[1].GroupCode() &&
				bills[0].ShipperName() == "Jane Roe"
		})).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateBillsCommandHandler(mockFactory, testClock(t))

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockShipperRepo.AssertExpectations(t)
	mockBillRepo.AssertExpectations(t)
}

func TestCreateBillsCommandHandler_Handle_InactiveShipper(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewCreateBillsCommand([]commands.BillDraft{mustDraft(t, "BK20240105001", 7)})
	require.NoError(t, err)

	mockShipperRepo := new(MockShipperRepository)
	mockUoW := new(MockBillUoW)
	mockFactory := new(MockBillUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("ShipperRepository").Return(mockShipperRepo).Once(),
		mockShipperRepo.On("GetByID", ctx, int64(7)).Return(newTestShipper(t, 7, 42, false), nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateBillsCommandHandler(mockFactory, testClock(t))

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	mockUoW.AssertNotCalled(t, "Commit", ctx)
}

func TestCreateBillsCommandHandler_Handle_DuplicateCodeFailsBatch(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewCreateBillsCommand([]commands.BillDraft{mustDraft(t, "BK20240105001", 7)})
	require.NoError(t, err)

	duplicateErr := errs.NewDuplicateBillCodeError("BK20240105001")

	mockBillRepo := new(MockBillRepository)
	mockShipperRepo := new(MockShipperRepository)
	mockUoW := new(MockBillUoW)
	mockFactory := new(MockBillUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("ShipperRepository").Return(mockShipperRepo).Once(),
		mockShipperRepo.On("GetByID", ctx, int64(7)).Return(newTestShipper(t, 7, 42, true), nil).Once(),
		mockUoW.On("BillRepository").Return(mockBillRepo).Once(),
		mockBillRepo.On("AddBatch", ctx, mock.Anything).Return(duplicateErr).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateBillsCommandHandler(mockFactory, testClock(t))

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrDuplicateBillCode)
	mockUoW.AssertNotCalled(t, "Commit", ctx)
}

func TestCreateBillsCommandHandler_Handle_BeginFails(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewCreateBillsCommand([]commands.BillDraft{mustDraft(t, "BK20240105001", 7)})
	require.NoError(t, err)

	beginErr := errors.New("connection refused")

	mockUoW := new(MockBillUoW)
	mockFactory := new(MockBillUoWFactory)
	mockUoW.On("Begin", ctx).Return(beginErr).Once()
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateBillsCommandHandler(mockFactory, testClock(t))

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, beginErr)
}

func TestCreateBillsCommandHandler_Handle_UnconstructedCommand(t *testing.T) {
	// Arrange
	handler := commands.NewCreateBillsCommandHandler(new(MockBillUoWFactory), testClock(t))

	// Act
	err := handler.Handle(t.Context(), commands.CreateBillsCommand{})

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreateBillsCommandIsNotConstructed)
}
