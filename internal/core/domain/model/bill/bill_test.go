package bill_test

import (
	"testing"

	"backoffice/internal/core/domain/model/bill"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBill(t *testing.T) *bill.Bill {
	t.Helper()

	code, err := kernel.NewBillCode("HD00000001")
	require.NoError(t, err)
	date, err := kernel.NewBusinessDate(20260829)
	require.NoError(t, err)

	b, err := bill.NewBill(code, "Nguyen Van A", "0912345678", "12 Hang Bac, Ha Noi",
		50000, false, 7, "Shipper Bay", kernel.NewGroupCode(), date)
	require.NoError(t, err)
	return b
}

func TestNewBill(t *testing.T) {
	t.Run("valid_bill_starts_open", func(t *testing.T) {
		b := newTestBill(t)

		require.NoError(t, b.Validate())
		assert.Equal(t, "HD00000001", b.Code().String())
		assert.Equal(t, "HD000000", b.OrgCode())
		assert.Equal(t, int64(50000), b.Amount())
		assert.Equal(t, int64(7), b.ShipperID())
		assert.Equal(t, bill.Open, b.Status())
		assert.False(t, b.IsTransfer())
	})

	t.Run("non_positive_amount_is_rejected", func(t *testing.T) {
		code, _ := kernel.NewBillCode("HD00000001")
		date, _ := kernel.NewBusinessDate(20260829)

		_, err := bill.NewBill(code, "Nguyen Van A", "0912345678", "addr",
			0, false, 7, "Shipper Bay", kernel.NewGroupCode(), date)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("non_positive_shipper_id_is_rejected", func(t *testing.T) {
		code, _ := kernel.NewBillCode("HD00000001")
		date, _ := kernel.NewBusinessDate(20260829)

		_, err := bill.NewBill(code, "Nguyen Van A", "0912345678", "addr",
			50000, false, 0, "Shipper Bay", kernel.NewGroupCode(), date)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("empty_customer_name_is_rejected", func(t *testing.T) {
		code, _ := kernel.NewBillCode("HD00000001")
		date, _ := kernel.NewBusinessDate(20260829)

		_, err := bill.NewBill(code, "", "0912345678", "addr",
			50000, false, 7, "Shipper Bay", kernel.NewGroupCode(), date)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var b bill.Bill

		require.ErrorIs(t, b.Validate(), bill.ErrBillIsNotConstructed)
	})
}

func TestRestoreBill(t *testing.T) {
	code, _ := kernel.NewBillCode("HD00000001")
	date, _ := kernel.NewBusinessDate(20260829)

	b, err := bill.RestoreBill(code, "Nguyen Van A", "0912345678", "addr",
		50000, true, 7, "Shipper Bay", kernel.NewGroupCode(), date, bill.Status(3))

	require.NoError(t, err)
	assert.Equal(t, bill.Status(3), b.Status())
	assert.False(t, b.Status().IsOpen())
	assert.True(t, b.IsTransfer())
}

func TestBill_MarkTransfer(t *testing.T) {
	t.Run("owner_can_toggle_open_bill", func(t *testing.T) {
		b := newTestBill(t)

		require.NoError(t, b.MarkTransfer(7, true))
		assert.True(t, b.IsTransfer())

		require.NoError(t, b.MarkTransfer(7, false))
		assert.False(t, b.IsTransfer())
	})

	t.Run("wrong_shipper_is_forbidden", func(t *testing.T) {
		b := newTestBill(t)

		err := b.MarkTransfer(3, true)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrForbidden)
		assert.False(t, b.IsTransfer())
	})

	t.Run("audited_bill_is_locked_regardless_of_caller", func(t *testing.T) {
		code, _ := kernel.NewBillCode("HD00000001")
		date, _ := kernel.NewBusinessDate(20260829)
		b, err := bill.RestoreBill(code, "Nguyen Van A", "0912345678", "addr",
			50000, false, 7, "Shipper Bay", kernel.NewGroupCode(), date, bill.Audited)
		require.NoError(t, err)

		err = b.MarkTransfer(7, true)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrBillLocked)
		assert.False(t, b.IsTransfer())
	})
}

func TestBill_Exchange(t *testing.T) {
	t.Run("updates_assignment_amount_and_transfer", func(t *testing.T) {
		b := newTestBill(t)

		require.NoError(t, b.Exchange(9, "Shipper Chin", 75000, true))

		assert.Equal(t, int64(9), b.ShipperID())
		assert.Equal(t, "Shipper Chin", b.ShipperName())
		assert.Equal(t, int64(75000), b.Amount())
		assert.True(t, b.IsTransfer())
	})

	t.Run("ignores_audit_status", func(t *testing.T) {
		code, _ := kernel.NewBillCode("HD00000001")
		date, _ := kernel.NewBusinessDate(20260829)
		b, err := bill.RestoreBill(code, "Nguyen Van A", "0912345678", "addr",
			50000, false, 7, "Shipper Bay", kernel.NewGroupCode(), date, bill.Audited)
		require.NoError(t, err)

		require.NoError(t, b.Exchange(9, "Shipper Chin", 60000, false))
		assert.Equal(t, int64(9), b.ShipperID())
	})

	t.Run("rejects_non_positive_amount", func(t *testing.T) {
		b := newTestBill(t)

		err := b.Exchange(9, "Shipper Chin", -1, false)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestBill_ApplyChangeCod(t *testing.T) {
	b := newTestBill(t)

	require.NoError(t, b.ApplyChangeCod(75000))
	assert.Equal(t, int64(75000), b.Amount())

	err := b.ApplyChangeCod(0)
	require.Error(t, err)
	assert.Equal(t, int64(75000), b.Amount())
}

func TestBill_ApplyRemoveTransfer(t *testing.T) {
	b := newTestBill(t)
	require.NoError(t, b.MarkTransfer(7, true))

	b.ApplyRemoveTransfer()

	assert.False(t, b.IsTransfer())
}

func TestBill_OwnedBy(t *testing.T) {
	b := newTestBill(t)

	assert.True(t, b.OwnedBy(7))
	assert.False(t, b.OwnedBy(4))
}
