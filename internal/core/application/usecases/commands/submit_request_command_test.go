package commands_test

import (
	"testing"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/domain/model/request"
	"backoffice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSubmitRequestCommand_RemoveBill(t *testing.T) {
	// Arrange
	code := mustBillCode(t, "BK20240105001")

	// Act
	cmd, err := commands.NewSubmitRequestCommand(42, code, request.RemoveBillPayload{})

	// Assert
	require.NoError(t, err)
	assert.NoError(t, cmd.Validate())
	assert.Equal(t, int64(42), cmd.RequesterUserID())
	assert.Equal(t, code, cmd.BillCode())
	assert.Equal(t, request.RemoveBill, cmd.Payload().RequestType())
	assert.Equal(t, "remove bill BK20240105001", cmd.Content())
}

func TestNewSubmitRequestCommand_ChangeCod(t *testing.T) {
	// Arrange
	code := mustBillCode(t, "BK20240105001")

	// Act
	cmd, err := commands.NewSubmitRequestCommand(42, code, request.ChangeCodPayload{NewAmount: 900})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, request.ChangeCod, cmd.Payload().RequestType())
	assert.Equal(t, "change cod on BK20240105001 to 900", cmd.Content())
}

func TestNewSubmitRequestCommand_RemoveTransfer(t *testing.T) {
	code := mustBillCode(t, "BK20240105001")

	cmd, err := commands.NewSubmitRequestCommand(42, code, request.RemoveTransferPayload{})

	require.NoError(t, err)
	assert.Equal(t, "remove transfer flag on BK20240105001", cmd.Content())
}

func TestNewSubmitRequestCommand_InvalidInput(t *testing.T) {
	code := mustBillCode(t, "BK20240105001")

	t.Run("nil payload", func(t *testing.T) {
		cmd, err := commands.NewSubmitRequestCommand(42, code, nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Zero(t, cmd)
	})

	t.Run("invalid payload", func(t *testing.T) {
		cmd, err := commands.NewSubmitRequestCommand(42, code, request.ChangeCodPayload{NewAmount: 0})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Zero(t, cmd)
	})

	t.Run("zero requester", func(t *testing.T) {
		cmd, err := commands.NewSubmitRequestCommand(0, code, request.RemoveBillPayload{})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Zero(t, cmd)
	})
}

func TestSubmitRequestCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.SubmitRequestCommand

	err := cmd.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrSubmitRequestCommandIsNotConstructed)
}
