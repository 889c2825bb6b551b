package request_test

import (
	"testing"

	"backoffice/internal/core/domain/model/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	for _, s := range []request.Status{request.StatusCreate, request.StatusAccept, request.StatusReject} {
		require.NoError(t, s.Validate(), s)
	}

	require.Error(t, request.Status("APPROVE").Validate())
	require.Error(t, request.Status("").Validate())
}

func TestStatus_Transitions(t *testing.T) {
	t.Run("create_accepts", func(t *testing.T) {
		next, err := request.StatusCreate.Accept()
		require.NoError(t, err)
		assert.Equal(t, request.StatusAccept, next)
	})

	t.Run("create_rejects", func(t *testing.T) {
		next, err := request.StatusCreate.Reject()
		require.NoError(t, err)
		assert.Equal(t, request.StatusReject, next)
	})

	t.Run("terminal_statuses_do_not_transition", func(t *testing.T) {
		for _, s := range []request.Status{request.StatusAccept, request.StatusReject} {
			_, err := s.Accept()
			require.Error(t, err, s)

			_, err = s.Reject()
			require.Error(t, err, s)
		}
	})
}

func TestStatus_IsPending(t *testing.T) {
	assert.True(t, request.StatusCreate.IsPending())
	assert.False(t, request.StatusAccept.IsPending())
	assert.False(t, request.StatusReject.IsPending())
}

func TestType_BlockingStatuses(t *testing.T) {
	// REMOVE_BILL and REMOVE_TRANSFER: a prior rejection does not block.
	assert.ElementsMatch(t,
		[]request.Status{request.StatusCreate, request.StatusAccept},
		request.RemoveBill.BlockingStatuses())
	assert.ElementsMatch(t,
		[]request.Status{request.StatusCreate, request.StatusAccept},
		request.RemoveTransfer.BlockingStatuses())

	// CHANGE_COD: only a prior acceptance clears the way.
	assert.ElementsMatch(t,
		[]request.Status{request.StatusCreate, request.StatusReject},
		request.ChangeCod.BlockingStatuses())
}

func TestType_Validate(t *testing.T) {
	for _, ty := range []request.Type{request.RemoveBill, request.RemoveTransfer, request.ChangeCod} {
		require.NoError(t, ty.Validate(), ty)
	}

	require.Error(t, request.Type("RENAME_BILL").Validate())
}

func TestPayload_Variants(t *testing.T) {
	t.Run("types_match", func(t *testing.T) {
		assert.Equal(t, request.RemoveBill, request.RemoveBillPayload{}.RequestType())
		assert.Equal(t, request.RemoveTransfer, request.RemoveTransferPayload{}.RequestType())
		assert.Equal(t, request.ChangeCod, request.ChangeCodPayload{NewAmount: 1}.RequestType())
	})

	t.Run("change_cod_requires_positive_amount", func(t *testing.T) {
		require.NoError(t, request.ChangeCodPayload{NewAmount: 75000}.Validate())
		require.Error(t, request.ChangeCodPayload{NewAmount: 0}.Validate())
		require.Error(t, request.ChangeCodPayload{NewAmount: -5}.Validate())
	})
}
