package pgerrors_test

import (
	"errors"
	"fmt"
	"testing"

	"backoffice/internal/adapters/out/postgres/pgerrors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniqueViolation_PgxError(t *testing.T) {
	err := &pgconn.PgError{
		Code:   "23505",
		Detail: "Key (bill_code)=(HD999) already exists.",
	}
	wrapped := fmt.Errorf("insert failed: %w", err)

	column, value, ok := pgerrors.UniqueViolation(wrapped)

	require.True(t, ok, "a 23505 raised by the pgx driver must be classified")
	assert.Equal(t, "bill_code", column)
	assert.Equal(t, "HD999", value)
}

func TestUniqueViolation_PgxErrorWithoutDetail(t *testing.T) {
	err := &pgconn.PgError{
		Code:           "23505",
		ConstraintName: "idx_requests_pending",
	}

	column, _, ok := pgerrors.UniqueViolation(err)

	require.True(t, ok)
	assert.Equal(t, "idx_requests_pending", column)
}

func TestUniqueViolation_PqError(t *testing.T) {
	err := &pq.Error{
		Code:   "23505",
		Detail: "Key (bill_code)=(BK20240105001) already exists.",
	}

	column, value, ok := pgerrors.UniqueViolation(err)

	require.True(t, ok)
	assert.Equal(t, "bill_code", column)
	assert.Equal(t, "BK20240105001", value)
}

func TestUniqueViolation_CompositeKey(t *testing.T) {
	err := &pq.Error{
		Code:   "23505",
		Detail: "Key (requester_id, bill_code, type)=(42, BK20240105001, REMOVE_BILL) already exists.",
	}

	column, value, ok := pgerrors.UniqueViolation(err)

	require.True(t, ok)
	assert.Equal(t, "requester_id, bill_code, type", column)
	assert.Equal(t, "42, BK20240105001, REMOVE_BILL", value)
}

func TestUniqueViolation_WrappedError(t *testing.T) {
	inner := &pq.Error{
		Code:       "23505",
		Constraint: "idx_shippers_phone",
	}
	wrapped := fmt.Errorf("create failed: %w", inner)

	column, _, ok := pgerrors.UniqueViolation(wrapped)

	require.True(t, ok)
	// Without a detail line the constraint name is the best available hint.
	assert.Equal(t, "idx_shippers_phone", column)
}

func TestUniqueViolation_OtherErrors(t *testing.T) {
	_, _, ok := pgerrors.UniqueViolation(errors.New("connection refused"))
	assert.False(t, ok)

	_, _, ok = pgerrors.UniqueViolation(&pq.Error{Code: "23503"})
	assert.False(t, ok)

	_, _, ok = pgerrors.UniqueViolation(&pgconn.PgError{Code: "23503"})
	assert.False(t, ok)

	_, _, ok = pgerrors.UniqueViolation(nil)
	assert.False(t, ok)
}
