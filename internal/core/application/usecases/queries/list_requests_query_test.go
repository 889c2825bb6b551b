package queries_test

import (
	"testing"

	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListRequestsQuery_ValidInput(t *testing.T) {
	query, err := queries.NewListRequestsQuery(42, "CREATE", 20240101, 20240131, 20)

	require.NoError(t, err)
	assert.NoError(t, query.Validate())
	assert.Equal(t, int64(42), query.RequesterUserID())
	assert.Equal(t, "CREATE", query.Status())
	assert.Equal(t, 20240101, query.DateFrom())
	assert.Equal(t, 20240131, query.DateTo())
	assert.Equal(t, 20, query.Limit())
}

func TestNewListRequestsQuery_OpenFilters(t *testing.T) {
	query, err := queries.NewListRequestsQuery(0, "", 20240101, 20240131, 0)

	require.NoError(t, err)
	assert.Zero(t, query.RequesterUserID())
	assert.Empty(t, query.Status())
	assert.Equal(t, 100, query.Limit())
}

func TestNewListRequestsQuery_RequiresDateRange(t *testing.T) {
	_, err := queries.NewListRequestsQuery(0, "", 0, 20240131, 0)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = queries.NewListRequestsQuery(0, "", 20240101, 0, 0)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewListRequestsQuery_InvalidInput(t *testing.T) {
	_, err := queries.NewListRequestsQuery(-1, "", 20240101, 20240131, 0)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = queries.NewListRequestsQuery(0, "PENDING", 20240101, 20240131, 0)
	assert.Error(t, err, "Unknown status values are rejected")

	_, err = queries.NewListRequestsQuery(0, "", 20240131, 20240101, 0)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = queries.NewListRequestsQuery(0, "", 20240101, 20240131, 9999)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewListRequestsForDateQuery(t *testing.T) {
	query, err := queries.NewListRequestsForDateQuery(20240105)
	require.NoError(t, err)
	assert.Equal(t, 20240105, query.BusinessDate())

	_, err = queries.NewListRequestsForDateQuery(0)
	assert.Error(t, err)
}

func TestNewListUsersQuery(t *testing.T) {
	query, err := queries.NewListUsersQuery("")
	require.NoError(t, err)
	assert.NoError(t, query.Validate())
	assert.Empty(t, query.Role())

	query, err = queries.NewListUsersQuery("SHIPPER")
	require.NoError(t, err)
	assert.Equal(t, "SHIPPER", query.Role())

	_, err = queries.NewListUsersQuery("WIZARD")
	assert.Error(t, err, "Unknown roles are rejected")

	var zero queries.ListUsersQuery
	assert.ErrorIs(t, zero.Validate(), queries.ErrListUsersQueryIsNotConstructed)
}
