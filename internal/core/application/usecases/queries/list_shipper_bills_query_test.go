package queries_test

import (
	"testing"

	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListShipperBillsQuery_ValidInput(t *testing.T) {
	query, err := queries.NewListShipperBillsQuery(42, 20240101, 20240131)

	require.NoError(t, err)
	assert.NoError(t, query.Validate())
	assert.Equal(t, int64(42), query.UserID())
	assert.Equal(t, 20240101, query.DateFrom())
	assert.Equal(t, 20240131, query.DateTo())
}

func TestNewListShipperBillsQuery_SingleDay(t *testing.T) {
	query, err := queries.NewListShipperBillsQuery(42, 20240105, 20240105)

	require.NoError(t, err)
	assert.Equal(t, 20240105, query.DateFrom())
	assert.Equal(t, 20240105, query.DateTo())
}

func TestNewListShipperBillsQuery_RequiresDateRange(t *testing.T) {
	_, err := queries.NewListShipperBillsQuery(42, 0, 20240131)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = queries.NewListShipperBillsQuery(42, 20240101, 0)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewListShipperBillsQuery_InvalidInput(t *testing.T) {
	_, err := queries.NewListShipperBillsQuery(0, 20240101, 20240131)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = queries.NewListShipperBillsQuery(42, 20240230, 20240301)
	assert.Error(t, err)

	_, err = queries.NewListShipperBillsQuery(42, 20240131, 20240101)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestListShipperBillsQuery_Validate_ZeroValue(t *testing.T) {
	var query queries.ListShipperBillsQuery

	err := query.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrListShipperBillsQueryIsNotConstructed)
}
