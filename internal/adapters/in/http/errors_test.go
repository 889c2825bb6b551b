package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"backoffice/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_RespondError_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"unauthorized", errs.NewUnauthorizedError(), http.StatusUnauthorized},
		{"forbidden", errs.NewForbiddenError("not yours"), http.StatusForbidden},
		{"not found", errs.NewObjectNotFoundError("requestId", 7), http.StatusNotFound},
		{"bill locked", errs.NewBillLockedError("BK20240115001"), http.StatusConflict},
		{"duplicate bill", errs.NewDuplicateBillCodeError("BK20240115001"), http.StatusConflict},
		{"duplicate shipper", errs.NewDuplicateShipperError("phone", "555-0101"), http.StatusConflict},
		{"duplicate request", errs.NewDuplicateRequestError("BK20240115001", "CHANGE_COD"), http.StatusConflict},
		{"invalid value", errs.NewValueIsInvalidError("amount"), http.StatusBadRequest},
		{"required value", errs.NewValueIsRequiredError("billCode"), http.StatusBadRequest},
		{"invalid request type", errs.NewInvalidRequestTypeError("SHRED_BILL"), http.StatusBadRequest},
		{"store failure", errs.NewStoreFailureError("create bills", errors.New("boom")), http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			ctx := e.NewContext(req, rec)

			// Act
			err := respondError(ctx, tt.err)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func Test_RespondError_HidesInternalDetail(t *testing.T) {
	// Arrange
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	// Act
	err := respondError(ctx, errors.New("pq: connection reset"))

	// Assert
	require.NoError(t, err)
	assert.NotContains(t, rec.Body.String(), "connection reset")
}

func Test_RespondError_NamesStoreFailureKind(t *testing.T) {
	// Arrange
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	storeErr := errs.NewStoreFailureError("create bills", errors.New("connection reset"))

	// Act
	err := respondError(ctx, storeErr)

	// Assert
	require.NoError(t, err)
	assert.Contains(t, rec.Body.String(), "store failure")
	assert.NotContains(t, rec.Body.String(), "connection reset")
}
