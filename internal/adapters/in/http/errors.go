package http

import (
	"errors"
	"net/http"

	"backoffice/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// apiError is the JSON error body returned by every endpoint.
type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// respondError maps domain error kinds to HTTP statuses. Validation
// failures are client errors; everything unrecognized is a 500 with the
// detail withheld.
func respondError(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	message := "internal error"

	switch {
	case errors.Is(err, errs.ErrUnauthorized):
		status = http.StatusUnauthorized
		message = err.Error()
	case errors.Is(err, errs.ErrForbidden):
		status = http.StatusForbidden
		message = err.Error()
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, errs.ErrDuplicateBillCode),
		errors.Is(err, errs.ErrDuplicateShipper),
		errors.Is(err, errs.ErrDuplicateRequest):
		status = http.StatusConflict
		message = err.Error()
	case errors.Is(err, errs.ErrBillLocked):
		status = http.StatusConflict
		message = err.Error()
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrInvalidRequestType):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, errs.ErrStoreFailure):
		// The caller learns the kind; the driver detail stays in the logs.
		message = "store failure"
	}

	return c.JSON(status, apiError{Code: status, Message: message})
}
