package queries

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

var ErrListShipperBillsQueryIsNotConstructed = errors.New(
	"ListShipperBillsQuery must be created via NewListShipperBillsQuery constructor",
)

// ListShipperBillsQuery retrieves the bills assigned to the calling
// shipper within an inclusive business date range. The caller is
// identified by system user id; the join to the shipper profile happens
// in the read model.
type ListShipperBillsQuery struct { //nolint:recvcheck //using for validation
	userID   int64
	dateFrom int
	dateTo   int

	guard guard.ConstructorGuard
}

// NewListShipperBillsQuery creates a query for a shipper's bills over a
// date range. Callers wanting a single day pass the same date twice.
func NewListShipperBillsQuery(userID int64, dateFrom, dateTo int) (ListShipperBillsQuery, error) {
	query := ListShipperBillsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setUserID(userID),
		query.setDateRange(dateFrom, dateTo),
	); err != nil {
		return ListShipperBillsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q ListShipperBillsQuery) Validate() error {
	return q.guard.Validate(ErrListShipperBillsQueryIsNotConstructed)
}

// UserID returns the system user id of the calling shipper.
func (q ListShipperBillsQuery) UserID() int64 {
	return q.userID
}

// DateFrom returns the inclusive lower business date bound.
func (q ListShipperBillsQuery) DateFrom() int {
	return q.dateFrom
}

// DateTo returns the inclusive upper business date bound.
func (q ListShipperBillsQuery) DateTo() int {
	return q.dateTo
}

func (q *ListShipperBillsQuery) setUserID(userID int64) error {
	if userID <= 0 {
		return errs.NewValueIsInvalidError("userId")
	}

	q.userID = userID
	return nil
}

func (q *ListShipperBillsQuery) setDateRange(dateFrom, dateTo int) error {
	if dateFrom == 0 {
		return errs.NewValueIsRequiredError("fromDate")
	}
	if dateTo == 0 {
		return errs.NewValueIsRequiredError("toDate")
	}
	if _, err := kernel.NewBusinessDate(dateFrom); err != nil {
		return err
	}
	if _, err := kernel.NewBusinessDate(dateTo); err != nil {
		return err
	}
	if dateFrom > dateTo {
		return errs.NewValueIsInvalidError("dateRange")
	}

	q.dateFrom = dateFrom
	q.dateTo = dateTo
	return nil
}
