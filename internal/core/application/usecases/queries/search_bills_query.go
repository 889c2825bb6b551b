// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

var ErrSearchBillsQueryIsNotConstructed = errors.New(
	"SearchBillsQuery must be created via NewSearchBillsQuery constructor",
)

const (
	defaultSearchLimit = 100
	maxSearchLimit     = 500
)

// SearchBillsQuery is the back-office bill search. The business date range
// is mandatory; the remaining filters are optional and zero values mean
// "any". Results are capped to keep the read path bounded.
//
// Example:
//
//	query, err := NewSearchBillsQuery("BK2024", "", "", 0, 20240101, 20240131, 0)
//	if err != nil {
//	    return err
//	}
//	rows, err := NewSearchBillsQueryHandler(db).Handle(ctx, query)
type SearchBillsQuery struct { //nolint:recvcheck //using for validation
	codePrefix string
	custName   string
	custPhone  string
	shipperID  int64
	dateFrom   int
	dateTo     int
	limit      int

	guard guard.ConstructorGuard
}

// NewSearchBillsQuery creates a bill search query.
// A zero limit defaults to 100; limits above 500 are rejected.
func NewSearchBillsQuery(
	codePrefix, custName, custPhone string,
	shipperID int64,
	dateFrom, dateTo, limit int,
) (SearchBillsQuery, error) {
	query := SearchBillsQuery{
		codePrefix: codePrefix,
		custName:   custName,
		custPhone:  custPhone,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setShipperID(shipperID),
		query.setDateRange(dateFrom, dateTo),
		query.setLimit(limit),
	); err != nil {
		return SearchBillsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q SearchBillsQuery) Validate() error {
	return q.guard.Validate(ErrSearchBillsQueryIsNotConstructed)
}

// CodePrefix returns the bill code prefix filter; empty means any.
func (q SearchBillsQuery) CodePrefix() string {
	return q.codePrefix
}

// CustName returns the customer name filter; empty means any.
func (q SearchBillsQuery) CustName() string {
	return q.custName
}

// CustPhone returns the exact customer phone filter; empty means any.
func (q SearchBillsQuery) CustPhone() string {
	return q.custPhone
}

// ShipperID returns the shipper filter; zero means any.
func (q SearchBillsQuery) ShipperID() int64 {
	return q.shipperID
}

// DateFrom returns the inclusive lower business date bound.
func (q SearchBillsQuery) DateFrom() int {
	return q.dateFrom
}

// DateTo returns the inclusive upper business date bound.
func (q SearchBillsQuery) DateTo() int {
	return q.dateTo
}

// Limit returns the maximum number of rows to return.
func (q SearchBillsQuery) Limit() int {
	return q.limit
}

func (q *SearchBillsQuery) setShipperID(shipperID int64) error {
	if shipperID < 0 {
		return errs.NewValueIsInvalidError("shipperId")
	}

	q.shipperID = shipperID
	return nil
}

func (q *SearchBillsQuery) setDateRange(dateFrom, dateTo int) error {
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

func (q *SearchBillsQuery) setLimit(limit int) error {
	if limit < 0 || limit > maxSearchLimit {
		return errs.NewValueIsInvalidError("limit")
	}
	if limit == 0 {
		limit = defaultSearchLimit
	}

	q.limit = limit
	return nil
}

// BillRow is the bill read model shared by the bill listing queries.
type BillRow struct {
	BillCode     string
	OrgCode      string
	GroupCode    string
	CustName     string
	CustPhone    string
	CustAddress  string
	Amount       int64
	IsTransfer   bool
	ShipperID    int64
	ShipperName  string
	BusinessDate int
	Status       string
}
