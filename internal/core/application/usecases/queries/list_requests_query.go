package queries

import (
	"errors"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/request"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

var ErrListRequestsQueryIsNotConstructed = errors.New(
	"ListRequestsQuery must be created via NewListRequestsQuery constructor",
)

// ListRequestsQuery lists change requests, newest first. A requester
// filter of zero lists everyone's requests; shipper callers are pinned
// to their own user id at the transport layer.
type ListRequestsQuery struct { //nolint:recvcheck //using for validation
	requesterUserID int64
	status          string
	dateFrom        int
	dateTo          int
	limit           int

	guard guard.ConstructorGuard
}

// NewListRequestsQuery creates a request listing query. The business
// date range is mandatory. An empty status lists all statuses; a zero
// limit defaults to 100.
func NewListRequestsQuery(
	requesterUserID int64,
	status string,
	dateFrom, dateTo, limit int,
) (ListRequestsQuery, error) {
	query := ListRequestsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setRequesterUserID(requesterUserID),
		query.setStatus(status),
		query.setDateRange(dateFrom, dateTo),
		query.setLimit(limit),
	); err != nil {
		return ListRequestsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q ListRequestsQuery) Validate() error {
	return q.guard.Validate(ErrListRequestsQueryIsNotConstructed)
}

// RequesterUserID returns the requester filter; zero means everyone.
func (q ListRequestsQuery) RequesterUserID() int64 {
	return q.requesterUserID
}

// Status returns the status filter; empty means all.
func (q ListRequestsQuery) Status() string {
	return q.status
}

// DateFrom returns the inclusive lower business date bound.
func (q ListRequestsQuery) DateFrom() int {
	return q.dateFrom
}

// DateTo returns the inclusive upper business date bound.
func (q ListRequestsQuery) DateTo() int {
	return q.dateTo
}

// Limit returns the maximum number of rows to return.
func (q ListRequestsQuery) Limit() int {
	return q.limit
}

func (q *ListRequestsQuery) setRequesterUserID(requesterUserID int64) error {
	if requesterUserID < 0 {
		return errs.NewValueIsInvalidError("requesterUserId")
	}

	q.requesterUserID = requesterUserID
	return nil
}

func (q *ListRequestsQuery) setStatus(status string) error {
	if status != "" {
		if err := request.Status(status).Validate(); err != nil {
			return err
		}
	}

	q.status = status
	return nil
}

func (q *ListRequestsQuery) setDateRange(dateFrom, dateTo int) error {
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

func (q *ListRequestsQuery) setLimit(limit int) error {
	if limit < 0 || limit > maxSearchLimit {
		return errs.NewValueIsInvalidError("limit")
	}
	if limit == 0 {
		limit = defaultSearchLimit
	}

	q.limit = limit
	return nil
}

// RequestRow is the change request read model.
type RequestRow struct {
	ID            int64
	RequesterID   int64
	RequesterName string
	BillCode      string
	Type          string
	NewAmount     int64
	Content       string
	Status        string
	ApproverID    int64
	Reason        string
	ApprovedAt    *time.Time
	BusinessDate  int
}
