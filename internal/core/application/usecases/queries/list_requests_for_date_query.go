package queries

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/guard"
)

var ErrListRequestsForDateQueryIsNotConstructed = errors.New(
	"ListRequestsForDateQuery must be created via NewListRequestsForDateQuery constructor",
)

// ListRequestsForDateQuery lists every change request submitted on one
// business day, for the back-office review screen.
type ListRequestsForDateQuery struct { //nolint:recvcheck //using for validation
	businessDate int

	guard guard.ConstructorGuard
}

// NewListRequestsForDateQuery creates a daily request listing query.
func NewListRequestsForDateQuery(businessDate int) (ListRequestsForDateQuery, error) {
	if _, err := kernel.NewBusinessDate(businessDate); err != nil {
		return ListRequestsForDateQuery{}, err
	}

	return ListRequestsForDateQuery{
		businessDate: businessDate,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListRequestsForDateQuery) Validate() error {
	return q.guard.Validate(ErrListRequestsForDateQueryIsNotConstructed)
}

// BusinessDate returns the business day to list.
func (q ListRequestsForDateQuery) BusinessDate() int {
	return q.businessDate
}
