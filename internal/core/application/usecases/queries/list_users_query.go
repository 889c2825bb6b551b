package queries

import (
	"errors"

	"backoffice/internal/core/application/auth"
	"backoffice/internal/pkg/guard"
)

var ErrListUsersQueryIsNotConstructed = errors.New(
	"ListUsersQuery must be created via NewListUsersQuery constructor",
)

// ListUsersQuery lists system user accounts together with their shipper
// profile link, for the account administration screen.
type ListUsersQuery struct {
	role string

	guard guard.ConstructorGuard
}

// NewListUsersQuery creates a query to list user accounts. An empty role
// lists all roles.
func NewListUsersQuery(role string) (ListUsersQuery, error) {
	if role != "" {
		if err := auth.Role(role).Validate(); err != nil {
			return ListUsersQuery{}, err
		}
	}

	return ListUsersQuery{
		role:  role,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListUsersQuery) Validate() error {
	return q.guard.Validate(ErrListUsersQueryIsNotConstructed)
}

// Role returns the role filter; empty means all.
func (q ListUsersQuery) Role() string {
	return q.role
}

// UserRow is the account read model. ShipperID is zero when the account
// has no shipper profile.
type UserRow struct {
	ID        int64
	Username  string
	Role      string
	IsActive  bool
	ShipperID int64
}
