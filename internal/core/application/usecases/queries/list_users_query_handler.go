package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListUsersQueryHandler lists user accounts with their shipper link.
type ListUsersQueryHandler struct {
	db *gorm.DB
}

// NewListUsersQueryHandler creates a handler for account listings.
func NewListUsersQueryHandler(db *gorm.DB) ListUsersQueryHandler {
	return ListUsersQueryHandler{db: db}
}

// Handle executes the account listing ordered by username.
func (h ListUsersQueryHandler) Handle(ctx context.Context, query ListUsersQuery) ([]UserRow, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := h.db.WithContext(ctx).Table("users u").
		Select("u.id, u.username, u.role, u.is_active, COALESCE(s.id, 0)").
		Joins("LEFT JOIN shippers s ON s.user_id = u.id")
	if query.Role() != "" {
		stmt = stmt.Where("u.role = ?", query.Role())
	}

	rows, err := stmt.Order("u.username").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make([]UserRow, 0)
	for rows.Next() {
		var row UserRow
		if err = rows.Scan(&row.ID, &row.Username, &row.Role, &row.IsActive, &row.ShipperID); err != nil {
			return nil, err
		}
		results = append(results, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
