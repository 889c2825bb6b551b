package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListRequestsForDateQueryHandler lists all requests of one business day,
// pending first so reviewers see actionable work at the top.
type ListRequestsForDateQueryHandler struct {
	db *gorm.DB
}

// NewListRequestsForDateQueryHandler creates a handler for daily request listings.
func NewListRequestsForDateQueryHandler(db *gorm.DB) ListRequestsForDateQueryHandler {
	return ListRequestsForDateQueryHandler{db: db}
}

// Handle executes the daily listing.
func (h ListRequestsForDateQueryHandler) Handle(ctx context.Context, query ListRequestsForDateQuery) ([]RequestRow, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			r.id,
			r.requester_id,
			COALESCE(s.full_name, ''),
			r.bill_code,
			r.type,
			r.new_amount,
			r.content,
			r.status,
			r.approver_id,
			r.reason,
			r.approved_at,
			r.business_date
		FROM requests r
		LEFT JOIN shippers s ON s.user_id = r.requester_id
		WHERE r.business_date = ?
		ORDER BY (r.status = 'CREATE') DESC, r.id
	`, query.BusinessDate()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make([]RequestRow, 0)
	for rows.Next() {
		row, scanErr := scanRequestRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		results = append(results, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
