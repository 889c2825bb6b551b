package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListRequestsQueryHandler lists change requests from the read model.
// The requester's display name is joined in from the shipper profile.
type ListRequestsQueryHandler struct {
	db *gorm.DB
}

// NewListRequestsQueryHandler creates a handler for request listings.
func NewListRequestsQueryHandler(db *gorm.DB) ListRequestsQueryHandler {
	return ListRequestsQueryHandler{db: db}
}

// Handle executes the listing, newest requests first.
func (h ListRequestsQueryHandler) Handle(ctx context.Context, query ListRequestsQuery) ([]RequestRow, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := h.db.WithContext(ctx).Table("requests r").
		Select("r.id, r.requester_id, COALESCE(s.full_name, ''), r.bill_code, r.type, r.new_amount, r.content, r.status, r.approver_id, r.reason, r.approved_at, r.business_date").
		Joins("LEFT JOIN shippers s ON s.user_id = r.requester_id").
		Where("r.business_date >= ?", query.DateFrom()).
		Where("r.business_date <= ?", query.DateTo())
	if query.RequesterUserID() != 0 {
		stmt = stmt.Where("r.requester_id = ?", query.RequesterUserID())
	}
	if query.Status() != "" {
		stmt = stmt.Where("r.status = ?", query.Status())
	}

	rows, err := stmt.Order("r.id DESC").Limit(query.Limit()).Rows()
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

func scanRequestRow(rows rowScanner) (RequestRow, error) {
	var row RequestRow

	err := rows.Scan(
		&row.ID,
		&row.RequesterID,
		&row.RequesterName,
		&row.BillCode,
		&row.Type,
		&row.NewAmount,
		&row.Content,
		&row.Status,
		&row.ApproverID,
		&row.Reason,
		&row.ApprovedAt,
		&row.BusinessDate,
	)
	if err != nil {
		return RequestRow{}, err
	}

	return row, nil
}
