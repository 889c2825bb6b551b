package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListShipperBillsQueryHandler retrieves a shipper's bills over a date
// range by joining the shipper profile on the caller's user id.
type ListShipperBillsQueryHandler struct {
	db *gorm.DB
}

// NewListShipperBillsQueryHandler creates a handler for shipper bill listings.
func NewListShipperBillsQueryHandler(db *gorm.DB) ListShipperBillsQueryHandler {
	return ListShipperBillsQueryHandler{db: db}
}

// Handle executes the listing. A caller without an active shipper profile
// simply gets an empty result.
func (h ListShipperBillsQueryHandler) Handle(ctx context.Context, query ListShipperBillsQuery) ([]BillRow, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			b.bill_code,
			b.org_code,
			b.group_code,
			b.cust_name,
			b.cust_phone,
			b.cust_address,
			b.amount,
			b.is_transfer,
			b.shipper_id,
			b.shipper_name,
			b.business_date,
			b.status
		FROM bills b
		JOIN shippers s ON s.id = b.shipper_id
		WHERE s.user_id = ? AND s.is_active
			AND b.business_date >= ? AND b.business_date <= ?
		ORDER BY b.business_date, b.bill_code
	`, query.UserID(), query.DateFrom(), query.DateTo()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make([]BillRow, 0)
	for rows.Next() {
		row, scanErr := scanBillRow(rows)
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
