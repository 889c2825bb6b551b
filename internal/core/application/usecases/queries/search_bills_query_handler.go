package queries

import (
	"context"

	"backoffice/internal/core/domain/model/bill"

	"gorm.io/gorm"
)

// SearchBillsQueryHandler executes the back-office bill search against the
// read model. Uses direct SQL for read performance in the CQRS pattern.
type SearchBillsQueryHandler struct {
	db *gorm.DB
}

// NewSearchBillsQueryHandler creates a handler for bill search queries.
func NewSearchBillsQueryHandler(db *gorm.DB) SearchBillsQueryHandler {
	return SearchBillsQueryHandler{db: db}
}

// Handle executes the search and returns matching bill rows ordered by
// business date and code.
func (h SearchBillsQueryHandler) Handle(ctx context.Context, query SearchBillsQuery) ([]BillRow, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := h.db.WithContext(ctx).Table("bills").
		Where("business_date >= ?", query.DateFrom()).
		Where("business_date <= ?", query.DateTo())
	if query.CodePrefix() != "" {
		stmt = stmt.Where("bill_code ILIKE ?", query.CodePrefix()+"%")
	}
	if query.CustName() != "" {
		stmt = stmt.Where("cust_name ILIKE ?", "%"+query.CustName()+"%")
	}
	if query.CustPhone() != "" {
		stmt = stmt.Where("cust_phone = ?", query.CustPhone())
	}
	if query.ShipperID() != 0 {
		stmt = stmt.Where("shipper_id = ?", query.ShipperID())
	}

	rows, err := stmt.
		Select("bill_code, org_code, group_code, cust_name, cust_phone, cust_address, amount, is_transfer, shipper_id, shipper_name, business_date, status").
		Order("business_date DESC, bill_code").
		Limit(query.Limit()).
		Rows()
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

// rowScanner matches *sql.Rows for single-row scans.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanBillRow(rows rowScanner) (BillRow, error) {
	var row BillRow
	var status int

	err := rows.Scan(
		&row.BillCode,
		&row.OrgCode,
		&row.GroupCode,
		&row.CustName,
		&row.CustPhone,
		&row.CustAddress,
		&row.Amount,
		&row.IsTransfer,
		&row.ShipperID,
		&row.ShipperName,
		&row.BusinessDate,
		&status,
	)
	if err != nil {
		return BillRow{}, err
	}

	row.Status = bill.Status(status).String()
	return row, nil
}
