// Package billrepo provides data transfer objects and mapping functions for
// bill persistence. Implements the repository pattern for the bill
// aggregate, converting between domain entities and database rows.
package billrepo

import (
	"time"

	"backoffice/internal/core/domain/model/bill"
	"backoffice/internal/core/domain/model/kernel"
)

// BillDTO represents the database structure for persisting bill aggregates.
// The bill code is the natural primary key; org and group codes are
// denormalized for search.
type BillDTO struct {
	BillCode     string `gorm:"primaryKey;size:13"`
	OrgCode      string `gorm:"size:8;index"`
	GroupCode    string `gorm:"size:6;index"`
	CustName     string
	CustPhone    string
	CustAddress  string
	Amount       int64
	IsTransfer   bool
	ShipperID    int64 `gorm:"index"`
	ShipperName  string
	BusinessDate int `gorm:"index"`
	Status       int
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

// TableName specifies the database table name for bill entities.
func (BillDTO) TableName() string {
	return "bills"
}

func fromDomain(aggregate *bill.Bill) BillDTO {
	return BillDTO{
		BillCode:     aggregate.Code().String(),
		OrgCode:      aggregate.OrgCode(),
		GroupCode:    aggregate.GroupCode().String(),
		CustName:     aggregate.CustName(),
		CustPhone:    aggregate.CustPhone(),
		CustAddress:  aggregate.CustAddress(),
		Amount:       aggregate.Amount(),
		IsTransfer:   aggregate.IsTransfer(),
		ShipperID:    aggregate.ShipperID(),
		ShipperName:  aggregate.ShipperName(),
		BusinessDate: aggregate.BusinessDate().Int(),
		Status:       int(aggregate.Status()),
	}
}

func toDomain(dto BillDTO) (*bill.Bill, error) {
	code, err := kernel.NewBillCode(dto.BillCode)
	if err != nil {
		return nil, err
	}

	groupCode, err := kernel.GroupCodeFromString(dto.GroupCode)
	if err != nil {
		return nil, err
	}

	businessDate, err := kernel.NewBusinessDate(dto.BusinessDate)
	if err != nil {
		return nil, err
	}

	return bill.RestoreBill(
		code,
		dto.CustName,
		dto.CustPhone,
		dto.CustAddress,
		dto.Amount,
		dto.IsTransfer,
		dto.ShipperID,
		dto.ShipperName,
		groupCode,
		businessDate,
		bill.Status(dto.Status),
	)
}
