// Package shipperrepo provides data transfer objects and mapping functions
// for shipper profile persistence.
package shipperrepo

import (
	"time"

	"backoffice/internal/core/domain/model/shipper"
)

// ShipperDTO represents the database structure for persisting shipper
// profiles. The user link, the username and the phone number are unique.
type ShipperDTO struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	UserID      int64  `gorm:"uniqueIndex"`
	Username    string `gorm:"size:64;uniqueIndex"`
	FullName    string
	Phone       string `gorm:"size:32;uniqueIndex"`
	ShipperType string `gorm:"size:16"`
	IsActive    bool
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

// TableName specifies the database table name for shipper entities.
func (ShipperDTO) TableName() string {
	return "shippers"
}

func fromDomain(aggregate *shipper.Shipper) ShipperDTO {
	return ShipperDTO{
		ID:          aggregate.ID(),
		UserID:      aggregate.UserID(),
		Username:    aggregate.Username(),
		FullName:    aggregate.FullName(),
		Phone:       aggregate.Phone(),
		ShipperType: aggregate.Type().String(),
		IsActive:    aggregate.IsActive(),
	}
}

func toDomain(dto ShipperDTO) (*shipper.Shipper, error) {
	return shipper.RestoreShipper(
		dto.ID,
		dto.UserID,
		dto.Username,
		dto.FullName,
		dto.Phone,
		shipper.Type(dto.ShipperType),
		dto.IsActive,
	)
}
