// Package userrepo exposes the system user store to the workflow: existence
// checks for shipper registration and credential lookup for login.
package userrepo

import "time"

// UserDTO represents the database structure for system user accounts.
type UserDTO struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	Username       string `gorm:"size:64;uniqueIndex"`
	HashedPassword string
	Role           string `gorm:"size:16"`
	IsActive       bool
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}

// TableName specifies the database table name for user accounts.
func (UserDTO) TableName() string {
	return "users"
}
