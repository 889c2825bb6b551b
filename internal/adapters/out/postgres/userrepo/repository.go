package userrepo

import (
	"context"
	"errors"

	"backoffice/internal/core/ports"
	"backoffice/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormUserRepository implements UserRepository using GORM.
// User accounts are provisioned out of band; this repository only reads.
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GORM user repository.
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Exists reports whether an active user with the id exists.
func (r *GormUserRepository) Exists(ctx context.Context, userID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&UserDTO{}).
		Where("id = ? AND is_active", userID).
		Count(&count).Error
	if err != nil {
		return false, errs.NewStoreFailureError("count users", err)
	}

	return count > 0, nil
}

// GetCredentials returns the stored credentials for an active username.
func (r *GormUserRepository) GetCredentials(ctx context.Context, username string) (ports.UserCredentials, error) {
	var dto UserDTO
	err := r.db.WithContext(ctx).First(&dto, "username = ? AND is_active", username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.UserCredentials{}, errs.NewObjectNotFoundError("username", username)
		}
		return ports.UserCredentials{}, errs.NewStoreFailureError("load credentials", err)
	}

	return ports.UserCredentials{
		UserID:         dto.ID,
		Username:       dto.Username,
		HashedPassword: dto.HashedPassword,
		Role:           dto.Role,
	}, nil
}
