package ports

import (
	"context"

	"backoffice/internal/core/domain/model/shipper"
)

// ShipperRepository defines the persistence contract for shipper profiles.
type ShipperRepository interface {
	// Add persists a new shipper and assigns its auto-increment id.
	// Returns errs.DuplicateShipperError when user_id or phone is already
	// registered.
	Add(ctx context.Context, aggregate *shipper.Shipper) error

	// GetByUserID resolves a system user to their shipper profile.
	// Returns errs.ObjectNotFoundError when the user has no profile; this is
	// how every caller proves "I am a shipper".
	GetByUserID(ctx context.Context, userID int64) (*shipper.Shipper, error)

	// GetByID retrieves a shipper profile by its id.
	GetByID(ctx context.Context, id int64) (*shipper.Shipper, error)
}

// UserRepository exposes the minimum the workflow needs from the system
// user store: existence checks for shipper creation and credential lookup
// for the login adapter.
type UserRepository interface {
	// Exists reports whether an active system user with the id exists.
	Exists(ctx context.Context, userID int64) (bool, error)

	// GetCredentials returns the id, bcrypt hash, and role for a username.
	// Returns errs.ObjectNotFoundError for unknown or inactive users.
	GetCredentials(ctx context.Context, username string) (UserCredentials, error)
}

// UserCredentials is the read model consumed by the login adapter.
type UserCredentials struct {
	UserID         int64
	Username       string
	HashedPassword string
	Role           string
}
