package shipperrepo

import (
	"context"
	"errors"
	"strconv"

	"backoffice/internal/adapters/out/postgres/pgerrors"
	"backoffice/internal/core/domain/model/shipper"
	"backoffice/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormShipperRepository implements ShipperRepository using GORM.
type GormShipperRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormShipperRepository creates a new GORM shipper repository.
func NewGormShipperRepository(db *gorm.DB, tracker aggregateTracker) *GormShipperRepository {
	return &GormShipperRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new shipper profile and assigns its generated id.
// Unique violations on the user link or the phone number come back as
// duplicate shipper errors naming the offending column.
func (r *GormShipperRepository) Add(ctx context.Context, aggregate *shipper.Shipper) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if column, value, ok := pgerrors.UniqueViolation(err); ok {
			return errs.NewDuplicateShipperErrorWithCause(column, value, err)
		}
		return errs.NewStoreFailureError("create shipper", err)
	}

	if err := aggregate.AssignID(dto.ID); err != nil {
		return err
	}

	r.tracker.TrackAggregate(strconv.FormatInt(dto.ID, 10), aggregate)
	return nil
}

// GetByUserID resolves a system user to their shipper profile.
func (r *GormShipperRepository) GetByUserID(ctx context.Context, userID int64) (*shipper.Shipper, error) {
	var dto ShipperDTO
	if err := r.db.WithContext(ctx).First(&dto, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("userId", userID)
		}
		return nil, errs.NewStoreFailureError("load shipper by user", err)
	}

	return toDomain(dto)
}

// GetByID retrieves a shipper profile by its id.
func (r *GormShipperRepository) GetByID(ctx context.Context, id int64) (*shipper.Shipper, error) {
	var dto ShipperDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipperId", id)
		}
		return nil, errs.NewStoreFailureError("load shipper", err)
	}

	return toDomain(dto)
}
