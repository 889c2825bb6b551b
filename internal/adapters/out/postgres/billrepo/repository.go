package billrepo

import (
	"context"
	"errors"

	"backoffice/internal/adapters/out/postgres/pgerrors"
	"backoffice/internal/core/domain/model/bill"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormBillRepository implements BillRepository using GORM.
type GormBillRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormBillRepository creates a new GORM bill repository.
func NewGormBillRepository(db *gorm.DB, tracker aggregateTracker) *GormBillRepository {
	return &GormBillRepository{
		db:      db,
		tracker: tracker,
	}
}

// AddBatch saves a batch of new bills in one insert.
// A unique violation on any code fails the whole statement; the
// conflicting code is carried in the returned error.
func (r *GormBillRepository) AddBatch(ctx context.Context, bills []*bill.Bill) error {
	dtos := make([]BillDTO, 0, len(bills))
	for _, aggregate := range bills {
		if err := aggregate.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(aggregate))
	}

	if err := r.db.WithContext(ctx).Create(&dtos).Error; err != nil {
		if _, value, ok := pgerrors.UniqueViolation(err); ok {
			return errs.NewDuplicateBillCodeErrorWithCause(value, err)
		}
		return errs.NewStoreFailureError("create bills", err)
	}

	for _, aggregate := range bills {
		r.tracker.TrackAggregate(aggregate.Code().String(), aggregate)
	}
	return nil
}

// Update saves an existing bill to the database.
func (r *GormBillRepository) Update(ctx context.Context, aggregate *bill.Bill) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&BillDTO{}).
		Where("bill_code = ?", dto.BillCode).
		Select("*").
		Omit("created_at").
		Updates(&dto)
	if result.Error != nil {
		return errs.NewStoreFailureError("update bill", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("billCode", dto.BillCode)
	}

	r.tracker.TrackAggregate(aggregate.Code().String(), aggregate)
	return nil
}

// Get retrieves a bill by its code.
func (r *GormBillRepository) Get(ctx context.Context, code kernel.BillCode) (*bill.Bill, error) {
	if err := code.Validate(); err != nil {
		return nil, err
	}

	var dto BillDTO
	if err := r.db.WithContext(ctx).First(&dto, "bill_code = ?", code.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("billCode", code.String())
		}
		return nil, errs.NewStoreFailureError("load bill", err)
	}

	return toDomain(dto)
}

// Delete removes a bill row entirely.
func (r *GormBillRepository) Delete(ctx context.Context, code kernel.BillCode) error {
	if err := code.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&BillDTO{}, "bill_code = ?", code.String())
	if result.Error != nil {
		return errs.NewStoreFailureError("delete bill", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("billCode", code.String())
	}

	return nil
}
