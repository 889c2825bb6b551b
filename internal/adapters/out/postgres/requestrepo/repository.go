package requestrepo

import (
	"context"
	"errors"
	"strconv"

	"backoffice/internal/adapters/out/postgres/pgerrors"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/request"
	"backoffice/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRequestRepository implements RequestRepository using GORM.
type GormRequestRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormRequestRepository creates a new GORM request repository.
func NewGormRequestRepository(db *gorm.DB, tracker aggregateTracker) *GormRequestRepository {
	return &GormRequestRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new pending request and assigns its generated id.
// Hitting the partial unique index means a concurrent submission won;
// the loser gets a duplicate request error.
func (r *GormRequestRepository) Add(ctx context.Context, aggregate *request.Request) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if _, _, ok := pgerrors.UniqueViolation(err); ok {
			return errs.NewDuplicateRequestErrorWithCause(dto.BillCode, dto.Type, err)
		}
		return errs.NewStoreFailureError("create request", err)
	}

	if err := aggregate.AssignID(dto.ID); err != nil {
		return err
	}

	r.tracker.TrackAggregate(strconv.FormatInt(dto.ID, 10), aggregate)
	return nil
}

// GetPending retrieves a request by id only while it is still pending.
func (r *GormRequestRepository) GetPending(ctx context.Context, id int64) (*request.Request, error) {
	var dto RequestDTO
	err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND status = ?", id, request.StatusCreate.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("requestId", id)
		}
		return nil, errs.NewStoreFailureError("load pending request", err)
	}

	return toDomain(dto)
}

// HasBlocking reports whether a prior request blocks a new submission of
// the given type for the same requester and bill.
func (r *GormRequestRepository) HasBlocking(
	ctx context.Context,
	requesterID int64,
	code kernel.BillCode,
	t request.Type,
) (bool, error) {
	blocking := t.BlockingStatuses()
	statuses := make([]string, 0, len(blocking))
	for _, status := range blocking {
		statuses = append(statuses, status.String())
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&RequestDTO{}).
		Where("requester_id = ? AND bill_code = ? AND type = ? AND status IN ?",
			requesterID, code.String(), t.String(), statuses).
		Count(&count).Error
	if err != nil {
		return false, errs.NewStoreFailureError("count blocking requests", err)
	}

	return count > 0, nil
}

// MarkResolved persists the terminal state of a resolved request. The
// update is conditional on the stored row still being pending, so of two
// concurrent resolvers exactly one sees the row.
func (r *GormRequestRepository) MarkResolved(ctx context.Context, aggregate *request.Request) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&RequestDTO{}).
		Where("id = ? AND status = ?", dto.ID, request.StatusCreate.String()).
		Updates(map[string]any{
			"status":      dto.Status,
			"approver_id": dto.ApproverID,
			"reason":      dto.Reason,
			"approved_at": dto.ApprovedAt,
		})
	if result.Error != nil {
		return errs.NewStoreFailureError("resolve request", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("requestId", dto.ID)
	}

	r.tracker.TrackAggregate(strconv.FormatInt(dto.ID, 10), aggregate)
	return nil
}
