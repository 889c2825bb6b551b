// Package requestrepo provides data transfer objects and mapping functions
// for change request persistence.
//
// The one-pending-request rule is enforced by the store itself: a partial
// unique index over (requester_id, bill_code, type) restricted to rows in
// CREATE status. Submissions racing past the application-level check hit
// the index and lose cleanly.
package requestrepo

import (
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/request"
	"backoffice/internal/pkg/errs"
)

// RequestDTO represents the database structure for persisting change
// requests. The typed payload is flattened into the type discriminator and
// the new_amount column; content is a rendered description and is never
// interpreted.
type RequestDTO struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	RequesterID  int64  `gorm:"uniqueIndex:idx_requests_pending,where:status = 'CREATE'"`
	BillCode     string `gorm:"size:13;uniqueIndex:idx_requests_pending,where:status = 'CREATE'"`
	Type         string `gorm:"size:16;uniqueIndex:idx_requests_pending,where:status = 'CREATE'"`
	NewAmount    int64
	Content      string
	Status       string `gorm:"size:8;index"`
	ApproverID   int64
	Reason       string
	ApprovedAt   *time.Time
	BusinessDate int       `gorm:"index"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

// TableName specifies the database table name for change requests.
func (RequestDTO) TableName() string {
	return "requests"
}

func fromDomain(aggregate *request.Request) RequestDTO {
	var newAmount int64
	if payload, ok := aggregate.Payload().(request.ChangeCodPayload); ok {
		newAmount = payload.NewAmount
	}

	var approvedAt *time.Time
	if at := aggregate.ApprovedAt(); !at.IsZero() {
		approvedAt = &at
	}

	return RequestDTO{
		ID:           aggregate.ID(),
		RequesterID:  aggregate.RequesterID(),
		BillCode:     aggregate.BillCode().String(),
		Type:         aggregate.Type().String(),
		NewAmount:    newAmount,
		Content:      aggregate.Content(),
		Status:       aggregate.Status().String(),
		ApproverID:   aggregate.ApproverID(),
		Reason:       aggregate.Reason(),
		ApprovedAt:   approvedAt,
		BusinessDate: aggregate.BusinessDate().Int(),
	}
}

func toDomain(dto RequestDTO) (*request.Request, error) {
	code, err := kernel.NewBillCode(dto.BillCode)
	if err != nil {
		return nil, err
	}

	businessDate, err := kernel.NewBusinessDate(dto.BusinessDate)
	if err != nil {
		return nil, err
	}

	var payload request.Payload
	switch request.Type(dto.Type) {
	case request.RemoveBill:
		payload = request.RemoveBillPayload{}
	case request.RemoveTransfer:
		payload = request.RemoveTransferPayload{}
	case request.ChangeCod:
		payload = request.ChangeCodPayload{NewAmount: dto.NewAmount}
	default:
		return nil, errs.NewInvalidRequestTypeError(dto.Type)
	}

	var approvedAt time.Time
	if dto.ApprovedAt != nil {
		approvedAt = *dto.ApprovedAt
	}

	return request.RestoreRequest(
		dto.ID,
		dto.RequesterID,
		code,
		payload,
		dto.Content,
		request.Status(dto.Status),
		dto.ApproverID,
		dto.Reason,
		approvedAt,
		businessDate,
	)
}
