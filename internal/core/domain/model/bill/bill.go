package bill

import (
	"errors"
	"fmt"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

var (
	// ErrBillIsNotConstructed is returned when a Bill instance was not created
	// through NewBill or RestoreBill. This ensures all bills are properly validated.
	ErrBillIsNotConstructed = errors.New("Bill must be created via NewBill or RestoreBill")
)

// Bill represents a COD/parcel delivery record to be collected and
// reconciled. It is the aggregate root guarding every mutation of a bill row.
//
// Bill follows these invariants:
//   - The bill code is externally supplied, immutable, and unique system-wide
//   - The COD amount is a positive integer in currency minor units
//   - The assigned shipper is identified by a positive shipper id
//   - Once the status leaves Open, shipper-initiated mutations are refused;
//     only manager-approved operations may still apply
//
// Shipper self-service mutations (the transfer toggle) check both ownership
// and the open status. Manager operations (bill exchange, accepted change
// requests) bypass those guards deliberately.
type Bill struct {
	// code is the immutable external identifier
	code kernel.BillCode

	// orgCode is the derived originating code (first 8 characters of code)
	orgCode string

	// groupCode correlates all bills created in the same intake batch
	groupCode kernel.GroupCode

	custName    string
	custPhone   string
	custAddress string

	// amount is the COD amount in currency minor units (always > 0)
	amount int64

	// isTransfer marks the collected amount as wired to the office
	isTransfer bool

	// shipperID assigns the bill to a shipper (always > 0)
	shipperID int64

	// shipperName is a denormalized display snapshot of the shipper
	shipperName string

	// businessDate is the operational day the bill is filed under
	businessDate kernel.BusinessDate

	// status freezes the bill once auditing has finished
	status Status

	guard guard.ConstructorGuard
}

// NewBill creates a bill at batch intake. The bill starts Open with the
// supplied assignment; the org code is derived from the bill code and the
// group code ties the bill to its intake batch.
//
// Returns a validation error when the amount is not positive, the shipper
// id is not positive, the customer name is empty, or any value object is
// invalid.
func NewBill(
	code kernel.BillCode,
	custName, custPhone, custAddress string,
	amount int64,
	isTransfer bool,
	shipperID int64,
	shipperName string,
	groupCode kernel.GroupCode,
	businessDate kernel.BusinessDate,
) (*Bill, error) {
	b := &Bill{
		custPhone:   custPhone,
		custAddress: custAddress,
		isTransfer:  isTransfer,
		status:      Open,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		b.setCode(code),
		b.setCustName(custName),
		b.setAmount(amount),
		b.setShipper(shipperID, shipperName),
		b.setGroupCode(groupCode),
		b.setBusinessDate(businessDate),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// RestoreBill reconstructs a bill from persistence, including its audit
// status. Unlike NewBill it accepts any status value.
func RestoreBill(
	code kernel.BillCode,
	custName, custPhone, custAddress string,
	amount int64,
	isTransfer bool,
	shipperID int64,
	shipperName string,
	groupCode kernel.GroupCode,
	businessDate kernel.BusinessDate,
	status Status,
) (*Bill, error) {
	b, err := NewBill(code, custName, custPhone, custAddress, amount, isTransfer,
		shipperID, shipperName, groupCode, businessDate)
	if err != nil {
		return nil, err
	}

	b.status = status
	return b, nil
}

// Validate ensures the Bill instance was properly constructed.
func (b *Bill) Validate() error {
	if b == nil {
		return ErrBillIsNotConstructed
	}
	return b.guard.Validate(ErrBillIsNotConstructed)
}

// IsEqual compares two bills by their bill codes.
func (b *Bill) IsEqual(other *Bill) bool {
	return other != nil && b.code.IsEqual(other.code)
}

// Code returns the immutable bill code.
func (b *Bill) Code() kernel.BillCode {
	return b.code
}

// OrgCode returns the derived originating bill code.
func (b *Bill) OrgCode() string {
	return b.orgCode
}

// GroupCode returns the intake batch correlation code.
func (b *Bill) GroupCode() kernel.GroupCode {
	return b.groupCode
}

// CustName returns the customer name.
func (b *Bill) CustName() string {
	return b.custName
}

// CustPhone returns the customer phone number.
func (b *Bill) CustPhone() string {
	return b.custPhone
}

// CustAddress returns the customer delivery address.
func (b *Bill) CustAddress() string {
	return b.custAddress
}

// Amount returns the COD amount in currency minor units.
func (b *Bill) Amount() int64 {
	return b.amount
}

// IsTransfer reports whether the collection has been marked as wired.
func (b *Bill) IsTransfer() bool {
	return b.isTransfer
}

// ShipperID returns the assigned shipper's id.
func (b *Bill) ShipperID() int64 {
	return b.shipperID
}

// ShipperName returns the denormalized shipper display name.
func (b *Bill) ShipperName() string {
	return b.shipperName
}

// BusinessDate returns the operational day the bill is filed under.
func (b *Bill) BusinessDate() kernel.BusinessDate {
	return b.businessDate
}

// Status returns the current audit status.
func (b *Bill) Status() Status {
	return b.status
}

// OwnedBy reports whether the bill is assigned to the given shipper.
func (b *Bill) OwnedBy(shipperID int64) bool {
	return b.shipperID == shipperID
}

// MarkTransfer is the shipper self-service transfer toggle.
//
// It enforces the two guards that distinguish self-service from manager
// operations:
//   - the caller must be the assigned shipper, otherwise Forbidden
//   - the bill must still be Open, otherwise Locked
func (b *Bill) MarkTransfer(callerShipperID int64, value bool) error {
	if !b.OwnedBy(callerShipperID) {
		return errs.NewForbiddenError(
			fmt.Sprintf("bill %s is not assigned to shipper %d", b.code, callerShipperID))
	}
	if err := b.status.EnsureOpen(b.code.String()); err != nil {
		return err
	}

	b.isTransfer = value
	return nil
}

// Exchange is the manager bill-exchange operation: a full update of the
// assignment, amount, and transfer flag. It deliberately does not check the
// audit status; the manager override is unconditional.
func (b *Bill) Exchange(shipperID int64, shipperName string, amount int64, isTransfer bool) error {
	if err := errors.Join(
		b.setAmount(amount),
		b.setShipper(shipperID, shipperName),
	); err != nil {
		return err
	}

	b.isTransfer = isTransfer
	return nil
}

// ApplyRemoveTransfer clears the transfer flag as the effect of an accepted
// REMOVE_TRANSFER request. Approval already happened; no guards re-apply.
func (b *Bill) ApplyRemoveTransfer() {
	b.isTransfer = false
}

// ApplyChangeCod sets the COD amount as the effect of an accepted
// CHANGE_COD request. The new amount must still be positive.
func (b *Bill) ApplyChangeCod(newAmount int64) error {
	return b.setAmount(newAmount)
}

func (b *Bill) setCode(code kernel.BillCode) error {
	if err := code.Validate(); err != nil {
		return err
	}
	b.code = code
	b.orgCode = code.OrgCode()
	return nil
}

func (b *Bill) setCustName(custName string) error {
	if custName == "" {
		return errs.NewValueIsRequiredError("custName")
	}
	b.custName = custName
	return nil
}

func (b *Bill) setAmount(amount int64) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%d is not greater than 0", amount))
	}
	b.amount = amount
	return nil
}

func (b *Bill) setShipper(shipperID int64, shipperName string) error {
	if shipperID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("shipperID",
			fmt.Errorf("%d is not greater than 0", shipperID))
	}
	b.shipperID = shipperID
	b.shipperName = shipperName
	return nil
}

func (b *Bill) setGroupCode(groupCode kernel.GroupCode) error {
	if err := groupCode.Validate(); err != nil {
		return err
	}
	b.groupCode = groupCode
	return nil
}

func (b *Bill) setBusinessDate(businessDate kernel.BusinessDate) error {
	if err := businessDate.Validate(); err != nil {
		return err
	}
	b.businessDate = businessDate
	return nil
}
