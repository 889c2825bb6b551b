// Package shipper provides the Shipper aggregate: a delivery courier
// profile linked 1:1 to a system user. Shippers are created by managers,
// never self-registered.
package shipper

import (
	"errors"
	"fmt"

	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

var (
	// ErrShipperIsNotConstructed is returned when a Shipper instance was not
	// created through NewShipper or RestoreShipper.
	ErrShipperIsNotConstructed = errors.New("Shipper must be created via NewShipper or RestoreShipper")

	// ErrShipperIDAlreadyAssigned is returned when the persistence layer tries
	// to assign an id to a shipper that already has one.
	ErrShipperIDAlreadyAssigned = errors.New("shipper id is already assigned")
)

// Type classifies the employment relationship of a shipper.
type Type string

const (
	FullTime Type = "FULL_TIME"
	PartTime Type = "PART_TIME"
	External Type = "EXTERNAL"
)

// Validate checks the type against the known set.
func (t Type) Validate() error {
	switch t {
	case FullTime, PartTime, External:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("type",
			fmt.Errorf("%q is not a valid shipper type", string(t)))
	}
}

// String returns the wire representation.
func (t Type) String() string {
	return string(t)
}

// Shipper is the courier profile. Bills are assigned to a shipper by its
// id, and every shipper self-service operation resolves the caller's user
// id to a Shipper first.
type Shipper struct {
	// id is the auto-increment identity, zero until persisted
	id int64

	// userID links the profile to exactly one system user
	userID int64

	username string
	fullName string

	// phone is unique across shippers
	phone string

	shipperType Type
	isActive    bool

	guard guard.ConstructorGuard
}

// NewShipper creates an active shipper profile for an existing system user.
// User existence is verified by the caller against the user store.
func NewShipper(userID int64, username, fullName, phone string, shipperType Type) (*Shipper, error) {
	s := &Shipper{
		isActive: true,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setUserID(userID),
		s.setUsername(username),
		s.setFullName(fullName),
		s.setPhone(phone),
		s.setType(shipperType),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShipper reconstructs a shipper from persistence.
func RestoreShipper(id, userID int64, username, fullName, phone string, shipperType Type, isActive bool) (*Shipper, error) {
	s, err := NewShipper(userID, username, fullName, phone, shipperType)
	if err != nil {
		return nil, err
	}

	s.id = id
	s.isActive = isActive
	return s, nil
}

// Validate ensures the Shipper instance was properly constructed.
func (s *Shipper) Validate() error {
	if s == nil {
		return ErrShipperIsNotConstructed
	}
	return s.guard.Validate(ErrShipperIsNotConstructed)
}

// ID returns the persistence identity, zero until the shipper is stored.
func (s *Shipper) ID() int64 {
	return s.id
}

// AssignID records the auto-increment identity after the first insert.
func (s *Shipper) AssignID(id int64) error {
	if s.id != 0 {
		return ErrShipperIDAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("shipperID",
			fmt.Errorf("%d is not greater than 0", id))
	}

	s.id = id
	return nil
}

// UserID returns the linked system user id.
func (s *Shipper) UserID() int64 {
	return s.userID
}

// Username returns the system username snapshot.
func (s *Shipper) Username() string {
	return s.username
}

// FullName returns the display name.
func (s *Shipper) FullName() string {
	return s.fullName
}

// Phone returns the unique contact number.
func (s *Shipper) Phone() string {
	return s.phone
}

// Type returns the employment classification.
func (s *Shipper) Type() Type {
	return s.shipperType
}

// IsActive reports whether the profile may act in the system.
func (s *Shipper) IsActive() bool {
	return s.isActive
}

// Deactivate retires the profile without deleting its history.
func (s *Shipper) Deactivate() {
	s.isActive = false
}

func (s *Shipper) setUserID(userID int64) error {
	if userID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("userID",
			fmt.Errorf("%d is not greater than 0", userID))
	}
	s.userID = userID
	return nil
}

func (s *Shipper) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	s.username = username
	return nil
}

func (s *Shipper) setFullName(fullName string) error {
	if fullName == "" {
		return errs.NewValueIsRequiredError("fullName")
	}
	s.fullName = fullName
	return nil
}

func (s *Shipper) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	s.phone = phone
	return nil
}

func (s *Shipper) setType(shipperType Type) error {
	if err := shipperType.Validate(); err != nil {
		return err
	}
	s.shipperType = shipperType
	return nil
}
