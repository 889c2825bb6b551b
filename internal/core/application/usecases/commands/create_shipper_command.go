package commands

import (
	"errors"

	"backoffice/internal/core/domain/model/shipper"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

var ErrCreateShipperCommandIsNotConstructed = errors.New(
	"CreateShipperCommand must be created via NewCreateShipperCommand constructor",
)

// CreateShipperCommand represents registering a shipper profile for an
// existing system user.
type CreateShipperCommand struct { //nolint:recvcheck //using for validation
	userID      int64
	username    string
	fullName    string
	phone       string
	shipperType shipper.Type

	guard guard.ConstructorGuard
}

// NewCreateShipperCommand creates a command to register a shipper profile.
func NewCreateShipperCommand(
	userID int64,
	username, fullName, phone string,
	shipperType shipper.Type,
) (CreateShipperCommand, error) {
	command := CreateShipperCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setUserID(userID),
		command.setUsername(username),
		command.setFullName(fullName),
		command.setPhone(phone),
		command.setShipperType(shipperType),
	); err != nil {
		return CreateShipperCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateShipperCommandIsNotConstructed if validation fails.
func (c CreateShipperCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipperCommandIsNotConstructed)
}

// UserID returns the system user id to link the profile to.
func (c CreateShipperCommand) UserID() int64 {
	return c.userID
}

// Username returns the login name of the shipper.
func (c CreateShipperCommand) Username() string {
	return c.username
}

// FullName returns the display name of the shipper.
func (c CreateShipperCommand) FullName() string {
	return c.fullName
}

// Phone returns the contact phone of the shipper.
func (c CreateShipperCommand) Phone() string {
	return c.phone
}

// ShipperType returns the employment type of the shipper.
func (c CreateShipperCommand) ShipperType() shipper.Type {
	return c.shipperType
}

func (c *CreateShipperCommand) setUserID(userID int64) error {
	if userID <= 0 {
		return errs.NewValueIsInvalidError("userId")
	}

	c.userID = userID
	return nil
}

func (c *CreateShipperCommand) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}

	c.username = username
	return nil
}

func (c *CreateShipperCommand) setFullName(fullName string) error {
	if fullName == "" {
		return errs.NewValueIsRequiredError("fullName")
	}

	c.fullName = fullName
	return nil
}

func (c *CreateShipperCommand) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}

	c.phone = phone
	return nil
}

func (c *CreateShipperCommand) setShipperType(shipperType shipper.Type) error {
	if err := shipperType.Validate(); err != nil {
		return err
	}

	c.shipperType = shipperType
	return nil
}
