package commands

import (
	"errors"

	"sendit/internal/core/domain/model/kernel"
	"sendit/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to create a delivery order for an
// existing parcel between a pickup and a destination location.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	userID      kernel.UUID
	parcelID    kernel.UUID
	pickup      kernel.Location
	destination kernel.Location

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to create a delivery order.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	userID kernel.UUID,
	parcelID kernel.UUID,
	pickup kernel.Location,
	destination kernel.Location,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setUserID(userID),
		cmd.setParcelID(parcelID),
		cmd.setPickup(pickup),
		cmd.setDestination(destination),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// UserID returns the identifier of the ordering user.
func (c CreateOrderCommand) UserID() kernel.UUID {
	return c.userID
}

// ParcelID returns the identifier of the parcel to ship.
func (c CreateOrderCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// Pickup returns the pickup location.
func (c CreateOrderCommand) Pickup() kernel.Location {
	return c.pickup
}

// Destination returns the destination location.
func (c CreateOrderCommand) Destination() kernel.Location {
	return c.destination
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *CreateOrderCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}
	c.parcelID = parcelID
	return nil
}

func (c *CreateOrderCommand) setPickup(pickup kernel.Location) error {
	if err := pickup.Validate(); err != nil {
		return err
	}
	c.pickup = pickup
	return nil
}

func (c *CreateOrderCommand) setDestination(destination kernel.Location) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	c.destination = destination
	return nil
}
