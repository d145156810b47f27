package commands

import (
	"errors"

	"sendit/internal/core/domain/model/kernel"
	"sendit/internal/pkg/guard"
)

var ErrChangeDestinationCommandIsNotConstructed = errors.New(
	"ChangeDestinationCommand must be created via NewChangeDestinationCommand constructor",
)

// ChangeDestinationCommand represents a request to re-route a pending order
// to a new destination.
type ChangeDestinationCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	userID         kernel.UUID
	newDestination kernel.Location

	guard guard.ConstructorGuard
}

// NewChangeDestinationCommand creates a command to change an order's destination.
func NewChangeDestinationCommand(
	orderID kernel.UUID,
	userID kernel.UUID,
	newDestination kernel.Location,
) (ChangeDestinationCommand, error) {
	cmd := ChangeDestinationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setUserID(userID),
		cmd.setNewDestination(newDestination),
	); err != nil {
		return ChangeDestinationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeDestinationCommand) Validate() error {
	return c.guard.Validate(ErrChangeDestinationCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to re-route.
func (c ChangeDestinationCommand) OrderID() kernel.UUID {
	return c.orderID
}

// UserID returns the identifier of the acting user.
func (c ChangeDestinationCommand) UserID() kernel.UUID {
	return c.userID
}

// NewDestination returns the replacement destination.
func (c ChangeDestinationCommand) NewDestination() kernel.Location {
	return c.newDestination
}

func (c *ChangeDestinationCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ChangeDestinationCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *ChangeDestinationCommand) setNewDestination(newDestination kernel.Location) error {
	if err := newDestination.Validate(); err != nil {
		return err
	}
	c.newDestination = newDestination
	return nil
}
