package commands

import (
	"errors"

	"sendit/internal/core/domain/model/kernel"
	"sendit/internal/core/domain/model/order"
	"sendit/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand represents a dispatcher request to move an order
// to a new status, optionally reporting the parcel's current position.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	newStatus       order.Status
	currentLocation *kernel.Location

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to update an order's status.
// currentLocation may be nil when the caller has no position to report.
func NewUpdateOrderStatusCommand(
	orderID kernel.UUID,
	newStatus order.Status,
	currentLocation *kernel.Location,
) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setNewStatus(newStatus),
		cmd.setCurrentLocation(currentLocation),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// NewStatus returns the target status.
func (c UpdateOrderStatusCommand) NewStatus() order.Status {
	return c.newStatus
}

// CurrentLocation returns the reported position, or nil when absent.
func (c UpdateOrderStatusCommand) CurrentLocation() *kernel.Location {
	return c.currentLocation
}

func (c *UpdateOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setNewStatus(newStatus order.Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}
	c.newStatus = newStatus
	return nil
}

func (c *UpdateOrderStatusCommand) setCurrentLocation(currentLocation *kernel.Location) error {
	if currentLocation == nil {
		return nil
	}
	if err := currentLocation.Validate(); err != nil {
		return err
	}
	c.currentLocation = currentLocation
	return nil
}
