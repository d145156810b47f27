package commands

import (
	"errors"

	"sendit/internal/pkg/guard"
)

var ErrNotifyOverdueOrdersCommandIsNotConstructed = errors.New(
	"NotifyOverdueOrdersCommand must be created via NewNotifyOverdueOrdersCommand constructor",
)

// NotifyOverdueOrdersCommand triggers a sweep over orders whose estimated
// delivery has passed without a terminal status. This is a parameterless
// command issued by the background scheduler.
type NotifyOverdueOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewNotifyOverdueOrdersCommand creates a command to sweep overdue orders.
func NewNotifyOverdueOrdersCommand() NotifyOverdueOrdersCommand {
	return NotifyOverdueOrdersCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c NotifyOverdueOrdersCommand) Validate() error {
	return c.guard.Validate(ErrNotifyOverdueOrdersCommandIsNotConstructed)
}
