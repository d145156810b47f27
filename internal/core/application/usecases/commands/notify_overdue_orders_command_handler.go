package commands

import (
	"context"
	"errors"

	"sendit/internal/core/ports"
)

// NotifyOverdueOrdersCommandHandler sweeps overdue orders and reports each
// one through the notifier. The sweep never mutates order state, so it runs
// outside a transaction.
type NotifyOverdueOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewNotifyOverdueOrdersCommandHandler creates a handler for overdue sweeps.
func NewNotifyOverdueOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
) NotifyOverdueOrdersCommandHandler {
	return NotifyOverdueOrdersCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the sweep. A failing notification does not stop the rest;
// all failures are joined into the returned error.
func (h *NotifyOverdueOrdersCommandHandler) Handle(ctx context.Context, cmd NotifyOverdueOrdersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	overdue, err := uow.OrderRepository().GetAllOverdue(ctx)
	if err != nil {
		return err
	}

	var notifyErrs []error
	for _, aggregate := range overdue {
		if err = h.notifier.NotifyOverdue(ctx, aggregate); err != nil {
			notifyErrs = append(notifyErrs, err)
		}
	}

	return errors.Join(notifyErrs...)
}
