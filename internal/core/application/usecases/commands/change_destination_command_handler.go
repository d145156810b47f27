package commands

import (
	"context"

	"sendit/internal/core/domain/model/order"
	"sendit/internal/pkg/errs"
)

// ChangeDestinationCommandHandler handles re-routing of pending orders.
// The parcel is re-resolved so the recomputed price reflects its current
// weight; the aggregate rejects the change for non-pending orders.
type ChangeDestinationCommandHandler struct {
	uowFactory OrderUoWFactory
	pricer     order.Pricer
}

// NewChangeDestinationCommandHandler creates a handler for destination changes.
func NewChangeDestinationCommandHandler(uowFactory OrderUoWFactory, pricer order.Pricer) ChangeDestinationCommandHandler {
	return ChangeDestinationCommandHandler{
		uowFactory: uowFactory,
		pricer:     pricer,
	}
}

// Handle processes the destination change command.
func (h *ChangeDestinationCommandHandler) Handle(ctx context.Context, cmd ChangeDestinationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !aggregate.IsOwnedBy(cmd.UserID()) {
		return errs.NewNotAuthorizedError("order belongs to another user")
	}

	p, err := uow.ParcelRepository().Get(ctx, aggregate.ParcelID())
	if err != nil {
		return err
	}

	if err = aggregate.ChangeDestination(cmd.NewDestination(), p, h.pricer); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
