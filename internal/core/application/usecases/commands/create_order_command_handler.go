package commands

import (
	"context"

	"sendit/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles delivery order creation.
// The parcel is resolved inside the transaction so the quoted price reflects
// its weight at order time; ownership is enforced by the order aggregate.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	pricer     order.Pricer
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, pricer order.Pricer) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		pricer:     pricer,
	}
}

// Handle processes the order creation command.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	p, err := uow.ParcelRepository().Get(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		cmd.UserID(),
		p,
		cmd.Pickup(),
		cmd.Destination(),
		h.pricer,
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
