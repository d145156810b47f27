package commands

import (
	"context"

	"sendit/internal/pkg/errs"
)

// DeleteParcelCommandHandler handles parcel removal.
// The parcel is resolved first so a missing parcel surfaces as NotFound and a
// foreign parcel as NotAuthorized instead of silently deleting nothing.
type DeleteParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewDeleteParcelCommandHandler creates a handler for parcel removal.
func NewDeleteParcelCommandHandler(uowFactory ParcelUoWFactory) DeleteParcelCommandHandler {
	return DeleteParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delete command.
func (h *DeleteParcelCommandHandler) Handle(ctx context.Context, cmd DeleteParcelCommand) error {
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

	aggregate, err := uow.ParcelRepository().Get(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	if !aggregate.IsOwnedBy(cmd.UserID()) {
		return errs.NewNotAuthorizedError("parcel belongs to another user")
	}

	if err = uow.ParcelRepository().Delete(ctx, cmd.ParcelID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
