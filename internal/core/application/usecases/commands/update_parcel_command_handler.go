package commands

import (
	"context"

	"sendit/internal/core/domain/model/parcel"
	"sendit/internal/pkg/errs"
)

// UpdateParcelCommandHandler handles parcel updates.
// Only the owner may update a parcel; the aggregate re-validates every field.
type UpdateParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewUpdateParcelCommandHandler creates a handler for parcel updates.
func NewUpdateParcelCommandHandler(uowFactory ParcelUoWFactory) UpdateParcelCommandHandler {
	return UpdateParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update command.
func (h *UpdateParcelCommandHandler) Handle(ctx context.Context, cmd UpdateParcelCommand) error {
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

	dimensions, err := parcel.NewDimensions(cmd.LengthCm(), cmd.WidthCm(), cmd.HeightCm())
	if err != nil {
		return err
	}

	if err = aggregate.Update(
		cmd.Description(),
		cmd.WeightKg(),
		dimensions,
		cmd.DeclaredValue(),
		cmd.Fragile(),
	); err != nil {
		return err
	}

	if err = uow.ParcelRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
