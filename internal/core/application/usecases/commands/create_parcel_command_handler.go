package commands

import (
	"context"

	"sendit/internal/core/domain/model/parcel"
)

// CreateParcelCommandHandler handles parcel registration.
type CreateParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewCreateParcelCommandHandler creates a handler for parcel registration.
func NewCreateParcelCommandHandler(uowFactory ParcelUoWFactory) CreateParcelCommandHandler {
	return CreateParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle validates the parcel attributes through the aggregate constructor
// and persists the new parcel.
func (h *CreateParcelCommandHandler) Handle(ctx context.Context, cmd CreateParcelCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	dimensions, err := parcel.NewDimensions(cmd.LengthCm(), cmd.WidthCm(), cmd.HeightCm())
	if err != nil {
		return err
	}

	aggregate, err := parcel.NewParcel(
		cmd.ParcelID(),
		cmd.UserID(),
		cmd.Description(),
		cmd.WeightKg(),
		dimensions,
		cmd.DeclaredValue(),
		cmd.Fragile(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ParcelRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
