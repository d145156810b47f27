package commands

import (
	"errors"

	"sendit/internal/core/domain/model/kernel"
	"sendit/internal/pkg/guard"
)

var ErrUpdateParcelCommandIsNotConstructed = errors.New(
	"UpdateParcelCommand must be created via NewUpdateParcelCommand constructor",
)

// UpdateParcelCommand represents a request to replace a parcel's mutable
// attributes. The acting user must own the parcel.
type UpdateParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID      kernel.UUID
	userID        kernel.UUID
	description   string
	weightKg      float64
	lengthCm      float64
	widthCm       float64
	heightCm      float64
	declaredValue float64
	fragile       bool

	guard guard.ConstructorGuard
}

// NewUpdateParcelCommand creates a command to update a parcel.
func NewUpdateParcelCommand(
	parcelID kernel.UUID,
	userID kernel.UUID,
	description string,
	weightKg float64,
	lengthCm float64,
	widthCm float64,
	heightCm float64,
	declaredValue float64,
	fragile bool,
) (UpdateParcelCommand, error) {
	cmd := UpdateParcelCommand{
		description:   description,
		weightKg:      weightKg,
		lengthCm:      lengthCm,
		widthCm:       widthCm,
		heightCm:      heightCm,
		declaredValue: declaredValue,
		fragile:       fragile,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setUserID(userID),
	); err != nil {
		return UpdateParcelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateParcelCommand) Validate() error {
	return c.guard.Validate(ErrUpdateParcelCommandIsNotConstructed)
}

// ParcelID returns the identifier of the parcel to update.
func (c UpdateParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// UserID returns the identifier of the acting user.
func (c UpdateParcelCommand) UserID() kernel.UUID {
	return c.userID
}

// Description returns the new description.
func (c UpdateParcelCommand) Description() string {
	return c.description
}

// WeightKg returns the new weight in kilograms.
func (c UpdateParcelCommand) WeightKg() float64 {
	return c.weightKg
}

// LengthCm returns the new length in centimeters.
func (c UpdateParcelCommand) LengthCm() float64 {
	return c.lengthCm
}

// WidthCm returns the new width in centimeters.
func (c UpdateParcelCommand) WidthCm() float64 {
	return c.widthCm
}

// HeightCm returns the new height in centimeters.
func (c UpdateParcelCommand) HeightCm() float64 {
	return c.heightCm
}

// DeclaredValue returns the new declared value in USD.
func (c UpdateParcelCommand) DeclaredValue() float64 {
	return c.declaredValue
}

// Fragile reports whether the parcel needs fragile handling.
func (c UpdateParcelCommand) Fragile() bool {
	return c.fragile
}

func (c *UpdateParcelCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}
	c.parcelID = parcelID
	return nil
}

func (c *UpdateParcelCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}
