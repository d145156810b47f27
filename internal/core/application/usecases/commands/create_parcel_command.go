package commands

import (
	"errors"

	"sendit/internal/core/domain/model/kernel"
	"sendit/internal/pkg/guard"
)

var ErrCreateParcelCommandIsNotConstructed = errors.New(
	"CreateParcelCommand must be created via NewCreateParcelCommand constructor",
)

// CreateParcelCommand represents a request to register a new parcel.
// Field-level validation (description length, weight and dimension bounds)
// happens in the parcel aggregate; the command only carries the raw values.
type CreateParcelCommand struct { //nolint:recvcheck //using for validation
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

// NewCreateParcelCommand creates a command to register a parcel for a user.
func NewCreateParcelCommand(
	parcelID kernel.UUID,
	userID kernel.UUID,
	description string,
	weightKg float64,
	lengthCm float64,
	widthCm float64,
	heightCm float64,
	declaredValue float64,
	fragile bool,
) (CreateParcelCommand, error) {
	cmd := CreateParcelCommand{
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
		return CreateParcelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateParcelCommand) Validate() error {
	return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
}

// ParcelID returns the identifier for the new parcel.
func (c CreateParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// UserID returns the identifier of the owning user.
func (c CreateParcelCommand) UserID() kernel.UUID {
	return c.userID
}

// Description returns the parcel description.
func (c CreateParcelCommand) Description() string {
	return c.description
}

// WeightKg returns the parcel weight in kilograms.
func (c CreateParcelCommand) WeightKg() float64 {
	return c.weightKg
}

// LengthCm returns the parcel length in centimeters.
func (c CreateParcelCommand) LengthCm() float64 {
	return c.lengthCm
}

// WidthCm returns the parcel width in centimeters.
func (c CreateParcelCommand) WidthCm() float64 {
	return c.widthCm
}

// HeightCm returns the parcel height in centimeters.
func (c CreateParcelCommand) HeightCm() float64 {
	return c.heightCm
}

// DeclaredValue returns the declared value in USD.
func (c CreateParcelCommand) DeclaredValue() float64 {
	return c.declaredValue
}

// Fragile reports whether the parcel needs fragile handling.
func (c CreateParcelCommand) Fragile() bool {
	return c.fragile
}

func (c *CreateParcelCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}
	c.parcelID = parcelID
	return nil
}

func (c *CreateParcelCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}
