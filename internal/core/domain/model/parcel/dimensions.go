package parcel

import (
	"errors"
	"fmt"

	"sendit/internal/pkg/errs"
	"sendit/internal/pkg/guard"
)

// MaxDimensionCm is the upper bound for each parcel side in centimeters.
const MaxDimensionCm = 150.0

// ErrDimensionsAreNotConstructed is returned when attempting to use improperly
// initialized Dimensions. Dimensions must be created via NewDimensions.
var ErrDimensionsAreNotConstructed = errs.NewValueIsRequiredError(
	"dimensions must be created via NewDimensions constructor")

// ErrParcelIsOversized is returned when a parcel occupies the full size limit
// in every dimension at once.
var ErrParcelIsOversized = errs.NewValueIsInvalidErrorWithCause("dimensions",
	fmt.Errorf("parcel at %.0fx%.0fx%.0f cm exceeds the oversize limit",
		MaxDimensionCm, MaxDimensionCm, MaxDimensionCm))

// Dimensions is an immutable value object describing a parcel's size in
// centimeters. Each side must be greater than zero and at most MaxDimensionCm,
// and a parcel maxed out on all three sides simultaneously is rejected as
// oversize.
type Dimensions struct { //nolint:recvcheck //using for validation
	length float64
	width  float64
	height float64

	guard guard.ConstructorGuard
}

// NewDimensions creates validated parcel dimensions.
// All side violations are reported together via errors.Join.
func NewDimensions(length float64, width float64, height float64) (Dimensions, error) {
	dims := Dimensions{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		dims.setSide("length", &dims.length, length),
		dims.setSide("width", &dims.width, width),
		dims.setSide("height", &dims.height, height),
	); err != nil {
		return Dimensions{}, err
	}

	if dims.length >= MaxDimensionCm && dims.width >= MaxDimensionCm && dims.height >= MaxDimensionCm {
		return Dimensions{}, ErrParcelIsOversized
	}

	return dims, nil
}

// Validate checks if the Dimensions were properly constructed.
func (d Dimensions) Validate() error {
	return d.guard.Validate(ErrDimensionsAreNotConstructed)
}

// Length returns the length in centimeters.
func (d Dimensions) Length() float64 {
	return d.length
}

// Width returns the width in centimeters.
func (d Dimensions) Width() float64 {
	return d.width
}

// Height returns the height in centimeters.
func (d Dimensions) Height() float64 {
	return d.height
}

// String returns a human-readable "LxWxH cm" representation.
func (d Dimensions) String() string {
	return fmt.Sprintf("%.1fx%.1fx%.1f cm", d.length, d.width, d.height)
}

func (d *Dimensions) setSide(name string, field *float64, value float64) error {
	if value <= 0 || value > MaxDimensionCm {
		return errs.NewValueIsOutOfRangeError(name, value, 0, MaxDimensionCm)
	}

	*field = value
	return nil
}
