package parcel

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"sendit/internal/core/domain/model/kernel"
	"sendit/internal/pkg/errs"
)

const (
	// MaxWeightKg is the heaviest parcel the service accepts.
	MaxWeightKg = 100.0
	// MaxDescriptionLength is the longest accepted parcel description,
	// counted in characters.
	MaxDescriptionLength = 500
)

// ErrParcelIsNotConstructed is returned when a Parcel instance was not created
// through NewParcel or RestoreParcel.
var ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel constructor")

// Parcel is the aggregate describing a package a user wants delivered.
//
// Invariants:
//   - description is non-empty and at most MaxDescriptionLength characters
//   - weight is greater than 0 and at most MaxWeightKg
//   - dimensions are valid per the Dimensions value object
//   - declared value is non-negative
//   - can only be created through NewParcel / RestoreParcel
type Parcel struct {
	id            kernel.UUID
	userID        kernel.UUID
	description   string
	weightKg      float64
	dimensions    Dimensions
	declaredValue float64
	fragile       bool

	isConstructed bool
}

// NewParcel creates a Parcel with validation. All field violations are
// collected via errors.Join so the caller sees every offending field at once.
func NewParcel(
	id kernel.UUID,
	userID kernel.UUID,
	description string,
	weightKg float64,
	dimensions Dimensions,
	declaredValue float64,
	fragile bool,
) (*Parcel, error) {
	p := &Parcel{
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setUserID(userID),
		p.setDescription(description),
		p.setWeight(weightKg),
		p.setDimensions(dimensions),
		p.setDeclaredValue(declaredValue),
	); err != nil {
		return nil, err
	}

	p.fragile = fragile
	return p, nil
}

// RestoreParcel reconstructs a Parcel from persistence.
// The same validation as NewParcel applies, so corrupt rows surface as errors.
func RestoreParcel(
	id kernel.UUID,
	userID kernel.UUID,
	description string,
	weightKg float64,
	dimensions Dimensions,
	declaredValue float64,
	fragile bool,
) (*Parcel, error) {
	return NewParcel(id, userID, description, weightKg, dimensions, declaredValue, fragile)
}

// Validate ensures the Parcel was created through a constructor.
func (p *Parcel) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParcelIsNotConstructed
	}

	return nil
}

// IsEqual compares two parcels by their unique identifiers.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the parcel's unique identifier.
func (p *Parcel) ID() kernel.UUID {
	return p.id
}

// UserID returns the identifier of the owning user.
func (p *Parcel) UserID() kernel.UUID {
	return p.userID
}

// Description returns the parcel description.
func (p *Parcel) Description() string {
	return p.description
}

// WeightKg returns the parcel weight in kilograms.
func (p *Parcel) WeightKg() float64 {
	return p.weightKg
}

// Dimensions returns the parcel dimensions.
func (p *Parcel) Dimensions() Dimensions {
	return p.dimensions
}

// DeclaredValue returns the declared value in USD.
func (p *Parcel) DeclaredValue() float64 {
	return p.declaredValue
}

// Fragile reports whether the parcel needs fragile handling.
func (p *Parcel) Fragile() bool {
	return p.fragile
}

// WeightCategory returns the pricing tier derived from the parcel's weight.
func (p *Parcel) WeightCategory() WeightCategory {
	return CategoryOf(p.weightKg)
}

// IsOwnedBy reports whether the parcel belongs to the given user.
func (p *Parcel) IsOwnedBy(userID kernel.UUID) bool {
	return p.userID.IsEqual(userID)
}

// Update replaces the mutable parcel attributes with full re-validation.
// Ownership and identity never change through updates. The update is atomic:
// when any field fails validation, the parcel is left untouched.
func (p *Parcel) Update(
	description string,
	weightKg float64,
	dimensions Dimensions,
	declaredValue float64,
	fragile bool,
) error {
	if err := p.Validate(); err != nil {
		return err
	}

	updated, err := NewParcel(p.id, p.userID, description, weightKg, dimensions, declaredValue, fragile)
	if err != nil {
		return err
	}

	*p = *updated
	return nil
}

func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Parcel) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userId", err)
	}
	p.userID = userID
	return nil
}

func (p *Parcel) setDescription(description string) error {
	description = strings.TrimSpace(description)
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	if length := utf8.RuneCountInString(description); length > MaxDescriptionLength {
		return errs.NewValueIsInvalidErrorWithCause("description",
			fmt.Errorf("%d characters exceeds the %d character limit", length, MaxDescriptionLength))
	}

	p.description = description
	return nil
}

func (p *Parcel) setWeight(weightKg float64) error {
	if weightKg <= 0 || weightKg > MaxWeightKg {
		return errs.NewValueIsOutOfRangeError("weightKg", weightKg, 0, MaxWeightKg)
	}

	p.weightKg = weightKg
	return nil
}

func (p *Parcel) setDimensions(dimensions Dimensions) error {
	if err := dimensions.Validate(); err != nil {
		return err
	}

	p.dimensions = dimensions
	return nil
}

func (p *Parcel) setDeclaredValue(declaredValue float64) error {
	if declaredValue < 0 {
		return errs.NewValueIsInvalidErrorWithCause("declaredValue",
			fmt.Errorf("%.2f is negative", declaredValue))
	}

	p.declaredValue = declaredValue
	return nil
}
