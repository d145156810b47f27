package parcel

import (
	"fmt"

	"sendit/internal/pkg/errs"
)

// WeightCategory is the pricing tier derived from a parcel's weight.
// It is never stored - always recomputed from the weight via CategoryOf so
// that creation-time pricing and any later re-pricing agree.
type WeightCategory int

const (
	// UnknownCategory represents an invalid or undefined category.
	// This value (0) helps catch uninitialized WeightCategory values.
	UnknownCategory WeightCategory = iota

	// Light covers parcels up to and including 5 kg.
	Light

	// Medium covers parcels over 5 kg up to and including 20 kg.
	Medium

	// Heavy covers parcels over 20 kg up to and including 50 kg.
	Heavy

	// ExtraHeavy covers parcels over 50 kg.
	ExtraHeavy
)

// CategoryOf maps a weight in kilograms to its pricing tier.
// Boundaries are inclusive on the upper side: 5 kg is light, 20 kg is medium,
// 50 kg is heavy.
func CategoryOf(weightKg float64) WeightCategory {
	switch {
	case weightKg <= 5:
		return Light
	case weightKg <= 20:
		return Medium
	case weightKg <= 50:
		return Heavy
	default:
		return ExtraHeavy
	}
}

func getCategoryStrings() map[WeightCategory]string {
	return map[WeightCategory]string{
		UnknownCategory: "unknown",
		Light:           "light",
		Medium:          "medium",
		Heavy:           "heavy",
		ExtraHeavy:      "extra_heavy",
	}
}

// Validate checks if the WeightCategory value is one of the defined tiers.
func (c WeightCategory) Validate() error {
	if c == UnknownCategory {
		return errs.NewValueIsInvalidErrorWithCause("weightCategory",
			fmt.Errorf("%d is not a valid weight category", c))
	}
	if _, ok := getCategoryStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("weightCategory",
			fmt.Errorf("%d is not a valid weight category", c))
	}
	return nil
}

// String returns the wire name of the category ("light", "medium", "heavy",
// "extra_heavy"). Implements fmt.Stringer.
func (c WeightCategory) String() string {
	if s, ok := getCategoryStrings()[c]; ok {
		return s
	}
	return "unknown"
}
