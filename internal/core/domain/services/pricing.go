package services

import (
	"sendit/internal/core/domain/model/parcel"
)

// PricingConfig is the read-only pricing configuration of the process.
// It is fixed at startup; nothing mutates it afterwards.
type PricingConfig struct {
	// BasePrice is the flat component of every delivery, in USD.
	BasePrice float64
	// PricePerKm is the distance coefficient, in USD per kilometer.
	PricePerKm float64
	// Multipliers scales the distance component per weight category.
	Multipliers map[parcel.WeightCategory]float64
}

// DefaultPricingConfig returns the standard tariff:
// base 10 USD, 0.5 USD/km, multipliers 1.0 / 1.2 / 1.5 / 2.0 across the tiers.
func DefaultPricingConfig() PricingConfig {
	return PricingConfig{
		BasePrice:  10,
		PricePerKm: 0.5,
		Multipliers: map[parcel.WeightCategory]float64{
			parcel.Light:      1.0,
			parcel.Medium:     1.2,
			parcel.Heavy:      1.5,
			parcel.ExtraHeavy: 2.0,
		},
	}
}

// PricingService computes delivery prices from parcel weight and route
// distance. It is a pure domain service: the same inputs always produce the
// same price, and the result is monotonically non-decreasing in distance and
// weight category.
//
// Example:
//
//	pricer := services.NewPricingService(services.DefaultPricingConfig())
//	price := pricer.Price(2, 3936) // 10 + 3936*0.5*1.0 = 1978 USD
type PricingService struct {
	config PricingConfig
}

// NewPricingService creates a pricing service with the given configuration.
func NewPricingService(config PricingConfig) PricingService {
	return PricingService{config: config}
}

// Price returns the delivery price in USD:
// basePrice + distanceKm * pricePerKm * multiplier(weightCategory(weightKg)).
// The weight category uses the same classification as the parcel aggregate,
// so creation-time pricing and later re-pricing always agree.
func (s PricingService) Price(weightKg float64, distanceKm float64) float64 {
	multiplier := s.config.Multipliers[parcel.CategoryOf(weightKg)]
	return s.config.BasePrice + distanceKm*s.config.PricePerKm*multiplier
}
