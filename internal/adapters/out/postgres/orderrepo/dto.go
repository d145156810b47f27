// Package orderrepo provides data transfer objects and mapping functions for
// delivery order persistence. Pickup, destination, and the optional current
// position are embedded into the orders table with column prefixes; derived
// route figures are stored as-is and trusted on restore.
package orderrepo

import (
	"time"

	"sendit/internal/core/domain/model/kernel"
	"sendit/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// TrackingNumber carries a unique index; a generator collision surfaces as a
// constraint violation instead of a silent duplicate.
type OrderDTO struct {
	ID                uuid.UUID           `gorm:"type:uuid;primaryKey"`
	UserID            uuid.UUID           `gorm:"type:uuid;index"`
	ParcelID          uuid.UUID           `gorm:"type:uuid;index"`
	Pickup            LocationDTO         `gorm:"embedded;embeddedPrefix:pickup_"`
	Destination       LocationDTO         `gorm:"embedded;embeddedPrefix:destination_"`
	Current           NullableLocationDTO `gorm:"embedded;embeddedPrefix:current_"`
	Status            int                 `gorm:"index"`
	TrackingNumber    string              `gorm:"uniqueIndex"`
	DistanceKm        float64
	DurationMinutes   int
	Price             float64
	EstimatedDelivery time.Time
	ActualDelivery    *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// LocationDTO represents an embedded geographic location within the order table.
type LocationDTO struct {
	Latitude   float64
	Longitude  float64
	Address    string
	City       string
	State      string
	Country    string
	PostalCode string
}

// NullableLocationDTO represents an optional embedded location. All columns
// are NULL while no position has been reported; Latitude doubles as the
// presence marker.
type NullableLocationDTO struct {
	Latitude   *float64
	Longitude  *float64
	Address    *string
	City       *string
	State      *string
	Country    *string
	PostalCode *string
}

func locationToDTO(loc kernel.Location) LocationDTO {
	return LocationDTO{
		Latitude:   loc.Latitude(),
		Longitude:  loc.Longitude(),
		Address:    loc.Address(),
		City:       loc.City(),
		State:      loc.State(),
		Country:    loc.Country(),
		PostalCode: loc.PostalCode(),
	}
}

func locationFromDTO(dto LocationDTO) (kernel.Location, error) {
	return kernel.NewLocation(
		dto.Latitude,
		dto.Longitude,
		dto.Address,
		dto.City,
		dto.State,
		dto.Country,
		dto.PostalCode,
	)
}

func nullableLocationToDTO(loc *kernel.Location) NullableLocationDTO {
	if loc == nil {
		return NullableLocationDTO{}
	}

	dto := locationToDTO(*loc)
	return NullableLocationDTO{
		Latitude:   &dto.Latitude,
		Longitude:  &dto.Longitude,
		Address:    &dto.Address,
		City:       &dto.City,
		State:      &dto.State,
		Country:    &dto.Country,
		PostalCode: &dto.PostalCode,
	}
}

func nullableLocationFromDTO(dto NullableLocationDTO) (*kernel.Location, error) {
	if dto.Latitude == nil {
		return nil, nil //nolint:nilnil //no reported position
	}

	loc, err := locationFromDTO(LocationDTO{
		Latitude:   *dto.Latitude,
		Longitude:  *dto.Longitude,
		Address:    *dto.Address,
		City:       *dto.City,
		State:      *dto.State,
		Country:    *dto.Country,
		PostalCode: *dto.PostalCode,
	})
	if err != nil {
		return nil, err
	}

	return &loc, nil
}

func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:                aggregate.ID().Bytes(),
		UserID:            aggregate.UserID().Bytes(),
		ParcelID:          aggregate.ParcelID().Bytes(),
		Pickup:            locationToDTO(aggregate.Pickup()),
		Destination:       locationToDTO(aggregate.Destination()),
		Current:           nullableLocationToDTO(aggregate.CurrentLocation()),
		Status:            int(aggregate.Status()),
		TrackingNumber:    string(aggregate.TrackingNumber()),
		DistanceKm:        aggregate.DistanceKm(),
		DurationMinutes:   aggregate.DurationMinutes(),
		Price:             aggregate.Price(),
		EstimatedDelivery: aggregate.EstimatedDelivery(),
		ActualDelivery:    aggregate.ActualDelivery(),
		CreatedAt:         aggregate.CreatedAt(),
		UpdatedAt:         aggregate.UpdatedAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	parcelID, err := kernel.UUIDFromBytes(dto.ParcelID[:])
	if err != nil {
		return nil, err
	}

	pickup, err := locationFromDTO(dto.Pickup)
	if err != nil {
		return nil, err
	}

	destination, err := locationFromDTO(dto.Destination)
	if err != nil {
		return nil, err
	}

	current, err := nullableLocationFromDTO(dto.Current)
	if err != nil {
		return nil, err
	}

	trackingNumber, err := order.TrackingNumberFromString(dto.TrackingNumber)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		userID,
		parcelID,
		pickup,
		destination,
		current,
		order.Status(dto.Status),
		trackingNumber,
		dto.DistanceKm,
		dto.DurationMinutes,
		dto.Price,
		dto.EstimatedDelivery,
		dto.ActualDelivery,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
