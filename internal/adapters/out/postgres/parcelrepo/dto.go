// Package parcelrepo provides data transfer objects and mapping functions for
// parcel persistence. Dimensions are flattened into the parcels table since
// they never vary independently of the parcel.
package parcelrepo

import (
	"sendit/internal/core/domain/model/kernel"
	"sendit/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// ParcelDTO represents the database structure for persisting parcel aggregates.
type ParcelDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID `gorm:"type:uuid;index"`
	Description   string
	WeightKg      float64
	LengthCm      float64
	WidthCm       float64
	HeightCm      float64
	DeclaredValue float64
	Fragile       bool
}

// TableName specifies the database table name for parcel entities.
func (ParcelDTO) TableName() string {
	return "parcels"
}

func fromDomain(aggregate *parcel.Parcel) ParcelDTO {
	dims := aggregate.Dimensions()
	return ParcelDTO{
		ID:            aggregate.ID().Bytes(),
		UserID:        aggregate.UserID().Bytes(),
		Description:   aggregate.Description(),
		WeightKg:      aggregate.WeightKg(),
		LengthCm:      dims.Length(),
		WidthCm:       dims.Width(),
		HeightCm:      dims.Height(),
		DeclaredValue: aggregate.DeclaredValue(),
		Fragile:       aggregate.Fragile(),
	}
}

func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	dims, err := parcel.NewDimensions(dto.LengthCm, dto.WidthCm, dto.HeightCm)
	if err != nil {
		return nil, err
	}

	return parcel.RestoreParcel(id, userID, dto.Description, dto.WeightKg, dims, dto.DeclaredValue, dto.Fragile)
}
