package ports

import (
	"context"

	"sendit/internal/core/domain/model/kernel"
	"sendit/internal/core/domain/model/parcel"
)

// ParcelRepository defines the persistence contract for parcel aggregates.
// Get is also the ParcelLookup collaborator the order lifecycle relies on:
// a missing parcel surfaces as an ObjectNotFoundError.
type ParcelRepository interface {
	// Add persists a new parcel aggregate to storage.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update persists changes to an existing parcel aggregate.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// Get retrieves a parcel aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// Delete removes a parcel from storage.
	Delete(ctx context.Context, id kernel.UUID) error
}
