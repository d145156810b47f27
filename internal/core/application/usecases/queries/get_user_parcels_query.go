package queries

import (
	"errors"

	"sendit/internal/core/domain/model/kernel"
	"sendit/internal/pkg/guard"
)

var ErrGetUserParcelsQueryIsNotConstructed = errors.New(
	"GetUserParcelsQuery must be created via NewGetUserParcelsQuery constructor",
)

// GetUserParcelsQuery retrieves all parcels belonging to a user.
type GetUserParcelsQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetUserParcelsQuery creates a query to list a user's parcels.
func NewGetUserParcelsQuery(userID kernel.UUID) (GetUserParcelsQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetUserParcelsQuery{}, err
	}

	return GetUserParcelsQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserParcelsQuery) Validate() error {
	return q.guard.Validate(ErrGetUserParcelsQueryIsNotConstructed)
}

// UserID returns the owner whose parcels are listed.
func (q GetUserParcelsQuery) UserID() kernel.UUID {
	return q.userID
}

// GetUserParcelsQueryResponse represents one parcel in a user's parcel list.
type GetUserParcelsQueryResponse struct {
	ID             kernel.UUID
	Description    string
	WeightKg       float64
	WeightCategory string
	LengthCm       float64
	WidthCm        float64
	HeightCm       float64
	DeclaredValue  float64
	Fragile        bool
}
