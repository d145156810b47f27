package queries

import (
	"errors"
	"time"

	"sendit/internal/core/domain/model/kernel"
	"sendit/internal/pkg/guard"
)

var ErrGetUserOrdersQueryIsNotConstructed = errors.New(
	"GetUserOrdersQuery must be created via NewGetUserOrdersQuery constructor",
)

// GetUserOrdersQuery retrieves all delivery orders belonging to a user.
type GetUserOrdersQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetUserOrdersQuery creates a query to list a user's orders.
func NewGetUserOrdersQuery(userID kernel.UUID) (GetUserOrdersQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetUserOrdersQuery{}, err
	}

	return GetUserOrdersQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUserOrdersQueryIsNotConstructed)
}

// UserID returns the owner whose orders are listed.
func (q GetUserOrdersQuery) UserID() kernel.UUID {
	return q.userID
}

// GetUserOrdersQueryResponse represents one order in a user's order list.
type GetUserOrdersQueryResponse struct {
	ID                kernel.UUID
	ParcelID          kernel.UUID
	TrackingNumber    string
	Status            string
	PickupCity        string
	DestinationCity   string
	DistanceKm        float64
	Price             float64
	EstimatedDelivery time.Time
	CreatedAt         time.Time
}
