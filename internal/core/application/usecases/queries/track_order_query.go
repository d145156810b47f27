// Package queries contains read-only operations in the CQRS architecture.
// Query handlers read the database directly and return plain response
// structs, bypassing the domain aggregates and the unit of work.
package queries

import (
	"errors"
	"time"

	"sendit/internal/core/domain/model/order"
	"sendit/internal/pkg/guard"
)

var ErrTrackOrderQueryIsNotConstructed = errors.New(
	"TrackOrderQuery must be created via NewTrackOrderQuery constructor",
)

// TrackOrderQuery retrieves the public tracking view of an order by its
// tracking number. Requires no authentication: the tracking number itself is
// the capability.
type TrackOrderQuery struct {
	trackingNumber order.TrackingNumber

	guard guard.ConstructorGuard
}

// NewTrackOrderQuery creates a query to track an order.
func NewTrackOrderQuery(trackingNumber order.TrackingNumber) (TrackOrderQuery, error) {
	if err := trackingNumber.Validate(); err != nil {
		return TrackOrderQuery{}, err
	}

	return TrackOrderQuery{
		trackingNumber: trackingNumber,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackOrderQuery) Validate() error {
	return q.guard.Validate(ErrTrackOrderQueryIsNotConstructed)
}

// TrackingNumber returns the tracking number to look up.
func (q TrackOrderQuery) TrackingNumber() order.TrackingNumber {
	return q.trackingNumber
}

// TrackOrderQueryResponse represents the public tracking view of an order.
// Owner identity, parcel details, and price are deliberately absent.
type TrackOrderQueryResponse struct {
	TrackingNumber    string
	Status            string
	PickupCity        string
	DestinationCity   string
	CurrentCity       *string
	EstimatedDelivery time.Time
	ActualDelivery    *time.Time
}
