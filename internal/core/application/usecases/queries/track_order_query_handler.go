package queries

import (
	"context"
	"database/sql"
	"errors"

	"sendit/internal/core/domain/model/order"
	"sendit/internal/pkg/errs"

	"gorm.io/gorm"
)

// TrackOrderQueryHandler retrieves the public tracking view of an order.
type TrackOrderQueryHandler struct {
	db *gorm.DB
}

// NewTrackOrderQueryHandler creates a handler for tracking lookups.
func NewTrackOrderQueryHandler(db *gorm.DB) TrackOrderQueryHandler {
	return TrackOrderQueryHandler{db: db}
}

// Handle executes the tracking lookup. Returns ObjectNotFound when no order
// carries the tracking number.
func (h TrackOrderQueryHandler) Handle(
	ctx context.Context,
	query TrackOrderQuery,
) (TrackOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			tracking_number,
			status,
			pickup_city,
			destination_city,
			current_city,
			estimated_delivery,
			actual_delivery
		FROM orders
		WHERE tracking_number = ?
	`, string(query.TrackingNumber())).Row()

	var resp TrackOrderQueryResponse
	var status int
	var currentCity sql.NullString
	var actualDelivery sql.NullTime

	err := row.Scan(
		&resp.TrackingNumber,
		&status,
		&resp.PickupCity,
		&resp.DestinationCity,
		&currentCity,
		&resp.EstimatedDelivery,
		&actualDelivery,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return TrackOrderQueryResponse{}, errs.NewObjectNotFoundError(
				"trackingNumber", string(query.TrackingNumber()))
		}
		return TrackOrderQueryResponse{}, err
	}

	resp.Status = order.Status(status).String()
	if currentCity.Valid {
		city := currentCity.String
		resp.CurrentCity = &city
	}
	if actualDelivery.Valid {
		t := actualDelivery.Time
		resp.ActualDelivery = &t
	}

	return resp, nil
}
