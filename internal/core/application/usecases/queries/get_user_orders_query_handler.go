package queries

import (
	"context"

	"sendit/internal/core/domain/model/kernel"
	"sendit/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUserOrdersQueryHandler lists a user's delivery orders from the database.
type GetUserOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUserOrdersQueryHandler creates a handler for order list queries.
func NewGetUserOrdersQueryHandler(db *gorm.DB) GetUserOrdersQueryHandler {
	return GetUserOrdersQueryHandler{db: db}
}

// Handle executes the query. Results are sorted newest first.
func (h GetUserOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUserOrdersQuery,
) ([]GetUserOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetUserOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			parcel_id,
			tracking_number,
			status,
			pickup_city,
			destination_city,
			distance_km,
			price,
			estimated_delivery,
			created_at
		FROM orders
		WHERE user_id = ?
		ORDER BY created_at DESC
	`, query.UserID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetUserOrdersQueryResponse
		var id, parcelID uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&parcelID,
			&resp.TrackingNumber,
			&status,
			&resp.PickupCity,
			&resp.DestinationCity,
			&resp.DistanceKm,
			&resp.Price,
			&resp.EstimatedDelivery,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID

		pID, idErr := kernel.UUIDFromBytes(parcelID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ParcelID = pID

		resp.Status = order.Status(status).String()
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
