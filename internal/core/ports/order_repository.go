package ports

import (
	"context"

	"sendit/internal/core/domain/model/kernel"
	"sendit/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for delivery-order
// aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// A duplicate tracking number fails with a uniqueness violation.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByTrackingNumber retrieves an order by its customer-facing
	// tracking number. Used by the public tracking flow.
	GetByTrackingNumber(ctx context.Context, trackingNumber order.TrackingNumber) (*order.Order, error)

	// GetAllOverdue retrieves non-terminal orders whose estimated delivery
	// is in the past. Used by the overdue-notification job.
	GetAllOverdue(ctx context.Context) ([]*order.Order, error)
}
