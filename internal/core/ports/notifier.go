package ports

import (
	"context"

	"sendit/internal/core/domain/model/order"
)

// Notifier delivers customer-facing notifications about order events.
// The production implementation sends templated email; the bundled adapter
// logs instead, which is enough for the overdue-delivery sweep.
type Notifier interface {
	// NotifyOverdue informs the order's owner that the delivery has passed
	// its estimated delivery time without reaching a terminal status.
	NotifyOverdue(ctx context.Context, aggregate *order.Order) error
}
