// Package notify provides the outbound notification adapter. The current
// implementation writes structured log records; swapping in email or push
// delivery only requires another implementation of the Notifier port.
package notify

import (
	"context"
	"log/slog"

	"sendit/internal/core/domain/model/order"
)

// SlogNotifier reports overdue deliveries through structured logging.
type SlogNotifier struct {
	logger *slog.Logger
}

// NewSlogNotifier creates a log-backed notifier.
func NewSlogNotifier(logger *slog.Logger) *SlogNotifier {
	return &SlogNotifier{
		logger: logger.With("component", "overdue_notifier"),
	}
}

// NotifyOverdue logs an overdue delivery with enough context to follow up.
func (n *SlogNotifier) NotifyOverdue(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	n.logger.WarnContext(ctx, "Order is overdue",
		"order_id", aggregate.ID().String(),
		"tracking_number", string(aggregate.TrackingNumber()),
		"status", aggregate.Status().String(),
		"estimated_delivery", aggregate.EstimatedDelivery(),
	)
	return nil
}
