package ports

import (
	"context"

	"purchase/internal/core/domain/model/kernel"
	"purchase/internal/core/domain/model/notification"
)

// NotificationRepository defines the persistence contract for notification
// records. The order save flow creates records through it; the dispatch job
// reads pending records back and updates them once handed off.
type NotificationRepository interface {
	// Add persists a new notification record.
	Add(ctx context.Context, aggregate *notification.Notification) error

	// Update persists changes to an existing notification record.
	Update(ctx context.Context, aggregate *notification.Notification) error

	// GetAllForOrder retrieves all notifications spawned by one order.
	GetAllForOrder(ctx context.Context, orderID kernel.UUID) ([]*notification.Notification, error)

	// GetAllInPendingStatus retrieves all notifications awaiting dispatch.
	GetAllInPendingStatus(ctx context.Context) ([]*notification.Notification, error)
}
