package queries

import (
	"context"
	"time"

	"purchase/internal/core/domain/model/kernel"
	"purchase/internal/core/domain/model/notification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderNotificationsQueryHandler retrieves an order's notification history
// from the database.
type GetOrderNotificationsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderNotificationsQueryHandler creates a handler for notification
// history queries. Requires a GORM database connection for query execution.
func NewGetOrderNotificationsQueryHandler(db *gorm.DB) GetOrderNotificationsQueryHandler {
	return GetOrderNotificationsQueryHandler{db: db}
}

// Handle executes the query to retrieve all notifications for one order,
// oldest first.
func (h GetOrderNotificationsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderNotificationsQuery,
) ([]GetOrderNotificationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	notifications := make([]GetOrderNotificationsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			user_id,
			status,
			subject,
			content,
			sent_at
		FROM notifications
		WHERE order_id = ?
		ORDER BY id
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var notificationResp GetOrderNotificationsQueryResponse
		var id, userID uuid.UUID
		var status int
		var sentAt *time.Time

		err = rows.Scan(
			&id,
			&userID,
			&status,
			&notificationResp.Subject,
			&notificationResp.Content,
			&sentAt,
		)
		if err != nil {
			return nil, err
		}

		notificationID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		notificationResp.ID = notificationID

		user, idErr := kernel.UUIDFromBytes(userID[:])
		if idErr != nil {
			return nil, idErr
		}
		notificationResp.UserID = user

		notificationResp.Status = notification.Status(status).String()
		notificationResp.SentAt = sentAt

		notifications = append(notifications, notificationResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return notifications, nil
}
