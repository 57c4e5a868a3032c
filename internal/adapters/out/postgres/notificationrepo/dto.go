// Package notificationrepo provides data transfer objects and mapping
// functions for notification persistence. Notification records are created
// during the order save flow and consumed later by the dispatch job.
package notificationrepo

import (
	"time"

	"purchase/internal/core/domain/model/kernel"
	"purchase/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

// NotificationDTO represents the database structure for persisting
// notification records. SentAt stays null until the dispatch job hands the
// record off.
type NotificationDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Status  int       `gorm:"type:int;not null;index"`
	Subject string    `gorm:"type:varchar(255);not null"`
	Content string    `gorm:"type:text;not null"`
	SentAt  *time.Time
}

// TableName specifies the database table name for notification entities.
// Overrides GORM's default naming convention to use "notifications".
func (NotificationDTO) TableName() string {
	return "notifications"
}

// fromDomain converts a notification domain entity to its database representation.
func fromDomain(notification *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:      notification.ID().Bytes(),
		OrderID: notification.OrderID().Bytes(),
		UserID:  notification.UserID().Bytes(),
		Status:  int(notification.Status()),
		Subject: notification.Subject(),
		Content: notification.Content(),
		SentAt:  notification.SentAt(),
	}
}

// toDomain converts a database DTO to a notification domain entity using RestoreNotification.
func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	return notification.RestoreNotification(
		id,
		orderID,
		userID,
		notification.Status(dto.Status),
		dto.Subject,
		dto.Content,
		dto.SentAt,
	)
}
