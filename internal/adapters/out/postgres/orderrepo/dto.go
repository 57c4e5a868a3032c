// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"purchase/internal/core/domain/model/kernel"
	"purchase/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Course references are stored as a text[] column of UUID strings; lifecycle
// timestamps are nullable and only populated once the matching transition
// happened.
type OrderDTO struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey"`
	BuyerID       uuid.UUID      `gorm:"type:uuid;not null;index"`
	CourseIDs     pq.StringArray `gorm:"type:text[];not null"`
	Status        int            `gorm:"type:int;not null;index"`
	PaymentMethod string         `gorm:"type:varchar(64);not null"`
	PaymentStatus int            `gorm:"type:int;not null"`
	PurchasedAt   time.Time      `gorm:"not null"`
	CompletedAt   *time.Time
	CancelledAt   *time.Time
	Notes         string  `gorm:"type:text"`
	TotalPrice    float64 `gorm:"type:numeric;not null"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(order *order.Order) OrderDTO {
	courseIDs := make(pq.StringArray, 0, len(order.CourseIDs()))
	for _, id := range order.CourseIDs() {
		courseIDs = append(courseIDs, id.String())
	}

	return OrderDTO{
		ID:            order.ID().Bytes(),
		BuyerID:       order.BuyerID().Bytes(),
		CourseIDs:     courseIDs,
		Status:        int(order.Status()),
		PaymentMethod: order.PaymentMethod(),
		PaymentStatus: int(order.PaymentStatus()),
		PurchasedAt:   order.PurchasedAt(),
		CompletedAt:   order.CompletedAt(),
		CancelledAt:   order.CancelledAt(),
		Notes:         order.Notes(),
		TotalPrice:    order.TotalPrice(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including its lifecycle state using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	buyerID, err := kernel.UUIDFromBytes(dto.BuyerID[:])
	if err != nil {
		return nil, err
	}

	courseIDs := make([]kernel.UUID, 0, len(dto.CourseIDs))
	for _, raw := range dto.CourseIDs {
		courseID, courseErr := kernel.UUIDFromString(raw)
		if courseErr != nil {
			return nil, courseErr
		}
		courseIDs = append(courseIDs, courseID)
	}

	return order.RestoreOrder(
		id,
		buyerID,
		courseIDs,
		order.Status(dto.Status),
		dto.PaymentMethod,
		order.PaymentStatus(dto.PaymentStatus),
		dto.PurchasedAt,
		dto.CompletedAt,
		dto.CancelledAt,
		dto.Notes,
		dto.TotalPrice,
	)
}
