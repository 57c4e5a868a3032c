package queries

import (
	"errors"
	"time"

	"purchase/internal/core/domain/model/kernel"
	"purchase/internal/pkg/guard"
)

var ErrGetOrderNotificationsQueryIsNotConstructed = errors.New(
	"GetOrderNotificationsQuery must be created via NewGetOrderNotificationsQuery constructor",
)

// GetOrderNotificationsQuery retrieves every notification record one order
// has spawned over its lifecycle.
type GetOrderNotificationsQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderNotificationsQuery creates a query for an order's notifications.
func NewGetOrderNotificationsQuery(orderID kernel.UUID) (GetOrderNotificationsQuery, error) {
	notificationsQuery := GetOrderNotificationsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := notificationsQuery.setOrderID(orderID); err != nil {
		return GetOrderNotificationsQuery{}, err
	}

	return notificationsQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderNotificationsQueryIsNotConstructed if validation fails.
func (q GetOrderNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderNotificationsQueryIsNotConstructed)
}

// OrderID returns the order whose notifications are requested.
func (q GetOrderNotificationsQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetOrderNotificationsQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

// GetOrderNotificationsQueryResponse represents one notification record.
type GetOrderNotificationsQueryResponse struct {
	ID      kernel.UUID
	UserID  kernel.UUID
	Status  string
	Subject string
	Content string
	SentAt  *time.Time
}
