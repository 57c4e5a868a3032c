package queries

import (
	"context"

	"purchase/internal/core/domain/model/kernel"
	"purchase/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPendingOrdersQueryHandler retrieves open orders from the database.
// Reads a thin projection directly with raw SQL instead of hydrating full
// aggregates.
type GetPendingOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingOrdersQueryHandler creates a handler for backlog queries.
// Requires a GORM database connection for query execution.
func NewGetPendingOrdersQueryHandler(db *gorm.DB) GetPendingOrdersQueryHandler {
	return GetPendingOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all pending orders.
// Results are sorted by purchase time so the oldest open order comes first.
func (h GetPendingOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetPendingOrdersQuery,
) ([]GetPendingOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetPendingOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			buyer_id,
			total_price,
			purchased_at
		FROM orders
		WHERE status = ?
		ORDER BY purchased_at, id
	`, order.Pending).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetPendingOrdersQueryResponse
		var id, buyerID uuid.UUID

		err = rows.Scan(
			&id,
			&buyerID,
			&orderResp.TotalPrice,
			&orderResp.PurchasedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.ID = orderID

		buyer, idErr := kernel.UUIDFromBytes(buyerID[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.BuyerID = buyer

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
