// Package queries contains read-only operations over persisted state.
// Query handlers bypass the aggregate layer and read projections straight
// from the database, keeping the read path cheap.
package queries

import (
	"errors"
	"time"

	"purchase/internal/core/domain/model/kernel"
	"purchase/internal/pkg/guard"
)

var ErrGetPendingOrdersQueryIsNotConstructed = errors.New(
	"GetPendingOrdersQuery must be created via NewGetPendingOrdersQuery constructor",
)

// GetPendingOrdersQuery retrieves all orders still awaiting handling.
// This is a parameterless query used by back office tooling to monitor the
// open order backlog.
type GetPendingOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingOrdersQuery creates a query to retrieve pending orders.
func NewGetPendingOrdersQuery() GetPendingOrdersQuery {
	return GetPendingOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPendingOrdersQueryIsNotConstructed if validation fails.
func (q GetPendingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingOrdersQueryIsNotConstructed)
}

// GetPendingOrdersQueryResponse represents one open order in the backlog.
type GetPendingOrdersQueryResponse struct {
	ID          kernel.UUID
	BuyerID     kernel.UUID
	TotalPrice  float64
	PurchasedAt time.Time
}
