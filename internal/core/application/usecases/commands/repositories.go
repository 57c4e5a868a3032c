// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"purchase/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CourseRepoFactory provides access to catalog repository within a transaction.
	CourseRepoFactory interface {
		CourseRepository() ports.CourseRepository
	}

	// NotificationRepoFactory provides access to notification repository within a transaction.
	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	// PurchaseUoW manages transactions for the order save flow, which touches
	// orders, catalog price lookups, and the notification records a save
	// produces within one boundary.
	PurchaseUoW interface {
		TxManager
		OrderRepoFactory
		CourseRepoFactory
		NotificationRepoFactory
	}

	// PurchaseUoWFactory creates new purchase unit of work instances.
	PurchaseUoWFactory interface {
		Create() PurchaseUoW
	}

	// NotificationUoW manages transactions for notification-only operations.
	// Used by the dispatch flow, which never touches orders.
	NotificationUoW interface {
		TxManager
		NotificationRepoFactory
	}

	// NotificationUoWFactory creates new notification unit of work instances.
	NotificationUoWFactory interface {
		Create() NotificationUoW
	}
)
