package commands

import (
	"errors"

	"purchase/internal/core/domain/model/kernel"
	"purchase/internal/core/domain/model/order"
	"purchase/internal/pkg/guard"
)

var (
	ErrImportOrdersCommandIsNotConstructed = errors.New(
		"ImportOrdersCommand must be created via NewImportOrdersCommand constructor",
	)
	ErrImportOrderItemIsNotConstructed = errors.New(
		"ImportOrderItem must be created via NewImportOrderItem constructor",
	)
	ErrItemsAreRequired = errors.New("at least one order item is required")
)

// ImportOrderItem describes one order inside a bulk import request.
// Unlike interactive placement, imported orders may arrive already in a
// non-pending status, carried over from the source system.
type ImportOrderItem struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	buyerID       kernel.UUID
	courseIDs     []kernel.UUID
	paymentMethod string
	status        order.Status
	notes         string

	guard guard.ConstructorGuard
}

// NewImportOrderItem creates one entry of a bulk import.
func NewImportOrderItem(
	orderID, buyerID kernel.UUID,
	courseIDs []kernel.UUID,
	paymentMethod string,
	status order.Status,
	notes string,
) (ImportOrderItem, error) {
	item := ImportOrderItem{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setOrderID(orderID),
		item.setBuyerID(buyerID),
		item.setCourseIDs(courseIDs),
		item.setPaymentMethod(paymentMethod),
		item.setStatus(status),
	); err != nil {
		return ImportOrderItem{}, err
	}

	return item, nil
}

// Validate ensures the item was created through the constructor.
func (i ImportOrderItem) Validate() error {
	return i.guard.Validate(ErrImportOrderItemIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (i ImportOrderItem) OrderID() kernel.UUID {
	return i.orderID
}

// BuyerID returns the identifier of the user who placed the order.
func (i ImportOrderItem) BuyerID() kernel.UUID {
	return i.buyerID
}

// CourseIDs returns the identifiers of the purchased courses.
func (i ImportOrderItem) CourseIDs() []kernel.UUID {
	return i.courseIDs
}

// PaymentMethod returns the payment method recorded for the order.
func (i ImportOrderItem) PaymentMethod() string {
	return i.paymentMethod
}

// Status returns the lifecycle status the imported order arrives in.
func (i ImportOrderItem) Status() order.Status {
	return i.status
}

// Notes returns optional free-form notes attached to the order.
func (i ImportOrderItem) Notes() string {
	return i.notes
}

func (i *ImportOrderItem) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	i.orderID = orderID
	return nil
}

func (i *ImportOrderItem) setBuyerID(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return err
	}

	i.buyerID = buyerID
	return nil
}

func (i *ImportOrderItem) setCourseIDs(courseIDs []kernel.UUID) error {
	if len(courseIDs) == 0 {
		return ErrCoursesAreRequired
	}

	for _, id := range courseIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	i.courseIDs = courseIDs
	return nil
}

func (i *ImportOrderItem) setPaymentMethod(paymentMethod string) error {
	if paymentMethod == "" {
		return ErrPaymentMethodIsRequired
	}

	i.paymentMethod = paymentMethod
	return nil
}

func (i *ImportOrderItem) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	i.status = status
	return nil
}

// ImportOrdersCommand represents a request to insert a batch of orders in one
// operation, typically during data migration from another system.
type ImportOrdersCommand struct { //nolint:recvcheck //using for validation
	items []ImportOrderItem

	guard guard.ConstructorGuard
}

// NewImportOrdersCommand creates a command to bulk insert orders.
// Every item must itself be constructed through NewImportOrderItem.
func NewImportOrdersCommand(items []ImportOrderItem) (ImportOrdersCommand, error) {
	importCommand := ImportOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := importCommand.setItems(items); err != nil {
		return ImportOrdersCommand{}, err
	}

	return importCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrImportOrdersCommandIsNotConstructed if validation fails.
func (c ImportOrdersCommand) Validate() error {
	return c.guard.Validate(ErrImportOrdersCommandIsNotConstructed)
}

// Items returns the orders to import.
func (c ImportOrdersCommand) Items() []ImportOrderItem {
	return c.items
}

func (c *ImportOrdersCommand) setItems(items []ImportOrderItem) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = items
	return nil
}
