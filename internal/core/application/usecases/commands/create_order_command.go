package commands

import (
	"errors"
	"strings"

	"purchase/internal/core/domain/model/kernel"
	"purchase/internal/core/domain/model/order"
	"purchase/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrCoursesAreRequired      = errors.New("at least one course is required")
	ErrPaymentMethodIsRequired = errors.New("payment method is required")
)

// CreateOrderCommand represents a request to place a new purchase order.
// Encapsulates the buyer, the courses being bought, and how they are paid for.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, buyerID, courseIDs, "card",
//	    order.Pending, order.PaymentPending, "")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, pipeline)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	buyerID       kernel.UUID
	courseIDs     []kernel.UUID
	paymentMethod string
	status        order.Status
	paymentStatus order.PaymentStatus
	notes         string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new purchase order.
// Validates that identifiers are valid, at least one course is referenced,
// a payment method is given, and both lifecycle and settlement statuses are
// known enum members. Notes are optional; pass order.Pending and
// order.PaymentPending when the caller has no lifecycle or settlement
// information yet.
func NewCreateOrderCommand(
	orderID, buyerID kernel.UUID,
	courseIDs []kernel.UUID,
	paymentMethod string,
	status order.Status,
	paymentStatus order.PaymentStatus,
	notes string,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setBuyerID(buyerID),
		orderCommand.setCourseIDs(courseIDs),
		orderCommand.setPaymentMethod(paymentMethod),
		orderCommand.setStatus(status),
		orderCommand.setPaymentStatus(paymentStatus),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// BuyerID returns the identifier of the user placing the order.
func (c CreateOrderCommand) BuyerID() kernel.UUID {
	return c.buyerID
}

// CourseIDs returns the identifiers of the courses being purchased.
func (c CreateOrderCommand) CourseIDs() []kernel.UUID {
	return c.courseIDs
}

// PaymentMethod returns the payment method chosen by the buyer.
func (c CreateOrderCommand) PaymentMethod() string {
	return c.paymentMethod
}

// Status returns the lifecycle status the order starts in.
func (c CreateOrderCommand) Status() order.Status {
	return c.status
}

// PaymentStatus returns the settlement state the order starts in.
func (c CreateOrderCommand) PaymentStatus() order.PaymentStatus {
	return c.paymentStatus
}

// Notes returns optional free-form notes attached to the order.
func (c CreateOrderCommand) Notes() string {
	return c.notes
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setBuyerID(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return err
	}

	c.buyerID = buyerID
	return nil
}

func (c *CreateOrderCommand) setCourseIDs(courseIDs []kernel.UUID) error {
	if len(courseIDs) == 0 {
		return ErrCoursesAreRequired
	}

	for _, id := range courseIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	c.courseIDs = courseIDs
	return nil
}

func (c *CreateOrderCommand) setPaymentMethod(paymentMethod string) error {
	if strings.TrimSpace(paymentMethod) == "" {
		return ErrPaymentMethodIsRequired
	}

	c.paymentMethod = paymentMethod
	return nil
}

func (c *CreateOrderCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}

func (c *CreateOrderCommand) setPaymentStatus(paymentStatus order.PaymentStatus) error {
	if err := paymentStatus.Validate(); err != nil {
		return err
	}

	c.paymentStatus = paymentStatus
	return nil
}
