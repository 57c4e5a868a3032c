package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"purchase/internal/core/domain/model/kernel"
	"purchase/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods. This ensures all
	// orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrCoursesAreRequired is returned when an order is created without
	// referencing at least one course.
	ErrCoursesAreRequired = errors.New("you must purchase at least one course")
)

// Order represents a course purchase in the system. It is the aggregate root
// that manages the purchase lifecycle from creation through completion or
// cancellation.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a valid buyer reference
//   - Must reference at least one course
//   - Must have a non-empty payment method
//   - totalPrice is a snapshot of the referenced courses' prices, recomputed
//     on every save and never negative
//   - completedAt / cancelledAt are set exactly once, the first time the
//     status enters the corresponding terminal state, and are never cleared
//   - Can only be created through NewOrder or RestoreOrder
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods. The buyer and course references are
// fixed at creation; lifecycle logic mutates status, timestamps and the
// derived total only.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// buyerID references the purchasing user
	buyerID kernel.UUID

	// courseIDs references the purchased courses (at least one)
	courseIDs []kernel.UUID

	// status represents the current state in the order lifecycle
	status Status

	// paymentMethod is the caller-supplied payment identifier
	paymentMethod string

	// paymentStatus tracks settlement independently of status
	paymentStatus PaymentStatus

	// purchasedAt records when the order was placed
	purchasedAt time.Time

	// completedAt is set once, the first time status becomes Completed
	completedAt *time.Time

	// cancelledAt is set once, the first time status becomes Cancelled
	cancelledAt *time.Time

	// notes is optional free text
	notes string

	// totalPrice is derived from course prices at save time
	totalPrice float64

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order with validation. This is the only way to create
// a valid order for a fresh purchase; orders loaded from persistence go
// through RestoreOrder instead.
//
// The order starts with Pending status, PaymentPending payment status, and
// purchasedAt set to the current time. Optional fields (notes, an overridden
// status or payment status) are applied afterwards through the setters.
//
// Returns a validation error naming the offending field if the buyer is not
// set, no courses are referenced, any course reference is invalid, or the
// payment method is empty. All field errors are joined, so a caller sees
// every failing field at once.
func NewOrder(id, buyerID kernel.UUID, courseIDs []kernel.UUID, paymentMethod string) (*Order, error) {
	order := &Order{
		status:        Pending,
		paymentStatus: PaymentPending,
		purchasedAt:   time.Now(),
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setBuyerID(buyerID),
		order.setCourseIDs(courseIDs),
		order.setPaymentMethod(paymentMethod),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an order from persisted state. All fields are
// validated the same way NewOrder validates them, plus enum membership of the
// stored status values. Used by persistence adapters only.
func RestoreOrder(
	id, buyerID kernel.UUID,
	courseIDs []kernel.UUID,
	status Status,
	paymentMethod string,
	paymentStatus PaymentStatus,
	purchasedAt time.Time,
	completedAt, cancelledAt *time.Time,
	notes string,
	totalPrice float64,
) (*Order, error) {
	order := &Order{
		purchasedAt:   purchasedAt,
		completedAt:   completedAt,
		cancelledAt:   cancelledAt,
		notes:         notes,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setBuyerID(buyerID),
		order.setCourseIDs(courseIDs),
		order.setPaymentMethod(paymentMethod),
		order.ChangeStatus(status),
		order.ChangePaymentStatus(paymentStatus),
		order.SetTotalPrice(totalPrice),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly
// instantiating the struct, and should be called when aggregates cross the
// persistence boundary.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// BuyerID returns the purchasing user's identifier.
func (o *Order) BuyerID() kernel.UUID {
	return o.buyerID
}

// CourseIDs returns a copy of the referenced course identifiers.
func (o *Order) CourseIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(o.courseIDs))
	copy(ids, o.courseIDs)
	return ids
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// PaymentMethod returns the payment method identifier.
func (o *Order) PaymentMethod() string {
	return o.paymentMethod
}

// PaymentStatus returns the current payment settlement status.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// PurchasedAt returns when the order was placed.
func (o *Order) PurchasedAt() time.Time {
	return o.purchasedAt
}

// CompletedAt returns when the order first entered Completed status,
// or nil if it never has.
func (o *Order) CompletedAt() *time.Time {
	return o.completedAt
}

// CancelledAt returns when the order first entered Cancelled status,
// or nil if it never has.
func (o *Order) CancelledAt() *time.Time {
	return o.cancelledAt
}

// Notes returns the optional free-text notes.
func (o *Order) Notes() string {
	return o.notes
}

// TotalPrice returns the derived total as of the most recent save.
func (o *Order) TotalPrice() float64 {
	return o.totalPrice
}

// ChangeStatus sets the order status after validating enum membership.
//
// Changing the status has no immediate timestamp side effect: terminal-state
// timestamps are applied by the save pipeline, which knows whether the status
// actually differs from the previously persisted value. Transitions between
// terminal states are not rejected at this layer.
func (o *Order) ChangeStatus(next Status) error {
	if err := next.Validate(); err != nil {
		return err
	}

	o.status = next
	return nil
}

// ChangePaymentStatus sets the payment status after validating enum membership.
func (o *Order) ChangePaymentStatus(next PaymentStatus) error {
	if err := next.Validate(); err != nil {
		return err
	}

	o.paymentStatus = next
	return nil
}

// ApplyStatusTimestamps records the one-time timestamp implied by the current
// status. The save pipeline calls this only when the status changed relative
// to the previously persisted value. Idempotent: an order that already
// carries the timestamp for its terminal state is left untouched, so
// re-entering completed or cancelled never moves the recorded time.
func (o *Order) ApplyStatusTimestamps(now time.Time) {
	switch o.status {
	case Completed:
		if o.completedAt == nil {
			t := now
			o.completedAt = &t
		}
	case Cancelled:
		if o.cancelledAt == nil {
			t := now
			o.cancelledAt = &t
		}
	case Unknown, Pending:
		// no timestamp side effects outside terminal states
	}
}

// SetTotalPrice stores the derived total computed by the pricing calculator.
// The total must be non-negative.
func (o *Order) SetTotalPrice(total float64) error {
	if total < 0 {
		return errs.NewValueIsInvalidErrorWithCause("totalPrice", fmt.Errorf("%v is not greater or equal to 0", total))
	}

	o.totalPrice = total
	return nil
}

// SetNotes stores optional free-text notes, trimmed of surrounding whitespace.
func (o *Order) SetNotes(notes string) {
	o.notes = strings.TrimSpace(notes)
}

// SetPurchasedAt overrides the purchase timestamp, e.g. when importing
// historical orders. Zero times are rejected.
func (o *Order) SetPurchasedAt(t time.Time) error {
	if t.IsZero() {
		return errs.NewValueIsRequiredError("purchasedAt")
	}

	o.purchasedAt = t
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setBuyerID validates and sets the buyer reference.
// This is a private method used only during construction.
func (o *Order) setBuyerID(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("buyer", err)
	}
	o.buyerID = buyerID
	return nil
}

// setCourseIDs validates and sets the course references. At least one course
// must be referenced and each reference must be a constructed UUID.
// This is a private method used only during construction.
func (o *Order) setCourseIDs(courseIDs []kernel.UUID) error {
	if len(courseIDs) == 0 {
		return errs.NewValueIsRequiredErrorWithCause("courses", ErrCoursesAreRequired)
	}

	for _, courseID := range courseIDs {
		if err := courseID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("courses", err)
		}
	}

	o.courseIDs = make([]kernel.UUID, len(courseIDs))
	copy(o.courseIDs, courseIDs)
	return nil
}

// setPaymentMethod validates and sets the payment method.
// This is a private method used only during construction.
func (o *Order) setPaymentMethod(paymentMethod string) error {
	if strings.TrimSpace(paymentMethod) == "" {
		return errs.NewValueIsRequiredError("paymentMethod")
	}
	o.paymentMethod = paymentMethod
	return nil
}
