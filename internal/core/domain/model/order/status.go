package order

import (
	"fmt"

	"purchase/internal/pkg/errs"
)

// Status represents the lifecycle state of a purchase order.
//
// Orders start as Pending and may move into one of two terminal states:
//
//	Pending ──┬──> Completed
//	          └──> Cancelled
//
// Entering a terminal state implies a one-time timestamp on the order
// (completedAt or cancelledAt). The status field itself is not locked after
// a terminal state is reached; transition legality beyond the timestamp side
// effects is deliberately not enforced at this layer.
//
// Status is a value object that validates enum membership and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	// Orders in this status are being handled and await settlement.
	Pending

	// Completed indicates the purchase went through. Entering this status
	// sets the order's completedAt timestamp exactly once.
	Completed

	// Cancelled indicates the purchase was called off. Entering this status
	// sets the order's cancelledAt timestamp exactly once.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Completed: "completed",
		Cancelled: "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Completed: "completed",
		Cancelled: "cancelled",
	}
}

// Validate checks enum membership. Valid statuses are pending, completed
// and cancelled; Unknown (0) and any other value are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase name of the status, or "unknown" for any
// invalid value. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status carries a one-time timestamp side
// effect when entered (completed or cancelled).
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// StatusFromString parses a status from its lowercase string form, as stored
// in the database or received from external callers.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", s),
	)
}
