package notification

import (
	"fmt"

	"purchase/internal/pkg/errs"
)

// Status represents the delivery state of a notification record.
//
// The order save flow only ever creates notifications in Pending or Cancelled
// status; Sent is reached when the dispatch side hands the record off to the
// customer-facing channel.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending marks a notification awaiting dispatch.
	Pending

	// Sent marks a notification handed off to the delivery channel.
	Sent

	// Cancelled marks a notification created for an order cancellation.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Sent:      "sent",
		Cancelled: "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Sent:      "sent",
		Cancelled: "cancelled",
	}
}

// Validate checks enum membership.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"notification status is invalid",
			fmt.Errorf("%d is not a valid status", s),
		)
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
