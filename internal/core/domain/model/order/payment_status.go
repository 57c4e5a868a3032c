package order

import (
	"fmt"

	"purchase/internal/pkg/errs"
)

// PaymentStatus represents the settlement state of an order's payment.
// It is tracked independently of the order Status: a cancelled order may
// still carry a completed payment awaiting refund.
type PaymentStatus int

const (
	// PaymentUnknown represents an invalid or undefined payment status.
	PaymentUnknown PaymentStatus = iota

	// PaymentPending is the initial payment status for new orders.
	PaymentPending

	// PaymentCompleted indicates the payment settled successfully.
	PaymentCompleted

	// PaymentFailed indicates the payment attempt did not settle.
	PaymentFailed
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentUnknown:   "unknown",
		PaymentPending:   "pending",
		PaymentCompleted: "completed",
		PaymentFailed:    "failed",
	}
}

func getValidPaymentStatusStrings() map[PaymentStatus]string {
	//nolint:exhaustive // PaymentUnknown is intentionally excluded as it's invalid
	return map[PaymentStatus]string{
		PaymentPending:   "pending",
		PaymentCompleted: "completed",
		PaymentFailed:    "failed",
	}
}

// Validate checks enum membership. Valid payment statuses are pending,
// completed and failed.
func (s PaymentStatus) Validate() error {
	if _, ok := getValidPaymentStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"paymentStatus is invalid",
			fmt.Errorf("%d is not a valid payment status", s),
		)
	}
	return nil
}

// String returns the lowercase name of the payment status, or "unknown"
// for any invalid value. Implements fmt.Stringer.
func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// PaymentStatusFromString parses a payment status from its lowercase string form.
func PaymentStatusFromString(s string) (PaymentStatus, error) {
	for status, str := range getValidPaymentStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause(
		"paymentStatus is invalid",
		fmt.Errorf("%q is not a valid payment status", s),
	)
}
