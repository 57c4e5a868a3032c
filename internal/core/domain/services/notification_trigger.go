package services

import (
	"fmt"

	"purchase/internal/core/domain/model/kernel"
	"purchase/internal/core/domain/model/notification"
	"purchase/internal/core/domain/model/order"
)

const (
	pendingSubject   = "Order Pending"
	pendingContent   = "Order %s is being handled"
	cancelledSubject = "Order Cancelled"
	cancelledContent = "Order %s has been cancelled you should receive a full refund in the coming days"
)

// NotificationTrigger decides, based on how an order changed during a save,
// whether a customer-facing notification record must be created.
//
// Two situations produce a notification:
//   - a newly created order in pending status gets a pending notification
//     telling the buyer the order is being handled
//   - an update that leaves the order cancelled gets a cancelled notification
//     announcing the refund
//
// Every other transition, including completion and the re-save that follows
// a bulk import, produces none.
type NotificationTrigger struct{}

// NewNotificationTrigger creates a NotificationTrigger.
func NewNotificationTrigger() NotificationTrigger {
	return NotificationTrigger{}
}

// Evaluate returns the notification records implied by saving the order with
// the given change descriptor, linked to the order and its buyer. The slice
// is empty when the transition is silent.
func (NotificationTrigger) Evaluate(o *order.Order, change order.Change) ([]*notification.Notification, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	if change.IsNew && o.Status() == order.Pending {
		n, err := notification.NewNotification(
			kernel.NewUUID(),
			o.ID(),
			o.BuyerID(),
			notification.Pending,
			pendingSubject,
			fmt.Sprintf(pendingContent, o.ID()),
		)
		if err != nil {
			return nil, err
		}
		return []*notification.Notification{n}, nil
	}

	if !change.IsNew && o.Status() == order.Cancelled {
		n, err := notification.NewNotification(
			kernel.NewUUID(),
			o.ID(),
			o.BuyerID(),
			notification.Cancelled,
			cancelledSubject,
			fmt.Sprintf(cancelledContent, o.ID()),
		)
		if err != nil {
			return nil, err
		}
		return []*notification.Notification{n}, nil
	}

	return nil, nil
}
