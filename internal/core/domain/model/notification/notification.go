// Package notification contains the record describing a customer-facing
// message tied to one order's lifecycle event.
//
// Notifications are created by the order save flow at specific transition
// points and owned by the order that spawned them; many notifications may
// reference the same order and no uniqueness is enforced. Handing the record
// off to an actual delivery channel is a separate concern.
package notification

import (
	"errors"
	"time"

	"purchase/internal/core/domain/model/kernel"
	"purchase/internal/pkg/errs"
)

// ErrNotificationIsNotConstructed is returned when a Notification instance was
// not created through the NewNotification or RestoreNotification factory methods.
var ErrNotificationIsNotConstructed = errors.New(
	"Notification must be created via NewNotification or RestoreNotification constructor",
)

// Notification is a persisted record of a customer-facing message about an
// order. sentAt stays nil until the record is dispatched.
type Notification struct {
	id      kernel.UUID
	orderID kernel.UUID
	userID  kernel.UUID
	status  Status
	subject string
	content string
	sentAt  *time.Time

	isConstructed bool
}

// NewNotification creates a notification linked to an order and its buyer.
// Subject and content are required; the status must be a valid enum value.
func NewNotification(
	id, orderID, userID kernel.UUID,
	status Status,
	subject, content string,
) (*Notification, error) {
	notification := &Notification{
		isConstructed: true,
	}

	if err := errors.Join(
		notification.setID(id),
		notification.setOrderID(orderID),
		notification.setUserID(userID),
		notification.setStatus(status),
		notification.setSubject(subject),
		notification.setContent(content),
	); err != nil {
		return nil, err
	}

	return notification, nil
}

// RestoreNotification reconstructs a notification from persisted state.
// Used by persistence adapters only.
func RestoreNotification(
	id, orderID, userID kernel.UUID,
	status Status,
	subject, content string,
	sentAt *time.Time,
) (*Notification, error) {
	notification, err := NewNotification(id, orderID, userID, status, subject, content)
	if err != nil {
		return nil, err
	}

	notification.sentAt = sentAt
	return notification, nil
}

// Validate ensures the Notification instance was properly constructed.
func (n *Notification) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNotificationIsNotConstructed
	}

	return nil
}

// ID returns the notification's unique identifier.
func (n *Notification) ID() kernel.UUID {
	return n.id
}

// OrderID returns the identifier of the order that spawned this notification.
func (n *Notification) OrderID() kernel.UUID {
	return n.orderID
}

// UserID returns the identifier of the user the message is addressed to.
func (n *Notification) UserID() kernel.UUID {
	return n.userID
}

// Status returns the notification's delivery status.
func (n *Notification) Status() Status {
	return n.status
}

// Subject returns the message subject line.
func (n *Notification) Subject() string {
	return n.subject
}

// Content returns the message body.
func (n *Notification) Content() string {
	return n.content
}

// SentAt returns when the notification was dispatched, or nil if it has not
// been dispatched yet.
func (n *Notification) SentAt() *time.Time {
	return n.sentAt
}

// MarkSent records that the notification was handed off to the delivery
// channel. Set-once: subsequent calls leave both the status and the recorded
// time untouched.
func (n *Notification) MarkSent(now time.Time) {
	if n.sentAt != nil {
		return
	}

	t := now
	n.sentAt = &t
	n.status = Sent
}

func (n *Notification) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	n.id = id
	return nil
}

func (n *Notification) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order", err)
	}
	n.orderID = orderID
	return nil
}

func (n *Notification) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("user", err)
	}
	n.userID = userID
	return nil
}

func (n *Notification) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	n.status = status
	return nil
}

func (n *Notification) setSubject(subject string) error {
	if subject == "" {
		return errs.NewValueIsRequiredError("subject")
	}
	n.subject = subject
	return nil
}

func (n *Notification) setContent(content string) error {
	if content == "" {
		return errs.NewValueIsRequiredError("content")
	}
	n.content = content
	return nil
}
