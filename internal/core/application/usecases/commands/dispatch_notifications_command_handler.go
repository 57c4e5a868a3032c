package commands

import (
	"context"
	"log/slog"
	"time"
)

// DispatchNotificationsCommandHandler hands pending notification records off
// for delivery and marks them sent. Actual transport (mail, push) sits behind
// an outbound adapter in a later iteration; for now dispatch means flipping
// the record so it is not picked up again.
type DispatchNotificationsCommandHandler struct {
	uowFactory NotificationUoWFactory
	logger     *slog.Logger
	now        func() time.Time
}

// NewDispatchNotificationsCommandHandler creates a handler for notification dispatch.
func NewDispatchNotificationsCommandHandler(
	uowFactory NotificationUoWFactory,
	logger *slog.Logger,
) DispatchNotificationsCommandHandler {
	return DispatchNotificationsCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "dispatch_notifications"),
		now:        time.Now,
	}
}

// Handle processes the dispatch command.
// Loads every pending record, marks it sent, and persists the change in one
// transaction.
func (h *DispatchNotificationsCommandHandler) Handle(ctx context.Context, cmd DispatchNotificationsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	notificationRepo := uow.NotificationRepository()
	pending, err := notificationRepo.GetAllInPendingStatus(ctx)
	if err != nil {
		return err
	}

	if len(pending) == 0 {
		return uow.Commit(ctx)
	}

	sentAt := h.now()
	for _, n := range pending {
		n.MarkSent(sentAt)
		if err = notificationRepo.Update(ctx, n); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "Dispatched pending notifications", "count", len(pending))
	return nil
}
