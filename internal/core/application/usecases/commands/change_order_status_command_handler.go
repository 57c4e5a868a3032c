package commands

import (
	"context"

	"purchase/internal/core/domain/model/order"
	"purchase/internal/core/domain/services"
)

// ChangeOrderStatusCommandHandler handles lifecycle transitions of persisted
// orders. The handler compares the stored status with the requested one and
// feeds that difference through the save pipeline, so timestamps are only
// stamped when the status actually moved and cancellations produce their
// refund notification.
type ChangeOrderStatusCommandHandler struct {
	uowFactory PurchaseUoWFactory
	pipeline   services.SavePipeline
}

// NewChangeOrderStatusCommandHandler creates a handler for status transitions.
func NewChangeOrderStatusCommandHandler(
	uowFactory PurchaseUoWFactory,
	pipeline services.SavePipeline,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		pipeline:   pipeline,
	}
}

// Handle processes the status change command.
// Loads the order, applies the transition, and persists the order along with
// any notification the transition produced.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
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

	orderRepo := uow.OrderRepository()
	existingOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	previous := existingOrder.Status()
	if err = existingOrder.ChangeStatus(cmd.Status()); err != nil {
		return err
	}

	notifications, err := h.pipeline.Apply(ctx, uow.CourseRepository(), existingOrder,
		order.ChangeSince(previous, existingOrder.Status()))
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, existingOrder); err != nil {
		return err
	}

	notificationRepo := uow.NotificationRepository()
	for _, n := range notifications {
		if err = notificationRepo.Add(ctx, n); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
