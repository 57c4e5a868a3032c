package commands

import (
	"context"

	"purchase/internal/core/domain/model/order"
	"purchase/internal/core/domain/services"
)

// CreateOrderCommandHandler handles the business logic for order placement.
// New orders start in pending status; the save pipeline prices them against
// the catalog and records the pending notification in the same transaction.
type CreateOrderCommandHandler struct {
	uowFactory PurchaseUoWFactory
	pipeline   services.SavePipeline
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires a PurchaseUoWFactory for transactional persistence and the save
// pipeline shared by every order mutation.
func NewCreateOrderCommandHandler(
	uowFactory PurchaseUoWFactory,
	pipeline services.SavePipeline,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		pipeline:   pipeline,
	}
}

// Handle processes the order placement command.
// Builds the aggregate, runs it through the save pipeline, and persists the
// order together with any notification the pipeline produced.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.BuyerID(), cmd.CourseIDs(), cmd.PaymentMethod())
	if err != nil {
		return err
	}
	if err = newOrder.ChangeStatus(cmd.Status()); err != nil {
		return err
	}
	if err = newOrder.ChangePaymentStatus(cmd.PaymentStatus()); err != nil {
		return err
	}
	newOrder.SetNotes(cmd.Notes())

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	notifications, err := h.pipeline.Apply(ctx, uow.CourseRepository(), newOrder, order.Creation())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
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
