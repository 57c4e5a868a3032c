package commands

import (
	"context"
	"log/slog"

	"purchase/internal/core/domain/model/order"
	"purchase/internal/core/domain/services"
)

// ImportOrdersCommandHandler handles bulk insertion of orders.
// The batch is inserted first, then every order is re-run through the save
// pipeline individually, the same one interactive saves use, so imported
// orders get priced and cancelled ones produce their refund notification.
// A failure in one order's post processing is logged and does not stop the
// rest of the batch.
type ImportOrdersCommandHandler struct {
	uowFactory PurchaseUoWFactory
	pipeline   services.SavePipeline
	logger     *slog.Logger
}

// NewImportOrdersCommandHandler creates a handler for bulk order imports.
func NewImportOrdersCommandHandler(
	uowFactory PurchaseUoWFactory,
	pipeline services.SavePipeline,
	logger *slog.Logger,
) ImportOrdersCommandHandler {
	return ImportOrdersCommandHandler{
		uowFactory: uowFactory,
		pipeline:   pipeline,
		logger:     logger.With("component", "import_orders"),
	}
}

// Handle processes the bulk import command.
// Orders that fail to build are skipped with a log entry; the remainder is
// inserted in one batch and then post processed order by order.
func (h *ImportOrdersCommandHandler) Handle(ctx context.Context, cmd ImportOrdersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	orders := make([]*order.Order, 0, len(cmd.Items()))
	for _, item := range cmd.Items() {
		imported, err := h.buildOrder(item)
		if err != nil {
			h.logger.WarnContext(ctx, "Skipping invalid order in import batch",
				"order_id", item.OrderID().String(), "error", err)
			continue
		}
		orders = append(orders, imported)
	}

	if len(orders) == 0 {
		return nil
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	if err := orderRepo.AddAll(ctx, orders); err != nil {
		return err
	}

	catalog := uow.CourseRepository()
	notificationRepo := uow.NotificationRepository()
	for _, imported := range orders {
		// the post-insert save treats the order as already persisted, so
		// pending orders do not get a second placement notification
		change := order.ChangeSince(imported.Status(), imported.Status())
		notifications, err := h.pipeline.Apply(ctx, catalog, imported, change)
		if err != nil {
			h.logger.WarnContext(ctx, "Post processing failed for imported order",
				"order_id", imported.ID().String(), "error", err)
			continue
		}

		if err = orderRepo.Update(ctx, imported); err != nil {
			h.logger.WarnContext(ctx, "Failed to persist post processed order",
				"order_id", imported.ID().String(), "error", err)
			continue
		}

		for _, n := range notifications {
			if err = notificationRepo.Add(ctx, n); err != nil {
				h.logger.WarnContext(ctx, "Failed to persist notification for imported order",
					"order_id", imported.ID().String(), "error", err)
			}
		}
	}

	return uow.Commit(ctx)
}

func (h *ImportOrdersCommandHandler) buildOrder(item ImportOrderItem) (*order.Order, error) {
	imported, err := order.NewOrder(item.OrderID(), item.BuyerID(), item.CourseIDs(), item.PaymentMethod())
	if err != nil {
		return nil, err
	}

	imported.SetNotes(item.Notes())
	if err = imported.ChangeStatus(item.Status()); err != nil {
		return nil, err
	}

	return imported, nil
}
