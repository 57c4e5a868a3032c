package services

import (
	"context"
	"log/slog"
	"time"

	"purchase/internal/core/domain/model/notification"
	"purchase/internal/core/domain/model/order"
	"purchase/internal/core/ports"
)

// SavePipeline is the single transition every order mutation passes through
// before it is committed. Given the order being saved and an explicit
// description of how it changed relative to its persisted state, it applies,
// in this sequence:
//
//  1. lifecycle timestamping, only when the status actually changed
//  2. total price recomputation from the catalog, on every save
//  3. the notification trigger decision
//
// and returns the notification records the caller must persist in the same
// unit of work as the order.
//
// A catalog lookup failure does not fail the save: the unresolved references
// contribute zero to the total, and the failure is logged. This is an
// accepted weak-consistency tradeoff, not an oversight.
//
// The pipeline provides no concurrency control; two concurrent saves of the
// same order are a race whose outcome is undefined.
type SavePipeline struct {
	pricing PricingCalculator
	trigger NotificationTrigger
	logger  *slog.Logger
	now     func() time.Time
}

// NewSavePipeline creates a pipeline using the wall clock.
func NewSavePipeline(logger *slog.Logger) SavePipeline {
	return NewSavePipelineWithClock(logger, time.Now)
}

// NewSavePipelineWithClock creates a pipeline with an injected clock,
// so lifecycle timestamps become deterministic under test.
func NewSavePipelineWithClock(logger *slog.Logger, now func() time.Time) SavePipeline {
	return SavePipeline{
		pricing: NewPricingCalculator(),
		trigger: NewNotificationTrigger(),
		logger:  logger.With("component", "save_pipeline"),
		now:     now,
	}
}

// Apply runs the save sequence against the order, mutating its timestamps
// and total price in place, and returns the notifications to persist
// alongside it. The catalog is passed per call so the lookup runs inside
// the caller's transaction.
func (p SavePipeline) Apply(
	ctx context.Context,
	catalog ports.CatalogLookup,
	o *order.Order,
	change order.Change,
) ([]*notification.Notification, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	if change.StatusChanged {
		o.ApplyStatusTimestamps(p.now())
	}

	total, err := p.pricing.Calculate(ctx, catalog, o.CourseIDs())
	if err != nil {
		p.logger.WarnContext(ctx, "Catalog lookup failed, unresolved courses contribute zero",
			"order_id", o.ID().String(), "error", err)
		total = 0
	}

	if err = o.SetTotalPrice(total); err != nil {
		return nil, err
	}

	return p.trigger.Evaluate(o, change)
}
