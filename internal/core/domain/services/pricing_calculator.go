package services

import (
	"context"

	"purchase/internal/core/domain/model/kernel"
	"purchase/internal/core/ports"
)

// PricingCalculator derives an order's total price from its referenced
// courses at save time.
//
// Resolution is deliberately lenient: course references that the catalog
// cannot resolve contribute zero to the sum instead of failing the save,
// mirroring an aggregation-style lookup that only sums matched records.
// A reference appearing more than once is counted once, since the catalog
// resolves each identifier to a single entry.
//
// The calculator has no side effects; the caller persists the returned
// value into the order.
type PricingCalculator struct{}

// NewPricingCalculator creates a PricingCalculator.
func NewPricingCalculator() PricingCalculator {
	return PricingCalculator{}
}

// Calculate resolves the given course references through the catalog and
// returns the sum of the resolved unit prices. The result is zero when no
// references resolve or the list is empty.
//
// When the lookup itself fails, Calculate returns a zero total together with
// the lookup error; the caller decides whether to surface it or to accept
// the zero-contribution semantics and log it.
func (PricingCalculator) Calculate(
	ctx context.Context,
	catalog ports.CatalogLookup,
	courseIDs []kernel.UUID,
) (float64, error) {
	if len(courseIDs) == 0 {
		return 0, nil
	}

	prices, err := catalog.LookupPrices(ctx, courseIDs)
	if err != nil {
		return 0, err
	}

	var total float64
	for _, price := range prices {
		total += price
	}

	return total, nil
}
