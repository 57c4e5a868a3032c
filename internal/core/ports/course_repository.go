package ports

import (
	"context"

	"purchase/internal/core/domain/model/course"
	"purchase/internal/core/domain/model/kernel"
)

// CatalogLookup resolves course references to their current unit prices.
// The order save flow depends on this port but does not own course data.
type CatalogLookup interface {
	// LookupPrices returns the current unit price for each resolvable
	// identifier. Identifiers that do not resolve are simply absent from
	// the result; they are not an error.
	LookupPrices(ctx context.Context, ids []kernel.UUID) (map[kernel.UUID]float64, error)
}

// CourseRepository defines the persistence contract for catalog entries.
// It embeds CatalogLookup so that a repository bound to a transaction can
// serve price resolution within the same unit of work.
type CourseRepository interface {
	CatalogLookup

	// Add persists a new course to storage.
	Add(ctx context.Context, aggregate *course.Course) error

	// Get retrieves a course by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*course.Course, error)
}
