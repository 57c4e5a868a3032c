package courserepo

import (
	"context"
	"errors"

	"purchase/internal/core/domain/model/course"
	"purchase/internal/core/domain/model/kernel"
	"purchase/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCourseRepository implements CourseRepository using GORM.
type GormCourseRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCourseRepository creates a new GORM course repository.
func NewGormCourseRepository(db *gorm.DB, tracker aggregateTracker) *GormCourseRepository {
	return &GormCourseRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new course to the database.
func (r *GormCourseRepository) Add(ctx context.Context, aggregate *course.Course) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a course by ID.
func (r *GormCourseRepository) Get(ctx context.Context, id kernel.UUID) (*course.Course, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CourseDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("course", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// priceRow is the projection used by LookupPrices; the full entity is not
// needed to resolve an order total.
type priceRow struct {
	ID    uuid.UUID
	Price float64
}

// LookupPrices resolves the given identifiers to their current unit prices.
// Identifiers without a matching row are absent from the result.
func (r *GormCourseRepository) LookupPrices(ctx context.Context, ids []kernel.UUID) (map[kernel.UUID]float64, error) {
	prices := make(map[kernel.UUID]float64, len(ids))
	if len(ids) == 0 {
		return prices, nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var rows []priceRow
	err := r.db.WithContext(ctx).Model(&CourseDTO{}).
		Select("id", "price").
		Where("id IN ?", raw).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		id, rowErr := kernel.UUIDFromBytes(row.ID[:])
		if rowErr != nil {
			return nil, rowErr
		}
		prices[id] = row.Price
	}

	return prices, nil
}
