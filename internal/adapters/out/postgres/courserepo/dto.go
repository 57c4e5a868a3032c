// Package courserepo provides data transfer objects and mapping functions for
// catalog persistence. Besides the usual aggregate storage it implements the
// price lookup the order save flow depends on.
package courserepo

import (
	"purchase/internal/core/domain/model/course"
	"purchase/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// CourseDTO represents the database structure for persisting catalog entries.
// List-valued attributes are stored as text[] columns.
type CourseDTO struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Title              string         `gorm:"type:varchar(255);not null"`
	Description        string         `gorm:"type:text;not null"`
	Subject            string         `gorm:"type:varchar(255);not null"`
	GradeLevel         string         `gorm:"type:varchar(64);not null"`
	Price              float64        `gorm:"type:numeric;not null"`
	Content            string         `gorm:"type:text;not null"`
	LearningObjectives pq.StringArray `gorm:"type:text[]"`
	Materials          pq.StringArray `gorm:"type:text[]"`
	Duration           string         `gorm:"type:varchar(64);not null"`
	Tags               pq.StringArray `gorm:"type:text[]"`
	Rating             float64        `gorm:"type:numeric;not null"`
	Weeks              int            `gorm:"type:int;not null"`
}

// TableName specifies the database table name for course entities.
// Overrides GORM's default naming convention to use "courses".
func (CourseDTO) TableName() string {
	return "courses"
}

// fromDomain converts a course domain entity to its database representation.
func fromDomain(course *course.Course) CourseDTO {
	return CourseDTO{
		ID:                 course.ID().Bytes(),
		Title:              course.Title(),
		Description:        course.Description(),
		Subject:            course.Subject(),
		GradeLevel:         course.GradeLevel(),
		Price:              course.Price(),
		Content:            course.Content(),
		LearningObjectives: course.LearningObjectives(),
		Materials:          course.Materials(),
		Duration:           course.Duration(),
		Tags:               course.Tags(),
		Rating:             course.Rating(),
		Weeks:              course.Weeks(),
	}
}

// toDomain converts a database DTO to a course domain entity using RestoreCourse.
func toDomain(dto CourseDTO) (*course.Course, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return course.RestoreCourse(
		id,
		dto.Title,
		dto.Description,
		dto.Subject,
		dto.GradeLevel,
		dto.Price,
		dto.Content,
		dto.LearningObjectives,
		dto.Materials,
		dto.Duration,
		dto.Tags,
		dto.Rating,
		dto.Weeks,
	)
}
