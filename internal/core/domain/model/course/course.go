// Package course contains the catalog entity that purchase orders reference.
// Courses carry the unit price that the pricing calculation snapshots into an
// order's total; they own no lifecycle logic of their own.
package course

import (
	"errors"
	"fmt"
	"strings"

	"purchase/internal/core/domain/model/kernel"
	"purchase/internal/pkg/errs"
)

// ErrCourseIsNotConstructed is returned when a Course instance was not created
// through the NewCourse factory method.
var ErrCourseIsNotConstructed = errors.New("Course must be created via NewCourse constructor")

const (
	minRating = 0
	maxRating = 5
	minWeeks  = 1
	maxWeeks  = 52
)

// Course is a catalog entry that an order can reference. The price is the
// only field the order lifecycle reads; the rest describes the course to
// buyers and is plain data.
type Course struct {
	id                 kernel.UUID
	title              string
	description        string
	subject            string
	gradeLevel         string
	price              float64
	content            string
	learningObjectives []string
	materials          []string
	duration           string
	tags               []string
	rating             float64
	weeks              int

	isConstructed bool
}

// NewCourse creates a catalog entry with validation. Title, description,
// subject, grade level, content and duration are required; price must be
// non-negative; rating is bounded 0..5 and weeks 1..52.
func NewCourse(
	id kernel.UUID,
	title, description, subject, gradeLevel string,
	price float64,
	content, duration string,
	weeks int,
) (*Course, error) {
	course := &Course{
		isConstructed: true,
	}

	if err := errors.Join(
		course.setID(id),
		course.setTitle(title),
		course.setDescription(description),
		course.setSubject(subject),
		course.setGradeLevel(gradeLevel),
		course.setPrice(price),
		course.setContent(content),
		course.setDuration(duration),
		course.setWeeks(weeks),
	); err != nil {
		return nil, err
	}

	return course, nil
}

// RestoreCourse reconstructs a course from persisted state, including the
// optional list fields and rating. Used by persistence adapters only.
func RestoreCourse(
	id kernel.UUID,
	title, description, subject, gradeLevel string,
	price float64,
	content string,
	learningObjectives, materials []string,
	duration string,
	tags []string,
	rating float64,
	weeks int,
) (*Course, error) {
	course, err := NewCourse(id, title, description, subject, gradeLevel, price, content, duration, weeks)
	if err != nil {
		return nil, err
	}

	course.SetLearningObjectives(learningObjectives)
	course.SetMaterials(materials)
	course.SetTags(tags)
	if err = course.SetRating(rating); err != nil {
		return nil, err
	}

	return course, nil
}

// Validate ensures the Course instance was properly constructed.
func (c *Course) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCourseIsNotConstructed
	}

	return nil
}

// ID returns the course's unique identifier.
func (c *Course) ID() kernel.UUID {
	return c.id
}

// Title returns the course title.
func (c *Course) Title() string {
	return c.title
}

// Description returns the course description.
func (c *Course) Description() string {
	return c.description
}

// Subject returns the subject area.
func (c *Course) Subject() string {
	return c.subject
}

// GradeLevel returns the intended grade level.
func (c *Course) GradeLevel() string {
	return c.gradeLevel
}

// Price returns the current unit price.
func (c *Course) Price() float64 {
	return c.price
}

// Content returns the course content body.
func (c *Course) Content() string {
	return c.content
}

// LearningObjectives returns the optional learning objectives.
func (c *Course) LearningObjectives() []string {
	return c.learningObjectives
}

// Materials returns the optional materials list.
func (c *Course) Materials() []string {
	return c.materials
}

// Duration returns the human-readable duration description.
func (c *Course) Duration() string {
	return c.duration
}

// Tags returns the optional tags.
func (c *Course) Tags() []string {
	return c.tags
}

// Rating returns the average rating, 0..5.
func (c *Course) Rating() float64 {
	return c.rating
}

// Weeks returns the course length in weeks, 1..52.
func (c *Course) Weeks() int {
	return c.weeks
}

// SetRating stores the average rating, rejecting values outside 0..5.
func (c *Course) SetRating(rating float64) error {
	if rating < minRating || rating > maxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, minRating, maxRating)
	}
	c.rating = rating
	return nil
}

// SetLearningObjectives stores the learning objectives, trimming each entry.
func (c *Course) SetLearningObjectives(objectives []string) {
	c.learningObjectives = trimAll(objectives)
}

// SetMaterials stores the materials list, trimming each entry.
func (c *Course) SetMaterials(materials []string) {
	c.materials = trimAll(materials)
}

// SetTags stores the tags, trimming each entry.
func (c *Course) SetTags(tags []string) {
	c.tags = trimAll(tags)
}

func trimAll(values []string) []string {
	if values == nil {
		return nil
	}
	trimmed := make([]string, 0, len(values))
	for _, v := range values {
		trimmed = append(trimmed, strings.TrimSpace(v))
	}
	return trimmed
}

func (c *Course) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Course) setTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	c.title = title
	return nil
}

func (c *Course) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	c.description = description
	return nil
}

func (c *Course) setSubject(subject string) error {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return errs.NewValueIsRequiredError("subject")
	}
	c.subject = subject
	return nil
}

func (c *Course) setGradeLevel(gradeLevel string) error {
	gradeLevel = strings.TrimSpace(gradeLevel)
	if gradeLevel == "" {
		return errs.NewValueIsRequiredError("gradeLevel")
	}
	c.gradeLevel = gradeLevel
	return nil
}

func (c *Course) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%v is not greater or equal to 0", price))
	}
	c.price = price
	return nil
}

func (c *Course) setContent(content string) error {
	if content == "" {
		return errs.NewValueIsRequiredError("content")
	}
	c.content = content
	return nil
}

func (c *Course) setDuration(duration string) error {
	if duration == "" {
		return errs.NewValueIsRequiredError("duration")
	}
	c.duration = duration
	return nil
}

func (c *Course) setWeeks(weeks int) error {
	if weeks < minWeeks || weeks > maxWeeks {
		return errs.NewValueIsOutOfRangeError("weeks", weeks, minWeeks, maxWeeks)
	}
	c.weeks = weeks
	return nil
}
