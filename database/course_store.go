package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/mastaskillz/course_studio/authoring"
	"github.com/mastaskillz/course_studio/models"
)

// CourseStore persists authoring aggregates for one creator. It implements
// the authoring.CourseStore contract over the courses table; every lookup is
// scoped to the creator so a session can never load someone else's draft.
type CourseStore struct {
	db        *gorm.DB
	creatorID uuid.UUID
}

func NewCourseStore(db *gorm.DB, creatorID uuid.UUID) *CourseStore {
	return &CourseStore{db: db, creatorID: creatorID}
}

func (s *CourseStore) List(ctx context.Context) ([]authoring.Course, error) {
	var records []models.Course
	err := s.db.WithContext(ctx).
		Where("creator_id = ?", s.creatorID).
		Order("updated_at desc").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}

	courses := make([]authoring.Course, len(records))
	for i, rec := range records {
		courses[i] = toAggregate(rec)
	}
	return courses, nil
}

func (s *CourseStore) GetByID(ctx context.Context, id string) (authoring.Course, error) {
	courseID, err := uuid.Parse(id)
	if err != nil {
		return authoring.Course{}, authoring.ErrNotFound
	}

	var rec models.Course
	err = s.db.WithContext(ctx).
		Where("id = ? AND creator_id = ?", courseID, s.creatorID).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return authoring.Course{}, authoring.ErrNotFound
	}
	if err != nil {
		return authoring.Course{}, fmt.Errorf("get course: %w", err)
	}
	return toAggregate(rec), nil
}

func (s *CourseStore) Create(ctx context.Context, course authoring.Course) (authoring.Course, error) {
	rec := toRecord(course)
	rec.ID = uuid.Nil
	rec.CreatorID = s.creatorID

	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return authoring.Course{}, fmt.Errorf("create course: %w", err)
	}
	return toAggregate(rec), nil
}

func (s *CourseStore) Update(ctx context.Context, id string, course authoring.Course) (authoring.Course, error) {
	courseID, err := uuid.Parse(id)
	if err != nil {
		return authoring.Course{}, authoring.ErrNotFound
	}

	var existing models.Course
	err = s.db.WithContext(ctx).
		Where("id = ? AND creator_id = ?", courseID, s.creatorID).
		First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return authoring.Course{}, authoring.ErrNotFound
	}
	if err != nil {
		return authoring.Course{}, fmt.Errorf("update course: %w", err)
	}

	rec := toRecord(course)
	rec.ID = courseID
	rec.CreatorID = s.creatorID
	rec.EnrollmentCount = existing.EnrollmentCount
	rec.CreatedAt = existing.CreatedAt

	if err := s.db.WithContext(ctx).Save(&rec).Error; err != nil {
		return authoring.Course{}, fmt.Errorf("update course: %w", err)
	}
	return toAggregate(rec), nil
}

func (s *CourseStore) Delete(ctx context.Context, id string) error {
	courseID, err := uuid.Parse(id)
	if err != nil {
		return authoring.ErrNotFound
	}

	result := s.db.WithContext(ctx).
		Where("id = ? AND creator_id = ?", courseID, s.creatorID).
		Delete(&models.Course{})
	if result.Error != nil {
		return fmt.Errorf("delete course: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return authoring.ErrNotFound
	}
	return nil
}

func toRecord(c authoring.Course) models.Course {
	rec := models.Course{
		Title:         c.Title,
		Category:      c.Category,
		Subcategory:   c.Subcategory,
		Summary:       c.Summary,
		Languages:     datatypes.NewJSONSlice(c.Languages),
		Objectives:    datatypes.NewJSONSlice(c.Objectives),
		Modules:       datatypes.NewJSONType(c.Modules),
		Translations:  datatypes.NewJSONType(c.Translations),
		Accessibility: datatypes.NewJSONType(c.Accessibility),
		Pricing:       datatypes.NewJSONType(c.Pricing),
		Status:        c.Status,
		OutlineURL:    c.OutlineURL,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
	if id, err := uuid.Parse(c.ID); err == nil {
		rec.ID = id
	}
	return rec
}

func toAggregate(rec models.Course) authoring.Course {
	course := authoring.Course{
		ID:            rec.ID.String(),
		Title:         rec.Title,
		Category:      rec.Category,
		Subcategory:   rec.Subcategory,
		Summary:       rec.Summary,
		Languages:     rec.Languages,
		Objectives:    rec.Objectives,
		Modules:       rec.Modules.Data(),
		Translations:  rec.Translations.Data(),
		Accessibility: rec.Accessibility.Data(),
		Pricing:       rec.Pricing.Data(),
		Status:        rec.Status,
		OutlineURL:    rec.OutlineURL,
		CreatedAt:     rec.CreatedAt,
		UpdatedAt:     rec.UpdatedAt,
	}
	if course.Modules == nil {
		course.Modules = []authoring.Module{}
	}
	if course.Translations == nil {
		course.Translations = map[string]authoring.Translation{}
	}
	if course.Pricing.FreemiumContent == nil {
		course.Pricing.FreemiumContent = []string{}
	}
	return course
}
