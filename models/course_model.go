package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/mastaskillz/course_studio/authoring"
)

// Course is the persisted form of the authoring aggregate. The nested
// document (modules, translations, accessibility, pricing) lives in JSON
// columns; top-level fields are broken out for querying.
type Course struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CreatorID   uuid.UUID `gorm:"type:uuid;not null;index" json:"creator_id"`
	Title       string    `gorm:"size:255" json:"title"`
	Category    string    `gorm:"size:100" json:"category"`
	Subcategory string    `gorm:"size:100" json:"subcategory"`
	Summary     string    `gorm:"type:text" json:"summary"`

	Languages     datatypes.JSONSlice[string]                          `json:"languages"`
	Objectives    datatypes.JSONSlice[string]                          `json:"objectives"`
	Modules       datatypes.JSONType[[]authoring.Module]               `json:"modules"`
	Translations  datatypes.JSONType[map[string]authoring.Translation] `json:"translations"`
	Accessibility datatypes.JSONType[authoring.Accessibility]          `json:"accessibility"`
	Pricing       datatypes.JSONType[authoring.Pricing]                `json:"pricing"`

	Status          string `gorm:"size:20;not null;default:'draft'" json:"status"`
	OutlineURL      string `gorm:"type:text" json:"outline_url"`
	EnrollmentCount int    `gorm:"default:0" json:"enrollment_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
