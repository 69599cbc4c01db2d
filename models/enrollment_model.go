package models

import (
	"time"

	"github.com/google/uuid"
)

type Enrollment struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CourseID   uuid.UUID `gorm:"type:uuid;not null;index" json:"course_id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Status     string    `gorm:"size:20;not null;default:'active'" json:"status"`
	Progress   float64   `gorm:"default:0" json:"progress"`
	EnrolledAt time.Time `json:"enrolled_at"`

	Course Course `gorm:"foreignkey:CourseID" json:"course"`
}
