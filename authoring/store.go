package authoring

import (
	"context"
	"errors"
)

// ErrNotFound is returned by a CourseStore when no course matches the
// requested identifier.
var ErrNotFound = errors.New("course not found")

// CourseStore is the document-store contract the session persists through.
// Implementations assign the course identifier on Create and refresh
// updatedAt on every write.
type CourseStore interface {
	List(ctx context.Context) ([]Course, error)
	GetByID(ctx context.Context, id string) (Course, error)
	Create(ctx context.Context, course Course) (Course, error)
	Update(ctx context.Context, id string, course Course) (Course, error)
	Delete(ctx context.Context, id string) error
}
