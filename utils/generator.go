package utils

import (
	"fmt"

	"github.com/google/uuid"
)

// NewContentID mints an identifier for a nested course item, e.g.
// "module_6f1c...". The random UUID keeps ids unique even when several
// items are created in quick succession.
func NewContentID(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, uuid.NewString())
}
