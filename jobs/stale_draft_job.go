package jobs

import (
	"log"
	"time"

	"github.com/mastaskillz/course_studio/database"
	"github.com/mastaskillz/course_studio/models"
)

const staleDraftAge = 30 * 24 * time.Hour

// PurgeStaleDrafts deletes draft courses that never got any content and
// have not been touched in a month. Drafts with modules are kept however
// old they are.
func PurgeStaleDrafts() {
	log.Println("Running job: PurgeStaleDrafts...")

	cutoff := time.Now().Add(-staleDraftAge)

	result := database.DB.
		Where("status = ? AND updated_at < ? AND modules::text = ?", "draft", cutoff, "[]").
		Delete(&models.Course{})
	if result.Error != nil {
		log.Printf("Error purging stale drafts: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("Purged %d stale empty drafts.", result.RowsAffected)
	}
}
