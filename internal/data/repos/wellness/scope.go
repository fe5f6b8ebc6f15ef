package wellness

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// userWindow restricts q to one user's rows with col in [from, to).
// Bounds are bound as UTC so text-encoded timestamps compare correctly.
func userWindow(q *gorm.DB, userID uuid.UUID, col string, from, to time.Time) *gorm.DB {
	return q.
		Where("user_id = ?", userID).
		Where(col+" >= ?", from.UTC()).
		Where(col+" < ?", to.UTC())
}

func clampLimit(limit, def, max int) int {
	if limit <= 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}
