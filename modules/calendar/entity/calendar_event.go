package entity

import (
	"time"

	"github.com/google/uuid"
)

// CalendarEvent is one busy block on a person's calendar. Source names
// the priority tier it came from; values match the availability
// module's calendar sources.
type CalendarEvent struct {
	ID        uuid.UUID `db:"id" json:"id"`
	OwnerID   string    `db:"owner_id" json:"owner_id"`
	Source    string    `db:"source" json:"source"`
	Title     string    `db:"title" json:"title"`
	StartTime time.Time `db:"start_time" json:"start_time"`
	EndTime   time.Time `db:"end_time" json:"end_time"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
