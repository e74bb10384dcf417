package entity

import (
	"time"

	"github.com/google/uuid"
)

// Invite delivery states
const (
	StatusQueued = "queued"
	StatusSent   = "sent"
	StatusFailed = "failed"
)

// Invite is a booked meeting awaiting delivery. Recipients is a
// comma-joined email list; delivery happens asynchronously off a queue.
type Invite struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	Reference   string     `db:"reference" json:"reference"`
	CandidateID string     `db:"candidate_id" json:"candidate_id"`
	MeetingType string     `db:"meeting_type" json:"meeting_type"`
	Subject     string     `db:"subject" json:"subject"`
	Body        string     `db:"body" json:"body"`
	Recipients  string     `db:"recipients" json:"recipients"`
	StartTime   time.Time  `db:"start_time" json:"start_time"`
	EndTime     time.Time  `db:"end_time" json:"end_time"`
	Status      string     `db:"status" json:"status"`
	SentAt      *time.Time `db:"sent_at" json:"sent_at,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
}
