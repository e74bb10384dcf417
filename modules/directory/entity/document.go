package entity

import (
	"time"

	"github.com/google/uuid"
)

// CandidateDocument records an onboarding file stored in the documents
// bucket. The object itself lives in S3 under ObjectKey.
type CandidateDocument struct {
	ID          uuid.UUID `db:"id" json:"id"`
	CandidateID string    `db:"candidate_id" json:"candidate_id"`
	FileName    string    `db:"file_name" json:"file_name"`
	ObjectKey   string    `db:"object_key" json:"object_key"`
	ContentType string    `db:"content_type" json:"content_type"`
	SizeBytes   int64     `db:"size_bytes" json:"size_bytes"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
