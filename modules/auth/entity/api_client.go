package entity

import (
	"time"

	"github.com/google/uuid"
)

// APIClient is a machine client allowed to call the private API.
// SecretHash is a bcrypt hash; the plain secret is never stored.
type APIClient struct {
	ID         uuid.UUID `db:"id" json:"id"`
	ClientID   string    `db:"client_id" json:"client_id"`
	SecretHash string    `db:"secret_hash" json:"-"`
	Name       string    `db:"name" json:"name"`
	IsActive   bool      `db:"is_active" json:"is_active"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}
