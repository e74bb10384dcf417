package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"scheduling-agent/core/database"
	"scheduling-agent/core/logger"
	"scheduling-agent/modules/invite/entity"
)

// InviteRepository handles invite database operations
type InviteRepository struct {
	DB database.Database
}

// NewInviteRepository creates a new repository instance
func NewInviteRepository(db database.Database) *InviteRepository {
	return &InviteRepository{DB: db}
}

// InviteRepositoryInterface defines the repository contract
type InviteRepositoryInterface interface {
	CreateInvite(ctx context.Context, invite *entity.Invite) (*entity.Invite, error)
	GetInviteByID(ctx context.Context, id uuid.UUID) (*entity.Invite, error)
	GetInvitesByCandidateID(ctx context.Context, candidateID string) ([]entity.Invite, error)
	UpdateInviteStatus(ctx context.Context, id uuid.UUID, status string, sentAt *time.Time) error
}

func (r *InviteRepository) CreateInvite(ctx context.Context, invite *entity.Invite) (*entity.Invite, error) {
	query := `
		INSERT INTO invites (reference, candidate_id, meeting_type, subject, body, recipients, start_time, end_time, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, reference, candidate_id, meeting_type, subject, body, recipients,
		          start_time, end_time, status, sent_at, created_at
	`

	var created entity.Invite
	err := r.DB.GetContext(ctx, &created, query,
		invite.Reference, invite.CandidateID, invite.MeetingType, invite.Subject,
		invite.Body, invite.Recipients, invite.StartTime, invite.EndTime, invite.Status)
	if err != nil {
		logger.Error("InviteRepository:CreateInvite", "error", err)
		return nil, err
	}

	return &created, nil
}

func (r *InviteRepository) GetInviteByID(ctx context.Context, id uuid.UUID) (*entity.Invite, error) {
	query := `
		SELECT id, reference, candidate_id, meeting_type, subject, body, recipients,
		       start_time, end_time, status, sent_at, created_at
		FROM invites WHERE id = $1
	`

	var invite entity.Invite
	err := r.DB.GetContext(ctx, &invite, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("InviteRepository:GetInviteByID", "error", err)
		return nil, err
	}

	return &invite, nil
}

func (r *InviteRepository) GetInvitesByCandidateID(ctx context.Context, candidateID string) ([]entity.Invite, error) {
	query := `
		SELECT id, reference, candidate_id, meeting_type, subject, body, recipients,
		       start_time, end_time, status, sent_at, created_at
		FROM invites
		WHERE candidate_id = $1
		ORDER BY created_at DESC
	`

	var invites []entity.Invite
	if err := r.DB.SelectContext(ctx, &invites, query, candidateID); err != nil {
		logger.Error("InviteRepository:GetInvitesByCandidateID", "error", err)
		return nil, err
	}

	return invites, nil
}

func (r *InviteRepository) UpdateInviteStatus(ctx context.Context, id uuid.UUID, status string, sentAt *time.Time) error {
	query := `UPDATE invites SET status = $2, sent_at = $3 WHERE id = $1`

	if err := r.DB.ExecContext(ctx, query, id, status, sentAt); err != nil {
		logger.Error("InviteRepository:UpdateInviteStatus", "error", err)
		return err
	}
	return nil
}
