package dto

import (
	"strings"
	"time"

	"scheduling-agent/modules/invite/entity"
)

// ===================== Request DTOs =====================

// BookingRequest books one proposed slot and queues invite delivery
type BookingRequest struct {
	CandidateID  string   `json:"candidate_id" validate:"required"`
	Participants []string `json:"participants" validate:"required"`
	Start        string   `json:"start" validate:"required"` // RFC3339
	End          string   `json:"end" validate:"required"`   // RFC3339
	MeetingType  string   `json:"meeting_type"`
}

// ===================== Response DTOs =====================

// InviteResponse describes a booked invite and its delivery state
type InviteResponse struct {
	ID          string     `json:"id"`
	Reference   string     `json:"reference"`
	CandidateID string     `json:"candidate_id"`
	MeetingType string     `json:"meeting_type,omitempty"`
	Subject     string     `json:"subject"`
	Body        string     `json:"body"`
	Recipients  []string   `json:"recipients"`
	Start       time.Time  `json:"start"`
	End         time.Time  `json:"end"`
	Status      string     `json:"status"`
	SentAt      *time.Time `json:"sent_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func ToInviteResponse(invite *entity.Invite) *InviteResponse {
	recipients := []string{}
	if invite.Recipients != "" {
		recipients = strings.Split(invite.Recipients, ",")
	}

	return &InviteResponse{
		ID:          invite.ID.String(),
		Reference:   invite.Reference,
		CandidateID: invite.CandidateID,
		MeetingType: invite.MeetingType,
		Subject:     invite.Subject,
		Body:        invite.Body,
		Recipients:  recipients,
		Start:       invite.StartTime,
		End:         invite.EndTime,
		Status:      invite.Status,
		SentAt:      invite.SentAt,
		CreatedAt:   invite.CreatedAt,
	}
}
