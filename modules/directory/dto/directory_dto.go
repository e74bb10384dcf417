package dto

import (
	"time"

	"scheduling-agent/modules/directory/entity"
)

// ===================== Response DTOs =====================

// CandidateResponse for candidate details
type CandidateResponse struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	RoleTitle          string    `json:"role_title"`
	Timezone           string    `json:"timezone"`
	StartDate          string    `json:"start_date"` // YYYY-MM-DD
	HiringManagerID    string    `json:"hiring_manager_id,omitempty"`
	ReportingManagerID string    `json:"reporting_manager_id,omitempty"`
	HRBPID             string    `json:"hrbp_id,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

// ManagerResponse for manager details
type ManagerResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Timezone string `json:"timezone"`
}

// SyncResponse summarizes a directory sync run
type SyncResponse struct {
	CandidatesSynced int       `json:"candidates_synced"`
	ManagersSynced   int       `json:"managers_synced"`
	SyncedAt         time.Time `json:"synced_at"`
}

// DocumentResponse for an uploaded candidate document
type DocumentResponse struct {
	ID          string    `json:"id"`
	CandidateID string    `json:"candidate_id"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	CreatedAt   time.Time `json:"created_at"`
}

// ===================== Mappers =====================

func ToCandidateResponse(c *entity.Candidate) *CandidateResponse {
	return &CandidateResponse{
		ID:                 c.ID,
		Name:               c.Name,
		Email:              c.Email,
		RoleTitle:          c.RoleTitle,
		Timezone:           c.Timezone,
		StartDate:          c.StartDate.UTC().Format("2006-01-02"),
		HiringManagerID:    c.HiringManagerID,
		ReportingManagerID: c.ReportingManagerID,
		HRBPID:             c.HRBPID,
		CreatedAt:          c.CreatedAt,
	}
}

func ToManagerResponse(m *entity.Manager) *ManagerResponse {
	return &ManagerResponse{
		ID:       m.ID,
		Name:     m.Name,
		Email:    m.Email,
		Role:     m.Role,
		Timezone: m.Timezone,
	}
}

func ToDocumentResponse(d *entity.CandidateDocument) *DocumentResponse {
	return &DocumentResponse{
		ID:          d.ID.String(),
		CandidateID: d.CandidateID,
		FileName:    d.FileName,
		ContentType: d.ContentType,
		SizeBytes:   d.SizeBytes,
		CreatedAt:   d.CreatedAt,
	}
}
