package entity

import "time"

// Manager roles as they appear in the HR employee master
const (
	RoleHiringManager    = "Hiring Manager"
	RoleReportingManager = "Reporting Manager"
	RoleHRBP             = "HRBP"
	RoleCandidate        = "Candidate"
)

// Candidate is a person being onboarded. StartDate is a calendar date
// stored at UTC midnight; it anchors the scheduling window.
type Candidate struct {
	ID                 string    `db:"id" json:"id"`
	Name               string    `db:"name" json:"name"`
	Email              string    `db:"email" json:"email"`
	RoleTitle          string    `db:"role_title" json:"role_title"`
	Timezone           string    `db:"timezone" json:"timezone"`
	StartDate          time.Time `db:"start_date" json:"start_date"`
	HiringManagerID    string    `db:"hiring_manager_id" json:"hiring_manager_id,omitempty"`
	ReportingManagerID string    `db:"reporting_manager_id" json:"reporting_manager_id,omitempty"`
	HRBPID             string    `db:"hrbp_id" json:"hrbp_id,omitempty"`
	CreatedAt          time.Time `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time `db:"updated_at" json:"updated_at"`
}

// Manager is anyone a candidate can be scheduled with
type Manager struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Role      string    `db:"role" json:"role"`
	Timezone  string    `db:"timezone" json:"timezone"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Person is the normalized directory view: enough identity for the
// engine regardless of whether the id names a candidate or a manager.
type Person struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Timezone string `json:"timezone"`
}

func (c *Candidate) Person() Person {
	return Person{ID: c.ID, Name: c.Name, Email: c.Email, Role: RoleCandidate, Timezone: c.Timezone}
}

func (m *Manager) Person() Person {
	return Person{ID: m.ID, Name: m.Name, Email: m.Email, Role: m.Role, Timezone: m.Timezone}
}
