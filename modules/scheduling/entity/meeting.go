package entity

import (
	"time"

	availability "scheduling-agent/modules/availability/entity"
)

// Well-known onboarding meeting types. The type is a passthrough label;
// requests may carry any non-empty string.
const (
	MeetingTypeIntro        = "Intro Meeting"
	MeetingTypeHRBPConnect  = "HRBP Connect"
	MeetingTypeBuddyCatchup = "Buddy Catchup"
	MeetingTypeTeamWelcome  = "Team Welcome"
)

// MeetingRequest is the validated, parsed form of a proposal request.
// ParticipantIDs excludes the candidate and may be empty for a
// candidate-only request. Deadline is the last acceptable meeting date
// at UTC midnight; zero means no deadline.
type MeetingRequest struct {
	CandidateID     string
	ParticipantIDs  []string
	DurationMinutes int
	Deadline        time.Time
	MeetingType     string

	// Window and result-count overrides; zero falls back to config.
	DaysBefore int
	DaysAfter  int
	MaxResults int
}

// Proposal is a scored candidate meeting slot. Proposals are computed
// per request and never persisted.
type Proposal struct {
	Slot        availability.FreeSlot
	MeetingType string
	Score       float64
	Violations  []string
}
