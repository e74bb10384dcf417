package dto

import (
	"time"

	"scheduling-agent/modules/scheduling/entity"
)

// ===================== Request DTOs =====================

// ProposalRequest asks for ranked meeting slots between a candidate and
// a set of managers
type ProposalRequest struct {
	CandidateID     string   `json:"candidate_id" validate:"required"`
	Participants    []string `json:"participants" validate:"required"`
	DurationMinutes int      `json:"duration_minutes" validate:"required,min=1,max=480"`
	DeadlineDate    string   `json:"deadline_date"` // YYYY-MM-DD, optional
	MeetingType     string   `json:"meeting_type"`

	// Optional overrides; zero means use the configured defaults.
	DaysBefore int `json:"days_before,omitempty"`
	DaysAfter  int `json:"days_after,omitempty"`
	MaxResults int `json:"max_results,omitempty"`
}

// ===================== Response DTOs =====================

// ProposalResponse is one ranked meeting option. LocalTimes renders the
// slot in each participant's own timezone; participants without a known
// zone are rendered in UTC.
type ProposalResponse struct {
	Start        time.Time         `json:"start"`
	End          time.Time         `json:"end"`
	Participants []string          `json:"participants"`
	LocalTimes   map[string]string `json:"local_times,omitempty"`
	MeetingType  string            `json:"meeting_type,omitempty"`
	Score        float64           `json:"score"`
	Violations   []string          `json:"violations"`
}

// WindowResponse describes the searched date window
type WindowResponse struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// ProposalListResponse wraps the ranked proposals for a request
type ProposalListResponse struct {
	CandidateID string             `json:"candidate_id"`
	MeetingType string             `json:"meeting_type,omitempty"`
	Window      WindowResponse     `json:"window"`
	Proposals   []ProposalResponse `json:"proposals"`
	Count       int                `json:"count"`
}

const localTimeLayout = "Mon, 02 Jan 2006 15:04"

// ToProposalResponse maps an entity proposal to its wire form, rendering
// the slot in each participant's zone. A nil zone falls back to UTC.
func ToProposalResponse(p entity.Proposal, zones map[string]*time.Location) ProposalResponse {
	localTimes := make(map[string]string, len(p.Slot.Participants))
	for _, id := range p.Slot.Participants {
		loc := zones[id]
		if loc == nil {
			loc = time.UTC
		}
		start := p.Slot.Interval.Start.In(loc)
		end := p.Slot.Interval.End.In(loc)
		localTimes[id] = start.Format(localTimeLayout) + " - " + end.Format("15:04")
	}

	return ProposalResponse{
		Start:        p.Slot.Interval.Start,
		End:          p.Slot.Interval.End,
		Participants: p.Slot.Participants,
		LocalTimes:   localTimes,
		MeetingType:  p.MeetingType,
		Score:        p.Score,
		Violations:   p.Violations,
	}
}
