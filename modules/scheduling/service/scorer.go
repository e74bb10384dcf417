package service

import (
	"fmt"
	"sort"
	"time"

	availability "scheduling-agent/modules/availability/entity"
	"scheduling-agent/modules/scheduling/entity"
)

// Scoring weights. Scores start at baseScore per slot, adjustments are
// applied in a fixed order and the result is floored at zero.
const (
	baseScore            = 100.0
	deadlinePenalty      = 50.0
	farFromAnchorPenalty = 20.0
	nearAnchorPenalty    = 10.0
	businessHoursPenalty = 15.0
	morningBonus         = 10.0
	eveningPenalty       = 5.0
	weekdayBonus         = 5.0
)

// ScoreInput carries everything the ranking needs beyond the slots
// themselves. AnchorDate and Deadline are UTC midnights; a zero Deadline
// means none. Zones maps every participant id to its location; ids
// missing from the map are rendered in UTC.
type ScoreInput struct {
	SubjectID         string
	MeetingType       string
	AnchorDate        time.Time
	Deadline          time.Time
	Zones             map[string]*time.Location
	BusinessStartHour int
	BusinessEndHour   int
	MaxResults        int
}

// ScoreAndRank scores each slot against the weighted rule set, sorts
// descending by score keeping input order on ties, and truncates to
// MaxResults. It is a pure function of its inputs.
func ScoreAndRank(slots []availability.FreeSlot, in ScoreInput) []entity.Proposal {
	proposals := make([]entity.Proposal, 0, len(slots))
	for _, slot := range slots {
		score, violations := scoreSlot(slot, in)
		proposals = append(proposals, entity.Proposal{
			Slot:        slot,
			MeetingType: in.MeetingType,
			Score:       score,
			Violations:  violations,
		})
	}

	sort.SliceStable(proposals, func(i, j int) bool {
		return proposals[i].Score > proposals[j].Score
	})

	if in.MaxResults > 0 && len(proposals) > in.MaxResults {
		proposals = proposals[:in.MaxResults]
	}
	return proposals
}

func scoreSlot(slot availability.FreeSlot, in ScoreInput) (float64, []string) {
	score := baseScore
	violations := []string{}

	slotDate := dateOf(slot.Interval.Start)

	if !in.Deadline.IsZero() && slotDate.After(in.Deadline) {
		score -= deadlinePenalty
		violations = append(violations, "After deadline")
	}

	if !in.AnchorDate.IsZero() {
		days := daysApart(slotDate, in.AnchorDate)
		switch {
		case days > 7:
			score -= farFromAnchorPenalty
		case days > 3:
			score -= nearAnchorPenalty
		}
	}

	for _, participantID := range slot.Participants {
		localHour := localStartHour(slot, in.Zones[participantID])
		if localHour < in.BusinessStartHour {
			score -= businessHoursPenalty
			violations = append(violations, fmt.Sprintf("Before business hours for %s", participantID))
		} else if localHour >= in.BusinessEndHour {
			score -= businessHoursPenalty
			violations = append(violations, fmt.Sprintf("After business hours for %s", participantID))
		}
	}

	subjectHour := localStartHour(slot, in.Zones[in.SubjectID])
	if subjectHour >= 9 && subjectHour < 12 {
		score += morningBonus
	}
	if subjectHour >= 17 {
		score -= eveningPenalty
	}

	if wd := slot.Interval.Start.UTC().Weekday(); wd != time.Saturday && wd != time.Sunday {
		score += weekdayBonus
	}

	if score < 0 {
		score = 0
	}
	return score, violations
}

func localStartHour(slot availability.FreeSlot, loc *time.Location) int {
	if loc == nil {
		loc = time.UTC
	}
	return slot.Interval.Start.In(loc).Hour()
}

// dateOf truncates a time to its UTC calendar date
func dateOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysApart returns the absolute whole-day distance between two UTC
// midnights
func daysApart(a, b time.Time) int {
	days := int(a.Sub(b).Hours() / 24)
	if days < 0 {
		days = -days
	}
	return days
}
