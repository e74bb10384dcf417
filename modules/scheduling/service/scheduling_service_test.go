package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scheduling-agent/core/errors"
	availability "scheduling-agent/modules/availability/entity"
	"scheduling-agent/modules/scheduling/dto"
)

type stubDirectory struct {
	startDates map[string]time.Time
	zones      map[string]string
}

func (s *stubDirectory) GetCandidateStartDate(_ context.Context, candidateID string) (time.Time, *errors.AppError) {
	d, ok := s.startDates[candidateID]
	if !ok {
		return time.Time{}, errors.NewAppError(errors.ErrNotFound, "Candidate not found", nil)
	}
	return d, nil
}

func (s *stubDirectory) GetPersonZone(_ context.Context, personID string) (*time.Location, bool) {
	name, ok := s.zones[personID]
	if !ok {
		return nil, false
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, false
	}
	return loc, true
}

type stubAvailability struct {
	slots map[string][]availability.FreeSlot
	err   *errors.AppError
}

func (s *stubAvailability) ResolveFreeTime(_ context.Context, personID string, _, _ time.Time, _, _ int) ([]availability.FreeSlot, *errors.AppError) {
	if s.err != nil {
		return nil, s.err
	}
	return s.slots[personID], nil
}

func freeSlot(start time.Time, minutes int, personID string) availability.FreeSlot {
	return availability.NewFreeSlot(
		availability.NewTimeInterval(start, start.Add(time.Duration(minutes)*time.Minute)),
		[]string{personID},
		availability.OriginBusinessHours,
	)
}

func TestGenerateProposals(t *testing.T) {
	t.Parallel()

	// A start date far enough out that the derived window never clamps
	startDate := time.Now().UTC().AddDate(0, 0, 30).Truncate(24 * time.Hour)

	newService := func(avail *stubAvailability) SchedulingServiceInterface {
		dir := &stubDirectory{
			startDates: map[string]time.Time{"cand_001": startDate},
			zones:      map[string]string{"cand_001": "Asia/Kolkata", "mgr_001": "Asia/Kolkata"},
		}
		return NewSchedulingService(dir, avail)
	}

	t.Run("rejects missing candidate id", func(t *testing.T) {
		t.Parallel()
		svc := newService(&stubAvailability{})
		_, appErr := svc.GenerateProposals(context.Background(), &dto.ProposalRequest{
			Participants: []string{"mgr_001"}, DurationMinutes: 30,
		})
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrInvalidRequestData, appErr.Code)
	})

	t.Run("rejects non-positive duration", func(t *testing.T) {
		t.Parallel()
		svc := newService(&stubAvailability{})
		_, appErr := svc.GenerateProposals(context.Background(), &dto.ProposalRequest{
			CandidateID: "cand_001", Participants: []string{"mgr_001"}, DurationMinutes: 0,
		})
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrInvalidRequestData, appErr.Code)
	})

	t.Run("rejects empty participant list", func(t *testing.T) {
		t.Parallel()
		svc := newService(&stubAvailability{})
		_, appErr := svc.GenerateProposals(context.Background(), &dto.ProposalRequest{
			CandidateID: "cand_001", DurationMinutes: 30,
		})
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrInvalidRequestData, appErr.Code)
	})

	t.Run("candidate-only request slices the subject's own availability", func(t *testing.T) {
		t.Parallel()

		// A participant list that reduces to the candidate alone still
		// produces proposals from the subject's own free time.
		overlapStart := startDate.Add(4 * time.Hour)
		svc := newService(&stubAvailability{slots: map[string][]availability.FreeSlot{
			"cand_001": {freeSlot(overlapStart, 60, "cand_001")},
		}})

		result, appErr := svc.GenerateProposals(context.Background(), &dto.ProposalRequest{
			CandidateID: "cand_001", Participants: []string{"cand_001"}, DurationMinutes: 30,
		})
		require.Nil(t, appErr)
		require.Equal(t, 2, result.Count)
		for _, p := range result.Proposals {
			assert.Equal(t, []string{"cand_001"}, p.Participants)
			assert.Equal(t, 30*time.Minute, p.End.Sub(p.Start))
			assert.Greater(t, p.Score, 0.0)
		}
	})

	t.Run("rejects malformed deadline", func(t *testing.T) {
		t.Parallel()
		svc := newService(&stubAvailability{})
		_, appErr := svc.GenerateProposals(context.Background(), &dto.ProposalRequest{
			CandidateID: "cand_001", Participants: []string{"mgr_001"},
			DurationMinutes: 30, DeadlineDate: "03/15/2026",
		})
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrInvalidRequestData, appErr.Code)
	})

	t.Run("rejects deadline before the window", func(t *testing.T) {
		t.Parallel()
		svc := newService(&stubAvailability{})
		_, appErr := svc.GenerateProposals(context.Background(), &dto.ProposalRequest{
			CandidateID: "cand_001", Participants: []string{"mgr_001"},
			DurationMinutes: 30, DeadlineDate: "2020-01-01",
		})
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrInvalidRequestData, appErr.Code)
	})

	t.Run("unknown candidate yields empty proposals", func(t *testing.T) {
		t.Parallel()
		svc := newService(&stubAvailability{})
		result, appErr := svc.GenerateProposals(context.Background(), &dto.ProposalRequest{
			CandidateID: "ghost", Participants: []string{"mgr_001"}, DurationMinutes: 30,
		})
		require.Nil(t, appErr)
		require.NotNil(t, result)
		assert.Empty(t, result.Proposals)
		assert.Equal(t, 0, result.Count)
	})

	t.Run("resolution failures propagate", func(t *testing.T) {
		t.Parallel()
		svc := newService(&stubAvailability{
			err: errors.NewAppError(errors.ErrInternalServer, "calendar down", nil),
		})
		_, appErr := svc.GenerateProposals(context.Background(), &dto.ProposalRequest{
			CandidateID: "cand_001", Participants: []string{"mgr_001"}, DurationMinutes: 30,
		})
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrInternalServer, appErr.Code)
	})

	t.Run("overlapping free time becomes sliced scored proposals", func(t *testing.T) {
		t.Parallel()

		// Shared free hour on the candidate's start date at 09:30 IST
		overlapStart := startDate.Add(4 * time.Hour)
		svc := newService(&stubAvailability{slots: map[string][]availability.FreeSlot{
			"cand_001": {freeSlot(overlapStart, 120, "cand_001")},
			"mgr_001":  {freeSlot(overlapStart, 60, "mgr_001")},
		}})

		result, appErr := svc.GenerateProposals(context.Background(), &dto.ProposalRequest{
			CandidateID: "cand_001", Participants: []string{"mgr_001"},
			DurationMinutes: 30, MeetingType: "Intro Meeting",
		})
		require.Nil(t, appErr)
		require.NotNil(t, result)

		require.Equal(t, 2, result.Count)
		for _, p := range result.Proposals {
			assert.Equal(t, []string{"cand_001", "mgr_001"}, p.Participants)
			assert.Equal(t, 30*time.Minute, p.End.Sub(p.Start))
			assert.Equal(t, "Intro Meeting", p.MeetingType)
			assert.Greater(t, p.Score, 0.0)
			assert.Len(t, p.LocalTimes, 2)
		}
		assert.True(t, result.Proposals[0].Score >= result.Proposals[1].Score)
		// 04:00 UTC renders as 09:30 in the participants' Kolkata zone
		assert.Contains(t, result.Proposals[0].LocalTimes["cand_001"], "09:30")
	})

	t.Run("no overlap is an empty result not an error", func(t *testing.T) {
		t.Parallel()

		svc := newService(&stubAvailability{slots: map[string][]availability.FreeSlot{
			"cand_001": {freeSlot(startDate.Add(4*time.Hour), 60, "cand_001")},
			"mgr_001":  {freeSlot(startDate.Add(8*time.Hour), 60, "mgr_001")},
		}})

		result, appErr := svc.GenerateProposals(context.Background(), &dto.ProposalRequest{
			CandidateID: "cand_001", Participants: []string{"mgr_001"}, DurationMinutes: 30,
		})
		require.Nil(t, appErr)
		assert.Empty(t, result.Proposals)
	})

	t.Run("rejects negative overrides", func(t *testing.T) {
		t.Parallel()
		svc := newService(&stubAvailability{})
		_, appErr := svc.GenerateProposals(context.Background(), &dto.ProposalRequest{
			CandidateID: "cand_001", Participants: []string{"mgr_001"},
			DurationMinutes: 30, MaxResults: -1,
		})
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrInvalidRequestData, appErr.Code)
	})

	t.Run("max_results override narrows the ranking", func(t *testing.T) {
		t.Parallel()

		overlapStart := startDate.Add(4 * time.Hour)
		svc := newService(&stubAvailability{slots: map[string][]availability.FreeSlot{
			"cand_001": {freeSlot(overlapStart, 180, "cand_001")},
			"mgr_001":  {freeSlot(overlapStart, 180, "mgr_001")},
		}})

		result, appErr := svc.GenerateProposals(context.Background(), &dto.ProposalRequest{
			CandidateID: "cand_001", Participants: []string{"mgr_001"},
			DurationMinutes: 30, MaxResults: 2,
		})
		require.Nil(t, appErr)
		assert.Equal(t, 2, result.Count)
	})

	t.Run("window overrides stretch the searched range", func(t *testing.T) {
		t.Parallel()

		svc := newService(&stubAvailability{})
		result, appErr := svc.GenerateProposals(context.Background(), &dto.ProposalRequest{
			CandidateID: "cand_001", Participants: []string{"mgr_001"},
			DurationMinutes: 30, DaysBefore: 1, DaysAfter: 14,
		})
		require.Nil(t, appErr)
		assert.Equal(t, startDate.AddDate(0, 0, -1), result.Window.Start)
		// End of window is exclusive, one day past the last searched date.
		assert.Equal(t, startDate.AddDate(0, 0, 15), result.Window.End)
	})

	t.Run("results are capped at the proposal limit", func(t *testing.T) {
		t.Parallel()

		// Six hours of shared time slices into twelve 30-minute slots
		overlapStart := startDate.Add(4 * time.Hour)
		svc := newService(&stubAvailability{slots: map[string][]availability.FreeSlot{
			"cand_001": {freeSlot(overlapStart, 360, "cand_001")},
			"mgr_001":  {freeSlot(overlapStart, 360, "mgr_001")},
		}})

		result, appErr := svc.GenerateProposals(context.Background(), &dto.ProposalRequest{
			CandidateID: "cand_001", Participants: []string{"mgr_001"}, DurationMinutes: 30,
		})
		require.Nil(t, appErr)
		assert.LessOrEqual(t, result.Count, 5)
	})
}

func TestDeriveWindow(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 2, 10, 30, 0, 0, time.UTC)
	today := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	t.Run("window wraps the anchor", func(t *testing.T) {
		t.Parallel()
		anchor := today.AddDate(0, 0, 20)
		start, end := deriveWindow(anchor, now, 3, 7)
		assert.Equal(t, anchor.AddDate(0, 0, -3), start)
		assert.Equal(t, anchor.AddDate(0, 0, 7), end)
	})

	t.Run("start clamps to today", func(t *testing.T) {
		t.Parallel()
		anchor := today.AddDate(0, 0, 1)
		start, end := deriveWindow(anchor, now, 3, 7)
		assert.Equal(t, today, start)
		assert.Equal(t, anchor.AddDate(0, 0, 7), end)
	})

	t.Run("collapsed window is repaired to a week", func(t *testing.T) {
		t.Parallel()
		anchor := today.AddDate(0, 0, -30)
		start, end := deriveWindow(anchor, now, 3, 7)
		assert.Equal(t, today, start)
		assert.Equal(t, today.AddDate(0, 0, 7), end)
	})
}
