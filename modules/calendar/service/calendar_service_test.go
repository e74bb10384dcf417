package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	availability "scheduling-agent/modules/availability/entity"
	"scheduling-agent/modules/calendar/entity"
)

type stubRepo struct {
	events []entity.CalendarEvent
}

func (s *stubRepo) GetEventsInWindow(_ context.Context, ownerID, source string, windowStart, windowEnd time.Time) ([]entity.CalendarEvent, error) {
	matched := []entity.CalendarEvent{}
	for _, e := range s.events {
		if e.OwnerID == ownerID && e.Source == source &&
			e.StartTime.Before(windowEnd) && e.EndTime.After(windowStart) {
			matched = append(matched, e)
		}
	}
	return matched, nil
}

func (s *stubRepo) CreateEvent(_ context.Context, event *entity.CalendarEvent) error {
	s.events = append(s.events, *event)
	return nil
}

func (s *stubRepo) CountEventsByOwner(_ context.Context, ownerID string) (int, error) {
	count := 0
	for _, e := range s.events {
		if e.OwnerID == ownerID {
			count++
		}
	}
	return count, nil
}

// Monday 2026-03-02
func at(hour, minute int) time.Time {
	return time.Date(2026, 3, 2, hour, minute, 0, 0, time.UTC)
}

func TestGetBusyEvents(t *testing.T) {
	t.Parallel()

	repo := &stubRepo{events: []entity.CalendarEvent{
		{OwnerID: "mgr_001", Source: "primary", Title: "Standup", StartTime: at(9, 0), EndTime: at(9, 30)},
		{OwnerID: "mgr_001", Source: "override", Title: "Client sync", StartTime: at(11, 0), EndTime: at(12, 0)},
		{OwnerID: "mgr_002", Source: "primary", Title: "Other person", StartTime: at(9, 0), EndTime: at(10, 0)},
	}}
	svc := NewCalendarService(repo)

	window := availability.NewTimeInterval(at(0, 0), at(23, 59))
	events, err := svc.GetBusyEvents(context.Background(), "mgr_001", availability.SourcePrimary, window)
	require.NoError(t, err)

	require.Len(t, events, 1)
	assert.Equal(t, "Standup", events[0].Label)
	assert.Equal(t, availability.SourcePrimary, events[0].Source)
	assert.Equal(t, at(9, 0), events[0].Interval.Start)
}

func TestGetBusyTimeline(t *testing.T) {
	t.Parallel()

	t.Run("override suppresses overlapping primary wholesale", func(t *testing.T) {
		t.Parallel()

		repo := &stubRepo{events: []entity.CalendarEvent{
			// Primary 14:00-15:00 overlaps override 14:30-15:30; the
			// whole primary block disappears, not just the overlap.
			{OwnerID: "mgr_001", Source: "primary", Title: "Team meeting", StartTime: at(14, 0), EndTime: at(15, 0)},
			{OwnerID: "mgr_001", Source: "override", Title: "Client review", StartTime: at(14, 30), EndTime: at(15, 30)},
			{OwnerID: "mgr_001", Source: "primary", Title: "Standup", StartTime: at(9, 0), EndTime: at(9, 30)},
		}}
		svc := NewCalendarService(repo)

		result, appErr := svc.GetBusyTimeline(context.Background(), "mgr_001", at(0, 0), at(23, 59))
		require.Nil(t, appErr)

		require.Len(t, result.Busy, 2)
		assert.Equal(t, at(9, 0), result.Busy[0].Start)
		assert.Equal(t, at(9, 30), result.Busy[0].End)
		assert.Equal(t, at(14, 30), result.Busy[1].Start)
		assert.Equal(t, at(15, 30), result.Busy[1].End)
	})

	t.Run("invalid window rejected", func(t *testing.T) {
		t.Parallel()

		svc := NewCalendarService(&stubRepo{})
		_, appErr := svc.GetBusyTimeline(context.Background(), "mgr_001", at(12, 0), at(9, 0))
		require.NotNil(t, appErr)
	})

	t.Run("empty calendar yields empty timeline", func(t *testing.T) {
		t.Parallel()

		svc := NewCalendarService(&stubRepo{})
		result, appErr := svc.GetBusyTimeline(context.Background(), "mgr_001", at(0, 0), at(23, 59))
		require.Nil(t, appErr)
		assert.Empty(t, result.Busy)
	})
}
