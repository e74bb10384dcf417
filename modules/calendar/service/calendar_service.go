package service

import (
	"context"
	"time"

	"scheduling-agent/core/errors"
	availability "scheduling-agent/modules/availability/entity"
	availabilityService "scheduling-agent/modules/availability/service"
	"scheduling-agent/modules/calendar/dto"
	"scheduling-agent/modules/calendar/repository"
)

// CalendarService sources busy events from the calendar_events table.
// It is the BusyEventSource behind the availability resolver.
type CalendarService struct {
	repo repository.CalendarRepositoryInterface
}

type CalendarServiceInterface interface {
	GetBusyEvents(ctx context.Context, personID string, source availability.CalendarSource, window availability.TimeInterval) ([]availability.BusyEvent, error)
	GetBusyTimeline(ctx context.Context, personID string, windowStart, windowEnd time.Time) (*dto.BusyTimelineResponse, *errors.AppError)
}

func NewCalendarService(repo repository.CalendarRepositoryInterface) CalendarServiceInterface {
	return &CalendarService{repo: repo}
}

// GetBusyEvents loads one priority tier of a person's busy events
// overlapping the window, ordered by start
func (s *CalendarService) GetBusyEvents(ctx context.Context, personID string, source availability.CalendarSource, window availability.TimeInterval) ([]availability.BusyEvent, error) {
	rows, err := s.repo.GetEventsInWindow(ctx, personID, string(source), window.Start, window.End)
	if err != nil {
		return nil, err
	}

	events := make([]availability.BusyEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, availability.BusyEvent{
			OwnerID:  row.OwnerID,
			Source:   source,
			Interval: availability.NewTimeInterval(row.StartTime, row.EndTime),
			Label:    row.Title,
		})
	}
	return events, nil
}

// GetBusyTimeline returns the override-wins merged busy intervals for a
// person inside the window
func (s *CalendarService) GetBusyTimeline(ctx context.Context, personID string, windowStart, windowEnd time.Time) (*dto.BusyTimelineResponse, *errors.AppError) {
	window := availability.NewTimeInterval(windowStart, windowEnd)
	if !window.IsValid() {
		return nil, errors.NewAppError(errors.ErrInvalidRequestData, "window end must be after window start", nil)
	}

	primary, err := s.GetBusyEvents(ctx, personID, availability.SourcePrimary, window)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load primary calendar", err)
	}
	override, err := s.GetBusyEvents(ctx, personID, availability.SourceOverride, window)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load override calendar", err)
	}

	merged := availabilityService.MergePriority(intervalsOf(primary), intervalsOf(override))

	busy := make([]dto.IntervalResponse, 0, len(merged))
	for _, iv := range merged {
		busy = append(busy, dto.IntervalResponse{Start: iv.Start, End: iv.End})
	}

	return &dto.BusyTimelineResponse{
		PersonID:    personID,
		WindowStart: window.Start,
		WindowEnd:   window.End,
		Busy:        busy,
	}, nil
}

func intervalsOf(events []availability.BusyEvent) []availability.TimeInterval {
	intervals := make([]availability.TimeInterval, 0, len(events))
	for _, e := range events {
		if e.Interval.IsValid() {
			intervals = append(intervals, e.Interval)
		}
	}
	return intervals
}
