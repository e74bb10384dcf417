package service

import (
	"context"
	"time"

	"scheduling-agent/core/errors"
	"scheduling-agent/core/logger"
	"scheduling-agent/modules/availability/entity"
)

// PersonZones resolves a person's IANA time zone. Implemented by the
// directory module.
type PersonZones interface {
	GetPersonZone(ctx context.Context, personID string) (*time.Location, bool)
}

// BusyEventSource supplies one priority tier of a person's busy events
// within a window, ordered by start. Implemented by the calendar module.
type BusyEventSource interface {
	GetBusyEvents(ctx context.Context, personID string, source entity.CalendarSource, window entity.TimeInterval) ([]entity.BusyEvent, error)
}

// AvailabilityService resolves per-person free time. It holds no state
// between calls; both collaborators are read-only.
type AvailabilityService struct {
	zones  PersonZones
	events BusyEventSource
}

type AvailabilityServiceInterface interface {
	ResolveFreeTime(ctx context.Context, personID string, windowStart, windowEnd time.Time, businessStartHour, businessEndHour int) ([]entity.FreeSlot, *errors.AppError)
}

func NewAvailabilityService(zones PersonZones, events BusyEventSource) AvailabilityServiceInterface {
	return &AvailabilityService{zones: zones, events: events}
}

// ResolveFreeTime computes a person's free slots inside the UTC window,
// walking each calendar day in the person's own zone, skipping weekends,
// and subtracting the priority-merged busy timeline from the local
// business window. An unknown person yields an empty list, never an
// error: absent data means no availability.
func (s *AvailabilityService) ResolveFreeTime(
	ctx context.Context,
	personID string,
	windowStart, windowEnd time.Time,
	businessStartHour, businessEndHour int,
) ([]entity.FreeSlot, *errors.AppError) {
	loc, ok := s.zones.GetPersonZone(ctx, personID)
	if !ok {
		logger.Info("AvailabilityService:ResolveFreeTime:UnknownPerson", "person_id", personID)
		return []entity.FreeSlot{}, nil
	}

	window := entity.NewTimeInterval(windowStart, windowEnd)
	if !window.IsValid() {
		return []entity.FreeSlot{}, nil
	}

	busy, appErr := s.mergedBusyIntervals(ctx, personID, window)
	if appErr != nil {
		return nil, appErr
	}

	free := []entity.FreeSlot{}

	day := time.Date(window.Start.Year(), window.Start.Month(), window.Start.Day(), 0, 0, 0, 0, time.UTC)
	lastDay := time.Date(window.End.Year(), window.End.Month(), window.End.Day(), 0, 0, 0, 0, time.UTC)

	for !day.After(lastDay) {
		localStart := time.Date(day.Year(), day.Month(), day.Day(), businessStartHour, 0, 0, 0, loc)
		localEnd := time.Date(day.Year(), day.Month(), day.Day(), businessEndHour, 0, 0, 0, loc)

		day = day.AddDate(0, 0, 1)

		if wd := localStart.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}

		businessWindow := entity.NewTimeInterval(localStart, localEnd)
		if !businessWindow.IsValid() {
			continue
		}

		clamped, ok := Intersect(window, businessWindow)
		if !ok {
			continue
		}

		dayBusy := clip(clamped, busy)
		for _, gap := range Subtract(clamped, dayBusy) {
			free = append(free, entity.NewFreeSlot(gap, []string{personID}, entity.OriginBusinessHours))
		}
	}

	return free, nil
}

// mergedBusyIntervals fetches both tiers and applies override-wins merge
func (s *AvailabilityService) mergedBusyIntervals(ctx context.Context, personID string, window entity.TimeInterval) ([]entity.TimeInterval, *errors.AppError) {
	primary, err := s.events.GetBusyEvents(ctx, personID, entity.SourcePrimary, window)
	if err != nil {
		logger.Error("AvailabilityService:mergedBusyIntervals:Primary:Error", "person_id", personID, "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load primary calendar", err)
	}

	override, err := s.events.GetBusyEvents(ctx, personID, entity.SourceOverride, window)
	if err != nil {
		logger.Error("AvailabilityService:mergedBusyIntervals:Override:Error", "person_id", personID, "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load override calendar", err)
	}

	return MergePriority(eventIntervals(primary), eventIntervals(override)), nil
}

func eventIntervals(events []entity.BusyEvent) []entity.TimeInterval {
	intervals := make([]entity.TimeInterval, 0, len(events))
	for _, e := range events {
		if e.Interval.IsValid() {
			intervals = append(intervals, e.Interval)
		}
	}
	return intervals
}
