package service

import (
	"context"
	"time"

	"scheduling-agent/core/logger"
	availability "scheduling-agent/modules/availability/entity"
	"scheduling-agent/modules/calendar/entity"
	"scheduling-agent/modules/calendar/repository"
)

// PersonZoneLookup resolves a person's zone for seeding; implemented by
// the directory module
type PersonZoneLookup interface {
	GetPersonZone(ctx context.Context, personID string) (*time.Location, bool)
}

// SeedDemoCalendars writes a deterministic busy cadence for each person
// over the coming days, in the person's own zone:
//   - daily standup 9:00-9:30, primary
//   - team meeting 14:00-15:00 every 2nd day, primary
//   - client sync 11:00-12:00 every 3rd day, override
//   - client review 16:00-17:00 every 4th day, override
//
// Weekends are skipped; the resolver ignores them anyway. Seeding is
// idempotent per person: anyone who already has events is left alone.
func SeedDemoCalendars(ctx context.Context, repo repository.CalendarRepositoryInterface, zones PersonZoneLookup, personIDs []string, days int) error {
	today := time.Now().UTC()

	for _, personID := range personIDs {
		count, err := repo.CountEventsByOwner(ctx, personID)
		if err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		loc, ok := zones.GetPersonZone(ctx, personID)
		if !ok {
			loc = time.UTC
		}

		seeded := 0
		for offset := 0; offset < days; offset++ {
			day := today.AddDate(0, 0, offset)
			localDay := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc)
			if wd := localDay.Weekday(); wd == time.Saturday || wd == time.Sunday {
				continue
			}

			events := []entity.CalendarEvent{
				{Source: string(availability.SourcePrimary), Title: "Daily standup",
					StartTime: localDay.Add(9 * time.Hour), EndTime: localDay.Add(9*time.Hour + 30*time.Minute)},
			}
			if offset%2 == 0 {
				events = append(events, entity.CalendarEvent{
					Source: string(availability.SourcePrimary), Title: "Team meeting",
					StartTime: localDay.Add(14 * time.Hour), EndTime: localDay.Add(15 * time.Hour)})
			}
			if offset%3 == 0 {
				events = append(events, entity.CalendarEvent{
					Source: string(availability.SourceOverride), Title: "Client sync",
					StartTime: localDay.Add(11 * time.Hour), EndTime: localDay.Add(12 * time.Hour)})
			}
			if offset%4 == 0 {
				events = append(events, entity.CalendarEvent{
					Source: string(availability.SourceOverride), Title: "Client review",
					StartTime: localDay.Add(16 * time.Hour), EndTime: localDay.Add(17 * time.Hour)})
			}

			for i := range events {
				events[i].OwnerID = personID
				if err := repo.CreateEvent(ctx, &events[i]); err != nil {
					return err
				}
				seeded++
			}
		}

		logger.Info("Calendar demo data seeded", "person_id", personID, "events", seeded)
	}

	return nil
}
