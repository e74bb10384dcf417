package repository

import (
	"context"
	"time"

	"scheduling-agent/core/database"
	"scheduling-agent/core/logger"
	"scheduling-agent/modules/calendar/entity"
)

// CalendarRepository handles calendar event database operations
type CalendarRepository struct {
	DB database.Database
}

// NewCalendarRepository creates a new repository instance
func NewCalendarRepository(db database.Database) *CalendarRepository {
	return &CalendarRepository{DB: db}
}

// CalendarRepositoryInterface defines the repository contract
type CalendarRepositoryInterface interface {
	GetEventsInWindow(ctx context.Context, ownerID, source string, windowStart, windowEnd time.Time) ([]entity.CalendarEvent, error)
	CreateEvent(ctx context.Context, event *entity.CalendarEvent) error
	CountEventsByOwner(ctx context.Context, ownerID string) (int, error)
}

// GetEventsInWindow returns one tier's events overlapping the window,
// ordered by start time. Overlap uses half-open interval semantics.
func (r *CalendarRepository) GetEventsInWindow(ctx context.Context, ownerID, source string, windowStart, windowEnd time.Time) ([]entity.CalendarEvent, error) {
	query := `
		SELECT id, owner_id, source, title, start_time, end_time, created_at
		FROM calendar_events
		WHERE owner_id = $1 AND source = $2
		  AND start_time < $4 AND end_time > $3
		ORDER BY start_time
	`

	var events []entity.CalendarEvent
	err := r.DB.SelectContext(ctx, &events, query, ownerID, source, windowStart, windowEnd)
	if err != nil {
		logger.Error("CalendarRepository:GetEventsInWindow", "error", err)
		return nil, err
	}

	return events, nil
}

func (r *CalendarRepository) CreateEvent(ctx context.Context, event *entity.CalendarEvent) error {
	query := `
		INSERT INTO calendar_events (owner_id, source, title, start_time, end_time)
		VALUES ($1, $2, $3, $4, $5)
	`

	err := r.DB.ExecContext(ctx, query,
		event.OwnerID, event.Source, event.Title, event.StartTime, event.EndTime)
	if err != nil {
		logger.Error("CalendarRepository:CreateEvent", "error", err)
	}
	return err
}

func (r *CalendarRepository) CountEventsByOwner(ctx context.Context, ownerID string) (int, error) {
	query := `SELECT COUNT(*) FROM calendar_events WHERE owner_id = $1`

	var count int
	if err := r.DB.GetContext(ctx, &count, query, ownerID); err != nil {
		logger.Error("CalendarRepository:CountEventsByOwner", "error", err)
		return 0, err
	}
	return count, nil
}
