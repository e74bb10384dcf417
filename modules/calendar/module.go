package calendar

import (
	"context"

	"scheduling-agent/core/cache"
	"scheduling-agent/core/config"
	"scheduling-agent/core/database"
	"scheduling-agent/core/logger"
	"scheduling-agent/core/middleware"
	availabilityService "scheduling-agent/modules/availability/service"
	"scheduling-agent/modules/calendar/controller"
	"scheduling-agent/modules/calendar/repository"
	"scheduling-agent/modules/calendar/router"
	"scheduling-agent/modules/calendar/service"
	directory "scheduling-agent/modules/directory"

	"github.com/labstack/echo/v4"
)

// Demo roster seeded by the directory module; calendars follow it
var demoPersonIDs = []string{"cand_001", "cand_002", "mgr_001", "mgr_002", "mgr_003", "mgr_004"}

func Init(e *echo.Echo, db database.Database, c *cache.Cache, mw *middleware.Middleware) {
	cfg := config.Get()

	repo := repository.NewCalendarRepository(db)
	calendarSvc := service.NewCalendarService(repo)

	directorySvc := directory.GetService(db, c)
	availabilitySvc := availabilityService.NewAvailabilityService(directorySvc, calendarSvc)

	if cfg.Scheduling.SeedDemoData {
		if err := service.SeedDemoCalendars(context.Background(), repo, directorySvc, demoPersonIDs, 21); err != nil {
			logger.Error("Calendar:SeedDemoCalendars:Error", "error", err)
		}
	}

	calendarController := controller.NewCalendarController(calendarSvc, availabilitySvc)
	router.NewCalendarRouter(calendarController).Setup(e, mw)
}

// GetService creates a CalendarService instance for use by other modules
func GetService(db database.Database) service.CalendarServiceInterface {
	return service.NewCalendarService(repository.NewCalendarRepository(db))
}
