package scheduling

import (
	"scheduling-agent/core/cache"
	"scheduling-agent/core/database"
	"scheduling-agent/core/middleware"
	availabilityService "scheduling-agent/modules/availability/service"
	calendarRepository "scheduling-agent/modules/calendar/repository"
	calendarService "scheduling-agent/modules/calendar/service"
	directoryRepository "scheduling-agent/modules/directory/repository"
	directoryService "scheduling-agent/modules/directory/service"
	"scheduling-agent/modules/scheduling/controller"
	"scheduling-agent/modules/scheduling/router"
	"scheduling-agent/modules/scheduling/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.Database, c *cache.Cache, mw *middleware.Middleware) {
	directoryRepo := directoryRepository.NewDirectoryRepository(db)
	directorySvc := directoryService.NewDirectoryService(directoryRepo, c)

	calendarRepo := calendarRepository.NewCalendarRepository(db)
	calendarSvc := calendarService.NewCalendarService(calendarRepo)

	availabilitySvc := availabilityService.NewAvailabilityService(directorySvc, calendarSvc)
	schedulingSvc := service.NewSchedulingService(directorySvc, availabilitySvc)

	schedulingController := controller.NewSchedulingController(schedulingSvc)
	router.NewSchedulingRouter(schedulingController).Setup(e, mw)
}
