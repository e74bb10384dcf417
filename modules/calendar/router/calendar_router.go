package router

import (
	"scheduling-agent/core/middleware"
	"scheduling-agent/modules/calendar/controller"

	"github.com/labstack/echo/v4"
)

// CalendarRouter handles calendar routes
type CalendarRouter struct {
	CalendarController *controller.CalendarController
}

// NewCalendarRouter creates a new router
func NewCalendarRouter(calendarController *controller.CalendarController) *CalendarRouter {
	return &CalendarRouter{
		CalendarController: calendarController,
	}
}

// Setup registers calendar routes
func (r *CalendarRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private", mw.AuthMiddleware())

	calendarRoutes := privateRoutes.Group("/calendar")
	calendarRoutes.GET("/:personId/busy", r.CalendarController.GetBusyTimeline)
	calendarRoutes.GET("/:personId/free", r.CalendarController.GetFreeTime)
}
