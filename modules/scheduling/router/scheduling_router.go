package router

import (
	"scheduling-agent/core/middleware"
	"scheduling-agent/modules/scheduling/controller"

	"github.com/labstack/echo/v4"
)

// SchedulingRouter handles proposal routes
type SchedulingRouter struct {
	SchedulingController *controller.SchedulingController
}

// NewSchedulingRouter creates a new router
func NewSchedulingRouter(schedulingController *controller.SchedulingController) *SchedulingRouter {
	return &SchedulingRouter{
		SchedulingController: schedulingController,
	}
}

// Setup registers proposal routes
func (r *SchedulingRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private", mw.AuthMiddleware())

	privateRoutes.POST("/proposals", r.SchedulingController.GenerateProposals)
}
