package router

import (
	"scheduling-agent/core/middleware"
	"scheduling-agent/modules/invite/controller"

	"github.com/labstack/echo/v4"
)

// InviteRouter handles booking routes
type InviteRouter struct {
	InviteController *controller.InviteController
}

// NewInviteRouter creates a new router
func NewInviteRouter(inviteController *controller.InviteController) *InviteRouter {
	return &InviteRouter{
		InviteController: inviteController,
	}
}

// Setup registers booking routes
func (r *InviteRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private", mw.AuthMiddleware())

	privateRoutes.POST("/proposals/book", r.InviteController.BookProposal)
	privateRoutes.GET("/candidates/:id/invites", r.InviteController.ListCandidateInvites)
}
