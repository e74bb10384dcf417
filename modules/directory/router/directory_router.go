package router

import (
	"scheduling-agent/core/middleware"
	"scheduling-agent/modules/directory/controller"

	"github.com/labstack/echo/v4"
)

// DirectoryRouter handles directory routes
type DirectoryRouter struct {
	DirectoryController *controller.DirectoryController
}

// NewDirectoryRouter creates a new router
func NewDirectoryRouter(directoryController *controller.DirectoryController) *DirectoryRouter {
	return &DirectoryRouter{
		DirectoryController: directoryController,
	}
}

// Setup registers directory routes
func (r *DirectoryRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private", mw.AuthMiddleware())

	candidateRoutes := privateRoutes.Group("/candidates")
	candidateRoutes.GET("", r.DirectoryController.ListCandidates)
	candidateRoutes.GET("/:id", r.DirectoryController.GetCandidate)
	candidateRoutes.GET("/:id/personas", r.DirectoryController.GetCandidateManagers)
	candidateRoutes.GET("/:id/documents", r.DirectoryController.ListDocuments)
	candidateRoutes.POST("/:id/documents", r.DirectoryController.UploadDocument)

	privateRoutes.GET("/managers/:id", r.DirectoryController.GetManager)
	privateRoutes.POST("/directory/sync", r.DirectoryController.SyncDirectory)
}
