package directory

import (
	"context"

	"scheduling-agent/core/cache"
	"scheduling-agent/core/config"
	"scheduling-agent/core/database"
	"scheduling-agent/core/logger"
	"scheduling-agent/core/middleware"
	"scheduling-agent/modules/directory/controller"
	"scheduling-agent/modules/directory/repository"
	"scheduling-agent/modules/directory/router"
	"scheduling-agent/modules/directory/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.Database, c *cache.Cache, mw *middleware.Middleware) {
	cfg := config.Get()

	repo := repository.NewDirectoryRepository(db)
	directorySvc := service.NewDirectoryService(repo, c)
	hrSyncSvc := service.NewHRSyncService(repo, cfg.HRAPI)
	documentSvc := service.NewDocumentService(repo, cfg.Storage)

	if cfg.Scheduling.SeedDemoData {
		if err := service.SeedDemoDirectory(context.Background(), repo); err != nil {
			logger.Error("Directory:SeedDemoDirectory:Error", "error", err)
		}
	}

	directoryController := controller.NewDirectoryController(directorySvc, hrSyncSvc, documentSvc)
	router.NewDirectoryRouter(directoryController).Setup(e, mw)
}

// GetService creates a DirectoryService instance for use by other modules
func GetService(db database.Database, c *cache.Cache) service.DirectoryServiceInterface {
	repo := repository.NewDirectoryRepository(db)
	return service.NewDirectoryService(repo, c)
}
