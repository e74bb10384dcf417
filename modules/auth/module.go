package auth

import (
	"context"

	"github.com/labstack/echo/v4"

	"scheduling-agent/core/config"
	"scheduling-agent/core/database"
	"scheduling-agent/core/logger"
	"scheduling-agent/core/middleware"
	"scheduling-agent/core/utils"
	"scheduling-agent/modules/auth/controller"
	"scheduling-agent/modules/auth/entity"
	"scheduling-agent/modules/auth/repository"
	"scheduling-agent/modules/auth/router"
	"scheduling-agent/modules/auth/service"
)

func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware) {
	repo := repository.NewAuthRepository(db)
	authSvc := service.NewAuthService(repo)

	if cfg, ok := config.GetSafe(); ok && cfg.Scheduling.SeedDemoData {
		seedDemoClient(repo)
	}

	authController := controller.NewAuthController(authSvc)
	router.NewAuthRouter(authController).Setup(e, mw)
}

// seedDemoClient registers a throwaway client so the demo environment
// can log in without manual setup. Never enabled in production config.
func seedDemoClient(repo repository.AuthRepositoryInterface) {
	hash, err := utils.HashSecret("demo-secret")
	if err != nil {
		logger.Error("Auth:seedDemoClient:Hash:Error", "error", err)
		return
	}

	client := &entity.APIClient{
		ClientID:   "demo-client",
		SecretHash: hash,
		Name:       "Demo Client",
		IsActive:   true,
	}
	if err := repo.UpsertClient(context.Background(), client); err != nil {
		logger.Error("Auth:seedDemoClient:Error", "error", err)
		return
	}
	logger.Info("Auth demo client seeded", "client_id", client.ClientID)
}
