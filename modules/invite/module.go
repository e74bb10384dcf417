package invite

import (
	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"

	"scheduling-agent/core/cache"
	"scheduling-agent/core/config"
	"scheduling-agent/core/database"
	"scheduling-agent/core/middleware"
	directory "scheduling-agent/modules/directory"
	"scheduling-agent/modules/invite/controller"
	"scheduling-agent/modules/invite/repository"
	"scheduling-agent/modules/invite/router"
	"scheduling-agent/modules/invite/service"
	"scheduling-agent/modules/invite/worker"
)

func Init(e *echo.Echo, db database.Database, c *cache.Cache, mw *middleware.Middleware) *worker.InviteWorker {
	cfg := config.Get()

	repo := repository.NewInviteRepository(db)
	directorySvc := directory.GetService(db, c)

	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	inviteSvc := service.NewInviteService(repo, directorySvc, client)
	inviteController := controller.NewInviteController(inviteSvc)
	router.NewInviteRouter(inviteController).Setup(e, mw)

	return worker.NewInviteWorker(cfg.Redis, repo)
}
