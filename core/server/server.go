package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"scheduling-agent/core/cache"
	"scheduling-agent/core/config"
	"scheduling-agent/core/database"
	"scheduling-agent/core/logger"
	"scheduling-agent/core/middleware"
	"scheduling-agent/modules/auth"
	"scheduling-agent/modules/calendar"
	"scheduling-agent/modules/directory"
	"scheduling-agent/modules/invite"
	"scheduling-agent/modules/scheduling"
)

// Run boots the whole service: config, database, cache, HTTP routes and
// the invite delivery worker. It blocks until SIGINT/SIGTERM, then
// shuts everything down gracefully.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger.Init(cfg.Server.LogLevel)

	db, err := database.InitDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := database.EnsureSchema(ctx, db); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}

	// The directory cache is an optimization; run without it if redis
	// is unreachable.
	c, err := cache.NewCache(cfg.Redis)
	if err != nil {
		logger.Warn("Server:Run:CacheUnavailable", "error", err)
		c = nil
	}

	e := echo.New()
	e.HideBanner = true

	mw := middleware.NewMiddleware()
	e.Use(echoMiddleware.Recover())
	e.Use(mw.RequestLogger())

	e.GET("/health", func(ec echo.Context) error {
		return ec.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	auth.Init(e, db, mw)
	directory.Init(e, db, c, mw)
	calendar.Init(e, db, c, mw)
	scheduling.Init(e, db, c, mw)
	inviteWorker := invite.Init(e, db, c, mw)

	workerErr := inviteWorker.Start()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	serverErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP server starting", "addr", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	var runErr error
	select {
	case err := <-serverErr:
		runErr = fmt.Errorf("http server: %w", err)
	case err := <-workerErr:
		runErr = fmt.Errorf("invite worker: %w", err)
	case sig := <-quit:
		logger.Info("Shutting down", "signal", sig.String())
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer shutdownCancel()

	inviteWorker.Shutdown()
	if err := e.Shutdown(shutdownCtx); err != nil {
		if runErr == nil {
			runErr = fmt.Errorf("shutdown: %w", err)
		} else {
			logger.Warn("Server:Run:Shutdown:Error", "error", err)
		}
	}
	if c != nil {
		if err := c.Close(); err != nil {
			logger.Warn("Server:Run:CacheClose:Error", "error", err)
		}
	}

	if runErr != nil {
		return runErr
	}
	logger.Info("Shutdown complete")
	return nil
}
