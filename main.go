package main

import (
	"scheduling-agent/core/logger"
	"scheduling-agent/core/server"
)

// @title Scheduling Agent API
// @version 1.0
// @description Availability engine and meeting proposal API for candidate onboarding

// @host localhost:7070
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token. Example: "Bearer {token}"

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", err)
	}
}
