package main

import (
	"choreboard/config"
	"choreboard/di"
	"choreboard/helper"
	"choreboard/shared/logger"

	"github.com/rs/zerolog/log"

	_ "choreboard/docs"
)

// @title choreboard API
// @version 1.0
// @description Household chore tracker: lists, chores, chore types and the dashboard.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	logger.InitLogger()

	cfg := config.Get()

	logger.Configure(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
