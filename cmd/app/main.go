package main

import (
	"forest/config"
	"forest/di"
	"forest/helper"
	"forest/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Forest Booking API
// @version 1.0
// @description Booking backend for rentable products with cart checkout and SMS verification.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if err := helper.AutoMigrate(cfg); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply database migrations")
	}

	http := di.InitializeService()
	http.Serve()
}
