package main

import (
	"github.com/Kariqs/foodgram-api/config"
	"github.com/Kariqs/foodgram-api/initializers"
	"github.com/Kariqs/foodgram-api/logger"
	"github.com/Kariqs/foodgram-api/routes"
	"github.com/gin-gonic/gin"
)

func init() {
	initializers.LoadEnv()
	initializers.ConnectToDB()
	initializers.SyncDatabase()
	initializers.ConnectToStorage()
	if err := initializers.RegisterValidators(); err != nil {
		logger.L().Fatal().Err(err).Msg("Failed to register validators")
	}
}

func main() {
	if config.AppConfig.LogFormat == "json" {
		gin.SetMode(gin.ReleaseMode)
	}

	server := routes.NewRouter(config.AppConfig)
	logger.Info().Str("port", config.AppConfig.ServerPort).Msg("Starting server")
	if err := server.Run(":" + config.AppConfig.ServerPort); err != nil {
		logger.L().Fatal().Err(err).Msg("Server stopped")
	}
}
