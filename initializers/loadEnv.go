package initializers

import (
	"github.com/Kariqs/foodgram-api/config"
	"github.com/Kariqs/foodgram-api/logger"
	"github.com/joho/godotenv"
)

func LoadEnv() {
	envErr := godotenv.Load()

	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogFormat)

	if envErr != nil {
		logger.Debug().Err(envErr).Msg("No .env file loaded, using process environment")
	}
}
