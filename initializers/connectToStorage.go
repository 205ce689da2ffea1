package initializers

import (
	"context"

	"github.com/Kariqs/foodgram-api/config"
	"github.com/Kariqs/foodgram-api/logger"
	"github.com/Kariqs/foodgram-api/utils"
)

// Storage holds recipe images and avatars.
var Storage utils.MediaStorage

func ConnectToStorage() {
	s3Storage, err := utils.NewS3Storage(context.Background(), config.AppConfig.AWSBucket, config.AppConfig.MediaBaseURL)
	if err != nil {
		logger.L().Fatal().Err(err).Msg("Failed to configure media storage")
	}
	Storage = s3Storage
	logger.Info().Str("bucket", config.AppConfig.AWSBucket).Msg("Media storage configured")
}
