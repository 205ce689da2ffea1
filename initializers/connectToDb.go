package initializers

import (
	"github.com/Kariqs/foodgram-api/config"
	"github.com/Kariqs/foodgram-api/logger"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var DB *gorm.DB

func ConnectToDB() {
	var err error
	DB, err = gorm.Open(mysql.Open(config.AppConfig.DatabaseDSN), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
		TranslateError: true,
	})
	if err != nil {
		logger.L().Fatal().Err(err).Msg("Failed to connect to database")
	}
	logger.Info().Msg("Database connection established")
}
