package initializers

import (
	"github.com/Kariqs/foodgram-api/logger"
	"github.com/Kariqs/foodgram-api/models"
	"gorm.io/gorm"
)

// Models lists every table in dependency order.
var Models = []any{
	&models.User{},
	&models.Subscription{},
	&models.Tag{},
	&models.Ingredient{},
	&models.Recipe{},
	&models.RecipeIngredient{},
	&models.Favorite{},
	&models.ShoppingCartEntry{},
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models...)
}

func SyncDatabase() {
	if err := Migrate(DB); err != nil {
		logger.L().Fatal().Err(err).Msg("Failed to migrate database")
	}
	logger.Info().Msg("Database synced successfully.")
}
