package routes

import (
	"time"

	"github.com/Kariqs/foodgram-api/config"
	"github.com/Kariqs/foodgram-api/logger"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the engine with middleware and every route group.
func NewRouter(cfg *config.Config) *gin.Engine {
	server := gin.New()
	server.Use(logger.GinLogger(), gin.Recovery())
	corsConfig := cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(corsConfig.AllowOrigins) == 0 {
		corsConfig.AllowOrigins = nil
		corsConfig.AllowAllOrigins = true
	}
	server.Use(cors.New(corsConfig))

	DefaultRoutes(server)
	AuthRoutes(server)
	UserRoutes(server)
	TagRoutes(server)
	IngredientRoutes(server)
	RecipeRoutes(server)
	CartRoutes(server)
	return server
}
