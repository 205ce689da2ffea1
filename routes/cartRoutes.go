package routes

import (
	"github.com/Kariqs/foodgram-api/controllers"
	"github.com/Kariqs/foodgram-api/middlewares"
	"github.com/gin-gonic/gin"
)

func CartRoutes(server *gin.Engine) {
	recipes := server.Group("/api/recipes", middlewares.RequireAuth())
	{
		recipes.GET("/download_shopping_cart", controllers.DownloadShoppingCart)
		recipes.POST("/:id/shopping_cart", controllers.AddToShoppingCart)
		recipes.DELETE("/:id/shopping_cart", controllers.RemoveFromShoppingCart)
		recipes.POST("/:id/favorite", controllers.AddToFavorites)
		recipes.DELETE("/:id/favorite", controllers.RemoveFromFavorites)
	}
}
