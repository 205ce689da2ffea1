package routes

import (
	"github.com/Kariqs/foodgram-api/controllers"
	"github.com/Kariqs/foodgram-api/middlewares"
	"github.com/gin-gonic/gin"
)

func RecipeRoutes(server *gin.Engine) {
	recipes := server.Group("/api/recipes")
	{
		recipes.GET("", middlewares.OptionalAuth(), controllers.GetRecipes)
		recipes.GET("/:id", middlewares.OptionalAuth(), controllers.GetRecipe)
		recipes.GET("/:id/get-link", controllers.GetRecipeLink)
		recipes.POST("", middlewares.RequireAuth(), controllers.CreateRecipe)
		recipes.PATCH("/:id", middlewares.RequireAuth(), controllers.UpdateRecipe)
		recipes.DELETE("/:id", middlewares.RequireAuth(), controllers.DeleteRecipe)
	}
	server.GET("/s/:code", controllers.RedirectShortLink)
}

func TagRoutes(server *gin.Engine) {
	tags := server.Group("/api/tags")
	{
		tags.GET("", controllers.GetTags)
		tags.GET("/:id", controllers.GetTag)
		tags.POST("", middlewares.RequireAuth(), middlewares.RequireAdmin(), controllers.CreateTag)
	}
}

func IngredientRoutes(server *gin.Engine) {
	ingredients := server.Group("/api/ingredients")
	{
		ingredients.GET("", controllers.GetIngredients)
		ingredients.GET("/:id", controllers.GetIngredient)
		ingredients.POST("", middlewares.RequireAuth(), middlewares.RequireAdmin(), controllers.CreateIngredients)
	}
}
