package routes

import (
	"github.com/Kariqs/foodgram-api/controllers"
	"github.com/Kariqs/foodgram-api/middlewares"
	"github.com/gin-gonic/gin"
)

func UserRoutes(server *gin.Engine) {
	users := server.Group("/api/users")
	{
		users.POST("", controllers.Signup)
		users.GET("", middlewares.OptionalAuth(), controllers.GetUsers)
		users.GET("/:id", middlewares.OptionalAuth(), controllers.GetUser)
	}

	me := server.Group("/api/users", middlewares.RequireAuth())
	{
		me.GET("/me", controllers.GetMe)
		me.PUT("/me/avatar", controllers.UpdateAvatar)
		me.DELETE("/me/avatar", controllers.DeleteAvatar)
		me.POST("/set_password", controllers.SetPassword)
		me.GET("/subscriptions", controllers.GetSubscriptions)
		me.POST("/:id/subscribe", controllers.Subscribe)
		me.DELETE("/:id/subscribe", controllers.Unsubscribe)
	}
}
