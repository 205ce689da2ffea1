package routes

import (
	"github.com/Kariqs/foodgram-api/controllers"
	"github.com/Kariqs/foodgram-api/middlewares"
	"github.com/gin-gonic/gin"
)

func AuthRoutes(server *gin.Engine) {
	auth := server.Group("/api/auth/token")
	{
		auth.POST("/login", controllers.Login)
		auth.POST("/logout", middlewares.RequireAuth(), controllers.Logout)
	}
}
