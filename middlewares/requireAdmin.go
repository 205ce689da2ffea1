package middlewares

import (
	"net/http"

	"github.com/Kariqs/foodgram-api/models"
	"github.com/gin-gonic/gin"
)

// RequireAdmin must run after RequireAuth. The role is read from the stored
// user, so a demotion applies to tokens issued before it.
func RequireAdmin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user := CurrentUser(ctx)
		if user == nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "User not found in context"})
			return
		}

		if user.Role != models.RoleAdmin {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Admin access required"})
			return
		}

		ctx.Next()
	}
}
