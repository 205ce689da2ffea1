package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Kariqs/foodgram-api/config"
	"github.com/Kariqs/foodgram-api/initializers"
	"github.com/Kariqs/foodgram-api/models"
	"github.com/Kariqs/foodgram-api/utils"
	"github.com/gin-gonic/gin"
)

const (
	ClaimsKey      = "user"
	CurrentUserKey = "currentUser"
)

var errNoToken = errors.New("authentication credentials were not provided")

// RequireAuth accepts "Token <jwt>" or "Bearer <jwt>".
func RequireAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if err := authenticate(ctx); err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
			return
		}
		ctx.Next()
	}
}

// OptionalAuth loads the user when a valid token is present and lets
// anonymous requests through otherwise.
func OptionalAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		_ = authenticate(ctx)
		ctx.Next()
	}
}

// CurrentUser returns the authenticated user or nil.
func CurrentUser(ctx *gin.Context) *models.User {
	value, exists := ctx.Get(CurrentUserKey)
	if !exists {
		return nil
	}
	user, _ := value.(*models.User)
	return user
}

func authenticate(ctx *gin.Context) error {
	header := ctx.GetHeader("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || (scheme != "Token" && scheme != "Bearer") || token == "" {
		return errNoToken
	}

	claims, err := utils.ParseJWT(token, config.AppConfig.JWTSecret)
	if err != nil {
		return err
	}
	userID, ok := utils.ClaimUint(claims, "user_id")
	if !ok {
		return utils.ErrInvalidToken
	}
	version, ok := utils.ClaimUint(claims, "ver")
	if !ok {
		return utils.ErrInvalidToken
	}

	var user models.User
	if err := initializers.DB.WithContext(ctx.Request.Context()).First(&user, userID).Error; err != nil {
		return utils.ErrInvalidToken
	}
	// Logging out bumps the version and revokes every token issued before.
	if uint(user.TokenVersion) != version {
		return utils.ErrInvalidToken
	}

	ctx.Set(ClaimsKey, claims)
	ctx.Set(CurrentUserKey, &user)
	return nil
}
