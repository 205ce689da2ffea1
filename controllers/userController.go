package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Kariqs/foodgram-api/initializers"
	"github.com/Kariqs/foodgram-api/logger"
	"github.com/Kariqs/foodgram-api/middlewares"
	"github.com/Kariqs/foodgram-api/models"
	"github.com/Kariqs/foodgram-api/repositories"
	"github.com/Kariqs/foodgram-api/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func currentUserID(ctx *gin.Context) uint {
	if user := middlewares.CurrentUser(ctx); user != nil {
		return user.ID
	}
	return 0
}

func GetUsers(ctx *gin.Context) {
	p := parsePage(ctx)

	var count int64
	if err := initializers.DB.Model(&models.User{}).Count(&count).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch users", err)
		return
	}
	var users []models.User
	if err := initializers.DB.Order("username").Limit(p.limit).Offset(p.offset()).Find(&users).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch users", err)
		return
	}

	ids := make([]uint, 0, len(users))
	for _, user := range users {
		ids = append(ids, user.ID)
	}
	followed, err := repositories.NewUserRepository(initializers.DB).Followed(ctx.Request.Context(), currentUserID(ctx), ids)
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch users", err)
		return
	}

	results := make([]gin.H, 0, len(users))
	for _, user := range users {
		results = append(results, userPayload(user, followed[user.ID]))
	}
	sendJSONResponse(ctx, http.StatusOK, paginated(ctx, p, count, results))
}

func GetUser(ctx *gin.Context) {
	userID, ok := parseID(ctx, "id")
	if !ok {
		sendErrorResponse(ctx, http.StatusNotFound, "User not found")
		return
	}

	var user models.User
	if err := initializers.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "User not found")
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve user", err)
		}
		return
	}

	followed, err := repositories.NewUserRepository(initializers.DB).Followed(ctx.Request.Context(), currentUserID(ctx), []uint{user.ID})
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve user", err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, userPayload(user, followed[user.ID]))
}

func GetMe(ctx *gin.Context) {
	sendJSONResponse(ctx, http.StatusOK, userPayload(*middlewares.CurrentUser(ctx), false))
}

// UpdateAvatar stores a new avatar and removes the previous file.
func UpdateAvatar(ctx *gin.Context) {
	user := middlewares.CurrentUser(ctx)

	var data models.AvatarData
	if err := ctx.ShouldBindJSON(&data); err != nil {
		respondWithError(ctx, http.StatusBadRequest, msgInvalidInput, err)
		return
	}

	avatarURL, err := utils.SaveImage(ctx.Request.Context(), initializers.Storage, "avatars", data.Avatar)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidImage) {
			respondWithError(ctx, http.StatusBadRequest, "Invalid avatar", err)
		} else {
			logger.Error().Err(err).Uint("user_id", user.ID).Msg("Avatar upload failed")
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to upload avatar")
		}
		return
	}

	// Update writes back into user, so the old URL is copied first.
	previous := avatarOf(user)
	if err := initializers.DB.Model(user).Update("avatar", avatarURL).Error; err != nil {
		logger.Error().Err(err).Uint("user_id", user.ID).Msg("Unable to save avatar")
		removeMedia(ctx, avatarURL)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	removeMedia(ctx, previous)

	sendJSONResponse(ctx, http.StatusOK, gin.H{"avatar": avatarURL})
}

func DeleteAvatar(ctx *gin.Context) {
	user := middlewares.CurrentUser(ctx)

	previous := avatarOf(user)
	if err := initializers.DB.Model(user).Update("avatar", nil).Error; err != nil {
		logger.Error().Err(err).Uint("user_id", user.ID).Msg("Unable to clear avatar")
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	removeMedia(ctx, previous)

	ctx.Status(http.StatusNoContent)
}

func avatarOf(user *models.User) string {
	if user.Avatar == nil {
		return ""
	}
	return *user.Avatar
}

// removeMedia deletes a stored file. Failures only leave an orphaned object,
// so they are logged and not returned to the client.
func removeMedia(ctx *gin.Context, url string) {
	if url == "" {
		return
	}
	if err := initializers.Storage.Delete(ctx.Request.Context(), url); err != nil {
		logger.Warn().Err(err).Str("url", url).Msg("Unable to delete media file")
	}
}

func subscriptionPayload(ctx *gin.Context, author models.User, recipesLimit int) (gin.H, error) {
	repo := repositories.NewRecipeRepository(initializers.DB)
	recipes, err := repo.ByAuthor(ctx.Request.Context(), author.ID, recipesLimit)
	if err != nil {
		return nil, err
	}
	count, err := repo.CountByAuthor(ctx.Request.Context(), author.ID)
	if err != nil {
		return nil, err
	}

	payload := userPayload(author, true)
	shortRecipes := make([]gin.H, 0, len(recipes))
	for _, recipe := range recipes {
		shortRecipes = append(shortRecipes, shortRecipePayload(recipe))
	}
	payload["recipes"] = shortRecipes
	payload["recipes_count"] = count
	return payload, nil
}

func recipesLimit(ctx *gin.Context) int {
	limit, err := strconv.Atoi(ctx.Query("recipes_limit"))
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}

func GetSubscriptions(ctx *gin.Context) {
	user := middlewares.CurrentUser(ctx)
	p := parsePage(ctx)

	authors, count, err := repositories.NewUserRepository(initializers.DB).Subscriptions(ctx.Request.Context(), user.ID, p.limit, p.offset())
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch subscriptions", err)
		return
	}

	limit := recipesLimit(ctx)
	results := make([]gin.H, 0, len(authors))
	for _, author := range authors {
		payload, err := subscriptionPayload(ctx, author, limit)
		if err != nil {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch subscriptions", err)
			return
		}
		results = append(results, payload)
	}
	sendJSONResponse(ctx, http.StatusOK, paginated(ctx, p, count, results))
}

func Subscribe(ctx *gin.Context) {
	user := middlewares.CurrentUser(ctx)
	authorID, ok := parseID(ctx, "id")
	if !ok {
		sendErrorResponse(ctx, http.StatusNotFound, "User not found")
		return
	}

	var author models.User
	if err := initializers.DB.First(&author, authorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "User not found")
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve user", err)
		}
		return
	}
	if author.ID == user.ID {
		sendErrorResponse(ctx, http.StatusBadRequest, "You cannot subscribe to yourself")
		return
	}

	if err := initializers.DB.Create(&models.Subscription{UserID: user.ID, AuthorID: author.ID}).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			sendErrorResponse(ctx, http.StatusBadRequest, "You are already subscribed to "+author.Username)
			return
		}
		respondWithError(ctx, http.StatusInternalServerError, "Unable to subscribe", err)
		return
	}

	payload, err := subscriptionPayload(ctx, author, recipesLimit(ctx))
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to subscribe", err)
		return
	}
	sendJSONResponse(ctx, http.StatusCreated, payload)
}

func Unsubscribe(ctx *gin.Context) {
	user := middlewares.CurrentUser(ctx)
	authorID, ok := parseID(ctx, "id")
	if !ok {
		sendErrorResponse(ctx, http.StatusNotFound, "User not found")
		return
	}

	var author models.User
	if err := initializers.DB.First(&author, authorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "User not found")
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve user", err)
		}
		return
	}

	result := initializers.DB.Where("user_id = ? AND author_id = ?", user.ID, author.ID).Delete(&models.Subscription{})
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to unsubscribe", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, "You are not subscribed to "+author.Username)
		return
	}

	ctx.Status(http.StatusNoContent)
}
