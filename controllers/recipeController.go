package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Kariqs/foodgram-api/config"
	"github.com/Kariqs/foodgram-api/initializers"
	"github.com/Kariqs/foodgram-api/logger"
	"github.com/Kariqs/foodgram-api/middlewares"
	"github.com/Kariqs/foodgram-api/models"
	"github.com/Kariqs/foodgram-api/repositories"
	"github.com/Kariqs/foodgram-api/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var errUnknownReference = errors.New("unknown reference")

func isTruthy(value string) bool {
	switch value {
	case "1", "true", "True":
		return true
	}
	return false
}

// recipeFilter reads the list filters. Favorite and cart filters only apply
// to authenticated users and are ignored for anonymous requests.
func recipeFilter(ctx *gin.Context) repositories.RecipeFilter {
	var filter repositories.RecipeFilter
	if author, err := strconv.ParseUint(ctx.Query("author"), 10, 64); err == nil {
		filter.AuthorID = uint(author)
	}
	filter.TagSlugs = ctx.QueryArray("tags")

	if userID := currentUserID(ctx); userID != 0 {
		if isTruthy(ctx.Query("is_favorited")) {
			filter.FavoritedBy = userID
		}
		if isTruthy(ctx.Query("is_in_shopping_cart")) {
			filter.InCartOf = userID
		}
	}
	return filter
}

// recipePayloads decorates recipes with the viewer's favorite, cart and
// subscription state.
func recipePayloads(ctx *gin.Context, recipes []models.Recipe) ([]gin.H, error) {
	userID := currentUserID(ctx)
	recipeIDs := make([]uint, 0, len(recipes))
	authorIDs := make([]uint, 0, len(recipes))
	for _, recipe := range recipes {
		recipeIDs = append(recipeIDs, recipe.ID)
		authorIDs = append(authorIDs, recipe.AuthorID)
	}

	marks, err := repositories.NewRecipeRepository(initializers.DB).Marks(ctx.Request.Context(), userID, recipeIDs)
	if err != nil {
		return nil, err
	}
	followed, err := repositories.NewUserRepository(initializers.DB).Followed(ctx.Request.Context(), userID, authorIDs)
	if err != nil {
		return nil, err
	}

	payloads := make([]gin.H, 0, len(recipes))
	for _, recipe := range recipes {
		payloads = append(payloads, recipePayload(recipe, marks, followed))
	}
	return payloads, nil
}

func respondWithRecipe(ctx *gin.Context, status int, recipeID uint) {
	recipe, err := repositories.NewRecipeRepository(initializers.DB).Get(ctx.Request.Context(), recipeID)
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve recipe", err)
		return
	}
	payloads, err := recipePayloads(ctx, []models.Recipe{recipe})
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve recipe", err)
		return
	}
	sendJSONResponse(ctx, status, payloads[0])
}

// findRecipe writes a 404 or 500 response and returns false when the recipe
// in the :id path parameter cannot be loaded.
func findRecipe(ctx *gin.Context) (models.Recipe, bool) {
	var recipe models.Recipe
	recipeID, ok := parseID(ctx, "id")
	if !ok {
		sendErrorResponse(ctx, http.StatusNotFound, "Recipe not found")
		return recipe, false
	}
	if err := initializers.DB.First(&recipe, recipeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Recipe not found")
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve recipe", err)
		}
		return recipe, false
	}
	return recipe, true
}

func GetRecipes(ctx *gin.Context) {
	p := parsePage(ctx)

	recipes, count, err := repositories.NewRecipeRepository(initializers.DB).
		List(ctx.Request.Context(), recipeFilter(ctx), p.limit, p.offset())
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch recipes", err)
		return
	}

	payloads, err := recipePayloads(ctx, recipes)
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch recipes", err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, paginated(ctx, p, count, payloads))
}

func GetRecipe(ctx *gin.Context) {
	recipe, ok := findRecipe(ctx)
	if !ok {
		return
	}
	respondWithRecipe(ctx, http.StatusOK, recipe.ID)
}

// loadTags checks that every referenced tag and ingredient exists.
func loadTags(input models.RecipeInput) ([]models.Tag, error) {
	var tags []models.Tag
	if err := initializers.DB.Where("id IN ?", input.Tags).Find(&tags).Error; err != nil {
		return nil, err
	}
	if len(tags) != len(input.Tags) {
		return nil, fmt.Errorf("%w: tag does not exist", errUnknownReference)
	}

	ingredientIDs := make([]uint, 0, len(input.Ingredients))
	for _, item := range input.Ingredients {
		ingredientIDs = append(ingredientIDs, item.ID)
	}
	var count int64
	if err := initializers.DB.Model(&models.Ingredient{}).Where("id IN ?", ingredientIDs).Count(&count).Error; err != nil {
		return nil, err
	}
	if count != int64(len(ingredientIDs)) {
		return nil, fmt.Errorf("%w: ingredient does not exist", errUnknownReference)
	}
	return tags, nil
}

// bindRecipeInput writes a 400 or 500 response and returns false on failure.
func bindRecipeInput(ctx *gin.Context) (models.RecipeInput, []models.Tag, bool) {
	var input models.RecipeInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return input, nil, false
	}
	tags, err := loadTags(input)
	if err != nil {
		if errors.Is(err, errUnknownReference) {
			respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to validate recipe", err)
		}
		return input, nil, false
	}
	return input, tags, true
}

func uploadRecipeImage(ctx *gin.Context, dataURI string) (string, bool) {
	imageURL, err := utils.SaveImage(ctx.Request.Context(), initializers.Storage, "recipes", dataURI)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidImage) {
			respondWithError(ctx, http.StatusBadRequest, "Invalid image", err)
		} else {
			logger.Error().Err(err).Msg("Recipe image upload failed")
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to upload image")
		}
		return "", false
	}
	return imageURL, true
}

func replaceRecipeRelations(tx *gorm.DB, recipe *models.Recipe, tags []models.Tag, items []models.RecipeIngredientInput) error {
	if err := tx.Model(recipe).Association("Tags").Replace(tags); err != nil {
		return fmt.Errorf("replace tags: %w", err)
	}
	if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.RecipeIngredient{}).Error; err != nil {
		return fmt.Errorf("clear ingredients: %w", err)
	}
	rows := make([]models.RecipeIngredient, 0, len(items))
	for _, item := range items {
		rows = append(rows, models.RecipeIngredient{RecipeID: recipe.ID, IngredientID: item.ID, Amount: item.Amount})
	}
	if err := tx.Create(&rows).Error; err != nil {
		return fmt.Errorf("create ingredients: %w", err)
	}
	return nil
}

func CreateRecipe(ctx *gin.Context) {
	user := middlewares.CurrentUser(ctx)

	input, tags, ok := bindRecipeInput(ctx)
	if !ok {
		return
	}
	if input.Image == "" {
		sendErrorResponse(ctx, http.StatusBadRequest, "Image is required")
		return
	}
	imageURL, ok := uploadRecipeImage(ctx, input.Image)
	if !ok {
		return
	}

	recipe := models.Recipe{
		AuthorID:    user.ID,
		Name:        input.Name,
		Image:       imageURL,
		Text:        input.Text,
		CookingTime: input.CookingTime,
	}
	err := initializers.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&recipe).Error; err != nil {
			return err
		}
		return replaceRecipeRelations(tx, &recipe, tags, input.Ingredients)
	})
	if err != nil {
		removeMedia(ctx, imageURL)
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create recipe", err)
		return
	}

	logger.Info().Uint("recipe_id", recipe.ID).Uint("author_id", user.ID).Msg("Recipe created")
	respondWithRecipe(ctx, http.StatusCreated, recipe.ID)
}

func UpdateRecipe(ctx *gin.Context) {
	user := middlewares.CurrentUser(ctx)
	recipe, ok := findRecipe(ctx)
	if !ok {
		return
	}
	if recipe.AuthorID != user.ID {
		sendErrorResponse(ctx, http.StatusForbidden, "Only the author can change this recipe")
		return
	}

	input, tags, ok := bindRecipeInput(ctx)
	if !ok {
		return
	}

	previousImage := recipe.Image
	imageURL := recipe.Image
	if input.Image != "" {
		if imageURL, ok = uploadRecipeImage(ctx, input.Image); !ok {
			return
		}
	}

	err := initializers.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&recipe).Omit(clause.Associations).Updates(map[string]any{
			"name":         input.Name,
			"text":         input.Text,
			"cooking_time": input.CookingTime,
			"image":        imageURL,
		}).Error; err != nil {
			return err
		}
		return replaceRecipeRelations(tx, &recipe, tags, input.Ingredients)
	})
	if err != nil {
		if imageURL != previousImage {
			removeMedia(ctx, imageURL)
		}
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update recipe", err)
		return
	}
	if imageURL != previousImage {
		removeMedia(ctx, previousImage)
	}

	respondWithRecipe(ctx, http.StatusOK, recipe.ID)
}

func DeleteRecipe(ctx *gin.Context) {
	user := middlewares.CurrentUser(ctx)
	recipe, ok := findRecipe(ctx)
	if !ok {
		return
	}
	if recipe.AuthorID != user.ID {
		sendErrorResponse(ctx, http.StatusForbidden, "Only the author can delete this recipe")
		return
	}

	err := initializers.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&recipe).Association("Tags").Clear(); err != nil {
			return err
		}
		for _, model := range []any{&models.RecipeIngredient{}, &models.Favorite{}, &models.ShoppingCartEntry{}} {
			if err := tx.Where("recipe_id = ?", recipe.ID).Delete(model).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&recipe).Error
	})
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to delete recipe", err)
		return
	}
	removeMedia(ctx, recipe.Image)

	ctx.Status(http.StatusNoContent)
}

// Short links encode the recipe id in base 36.
func GetRecipeLink(ctx *gin.Context) {
	recipe, ok := findRecipe(ctx)
	if !ok {
		return
	}
	code := strconv.FormatUint(uint64(recipe.ID), 36)
	sendJSONResponse(ctx, http.StatusOK, gin.H{"short-link": requestBaseURL(ctx) + "/s/" + code})
}

func RedirectShortLink(ctx *gin.Context) {
	recipeID, err := strconv.ParseUint(ctx.Param("code"), 36, 64)
	if err != nil || recipeID == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "Recipe not found")
		return
	}

	var count int64
	if err := initializers.DB.Model(&models.Recipe{}).Where("id = ?", recipeID).Count(&count).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve recipe", err)
		return
	}
	if count == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "Recipe not found")
		return
	}

	ctx.Redirect(http.StatusFound, fmt.Sprintf("%s/recipes/%d", config.AppConfig.FrontendURL, recipeID))
}
