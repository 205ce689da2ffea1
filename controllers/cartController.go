package controllers

import (
	"errors"
	"net/http"

	"github.com/Kariqs/foodgram-api/config"
	"github.com/Kariqs/foodgram-api/initializers"
	"github.com/Kariqs/foodgram-api/logger"
	"github.com/Kariqs/foodgram-api/middlewares"
	"github.com/Kariqs/foodgram-api/models"
	"github.com/Kariqs/foodgram-api/reports"
	"github.com/Kariqs/foodgram-api/repositories"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const shoppingListFilename = "shopping_list.txt"

// recipeRelation is a (user, recipe) join table such as favorites or the
// shopping cart.
type recipeRelation struct {
	newRecord  func(userID, recipeID uint) any
	alreadyMsg string
	missingMsg string
}

var (
	favoriteRelation = recipeRelation{
		newRecord: func(userID, recipeID uint) any {
			return &models.Favorite{UserID: userID, RecipeID: recipeID}
		},
		alreadyMsg: "Recipe is already in favorites",
		missingMsg: "Recipe is not in favorites",
	}
	shoppingCartRelation = recipeRelation{
		newRecord: func(userID, recipeID uint) any {
			return &models.ShoppingCartEntry{UserID: userID, RecipeID: recipeID}
		},
		alreadyMsg: "Recipe is already in the shopping cart",
		missingMsg: "Recipe is not in the shopping cart",
	}
)

// table returns an empty record; gorm writes into models it is given, so
// each query gets its own.
func (r recipeRelation) table() any {
	return r.newRecord(0, 0)
}

func (r recipeRelation) add(ctx *gin.Context) {
	user := middlewares.CurrentUser(ctx)
	recipe, ok := findRecipe(ctx)
	if !ok {
		return
	}

	// The unique (user_id, recipe_id) index rejects duplicates.
	if err := initializers.DB.Create(r.newRecord(user.ID, recipe.ID)).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			sendErrorResponse(ctx, http.StatusBadRequest, r.alreadyMsg)
			return
		}
		respondWithError(ctx, http.StatusInternalServerError, msgInternalServerError, err)
		return
	}
	sendJSONResponse(ctx, http.StatusCreated, shortRecipePayload(recipe))
}

func (r recipeRelation) remove(ctx *gin.Context) {
	user := middlewares.CurrentUser(ctx)
	recipe, ok := findRecipe(ctx)
	if !ok {
		return
	}

	result := initializers.DB.Where("user_id = ? AND recipe_id = ?", user.ID, recipe.ID).Delete(r.table())
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, msgInternalServerError, result.Error)
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, r.missingMsg)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func AddToShoppingCart(ctx *gin.Context) {
	shoppingCartRelation.add(ctx)
}

func RemoveFromShoppingCart(ctx *gin.Context) {
	shoppingCartRelation.remove(ctx)
}

func AddToFavorites(ctx *gin.Context) {
	favoriteRelation.add(ctx)
}

func RemoveFromFavorites(ctx *gin.Context) {
	favoriteRelation.remove(ctx)
}

// DownloadShoppingCart returns the aggregated shopping list as a text file.
func DownloadShoppingCart(ctx *gin.Context) {
	user := middlewares.CurrentUser(ctx)

	reporter := reports.NewReporter(repositories.NewShoppingCartRepository(initializers.DB), config.AppConfig.ReportLanguage)
	report, err := reporter.Build(ctx.Request.Context(), user.ID)
	if err != nil {
		logger.Error().Err(err).Uint("user_id", user.ID).Msg("Unable to build shopping list")
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to build shopping list")
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="`+shoppingListFilename+`"`)
	ctx.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(report))
}
