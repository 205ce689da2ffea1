package controllers

import (
	"bytes"
	"errors"
	"net/http"
	"strings"

	"github.com/Kariqs/foodgram-api/initializers"
	"github.com/Kariqs/foodgram-api/logger"
	"github.com/Kariqs/foodgram-api/models"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// likeEscaper escapes LIKE wildcards with "!", which MySQL and SQLite parse
// the same way.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// GetIngredients supports a case-insensitive name prefix search via ?name=.
func GetIngredients(ctx *gin.Context) {
	query := initializers.DB.Order("name").Order("measurement_unit")
	if name := strings.TrimSpace(ctx.Query("name")); name != "" {
		query = query.Where("LOWER(name) LIKE ? ESCAPE '!'", likeEscaper.Replace(strings.ToLower(name))+"%")
	}

	var ingredients []models.Ingredient
	if err := query.Find(&ingredients).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch ingredients", err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, ingredients)
}

func GetIngredient(ctx *gin.Context) {
	ingredientID, ok := parseID(ctx, "id")
	if !ok {
		sendErrorResponse(ctx, http.StatusNotFound, "Ingredient not found")
		return
	}

	var ingredient models.Ingredient
	if err := initializers.DB.First(&ingredient, ingredientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Ingredient not found")
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve ingredient", err)
		}
		return
	}
	sendJSONResponse(ctx, http.StatusOK, ingredient)
}

// CreateIngredients accepts one ingredient or an array of them. For arrays,
// ingredients that already exist are skipped.
func CreateIngredients(ctx *gin.Context) {
	body, err := ctx.GetRawData()
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if bytes.HasPrefix(bytes.TrimSpace(body), []byte("[")) {
		createIngredientBatch(ctx, body)
		return
	}

	var ingredient models.Ingredient
	if err := binding.JSON.BindBody(body, &ingredient); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	ingredient.ID = 0

	var count int64
	if err := initializers.DB.Model(&models.Ingredient{}).
		Where("name = ? AND measurement_unit = ?", ingredient.Name, ingredient.MeasurementUnit).
		Count(&count).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create ingredient", err)
		return
	}
	if count > 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, "Ingredient already exists")
		return
	}

	if err := initializers.DB.Create(&ingredient).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			sendErrorResponse(ctx, http.StatusBadRequest, "Ingredient already exists")
			return
		}
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create ingredient", err)
		return
	}
	sendJSONResponse(ctx, http.StatusCreated, ingredient)
}

func createIngredientBatch(ctx *gin.Context, body []byte) {
	var ingredients []models.Ingredient
	if err := binding.JSON.BindBody(body, &ingredients); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if len(ingredients) == 0 {
		sendJSONResponse(ctx, http.StatusCreated, gin.H{"created": 0})
		return
	}
	for i := range ingredients {
		ingredients[i].ID = 0
	}

	result := initializers.DB.Clauses(clause.OnConflict{DoNothing: true}).CreateInBatches(&ingredients, 500)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to import ingredients", result.Error)
		return
	}

	logger.Info().Int64("created", result.RowsAffected).Int("received", len(ingredients)).Msg("Ingredients imported")
	sendJSONResponse(ctx, http.StatusCreated, gin.H{"created": result.RowsAffected})
}
