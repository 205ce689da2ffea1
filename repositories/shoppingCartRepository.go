package repositories

import (
	"context"

	"github.com/Kariqs/foodgram-api/models"
	"github.com/Kariqs/foodgram-api/reports"
	"gorm.io/gorm"
)

// ShoppingCartRepository feeds the shopping list report from the database.
type ShoppingCartRepository struct {
	DB *gorm.DB
}

func NewShoppingCartRepository(db *gorm.DB) ShoppingCartRepository {
	return ShoppingCartRepository{DB: db}
}

// CartRecipes returns the recipes in the user's cart in the default recipe
// order, each with its ingredients.
func (r ShoppingCartRepository) CartRecipes(ctx context.Context, userID uint) ([]reports.CartRecipe, error) {
	var recipes []models.Recipe
	err := r.DB.WithContext(ctx).
		Where("recipes.id IN (?)", r.DB.Model(&models.ShoppingCartEntry{}).Select("recipe_id").Where("user_id = ?", userID)).
		Preload("RecipeIngredients.Ingredient").
		Order(DefaultRecipeOrder).
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}

	cart := make([]reports.CartRecipe, 0, len(recipes))
	for _, recipe := range recipes {
		item := reports.CartRecipe{
			Name:        recipe.Name,
			Ingredients: make([]reports.IngredientAmount, 0, len(recipe.RecipeIngredients)),
		}
		for _, ri := range recipe.RecipeIngredients {
			item.Ingredients = append(item.Ingredients, reports.IngredientAmount{
				Name:   ri.Ingredient.Name,
				Unit:   ri.Ingredient.MeasurementUnit,
				Amount: ri.Amount,
			})
		}
		cart = append(cart, item)
	}
	return cart, nil
}
