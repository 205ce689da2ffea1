package controllers

import (
	"github.com/Kariqs/foodgram-api/models"
	"github.com/Kariqs/foodgram-api/repositories"
	"github.com/gin-gonic/gin"
)

func userPayload(user models.User, isSubscribed bool) gin.H {
	return gin.H{
		"id":            user.ID,
		"email":         user.Email,
		"username":      user.Username,
		"first_name":    user.FirstName,
		"last_name":     user.LastName,
		"is_subscribed": isSubscribed,
		"avatar":        user.Avatar,
	}
}

func shortRecipePayload(recipe models.Recipe) gin.H {
	return gin.H{
		"id":           recipe.ID,
		"name":         recipe.Name,
		"image":        recipe.Image,
		"cooking_time": recipe.CookingTime,
	}
}

func recipePayload(recipe models.Recipe, marks repositories.Marks, followed map[uint]bool) gin.H {
	tags := recipe.Tags
	if tags == nil {
		tags = []models.Tag{}
	}
	ingredients := make([]gin.H, 0, len(recipe.RecipeIngredients))
	for _, ri := range recipe.RecipeIngredients {
		ingredients = append(ingredients, gin.H{
			"id":               ri.Ingredient.ID,
			"name":             ri.Ingredient.Name,
			"measurement_unit": ri.Ingredient.MeasurementUnit,
			"amount":           ri.Amount,
		})
	}
	return gin.H{
		"id":                  recipe.ID,
		"tags":                tags,
		"author":              userPayload(recipe.Author, followed[recipe.AuthorID]),
		"ingredients":         ingredients,
		"is_favorited":        marks.Favorited[recipe.ID],
		"is_in_shopping_cart": marks.InCart[recipe.ID],
		"name":                recipe.Name,
		"image":               recipe.Image,
		"text":                recipe.Text,
		"cooking_time":        recipe.CookingTime,
		"pub_date":            recipe.PubDate,
	}
}
