// Package reports builds the downloadable shopping list for a user's cart.
package reports

import (
	"cmp"
	"slices"
)

// IngredientAmount is one ingredient of a recipe together with the amount the recipe needs.
type IngredientAmount struct {
	Name   string
	Unit   string
	Amount int
}

type CartRecipe struct {
	Name        string
	Ingredients []IngredientAmount
}

// Line is the total amount of one ingredient across every recipe in the cart.
type Line struct {
	Name  string
	Unit  string
	Total int
}

type ingredientKey struct {
	name string
	unit string
}

// Aggregate sums ingredient amounts across recipes, grouping by name and
// measurement unit. Lines are ordered by name, then unit.
func Aggregate(recipes []CartRecipe) []Line {
	totals := make(map[ingredientKey]int)
	for _, recipe := range recipes {
		for _, ingredient := range recipe.Ingredients {
			totals[ingredientKey{ingredient.Name, ingredient.Unit}] += ingredient.Amount
		}
	}

	lines := make([]Line, 0, len(totals))
	for key, total := range totals {
		lines = append(lines, Line{Name: key.name, Unit: key.unit, Total: total})
	}
	slices.SortFunc(lines, func(a, b Line) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.Unit, b.Unit))
	})
	return lines
}
