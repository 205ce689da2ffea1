package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func soupAndStew() []CartRecipe {
	return []CartRecipe{
		{Name: "Soup", Ingredients: []IngredientAmount{
			{Name: "salt", Unit: "g", Amount: 5},
			{Name: "water", Unit: "ml", Amount: 500},
		}},
		{Name: "Stew", Ingredients: []IngredientAmount{
			{Name: "salt", Unit: "g", Amount: 3},
		}},
	}
}

func TestAggregate(t *testing.T) {
	tests := []struct {
		name    string
		recipes []CartRecipe
		want    []Line
	}{
		{
			name:    "empty cart",
			recipes: nil,
			want:    []Line{},
		},
		{
			name:    "sums shared ingredients",
			recipes: soupAndStew(),
			want: []Line{
				{Name: "salt", Unit: "g", Total: 8},
				{Name: "water", Unit: "ml", Total: 500},
			},
		},
		{
			name: "same name with different units stays separate",
			recipes: []CartRecipe{
				{Name: "Pancakes", Ingredients: []IngredientAmount{
					{Name: "milk", Unit: "ml", Amount: 200},
					{Name: "milk", Unit: "g", Amount: 50},
				}},
				{Name: "Porridge", Ingredients: []IngredientAmount{
					{Name: "milk", Unit: "ml", Amount: 300},
				}},
			},
			want: []Line{
				{Name: "milk", Unit: "g", Total: 50},
				{Name: "milk", Unit: "ml", Total: 500},
			},
		},
		{
			name: "non-positive amounts are summed as is",
			recipes: []CartRecipe{
				{Name: "A", Ingredients: []IngredientAmount{{Name: "sugar", Unit: "g", Amount: 0}}},
				{Name: "B", Ingredients: []IngredientAmount{{Name: "sugar", Unit: "g", Amount: -2}}},
				{Name: "C", Ingredients: []IngredientAmount{{Name: "sugar", Unit: "g", Amount: 10}}},
			},
			want: []Line{{Name: "sugar", Unit: "g", Total: 8}},
		},
		{
			name: "recipe without ingredients",
			recipes: []CartRecipe{
				{Name: "Air"},
			},
			want: []Line{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Aggregate(tt.recipes))
		})
	}
}

func TestAggregateIsOrderIndependent(t *testing.T) {
	recipes := []CartRecipe{
		{Name: "Omelette", Ingredients: []IngredientAmount{
			{Name: "яйца", Unit: "шт.", Amount: 3},
			{Name: "молоко", Unit: "мл", Amount: 50},
		}},
		{Name: "Bread", Ingredients: []IngredientAmount{
			{Name: "flour", Unit: "g", Amount: 500},
			{Name: "water", Unit: "ml", Amount: 300},
		}},
		{Name: "Pancakes", Ingredients: []IngredientAmount{
			{Name: "flour", Unit: "g", Amount: 200},
			{Name: "молоко", Unit: "мл", Amount: 400},
			{Name: "яйца", Unit: "шт.", Amount: 2},
		}},
	}
	want := Aggregate(recipes)

	reversed := []CartRecipe{recipes[2], recipes[1], recipes[0]}
	rotated := []CartRecipe{recipes[1], recipes[2], recipes[0]}

	assert.Equal(t, want, Aggregate(reversed))
	assert.Equal(t, want, Aggregate(rotated))
}

func TestAggregateConservesSums(t *testing.T) {
	recipes := soupAndStew()
	recipes = append(recipes, CartRecipe{Name: "Brine", Ingredients: []IngredientAmount{
		{Name: "salt", Unit: "g", Amount: 40},
		{Name: "water", Unit: "ml", Amount: 1000},
	}})

	expected := map[ingredientKey]int{}
	for _, recipe := range recipes {
		for _, ingredient := range recipe.Ingredients {
			expected[ingredientKey{ingredient.Name, ingredient.Unit}] += ingredient.Amount
		}
	}

	lines := Aggregate(recipes)
	assert.Len(t, lines, len(expected))
	for i, line := range lines {
		assert.Equal(t, expected[ingredientKey{line.Name, line.Unit}], line.Total)
		if i > 0 {
			assert.LessOrEqual(t, lines[i-1].Name, line.Name)
		}
	}
}

func TestAggregateDoesNotMutateInput(t *testing.T) {
	recipes := soupAndStew()
	before := soupAndStew()

	Aggregate(recipes)

	assert.Equal(t, before, recipes)
}
