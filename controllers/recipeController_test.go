package controllers_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/Kariqs/foodgram-api/models"
	"github.com/Kariqs/foodgram-api/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRecipe(t *testing.T) {
	api := newTestAPI(t)
	anna := api.register("anna")
	dinner := api.tag("Ужин", "dinner")
	salt := api.ingredient("salt", "g")
	water := api.ingredient("water", "ml")

	w := api.do(http.MethodPost, "/api/recipes", anna.token, recipeBody("Soup", []uint{dinner.ID}, amount{salt.ID, 5}, amount{water.ID, 500}))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := decodeObject(t, w)
	assert.Equal(t, "Soup", body["name"])
	assert.Equal(t, float64(15), body["cooking_time"])
	assert.True(t, strings.HasPrefix(body["image"].(string), "https://media.test/recipes/"))
	assert.Equal(t, false, body["is_favorited"])
	assert.Equal(t, false, body["is_in_shopping_cart"])
	assert.Equal(t, "anna", body["author"].(map[string]any)["username"])

	tags := body["tags"].([]any)
	require.Len(t, tags, 1)
	assert.Equal(t, "dinner", tags[0].(map[string]any)["slug"])

	ingredients := body["ingredients"].([]any)
	require.Len(t, ingredients, 2)
	amounts := map[string]float64{}
	for _, item := range ingredients {
		ingredient := item.(map[string]any)
		amounts[ingredient["name"].(string)] = ingredient["amount"].(float64)
	}
	assert.Equal(t, map[string]float64{"salt": 5, "water": 500}, amounts)
	assert.Len(t, api.storage.Objects, 1)
}

func TestCreateRecipeValidation(t *testing.T) {
	api := newTestAPI(t)
	anna := api.register("anna")
	dinner := api.tag("Ужин", "dinner")
	salt := api.ingredient("salt", "g")

	withField := func(key string, value any) map[string]any {
		body := recipeBody("Soup", []uint{dinner.ID}, amount{salt.ID, 5})
		body[key] = value
		return body
	}

	tests := []struct {
		name string
		body map[string]any
	}{
		{"no tags", withField("tags", []uint{})},
		{"duplicate tags", withField("tags", []uint{dinner.ID, dinner.ID})},
		{"unknown tag", withField("tags", []uint{999})},
		{"no ingredients", withField("ingredients", []amount{})},
		{"duplicate ingredients", withField("ingredients", []amount{{salt.ID, 1}, {salt.ID, 2}})},
		{"unknown ingredient", withField("ingredients", []amount{{999, 1}})},
		{"zero amount", withField("ingredients", []amount{{salt.ID, 0}})},
		{"negative amount", withField("ingredients", []amount{{salt.ID, -3}})},
		{"zero cooking time", withField("cooking_time", 0)},
		{"missing image", withField("image", "")},
		{"image is not an image", withField("image", "data:image/png;base64,aGVsbG8=")},
		{"missing name", withField("name", "")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := api.do(http.MethodPost, "/api/recipes", anna.token, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		})
	}

	var count int64
	require.NoError(t, api.db.Model(&models.Recipe{}).Count(&count).Error)
	assert.Zero(t, count)
	assert.Empty(t, api.storage.Objects)
}

func TestCreateRecipeRequiresAuth(t *testing.T) {
	api := newTestAPI(t)
	dinner := api.tag("Ужин", "dinner")
	salt := api.ingredient("salt", "g")

	w := api.do(http.MethodPost, "/api/recipes", "", recipeBody("Soup", []uint{dinner.ID}, amount{salt.ID, 5}))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdateRecipe(t *testing.T) {
	api := newTestAPI(t)
	anna := api.register("anna")
	boris := api.register("boris")
	dinner := api.tag("Ужин", "dinner")
	lunch := api.tag("Обед", "lunch")
	salt := api.ingredient("salt", "g")
	water := api.ingredient("water", "ml")
	recipeID := api.createRecipe(anna, recipeBody("Soup", []uint{dinner.ID}, amount{salt.ID, 5}))
	original := decodeObject(t, api.do(http.MethodGet, path("/api/recipes/%d", recipeID), "", nil))["image"].(string)

	update := recipeBody("Better soup", []uint{lunch.ID, dinner.ID}, amount{water.ID, 700})
	delete(update, "image")

	forbidden := api.do(http.MethodPatch, path("/api/recipes/%d", recipeID), boris.token, update)
	assert.Equal(t, http.StatusForbidden, forbidden.Code)

	missing := api.do(http.MethodPatch, "/api/recipes/999", anna.token, update)
	assert.Equal(t, http.StatusNotFound, missing.Code)

	w := api.do(http.MethodPatch, path("/api/recipes/%d", recipeID), anna.token, update)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decodeObject(t, w)
	assert.Equal(t, "Better soup", body["name"])
	assert.Equal(t, original, body["image"])
	assert.Len(t, body["tags"], 2)
	ingredients := body["ingredients"].([]any)
	require.Len(t, ingredients, 1)
	assert.Equal(t, "water", ingredients[0].(map[string]any)["name"])
	assert.Empty(t, api.storage.Deleted)

	update["image"] = testutil.PNGDataURI()
	w = api.do(http.MethodPatch, path("/api/recipes/%d", recipeID), anna.token, update)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.NotEqual(t, original, decodeObject(t, w)["image"])
	assert.Equal(t, []string{original}, api.storage.Deleted)
}

func TestDeleteRecipe(t *testing.T) {
	api := newTestAPI(t)
	anna := api.register("anna")
	boris := api.register("boris")
	dinner := api.tag("Ужин", "dinner")
	salt := api.ingredient("salt", "g")
	recipeID := api.createRecipe(anna, recipeBody("Soup", []uint{dinner.ID}, amount{salt.ID, 5}))
	require.Equal(t, http.StatusCreated, api.do(http.MethodPost, path("/api/recipes/%d/favorite", recipeID), boris.token, nil).Code)
	require.Equal(t, http.StatusCreated, api.do(http.MethodPost, path("/api/recipes/%d/shopping_cart", recipeID), boris.token, nil).Code)

	assert.Equal(t, http.StatusForbidden, api.do(http.MethodDelete, path("/api/recipes/%d", recipeID), boris.token, nil).Code)
	assert.Equal(t, http.StatusNoContent, api.do(http.MethodDelete, path("/api/recipes/%d", recipeID), anna.token, nil).Code)
	assert.Equal(t, http.StatusNotFound, api.do(http.MethodGet, path("/api/recipes/%d", recipeID), "", nil).Code)

	for _, model := range []any{&models.RecipeIngredient{}, &models.Favorite{}, &models.ShoppingCartEntry{}} {
		var count int64
		require.NoError(t, api.db.Model(model).Count(&count).Error)
		assert.Zero(t, count)
	}
	var tagLinks int64
	require.NoError(t, api.db.Table("recipe_tags").Count(&tagLinks).Error)
	assert.Zero(t, tagLinks)
	assert.Empty(t, api.storage.Objects)
}

func TestGetRecipesFilters(t *testing.T) {
	api := newTestAPI(t)
	anna := api.register("anna")
	boris := api.register("boris")
	dinner := api.tag("Ужин", "dinner")
	breakfast := api.tag("Завтрак", "breakfast")
	salt := api.ingredient("salt", "g")
	soup := api.createRecipe(anna, recipeBody("Soup", []uint{dinner.ID}, amount{salt.ID, 5}))
	api.createRecipe(anna, recipeBody("Porridge", []uint{breakfast.ID}, amount{salt.ID, 1}))
	toast := api.createRecipe(boris, recipeBody("Toast", []uint{breakfast.ID}, amount{salt.ID, 1}))
	require.Equal(t, http.StatusCreated, api.do(http.MethodPost, path("/api/recipes/%d/favorite", soup), boris.token, nil).Code)
	require.Equal(t, http.StatusCreated, api.do(http.MethodPost, path("/api/recipes/%d/shopping_cart", toast), boris.token, nil).Code)

	names := func(token, query string) []string {
		t.Helper()
		w := api.do(http.MethodGet, "/api/recipes?limit=10"+query, token, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var out []string
		for _, item := range decodeObject(t, w)["results"].([]any) {
			out = append(out, item.(map[string]any)["name"].(string))
		}
		return out
	}

	assert.ElementsMatch(t, []string{"Soup", "Porridge", "Toast"}, names("", ""))
	assert.ElementsMatch(t, []string{"Soup", "Porridge"}, names("", path("&author=%d", anna.id)))
	assert.ElementsMatch(t, []string{"Porridge", "Toast"}, names("", "&tags=breakfast"))
	assert.ElementsMatch(t, []string{"Soup", "Porridge", "Toast"}, names("", "&tags=breakfast&tags=dinner"))
	assert.ElementsMatch(t, []string{"Soup"}, names(boris.token, "&is_favorited=1"))
	assert.ElementsMatch(t, []string{"Toast"}, names(boris.token, "&is_in_shopping_cart=1"))
	assert.ElementsMatch(t, []string{"Soup", "Porridge", "Toast"}, names("", "&is_favorited=1"))

	w := api.do(http.MethodGet, path("/api/recipes/%d", soup), boris.token, nil)
	body := decodeObject(t, w)
	assert.Equal(t, true, body["is_favorited"])
	assert.Equal(t, false, body["is_in_shopping_cart"])
}

func TestGetRecipesPaginates(t *testing.T) {
	api := newTestAPI(t)
	anna := api.register("anna")
	dinner := api.tag("Ужин", "dinner")
	salt := api.ingredient("salt", "g")
	for _, name := range []string{"A", "B", "C"} {
		api.createRecipe(anna, recipeBody(name, []uint{dinner.ID}, amount{salt.ID, 1}))
	}

	body := decodeObject(t, api.do(http.MethodGet, "/api/recipes", "", nil))

	assert.Equal(t, float64(3), body["count"])
	assert.Len(t, body["results"], 2)
	assert.Equal(t, "http://example.com/api/recipes?page=2", body["next"])
}

func TestShortLink(t *testing.T) {
	api := newTestAPI(t)
	anna := api.register("anna")
	dinner := api.tag("Ужин", "dinner")
	salt := api.ingredient("salt", "g")
	recipeID := api.createRecipe(anna, recipeBody("Soup", []uint{dinner.ID}, amount{salt.ID, 1}))

	w := api.do(http.MethodGet, path("/api/recipes/%d/get-link", recipeID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	link := decodeObject(t, w)["short-link"].(string)
	require.True(t, strings.HasPrefix(link, "http://example.com/s/"), link)

	w = api.do(http.MethodGet, strings.TrimPrefix(link, "http://example.com"), "", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, path("https://foodgram.test/recipes/%d", recipeID), w.Header().Get("Location"))

	assert.Equal(t, http.StatusNotFound, api.do(http.MethodGet, "/s/zzzz", "", nil).Code)
	assert.Equal(t, http.StatusNotFound, api.do(http.MethodGet, "/api/recipes/999/get-link", "", nil).Code)
}
