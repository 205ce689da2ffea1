package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Kariqs/foodgram-api/config"
	"github.com/Kariqs/foodgram-api/initializers"
	"github.com/Kariqs/foodgram-api/logger"
	"github.com/Kariqs/foodgram-api/models"
	"github.com/Kariqs/foodgram-api/routes"
	"github.com/Kariqs/foodgram-api/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testAPI struct {
	t       *testing.T
	server  *gin.Engine
	db      *gorm.DB
	storage *testutil.MemoryStorage
}

type testUser struct {
	id    uint
	token string
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger.InitWithWriter("error", "json", io.Discard)

	db := testutil.OpenDB(t)
	require.NoError(t, initializers.Migrate(db))
	require.NoError(t, initializers.RegisterValidators())
	storage := testutil.NewMemoryStorage()

	cfg := config.Default()
	cfg.JWTSecret = "test-secret"
	cfg.FrontendURL = "https://foodgram.test"
	cfg.PageSize = 2

	initializers.DB = db
	initializers.Storage = storage
	config.AppConfig = cfg

	return &testAPI{t: t, server: routes.NewRouter(cfg), db: db, storage: storage}
}

func (a *testAPI) do(method, path, token string, body any) *httptest.ResponseRecorder {
	a.t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}
	w := httptest.NewRecorder()
	a.server.ServeHTTP(w, req)
	return w
}

// register creates an account through the API and logs in.
func (a *testAPI) register(username string) testUser {
	a.t.Helper()
	w := a.do(http.MethodPost, "/api/users", "", map[string]any{
		"email":      username + "@example.com",
		"username":   username,
		"first_name": "First",
		"last_name":  "Last",
		"password":   "s3cret-pass",
	})
	require.Equal(a.t, http.StatusCreated, w.Code, w.Body.String())
	created := decodeObject(a.t, w)

	return testUser{id: uint(created["id"].(float64)), token: a.login(username+"@example.com", "s3cret-pass")}
}

func (a *testAPI) login(email, password string) string {
	a.t.Helper()
	w := a.do(http.MethodPost, "/api/auth/token/login", "", map[string]any{"email": email, "password": password})
	require.Equal(a.t, http.StatusOK, w.Code, w.Body.String())
	return decodeObject(a.t, w)["auth_token"].(string)
}

func (a *testAPI) admin(username string) testUser {
	a.t.Helper()
	user := a.register(username)
	require.NoError(a.t, a.db.Model(&models.User{}).Where("id = ?", user.id).Update("role", models.RoleAdmin).Error)
	user.token = a.login(username+"@example.com", "s3cret-pass")
	return user
}

func (a *testAPI) tag(name, slug string) models.Tag {
	a.t.Helper()
	tag := models.Tag{Name: name, Slug: slug}
	require.NoError(a.t, a.db.Create(&tag).Error)
	return tag
}

func (a *testAPI) ingredient(name, unit string) models.Ingredient {
	a.t.Helper()
	ingredient := models.Ingredient{Name: name, MeasurementUnit: unit}
	require.NoError(a.t, a.db.Create(&ingredient).Error)
	return ingredient
}

type amount struct {
	ID     uint `json:"id"`
	Amount int  `json:"amount"`
}

func recipeBody(name string, tags []uint, ingredients ...amount) map[string]any {
	return map[string]any{
		"name":         name,
		"text":         "Cook " + name,
		"cooking_time": 15,
		"image":        testutil.PNGDataURI(),
		"tags":         tags,
		"ingredients":  ingredients,
	}
}

func (a *testAPI) createRecipe(author testUser, body map[string]any) uint {
	a.t.Helper()
	w := a.do(http.MethodPost, "/api/recipes", author.token, body)
	require.Equal(a.t, http.StatusCreated, w.Code, w.Body.String())
	return uint(decodeObject(a.t, w)["id"].(float64))
}

func decodeObject(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []any {
	t.Helper()
	var out []any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func path(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}
