package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to Foodgram API. Share recipes and plan your shopping.

The following are the endpoints for this API:

AUTH
- POST "/api/auth/token/login" - Obtain a token
- POST "/api/auth/token/logout" - Revoke issued tokens

USERS
- POST "/api/users" - Create user account
- GET "/api/users" - List users
- GET "/api/users/{id}" - Get user by ID
- GET "/api/users/me" - Current user
- PUT "/api/users/me/avatar" - Upload avatar
- DELETE "/api/users/me/avatar" - Remove avatar
- POST "/api/users/set_password" - Change password
- GET "/api/users/subscriptions" - Authors you follow
- POST "/api/users/{id}/subscribe" - Follow an author
- DELETE "/api/users/{id}/subscribe" - Unfollow an author

TAGS & INGREDIENTS
- GET "/api/tags" - List tags
- GET "/api/tags/{id}" - Get tag by ID
- GET "/api/ingredients?name=" - Search ingredients by name prefix
- GET "/api/ingredients/{id}" - Get ingredient by ID

RECIPES
- GET "/api/recipes" - List recipes (filters: author, tags, is_favorited, is_in_shopping_cart)
- POST "/api/recipes" - Create recipe
- GET "/api/recipes/{id}" - Get recipe by ID
- PATCH "/api/recipes/{id}" - Update recipe
- DELETE "/api/recipes/{id}" - Delete recipe
- GET "/api/recipes/{id}/get-link" - Short link to a recipe
- POST|DELETE "/api/recipes/{id}/favorite" - Manage favorites
- POST|DELETE "/api/recipes/{id}/shopping_cart" - Manage shopping cart
- GET "/api/recipes/download_shopping_cart" - Download shopping list`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
