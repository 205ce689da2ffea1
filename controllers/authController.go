package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Kariqs/foodgram-api/config"
	"github.com/Kariqs/foodgram-api/initializers"
	"github.com/Kariqs/foodgram-api/logger"
	"github.com/Kariqs/foodgram-api/middlewares"
	"github.com/Kariqs/foodgram-api/models"
	"github.com/Kariqs/foodgram-api/utils"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	// Default cost for bcrypt password hashing
	bcryptCost = 10

	// Standard response messages
	msgInvalidInput          = "invalid input"
	msgUserAlreadyExists     = "user with this email or username already exists"
	msgFailedToHashPassword  = "failed to hash password"
	msgInvalidCredentials    = "invalid email or password"
	msgFailedToGenerateToken = "failed to generate token"
	msgInternalServerError   = "Internal server error"
	msgWrongPassword         = "current password is incorrect"
)

func sendJSONResponse(ctx *gin.Context, status int, data any) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"message": message})
}

// respondWithError includes the underlying error text for client-side errors.
func respondWithError(ctx *gin.Context, statusCode int, message string, err error) {
	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}
	ctx.JSON(statusCode, gin.H{
		"message": message,
		"error":   errMsg,
	})
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func comparePasswords(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

func checkUserExists(email, username string) (bool, error) {
	var count int64
	err := initializers.DB.Model(&models.User{}).
		Where("email = ? OR username = ?", email, username).
		Count(&count).Error
	return count > 0, err
}

func findUserByEmail(email string) (models.User, error) {
	var user models.User
	result := initializers.DB.Where("email = ?", email).First(&user)
	return user, result.Error
}

// Signup handles user registration
func Signup(ctx *gin.Context) {
	var signUpData models.SignupData
	if err := ctx.ShouldBindJSON(&signUpData); err != nil {
		respondWithError(ctx, http.StatusBadRequest, msgInvalidInput, err)
		return
	}

	exists, err := checkUserExists(signUpData.Email, signUpData.Username)
	if err != nil {
		logger.Error().Err(err).Msg("Database error during user check")
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	if exists {
		sendErrorResponse(ctx, http.StatusBadRequest, msgUserAlreadyExists)
		return
	}

	hashedPassword, err := hashPassword(signUpData.Password)
	if err != nil {
		logger.Error().Err(err).Msg("Password hashing error")
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToHashPassword)
		return
	}

	user := models.User{
		Email:     signUpData.Email,
		Username:  signUpData.Username,
		FirstName: signUpData.FirstName,
		LastName:  signUpData.LastName,
		Password:  hashedPassword,
		Role:      models.RoleUser,
	}
	if result := initializers.DB.Create(&user); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			sendErrorResponse(ctx, http.StatusBadRequest, msgUserAlreadyExists)
			return
		}
		logger.Error().Err(result.Error).Msg("User creation error")
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	logger.Info().Uint("user_id", user.ID).Str("username", user.Username).Msg("User registered")
	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"id":         user.ID,
		"email":      user.Email,
		"username":   user.Username,
		"first_name": user.FirstName,
		"last_name":  user.LastName,
	})
}

// Login exchanges email and password for a token
func Login(ctx *gin.Context) {
	var loginData models.LoginData
	if err := ctx.ShouldBindJSON(&loginData); err != nil {
		respondWithError(ctx, http.StatusBadRequest, msgInvalidInput, err)
		return
	}

	user, err := findUserByEmail(loginData.Email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Error().Err(err).Msg("Database error during login")
		}
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidCredentials)
		return
	}

	if err := comparePasswords(user.Password, loginData.Password); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidCredentials)
		return
	}

	tokenString, err := utils.GenerateJWT(user, config.AppConfig.JWTSecret, time.Now())
	if err != nil {
		logger.Error().Err(err).Msg("JWT generation error")
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToGenerateToken)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"auth_token": tokenString})
}

// Logout revokes every token issued to the current user
func Logout(ctx *gin.Context) {
	user := middlewares.CurrentUser(ctx)

	result := initializers.DB.Model(&models.User{}).
		Where("id = ?", user.ID).
		Update("token_version", gorm.Expr("token_version + 1"))
	if result.Error != nil {
		logger.Error().Err(result.Error).Uint("user_id", user.ID).Msg("Logout error")
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// SetPassword changes the current user's password
func SetPassword(ctx *gin.Context) {
	user := middlewares.CurrentUser(ctx)

	var data models.SetPasswordData
	if err := ctx.ShouldBindJSON(&data); err != nil {
		respondWithError(ctx, http.StatusBadRequest, msgInvalidInput, err)
		return
	}

	if err := comparePasswords(user.Password, data.CurrentPassword); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgWrongPassword)
		return
	}

	hashedPassword, err := hashPassword(data.NewPassword)
	if err != nil {
		logger.Error().Err(err).Msg("Password hashing error")
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToHashPassword)
		return
	}

	if err := initializers.DB.Model(user).Update("password", hashedPassword).Error; err != nil {
		logger.Error().Err(err).Uint("user_id", user.ID).Msg("Unable to update password")
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	ctx.Status(http.StatusNoContent)
}
