package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/Kariqs/foodgram-api/models"
	"github.com/golang-jwt/jwt/v5"
)

const tokenLifetime = time.Hour * 24 * 30

var ErrInvalidToken = errors.New("invalid token")

// GenerateJWT signs a token for user. The "ver" claim must match the user's
// current token version for the token to be accepted.
func GenerateJWT(user models.User, secret string, now time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID,
		"email":    user.Email,
		"username": user.Username,
		"role":     user.Role,
		"ver":      user.TokenVersion,
		"iat":      now.Unix(),
		"exp":      now.Add(tokenLifetime).Unix(),
	})
	return token.SignedString([]byte(secret))
}

// ParseJWT validates signature and expiry and returns the claims.
func ParseJWT(tokenString, secret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ClaimUint reads a numeric claim. JSON numbers decode as float64.
func ClaimUint(claims jwt.MapClaims, key string) (uint, bool) {
	value, ok := claims[key].(float64)
	if !ok || value < 0 {
		return 0, false
	}
	return uint(value), true
}
