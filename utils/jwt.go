package utils

import (
	"errors"
	"os"
	"time"

	"slotbook/config"
	"slotbook/models"

	"github.com/golang-jwt/jwt"
)

func secretKey() []byte {
	secret := config.AppConfig.JWTSecret
	if secret == "" {
		secret = os.Getenv("JWT_SECRET")
	}
	if secret == "" {
		secret = "slotbook-dev-secret"
	}
	return []byte(secret)
}

// GenerateToken creates a signed JWT for the given identity. Used by local
// tooling and tests; in production the identity provider issues the token.
func GenerateToken(identity models.Identity, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":   identity.UserID,
		"name":  identity.Name,
		"email": identity.Email,
		"role":  identity.Role,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
}

// ExtractIdentity validates a token string and extracts the verified caller
// identity from its claims. The role claim defaults to "user" when absent.
func ExtractIdentity(tokenString string) (models.Identity, error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return models.Identity{}, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return models.Identity{}, errors.New("invalid token")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return models.Identity{}, errors.New("token does not contain a valid 'sub' claim")
	}

	identity := models.Identity{UserID: sub, Role: models.RoleUser}
	if name, ok := claims["name"].(string); ok {
		identity.Name = name
	}
	if email, ok := claims["email"].(string); ok {
		identity.Email = email
	}
	if role, ok := claims["role"].(string); ok && role != "" {
		identity.Role = role
	}
	return identity, nil
}
