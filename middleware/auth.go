package middleware

import (
	"net/http"
	"strings"

	"slotbook/models"
	"slotbook/utils"

	"github.com/gin-gonic/gin"
)

// identityKey is the gin context key the verified identity is stored under.
const identityKey = "identity"

// AuthMiddleware validates the Bearer token and stores the verified caller
// identity in the request context. The token comes from the external
// identity provider; this service only verifies and reads it.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		identity, err := utils.ExtractIdentity(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		SetIdentity(c, identity)
		c.Next()
	}
}

// SetIdentity stores the verified identity on the context. Exported so
// handler tests can inject a caller without minting tokens.
func SetIdentity(c *gin.Context, identity models.Identity) {
	c.Set(identityKey, identity)
}

// GetIdentity retrieves the verified identity set by AuthMiddleware.
func GetIdentity(c *gin.Context) (models.Identity, bool) {
	val, ok := c.Get(identityKey)
	if !ok {
		return models.Identity{}, false
	}
	identity, ok := val.(models.Identity)
	return identity, ok
}
