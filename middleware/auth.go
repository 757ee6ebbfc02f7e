package middleware

import (
	"net/http"
	"strings"

	"triptailor/utils"

	"github.com/gin-gonic/gin"
)

// Context keys populated by the gate for downstream handlers.
const (
	ContextClaims    = "claims"
	ContextUserEmail = "userEmail"
)

// TokenAuthMiddleware is the bearer-token gate. It proves only that a valid,
// unexpired token was presented; it performs no role check. Handlers behind
// it read the decoded claims from the gin context.
func TokenAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized access"})
			return
		}

		parts := strings.Fields(authHeader)
		if len(parts) < 2 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized access"})
			return
		}
		tokenString := parts[1]

		claims, err := utils.VerifyToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized access"})
			return
		}

		c.Set(ContextClaims, claims)
		if email, ok := claims["email"].(string); ok {
			c.Set(ContextUserEmail, email)
		}
		c.Next()
	}
}
