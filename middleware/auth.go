// middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	"bookbarn/utils"

	"github.com/gin-gonic/gin"
)

// ContextEmailKey is where the guard stores the resolved identity.
const ContextEmailKey = "email"

// JWTAuthMiddleware is the access guard. A missing or malformed Authorization
// header is 401; a present but invalid or expired token is 403. The split is
// deliberate: absence of a credential and a bad credential are different
// client mistakes. On success the embedded email lands in the context.
//
// Pure validation; the store is never touched here.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		email, err := utils.ExtractEmailFromToken(tokenString)
		if err != nil || email == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden"})
			return
		}

		c.Set(ContextEmailKey, email)
		c.Next()
	}
}

// ResolvedEmail returns the identity the guard stored, if any.
func ResolvedEmail(c *gin.Context) (string, bool) {
	v, ok := c.Get(ContextEmailKey)
	if !ok {
		return "", false
	}
	email, ok := v.(string)
	return email, ok && email != ""
}
