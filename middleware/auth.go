package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/abtaheetaseen/Life-Drop-Server/models"
	"github.com/abtaheetaseen/Life-Drop-Server/store"
	"github.com/abtaheetaseen/Life-Drop-Server/utils"
	"github.com/gin-gonic/gin"
)

const (
	ClaimsKey = "claims"
	EmailKey  = "email"
)

// RequireToken rejects requests without a valid bearer token and stores the
// decoded identity on the context for the handlers behind it. It never
// touches the datastore.
func RequireToken(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized Access"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.VerifyToken(secret, tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized Access"})
			return
		}

		email, err := utils.EmailFromClaims(claims)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized Access"})
			return
		}

		c.Set(ClaimsKey, claims)
		c.Set(EmailKey, email)
		c.Next()
	}
}

// RequireRole runs after RequireToken and fetches the caller's user record
// on every request. No caching: a role change is honored on the very next
// request.
func RequireRole(users store.UserStore, role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(EmailKey)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		user, err := users.FindByEmail(ctx, email)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}
		if user == nil || user.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden Access"})
			return
		}

		c.Next()
	}
}
