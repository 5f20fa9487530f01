package middleware

import (
	"net/http"
	"strings"

	"todo_backend/internal/domain"
	"todo_backend/internal/service"

	"github.com/gin-gonic/gin"
)

// IdentityKey is the gin context key holding the resolved domain.Identity.
const IdentityKey = "identity"

// Auth verifies the bearer token on every request and stores the resolved
// identity in the context. Verification runs per request, no caching.
func Auth(tokens *service.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
			abortUnauthenticated(c)
			return
		}

		claims, err := tokens.Verify(token)
		if err != nil {
			abortUnauthenticated(c)
			return
		}

		c.Set(IdentityKey, domain.Identity{
			UserID:   claims.UserID,
			Username: claims.Subject,
		})
		c.Next()
	}
}

func abortUnauthenticated(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": domain.ErrNotAuthenticated.Message,
	})
}
