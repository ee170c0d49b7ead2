package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tasky-app/tasky-api/internal/constants"
	apierrors "github.com/tasky-app/tasky-api/internal/errors"
	"github.com/tasky-app/tasky-api/internal/services"
)

// RequireAuth validates the bearer token on every request. No session state is
// consulted; the token alone proves identity.
func RequireAuth(tokens *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			apierrors.Unauthorized(c, "Authentication token required")
			c.Abort()
			return
		}

		tokenStr, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenStr == "" {
			apierrors.Unauthorized(c, "Invalid authorization header")
			c.Abort()
			return
		}

		userID, err := tokens.Verify(tokenStr)
		if err != nil {
			apierrors.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		// Store user ID in context for easy access in handlers
		c.Set(constants.ContextKeyUserID, userID)
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	switch v := userID.(type) {
	case uint64:
		return v, true
	case uint:
		return uint64(v), true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	default:
		return 0, false
	}
}
