package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mkobayashi/portfolio-api/internal/constants"
	apierrors "github.com/mkobayashi/portfolio-api/internal/errors"
	"github.com/mkobayashi/portfolio-api/internal/models"
	"github.com/mkobayashi/portfolio-api/internal/repository"
	"github.com/mkobayashi/portfolio-api/internal/services"
)

// RequireAuth verifies the bearer token and resolves it to a live user,
// which is attached to the request context. Every rejection is a 401; the
// reasons differ so failures are distinguishable in logs and tests, but no
// path reveals more than the category of failure.
func RequireAuth(tokens *services.TokenService, users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer") {
			apierrors.Unauthorized(c, "Not authorized, no token")
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || strings.TrimSpace(parts[1]) == "" {
			apierrors.Unauthorized(c, "Not authorized, token format is invalid")
			c.Abort()
			return
		}

		userID, err := tokens.Verify(strings.TrimSpace(parts[1]))
		if err != nil {
			apierrors.Unauthorized(c, "Not authorized, token failed")
			c.Abort()
			return
		}

		// Tokens outlive nothing: the user must still exist.
		user, err := users.FindByID(userID)
		if err != nil {
			apierrors.Unauthorized(c, "Not authorized, user not found")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUser, user)
		c.Next()
	}
}

// GetUser retrieves the authenticated user from the request context.
func GetUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(constants.ContextKeyUser)
	if !exists {
		return nil, false
	}

	user, ok := value.(*models.User)
	if !ok {
		return nil, false
	}
	return user, true
}
