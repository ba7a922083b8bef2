package delivery

import (
	"errors"
	"net/http"
	"strings"

	authdomain "healthtrack-backend/internal/auth/domain"
	"healthtrack-backend/internal/auth/repository"
	"healthtrack-backend/internal/auth/token"

	"github.com/gin-gonic/gin"
)

// Context keys set by AuthMiddleware.
const (
	ContextUserKey   = "user"
	ContextUserIDKey = "userID"
)

// AuthMiddleware gates a route behind a valid access token. It verifies
// the bearer token, loads the user, and attaches both to the request
// context. Every failure is a 401; the reason string distinguishes
// "expired" from "invalid" so a refresh flow can react.
func AuthMiddleware(tokens *token.Service, users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := bearerToken(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header"})
			c.Abort()
			return
		}

		claims, err := tokens.Verify(raw, token.KindAccess)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": unauthorizedReason(err)})
			c.Abort()
			return
		}

		// Re-resolve the user so stale claims for a deleted account
		// are not trusted.
		user, err := users.FindByID(claims.UserID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			c.Abort()
			return
		}
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
			c.Abort()
			return
		}

		c.Set(ContextUserKey, user)
		c.Set(ContextUserIDKey, user.ID)
		c.Next()
	}
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header. Anything else is rejected before touching the store.
func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func unauthorizedReason(err error) string {
	switch {
	case errors.Is(err, token.ErrExpired):
		return "token expired"
	case errors.Is(err, token.ErrWrongKind):
		return "wrong token type"
	default:
		return "invalid token"
	}
}

// CurrentUser returns the user attached by AuthMiddleware.
func CurrentUser(c *gin.Context) (*authdomain.User, bool) {
	v, ok := c.Get(ContextUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*authdomain.User)
	return user, ok
}

// RequireRole allows only users whose role is in the given set.
// Runs after AuthMiddleware.
func RequireRole(roles ...authdomain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			c.Abort()
			return
		}
		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		c.Abort()
	}
}
