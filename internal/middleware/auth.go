package middleware

import (
	"strings"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// TokenCookieName is the HTTP-only cookie carrying the access token for
// browser clients that do not set the Authorization header.
const TokenCookieName = "token"

// extractToken returns the access token from the Authorization header, or
// from the token cookie when the header is absent. Header wins.
func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	if cookie, err := c.Cookie(TokenCookieName); err == nil && cookie != "" {
		return cookie
	}
	return ""
}

// AuthMiddleware validates the access token and stores the identity in the
// gin context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := extractToken(c)
		if tokenStr == "" {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authentication credential missing"))
			c.Abort()
			return
		}

		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			apperrors.HandleError(c, apperrors.ErrInvalidToken)
			c.Abort()
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("role", claims.Role)

		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireRoles restricts a route group to the given roles. Role checks are
// exhaustive over the closed enum; unknown role strings never pass.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	roleSet := make(map[models.UserRole]bool)
	for _, r := range roles {
		roleSet[r] = true
	}

	return func(c *gin.Context) {
		roleVal, exists := c.Get("role")
		if !exists {
			apperrors.HandleError(c, apperrors.NewForbiddenError("Access denied: no role"))
			c.Abort()
			return
		}

		roleStr, ok := roleVal.(string)
		if !ok {
			apperrors.HandleError(c, apperrors.NewForbiddenError("Access denied: invalid role type"))
			c.Abort()
			return
		}

		if !roleSet[models.UserRole(roleStr)] {
			apperrors.HandleError(c, apperrors.ErrInsufficientPermissions)
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetUserID extracts the authenticated user ID from the context.
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get("userID")
	if !exists {
		return ""
	}

	id, ok := userID.(string)
	if !ok {
		return ""
	}
	return id
}
