package middleware

import (
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"

	jwtpkg "github.com/arjunks/ambuconnect/internal/pkg/jwt"
	"github.com/arjunks/ambuconnect/internal/pkg/models"
	"github.com/arjunks/ambuconnect/internal/utils"
)

const (
	// Context keys the middleware populates for handlers.
	ContextKeyUserID = "user_id"
	ContextKeyRole   = "user_role"
)

// JWTAuthMiddleware creates a middleware for JWT authentication
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			userID, ok := claims["user_id"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing user_id claim")
			}

			role, ok := claims["role"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing role claim")
			}

			c.Set(ContextKeyUserID, fmt.Sprintf("%v", userID))
			c.Set(ContextKeyRole, fmt.Sprintf("%v", role))

			return next(c)
		}
	}
}

// CurrentUser returns the authenticated identity stored by the middleware.
// An empty id means the request carried no resolvable identity.
func CurrentUser(c echo.Context) (userID, role string) {
	if v, ok := c.Get(ContextKeyUserID).(string); ok {
		userID = v
	}
	if v, ok := c.Get(ContextKeyRole).(string); ok {
		role = v
	}
	return userID, role
}
