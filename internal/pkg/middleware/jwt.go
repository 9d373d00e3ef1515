package middleware

import (
	"fmt"
	"strings"

	jwtpkg "github.com/freshcart/freshcart/internal/pkg/jwt"
	"github.com/freshcart/freshcart/internal/pkg/models"
	"github.com/freshcart/freshcart/internal/utils"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// JWTAuthMiddleware creates a middleware for JWT authentication
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Get the Authorization header
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			// Check if the Authorization header has the correct format
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			tokenString := parts[1]

			claims, err := jwtpkg.ValidateToken(tokenString, config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			userIDStr, ok := (*claims)["user_id"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing user_id claim")
			}

			role, ok := (*claims)["role"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing role claim")
			}

			userID, err := uuid.Parse(fmt.Sprintf("%v", userIDStr))
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token: user_id is not a valid UUID")
			}

			// Set the user ID and role in the context
			c.Set("user_id", userID)
			c.Set("user_role", role)

			return next(c)
		}
	}
}

// RequireRole restricts a route group to users carrying one of the given roles
func RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role := fmt.Sprintf("%v", c.Get("user_role"))
			for _, allowed := range roles {
				if role == allowed {
					return next(c)
				}
			}
			return utils.ForbiddenResponse(c, "Insufficient role")
		}
	}
}
