package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/littleforest/storefront/internal/models"
	"github.com/littleforest/storefront/internal/usecase"
)

// JWTAuth guards back-office routes. The token must parse, exist in the
// revocation store, and belong to an active allow-listed account.
func JWTAuth(authUsecase *usecase.AuthUseCase) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format")
			}

			ctx := c.Request().Context()
			user, err := authUsecase.ValidateToken(ctx, tokenString)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			// Store user in context for downstream handlers
			c.Set("user", user)
			c.Set("token", tokenString)
			return next(c)
		}
	}
}

// CurrentUser returns the authenticated admin placed by JWTAuth, or nil.
func CurrentUser(c echo.Context) *models.AdminUser {
	user, _ := c.Get("user").(*models.AdminUser)
	return user
}

// CurrentToken returns the raw bearer token placed by JWTAuth.
func CurrentToken(c echo.Context) string {
	token, _ := c.Get("token").(string)
	return token
}
