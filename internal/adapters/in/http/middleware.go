package http

import (
	"net/http"
	"strings"

	"backoffice/internal/core/application/auth"

	"github.com/labstack/echo/v4"
)

const identityKey = "identity"

// AuthMiddleware extracts and verifies the bearer token, storing the
// caller identity in the request context for handlers and the policy.
func AuthMiddleware(tokens TokenManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			tokenString, found := strings.CutPrefix(header, "Bearer ")
			if !found || tokenString == "" {
				return c.JSON(http.StatusUnauthorized, apiError{
					Code:    http.StatusUnauthorized,
					Message: "missing bearer token",
				})
			}

			identity, err := tokens.Parse(tokenString)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, apiError{
					Code:    http.StatusUnauthorized,
					Message: "invalid token",
				})
			}

			c.Set(identityKey, identity)
			return next(c)
		}
	}
}

// identityFrom reads the caller identity stored by AuthMiddleware.
func identityFrom(c echo.Context) auth.Identity {
	identity, _ := c.Get(identityKey).(auth.Identity)
	return identity
}
