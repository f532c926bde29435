package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/jobtrack/tracker-api/internal/api/handler"
	"github.com/jobtrack/tracker-api/internal/core/ports"
)

// Auth verifies the bearer token and injects the caller's user id into context.
// Any failure is returned as domain.ErrUnauthorized and rendered by the
// central error handler.
func Auth(verifier ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, err := verifier.Verify(c.Request().Header.Get(echo.HeaderAuthorization))
			if err != nil {
				return err
			}

			c.Set(handler.UserIDKey, userID)
			return next(c)
		}
	}
}
