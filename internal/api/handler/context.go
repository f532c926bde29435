package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/jobtrack/tracker-api/internal/core/domain"
)

// UserIDKey is the echo context key the Auth middleware stores the caller's id under.
const UserIDKey = "user_id"

// ctxUserID extracts the identity injected by the Auth middleware. A missing
// or non-positive id is unauthenticated.
func ctxUserID(c echo.Context) (int64, error) {
	id, _ := c.Get(UserIDKey).(int64)
	if id <= 0 {
		return 0, domain.ErrUnauthorized
	}
	return id, nil
}

// pathJobID parses the :id route parameter.
func pathJobID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, domain.NewValidationError("invalid job id")
	}
	return id, nil
}
