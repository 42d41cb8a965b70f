package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// UserHeader carries the opaque authenticated-user id. Authentication itself
// happens upstream at the identity provider; by the time a request reaches
// this service the header is trusted.
const UserHeader = "X-User-ID"

const userContextKey = "userID"

func RequireUser() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID := c.Request().Header.Get(UserHeader)
			if userID == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing user identity")
			}
			c.Set(userContextKey, userID)
			return next(c)
		}
	}
}

// UserID returns the authenticated user id stored by RequireUser.
func UserID(c echo.Context) string {
	id, _ := c.Get(userContextKey).(string)
	return id
}
