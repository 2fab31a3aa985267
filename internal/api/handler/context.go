package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/comunidad/social-api/internal/api/session"
)

// ctxUserID returns the user id stored by the session gate. A missing id
// means the route was mounted without the gate and is treated as 401.
func ctxUserID(c echo.Context) (string, error) {
	userID, _ := c.Get(session.UserIDKey).(string)
	if userID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "no autorizado")
	}
	return userID, nil
}
