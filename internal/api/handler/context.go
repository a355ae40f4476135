package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxIdentity extracts the authenticated user ID injected by the Auth
// middleware. A missing or zero ID means the middleware did not run; reject
// with 401 before touching any service.
func ctxIdentity(c echo.Context) (int64, error) {
	userID, _ := c.Get("user_id").(int64)
	if userID == 0 {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, nil
}
