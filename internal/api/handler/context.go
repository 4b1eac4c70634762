package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskforge/task-manager/internal/api/middleware"
	"github.com/taskforge/task-manager/internal/core/domain"
)

// principal rebuilds the caller's identity from the claims the Auth
// middleware injected. A missing user id means the middleware did not run
// or the token carried no subject; either way the request is rejected
// before any service call.
func principal(c echo.Context) (domain.Principal, error) {
	userID, _ := c.Get(middleware.KeyUserID).(string)
	if userID == "" {
		return domain.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	email, _ := c.Get(middleware.KeyEmail).(string)
	role, _ := c.Get(middleware.KeyRole).(string)

	return domain.Principal{UserID: userID, Email: email, Role: role}, nil
}
