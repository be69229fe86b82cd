package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skillshare/skillshare-api/internal/core/ports"
)

// ctxActor extracts the auth claims injected by the Auth middleware.
// Both the subject id and the role must be present; a token without them
// is structurally valid but unusable and is rejected with 401.
func ctxActor(c echo.Context) (ports.Actor, error) {
	sub, _ := c.Get("sub").(string)
	role, _ := c.Get("role").(string)
	if sub == "" || role == "" {
		return ports.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return ports.Actor{ID: sub, Role: role}, nil
}
