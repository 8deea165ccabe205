package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/credora/creator-platform/internal/core/domain"
)

// ctxIdentity extracts the identity fields injected by the Auth middleware
// and performs a fast-fail check before any service call: a non-empty role
// proves the middleware ran.
func ctxIdentity(c echo.Context) (role domain.Role, userID string, err error) {
	r, _ := c.Get("role").(string)
	if r == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	userID, _ = c.Get("user_id").(string)
	return domain.Role(r), userID, nil
}

// ctxSessionID returns the session ID injected by the Auth middleware.
func ctxSessionID(c echo.Context) (string, error) {
	sid, _ := c.Get("session_id").(string)
	if sid == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}
	return sid, nil
}

// ctxRoleOrPublic is for routes that serve both anonymous and authenticated
// callers: absent claims read as the public role.
func ctxRoleOrPublic(c echo.Context) domain.Role {
	r, _ := c.Get("role").(string)
	if r == "" {
		return domain.RolePublic
	}
	return domain.Role(r)
}
