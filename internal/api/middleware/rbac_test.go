package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/credora/creator-platform/internal/core/domain"
)

func rbacContext(role string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != "" {
		c.Set("role", role)
	}
	return c, rec
}

func TestRBAC_AllowsListedRole(t *testing.T) {
	c, rec := rbacContext("brand")

	called := false
	handler := RBAC(domain.RoleBrand, domain.RoleAdmin)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRBAC_DeniesUnlistedRole(t *testing.T) {
	c, rec := rbacContext("influencer")

	handler := RBAC(domain.RoleBrand, domain.RoleAdmin)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRBAC_NoImplicitAdminOverride(t *testing.T) {
	// A route whose allow-list omits admin denies admins too.
	c, rec := rbacContext("admin")

	handler := RBAC(domain.RoleInfluencer)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for unlisted admin, got %d", rec.Code)
	}
}

func TestRBAC_DeniesMissingRole(t *testing.T) {
	c, rec := rbacContext("")

	handler := RBAC(domain.RoleBrand)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}
