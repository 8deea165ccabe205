package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type stubClearer struct {
	cleared []string
}

func (s *stubClearer) Logout(_ context.Context, sessionID string) error {
	s.cleared = append(s.cleared, sessionID)
	return nil
}

func TestHomeLogout_DisabledIsPassThrough(t *testing.T) {
	e := echo.New()
	clearer := &stubClearer{}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "secret", "sid-1"))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := HomeLogout(false, "secret", clearer, zerolog.Nop())(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if len(clearer.cleared) != 0 {
		t.Fatalf("disabled middleware cleared a session")
	}
}

func TestHomeLogout_EnabledTearsDownSession(t *testing.T) {
	e := echo.New()
	clearer := &stubClearer{}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "secret", "sid-1"))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := HomeLogout(true, "secret", clearer, zerolog.Nop())(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	// The session is gone but the request itself still succeeds.
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(clearer.cleared) != 1 || clearer.cleared[0] != "sid-1" {
		t.Fatalf("session not torn down: %v", clearer.cleared)
	}
}

func TestHomeLogout_AnonymousVisitorUntouched(t *testing.T) {
	e := echo.New()
	clearer := &stubClearer{}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := HomeLogout(true, "secret", clearer, zerolog.Nop())(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(clearer.cleared) != 0 {
		t.Fatalf("anonymous visit cleared a session")
	}
}
