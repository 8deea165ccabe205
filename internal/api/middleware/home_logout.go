package middleware

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/credora/creator-platform/internal/api/metrics"
)

// SessionClearer is the slice of the auth service the home-logout middleware
// needs.
type SessionClearer interface {
	Logout(ctx context.Context, sessionID string) error
}

// HomeLogout reproduces the web client's "visiting home always signs you out"
// policy. It is deliberately opt-in: when enabled, an authenticated request
// to the route it wraps tears the session down before the handler runs. The
// request itself still succeeds, the landing page is public.
func HomeLogout(enabled bool, jwtSecret string, auth SessionClearer, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !enabled {
				return next(c)
			}

			sessionID, err := bearerSessionID(c, jwtSecret)
			if err != nil {
				// Anonymous visitor, nothing to tear down.
				return next(c)
			}

			if err := auth.Logout(c.Request().Context(), sessionID); err != nil {
				log.Warn().Err(err).Str("session_id", sessionID).Msg("home-visit logout failed")
			} else {
				metrics.SessionsExpiredTotal.WithLabelValues("home_visit").Inc()
				log.Info().Str("session_id", sessionID).Msg("session ended by home visit")
			}

			return next(c)
		}
	}
}
