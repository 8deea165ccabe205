package ports

import (
	"context"
	"time"

	"github.com/credora/creator-platform/internal/core/domain"
)

// LoginInput carries a login attempt from the transport layer.
type LoginInput struct {
	Email    string
	Password string
	// Role is the role the caller selected on the login surface. Demo-mode
	// credentials are keyed by it; registered-user logins ignore it and use
	// the stored role.
	Role domain.Role
}

// LoginResult is returned on successful authentication.
type LoginResult struct {
	Token     string
	Identity  domain.Identity
	ExpiresIn time.Duration
}

// SessionInfo describes the current session for the introspection endpoint.
type SessionInfo struct {
	Identity  domain.Identity
	CreatedAt time.Time
	Remaining time.Duration
}

// AuthService implements login, logout, registration and session lifecycle.
type AuthService interface {
	Login(ctx context.Context, in LoginInput) (*LoginResult, error)
	Logout(ctx context.Context, sessionID string) error
	Register(ctx context.Context, name, email, password string, role domain.Role) (*domain.User, error)
	Session(ctx context.Context, sessionID string) (*SessionInfo, error)
	Refresh(ctx context.Context, sessionID string) (*SessionInfo, error)
}
