package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/credora/creator-platform/internal/core/domain"
	"github.com/credora/creator-platform/internal/core/ports"
)

// placeholderAvatar is assigned to every demo-login identity.
const placeholderAvatar = "/avatars/placeholder.png"

// tokenLifetime is the exp claim horizon. Deliberately longer than the
// session timeout: the session store governs actual validity, and a refresh
// extends the session without reissuing the token.
const tokenLifetime = 24 * time.Hour

// demoCredential is one fixed role-keyed login pair for demo mode.
type demoCredential struct {
	Email    string
	Password string
}

// demoCredentials is the fixed demo login table. Any other credential is
// rejected with a generic invalid-credentials error while demo mode is on.
var demoCredentials = map[domain.Role]demoCredential{
	domain.RolePublic:     {Email: "demo@public.com", Password: "demo123"},
	domain.RoleBrand:      {Email: "demo@brand.com", Password: "demo123"},
	domain.RoleInfluencer: {Email: "demo@influencer.com", Password: "demo123"},
	domain.RoleAdmin:      {Email: "demo@admin.com", Password: "demo123"},
}

// SessionWatcher schedules expiry enforcement for a session. The auth service
// re-arms it on login and refresh and cancels it on logout, so stale timers
// never fire against a newer session.
type SessionWatcher interface {
	Watch(sessionID string, expiresIn time.Duration)
	Cancel(sessionID string)
}

// AuthService implements login, logout, registration and session lifecycle.
type AuthService struct {
	users     ports.UserRepository
	sessions  ports.SessionStore
	watcher   SessionWatcher
	jwtSecret string
	timeout   time.Duration
	demoMode  bool
	logger    zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	sessions ports.SessionStore,
	watcher SessionWatcher,
	jwtSecret string,
	timeout time.Duration,
	demoMode bool,
	logger zerolog.Logger,
) *AuthService {
	if timeout <= 0 {
		timeout = domain.DefaultSessionTimeout
	}
	return &AuthService{
		users:     users,
		sessions:  sessions,
		watcher:   watcher,
		jwtSecret: jwtSecret,
		timeout:   timeout,
		demoMode:  demoMode,
		logger:    logger,
	}
}

// Login authenticates the caller and establishes a fresh session. Every login
// mints a new session ID and a new identity; nothing is merged.
func (s *AuthService) Login(ctx context.Context, in ports.LoginInput) (*ports.LoginResult, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	var identity domain.Identity
	if s.demoMode {
		if !domain.ValidRole(in.Role) {
			return nil, domain.ErrInvalidCredentials
		}
		cred := demoCredentials[in.Role]
		if !strings.EqualFold(in.Email, cred.Email) || in.Password != cred.Password {
			return nil, domain.ErrInvalidCredentials
		}
		identity = domain.Identity{
			ID:     newUserID(),
			Name:   localPart(in.Email),
			Email:  strings.ToLower(in.Email),
			Role:   in.Role,
			Avatar: placeholderAvatar,
		}
	} else {
		user, err := s.users.FindByEmail(ctx, in.Email)
		if err != nil {
			return nil, domain.ErrInvalidCredentials
		}
		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) != nil {
			return nil, domain.ErrInvalidCredentials
		}
		avatar := user.Avatar
		if avatar == "" {
			avatar = placeholderAvatar
		}
		identity = domain.Identity{
			ID:     user.ID,
			Name:   user.Name,
			Email:  user.Email,
			Role:   user.Role,
			Avatar: avatar,
		}
	}

	sessionID := newSessionID()
	session := &domain.Session{Identity: identity, CreatedAt: time.Now().UTC()}
	if err := s.sessions.Set(ctx, sessionID, session); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}
	if s.watcher != nil {
		s.watcher.Watch(sessionID, s.timeout)
	}

	token, err := s.signToken(sessionID, identity)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("session_id", sessionID).
		Str("role", string(identity.Role)).
		Msg("login succeeded")

	return &ports.LoginResult{Token: token, Identity: identity, ExpiresIn: s.timeout}, nil
}

// Logout tears the session down. Logging out an absent session is a no-op.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if s.watcher != nil {
		s.watcher.Cancel(sessionID)
	}
	if err := s.sessions.Clear(ctx, sessionID); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	s.logger.Info().Str("session_id", sessionID).Msg("logout")
	return nil
}

// Register creates a persistent account with a bcrypt-hashed password.
func (s *AuthService) Register(ctx context.Context, name, email, password string, role domain.Role) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidCredentials
	}
	if name == "" {
		name = localPart(email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         name,
		Email:        strings.ToLower(email),
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return s.users.Create(ctx, user)
}

// Session returns the current identity plus remaining lifetime.
func (s *AuthService) Session(ctx context.Context, sessionID string) (*ports.SessionInfo, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, domain.ErrSessionNotFound
	}
	remaining, err := s.sessions.TimeRemaining(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &ports.SessionInfo{
		Identity:  session.Identity,
		CreatedAt: session.CreatedAt,
		Remaining: remaining,
	}, nil
}

// Refresh resets the session clock and re-arms its expiry watcher.
func (s *AuthService) Refresh(ctx context.Context, sessionID string) (*ports.SessionInfo, error) {
	session, err := s.sessions.Refresh(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, domain.ErrSessionNotFound
	}
	if s.watcher != nil {
		s.watcher.Watch(sessionID, s.timeout)
	}
	return &ports.SessionInfo{
		Identity:  session.Identity,
		CreatedAt: session.CreatedAt,
		Remaining: s.timeout,
	}, nil
}

// signToken issues the bearer token naming the server-side session. The store
// stays the source of truth: logout or expiry invalidates the token even
// before its exp claim.
func (s *AuthService) signToken(sessionID string, identity domain.Identity) (string, error) {
	claims := jwt.MapClaims{
		"sid":  sessionID,
		"role": string(identity.Role),
		"name": identity.Name,
		"exp":  time.Now().Add(tokenLifetime).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// newSessionID returns a 32-hex-char random session identifier.
func newSessionID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%032x", time.Now().UnixNano())
	}
	return hex.EncodeToString(b)
}

// newUserID returns an identity ID in the format user-XXXXXXXX.
func newUserID() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("user-%08X", time.Now().UnixNano()&0xFFFFFFFF)
	}
	return fmt.Sprintf("user-%08X", b)
}

// localPart derives a display name from the login email.
func localPart(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}
