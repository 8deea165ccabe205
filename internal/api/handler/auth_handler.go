package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/credora/creator-platform/internal/api/metrics"
	"github.com/credora/creator-platform/internal/core/domain"
	"github.com/credora/creator-platform/internal/core/ports"
)

// AuthHandler exposes login, logout, registration and session introspection.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"     validate:"required,oneof=public brand influencer admin"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role"     validate:"required,oneof=public brand influencer admin"`
}

type identityResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Avatar string `json:"avatar"`
}

type loginResponse struct {
	Token     string           `json:"token"`
	Identity  identityResponse `json:"identity"`
	ExpiresIn int64            `json:"expires_in_seconds"`
}

type sessionResponse struct {
	Identity  identityResponse `json:"identity"`
	CreatedAt string           `json:"created_at"`
	Remaining int64            `json:"remaining_seconds"`
}

func toIdentityResponse(i domain.Identity) identityResponse {
	return identityResponse{
		ID:     i.ID,
		Name:   i.Name,
		Email:  i.Email,
		Role:   string(i.Role),
		Avatar: i.Avatar,
	}
}

// Login authenticates a user and establishes a session.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials and selected role"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.Login(c.Request().Context(), ports.LoginInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     domain.Role(req.Role),
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues(req.Role, "rejected").Inc()
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues(req.Role, "ok").Inc()
	return c.JSON(http.StatusOK, loginResponse{
		Token:     result.Token,
		Identity:  toIdentityResponse(result.Identity),
		ExpiresIn: int64(result.ExpiresIn.Seconds()),
	})
}

// Logout tears the current session down.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      204
// @Failure      401   {object}  map[string]string
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	sid, err := ctxSessionID(c)
	if err != nil {
		return err
	}
	if err := h.authService.Logout(c.Request().Context(), sid); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Register creates a persistent account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Account details"
// @Success      201   {object}  map[string]any
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Register(c.Request().Context(), req.Name, req.Email, req.Password, domain.Role(req.Role))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, user)
}

// Session returns the current identity and remaining lifetime.
//
// @Summary      Inspect the current session
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200   {object}  sessionResponse
// @Failure      401   {object}  map[string]string
// @Router       /auth/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	sid, err := ctxSessionID(c)
	if err != nil {
		return err
	}

	info, err := h.authService.Session(c.Request().Context(), sid)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sessionResponse{
		Identity:  toIdentityResponse(info.Identity),
		CreatedAt: info.CreatedAt.Format(time.RFC3339),
		Remaining: int64(info.Remaining.Seconds()),
	})
}

// Refresh resets the session clock.
//
// @Summary      Refresh the current session
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200   {object}  sessionResponse
// @Failure      401   {object}  map[string]string
// @Router       /auth/refresh [post]
func (h *AuthHandler) Refresh(c echo.Context) error {
	sid, err := ctxSessionID(c)
	if err != nil {
		return err
	}

	info, err := h.authService.Refresh(c.Request().Context(), sid)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sessionResponse{
		Identity:  toIdentityResponse(info.Identity),
		CreatedAt: info.CreatedAt.Format(time.RFC3339),
		Remaining: int64(info.Remaining.Seconds()),
	})
}
