package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/credora/creator-platform/internal/core/ports"
)

// ApplicationHandler accepts public creator applications.
type ApplicationHandler struct {
	service ports.ApplicationService
}

func NewApplicationHandler(service ports.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{service: service}
}

type submitApplicationRequest struct {
	CreatorName string `json:"creator_name" validate:"required"`
	Email       string `json:"email"        validate:"required,email"`
	Category    string `json:"category"     validate:"required"`
	Followers   int64  `json:"followers"    validate:"gte=0"`
}

// Submit handles POST /v1/applications — the public join form.
//
// @Summary      Apply to join as a creator
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        body  body      submitApplicationRequest  true  "Application details"
// @Success      201   {object}  domain.Application
// @Failure      400   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/applications [post]
func (h *ApplicationHandler) Submit(c echo.Context) error {
	var req submitApplicationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	app, err := h.service.Submit(c.Request().Context(), ports.SubmitApplicationInput{
		CreatorName: req.CreatorName,
		Email:       req.Email,
		Category:    req.Category,
		Followers:   req.Followers,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, app)
}
