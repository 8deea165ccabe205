package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/credora/creator-platform/internal/core/ports"
)

// SavedHandler manages the caller's saved-creator list.
type SavedHandler struct {
	service ports.SavedListService
}

func NewSavedHandler(service ports.SavedListService) *SavedHandler {
	return &SavedHandler{service: service}
}

// Save handles PUT /v1/saved/:creator_id. Idempotent.
//
// @Summary      Save a creator to the caller's list
// @Tags         saved
// @Produce      json
// @Security     BearerAuth
// @Param        creator_id  path  string  true  "Creator ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /v1/saved/{creator_id} [put]
func (h *SavedHandler) Save(c echo.Context) error {
	_, userID, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	if err := h.service.Save(c.Request().Context(), userID, c.Param("creator_id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Unsave handles DELETE /v1/saved/:creator_id. Removing an absent entry
// succeeds.
//
// @Summary      Remove a creator from the caller's list
// @Tags         saved
// @Produce      json
// @Security     BearerAuth
// @Param        creator_id  path  string  true  "Creator ID"
// @Success      204
// @Router       /v1/saved/{creator_id} [delete]
func (h *SavedHandler) Unsave(c echo.Context) error {
	_, userID, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	if err := h.service.Unsave(c.Request().Context(), userID, c.Param("creator_id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// List handles GET /v1/saved.
//
// @Summary      List the caller's saved creators
// @Tags         saved
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Creator
// @Router       /v1/saved [get]
func (h *SavedHandler) List(c echo.Context) error {
	_, userID, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	creators, err := h.service.List(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, creators)
}
