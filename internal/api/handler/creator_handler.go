package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/credora/creator-platform/internal/core/ports"
)

// CreatorHandler handles profile discovery, detail and comparison.
type CreatorHandler struct {
	service ports.CreatorService
}

func NewCreatorHandler(service ports.CreatorService) *CreatorHandler {
	return &CreatorHandler{service: service}
}

type compareRequest struct {
	IDs []string `json:"ids" validate:"required,min=1,max=3,dive,required"`
}

// List handles GET /v1/creators — the explore surface.
//
// @Summary      List creators with filters
// @Tags         creators
// @Produce      json
// @Param        category    query  []string  false  "Category filter (repeatable)"
// @Param        platform    query  []string  false  "Platform filter (repeatable): youtube, instagram, tiktok, twitter, linkedin"
// @Param        tag         query  []string  false  "Trust tag filter (repeatable)"
// @Param        min_rating  query  int       false  "Minimum credibility rating"
// @Param        max_rating  query  int       false  "Maximum credibility rating"
// @Param        verified    query  bool      false  "Verified profiles only"
// @Success      200  {array}   domain.Creator
// @Failure      500  {object}  map[string]string
// @Router       /v1/creators [get]
func (h *CreatorHandler) List(c echo.Context) error {
	filter := ports.CreatorFilter{
		Categories: c.QueryParams()["category"],
		Platforms:  c.QueryParams()["platform"],
		TrustTags:  c.QueryParams()["tag"],
	}
	if v := c.QueryParam("min_rating"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid min_rating")
		}
		filter.RatingMin = n
	}
	if v := c.QueryParam("max_rating"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid max_rating")
		}
		filter.RatingMax = n
	}
	if v := c.QueryParam("verified"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid verified flag")
		}
		filter.Verified = &b
	}

	creators, err := h.service.List(c.Request().Context(), ports.ListCreatorsInput{
		Role:   ctxRoleOrPublic(c),
		Filter: filter,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, creators)
}

// Get handles GET /v1/creators/:id.
//
// @Summary      Get a creator profile
// @Tags         creators
// @Produce      json
// @Param        id   path      string  true  "Creator ID"
// @Success      200  {object}  domain.Creator
// @Failure      404  {object}  map[string]string
// @Router       /v1/creators/{id} [get]
func (h *CreatorHandler) Get(c echo.Context) error {
	creator, err := h.service.Get(c.Request().Context(), c.Param("id"), ctxRoleOrPublic(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, creator)
}

// Compare handles POST /v1/creators/compare — the side-by-side table.
//
// @Summary      Compare up to three creators
// @Tags         creators
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      compareRequest  true  "Creator IDs, at most three"
// @Success      200   {array}   domain.Creator
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/creators/compare [post]
func (h *CreatorHandler) Compare(c echo.Context) error {
	var req compareRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	creators, err := h.service.Compare(c.Request().Context(), req.IDs)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, creators)
}
