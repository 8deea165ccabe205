package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/credora/creator-platform/internal/core/domain"
	"github.com/credora/creator-platform/internal/core/ports"
)

// RatingDispatcher is the interface the handler uses to enqueue rating
// assignments for asynchronous application.
type RatingDispatcher interface {
	Enqueue(in ports.RatingAssignment)
}

// AdminHandler serves the moderation and rating-control surface.
type AdminHandler struct {
	applications ports.ApplicationService
	ratings      ports.RatingService
	dispatcher   RatingDispatcher
}

func NewAdminHandler(applications ports.ApplicationService, ratings ports.RatingService, dispatcher RatingDispatcher) *AdminHandler {
	return &AdminHandler{applications: applications, ratings: ratings, dispatcher: dispatcher}
}

type reviewRequest struct {
	Status string `json:"status" validate:"required,oneof=under_review approved rejected"`
	Notes  string `json:"notes"`
}

type weightsRequest struct {
	ContentQuality    int `json:"content_quality"    validate:"gte=0,lte=100"`
	EngagementQuality int `json:"engagement_quality" validate:"gte=0,lte=100"`
	GrowthStability   int `json:"growth_stability"   validate:"gte=0,lte=100"`
	Authenticity      int `json:"authenticity"       validate:"gte=0,lte=100"`
}

// assignRatingRequest uses pointer fields so an omitted factor is rejected
// instead of silently zeroing the creator's stored value.
type assignRatingRequest struct {
	ContentQuality    *float64 `json:"content_quality"    validate:"required,gte=0,lte=100"`
	EngagementQuality *float64 `json:"engagement_quality" validate:"required,gte=0,lte=100"`
	GrowthStability   *float64 `json:"growth_stability"   validate:"required,gte=0,lte=100"`
	Authenticity      *float64 `json:"authenticity"       validate:"required,gte=0,lte=100"`
}

type acceptedResponse struct {
	Message string `json:"message"`
}

// ListApplications handles GET /v1/admin/applications.
//
// @Summary      List creator applications
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        status  query  string  false  "Filter by status: pending, under_review, approved, rejected"
// @Success      200  {array}   domain.Application
// @Failure      403  {object}  map[string]string
// @Router       /v1/admin/applications [get]
func (h *AdminHandler) ListApplications(c echo.Context) error {
	apps, err := h.applications.List(c.Request().Context(), domain.ApplicationStatus(c.QueryParam("status")))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, apps)
}

// ReviewApplication handles POST /v1/admin/applications/:id/review.
//
// @Summary      Advance an application through review
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "Application ID"
// @Param        body  body      reviewRequest  true  "Target status and optional notes"
// @Success      200   {object}  domain.Application
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/admin/applications/{id}/review [post]
func (h *AdminHandler) ReviewApplication(c echo.Context) error {
	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	app, err := h.applications.Review(c.Request().Context(), ports.ReviewApplicationInput{
		ID:     c.Param("id"),
		Status: domain.ApplicationStatus(req.Status),
		Notes:  req.Notes,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, app)
}

// GetWeights handles GET /v1/admin/rating/weights.
//
// @Summary      Get the credibility rating weights
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]int
// @Router       /v1/admin/rating/weights [get]
func (h *AdminHandler) GetWeights(c echo.Context) error {
	weights, err := h.ratings.Weights(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, weights)
}

// SetWeights handles PUT /v1/admin/rating/weights. The four weights must sum
// to exactly 100.
//
// @Summary      Replace the credibility rating weights
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      weightsRequest  true  "Weight per factor, summing to 100"
// @Success      200   {object}  map[string]int
// @Failure      422   {object}  map[string]string
// @Router       /v1/admin/rating/weights [put]
func (h *AdminHandler) SetWeights(c echo.Context) error {
	var req weightsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	weights := domain.RatingWeights{
		domain.FactorContentQuality:    req.ContentQuality,
		domain.FactorEngagementQuality: req.EngagementQuality,
		domain.FactorGrowthStability:   req.GrowthStability,
		domain.FactorAuthenticity:      req.Authenticity,
	}
	if err := h.ratings.SetWeights(c.Request().Context(), weights); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, weights)
}

// AssignRating handles POST /v1/admin/creators/:id/rating — enqueues the
// assignment and returns 202; the dispatcher applies it asynchronously.
//
// @Summary      Assign credibility factor values to a creator
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Creator ID"
// @Param        body  body      assignRatingRequest  true  "Factor values on the 0-100 scale"
// @Success      202   {object}  acceptedResponse
// @Failure      400   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/admin/creators/{id}/rating [post]
func (h *AdminHandler) AssignRating(c echo.Context) error {
	var req assignRatingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	_, userID, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	h.dispatcher.Enqueue(ports.RatingAssignment{
		CreatorID: c.Param("id"),
		Factors: map[string]float64{
			domain.FactorContentQuality:    *req.ContentQuality,
			domain.FactorEngagementQuality: *req.EngagementQuality,
			domain.FactorGrowthStability:   *req.GrowthStability,
			domain.FactorAuthenticity:      *req.Authenticity,
		},
		AssignedBy: userID,
	})
	return c.JSON(http.StatusAccepted, acceptedResponse{Message: "rating assignment accepted"})
}

// Stats handles GET /v1/admin/stats.
//
// @Summary      Admin dashboard aggregates
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.AdminStats
// @Router       /v1/admin/stats [get]
func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.ratings.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
