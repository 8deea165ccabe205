package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/credora/creator-platform/internal/core/domain"
	"github.com/credora/creator-platform/internal/core/ports"
)

// CampaignHandler lists and creates creator promotions.
type CampaignHandler struct {
	service ports.CampaignService
}

func NewCampaignHandler(service ports.CampaignService) *CampaignHandler {
	return &CampaignHandler{service: service}
}

type createCampaignRequest struct {
	Title                string    `json:"title"        validate:"required"`
	CreatorName          string    `json:"creator_name" validate:"required"`
	Type                 string    `json:"type"         validate:"required,oneof=live_event campaign workshop"`
	StartsAt             time.Time `json:"starts_at"    validate:"required"`
	Location             string    `json:"location"     validate:"required"`
	Description          string    `json:"description"`
	SponsorshipAvailable bool      `json:"sponsorship_available"`
}

// List handles GET /v1/campaigns — the public promotions feed.
//
// @Summary      List creator campaigns and events
// @Tags         campaigns
// @Produce      json
// @Success      200  {array}  domain.Campaign
// @Router       /v1/campaigns [get]
func (h *CampaignHandler) List(c echo.Context) error {
	campaigns, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, campaigns)
}

// Create handles POST /v1/campaigns.
//
// @Summary      Announce a campaign or event
// @Tags         campaigns
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCampaignRequest  true  "Campaign details"
// @Success      201   {object}  domain.Campaign
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /v1/campaigns [post]
func (h *CampaignHandler) Create(c echo.Context) error {
	var req createCampaignRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	campaign, err := h.service.Create(c.Request().Context(), ports.CreateCampaignInput{
		Title:                req.Title,
		CreatorName:          req.CreatorName,
		Type:                 domain.CampaignType(req.Type),
		StartsAt:             req.StartsAt,
		Location:             req.Location,
		Description:          req.Description,
		SponsorshipAvailable: req.SponsorshipAvailable,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, campaign)
}
