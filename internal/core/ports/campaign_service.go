package ports

import (
	"context"
	"time"

	"github.com/credora/creator-platform/internal/core/domain"
)

// CreateCampaignInput announces a new creator promotion.
type CreateCampaignInput struct {
	Title                string
	CreatorName          string
	Type                 domain.CampaignType
	StartsAt             time.Time
	Location             string
	Description          string
	SponsorshipAvailable bool
}

// CampaignService lists and creates creator promotions.
type CampaignService interface {
	List(ctx context.Context) ([]domain.Campaign, error)
	Create(ctx context.Context, in CreateCampaignInput) (*domain.Campaign, error)
}

// CampaignRepository persists campaigns.
type CampaignRepository interface {
	List(ctx context.Context) ([]domain.Campaign, error)
	Create(ctx context.Context, c *domain.Campaign) (*domain.Campaign, error)
}
