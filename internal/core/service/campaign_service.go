package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/credora/creator-platform/internal/core/domain"
	"github.com/credora/creator-platform/internal/core/ports"
)

// CampaignService lists and creates creator promotions.
type CampaignService struct {
	repo   ports.CampaignRepository
	logger zerolog.Logger
}

func NewCampaignService(repo ports.CampaignRepository, logger zerolog.Logger) *CampaignService {
	return &CampaignService{repo: repo, logger: logger}
}

// List returns all campaigns, newest first (repository ordering).
func (s *CampaignService) List(ctx context.Context) ([]domain.Campaign, error) {
	return s.repo.List(ctx)
}

// Create announces a new promotion. Attendee counts start at zero.
func (s *CampaignService) Create(ctx context.Context, in ports.CreateCampaignInput) (*domain.Campaign, error) {
	campaign := &domain.Campaign{
		Title:                in.Title,
		CreatorName:          in.CreatorName,
		Type:                 in.Type,
		StartsAt:             in.StartsAt,
		Location:             in.Location,
		Description:          in.Description,
		SponsorshipAvailable: in.SponsorshipAvailable,
		CreatedAt:            time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, campaign)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("campaign_id", created.ID).Str("type", string(created.Type)).Msg("campaign created")
	return created, nil
}
