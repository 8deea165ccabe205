package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/credora/creator-platform/internal/core/domain"
	"github.com/credora/creator-platform/internal/core/ports"
)

// RatingService computes credibility scores with the persisted weight set and
// applies them to creator profiles.
type RatingService struct {
	creators ports.CreatorRepository
	weights  ports.WeightsRepository
	logger   zerolog.Logger
}

func NewRatingService(creators ports.CreatorRepository, weights ports.WeightsRepository, logger zerolog.Logger) *RatingService {
	return &RatingService{creators: creators, weights: weights, logger: logger}
}

// Apply scores the assignment with the current weights and persists the
// result, appending the change to the creator's rating history.
func (s *RatingService) Apply(ctx context.Context, in ports.RatingAssignment) error {
	creator, err := s.creators.FindByID(ctx, in.CreatorID)
	if err != nil {
		return fmt.Errorf("apply rating: %w", err)
	}

	weights, err := s.weights.Get(ctx)
	if err != nil {
		return fmt.Errorf("load weights: %w", err)
	}

	factors := clampFactors(in.Factors)
	score := domain.Score(factors, weights)
	change := domain.RatingChange{
		Date:   time.Now().UTC(),
		Rating: score,
		Change: score - creator.CredibilityRating,
	}

	if err := s.creators.ApplyRating(ctx, in.CreatorID, factors, score, change); err != nil {
		return fmt.Errorf("apply rating: %w", err)
	}

	s.logger.Info().
		Str("creator_id", in.CreatorID).
		Str("assigned_by", in.AssignedBy).
		Int("rating", score).
		Int("change", change.Change).
		Msg("rating applied")

	return nil
}

// Weights returns the current weight set.
func (s *RatingService) Weights(ctx context.Context) (domain.RatingWeights, error) {
	return s.weights.Get(ctx)
}

// SetWeights persists a new weight set after validating the sum-to-100 rule.
func (s *RatingService) SetWeights(ctx context.Context, w domain.RatingWeights) error {
	if err := w.Validate(); err != nil {
		return err
	}
	if err := s.weights.Set(ctx, w); err != nil {
		return err
	}
	s.logger.Info().Interface("weights", w).Msg("rating weights updated")
	return nil
}

// Stats returns the admin dashboard aggregate.
func (s *RatingService) Stats(ctx context.Context) (*ports.AdminStats, error) {
	return s.creators.Stats(ctx)
}

// clampFactors pins factor values to the 0-100 scale before scoring.
func clampFactors(factors map[string]float64) map[string]float64 {
	clamped := make(map[string]float64, len(factors))
	for k, v := range factors {
		if v < 0 {
			v = 0
		}
		if v > 100 {
			v = 100
		}
		clamped[k] = v
	}
	return clamped
}
