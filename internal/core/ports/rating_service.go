package ports

import (
	"context"

	"github.com/credora/creator-platform/internal/core/domain"
)

// RatingAssignment is the DTO passed from the transport layer to the rating
// dispatcher. Factor values are on the 0-100 scale.
type RatingAssignment struct {
	CreatorID  string
	Factors    map[string]float64
	AssignedBy string
}

// RatingService computes and applies credibility scores.
type RatingService interface {
	// Apply scores the assignment with the current weights and persists the
	// result on the creator, appending a history entry.
	Apply(ctx context.Context, in RatingAssignment) error
	Weights(ctx context.Context) (domain.RatingWeights, error)
	SetWeights(ctx context.Context, w domain.RatingWeights) error
	Stats(ctx context.Context) (*AdminStats, error)
}

// WeightsRepository persists the admin-adjustable rating weight set.
type WeightsRepository interface {
	// Get returns the stored weight set, or domain.DefaultWeights() when none
	// has been saved yet.
	Get(ctx context.Context) (domain.RatingWeights, error)
	Set(ctx context.Context, w domain.RatingWeights) error
}
