package ports

import (
	"context"
	"time"

	"github.com/credora/creator-platform/internal/core/domain"
)

// CreatorRepository persists creator profiles.
type CreatorRepository interface {
	List(ctx context.Context, filter CreatorFilter) ([]domain.Creator, error)
	FindByID(ctx context.Context, id string) (*domain.Creator, error)
	FindByIDs(ctx context.Context, ids []string) ([]domain.Creator, error)
	// ApplyRating atomically sets the factor values and new score, and
	// appends the history entry.
	ApplyRating(ctx context.Context, id string, factors map[string]float64, score int, change domain.RatingChange) error
	// Stats aggregates counts by status plus the average credibility rating.
	Stats(ctx context.Context) (*AdminStats, error)
}

// AdminStats is the admin dashboard aggregate.
type AdminStats struct {
	TotalCreators int     `json:"total_creators"`
	Verified      int     `json:"verified"`
	Pending       int     `json:"pending"`
	Rejected      int     `json:"rejected"`
	AverageRating float64 `json:"average_rating"`
}

// SavedListRepository persists the per-user saved-creator relation.
type SavedListRepository interface {
	Save(ctx context.Context, userID, creatorID string, at time.Time) error
	Remove(ctx context.Context, userID, creatorID string) error
	ListCreatorIDs(ctx context.Context, userID string) ([]string, error)
}
