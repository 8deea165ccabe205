package ports

import (
	"context"

	"github.com/credora/creator-platform/internal/core/domain"
)

// CreatorFilter is the explore-page filter set. Zero values mean "no
// constraint"; RatingMax defaults to 100 when unset.
type CreatorFilter struct {
	Categories []string
	Platforms  []string
	RatingMin  int
	RatingMax  int
	TrustTags  []string
	Verified   *bool
	// Statuses is populated by the service, not the caller: public viewers
	// are always pinned to approved profiles.
	Statuses []domain.CreatorStatus
}

// ListCreatorsInput carries the caller's role alongside the filter so the
// service can constrain visibility.
type ListCreatorsInput struct {
	Role   domain.Role
	Filter CreatorFilter
}

// CreatorService serves profile discovery, detail and comparison.
type CreatorService interface {
	List(ctx context.Context, in ListCreatorsInput) ([]domain.Creator, error)
	Get(ctx context.Context, id string, role domain.Role) (*domain.Creator, error)
	// Compare returns up to domain.CompareLimit profiles in request order.
	Compare(ctx context.Context, ids []string) ([]domain.Creator, error)
}

// SavedListService manages a user's saved-creator list.
type SavedListService interface {
	Save(ctx context.Context, userID, creatorID string) error
	Unsave(ctx context.Context, userID, creatorID string) error
	List(ctx context.Context, userID string) ([]domain.Creator, error)
}
