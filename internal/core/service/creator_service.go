package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/credora/creator-platform/internal/core/domain"
	"github.com/credora/creator-platform/internal/core/ports"
)

// CreatorService serves profile discovery, detail and comparison.
type CreatorService struct {
	repo   ports.CreatorRepository
	logger zerolog.Logger
}

func NewCreatorService(repo ports.CreatorRepository, logger zerolog.Logger) *CreatorService {
	return &CreatorService{repo: repo, logger: logger}
}

// List applies the explore filters. Non-admin viewers are pinned to approved
// profiles regardless of what the filter asks for.
func (s *CreatorService) List(ctx context.Context, in ports.ListCreatorsInput) ([]domain.Creator, error) {
	filter := in.Filter
	if in.Role != domain.RoleAdmin {
		filter.Statuses = []domain.CreatorStatus{domain.CreatorApproved}
	}
	if filter.RatingMax == 0 {
		filter.RatingMax = 100
	}
	return s.repo.List(ctx, filter)
}

// Get returns a single profile. Non-admin viewers cannot see pending or
// rejected profiles; those read as not found rather than forbidden.
func (s *CreatorService) Get(ctx context.Context, id string, role domain.Role) (*domain.Creator, error) {
	creator, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if role != domain.RoleAdmin && creator.Status != domain.CreatorApproved {
		return nil, domain.ErrCreatorNotFound
	}
	return creator, nil
}

// Compare fetches up to domain.CompareLimit profiles, preserving request
// order. Unknown IDs surface as not found.
func (s *CreatorService) Compare(ctx context.Context, ids []string) ([]domain.Creator, error) {
	if len(ids) == 0 {
		return nil, domain.ErrCreatorNotFound
	}
	if len(ids) > domain.CompareLimit {
		return nil, domain.ErrCompareLimit
	}

	found, err := s.repo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]domain.Creator, len(found))
	for _, c := range found {
		byID[c.ID] = c
	}

	ordered := make([]domain.Creator, 0, len(ids))
	for _, id := range ids {
		c, ok := byID[id]
		if !ok {
			return nil, domain.ErrCreatorNotFound
		}
		ordered = append(ordered, c)
	}
	return ordered, nil
}

// SavedListService manages a user's saved-creator list.
type SavedListService struct {
	saved    ports.SavedListRepository
	creators ports.CreatorRepository
	logger   zerolog.Logger
}

func NewSavedListService(saved ports.SavedListRepository, creators ports.CreatorRepository, logger zerolog.Logger) *SavedListService {
	return &SavedListService{saved: saved, creators: creators, logger: logger}
}

// Save adds creatorID to the user's list. Saving an unknown creator fails;
// saving one already on the list is idempotent at the repository level.
func (s *SavedListService) Save(ctx context.Context, userID, creatorID string) error {
	if _, err := s.creators.FindByID(ctx, creatorID); err != nil {
		return err
	}
	return s.saved.Save(ctx, userID, creatorID, time.Now().UTC())
}

// Unsave removes creatorID from the user's list. Removing an absent entry is
// not an error.
func (s *SavedListService) Unsave(ctx context.Context, userID, creatorID string) error {
	return s.saved.Remove(ctx, userID, creatorID)
}

// List resolves the user's saved IDs into full profiles. IDs whose profile
// has since disappeared are silently dropped.
func (s *SavedListService) List(ctx context.Context, userID string) ([]domain.Creator, error) {
	ids, err := s.saved.ListCreatorIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []domain.Creator{}, nil
	}
	return s.creators.FindByIDs(ctx, ids)
}
