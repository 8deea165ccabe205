package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/credora/creator-platform/internal/core/domain"
	"github.com/credora/creator-platform/internal/core/ports"
)

// stubCreatorRepo keeps creators in a map and records the last List filter.
type stubCreatorRepo struct {
	creators   map[string]domain.Creator
	lastFilter ports.CreatorFilter

	appliedFactors map[string]float64
	appliedScore   int
	appliedChange  domain.RatingChange
}

func newStubCreatorRepo(creators ...domain.Creator) *stubCreatorRepo {
	r := &stubCreatorRepo{creators: make(map[string]domain.Creator)}
	for _, c := range creators {
		r.creators[c.ID] = c
	}
	return r
}

func (r *stubCreatorRepo) List(_ context.Context, filter ports.CreatorFilter) ([]domain.Creator, error) {
	r.lastFilter = filter
	out := make([]domain.Creator, 0, len(r.creators))
	for _, c := range r.creators {
		if len(filter.Statuses) > 0 {
			match := false
			for _, s := range filter.Statuses {
				if c.Status == s {
					match = true
					break
				}
			}
			if !match {
				continue
			}
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *stubCreatorRepo) FindByID(_ context.Context, id string) (*domain.Creator, error) {
	c, ok := r.creators[id]
	if !ok {
		return nil, domain.ErrCreatorNotFound
	}
	clone := c
	return &clone, nil
}

func (r *stubCreatorRepo) FindByIDs(_ context.Context, ids []string) ([]domain.Creator, error) {
	out := make([]domain.Creator, 0, len(ids))
	// Deliberately out of request order, as a database would be free to return.
	for i := len(ids) - 1; i >= 0; i-- {
		if c, ok := r.creators[ids[i]]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *stubCreatorRepo) ApplyRating(_ context.Context, id string, factors map[string]float64, score int, change domain.RatingChange) error {
	c, ok := r.creators[id]
	if !ok {
		return domain.ErrCreatorNotFound
	}
	c.CredibilityRating = score
	c.RatingHistory = append(c.RatingHistory, change)
	r.creators[id] = c
	r.appliedFactors = factors
	r.appliedScore = score
	r.appliedChange = change
	return nil
}

func (r *stubCreatorRepo) Stats(_ context.Context) (*ports.AdminStats, error) {
	stats := &ports.AdminStats{}
	total := 0.0
	for _, c := range r.creators {
		stats.TotalCreators++
		if c.Verified {
			stats.Verified++
		}
		switch c.Status {
		case domain.CreatorPending:
			stats.Pending++
		case domain.CreatorRejected:
			stats.Rejected++
		}
		total += float64(c.CredibilityRating)
	}
	if stats.TotalCreators > 0 {
		stats.AverageRating = total / float64(stats.TotalCreators)
	}
	return stats, nil
}

func approvedCreator(id string, rating int) domain.Creator {
	return domain.Creator{
		ID:                id,
		Name:              "Creator " + id,
		Status:            domain.CreatorApproved,
		CredibilityRating: rating,
	}
}

func TestCreatorService_ListPinsNonAdminToApproved(t *testing.T) {
	repo := newStubCreatorRepo(
		approvedCreator("c1", 80),
		domain.Creator{ID: "c2", Status: domain.CreatorPending},
		domain.Creator{ID: "c3", Status: domain.CreatorRejected},
	)
	svc := NewCreatorService(repo, zerolog.Nop())

	out, err := svc.List(context.Background(), ports.ListCreatorsInput{
		Role: domain.RolePublic,
		// A hostile caller asking for pending profiles gets overridden.
		Filter: ports.CreatorFilter{Statuses: []domain.CreatorStatus{domain.CreatorPending}},
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 1 || out[0].ID != "c1" {
		t.Fatalf("expected only approved creator, got %+v", out)
	}
	if repo.lastFilter.RatingMax != 100 {
		t.Fatalf("expected RatingMax default 100, got %d", repo.lastFilter.RatingMax)
	}
}

func TestCreatorService_ListAdminSeesAllStatuses(t *testing.T) {
	repo := newStubCreatorRepo(
		approvedCreator("c1", 80),
		domain.Creator{ID: "c2", Status: domain.CreatorPending},
	)
	svc := NewCreatorService(repo, zerolog.Nop())

	out, err := svc.List(context.Background(), ports.ListCreatorsInput{Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 creators for admin, got %d", len(out))
	}
}

func TestCreatorService_GetHidesUnapprovedFromNonAdmin(t *testing.T) {
	repo := newStubCreatorRepo(domain.Creator{ID: "c1", Status: domain.CreatorPending})
	svc := NewCreatorService(repo, zerolog.Nop())

	if _, err := svc.Get(context.Background(), "c1", domain.RoleBrand); !errors.Is(err, domain.ErrCreatorNotFound) {
		t.Fatalf("expected not found for pending profile, got %v", err)
	}

	got, err := svc.Get(context.Background(), "c1", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("admin get: %v", err)
	}
	if got.ID != "c1" {
		t.Fatalf("expected c1, got %s", got.ID)
	}
}

func TestCreatorService_ComparePreservesRequestOrder(t *testing.T) {
	repo := newStubCreatorRepo(
		approvedCreator("c1", 80),
		approvedCreator("c2", 70),
		approvedCreator("c3", 90),
	)
	svc := NewCreatorService(repo, zerolog.Nop())

	out, err := svc.Compare(context.Background(), []string{"c3", "c1", "c2"})
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	want := []string{"c3", "c1", "c2"}
	for i, id := range want {
		if out[i].ID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, out[i].ID)
		}
	}
}

func TestCreatorService_CompareLimits(t *testing.T) {
	repo := newStubCreatorRepo(
		approvedCreator("c1", 80),
		approvedCreator("c2", 70),
		approvedCreator("c3", 90),
		approvedCreator("c4", 60),
	)
	svc := NewCreatorService(repo, zerolog.Nop())

	if _, err := svc.Compare(context.Background(), []string{"c1", "c2", "c3", "c4"}); !errors.Is(err, domain.ErrCompareLimit) {
		t.Fatalf("expected ErrCompareLimit for 4 ids, got %v", err)
	}
	if _, err := svc.Compare(context.Background(), nil); !errors.Is(err, domain.ErrCreatorNotFound) {
		t.Fatalf("expected error for empty ids, got %v", err)
	}
	if _, err := svc.Compare(context.Background(), []string{"c1", "ghost"}); !errors.Is(err, domain.ErrCreatorNotFound) {
		t.Fatalf("expected not found for unknown id, got %v", err)
	}

	// A single creator is a valid comparison.
	out, err := svc.Compare(context.Background(), []string{"c2"})
	if err != nil || len(out) != 1 {
		t.Fatalf("single-id compare failed: %v, %d results", err, len(out))
	}
}

// stubSavedRepo backs the saved-list tests.
type stubSavedRepo struct {
	entries map[string][]string // userID -> creatorIDs in save order
}

func newStubSavedRepo() *stubSavedRepo {
	return &stubSavedRepo{entries: make(map[string][]string)}
}

func (r *stubSavedRepo) Save(_ context.Context, userID, creatorID string, _ time.Time) error {
	for _, id := range r.entries[userID] {
		if id == creatorID {
			return nil
		}
	}
	r.entries[userID] = append(r.entries[userID], creatorID)
	return nil
}

func (r *stubSavedRepo) Remove(_ context.Context, userID, creatorID string) error {
	ids := r.entries[userID]
	for i, id := range ids {
		if id == creatorID {
			r.entries[userID] = append(ids[:i], ids[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *stubSavedRepo) ListCreatorIDs(_ context.Context, userID string) ([]string, error) {
	return r.entries[userID], nil
}

func TestSavedListService_SaveRejectsUnknownCreator(t *testing.T) {
	creators := newStubCreatorRepo(approvedCreator("c1", 80))
	saved := newStubSavedRepo()
	svc := NewSavedListService(saved, creators, zerolog.Nop())

	if err := svc.Save(context.Background(), "u1", "ghost"); !errors.Is(err, domain.ErrCreatorNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err := svc.Save(context.Background(), "u1", "c1"); err != nil {
		t.Fatalf("save: %v", err)
	}
	// Saving twice is idempotent.
	if err := svc.Save(context.Background(), "u1", "c1"); err != nil {
		t.Fatalf("repeat save: %v", err)
	}
	if len(saved.entries["u1"]) != 1 {
		t.Fatalf("expected one entry, got %v", saved.entries["u1"])
	}
}

func TestSavedListService_ListAndUnsave(t *testing.T) {
	creators := newStubCreatorRepo(approvedCreator("c1", 80), approvedCreator("c2", 70))
	saved := newStubSavedRepo()
	svc := NewSavedListService(saved, creators, zerolog.Nop())

	_ = svc.Save(context.Background(), "u1", "c1")
	_ = svc.Save(context.Background(), "u1", "c2")

	out, err := svc.List(context.Background(), "u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 saved creators, got %d", len(out))
	}

	if err := svc.Unsave(context.Background(), "u1", "c1"); err != nil {
		t.Fatalf("unsave: %v", err)
	}
	// Removing an absent entry is a no-op.
	if err := svc.Unsave(context.Background(), "u1", "ghost"); err != nil {
		t.Fatalf("unsave absent: %v", err)
	}

	out, err = svc.List(context.Background(), "u1")
	if err != nil || len(out) != 1 {
		t.Fatalf("expected 1 saved creator after unsave, got %d (%v)", len(out), err)
	}

	// An empty list is an empty slice, not nil.
	empty, err := svc.List(context.Background(), "u2")
	if err != nil {
		t.Fatalf("list empty: %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty slice, got %v", empty)
	}
}
