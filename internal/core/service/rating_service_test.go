package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/credora/creator-platform/internal/core/domain"
	"github.com/credora/creator-platform/internal/core/ports"
)

type stubWeightsRepo struct {
	stored domain.RatingWeights
}

func (r *stubWeightsRepo) Get(_ context.Context) (domain.RatingWeights, error) {
	if r.stored == nil {
		return domain.DefaultWeights(), nil
	}
	return r.stored, nil
}

func (r *stubWeightsRepo) Set(_ context.Context, w domain.RatingWeights) error {
	r.stored = w
	return nil
}

func TestRatingService_ApplyScoresAndRecordsHistory(t *testing.T) {
	creator := approvedCreator("c1", 60)
	repo := newStubCreatorRepo(creator)
	svc := NewRatingService(repo, &stubWeightsRepo{}, zerolog.Nop())

	err := svc.Apply(context.Background(), ports.RatingAssignment{
		CreatorID: "c1",
		Factors: map[string]float64{
			domain.FactorContentQuality:    80,
			domain.FactorEngagementQuality: 60,
			domain.FactorGrowthStability:   90,
			domain.FactorAuthenticity:      70,
		},
		AssignedBy: "user-admin",
	})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	if repo.appliedScore != 75 {
		t.Fatalf("expected score 75, got %d", repo.appliedScore)
	}
	if repo.appliedChange.Change != 15 {
		t.Fatalf("expected change +15 from baseline 60, got %d", repo.appliedChange.Change)
	}
	if repo.appliedChange.Rating != 75 {
		t.Fatalf("history rating mismatch: %d", repo.appliedChange.Rating)
	}
	if repo.appliedChange.Date.IsZero() {
		t.Fatalf("history entry missing date")
	}

	updated, _ := repo.FindByID(context.Background(), "c1")
	if updated.CredibilityRating != 75 {
		t.Fatalf("creator rating not persisted: %d", updated.CredibilityRating)
	}
	if len(updated.RatingHistory) != 1 {
		t.Fatalf("expected one history entry, got %d", len(updated.RatingHistory))
	}
}

func TestRatingService_ApplyClampsFactors(t *testing.T) {
	repo := newStubCreatorRepo(approvedCreator("c1", 0))
	svc := NewRatingService(repo, &stubWeightsRepo{}, zerolog.Nop())

	err := svc.Apply(context.Background(), ports.RatingAssignment{
		CreatorID: "c1",
		Factors: map[string]float64{
			domain.FactorContentQuality:    150,
			domain.FactorEngagementQuality: -30,
			domain.FactorGrowthStability:   100,
			domain.FactorAuthenticity:      0,
		},
	})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	if repo.appliedFactors[domain.FactorContentQuality] != 100 {
		t.Fatalf("high factor not clamped: %v", repo.appliedFactors[domain.FactorContentQuality])
	}
	if repo.appliedFactors[domain.FactorEngagementQuality] != 0 {
		t.Fatalf("negative factor not clamped: %v", repo.appliedFactors[domain.FactorEngagementQuality])
	}
	// (100+0+100+0)/4
	if repo.appliedScore != 50 {
		t.Fatalf("expected score 50, got %d", repo.appliedScore)
	}
}

func TestRatingService_ApplyUsesStoredWeights(t *testing.T) {
	repo := newStubCreatorRepo(approvedCreator("c1", 0))
	weights := &stubWeightsRepo{stored: domain.RatingWeights{
		domain.FactorContentQuality:    100,
		domain.FactorEngagementQuality: 0,
		domain.FactorGrowthStability:   0,
		domain.FactorAuthenticity:      0,
	}}
	svc := NewRatingService(repo, weights, zerolog.Nop())

	err := svc.Apply(context.Background(), ports.RatingAssignment{
		CreatorID: "c1",
		Factors: map[string]float64{
			domain.FactorContentQuality: 42,
			domain.FactorAuthenticity:   99,
		},
	})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if repo.appliedScore != 42 {
		t.Fatalf("expected score 42 under content-only weights, got %d", repo.appliedScore)
	}
}

func TestRatingService_ApplyUnknownCreator(t *testing.T) {
	svc := NewRatingService(newStubCreatorRepo(), &stubWeightsRepo{}, zerolog.Nop())

	err := svc.Apply(context.Background(), ports.RatingAssignment{CreatorID: "ghost"})
	if !errors.Is(err, domain.ErrCreatorNotFound) {
		t.Fatalf("expected ErrCreatorNotFound, got %v", err)
	}
}

func TestRatingService_SetWeightsValidates(t *testing.T) {
	weights := &stubWeightsRepo{}
	svc := NewRatingService(newStubCreatorRepo(), weights, zerolog.Nop())

	bad := domain.RatingWeights{
		domain.FactorContentQuality:    50,
		domain.FactorEngagementQuality: 30,
		domain.FactorGrowthStability:   10,
		domain.FactorAuthenticity:      5,
	}
	if err := svc.SetWeights(context.Background(), bad); !errors.Is(err, domain.ErrInvalidWeights) {
		t.Fatalf("expected ErrInvalidWeights for sum 95, got %v", err)
	}
	if weights.stored != nil {
		t.Fatalf("invalid weights must not be persisted")
	}

	good := domain.RatingWeights{
		domain.FactorContentQuality:    40,
		domain.FactorEngagementQuality: 30,
		domain.FactorGrowthStability:   20,
		domain.FactorAuthenticity:      10,
	}
	if err := svc.SetWeights(context.Background(), good); err != nil {
		t.Fatalf("set weights: %v", err)
	}

	got, err := svc.Weights(context.Background())
	if err != nil {
		t.Fatalf("weights: %v", err)
	}
	if got[domain.FactorContentQuality] != 40 {
		t.Fatalf("stored weights not returned: %v", got)
	}
}

func TestRatingService_WeightsDefaultWhenUnset(t *testing.T) {
	svc := NewRatingService(newStubCreatorRepo(), &stubWeightsRepo{}, zerolog.Nop())

	got, err := svc.Weights(context.Background())
	if err != nil {
		t.Fatalf("weights: %v", err)
	}
	for factor, w := range got {
		if w != 25 {
			t.Fatalf("expected even default split, got %s=%d", factor, w)
		}
	}
}

func TestRatingService_Stats(t *testing.T) {
	repo := newStubCreatorRepo(
		approvedCreator("c1", 80),
		domain.Creator{ID: "c2", Status: domain.CreatorPending, CredibilityRating: 40},
	)
	svc := NewRatingService(repo, &stubWeightsRepo{}, zerolog.Nop())

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalCreators != 2 || stats.Pending != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if stats.AverageRating != 60 {
		t.Fatalf("expected average 60, got %v", stats.AverageRating)
	}
}
