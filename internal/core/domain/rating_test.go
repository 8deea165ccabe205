package domain

import "testing"

func TestScore_WeightedAverage(t *testing.T) {
	values := map[string]float64{
		FactorContentQuality:    80,
		FactorEngagementQuality: 60,
		FactorGrowthStability:   90,
		FactorAuthenticity:      70,
	}

	got := Score(values, DefaultWeights())
	if got != 75 {
		t.Fatalf("expected 75, got %d", got)
	}
}

func TestScore_Rounds(t *testing.T) {
	values := map[string]float64{
		FactorContentQuality:    80,
		FactorEngagementQuality: 61,
		FactorGrowthStability:   90,
		FactorAuthenticity:      70,
	}

	// (80+61+90+70)/4 = 75.25, rounds down.
	if got := Score(values, DefaultWeights()); got != 75 {
		t.Fatalf("expected 75, got %d", got)
	}

	values[FactorEngagementQuality] = 63
	// 75.75 rounds up.
	if got := Score(values, DefaultWeights()); got != 76 {
		t.Fatalf("expected 76, got %d", got)
	}
}

func TestScore_AllZeroWeights(t *testing.T) {
	values := map[string]float64{FactorContentQuality: 100}
	weights := RatingWeights{
		FactorContentQuality:    0,
		FactorEngagementQuality: 0,
		FactorGrowthStability:   0,
		FactorAuthenticity:      0,
	}

	if got := Score(values, weights); got != 0 {
		t.Fatalf("expected 0 for all-zero weights, got %d", got)
	}
}

func TestScore_SingleNonZeroWeight(t *testing.T) {
	values := map[string]float64{
		FactorContentQuality: 42,
		FactorAuthenticity:   100,
	}
	weights := RatingWeights{FactorContentQuality: 10}

	if got := Score(values, weights); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
}

func TestScore_ScalingInvariant(t *testing.T) {
	values := map[string]float64{
		FactorContentQuality:    55,
		FactorEngagementQuality: 72,
		FactorGrowthStability:   30,
		FactorAuthenticity:      88,
	}
	base := RatingWeights{
		FactorContentQuality:    10,
		FactorEngagementQuality: 20,
		FactorGrowthStability:   30,
		FactorAuthenticity:      40,
	}
	scaled := RatingWeights{}
	for k, v := range base {
		scaled[k] = v * 5
	}

	if Score(values, base) != Score(values, scaled) {
		t.Fatalf("score changed under uniform weight scaling: %d vs %d",
			Score(values, base), Score(values, scaled))
	}
}

func TestScore_MissingFactorReadsAsZero(t *testing.T) {
	values := map[string]float64{FactorContentQuality: 100}

	// Three of four equally-weighted factors are absent.
	if got := Score(values, DefaultWeights()); got != 25 {
		t.Fatalf("expected 25, got %d", got)
	}
}

func TestRatingWeights_Validate(t *testing.T) {
	cases := []struct {
		name    string
		weights RatingWeights
		wantErr bool
	}{
		{"default", DefaultWeights(), false},
		{"uneven but complete", RatingWeights{
			FactorContentQuality:    40,
			FactorEngagementQuality: 30,
			FactorGrowthStability:   20,
			FactorAuthenticity:      10,
		}, false},
		{"sums to 99", RatingWeights{
			FactorContentQuality:    25,
			FactorEngagementQuality: 25,
			FactorGrowthStability:   25,
			FactorAuthenticity:      24,
		}, true},
		{"sums to 101", RatingWeights{
			FactorContentQuality:    26,
			FactorEngagementQuality: 25,
			FactorGrowthStability:   25,
			FactorAuthenticity:      25,
		}, true},
		{"negative entry", RatingWeights{
			FactorContentQuality:    120,
			FactorEngagementQuality: -20,
			FactorGrowthStability:   0,
			FactorAuthenticity:      0,
		}, true},
		{"empty", RatingWeights{}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.weights.Validate()
			if tc.wantErr && err == nil {
				t.Fatalf("expected error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestApplicationStatus_Transitions(t *testing.T) {
	cases := []struct {
		from, to ApplicationStatus
		want     bool
	}{
		{ApplicationPending, ApplicationUnderReview, true},
		{ApplicationPending, ApplicationApproved, true},
		{ApplicationPending, ApplicationRejected, true},
		{ApplicationUnderReview, ApplicationApproved, true},
		{ApplicationUnderReview, ApplicationRejected, true},
		{ApplicationUnderReview, ApplicationPending, false},
		{ApplicationApproved, ApplicationRejected, false},
		{ApplicationApproved, ApplicationUnderReview, false},
		{ApplicationRejected, ApplicationApproved, false},
		{ApplicationRejected, ApplicationPending, false},
	}

	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Errorf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.want, got)
		}
	}
}
