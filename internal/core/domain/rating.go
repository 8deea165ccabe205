package domain

import (
	"errors"
	"math"
)

// Rating factor names. These are both the weight-table keys and the
// per-creator score fields.
const (
	FactorContentQuality    = "content_quality"
	FactorEngagementQuality = "engagement_quality"
	FactorGrowthStability   = "growth_stability"
	FactorAuthenticity      = "authenticity"
)

var ErrInvalidWeights = errors.New("rating weights must sum to 100")

// RatingWeights maps factor name to its importance (0-100).
type RatingWeights map[string]int

// DefaultWeights is the even split the platform starts with.
func DefaultWeights() RatingWeights {
	return RatingWeights{
		FactorContentQuality:    25,
		FactorEngagementQuality: 25,
		FactorGrowthStability:   25,
		FactorAuthenticity:      25,
	}
}

// Total returns the sum of all weights.
func (w RatingWeights) Total() int {
	total := 0
	for _, v := range w {
		total += v
	}
	return total
}

// Validate enforces the admin-facing rule: a saved weight set must sum to
// exactly 100 and contain no negative entries.
func (w RatingWeights) Validate() error {
	for _, v := range w {
		if v < 0 {
			return ErrInvalidWeights
		}
	}
	if w.Total() != 100 {
		return ErrInvalidWeights
	}
	return nil
}

// Score combines factor values into a single credibility score using the
// weighted average round(sum(v*w) / sum(w)). An all-zero weight set yields 0.
// Scoring is invariant under uniform weight scaling, so any nonzero total is
// acceptable here even though Validate requires exactly 100 for persistence.
func Score(values map[string]float64, weights RatingWeights) int {
	total := 0
	weighted := 0.0
	for factor, w := range weights {
		if w <= 0 {
			continue
		}
		total += w
		weighted += values[factor] * float64(w)
	}
	if total == 0 {
		return 0
	}
	return int(math.Round(weighted / float64(total)))
}
