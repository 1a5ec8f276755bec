package domain

import "math"

// ScoreWeights are the named weights of the answer scorer. They must sum
// to 1.0; alternate weighting schemes can be substituted without touching
// callers.
type ScoreWeights struct {
	Confidence        float64
	Clarity           float64
	TechnicalAccuracy float64
	FillerPenalty     float64
}

// DefaultScoreWeights returns the standard weighting scheme.
func DefaultScoreWeights() ScoreWeights {
	return ScoreWeights{
		Confidence:        0.25,
		Clarity:           0.25,
		TechnicalAccuracy: 0.30,
		FillerPenalty:     0.20,
	}
}

// Valid reports whether the weights are non-negative and sum to 1.0
// (within floating-point tolerance).
func (w ScoreWeights) Valid() bool {
	if w.Confidence < 0 || w.Clarity < 0 || w.TechnicalAccuracy < 0 || w.FillerPenalty < 0 {
		return false
	}
	sum := w.Confidence + w.Clarity + w.TechnicalAccuracy + w.FillerPenalty
	return math.Abs(sum-1.0) < 1e-9
}

// ReviewPolicy is the injectable spaced-repetition policy. Only
// {IsMastered, ReviewInterval, DueDate} are persisted, so a stricter or
// looser policy swaps in without a schema change.
type ReviewPolicy struct {
	// MasteryThreshold is the minimum passing score, inclusive: a score
	// exactly at the threshold passes.
	MasteryThreshold int
	// GrowthFactor multiplies the interval on each consecutive pass.
	GrowthFactor float64
}

// DefaultReviewPolicy returns the standard doubling policy with an
// 80-point mastery bar.
func DefaultReviewPolicy() ReviewPolicy {
	return ReviewPolicy{MasteryThreshold: 80, GrowthFactor: 2.0}
}
