package progress

import (
	"math"

	"github.com/prepstack/interview-backend/internal/domain"
)

// fillerPenaltyPerWord is how many points each filler word costs on the
// 0–100 filler sub-score before the floor at zero applies.
const fillerPenaltyPerWord = 10

// NormalizeSignals clamps out-of-range answer signals into their valid
// ranges. Malformed upstream AI output is clamped, never rejected: the
// scorer has a total contract. The second return value reports whether any
// clamping occurred so the caller can log it.
func NormalizeSignals(s domain.AnswerSignals) (domain.AnswerSignals, bool) {
	n := domain.AnswerSignals{
		Confidence:        clamp100(s.Confidence),
		Clarity:           clamp100(s.Clarity),
		TechnicalAccuracy: clamp100(s.TechnicalAccuracy),
		FillerWords:       maxInt(0, s.FillerWords),
	}
	return n, n != s
}

// Score converts per-answer signals into a single 0–100 mastery score
// using the weighted scheme. Pure function; signals are normalized first,
// so any input is defined.
func Score(w domain.ScoreWeights, s domain.AnswerSignals) int {
	s, _ = NormalizeSignals(s)

	fillerScore := maxInt(0, 100-s.FillerWords*fillerPenaltyPerWord)

	raw := float64(s.Confidence)*w.Confidence +
		float64(s.Clarity)*w.Clarity +
		float64(s.TechnicalAccuracy)*w.TechnicalAccuracy +
		float64(fillerScore)*w.FillerPenalty

	return clamp100(int(math.Round(raw)))
}

func clamp100(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
