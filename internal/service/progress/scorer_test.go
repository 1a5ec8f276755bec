package progress

import (
	"testing"

	"github.com/prepstack/interview-backend/internal/domain"
)

func TestScore(t *testing.T) {
	t.Parallel()

	weights := domain.DefaultScoreWeights()

	tests := []struct {
		name    string
		signals domain.AnswerSignals
		want    int
	}{
		{
			name:    "perfect answer",
			signals: domain.AnswerSignals{Confidence: 100, Clarity: 100, TechnicalAccuracy: 100, FillerWords: 0},
			want:    100,
		},
		{
			name:    "worst answer with heavy filler floors at 0",
			signals: domain.AnswerSignals{Confidence: 0, Clarity: 0, TechnicalAccuracy: 0, FillerWords: 50},
			want:    0,
		},
		{
			name:    "filler penalty floors at zero, does not go negative",
			signals: domain.AnswerSignals{Confidence: 100, Clarity: 100, TechnicalAccuracy: 100, FillerWords: 30},
			want:    80, // filler sub-score 0, remaining weights sum to 0.80
		},
		{
			name:    "each filler word costs ten filler points",
			signals: domain.AnswerSignals{Confidence: 100, Clarity: 100, TechnicalAccuracy: 100, FillerWords: 5},
			want:    90, // filler sub-score 50 × 0.20 = 10 points lost
		},
		{
			name:    "weighted mix rounds to nearest",
			signals: domain.AnswerSignals{Confidence: 70, Clarity: 80, TechnicalAccuracy: 90, FillerWords: 2},
			want:    81, // 17.5 + 20 + 27 + 16 = 80.5 → 81
		},
		{
			name:    "out-of-range inputs are clamped, not rejected",
			signals: domain.AnswerSignals{Confidence: 150, Clarity: -20, TechnicalAccuracy: 110, FillerWords: -3},
			want:    75, // clamped to 100/0/100/0 → 25 + 0 + 30 + 20
		},
		{
			name:    "zero value signals score the explicit worst case",
			signals: domain.AnswerSignals{},
			want:    20, // only the untouched filler sub-score contributes
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(weights, tt.signals); got != tt.want {
				t.Errorf("Score(%+v): got %d, want %d", tt.signals, got, tt.want)
			}
		})
	}
}

// TestScore_Range exhaustively spot-checks the no-overflow property over
// the corners and a grid of the input space.
func TestScore_Range(t *testing.T) {
	t.Parallel()

	weights := domain.DefaultScoreWeights()

	for conf := 0; conf <= 100; conf += 25 {
		for clar := 0; clar <= 100; clar += 25 {
			for tech := 0; tech <= 100; tech += 25 {
				for _, filler := range []int{0, 1, 5, 10, 100} {
					s := domain.AnswerSignals{
						Confidence:        conf,
						Clarity:           clar,
						TechnicalAccuracy: tech,
						FillerWords:       filler,
					}
					got := Score(weights, s)
					if got < 0 || got > 100 {
						t.Fatalf("Score(%+v) = %d, out of [0,100]", s, got)
					}
				}
			}
		}
	}
}

func TestScore_AlternateWeights(t *testing.T) {
	t.Parallel()

	// Technical-accuracy-only weighting scheme.
	weights := domain.ScoreWeights{TechnicalAccuracy: 1.0}

	signals := domain.AnswerSignals{Confidence: 0, Clarity: 0, TechnicalAccuracy: 60, FillerWords: 40}
	if got := Score(weights, signals); got != 60 {
		t.Errorf("got %d, want 60 with technical-only weights", got)
	}
}

func TestNormalizeSignals(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		in          domain.AnswerSignals
		want        domain.AnswerSignals
		wantClamped bool
	}{
		{
			name:        "in-range passes through",
			in:          domain.AnswerSignals{Confidence: 50, Clarity: 60, TechnicalAccuracy: 70, FillerWords: 3},
			want:        domain.AnswerSignals{Confidence: 50, Clarity: 60, TechnicalAccuracy: 70, FillerWords: 3},
			wantClamped: false,
		},
		{
			name:        "negative filler words clamp to zero",
			in:          domain.AnswerSignals{Confidence: 50, Clarity: 60, TechnicalAccuracy: 70, FillerWords: -1},
			want:        domain.AnswerSignals{Confidence: 50, Clarity: 60, TechnicalAccuracy: 70, FillerWords: 0},
			wantClamped: true,
		},
		{
			name:        "sub-scores clamp to both bounds",
			in:          domain.AnswerSignals{Confidence: 101, Clarity: -5, TechnicalAccuracy: 100, FillerWords: 0},
			want:        domain.AnswerSignals{Confidence: 100, Clarity: 0, TechnicalAccuracy: 100, FillerWords: 0},
			wantClamped: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, clamped := NormalizeSignals(tt.in)
			if got != tt.want {
				t.Errorf("normalized: got %+v, want %+v", got, tt.want)
			}
			if clamped != tt.wantClamped {
				t.Errorf("clamped: got %v, want %v", clamped, tt.wantClamped)
			}
		})
	}
}
