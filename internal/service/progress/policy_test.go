package progress

import (
	"testing"
	"time"

	"github.com/prepstack/interview-backend/internal/domain"
)

func TestAdvance(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	policy := domain.DefaultReviewPolicy()

	tests := []struct {
		name         string
		prevInterval int
		score        int
		wantInterval int
		wantMastered bool
	}{
		{
			name:         "score at threshold passes (inclusive boundary)",
			prevInterval: 1,
			score:        80,
			wantInterval: 2,
			wantMastered: true,
		},
		{
			name:         "score one below threshold fails",
			prevInterval: 1,
			score:        79,
			wantInterval: 1,
			wantMastered: false,
		},
		{
			name:         "pass doubles a larger interval",
			prevInterval: 8,
			score:        95,
			wantInterval: 16,
			wantMastered: true,
		},
		{
			name:         "failure resets a long interval to one day",
			prevInterval: 16,
			score:        40,
			wantInterval: 1,
			wantMastered: false,
		},
		{
			name:         "corrupt zero interval is floored to one before growth",
			prevInterval: 0,
			score:        100,
			wantInterval: 2,
			wantMastered: true,
		},
		{
			name:         "corrupt negative interval is floored to one",
			prevInterval: -7,
			score:        100,
			wantInterval: 2,
			wantMastered: true,
		},
		{
			name:         "perfect score on fresh question",
			prevInterval: 1,
			score:        100,
			wantInterval: 2,
			wantMastered: true,
		},
		{
			name:         "zero score",
			prevInterval: 4,
			score:        0,
			wantInterval: 1,
			wantMastered: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Advance(policy, tt.prevInterval, tt.score, now)

			if got.Interval != tt.wantInterval {
				t.Errorf("interval: got %d, want %d", got.Interval, tt.wantInterval)
			}
			if got.IsMastered != tt.wantMastered {
				t.Errorf("mastered: got %v, want %v", got.IsMastered, tt.wantMastered)
			}
			wantDue := now.AddDate(0, 0, tt.wantInterval)
			if !got.DueDate.Equal(wantDue) {
				t.Errorf("due date: got %v, want %v", got.DueDate, wantDue)
			}
			if !got.DueDate.After(now) {
				t.Errorf("due date %v must be after now %v", got.DueDate, now)
			}
			if got.Interval < 1 {
				t.Errorf("interval %d violates the >= 1 invariant", got.Interval)
			}
		})
	}
}

// Three consecutive passes from interval 1 walk the doubling ladder 2, 4, 8.
func TestAdvance_ConsecutivePassesDouble(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	policy := domain.DefaultReviewPolicy()

	interval := 1
	for i, want := range []int{2, 4, 8} {
		upd := Advance(policy, interval, 90, now)
		if upd.Interval != want {
			t.Fatalf("pass %d: interval got %d, want %d", i+1, upd.Interval, want)
		}
		interval = upd.Interval
		now = upd.DueDate
	}
}

func TestAdvance_CustomPolicy(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	// A gentler policy: lower bar, slower growth.
	policy := domain.ReviewPolicy{MasteryThreshold: 60, GrowthFactor: 1.5}

	upd := Advance(policy, 2, 60, now)
	if !upd.IsMastered {
		t.Error("score at custom threshold must pass")
	}
	if upd.Interval != 3 {
		t.Errorf("interval: got %d, want 3 (2 × 1.5)", upd.Interval)
	}

	upd = Advance(policy, 2, 59, now)
	if upd.IsMastered || upd.Interval != 1 {
		t.Errorf("below custom threshold must reset: got %+v", upd)
	}
}
