package domain

import (
	"testing"
	"time"
)

func TestQuestion_IsDue(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		due  time.Time
		want bool
	}{
		{"due in the past", now.Add(-time.Hour), true},
		{"due exactly now", now, true},
		{"due in the future", now.Add(time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := &Question{DueDate: tt.due}
			if got := q.IsDue(now); got != tt.want {
				t.Errorf("IsDue: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCompletion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		mastered int
		total    int
		want     int
	}{
		{"zero questions yields zero", 0, 0, 0},
		{"negative total yields zero", 0, -1, 0},
		{"half mastered", 5, 10, 50},
		{"rounds to nearest", 1, 3, 33},
		{"rounds up", 2, 3, 67},
		{"all mastered", 10, 10, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Completion(tt.mastered, tt.total); got != tt.want {
				t.Errorf("Completion(%d, %d): got %d, want %d", tt.mastered, tt.total, got, tt.want)
			}
		})
	}
}

func TestScoreWeights_Valid(t *testing.T) {
	t.Parallel()

	if !DefaultScoreWeights().Valid() {
		t.Error("default weights must be valid")
	}

	bad := ScoreWeights{Confidence: 0.5, Clarity: 0.5, TechnicalAccuracy: 0.5, FillerPenalty: 0.5}
	if bad.Valid() {
		t.Error("weights summing to 2.0 must be invalid")
	}

	negative := ScoreWeights{Confidence: -0.5, Clarity: 0.5, TechnicalAccuracy: 0.5, FillerPenalty: 0.5}
	if negative.Valid() {
		t.Error("negative weight must be invalid")
	}
}
