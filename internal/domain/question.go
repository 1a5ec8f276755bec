package domain

import (
	"time"

	"github.com/google/uuid"
)

// Question is the unit of spaced-repetition review. It belongs to exactly
// one Session and carries the engine-owned scheduling state.
type Question struct {
	ID        uuid.UUID
	SessionID uuid.UUID
	Prompt    string
	Answer    string
	Note      string
	IsPinned  bool

	// Engine-owned fields. ReviewInterval is in whole days and is never
	// below 1; DueDate is always set (defaults to creation time).
	IsMastered     bool
	ReviewInterval int
	DueDate        time.Time
	LastScore      *int

	// Version is the optimistic-concurrency token for the schedule
	// read-modify-write. Two concurrent answer submissions for the same
	// question must not both win: the interval depends on the prior
	// interval, so a lost update is a correctness bug.
	Version int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsDue reports whether the question should be reviewed at the given time.
func (q *Question) IsDue(now time.Time) bool {
	return !q.DueDate.After(now)
}

// ScheduleUpdate is the result of advancing a question through the review
// policy: the fields persisted back onto the Question record.
type ScheduleUpdate struct {
	Interval   int
	DueDate    time.Time
	IsMastered bool
}

// PerformanceSample is one immutable historical record of a scored answer.
// Samples are append-only and are the only input to analytics roll-ups.
type PerformanceSample struct {
	ID               uuid.UUID
	QuestionID       uuid.UUID
	LearnerID        uuid.UUID
	ReviewDate       time.Time
	PerformanceScore float64 // 0.0–1.0
}

// AnswerSignals carries the raw per-answer signals produced upstream
// (typically by the AI evaluation layer) for one submitted answer.
// Out-of-range values are clamped by the scorer, never rejected.
type AnswerSignals struct {
	Confidence        int
	Clarity           int
	TechnicalAccuracy int
	FillerWords       int
}
