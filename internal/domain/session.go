package domain

import (
	"time"

	"github.com/google/uuid"
)

// Session groups questions prepared for a specific role and experience
// level. Mastery counts and completion percentage are derived from the
// question set on demand, never stored.
type Session struct {
	ID            uuid.UUID
	LearnerID     uuid.UUID
	Role          string
	Experience    string
	TopicsToFocus []string
	Description   string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// SessionProgress holds the derived completion state of one session.
type SessionProgress struct {
	TotalQuestions       int
	MasteredQuestions    int
	CompletionPercentage int
}

// SessionStats is the per-session aggregate consumed by the roadmap
// computation: topic tags for phase matching plus mastery counts.
type SessionStats struct {
	SessionID         uuid.UUID
	Topics            []string
	TotalQuestions    int
	MasteredQuestions int
}

// SessionFilter defines search, sorting and pagination for listing
// sessions. Zero values fall back to repository defaults.
type SessionFilter struct {
	// Search performs a case-insensitive substring match against role
	// and description.
	Search *string

	// Role filters sessions prepared for an exact role.
	Role *string

	// SortBy determines the sort column: "created_at", "updated_at", "role".
	SortBy string

	// SortOrder: "ASC" or "DESC".
	SortOrder string

	Limit  int
	Offset int
}

// Completion computes the completion percentage for the given counts.
// Zero questions yields 0, never a division error.
func Completion(mastered, total int) int {
	if total <= 0 {
		return 0
	}
	return int(float64(mastered)/float64(total)*100 + 0.5)
}
