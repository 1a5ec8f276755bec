package session

import "github.com/prepstack/interview-backend/internal/domain"

// SessionDetail is a session with its question set and derived progress.
type SessionDetail struct {
	Session   *domain.Session
	Questions []*domain.Question
	Progress  domain.SessionProgress
}

// ListResult is a page of sessions plus the total match count.
type ListResult struct {
	Sessions []*domain.Session
	Total    int
}
