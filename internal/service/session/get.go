package session

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/prepstack/interview-backend/internal/domain"
	"github.com/prepstack/interview-backend/pkg/ctxutil"
)

// Get returns a session with its questions and derived progress.
func (s *Service) Get(ctx context.Context, sessionID uuid.UUID) (*SessionDetail, error) {
	learnerID, ok := ctxutil.LearnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	sess, err := s.sessions.GetByID(ctx, learnerID, sessionID)
	if err != nil {
		return nil, fmt.Errorf("session.Get: %w", err)
	}

	questions, err := s.questions.ListBySession(ctx, learnerID, sessionID)
	if err != nil {
		return nil, fmt.Errorf("session.Get list questions: %w", err)
	}

	return &SessionDetail{
		Session:   sess,
		Questions: questions,
		Progress:  progressOf(questions),
	}, nil
}

// GetProgress returns only the derived completion state of a session,
// computed from the stored mastery counts.
func (s *Service) GetProgress(ctx context.Context, sessionID uuid.UUID) (domain.SessionProgress, error) {
	learnerID, ok := ctxutil.LearnerIDFromCtx(ctx)
	if !ok {
		return domain.SessionProgress{}, domain.ErrUnauthorized
	}

	stats, err := s.sessions.GetStats(ctx, learnerID, sessionID)
	if err != nil {
		return domain.SessionProgress{}, fmt.Errorf("session.GetProgress: %w", err)
	}

	return domain.SessionProgress{
		TotalQuestions:       stats.TotalQuestions,
		MasteredQuestions:    stats.MasteredQuestions,
		CompletionPercentage: domain.Completion(stats.MasteredQuestions, stats.TotalQuestions),
	}, nil
}
