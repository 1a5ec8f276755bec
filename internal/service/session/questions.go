package session

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/prepstack/interview-backend/internal/domain"
	"github.com/prepstack/interview-backend/pkg/ctxutil"
)

// AddQuestions appends learner-authored questions to an existing
// session. New questions enter the schedule immediately due.
func (s *Service) AddQuestions(ctx context.Context, input AddQuestionsInput) ([]*domain.Question, error) {
	learnerID, ok := ctxutil.LearnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Ownership check before the insert: CreateBatch itself only sees
	// session IDs.
	if _, err := s.sessions.GetByID(ctx, learnerID, input.SessionID); err != nil {
		return nil, fmt.Errorf("session.AddQuestions: %w", err)
	}

	batch := make([]*domain.Question, len(input.Questions))
	for i, q := range input.Questions {
		batch[i] = &domain.Question{
			SessionID: input.SessionID,
			Prompt:    q.Prompt,
			Answer:    q.Answer,
		}
	}

	created, err := s.questions.CreateBatch(ctx, batch)
	if err != nil {
		return nil, fmt.Errorf("session.AddQuestions: %w", err)
	}

	s.log.InfoContext(ctx, "questions added",
		slog.String("session_id", input.SessionID.String()),
		slog.Int("count", len(created)))

	return created, nil
}

// TogglePin sets the pin flag on a question.
func (s *Service) TogglePin(ctx context.Context, questionID uuid.UUID, pinned bool) error {
	learnerID, ok := ctxutil.LearnerIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.questions.SetPinned(ctx, learnerID, questionID, pinned); err != nil {
		return fmt.Errorf("session.TogglePin: %w", err)
	}
	return nil
}

// UpdateNote replaces the free-form note on a question.
func (s *Service) UpdateNote(ctx context.Context, questionID uuid.UUID, note string) error {
	learnerID, ok := ctxutil.LearnerIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.questions.SetNote(ctx, learnerID, questionID, note); err != nil {
		return fmt.Errorf("session.UpdateNote: %w", err)
	}
	return nil
}

// DeleteQuestion removes a single question from a session.
func (s *Service) DeleteQuestion(ctx context.Context, questionID uuid.UUID) error {
	learnerID, ok := ctxutil.LearnerIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.questions.Delete(ctx, learnerID, questionID); err != nil {
		return fmt.Errorf("session.DeleteQuestion: %w", err)
	}
	return nil
}
