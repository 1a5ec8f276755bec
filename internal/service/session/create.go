package session

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prepstack/interview-backend/internal/adapter/provider/questiongen"
	"github.com/prepstack/interview-backend/internal/domain"
	"github.com/prepstack/interview-backend/pkg/ctxutil"
)

// Create creates a session and its generated question set atomically.
// The generator runs outside the transaction; only persistence is
// transactional.
func (s *Service) Create(ctx context.Context, input CreateInput) (*SessionDetail, error) {
	learnerID, ok := ctxutil.LearnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	drafts, err := s.generator.Generate(ctx, questiongen.Request{
		Role:       input.Role,
		Experience: input.Experience,
		Topics:     input.TopicsToFocus,
		Count:      input.QuestionCount,
	})
	if err != nil {
		return nil, fmt.Errorf("session.Create generate questions: %w", err)
	}

	var (
		created   *domain.Session
		questions []*domain.Question
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		created, err = s.sessions.Create(txCtx, &domain.Session{
			LearnerID:     learnerID,
			Role:          input.Role,
			Experience:    input.Experience,
			TopicsToFocus: input.TopicsToFocus,
			Description:   input.Description,
		})
		if err != nil {
			return fmt.Errorf("create session: %w", err)
		}

		batch := make([]*domain.Question, len(drafts))
		for i, d := range drafts {
			batch[i] = &domain.Question{
				SessionID: created.ID,
				Prompt:    d.Prompt,
				Answer:    d.Answer,
			}
		}

		questions, err = s.questions.CreateBatch(txCtx, batch)
		if err != nil {
			return fmt.Errorf("create questions: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("session.Create: %w", err)
	}

	s.log.InfoContext(ctx, "session created",
		slog.String("session_id", created.ID.String()),
		slog.String("role", created.Role),
		slog.Int("questions", len(questions)))

	return &SessionDetail{
		Session:   created,
		Questions: questions,
		Progress:  progressOf(questions),
	}, nil
}

// progressOf derives completion state from a question set.
func progressOf(questions []*domain.Question) domain.SessionProgress {
	mastered := 0
	for _, q := range questions {
		if q.IsMastered {
			mastered++
		}
	}
	return domain.SessionProgress{
		TotalQuestions:       len(questions),
		MasteredQuestions:    mastered,
		CompletionPercentage: domain.Completion(mastered, len(questions)),
	}
}
