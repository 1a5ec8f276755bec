package progress

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/prepstack/interview-backend/internal/domain"
	"github.com/prepstack/interview-backend/pkg/ctxutil"
)

// GetReviewQueue returns every question across the learner's sessions
// that is due at or before now, ordered by due date ascending with ties
// broken by session creation order, then question creation order. The
// ordering is deterministic so repeated reads produce identical queues.
func (s *Service) GetReviewQueue(ctx context.Context) ([]*domain.Question, error) {
	learnerID, ok := ctxutil.LearnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	now := time.Now().UTC()

	due, err := s.questions.ListDue(ctx, learnerID, now)
	if err != nil {
		return nil, fmt.Errorf("list due questions: %w", err)
	}

	s.log.InfoContext(ctx, "review queue built",
		slog.String("learner_id", learnerID.String()),
		slog.Int("due_count", len(due)),
	)

	return due, nil
}
