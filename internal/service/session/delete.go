package session

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/prepstack/interview-backend/internal/domain"
	"github.com/prepstack/interview-backend/pkg/ctxutil"
)

// Delete removes a session. Its questions and their performance
// samples cascade at the schema level.
func (s *Service) Delete(ctx context.Context, sessionID uuid.UUID) error {
	learnerID, ok := ctxutil.LearnerIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.sessions.Delete(ctx, learnerID, sessionID); err != nil {
		return fmt.Errorf("session.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "session deleted",
		slog.String("session_id", sessionID.String()))

	return nil
}
