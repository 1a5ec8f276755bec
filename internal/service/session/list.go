package session

import (
	"context"
	"fmt"

	"github.com/prepstack/interview-backend/internal/domain"
	"github.com/prepstack/interview-backend/pkg/ctxutil"
)

// ListMine returns the authenticated learner's sessions matching the
// filter, newest first by default.
func (s *Service) ListMine(ctx context.Context, filter domain.SessionFilter) (*ListResult, error) {
	learnerID, ok := ctxutil.LearnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	sessions, total, err := s.sessions.List(ctx, learnerID, filter)
	if err != nil {
		return nil, fmt.Errorf("session.ListMine: %w", err)
	}

	return &ListResult{Sessions: sessions, Total: total}, nil
}
