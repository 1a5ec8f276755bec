package progress

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prepstack/interview-backend/internal/domain"
	"github.com/prepstack/interview-backend/pkg/ctxutil"
)

// GetRoadmap computes the learner's curriculum roadmap for a role. An
// unknown role falls back to the default catalogue with a warning — the
// roadmap is advisory, so a missing catalogue entry never reaches the
// user as an error.
func (s *Service) GetRoadmap(ctx context.Context, role string) (*domain.Roadmap, error) {
	learnerID, ok := ctxutil.LearnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	catalogue, known := s.catalogue.PhasesFor(role)
	if !known {
		s.log.WarnContext(ctx, "unknown role, using default catalogue",
			slog.String("learner_id", learnerID.String()),
			slog.String("role", role),
		)
	}

	stats, err := s.sessions.StatsByLearner(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("load session stats: %w", err)
	}

	roadmap := BuildRoadmap(role, catalogue, stats, s.unlockThreshold)

	s.log.InfoContext(ctx, "roadmap computed",
		slog.String("learner_id", learnerID.String()),
		slog.String("role", role),
		slog.Int("phases", len(roadmap.Phases)),
		slog.Int("overall_progress", roadmap.OverallProgress),
	)

	return &roadmap, nil
}
