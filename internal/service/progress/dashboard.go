package progress

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/prepstack/interview-backend/internal/domain"
	"github.com/prepstack/interview-backend/pkg/ctxutil"
)

// GetDashboard assembles the analytics roll-ups for the learner: daily
// activity within the trailing window, weekly accuracy trend, mastery
// ratio, and the current due count. Everything is recomputed from stored
// history on each call; per-learner history sizes make that cheap enough
// that no incremental maintenance is kept.
func (s *Service) GetDashboard(ctx context.Context) (*domain.Dashboard, error) {
	learnerID, ok := ctxutil.LearnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	now := time.Now().UTC()

	samples, err := s.samples.ListByLearner(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("load performance samples: %w", err)
	}

	ratio, err := s.questions.MasteryCounts(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("count mastery: %w", err)
	}

	dueCount, err := s.questions.CountDue(ctx, learnerID, now)
	if err != nil {
		return nil, fmt.Errorf("count due questions: %w", err)
	}

	dashboard := &domain.Dashboard{
		DueCount:      dueCount,
		DailyActivity: DailyActivity(samples, now, s.activityWindow),
		WeeklyTrend:   WeeklyAccuracy(samples, now),
		Mastery:       ratio,
	}

	s.log.InfoContext(ctx, "dashboard computed",
		slog.String("learner_id", learnerID.String()),
		slog.Int("due_count", dueCount),
		slog.Int("samples", len(samples)),
		slog.Int("mastered", ratio.Mastered),
		slog.Int("unmastered", ratio.Unmastered),
	)

	return dashboard, nil
}
