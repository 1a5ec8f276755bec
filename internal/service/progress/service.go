// Package progress implements the progress intelligence engine: answer
// scoring, spaced-repetition scheduling, curriculum roadmap derivation,
// and analytics roll-ups over a learner's review history.
package progress

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/prepstack/interview-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type questionRepo interface {
	GetByID(ctx context.Context, learnerID, questionID uuid.UUID) (*domain.Question, error)
	UpdateSchedule(ctx context.Context, questionID uuid.UUID, version int, upd domain.ScheduleUpdate, lastScore *int) (*domain.Question, error)
	ListDue(ctx context.Context, learnerID uuid.UUID, now time.Time) ([]*domain.Question, error)
	CountDue(ctx context.Context, learnerID uuid.UUID, now time.Time) (int, error)
	MasteryCounts(ctx context.Context, learnerID uuid.UUID) (domain.MasteryRatio, error)
}

type sampleRepo interface {
	Create(ctx context.Context, sample *domain.PerformanceSample) error
	ListByLearner(ctx context.Context, learnerID uuid.UUID) ([]domain.PerformanceSample, error)
}

type sessionRepo interface {
	StatsByLearner(ctx context.Context, learnerID uuid.UUID) ([]domain.SessionStats, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service wires the pure engine functions to persistence and configuration.
type Service struct {
	questions questionRepo
	samples   sampleRepo
	sessions  sessionRepo
	tx        txManager
	log       *slog.Logger

	weights         domain.ScoreWeights
	policy          domain.ReviewPolicy
	unlockThreshold int
	activityWindow  int
	catalogue       *Catalogue
}

// NewService creates the progress service. Misconfigured weights or
// policy are construction errors: the engine's runtime contract is total,
// so bad configuration must fail fast here instead.
func NewService(
	log *slog.Logger,
	questions questionRepo,
	samples sampleRepo,
	sessions sessionRepo,
	tx txManager,
	weights domain.ScoreWeights,
	policy domain.ReviewPolicy,
	unlockThreshold int,
	activityWindow int,
	catalogue *Catalogue,
) (*Service, error) {
	if !weights.Valid() {
		return nil, fmt.Errorf("score weights must be non-negative and sum to 1.0: %+v", weights)
	}
	if policy.MasteryThreshold < 0 || policy.MasteryThreshold > 100 {
		return nil, fmt.Errorf("mastery threshold must be in [0,100]: %d", policy.MasteryThreshold)
	}
	if policy.GrowthFactor < 1.0 {
		return nil, fmt.Errorf("growth factor must be >= 1.0: %v", policy.GrowthFactor)
	}
	if unlockThreshold < 0 || unlockThreshold > 100 {
		return nil, fmt.Errorf("unlock threshold must be in [0,100]: %d", unlockThreshold)
	}
	if activityWindow <= 0 {
		return nil, fmt.Errorf("activity window must be positive: %d", activityWindow)
	}
	if catalogue == nil {
		catalogue = DefaultCatalogue()
	}

	return &Service{
		questions:       questions,
		samples:         samples,
		sessions:        sessions,
		tx:              tx,
		log:             log.With("service", "progress"),
		weights:         weights,
		policy:          policy,
		unlockThreshold: unlockThreshold,
		activityWindow:  activityWindow,
		catalogue:       catalogue,
	}, nil
}
