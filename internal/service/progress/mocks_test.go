package progress

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/prepstack/interview-backend/internal/domain"
)

var _ questionRepo = &questionRepoMock{}

type questionRepoMock struct {
	GetByIDFunc        func(ctx context.Context, learnerID, questionID uuid.UUID) (*domain.Question, error)
	UpdateScheduleFunc func(ctx context.Context, questionID uuid.UUID, version int, upd domain.ScheduleUpdate, lastScore *int) (*domain.Question, error)
	ListDueFunc        func(ctx context.Context, learnerID uuid.UUID, now time.Time) ([]*domain.Question, error)
	CountDueFunc       func(ctx context.Context, learnerID uuid.UUID, now time.Time) (int, error)
	MasteryCountsFunc  func(ctx context.Context, learnerID uuid.UUID) (domain.MasteryRatio, error)

	mu    sync.Mutex
	calls struct {
		GetByID        int
		UpdateSchedule []domain.ScheduleUpdate
		ListDue        int
		CountDue       int
		MasteryCounts  int
	}
}

func (m *questionRepoMock) GetByID(ctx context.Context, learnerID, questionID uuid.UUID) (*domain.Question, error) {
	m.mu.Lock()
	m.calls.GetByID++
	m.mu.Unlock()
	if m.GetByIDFunc == nil {
		panic("questionRepoMock.GetByIDFunc is nil")
	}
	return m.GetByIDFunc(ctx, learnerID, questionID)
}

func (m *questionRepoMock) UpdateSchedule(ctx context.Context, questionID uuid.UUID, version int, upd domain.ScheduleUpdate, lastScore *int) (*domain.Question, error) {
	m.mu.Lock()
	m.calls.UpdateSchedule = append(m.calls.UpdateSchedule, upd)
	m.mu.Unlock()
	if m.UpdateScheduleFunc == nil {
		panic("questionRepoMock.UpdateScheduleFunc is nil")
	}
	return m.UpdateScheduleFunc(ctx, questionID, version, upd, lastScore)
}

func (m *questionRepoMock) ListDue(ctx context.Context, learnerID uuid.UUID, now time.Time) ([]*domain.Question, error) {
	m.mu.Lock()
	m.calls.ListDue++
	m.mu.Unlock()
	if m.ListDueFunc == nil {
		panic("questionRepoMock.ListDueFunc is nil")
	}
	return m.ListDueFunc(ctx, learnerID, now)
}

func (m *questionRepoMock) CountDue(ctx context.Context, learnerID uuid.UUID, now time.Time) (int, error) {
	m.mu.Lock()
	m.calls.CountDue++
	m.mu.Unlock()
	if m.CountDueFunc == nil {
		panic("questionRepoMock.CountDueFunc is nil")
	}
	return m.CountDueFunc(ctx, learnerID, now)
}

func (m *questionRepoMock) MasteryCounts(ctx context.Context, learnerID uuid.UUID) (domain.MasteryRatio, error) {
	m.mu.Lock()
	m.calls.MasteryCounts++
	m.mu.Unlock()
	if m.MasteryCountsFunc == nil {
		panic("questionRepoMock.MasteryCountsFunc is nil")
	}
	return m.MasteryCountsFunc(ctx, learnerID)
}

func (m *questionRepoMock) UpdateScheduleCalls() []domain.ScheduleUpdate {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.UpdateSchedule
}

var _ sampleRepo = &sampleRepoMock{}

type sampleRepoMock struct {
	CreateFunc        func(ctx context.Context, sample *domain.PerformanceSample) error
	ListByLearnerFunc func(ctx context.Context, learnerID uuid.UUID) ([]domain.PerformanceSample, error)

	mu      sync.Mutex
	created []domain.PerformanceSample
}

func (m *sampleRepoMock) Create(ctx context.Context, sample *domain.PerformanceSample) error {
	m.mu.Lock()
	m.created = append(m.created, *sample)
	m.mu.Unlock()
	if m.CreateFunc == nil {
		return nil
	}
	return m.CreateFunc(ctx, sample)
}

func (m *sampleRepoMock) ListByLearner(ctx context.Context, learnerID uuid.UUID) ([]domain.PerformanceSample, error) {
	if m.ListByLearnerFunc == nil {
		panic("sampleRepoMock.ListByLearnerFunc is nil")
	}
	return m.ListByLearnerFunc(ctx, learnerID)
}

func (m *sampleRepoMock) CreatedSamples() []domain.PerformanceSample {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.created
}

var _ sessionRepo = &sessionRepoMock{}

type sessionRepoMock struct {
	StatsByLearnerFunc func(ctx context.Context, learnerID uuid.UUID) ([]domain.SessionStats, error)
}

func (m *sessionRepoMock) StatsByLearner(ctx context.Context, learnerID uuid.UUID) ([]domain.SessionStats, error) {
	if m.StatsByLearnerFunc == nil {
		panic("sessionRepoMock.StatsByLearnerFunc is nil")
	}
	return m.StatsByLearnerFunc(ctx, learnerID)
}

var _ txManager = &txManagerMock{}

// txManagerMock runs the callback inline, no transaction semantics.
type txManagerMock struct{}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
