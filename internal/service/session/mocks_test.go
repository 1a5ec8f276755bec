package session

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/prepstack/interview-backend/internal/adapter/provider/questiongen"
	"github.com/prepstack/interview-backend/internal/domain"
)

var _ sessionRepo = &sessionRepoMock{}

type sessionRepoMock struct {
	CreateFunc   func(ctx context.Context, s *domain.Session) (*domain.Session, error)
	GetByIDFunc  func(ctx context.Context, learnerID, sessionID uuid.UUID) (*domain.Session, error)
	ListFunc     func(ctx context.Context, learnerID uuid.UUID, f domain.SessionFilter) ([]*domain.Session, int, error)
	GetStatsFunc func(ctx context.Context, learnerID, sessionID uuid.UUID) (domain.SessionStats, error)
	DeleteFunc   func(ctx context.Context, learnerID, sessionID uuid.UUID) error

	mu    sync.Mutex
	calls struct {
		Create  int
		GetByID int
		Delete  int
	}
}

func (m *sessionRepoMock) Create(ctx context.Context, s *domain.Session) (*domain.Session, error) {
	m.mu.Lock()
	m.calls.Create++
	m.mu.Unlock()
	if m.CreateFunc == nil {
		panic("sessionRepoMock.CreateFunc is nil")
	}
	return m.CreateFunc(ctx, s)
}

func (m *sessionRepoMock) GetByID(ctx context.Context, learnerID, sessionID uuid.UUID) (*domain.Session, error) {
	m.mu.Lock()
	m.calls.GetByID++
	m.mu.Unlock()
	if m.GetByIDFunc == nil {
		panic("sessionRepoMock.GetByIDFunc is nil")
	}
	return m.GetByIDFunc(ctx, learnerID, sessionID)
}

func (m *sessionRepoMock) List(ctx context.Context, learnerID uuid.UUID, f domain.SessionFilter) ([]*domain.Session, int, error) {
	if m.ListFunc == nil {
		panic("sessionRepoMock.ListFunc is nil")
	}
	return m.ListFunc(ctx, learnerID, f)
}

func (m *sessionRepoMock) GetStats(ctx context.Context, learnerID, sessionID uuid.UUID) (domain.SessionStats, error) {
	if m.GetStatsFunc == nil {
		panic("sessionRepoMock.GetStatsFunc is nil")
	}
	return m.GetStatsFunc(ctx, learnerID, sessionID)
}

func (m *sessionRepoMock) Delete(ctx context.Context, learnerID, sessionID uuid.UUID) error {
	m.mu.Lock()
	m.calls.Delete++
	m.mu.Unlock()
	if m.DeleteFunc == nil {
		panic("sessionRepoMock.DeleteFunc is nil")
	}
	return m.DeleteFunc(ctx, learnerID, sessionID)
}

var _ questionRepo = &questionRepoMock{}

type questionRepoMock struct {
	CreateBatchFunc   func(ctx context.Context, questions []*domain.Question) ([]*domain.Question, error)
	ListBySessionFunc func(ctx context.Context, learnerID, sessionID uuid.UUID) ([]*domain.Question, error)
	SetPinnedFunc     func(ctx context.Context, learnerID, questionID uuid.UUID, pinned bool) error
	SetNoteFunc       func(ctx context.Context, learnerID, questionID uuid.UUID, note string) error
	DeleteFunc        func(ctx context.Context, learnerID, questionID uuid.UUID) error

	mu      sync.Mutex
	batches [][]*domain.Question
}

func (m *questionRepoMock) CreateBatch(ctx context.Context, questions []*domain.Question) ([]*domain.Question, error) {
	m.mu.Lock()
	m.batches = append(m.batches, questions)
	m.mu.Unlock()
	if m.CreateBatchFunc == nil {
		panic("questionRepoMock.CreateBatchFunc is nil")
	}
	return m.CreateBatchFunc(ctx, questions)
}

func (m *questionRepoMock) ListBySession(ctx context.Context, learnerID, sessionID uuid.UUID) ([]*domain.Question, error) {
	if m.ListBySessionFunc == nil {
		panic("questionRepoMock.ListBySessionFunc is nil")
	}
	return m.ListBySessionFunc(ctx, learnerID, sessionID)
}

func (m *questionRepoMock) SetPinned(ctx context.Context, learnerID, questionID uuid.UUID, pinned bool) error {
	if m.SetPinnedFunc == nil {
		panic("questionRepoMock.SetPinnedFunc is nil")
	}
	return m.SetPinnedFunc(ctx, learnerID, questionID, pinned)
}

func (m *questionRepoMock) SetNote(ctx context.Context, learnerID, questionID uuid.UUID, note string) error {
	if m.SetNoteFunc == nil {
		panic("questionRepoMock.SetNoteFunc is nil")
	}
	return m.SetNoteFunc(ctx, learnerID, questionID, note)
}

func (m *questionRepoMock) Delete(ctx context.Context, learnerID, questionID uuid.UUID) error {
	if m.DeleteFunc == nil {
		panic("questionRepoMock.DeleteFunc is nil")
	}
	return m.DeleteFunc(ctx, learnerID, questionID)
}

func (m *questionRepoMock) Batches() [][]*domain.Question {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.batches
}

var _ questiongen.Provider = &generatorMock{}

type generatorMock struct {
	GenerateFunc func(ctx context.Context, req questiongen.Request) ([]questiongen.Draft, error)
}

func (m *generatorMock) Generate(ctx context.Context, req questiongen.Request) ([]questiongen.Draft, error) {
	if m.GenerateFunc == nil {
		panic("generatorMock.GenerateFunc is nil")
	}
	return m.GenerateFunc(ctx, req)
}

var _ txManager = &txManagerMock{}

// txManagerMock runs the callback inline, no transaction semantics.
type txManagerMock struct{}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
