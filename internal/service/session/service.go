// Package session implements preparation session management: creating
// sessions with generated question sets, listing, and question curation.
package session

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/prepstack/interview-backend/internal/adapter/provider/questiongen"
	"github.com/prepstack/interview-backend/internal/domain"
)

// sessionRepo defines the session repository interface needed by this service.
type sessionRepo interface {
	Create(ctx context.Context, s *domain.Session) (*domain.Session, error)
	GetByID(ctx context.Context, learnerID, sessionID uuid.UUID) (*domain.Session, error)
	List(ctx context.Context, learnerID uuid.UUID, f domain.SessionFilter) ([]*domain.Session, int, error)
	GetStats(ctx context.Context, learnerID, sessionID uuid.UUID) (domain.SessionStats, error)
	Delete(ctx context.Context, learnerID, sessionID uuid.UUID) error
}

// questionRepo defines the question repository interface needed by this service.
type questionRepo interface {
	CreateBatch(ctx context.Context, questions []*domain.Question) ([]*domain.Question, error)
	ListBySession(ctx context.Context, learnerID, sessionID uuid.UUID) ([]*domain.Question, error)
	SetPinned(ctx context.Context, learnerID, questionID uuid.UUID, pinned bool) error
	SetNote(ctx context.Context, learnerID, questionID uuid.UUID, note string) error
	Delete(ctx context.Context, learnerID, questionID uuid.UUID) error
}

// txManager defines the transaction manager interface needed by this service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements session operations.
type Service struct {
	log       *slog.Logger
	sessions  sessionRepo
	questions questionRepo
	generator questiongen.Provider
	tx        txManager
}

// NewService creates a new session service instance.
func NewService(
	logger *slog.Logger,
	sessions sessionRepo,
	questions questionRepo,
	generator questiongen.Provider,
	tx txManager,
) *Service {
	return &Service{
		log:       logger.With("service", "session"),
		sessions:  sessions,
		questions: questions,
		generator: generator,
		tx:        tx,
	}
}
