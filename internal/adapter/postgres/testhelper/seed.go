package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/prepstack/interview-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating
// non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedLearner creates a user row. Returns a filled domain.User.
func SeedLearner(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	u := domain.User{
		ID:           uuid.New(),
		Email:        "learner-" + suffix + "@example.com",
		Name:         "Learner " + suffix,
		PasswordHash: "$2a$10$" + suffix, // not a real hash; repos never verify it
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, name, password_hash, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		u.ID, u.Email, u.Name, u.PasswordHash, u.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedLearner insert user: %v", err)
	}

	return u
}

// SeedSession creates a session for the learner with the given topics.
// Returns a filled domain.Session.
func SeedSession(t *testing.T, pool *pgxpool.Pool, learnerID uuid.UUID, topics []string) domain.Session {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	if topics == nil {
		topics = []string{}
	}
	s := domain.Session{
		ID:            uuid.New(),
		LearnerID:     learnerID,
		Role:          "backend engineer",
		Experience:    "mid",
		TopicsToFocus: topics,
		Description:   "seed session " + suffix,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO sessions (id, learner_id, role, experience, topics_to_focus, description, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		s.ID, s.LearnerID, s.Role, s.Experience, s.TopicsToFocus, s.Description, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSession insert session: %v", err)
	}

	return s
}

// SeedQuestion creates a freshly generated question in the session:
// unmastered, interval 1, due immediately, version 1.
func SeedQuestion(t *testing.T, pool *pgxpool.Pool, sessionID uuid.UUID) domain.Question {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	return seedQuestionState(t, pool, sessionID, false, 1, now, nil)
}

// SeedQuestionDue creates a question with explicit schedule state, for
// review-queue and conflict tests.
func SeedQuestionDue(t *testing.T, pool *pgxpool.Pool, sessionID uuid.UUID, mastered bool, interval int, dueDate time.Time) domain.Question {
	t.Helper()

	return seedQuestionState(t, pool, sessionID, mastered, interval, dueDate, nil)
}

func seedQuestionState(t *testing.T, pool *pgxpool.Pool, sessionID uuid.UUID, mastered bool, interval int, dueDate time.Time, lastScore *int) domain.Question {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	q := domain.Question{
		ID:             uuid.New(),
		SessionID:      sessionID,
		Prompt:         "Explain " + suffix,
		Answer:         "Reference answer " + suffix,
		Note:           "",
		IsMastered:     mastered,
		ReviewInterval: interval,
		DueDate:        dueDate.UTC().Truncate(time.Microsecond),
		LastScore:      lastScore,
		Version:        1,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO questions (id, session_id, prompt, answer, note, is_pinned,
		                        is_mastered, review_interval, due_date, last_score,
		                        version, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		q.ID, q.SessionID, q.Prompt, q.Answer, q.Note, q.IsPinned,
		q.IsMastered, q.ReviewInterval, q.DueDate, q.LastScore,
		q.Version, q.CreatedAt, q.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedQuestion insert question: %v", err)
	}

	return q
}

// SeedSample creates a performance sample for the question.
func SeedSample(t *testing.T, pool *pgxpool.Pool, questionID, learnerID uuid.UUID, reviewDate time.Time, score float64) domain.PerformanceSample {
	t.Helper()
	ctx := context.Background()

	s := domain.PerformanceSample{
		ID:               uuid.New(),
		QuestionID:       questionID,
		LearnerID:        learnerID,
		ReviewDate:       reviewDate.UTC().Truncate(time.Microsecond),
		PerformanceScore: score,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO performance_samples (id, question_id, learner_id, review_date, performance_score)
		 VALUES ($1, $2, $3, $4, $5)`,
		s.ID, s.QuestionID, s.LearnerID, s.ReviewDate, s.PerformanceScore,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSample insert sample: %v", err)
	}

	return s
}
