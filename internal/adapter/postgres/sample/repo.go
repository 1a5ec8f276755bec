// Package sample implements the PerformanceSample repository using
// PostgreSQL. Samples are append-only history; there is no update path.
package sample

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/prepstack/interview-backend/internal/adapter/postgres"
	"github.com/prepstack/interview-backend/internal/domain"
)

// Repo provides performance sample persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new sample repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const insertSQL = `
INSERT INTO performance_samples (id, question_id, learner_id, review_date, performance_score)
VALUES ($1, $2, $3, $4, $5)`

const listByLearnerSQL = `
SELECT id, question_id, learner_id, review_date, performance_score
FROM performance_samples
WHERE learner_id = $1
ORDER BY review_date ASC, id ASC`

const listByQuestionSQL = `
SELECT id, question_id, learner_id, review_date, performance_score
FROM performance_samples
WHERE question_id = $1
ORDER BY review_date ASC, id ASC`

// Create appends a new sample. The ID is assigned here when the caller
// left it zero.
func (r *Repo) Create(ctx context.Context, s *domain.PerformanceSample) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.ReviewDate.IsZero() {
		s.ReviewDate = time.Now().UTC().Truncate(time.Microsecond)
	}

	_, err := querier.Exec(ctx, insertSQL,
		s.ID, s.QuestionID, s.LearnerID, s.ReviewDate, s.PerformanceScore,
	)
	if err != nil {
		return mapError(err, "performance_sample", s.ID)
	}

	return nil
}

// ListByLearner returns the learner's full review history in
// chronological order.
func (r *Repo) ListByLearner(ctx context.Context, learnerID uuid.UUID) ([]domain.PerformanceSample, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByLearnerSQL, learnerID)
	if err != nil {
		return nil, fmt.Errorf("list samples by learner: %w", err)
	}

	samples, err := pgx.CollectRows(rows, scanSample)
	if err != nil {
		return nil, fmt.Errorf("list samples by learner: %w", err)
	}
	if samples == nil {
		samples = []domain.PerformanceSample{}
	}

	return samples, nil
}

// ListByQuestion returns the review history of a single question in
// chronological order.
func (r *Repo) ListByQuestion(ctx context.Context, questionID uuid.UUID) ([]domain.PerformanceSample, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByQuestionSQL, questionID)
	if err != nil {
		return nil, fmt.Errorf("list samples by question: %w", err)
	}

	samples, err := pgx.CollectRows(rows, scanSample)
	if err != nil {
		return nil, fmt.Errorf("list samples by question: %w", err)
	}
	if samples == nil {
		samples = []domain.PerformanceSample{}
	}

	return samples, nil
}

func scanSample(row pgx.CollectableRow) (domain.PerformanceSample, error) {
	var s domain.PerformanceSample
	err := row.Scan(&s.ID, &s.QuestionID, &s.LearnerID, &s.ReviewDate, &s.PerformanceScore)
	return s, err
}

// mapError converts pgx/pgconn errors into domain errors.
func mapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrValidation)
		}
	}

	return fmt.Errorf("%s %s: %w", entity, id, err)
}
