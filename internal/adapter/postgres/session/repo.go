// Package session implements the Session repository using PostgreSQL.
// Listing uses squirrel to compose the filter; aggregates and writes
// use raw SQL.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/prepstack/interview-backend/internal/adapter/postgres"
	"github.com/prepstack/interview-backend/internal/domain"
)

// Repo provides session persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new session repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var sessionColumns = []string{
	"id", "learner_id", "role", "experience", "topics_to_focus",
	"description", "created_at", "updated_at",
}

const insertSQL = `
INSERT INTO sessions (id, learner_id, role, experience, topics_to_focus, description, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

const getByIDSQL = `
SELECT id, learner_id, role, experience, topics_to_focus, description, created_at, updated_at
FROM sessions
WHERE id = $2 AND learner_id = $1`

const deleteSQL = `DELETE FROM sessions WHERE id = $2 AND learner_id = $1`

// Grouping by the primary key lets the query select the remaining
// session columns without listing them in GROUP BY.
const statsByLearnerSQL = `
SELECT s.id, s.topics_to_focus,
       count(q.id)                               AS total,
       count(q.id) FILTER (WHERE q.is_mastered)  AS mastered
FROM sessions s
LEFT JOIN questions q ON q.session_id = s.id
WHERE s.learner_id = $1
GROUP BY s.id
ORDER BY s.created_at ASC`

const statsBySessionSQL = `
SELECT s.id, s.topics_to_focus,
       count(q.id)                               AS total,
       count(q.id) FILTER (WHERE q.is_mastered)  AS mastered
FROM sessions s
LEFT JOIN questions q ON q.session_id = s.id
WHERE s.learner_id = $1 AND s.id = $2
GROUP BY s.id`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a session by primary key, scoped to its owner.
func (r *Repo) GetByID(ctx context.Context, learnerID, sessionID uuid.UUID) (*domain.Session, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, getByIDSQL, learnerID, sessionID)
	if err != nil {
		return nil, mapError(err, "session", sessionID)
	}

	s, err := pgx.CollectExactlyOneRow(rows, scanSession)
	if err != nil {
		return nil, mapError(err, "session", sessionID)
	}

	return s, nil
}

// List returns the learner's sessions matching the filter plus the
// total count before pagination.
func (r *Repo) List(ctx context.Context, learnerID uuid.UUID, f domain.SessionFilter) ([]*domain.Session, int, error) {
	f = normalizeFilter(f)
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	where := filterPredicate(learnerID, f)

	countSQL, countArgs, err := psql.Select("count(*)").From("sessions").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build session count query: %w", err)
	}

	var total int
	if err := querier.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count sessions: %w", err)
	}

	listSQL, listArgs, err := psql.Select(sessionColumns...).
		From("sessions").
		Where(where).
		OrderBy(f.SortBy+" "+f.SortOrder, "id ASC").
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build session list query: %w", err)
	}

	rows, err := querier.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list sessions: %w", err)
	}

	sessions, err := pgx.CollectRows(rows, scanSession)
	if err != nil {
		return nil, 0, fmt.Errorf("list sessions: %w", err)
	}
	if sessions == nil {
		sessions = []*domain.Session{}
	}

	return sessions, total, nil
}

// filterPredicate builds the WHERE clause shared by List and its count.
func filterPredicate(learnerID uuid.UUID, f domain.SessionFilter) squirrel.And {
	where := squirrel.And{squirrel.Eq{"learner_id": learnerID}}

	if f.Role != nil && *f.Role != "" {
		where = append(where, squirrel.Eq{"role": *f.Role})
	}
	if f.Search != nil && *f.Search != "" {
		pattern := "%" + *f.Search + "%"
		where = append(where, squirrel.Or{
			squirrel.ILike{"role": pattern},
			squirrel.ILike{"description": pattern},
		})
	}

	return where
}

// StatsByLearner returns per-session topic tags and mastery counts for
// every session of the learner, oldest first.
func (r *Repo) StatsByLearner(ctx context.Context, learnerID uuid.UUID) ([]domain.SessionStats, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, statsByLearnerSQL, learnerID)
	if err != nil {
		return nil, fmt.Errorf("session stats by learner: %w", err)
	}

	stats, err := pgx.CollectRows(rows, scanStats)
	if err != nil {
		return nil, fmt.Errorf("session stats by learner: %w", err)
	}
	if stats == nil {
		stats = []domain.SessionStats{}
	}

	return stats, nil
}

// GetStats returns topic tags and mastery counts for one session.
func (r *Repo) GetStats(ctx context.Context, learnerID, sessionID uuid.UUID) (domain.SessionStats, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, statsBySessionSQL, learnerID, sessionID)
	if err != nil {
		return domain.SessionStats{}, mapError(err, "session", sessionID)
	}

	stats, err := pgx.CollectExactlyOneRow(rows, scanStats)
	if err != nil {
		return domain.SessionStats{}, mapError(err, "session", sessionID)
	}

	return stats, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new session and returns it with generated fields
// filled in.
func (r *Repo) Create(ctx context.Context, s *domain.Session) (*domain.Session, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)
	created := *s
	created.ID = uuid.New()
	created.CreatedAt = now
	created.UpdatedAt = now
	if created.TopicsToFocus == nil {
		created.TopicsToFocus = []string{}
	}

	_, err := querier.Exec(ctx, insertSQL,
		created.ID, created.LearnerID, created.Role, created.Experience,
		created.TopicsToFocus, created.Description, created.CreatedAt, created.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err, "session", created.ID)
	}

	return &created, nil
}

// Delete removes a session. Questions and their samples cascade at the
// schema level.
func (r *Repo) Delete(ctx context.Context, learnerID, sessionID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteSQL, learnerID, sessionID)
	if err != nil {
		return mapError(err, "session", sessionID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("session %s: %w", sessionID, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning
// ---------------------------------------------------------------------------

func scanSession(row pgx.CollectableRow) (*domain.Session, error) {
	var s domain.Session
	err := row.Scan(
		&s.ID, &s.LearnerID, &s.Role, &s.Experience, &s.TopicsToFocus,
		&s.Description, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func scanStats(row pgx.CollectableRow) (domain.SessionStats, error) {
	var st domain.SessionStats
	err := row.Scan(&st.SessionID, &st.Topics, &st.TotalQuestions, &st.MasteredQuestions)
	return st, err
}

// ---------------------------------------------------------------------------
// Error mapping
// ---------------------------------------------------------------------------

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
