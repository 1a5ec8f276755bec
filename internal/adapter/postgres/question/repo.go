// Package question implements the Question repository using PostgreSQL.
// Ownership checks join through sessions: a question is visible only to
// the learner who owns its session.
package question

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

// Repo provides question persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new question repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const questionColumns = `q.id, q.session_id, q.prompt, q.answer, q.note, q.is_pinned,
       q.is_mastered, q.review_interval, q.due_date, q.last_score,
       q.version, q.created_at, q.updated_at`

const getByIDSQL = `
SELECT ` + questionColumns + `
FROM questions q
JOIN sessions s ON q.session_id = s.id
WHERE q.id = $2 AND s.learner_id = $1`

const listBySessionSQL = `
SELECT ` + questionColumns + `
FROM questions q
JOIN sessions s ON q.session_id = s.id
WHERE q.session_id = $2 AND s.learner_id = $1
ORDER BY q.created_at ASC, q.id ASC`

// Due questions are ordered deterministically: most overdue first, ties
// broken by session age and then question age.
const listDueSQL = `
SELECT ` + questionColumns + `
FROM questions q
JOIN sessions s ON q.session_id = s.id
WHERE s.learner_id = $1 AND q.due_date <= $2
ORDER BY q.due_date ASC, s.created_at ASC, q.created_at ASC`

const countDueSQL = `
SELECT count(*)
FROM questions q
JOIN sessions s ON q.session_id = s.id
WHERE s.learner_id = $1 AND q.due_date <= $2`

const masteryCountsSQL = `
SELECT count(*) FILTER (WHERE q.is_mastered)     AS mastered,
       count(*) FILTER (WHERE NOT q.is_mastered) AS unmastered
FROM questions q
JOIN sessions s ON q.session_id = s.id
WHERE s.learner_id = $1`

const insertSQL = `
INSERT INTO questions (id, session_id, prompt, answer, note, is_pinned,
                       is_mastered, review_interval, due_date, last_score,
                       version, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

// updateScheduleSQL is the optimistic-concurrency write: it only matches
// when the caller's version is still current, and bumps the version so
// any concurrent writer holding the old one loses.
const updateScheduleSQL = `
UPDATE questions q
SET is_mastered     = $3,
    review_interval = $4,
    due_date        = $5,
    last_score      = COALESCE($6, q.last_score),
    version         = q.version + 1,
    updated_at      = $7
WHERE q.id = $1 AND q.version = $2
RETURNING ` + questionColumns

const setPinnedSQL = `
UPDATE questions q
SET is_pinned = $3, updated_at = $4
FROM sessions s
WHERE q.id = $2 AND q.session_id = s.id AND s.learner_id = $1`

const setNoteSQL = `
UPDATE questions q
SET note = $3, updated_at = $4
FROM sessions s
WHERE q.id = $2 AND q.session_id = s.id AND s.learner_id = $1`

const deleteSQL = `
DELETE FROM questions q
USING sessions s
WHERE q.id = $2 AND q.session_id = s.id AND s.learner_id = $1`

const existsSQL = `SELECT 1 FROM questions WHERE id = $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a question by primary key, scoped to the learner who
// owns its session.
func (r *Repo) GetByID(ctx context.Context, learnerID, questionID uuid.UUID) (*domain.Question, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, getByIDSQL, learnerID, questionID)
	if err != nil {
		return nil, mapError(err, "question", questionID)
	}

	q, err := pgx.CollectExactlyOneRow(rows, scanQuestion)
	if err != nil {
		return nil, mapError(err, "question", questionID)
	}

	return q, nil
}

// ListBySession returns all questions of a session in creation order,
// scoped to the owning learner.
func (r *Repo) ListBySession(ctx context.Context, learnerID, sessionID uuid.UUID) ([]*domain.Question, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listBySessionSQL, learnerID, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list questions by session: %w", err)
	}

	questions, err := pgx.CollectRows(rows, scanQuestion)
	if err != nil {
		return nil, fmt.Errorf("list questions by session: %w", err)
	}
	if questions == nil {
		questions = []*domain.Question{}
	}

	return questions, nil
}

// ListDue returns every question of the learner whose due date has
// arrived, most overdue first.
func (r *Repo) ListDue(ctx context.Context, learnerID uuid.UUID, now time.Time) ([]*domain.Question, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listDueSQL, learnerID, now)
	if err != nil {
		return nil, fmt.Errorf("list due questions: %w", err)
	}

	questions, err := pgx.CollectRows(rows, scanQuestion)
	if err != nil {
		return nil, fmt.Errorf("list due questions: %w", err)
	}
	if questions == nil {
		questions = []*domain.Question{}
	}

	return questions, nil
}

// CountDue returns the number of questions due at the given time.
func (r *Repo) CountDue(ctx context.Context, learnerID uuid.UUID, now time.Time) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, countDueSQL, learnerID, now).Scan(&count); err != nil {
		return 0, fmt.Errorf("count due questions: %w", err)
	}

	return count, nil
}

// MasteryCounts returns mastered/unmastered totals across all of the
// learner's questions, computed entirely in SQL.
func (r *Repo) MasteryCounts(ctx context.Context, learnerID uuid.UUID) (domain.MasteryRatio, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var ratio domain.MasteryRatio
	err := querier.QueryRow(ctx, masteryCountsSQL, learnerID).Scan(&ratio.Mastered, &ratio.Unmastered)
	if err != nil {
		return domain.MasteryRatio{}, fmt.Errorf("mastery counts: %w", err)
	}

	return ratio, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a single question and returns it with generated fields
// filled in.
func (r *Repo) Create(ctx context.Context, q *domain.Question) (*domain.Question, error) {
	created, err := r.CreateBatch(ctx, []*domain.Question{q})
	if err != nil {
		return nil, err
	}
	return created[0], nil
}

// CreateBatch inserts questions in one round trip using a pgx batch.
// IDs, versions, intervals and timestamps are assigned here so callers
// only provide content fields and the session ID.
func (r *Repo) CreateBatch(ctx context.Context, questions []*domain.Question) ([]*domain.Question, error) {
	if len(questions) == 0 {
		return []*domain.Question{}, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	now := time.Now().UTC().Truncate(time.Microsecond)

	created := make([]*domain.Question, len(questions))
	batch := &pgx.Batch{}
	for i, q := range questions {
		c := *q
		c.ID = uuid.New()
		c.IsMastered = false
		c.ReviewInterval = 1
		c.DueDate = now
		c.LastScore = nil
		c.Version = 1
		c.CreatedAt = now
		c.UpdatedAt = now

		batch.Queue(insertSQL,
			c.ID, c.SessionID, c.Prompt, c.Answer, c.Note, c.IsPinned,
			c.IsMastered, c.ReviewInterval, c.DueDate, c.LastScore,
			c.Version, c.CreatedAt, c.UpdatedAt,
		)
		created[i] = &c
	}

	results := querier.SendBatch(ctx, batch)
	defer results.Close()

	for i := range questions {
		if _, err := results.Exec(); err != nil {
			return nil, mapError(err, "question", created[i].ID)
		}
	}

	return created, nil
}

// UpdateSchedule persists a schedule update only if the caller still
// holds the current version. Returns domain.ErrConflict when another
// writer got there first, domain.ErrNotFound when the question is gone.
func (r *Repo) UpdateSchedule(ctx context.Context, questionID uuid.UUID, version int, upd domain.ScheduleUpdate, lastScore *int) (*domain.Question, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)
	now := time.Now().UTC().Truncate(time.Microsecond)

	rows, err := querier.Query(ctx, updateScheduleSQL,
		questionID, version,
		upd.IsMastered, upd.Interval, upd.DueDate, lastScore, now,
	)
	if err != nil {
		return nil, mapError(err, "question", questionID)
	}

	q, err := pgx.CollectExactlyOneRow(rows, scanQuestion)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.classifyScheduleMiss(ctx, questionID)
		}
		return nil, mapError(err, "question", questionID)
	}

	return q, nil
}

// classifyScheduleMiss distinguishes a stale version from a deleted
// question after an UpdateSchedule matched zero rows.
func (r *Repo) classifyScheduleMiss(ctx context.Context, questionID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var one int
	err := querier.QueryRow(ctx, existsSQL, questionID).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("question %s: %w", questionID, domain.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("question %s: %w", questionID, err)
	}

	return fmt.Errorf("question %s: concurrent schedule update: %w", questionID, domain.ErrConflict)
}

// SetPinned toggles the pin flag. Returns domain.ErrNotFound when the
// question does not exist or belongs to another learner.
func (r *Repo) SetPinned(ctx context.Context, learnerID, questionID uuid.UUID, pinned bool) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)
	now := time.Now().UTC().Truncate(time.Microsecond)

	tag, err := querier.Exec(ctx, setPinnedSQL, learnerID, questionID, pinned, now)
	if err != nil {
		return mapError(err, "question", questionID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("question %s: %w", questionID, domain.ErrNotFound)
	}

	return nil
}

// SetNote replaces the free-form note on a question.
func (r *Repo) SetNote(ctx context.Context, learnerID, questionID uuid.UUID, note string) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)
	now := time.Now().UTC().Truncate(time.Microsecond)

	tag, err := querier.Exec(ctx, setNoteSQL, learnerID, questionID, note, now)
	if err != nil {
		return mapError(err, "question", questionID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("question %s: %w", questionID, domain.ErrNotFound)
	}

	return nil
}

// Delete removes a question. Performance samples cascade at the schema
// level.
func (r *Repo) Delete(ctx context.Context, learnerID, questionID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteSQL, learnerID, questionID)
	if err != nil {
		return mapError(err, "question", questionID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("question %s: %w", questionID, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning
// ---------------------------------------------------------------------------

func scanQuestion(row pgx.CollectableRow) (*domain.Question, error) {
	var q domain.Question
	err := row.Scan(
		&q.ID, &q.SessionID, &q.Prompt, &q.Answer, &q.Note, &q.IsPinned,
		&q.IsMastered, &q.ReviewInterval, &q.DueDate, &q.LastScore,
		&q.Version, &q.CreatedAt, &q.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &q, nil
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
