package progress

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/prepstack/interview-backend/internal/domain"
	"github.com/prepstack/interview-backend/pkg/ctxutil"
)

// SubmitAnswer scores a submitted answer, advances the question through
// the review policy, and appends the performance sample — all in one
// transaction. The schedule update carries an optimistic version check:
// a concurrent submission for the same question loses with
// domain.ErrConflict and must be retried by the caller with fresh state.
func (s *Service) SubmitAnswer(ctx context.Context, input SubmitAnswerInput) (*SubmitAnswerResult, error) {
	learnerID, ok := ctxutil.LearnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	question, err := s.questions.GetByID(ctx, learnerID, input.QuestionID)
	if err != nil {
		return nil, fmt.Errorf("get question: %w", err)
	}

	signals, clamped := NormalizeSignals(input.Signals)
	if clamped {
		s.log.WarnContext(ctx, "answer signals out of range, clamped",
			slog.String("question_id", input.QuestionID.String()),
			slog.Int("confidence", input.Signals.Confidence),
			slog.Int("clarity", input.Signals.Clarity),
			slog.Int("technical_accuracy", input.Signals.TechnicalAccuracy),
			slog.Int("filler_words", input.Signals.FillerWords),
		)
	}

	score := Score(s.weights, signals)
	update := Advance(s.policy, question.ReviewInterval, score, now)

	var updated *domain.Question

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var updateErr error
		updated, updateErr = s.questions.UpdateSchedule(txCtx, question.ID, question.Version, update, &score)
		if updateErr != nil {
			return fmt.Errorf("update schedule: %w", updateErr)
		}

		sample := &domain.PerformanceSample{
			ID:               uuid.New(),
			QuestionID:       question.ID,
			LearnerID:        learnerID,
			ReviewDate:       now,
			PerformanceScore: float64(score) / 100,
		}
		if sampleErr := s.samples.Create(txCtx, sample); sampleErr != nil {
			return fmt.Errorf("append performance sample: %w", sampleErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "answer scored",
		slog.String("learner_id", learnerID.String()),
		slog.String("question_id", question.ID.String()),
		slog.Int("score", score),
		slog.Bool("mastered", update.IsMastered),
		slog.Int("interval_days", update.Interval),
	)

	return &SubmitAnswerResult{Score: score, Question: updated}, nil
}

// ToggleMastery marks a question mastered or unmastered by hand. It is
// not a boolean flip: the change routes through the same review policy as
// scored answers, so manual toggles keep the interval and due date
// consistent with the scheduling invariants. No performance sample is
// recorded — there was no answer to sample.
func (s *Service) ToggleMastery(ctx context.Context, input ToggleMasteryInput) (*domain.Question, error) {
	learnerID, ok := ctxutil.LearnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	question, err := s.questions.GetByID(ctx, learnerID, input.QuestionID)
	if err != nil {
		return nil, fmt.Errorf("get question: %w", err)
	}

	// Synthesize a boundary score: exactly at the threshold to pass,
	// zero to fail. The policy does the rest.
	score := 0
	if input.Mastered {
		score = s.policy.MasteryThreshold
	}

	update := Advance(s.policy, question.ReviewInterval, score, time.Now().UTC())

	updated, err := s.questions.UpdateSchedule(ctx, question.ID, question.Version, update, nil)
	if err != nil {
		return nil, fmt.Errorf("update schedule: %w", err)
	}

	s.log.InfoContext(ctx, "mastery toggled",
		slog.String("learner_id", learnerID.String()),
		slog.String("question_id", question.ID.String()),
		slog.Bool("mastered", update.IsMastered),
	)

	return updated, nil
}
