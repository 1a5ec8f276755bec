package progress

import (
	"github.com/google/uuid"

	"github.com/prepstack/interview-backend/internal/domain"
)

// SubmitAnswerInput carries one submitted answer's evaluation signals.
type SubmitAnswerInput struct {
	QuestionID uuid.UUID
	Signals    domain.AnswerSignals
}

// Validate checks structural requirements. Out-of-range signals are NOT
// rejected here — the scorer clamps them by design.
func (in SubmitAnswerInput) Validate() error {
	if in.QuestionID == uuid.Nil {
		return domain.NewValidationError("questionId", "is required")
	}
	return nil
}

// ToggleMasteryInput marks a question mastered or unmastered by hand.
type ToggleMasteryInput struct {
	QuestionID uuid.UUID
	Mastered   bool
}

// Validate checks structural requirements.
func (in ToggleMasteryInput) Validate() error {
	if in.QuestionID == uuid.Nil {
		return domain.NewValidationError("questionId", "is required")
	}
	return nil
}

// SubmitAnswerResult is what a scored submission produces: the final
// mastery score and the question's updated schedule.
type SubmitAnswerResult struct {
	Score    int
	Question *domain.Question
}
