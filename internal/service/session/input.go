package session

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/prepstack/interview-backend/internal/domain"
)

const (
	defaultQuestionCount = 10
	maxQuestionCount     = 50
	maxTopics            = 20
)

// CreateInput holds parameters for creating a session.
type CreateInput struct {
	Role          string
	Experience    string
	TopicsToFocus []string
	Description   string

	// QuestionCount is how many questions to generate. 0 means the
	// default; the count is capped.
	QuestionCount int
}

// Validate validates and normalizes the create input.
func (i *CreateInput) Validate() error {
	var errs []domain.FieldError

	i.Role = strings.TrimSpace(i.Role)
	i.Experience = strings.TrimSpace(i.Experience)

	if i.Role == "" {
		errs = append(errs, domain.FieldError{Field: "role", Message: "required"})
	}
	if i.Experience == "" {
		errs = append(errs, domain.FieldError{Field: "experience", Message: "required"})
	}
	if len(i.TopicsToFocus) > maxTopics {
		errs = append(errs, domain.FieldError{Field: "topicsToFocus", Message: "too many topics"})
	}

	cleaned := make([]string, 0, len(i.TopicsToFocus))
	for _, topic := range i.TopicsToFocus {
		if t := strings.TrimSpace(topic); t != "" {
			cleaned = append(cleaned, t)
		}
	}
	i.TopicsToFocus = cleaned

	if i.QuestionCount < 0 {
		errs = append(errs, domain.FieldError{Field: "questionCount", Message: "must not be negative"})
	}
	if i.QuestionCount == 0 {
		i.QuestionCount = defaultQuestionCount
	}
	if i.QuestionCount > maxQuestionCount {
		i.QuestionCount = maxQuestionCount
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// QuestionInput is one question supplied by the client for AddQuestions.
type QuestionInput struct {
	Prompt string
	Answer string
}

// AddQuestionsInput holds parameters for appending questions to a session.
type AddQuestionsInput struct {
	SessionID uuid.UUID
	Questions []QuestionInput
}

// Validate validates the add-questions input.
func (i AddQuestionsInput) Validate() error {
	var errs []domain.FieldError

	if i.SessionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "sessionId", Message: "required"})
	}
	if len(i.Questions) == 0 {
		errs = append(errs, domain.FieldError{Field: "questions", Message: "at least one question is required"})
	}
	for idx, q := range i.Questions {
		if strings.TrimSpace(q.Prompt) == "" {
			errs = append(errs, domain.FieldError{Field: "questions", Message: "empty prompt at index " + strconv.Itoa(idx)})
			break
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
