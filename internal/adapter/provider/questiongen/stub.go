// Package questiongen defines the question generation provider contract
// and a deterministic stub implementation.
package questiongen

import (
	"context"
	"fmt"

	"github.com/prepstack/interview-backend/internal/domain"
)

// Request describes the session a question set is generated for.
type Request struct {
	Role       string
	Experience string
	Topics     []string
	Count      int
}

// Draft is one generated question before persistence.
type Draft struct {
	Prompt string
	Answer string
}

// Provider generates interview questions for a new session. An AI
// backed implementation plugs in here; the engine never sees the
// difference.
type Provider interface {
	Generate(ctx context.Context, req Request) ([]Draft, error)
}

var _ Provider = &Stub{}

// Stub is a deterministic question provider used until an AI backend is
// wired in. It cycles templated prompts over the requested topics, so
// the same request always yields the same set.
type Stub struct{}

// NewStub creates a new deterministic question provider.
func NewStub() *Stub { return &Stub{} }

var promptTemplates = []string{
	"Explain the fundamentals of %s to a %s %s.",
	"What trade-offs matter most when working with %s as a %s %s?",
	"Describe a production issue involving %s and how a %s %s would debug it.",
	"How would you design a system where %s is the main constraint, at a %s %s level?",
}

// Generate returns req.Count drafts cycling over topics and templates.
// With no topics it falls back to the role itself as the subject.
func (s *Stub) Generate(_ context.Context, req Request) ([]Draft, error) {
	if req.Count <= 0 {
		return []Draft{}, nil
	}
	if req.Role == "" {
		return nil, domain.NewValidationError("role", "role is required")
	}

	topics := req.Topics
	if len(topics) == 0 {
		topics = []string{req.Role}
	}

	drafts := make([]Draft, 0, req.Count)
	for i := 0; i < req.Count; i++ {
		topic := topics[i%len(topics)]
		template := promptTemplates[i%len(promptTemplates)]
		drafts = append(drafts, Draft{
			Prompt: fmt.Sprintf(template, topic, req.Experience, req.Role),
			Answer: "",
		})
	}

	return drafts, nil
}
