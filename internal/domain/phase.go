package domain

// PhaseStatus is the lifecycle state of a curriculum phase for one learner.
type PhaseStatus string

const (
	PhaseStatusLocked     PhaseStatus = "LOCKED"
	PhaseStatusAvailable  PhaseStatus = "AVAILABLE"
	PhaseStatusInProgress PhaseStatus = "IN_PROGRESS"
	PhaseStatusCompleted  PhaseStatus = "COMPLETED"
)

// Phase is one ordered stage of a role-specific curriculum. Phases are not
// persisted: they come from the injected role catalogue.
type Phase struct {
	ID            string
	Name          string
	Ordinal       int
	Topics        []string
	EstimatedDays int
}

// PhaseView is a Phase projected onto one learner's sessions: completion
// and lifecycle status derived at read time.
type PhaseView struct {
	Phase
	SessionsCount        int
	TotalQuestions       int
	MasteredQuestions    int
	CompletionPercentage int
	Status               PhaseStatus
}

// Roadmap is the full derived curriculum state for one learner and role.
type Roadmap struct {
	Role                    string
	Phases                  []PhaseView
	OverallProgress         int
	EstimatedCompletionDays int
}
