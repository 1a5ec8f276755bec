package progress

import (
	"math"
	"strings"

	"github.com/prepstack/interview-backend/internal/domain"
)

// BuildRoadmap projects a role's phase catalogue onto a learner's
// sessions: per-phase completion, lifecycle status, remaining-time
// estimate, and overall progress. Pure function — recomputing it on
// unchanged input yields identical output.
//
// Status derivation is a single forward pass in catalogue order: each
// phase's lock state depends only on the previous phase's completion.
func BuildRoadmap(role string, catalogue []domain.Phase, sessions []domain.SessionStats, unlockThreshold int) domain.Roadmap {
	views := make([]domain.PhaseView, 0, len(catalogue))

	for _, phase := range catalogue {
		view := domain.PhaseView{Phase: phase}

		for _, s := range sessions {
			if !topicsMatch(phase.Topics, s.Topics) {
				continue
			}
			view.SessionsCount++
			view.TotalQuestions += s.TotalQuestions
			view.MasteredQuestions += s.MasteredQuestions
		}

		view.CompletionPercentage = domain.Completion(view.MasteredQuestions, view.TotalQuestions)
		views = append(views, view)
	}

	prevCompletion := 0
	for i := range views {
		views[i].Status = phaseStatus(i == 0, prevCompletion, views[i].CompletionPercentage, unlockThreshold)
		prevCompletion = views[i].CompletionPercentage
	}

	return domain.Roadmap{
		Role:                    role,
		Phases:                  views,
		OverallProgress:         overallProgress(views),
		EstimatedCompletionDays: estimateRemainingDays(views),
	}
}

// phaseStatus derives one phase's lifecycle state.
//
// A phase that reaches 100% is completed regardless of lock state: a
// learner who jumps ahead and finishes out of order is not penalized.
func phaseStatus(first bool, prevCompletion, completion, unlockThreshold int) domain.PhaseStatus {
	if completion == 100 {
		return domain.PhaseStatusCompleted
	}

	unlocked := first || prevCompletion >= unlockThreshold
	if !unlocked {
		return domain.PhaseStatusLocked
	}
	if completion > 0 {
		return domain.PhaseStatusInProgress
	}
	return domain.PhaseStatusAvailable
}

// topicsMatch reports whether any session topic intersects any phase
// topic. The comparison is a case-insensitive bidirectional substring
// check: "system design" matches "design". Free-text session topics
// against a fixed tag list make fuzzy matching inherently approximate;
// false positives and negatives are an accepted trade-off of the
// matching rule, not a bug in it.
func topicsMatch(phaseTopics, sessionTopics []string) bool {
	for _, pt := range phaseTopics {
		pt = strings.ToLower(strings.TrimSpace(pt))
		if pt == "" {
			continue
		}
		for _, st := range sessionTopics {
			st = strings.ToLower(strings.TrimSpace(st))
			if st == "" {
				continue
			}
			if strings.Contains(pt, st) || strings.Contains(st, pt) {
				return true
			}
		}
	}
	return false
}

// overallProgress is the rounded mean of all phase completion percentages.
func overallProgress(views []domain.PhaseView) int {
	if len(views) == 0 {
		return 0
	}
	sum := 0
	for _, v := range views {
		sum += v.CompletionPercentage
	}
	return int(math.Round(float64(sum) / float64(len(views))))
}

// estimateRemainingDays sums each incomplete phase's estimated days
// scaled by how much of it remains, rounded up to whole days.
func estimateRemainingDays(views []domain.PhaseView) int {
	remaining := 0.0
	for _, v := range views {
		if v.CompletionPercentage >= 100 {
			continue
		}
		remaining += float64(v.EstimatedDays) * float64(100-v.CompletionPercentage) / 100
	}
	return int(math.Ceil(remaining))
}
