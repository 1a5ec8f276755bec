package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/prepstack/interview-backend/internal/domain"
	"github.com/prepstack/interview-backend/internal/service/progress"
)

// progressService defines the minimal interface needed by ProgressHandler.
type progressService interface {
	SubmitAnswer(ctx context.Context, input progress.SubmitAnswerInput) (*progress.SubmitAnswerResult, error)
	ToggleMastery(ctx context.Context, input progress.ToggleMasteryInput) (*domain.Question, error)
	GetReviewQueue(ctx context.Context) ([]*domain.Question, error)
	GetRoadmap(ctx context.Context, role string) (*domain.Roadmap, error)
	GetDashboard(ctx context.Context) (*domain.Dashboard, error)
}

// ProgressHandler serves the progress-engine REST endpoints: answer
// scoring, the review queue, the roadmap, and the dashboard.
type ProgressHandler struct {
	svc progressService
	log *slog.Logger
}

// NewProgressHandler creates a ProgressHandler.
func NewProgressHandler(svc progressService, logger *slog.Logger) *ProgressHandler {
	return &ProgressHandler{svc: svc, log: logger.With("handler", "progress")}
}

type submitAnswerRequest struct {
	Confidence        int `json:"confidence"`
	Clarity           int `json:"clarity"`
	TechnicalAccuracy int `json:"technicalAccuracy"`
	FillerWords       int `json:"fillerWords"`
}

type submitAnswerResponse struct {
	Score    int              `json:"score"`
	Question questionResponse `json:"question"`
}

type masteryRequest struct {
	Mastered bool `json:"mastered"`
}

type reviewQueueResponse struct {
	Questions []questionResponse `json:"questions"`
	Count     int                `json:"count"`
}

type phaseResponse struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name"`
	Ordinal              int      `json:"ordinal"`
	Topics               []string `json:"topics"`
	EstimatedDays        int      `json:"estimatedDays"`
	SessionsCount        int      `json:"sessionsCount"`
	TotalQuestions       int      `json:"totalQuestions"`
	MasteredQuestions    int      `json:"masteredQuestions"`
	CompletionPercentage int      `json:"completionPercentage"`
	Status               string   `json:"status"`
}

type roadmapResponse struct {
	Role                    string          `json:"role"`
	Phases                  []phaseResponse `json:"phases"`
	OverallProgress         int             `json:"overallProgress"`
	EstimatedCompletionDays int             `json:"estimatedCompletionDays"`
}

type dayActivityResponse struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type weekAccuracyResponse struct {
	Year     int `json:"year"`
	Week     int `json:"week"`
	Accuracy int `json:"accuracy"`
}

type masteryRatioResponse struct {
	Mastered   int `json:"mastered"`
	Unmastered int `json:"unmastered"`
}

type dashboardResponse struct {
	DueCount      int                    `json:"dueCount"`
	DailyActivity []dayActivityResponse  `json:"dailyActivity"`
	WeeklyTrend   []weekAccuracyResponse `json:"weeklyTrend"`
	Mastery       masteryRatioResponse   `json:"mastery"`
}

// SubmitAnswer handles POST /questions/{id}/answers.
func (h *ProgressHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req submitAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.SubmitAnswer(r.Context(), progress.SubmitAnswerInput{
		QuestionID: id,
		Signals: domain.AnswerSignals{
			Confidence:        req.Confidence,
			Clarity:           req.Clarity,
			TechnicalAccuracy: req.TechnicalAccuracy,
			FillerWords:       req.FillerWords,
		},
	})
	if err != nil {
		handleDomainError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, submitAnswerResponse{
		Score:    result.Score,
		Question: toQuestionResponse(result.Question),
	})
}

// ToggleMastery handles PATCH /questions/{id}/mastery.
func (h *ProgressHandler) ToggleMastery(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req masteryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.ToggleMastery(r.Context(), progress.ToggleMasteryInput{
		QuestionID: id,
		Mastered:   req.Mastered,
	})
	if err != nil {
		handleDomainError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toQuestionResponse(updated))
}

// ReviewQueue handles GET /progress/review-queue.
func (h *ProgressHandler) ReviewQueue(w http.ResponseWriter, r *http.Request) {
	due, err := h.svc.GetReviewQueue(r.Context())
	if err != nil {
		handleDomainError(r.Context(), h.log, w, err)
		return
	}

	resp := reviewQueueResponse{
		Questions: make([]questionResponse, len(due)),
		Count:     len(due),
	}
	for i, q := range due {
		resp.Questions[i] = toQuestionResponse(q)
	}

	writeJSON(w, http.StatusOK, resp)
}

// Roadmap handles GET /progress/roadmap.
func (h *ProgressHandler) Roadmap(w http.ResponseWriter, r *http.Request) {
	role := r.URL.Query().Get("role")
	if role == "" {
		writeError(w, http.StatusBadRequest, "role query parameter is required")
		return
	}

	roadmap, err := h.svc.GetRoadmap(r.Context(), role)
	if err != nil {
		handleDomainError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toRoadmapResponse(roadmap))
}

// Dashboard handles GET /progress/dashboard.
func (h *ProgressHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.svc.GetDashboard(r.Context())
	if err != nil {
		handleDomainError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toDashboardResponse(dashboard))
}

func toRoadmapResponse(rm *domain.Roadmap) roadmapResponse {
	resp := roadmapResponse{
		Role:                    rm.Role,
		Phases:                  make([]phaseResponse, len(rm.Phases)),
		OverallProgress:         rm.OverallProgress,
		EstimatedCompletionDays: rm.EstimatedCompletionDays,
	}
	for i, p := range rm.Phases {
		resp.Phases[i] = phaseResponse{
			ID:                   p.ID,
			Name:                 p.Name,
			Ordinal:              p.Ordinal,
			Topics:               p.Topics,
			EstimatedDays:        p.EstimatedDays,
			SessionsCount:        p.SessionsCount,
			TotalQuestions:       p.TotalQuestions,
			MasteredQuestions:    p.MasteredQuestions,
			CompletionPercentage: p.CompletionPercentage,
			Status:               string(p.Status),
		}
	}
	return resp
}

func toDashboardResponse(d *domain.Dashboard) dashboardResponse {
	resp := dashboardResponse{
		DueCount:      d.DueCount,
		DailyActivity: make([]dayActivityResponse, len(d.DailyActivity)),
		WeeklyTrend:   make([]weekAccuracyResponse, len(d.WeeklyTrend)),
		Mastery: masteryRatioResponse{
			Mastered:   d.Mastery.Mastered,
			Unmastered: d.Mastery.Unmastered,
		},
	}
	for i, day := range d.DailyActivity {
		resp.DailyActivity[i] = dayActivityResponse{
			Date:  day.Date.Format(time.DateOnly),
			Count: day.Count,
		}
	}
	for i, week := range d.WeeklyTrend {
		resp.WeeklyTrend[i] = weekAccuracyResponse{
			Year:     week.Year,
			Week:     week.Week,
			Accuracy: week.Accuracy,
		}
	}
	return resp
}
