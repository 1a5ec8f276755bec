package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/prepstack/interview-backend/internal/domain"
	"github.com/prepstack/interview-backend/internal/service/session"
)

// sessionService defines the minimal interface needed by SessionHandler.
type sessionService interface {
	Create(ctx context.Context, input session.CreateInput) (*session.SessionDetail, error)
	Get(ctx context.Context, sessionID uuid.UUID) (*session.SessionDetail, error)
	GetProgress(ctx context.Context, sessionID uuid.UUID) (domain.SessionProgress, error)
	ListMine(ctx context.Context, filter domain.SessionFilter) (*session.ListResult, error)
	Delete(ctx context.Context, sessionID uuid.UUID) error
	AddQuestions(ctx context.Context, input session.AddQuestionsInput) ([]*domain.Question, error)
	TogglePin(ctx context.Context, questionID uuid.UUID, pinned bool) error
	UpdateNote(ctx context.Context, questionID uuid.UUID, note string) error
	DeleteQuestion(ctx context.Context, questionID uuid.UUID) error
}

// SessionHandler serves session and question-curation REST endpoints.
type SessionHandler struct {
	svc sessionService
	log *slog.Logger
}

// NewSessionHandler creates a SessionHandler.
func NewSessionHandler(svc sessionService, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{svc: svc, log: logger.With("handler", "session")}
}

type createSessionRequest struct {
	Role          string   `json:"role"`
	Experience    string   `json:"experience"`
	TopicsToFocus []string `json:"topicsToFocus"`
	Description   string   `json:"description"`
	QuestionCount int      `json:"questionCount"`
}

type addQuestionsRequest struct {
	Questions []questionRequest `json:"questions"`
}

type questionRequest struct {
	Prompt string `json:"prompt"`
	Answer string `json:"answer"`
}

type pinRequest struct {
	Pinned bool `json:"pinned"`
}

type noteRequest struct {
	Note string `json:"note"`
}

type sessionResponse struct {
	ID            string    `json:"id"`
	Role          string    `json:"role"`
	Experience    string    `json:"experience"`
	TopicsToFocus []string  `json:"topicsToFocus"`
	Description   string    `json:"description,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type questionResponse struct {
	ID             string    `json:"id"`
	SessionID      string    `json:"sessionId"`
	Prompt         string    `json:"prompt"`
	Answer         string    `json:"answer"`
	Note           string    `json:"note,omitempty"`
	IsPinned       bool      `json:"isPinned"`
	IsMastered     bool      `json:"isMastered"`
	ReviewInterval int       `json:"reviewInterval"`
	DueDate        time.Time `json:"dueDate"`
	LastScore      *int      `json:"lastScore"`
	CreatedAt      time.Time `json:"createdAt"`
}

type progressResponse struct {
	TotalQuestions       int `json:"totalQuestions"`
	MasteredQuestions    int `json:"masteredQuestions"`
	CompletionPercentage int `json:"completionPercentage"`
}

type sessionDetailResponse struct {
	Session   sessionResponse    `json:"session"`
	Questions []questionResponse `json:"questions"`
	Progress  progressResponse   `json:"progress"`
}

type sessionListResponse struct {
	Sessions []sessionResponse `json:"sessions"`
	Total    int               `json:"total"`
}

// Create handles POST /sessions.
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	detail, err := h.svc.Create(r.Context(), session.CreateInput{
		Role:          req.Role,
		Experience:    req.Experience,
		TopicsToFocus: req.TopicsToFocus,
		Description:   req.Description,
		QuestionCount: req.QuestionCount,
	})
	if err != nil {
		handleDomainError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toSessionDetailResponse(detail))
}

// List handles GET /sessions.
func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ListMine(r.Context(), filterFromQuery(r))
	if err != nil {
		handleDomainError(r.Context(), h.log, w, err)
		return
	}

	resp := sessionListResponse{
		Sessions: make([]sessionResponse, len(result.Sessions)),
		Total:    result.Total,
	}
	for i, s := range result.Sessions {
		resp.Sessions[i] = toSessionResponse(s)
	}

	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /sessions/{id}.
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	detail, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleDomainError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toSessionDetailResponse(detail))
}

// Progress handles GET /sessions/{id}/progress.
func (h *SessionHandler) Progress(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	progress, err := h.svc.GetProgress(r.Context(), id)
	if err != nil {
		handleDomainError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toProgressResponse(progress))
}

// Delete handles DELETE /sessions/{id}.
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleDomainError(r.Context(), h.log, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AddQuestions handles POST /sessions/{id}/questions.
func (h *SessionHandler) AddQuestions(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req addQuestionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := session.AddQuestionsInput{SessionID: id}
	for _, q := range req.Questions {
		input.Questions = append(input.Questions, session.QuestionInput{
			Prompt: q.Prompt,
			Answer: q.Answer,
		})
	}

	created, err := h.svc.AddQuestions(r.Context(), input)
	if err != nil {
		handleDomainError(r.Context(), h.log, w, err)
		return
	}

	resp := make([]questionResponse, len(created))
	for i, q := range created {
		resp[i] = toQuestionResponse(q)
	}

	writeJSON(w, http.StatusCreated, map[string]any{"questions": resp})
}

// TogglePin handles PATCH /questions/{id}/pin.
func (h *SessionHandler) TogglePin(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req pinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.svc.TogglePin(r.Context(), id, req.Pinned); err != nil {
		handleDomainError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"pinned": req.Pinned})
}

// UpdateNote handles PATCH /questions/{id}/note.
func (h *SessionHandler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req noteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.svc.UpdateNote(r.Context(), id, req.Note); err != nil {
		handleDomainError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// DeleteQuestion handles DELETE /questions/{id}.
func (h *SessionHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteQuestion(r.Context(), id); err != nil {
		handleDomainError(r.Context(), h.log, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func filterFromQuery(r *http.Request) domain.SessionFilter {
	q := r.URL.Query()

	var f domain.SessionFilter
	if v := q.Get("search"); v != "" {
		f.Search = &v
	}
	if v := q.Get("role"); v != "" {
		f.Role = &v
	}
	f.SortBy = q.Get("sortBy")
	f.SortOrder = q.Get("sortOrder")
	if v, err := strconv.Atoi(q.Get("limit")); err == nil {
		f.Limit = v
	}
	if v, err := strconv.Atoi(q.Get("offset")); err == nil {
		f.Offset = v
	}
	return f
}

func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

func toSessionResponse(s *domain.Session) sessionResponse {
	return sessionResponse{
		ID:            s.ID.String(),
		Role:          s.Role,
		Experience:    s.Experience,
		TopicsToFocus: s.TopicsToFocus,
		Description:   s.Description,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

func toQuestionResponse(q *domain.Question) questionResponse {
	return questionResponse{
		ID:             q.ID.String(),
		SessionID:      q.SessionID.String(),
		Prompt:         q.Prompt,
		Answer:         q.Answer,
		Note:           q.Note,
		IsPinned:       q.IsPinned,
		IsMastered:     q.IsMastered,
		ReviewInterval: q.ReviewInterval,
		DueDate:        q.DueDate,
		LastScore:      q.LastScore,
		CreatedAt:      q.CreatedAt,
	}
}

func toProgressResponse(p domain.SessionProgress) progressResponse {
	return progressResponse{
		TotalQuestions:       p.TotalQuestions,
		MasteredQuestions:    p.MasteredQuestions,
		CompletionPercentage: p.CompletionPercentage,
	}
}

func toSessionDetailResponse(d *session.SessionDetail) sessionDetailResponse {
	resp := sessionDetailResponse{
		Session:   toSessionResponse(d.Session),
		Questions: make([]questionResponse, len(d.Questions)),
		Progress:  toProgressResponse(d.Progress),
	}
	for i, q := range d.Questions {
		resp.Questions[i] = toQuestionResponse(q)
	}
	return resp
}
