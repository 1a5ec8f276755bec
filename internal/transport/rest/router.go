// Package rest provides the HTTP/JSON API surface.
package rest

import (
	"net/http"

	"github.com/prepstack/interview-backend/internal/transport/middleware"
)

// RouterDeps bundles the handlers the router serves.
type RouterDeps struct {
	Health   *HealthHandler
	Auth     *AuthHandler
	Sessions *SessionHandler
	Progress *ProgressHandler

	// AuthLimit rate-limits the unauthenticated auth endpoints.
	// Optional; nil disables limiting.
	AuthLimit middleware.Middleware
}

// NewRouter builds the route table. Routes under /api/v1 except
// auth/register and auth/login require an authenticated learner.
func NewRouter(deps RouterDeps) *http.ServeMux {
	mux := http.NewServeMux()

	limited := func(h http.HandlerFunc) http.Handler {
		if deps.AuthLimit == nil {
			return h
		}
		return deps.AuthLimit(h)
	}
	protected := func(h http.HandlerFunc) http.Handler {
		return middleware.RequireAuth(h)
	}

	mux.HandleFunc("GET /health", deps.Health.Health)
	mux.HandleFunc("GET /health/live", deps.Health.Live)
	mux.HandleFunc("GET /health/ready", deps.Health.Ready)

	mux.Handle("POST /api/v1/auth/register", limited(deps.Auth.Register))
	mux.Handle("POST /api/v1/auth/login", limited(deps.Auth.Login))
	mux.Handle("GET /api/v1/auth/me", protected(deps.Auth.Me))

	mux.Handle("POST /api/v1/sessions", protected(deps.Sessions.Create))
	mux.Handle("GET /api/v1/sessions", protected(deps.Sessions.List))
	mux.Handle("GET /api/v1/sessions/{id}", protected(deps.Sessions.Get))
	mux.Handle("DELETE /api/v1/sessions/{id}", protected(deps.Sessions.Delete))
	mux.Handle("GET /api/v1/sessions/{id}/progress", protected(deps.Sessions.Progress))
	mux.Handle("POST /api/v1/sessions/{id}/questions", protected(deps.Sessions.AddQuestions))

	mux.Handle("PATCH /api/v1/questions/{id}/pin", protected(deps.Sessions.TogglePin))
	mux.Handle("PATCH /api/v1/questions/{id}/note", protected(deps.Sessions.UpdateNote))
	mux.Handle("DELETE /api/v1/questions/{id}", protected(deps.Sessions.DeleteQuestion))
	mux.Handle("POST /api/v1/questions/{id}/answers", protected(deps.Progress.SubmitAnswer))
	mux.Handle("PATCH /api/v1/questions/{id}/mastery", protected(deps.Progress.ToggleMastery))

	mux.Handle("GET /api/v1/progress/review-queue", protected(deps.Progress.ReviewQueue))
	mux.Handle("GET /api/v1/progress/roadmap", protected(deps.Progress.Roadmap))
	mux.Handle("GET /api/v1/progress/dashboard", protected(deps.Progress.Dashboard))

	return mux
}
