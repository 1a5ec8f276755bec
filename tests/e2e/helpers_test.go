//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/prepstack/interview-backend/internal/adapter/postgres"
	questionrepo "github.com/prepstack/interview-backend/internal/adapter/postgres/question"
	samplerepo "github.com/prepstack/interview-backend/internal/adapter/postgres/sample"
	sessionrepo "github.com/prepstack/interview-backend/internal/adapter/postgres/session"
	"github.com/prepstack/interview-backend/internal/adapter/postgres/testhelper"
	userrepo "github.com/prepstack/interview-backend/internal/adapter/postgres/user"
	"github.com/prepstack/interview-backend/internal/adapter/provider/questiongen"
	authpkg "github.com/prepstack/interview-backend/internal/auth"
	"github.com/prepstack/interview-backend/internal/config"
	"github.com/prepstack/interview-backend/internal/domain"
	authsvc "github.com/prepstack/interview-backend/internal/service/auth"
	"github.com/prepstack/interview-backend/internal/service/progress"
	sessionsvc "github.com/prepstack/interview-backend/internal/service/session"
	"github.com/prepstack/interview-backend/internal/transport/middleware"
	"github.com/prepstack/interview-backend/internal/transport/rest"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	users := userrepo.New(pool)
	sessions := sessionrepo.New(pool)
	questions := questionrepo.New(pool)
	samples := samplerepo.New(pool)

	jwtManager := authpkg.NewJWTManager(
		"e2e-test-secret-at-least-32-characters-long", "prepstack-test", time.Hour)

	authService := authsvc.NewService(logger, users, jwtManager)
	sessionService := sessionsvc.NewService(logger, sessions, questions, questiongen.NewStub(), txm)
	progressService, err := progress.NewService(
		logger, questions, samples, sessions, txm,
		domain.DefaultScoreWeights(), domain.DefaultReviewPolicy(),
		70, 30, nil,
	)
	require.NoError(t, err)

	router := rest.NewRouter(rest.RouterDeps{
		Health:   rest.NewHealthHandler(pool, "e2e"),
		Auth:     rest.NewAuthHandler(authService, logger),
		Sessions: rest.NewSessionHandler(sessionService, logger),
		Progress: rest.NewProgressHandler(progressService, logger),
	})

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.CORS(config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,PUT,PATCH,DELETE,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		}),
		middleware.Auth(jwtManager),
		middleware.Logger(logger),
	)(router)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
	}
}

// doJSON performs an HTTP request with a JSON body and optional bearer
// token, decoding the JSON response into a generic map.
func (ts *testServer) doJSON(t *testing.T, method, path string, body any, token string) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var result map[string]any
	if len(raw) > 0 && json.Valid(raw) {
		require.NoError(t, json.Unmarshal(raw, &result))
	}
	return resp.StatusCode, result
}

// registerLearner registers a fresh learner and returns the access token.
func registerLearner(t *testing.T, ts *testServer, email string) string {
	t.Helper()

	status, result := ts.doJSON(t, http.MethodPost, "/api/v1/auth/register", map[string]any{
		"email":    email,
		"name":     "E2E Learner",
		"password": "super-secret-pw",
	}, "")
	require.Equal(t, http.StatusCreated, status, "register: %v", result)

	token, ok := result["accessToken"].(string)
	require.True(t, ok, "expected accessToken in register response")
	require.NotEmpty(t, token)
	return token
}

// createSession creates a preparation session and returns its detail payload.
func createSession(t *testing.T, ts *testServer, token string, questionCount int) map[string]any {
	t.Helper()

	status, result := ts.doJSON(t, http.MethodPost, "/api/v1/sessions", map[string]any{
		"role":          "backend engineer",
		"experience":    "mid",
		"topicsToFocus": []string{"databases", "concurrency"},
		"questionCount": questionCount,
	}, token)
	require.Equal(t, http.StatusCreated, status, "create session: %v", result)
	return result
}

func sessionQuestions(t *testing.T, detail map[string]any) []map[string]any {
	t.Helper()

	raw, ok := detail["questions"].([]any)
	require.True(t, ok, "expected questions array")

	questions := make([]map[string]any, len(raw))
	for i, q := range raw {
		m, ok := q.(map[string]any)
		require.True(t, ok)
		questions[i] = m
	}
	return questions
}
