package rest

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/prepstack/interview-backend/internal/domain"
	"github.com/prepstack/interview-backend/internal/service/auth"
	"github.com/prepstack/interview-backend/pkg/ctxutil"
)

var _ authService = &authServiceMock{}

type authServiceMock struct {
	RegisterFunc func(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error)
	LoginFunc    func(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error)
	MeFunc       func(ctx context.Context, learnerID uuid.UUID) (*domain.User, error)
}

func (m *authServiceMock) Register(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error) {
	return m.RegisterFunc(ctx, input)
}

func (m *authServiceMock) Login(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error) {
	return m.LoginFunc(ctx, input)
}

func (m *authServiceMock) Me(ctx context.Context, learnerID uuid.UUID) (*domain.User, error) {
	return m.MeFunc(ctx, learnerID)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAuthRegister(t *testing.T) {
	userID := uuid.New()
	svc := &authServiceMock{
		RegisterFunc: func(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error) {
			if input.Email != "new@example.com" {
				t.Errorf("email: got %q", input.Email)
			}
			return &auth.AuthResult{
				AccessToken: "token-123",
				User: &domain.User{
					ID:        userID,
					Email:     input.Email,
					Name:      input.Name,
					CreatedAt: time.Now(),
				},
			}, nil
		},
	}
	h := NewAuthHandler(svc, discardLogger())

	body := `{"email":"new@example.com","name":"New Learner","password":"secret123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, rec.Code, rec.Body.String())
	}

	var resp authResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.AccessToken != "token-123" {
		t.Errorf("access token: got %q", resp.AccessToken)
	}
	if resp.User.ID != userID.String() {
		t.Errorf("user id: got %q", resp.User.ID)
	}
}

func TestAuthRegister_InvalidBody(t *testing.T) {
	h := NewAuthHandler(&authServiceMock{}, discardLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader("{broken"))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestAuthRegister_DuplicateEmail(t *testing.T) {
	svc := &authServiceMock{
		RegisterFunc: func(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error) {
			return nil, domain.ErrAlreadyExists
		},
	}
	h := NewAuthHandler(svc, discardLogger())

	body := `{"email":"taken@example.com","name":"x","password":"secret123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	if rec.Code != http.StatusConflict {
		t.Errorf("expected status %d, got %d", http.StatusConflict, rec.Code)
	}
}

func TestAuthRegister_ValidationDetails(t *testing.T) {
	svc := &authServiceMock{
		RegisterFunc: func(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error) {
			return nil, domain.NewValidationError("password", "must be at least 8 characters")
		},
	}
	h := NewAuthHandler(svc, discardLogger())

	body := `{"email":"a@b.c","name":"x","password":"short"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}

	var resp validationResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Fields) != 1 || resp.Fields[0].Field != "password" {
		t.Errorf("field errors: got %+v", resp.Fields)
	}
}

func TestAuthLogin_WrongCredentials(t *testing.T) {
	svc := &authServiceMock{
		LoginFunc: func(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error) {
			return nil, domain.ErrUnauthorized
		},
	}
	h := NewAuthHandler(svc, discardLogger())

	body := `{"email":"a@b.c","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}

func TestAuthMe(t *testing.T) {
	learnerID := uuid.New()
	svc := &authServiceMock{
		MeFunc: func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
			if id != learnerID {
				t.Errorf("learner id: got %s, want %s", id, learnerID)
			}
			return &domain.User{ID: id, Email: "me@example.com", Name: "Me"}, nil
		},
	}
	h := NewAuthHandler(svc, discardLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req = req.WithContext(ctxutil.WithLearnerID(req.Context(), learnerID))
	rec := httptest.NewRecorder()

	h.Me(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var resp userResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Email != "me@example.com" {
		t.Errorf("email: got %q", resp.Email)
	}
}

func TestAuthMe_Anonymous(t *testing.T) {
	h := NewAuthHandler(&authServiceMock{}, discardLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	rec := httptest.NewRecorder()

	h.Me(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}
