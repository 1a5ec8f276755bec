//go:build e2e

package e2e_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestE2E_AuthFlow covers register, duplicate register, login, wrong
// password, and the /me profile endpoint.
func TestE2E_AuthFlow(t *testing.T) {
	ts := setupTestServer(t)
	email := "flow-" + uuid.NewString() + "@example.com"

	// Register.
	token := registerLearner(t, ts, email)

	// Duplicate email must conflict.
	status, _ := ts.doJSON(t, http.MethodPost, "/api/v1/auth/register", map[string]any{
		"email":    email,
		"name":     "Duplicate",
		"password": "super-secret-pw",
	}, "")
	assert.Equal(t, http.StatusConflict, status)

	// Login with correct credentials.
	status, result := ts.doJSON(t, http.MethodPost, "/api/v1/auth/login", map[string]any{
		"email":    email,
		"password": "super-secret-pw",
	}, "")
	require.Equal(t, http.StatusOK, status, "login: %v", result)
	assert.NotEmpty(t, result["accessToken"])

	// Login with wrong password.
	status, _ = ts.doJSON(t, http.MethodPost, "/api/v1/auth/login", map[string]any{
		"email":    email,
		"password": "wrong-password",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, status)

	// Profile via the registration token.
	status, result = ts.doJSON(t, http.MethodGet, "/api/v1/auth/me", nil, token)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, email, result["email"])
}

// TestE2E_Register_Validation verifies a short password is rejected with
// field-level details.
func TestE2E_Register_Validation(t *testing.T) {
	ts := setupTestServer(t)

	status, result := ts.doJSON(t, http.MethodPost, "/api/v1/auth/register", map[string]any{
		"email":    "short-" + uuid.NewString() + "@example.com",
		"name":     "Short",
		"password": "short",
	}, "")
	require.Equal(t, http.StatusBadRequest, status)

	fields, ok := result["fields"].([]any)
	require.True(t, ok, "expected field errors: %v", result)
	assert.NotEmpty(t, fields)
}
