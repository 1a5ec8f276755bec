package auth

import "github.com/prepstack/interview-backend/internal/domain"

// AuthResult is returned by register and login operations.
type AuthResult struct {
	AccessToken string
	User        *domain.User
}
