package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered learner.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}
