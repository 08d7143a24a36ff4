package auth

import (
	"time"

	"github.com/google/uuid"
)

// User is an account identified by a unique, normalized email.
// PasswordHash is always a Hasher output and is never serialized.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
