package session

import (
	"context"
	"time"
)

// Store persists sessions keyed by token.
//
// Stores never rewrite a session's UserID once created; Touch only moves
// the activity and expiry timestamps. Get returns the stored session even
// when it is past ExpiresAt: the Manager decides expiry so that every
// backend behaves the same.
type Store interface {
	// Create stores a new session
	Create(ctx context.Context, s *Session) error

	// Get retrieves a session by token or returns ErrSessionNotFound
	Get(ctx context.Context, token string) (*Session, error)

	// Touch atomically updates activity and expiry timestamps.
	// Returns ErrSessionNotFound if the session no longer exists.
	Touch(ctx context.Context, token string, lastActivity, expiresAt time.Time) error

	// Delete removes a session; deleting a missing session is not an error
	Delete(ctx context.Context, token string) error

	// DeleteExpired removes sessions expired at now and returns how many were removed
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
