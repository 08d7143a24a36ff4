package session

import "errors"

var (
	// ErrSessionNotFound indicates no session exists for the token
	ErrSessionNotFound = errors.New("session.not_found")

	// ErrSessionExpired indicates the session existed but its TTL has passed
	ErrSessionExpired = errors.New("session.expired")

	// ErrInvalidSession indicates a session that cannot be persisted
	ErrInvalidSession = errors.New("session.invalid")

	// ErrTokenGeneration indicates token generation failed
	ErrTokenGeneration = errors.New("session.token_generation_failed")

	// ErrNoTransport indicates an HTTP helper was used without a transport
	ErrNoTransport = errors.New("session.no_transport")

	// ErrStoreFailure wraps unexpected backend errors
	ErrStoreFailure = errors.New("session.store_failure")
)

// IsUnauthenticated reports whether err means the caller has no usable session.
func IsUnauthenticated(err error) bool {
	return errors.Is(err, ErrSessionNotFound) || errors.Is(err, ErrSessionExpired)
}
