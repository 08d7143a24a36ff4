package session

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/todokit/pkg/logger"
)

// RequireAuth admits only requests carrying a live session and stores the
// session's user id in the request context (see UserIDFromContext).
// Requests without a token are rejected before the store is consulted.
func (m *Manager) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := m.Token(r)
		if err != nil {
			if errors.Is(err, ErrNoTransport) {
				m.logger.ErrorContext(r.Context(), "session transport is not configured",
					logger.Component("session"),
				)
			}
			m.unauthorized(w, r, ErrSessionNotFound)
			return
		}

		userID, err := m.Resolve(r.Context(), token)
		if err != nil {
			if IsUnauthenticated(err) {
				_ = m.transport.ClearToken(w)
			} else {
				m.logger.ErrorContext(r.Context(), "failed to resolve session",
					logger.Error(err),
					logger.Component("session"),
				)
			}
			m.unauthorized(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
	})
}

func defaultUnauthorized(w http.ResponseWriter, r *http.Request, err error) {
	if IsUnauthenticated(err) {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
