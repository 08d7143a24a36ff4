package session

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/todokit/pkg/cookie"
)

// Option is a functional option for configuring the Manager
type Option func(*Manager)

// WithStore sets the session store (default: MemoryStore)
func WithStore(store Store) Option {
	return func(m *Manager) {
		m.store = store
	}
}

// WithTransport sets a custom session transport
func WithTransport(transport Transport) Option {
	return func(m *Manager) {
		m.transport = transport
	}
}

// WithConfig sets custom configuration
func WithConfig(config Config) Option {
	return func(m *Manager) {
		m.config = config
	}
}

// WithCookieManager enables the default cookie transport
func WithCookieManager(cookieMgr *cookie.Manager, opts ...cookie.Option) Option {
	return func(m *Manager) {
		m.cookieManager = cookieMgr
		m.cookieOptions = opts
	}
}

// WithLogger sets the logger used for background failures
func WithLogger(log *slog.Logger) Option {
	return func(m *Manager) {
		if log != nil {
			m.logger = log
		}
	}
}

// WithClock overrides time.Now; intended for tests.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

// UnauthorizedHandler renders the response for requests rejected by
// RequireAuth. err is ErrSessionNotFound, ErrSessionExpired or a store error.
type UnauthorizedHandler func(w http.ResponseWriter, r *http.Request, err error)

// WithUnauthorizedHandler replaces the plain-text 401/500 default.
func WithUnauthorizedHandler(h UnauthorizedHandler) Option {
	return func(m *Manager) {
		if h != nil {
			m.unauthorized = h
		}
	}
}
