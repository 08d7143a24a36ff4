package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/todokit/pkg/cookie"
	"github.com/dmitrymomot/todokit/pkg/logger"
)

// tokenBytes is the amount of randomness in a session token (256 bits).
const tokenBytes = 32

// Manager creates, resolves and destroys sessions.
type Manager struct {
	store         Store
	transport     Transport
	config        Config
	cookieManager *cookie.Manager
	cookieOptions []cookie.Option
	logger        *slog.Logger
	now           func() time.Time
	unauthorized  UnauthorizedHandler
}

// New creates a new session manager with the given options.
// Without WithStore sessions are kept in memory. HTTP helpers need either
// WithTransport or WithCookieManager.
func New(opts ...Option) *Manager {
	m := &Manager{
		config:       DefaultConfig(),
		logger:       logger.Discard(),
		now:          time.Now,
		unauthorized: defaultUnauthorized,
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.store == nil {
		m.store = NewMemoryStore()
	}

	if m.transport == nil && m.cookieManager != nil {
		m.transport = NewCookieTransport(m.cookieManager, m.config.CookieName, m.config.SecureCookies, m.cookieOptions...)
	}

	return m
}

// NewFromConfig creates a new Manager from the provided Config.
func NewFromConfig(cfg Config, opts ...Option) *Manager {
	return New(append([]Option{WithConfig(cfg)}, opts...)...)
}

// Create starts a new session bound to userID.
func (m *Manager) Create(ctx context.Context, userID uuid.UUID, data map[string]any) (*Session, error) {
	if userID == uuid.Nil {
		return nil, ErrInvalidSession
	}

	token, err := generateToken()
	if err != nil {
		return nil, err
	}

	now := m.now()
	sess := &Session{
		Token:          token,
		UserID:         userID,
		Data:           data,
		CreatedAt:      now,
		LastActivityAt: now,
		ExpiresAt:      m.config.expiry(now, now),
	}

	if err := m.store.Create(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Resolve returns the user bound to token.
//
// It fails with ErrSessionNotFound for unknown or empty tokens and with
// ErrSessionExpired when the session's TTL has passed; expired sessions are
// deleted on the way out. With sliding expiry the session's deadline is
// pushed forward at most once per ActivityUpdateThreshold. A failed
// extension is logged and does not fail the request.
func (m *Manager) Resolve(ctx context.Context, token string) (uuid.UUID, error) {
	if token == "" {
		return uuid.Nil, ErrSessionNotFound
	}

	sess, err := m.store.Get(ctx, token)
	if err != nil {
		return uuid.Nil, err
	}

	now := m.now()
	if sess.ExpiredAt(now) {
		if err := m.store.Delete(ctx, token); err != nil {
			m.logger.WarnContext(ctx, "failed to delete expired session",
				logger.Error(err),
				logger.Component("session"),
			)
		}
		return uuid.Nil, ErrSessionExpired
	}

	if m.config.Sliding() && now.Sub(sess.LastActivityAt) >= m.config.ActivityUpdateThreshold {
		if err := m.store.Touch(ctx, token, now, m.config.expiry(sess.CreatedAt, now)); err != nil {
			m.logger.WarnContext(ctx, "failed to extend session",
				logger.Error(err),
				logger.Component("session"),
				logger.Event("session_touch"),
			)
		}
	}

	return sess.UserID, nil
}

// Destroy removes the session. Unknown tokens are not an error.
func (m *Manager) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return m.store.Delete(ctx, token)
}

// Token extracts the session token from the request.
func (m *Manager) Token(r *http.Request) (string, error) {
	if m.transport == nil {
		return "", ErrNoTransport
	}
	return m.transport.GetToken(r)
}

// Issue creates a session for userID and writes its token to w.
// A session already attached to r is destroyed first so a login always
// starts from a fresh token.
func (m *Manager) Issue(ctx context.Context, w http.ResponseWriter, r *http.Request, userID uuid.UUID) (*Session, error) {
	if m.transport == nil {
		return nil, ErrNoTransport
	}

	if old, err := m.transport.GetToken(r); err == nil {
		if err := m.Destroy(ctx, old); err != nil {
			m.logger.WarnContext(ctx, "failed to destroy previous session",
				logger.Error(err),
				logger.Component("session"),
			)
		}
	}

	sess, err := m.Create(ctx, userID, nil)
	if err != nil {
		return nil, err
	}

	if err := m.transport.SetToken(w, sess.Token, m.config.MaxLifetime); err != nil {
		_ = m.store.Delete(ctx, sess.Token)
		return nil, err
	}

	return sess, nil
}

// Revoke destroys the request's session, if any, and clears the token on
// the client. It never fails: logging out twice, or without a session, is fine.
func (m *Manager) Revoke(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	if m.transport == nil {
		return
	}

	if token, err := m.transport.GetToken(r); err == nil {
		if err := m.Destroy(ctx, token); err != nil {
			m.logger.ErrorContext(ctx, "failed to destroy session on logout",
				logger.Error(err),
				logger.Component("session"),
			)
		}
	}

	_ = m.transport.ClearToken(w)
}

// StartCleanup periodically removes expired sessions until ctx is done.
// Does nothing when CleanupInterval is zero.
func (m *Manager) StartCleanup(ctx context.Context) {
	if m.config.CleanupInterval <= 0 {
		return
	}

	go func() {
		ticker := time.NewTicker(m.config.CleanupInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				n, err := m.store.DeleteExpired(ctx, m.now())
				if err != nil {
					m.logger.WarnContext(ctx, "session cleanup failed",
						logger.Error(err),
						logger.Component("session"),
					)
					continue
				}
				if n > 0 {
					m.logger.DebugContext(ctx, "expired sessions removed",
						slog.Int64("count", n),
						logger.Component("session"),
					)
				}
			}
		}
	}()
}

// generateToken creates a cryptographically secure token
func generateToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Join(ErrTokenGeneration, err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
