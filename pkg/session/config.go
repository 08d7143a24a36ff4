package session

import "time"

// Config holds session configuration
type Config struct {
	// CookieName is the name of the session cookie (default: "sid")
	CookieName string `env:"SESSION_COOKIE_NAME" envDefault:"sid"`

	// IdleTimeout expires a session after this much inactivity.
	// Zero disables sliding: every session lives exactly MaxLifetime.
	IdleTimeout time.Duration `env:"SESSION_IDLE_TIMEOUT" envDefault:"2h"`

	// MaxLifetime caps a session's age regardless of activity.
	MaxLifetime time.Duration `env:"SESSION_MAX_LIFETIME" envDefault:"720h"`

	// ActivityUpdateThreshold is the minimum time between activity updates
	ActivityUpdateThreshold time.Duration `env:"SESSION_ACTIVITY_UPDATE_THRESHOLD" envDefault:"5m"`

	// CleanupInterval for expired sessions (0 to disable)
	CleanupInterval time.Duration `env:"SESSION_CLEANUP_INTERVAL" envDefault:"5m"`

	// SecureCookies enables the Secure flag on session cookies (recommended for production)
	SecureCookies bool `env:"SESSION_SECURE_COOKIES" envDefault:"false"`
}

// DefaultConfig returns default session configuration
func DefaultConfig() Config {
	return Config{
		CookieName:              "sid",
		IdleTimeout:             2 * time.Hour,
		MaxLifetime:             30 * 24 * time.Hour,
		ActivityUpdateThreshold: 5 * time.Minute,
		CleanupInterval:         5 * time.Minute,
	}
}

// Sliding reports whether activity extends a session's expiry.
func (c Config) Sliding() bool {
	return c.IdleTimeout > 0 && c.IdleTimeout < c.MaxLifetime
}

// expiry returns the expiry for a session created at createdAt and last
// active at now: the earlier of the idle deadline and the absolute cap.
func (c Config) expiry(createdAt, now time.Time) time.Time {
	maxExpiry := createdAt.Add(c.MaxLifetime)
	if !c.Sliding() {
		return maxExpiry
	}
	if idleExpiry := now.Add(c.IdleTimeout); idleExpiry.Before(maxExpiry) {
		return idleExpiry
	}
	return maxExpiry
}
