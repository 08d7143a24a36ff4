package auth

// Config holds password policy settings
type Config struct {
	BcryptCost        int `env:"AUTH_BCRYPT_COST" envDefault:"10"`
	MinPasswordLength int `env:"AUTH_MIN_PASSWORD_LENGTH" envDefault:"8"`
}

// NewFromConfig creates a Service with a bcrypt hasher configured from cfg.
func NewFromConfig(cfg Config, storage Storage, opts ...Option) *Service {
	base := []Option{
		WithHasher(NewBcryptHasher(cfg.BcryptCost)),
		WithMinPasswordLength(cfg.MinPasswordLength),
	}
	return NewService(storage, append(base, opts...)...)
}
