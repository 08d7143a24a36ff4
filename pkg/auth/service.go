package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/todokit/pkg/logger"
	"github.com/dmitrymomot/todokit/pkg/sanitizer"
	"github.com/dmitrymomot/todokit/pkg/validator"
)

const (
	maxNameLength  = 100
	maxEmailLength = 254
	// bcrypt silently ignores input beyond 72 bytes
	maxPasswordBytes = 72
)

// Service registers and authenticates users with email and password.
type Service struct {
	storage   Storage
	hasher    Hasher
	logger    *slog.Logger
	minPwdLen int
	now       func() time.Time

	// dummyHash is verified against when the email is unknown so that a
	// failed lookup costs as much as a wrong password.
	dummyHash string
}

type Option func(*Service)

// WithHasher overrides the default bcrypt hasher
func WithHasher(h Hasher) Option {
	return func(s *Service) {
		if h != nil {
			s.hasher = h
		}
	}
}

// WithLogger sets a custom logger for the service
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMinPasswordLength sets the minimal password length in characters
func WithMinPasswordLength(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.minPwdLen = n
		}
	}
}

func NewService(storage Storage, opts ...Option) *Service {
	s := &Service{
		storage:   storage,
		hasher:    NewBcryptHasher(bcrypt.DefaultCost),
		logger:    logger.Discard(),
		minPwdLen: 8,
		now:       time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	dummy, err := s.hasher.Hash(uuid.NewString())
	if err != nil {
		// An unusable hasher would also fail every registration; surface
		// it there rather than here.
		s.logger.Error("failed to prepare dummy password hash",
			logger.Error(err),
			logger.Component("auth"),
		)
	}
	s.dummyHash = dummy

	return s
}

// Register validates the input, creates the user and returns it.
// The email is trimmed, lower-cased and NFC-normalized before use.
func (s *Service) Register(ctx context.Context, name, email, password string) (*User, error) {
	name = sanitizer.NormalizeText(name)
	email = sanitizer.NormalizeEmail(email)

	if err := validator.Apply(
		validator.Required("name", name),
		validator.MaxLen("name", name, maxNameLength),
		validator.Required("email", email),
		validator.When(email != "", validator.ValidEmail("email", email)),
		validator.MaxLen("email", email, maxEmailLength),
		validator.Required("password", password),
		validator.When(password != "", validator.MinLen("password", password, s.minPwdLen)),
		validator.MaxBytes("password", password, maxPasswordBytes),
	); err != nil {
		return nil, err
	}

	// Cheap early exit; the storage unique constraint is what guarantees
	// a single record under concurrent registrations.
	if _, err := s.storage.GetUserByEmail(ctx, email); err == nil {
		return nil, ErrEmailAlreadyExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    s.now().UTC(),
	}

	if err := s.storage.CreateUser(ctx, user); err != nil {
		if errors.Is(err, ErrEmailAlreadyExists) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.InfoContext(ctx, "user registered",
		logger.UserID(user.ID.String()),
		logger.Component("auth"),
		logger.Event("register"),
	)

	return user, nil
}

// Authenticate returns the user owning email if password matches.
// Unknown email and wrong password both yield ErrInvalidCredentials and
// take comparable time; storage failures are returned as-is.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*User, error) {
	email = sanitizer.NormalizeEmail(email)

	user, err := s.storage.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			s.hasher.Verify(password, s.dummyHash)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// GetUser returns the user with id or ErrUserNotFound.
func (s *Service) GetUser(ctx context.Context, id uuid.UUID) (*User, error) {
	return s.storage.GetUserByID(ctx, id)
}
