package account

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/dmitrymomot/todokit/handler"
	"github.com/dmitrymomot/todokit/pkg/auth"
	"github.com/dmitrymomot/todokit/pkg/logger"
	"github.com/dmitrymomot/todokit/pkg/session"
)

var (
	errInvalidCredentials = handler.NewHTTPError(http.StatusUnauthorized,
		"invalid_credentials", "Invalid email or password")
	errEmailTaken = handler.NewHTTPError(http.StatusConflict,
		"email_already_registered", "Email is already registered")
)

// AuthService defines the credential operations the endpoints need.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*auth.User, error)
	Authenticate(ctx context.Context, email, password string) (*auth.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*auth.User, error)
}

// Sessions issues and revokes the session bound to a response and gates
// routes that need an authenticated user. *session.Manager implements it.
type Sessions interface {
	Issue(ctx context.Context, w http.ResponseWriter, r *http.Request, userID uuid.UUID) (*session.Session, error)
	Revoke(ctx context.Context, w http.ResponseWriter, r *http.Request)
	RequireAuth(next http.Handler) http.Handler
}

// Service serves the register, login, logout and me endpoints.
type Service struct {
	auth         AuthService
	sessions     Sessions
	errorHandler handler.ErrorHandler[handler.Context]
	logger       *slog.Logger
}

type Option func(*Service)

// WithErrorHandler sets the handler used to render errors.
// Defaults to handler.NewErrorHandler with the service logger.
func WithErrorHandler(h handler.ErrorHandler[handler.Context]) Option {
	return func(s *Service) {
		s.errorHandler = h
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

func NewService(authSvc AuthService, sessions Sessions, opts ...Option) *Service {
	s := &Service{
		auth:     authSvc,
		sessions: sessions,
		logger:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.errorHandler == nil {
		s.errorHandler = handler.NewErrorHandler(s.logger)
	}
	return s
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Service) register(ctx handler.Context, req registerRequest) handler.Response {
	user, err := s.auth.Register(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrEmailAlreadyExists) {
			return handler.Error(errEmailTaken)
		}
		return handler.Error(err)
	}

	if _, err := s.sessions.Issue(ctx, ctx.ResponseWriter(), ctx.Request(), user.ID); err != nil {
		return handler.Error(err)
	}

	return handler.JSON(user, handler.WithJSONStatus(http.StatusCreated))
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// login answers every credential mismatch with the same 401 body so the
// response does not reveal whether the email is registered.
func (s *Service) login(ctx handler.Context, req loginRequest) handler.Response {
	user, err := s.auth.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return handler.Error(errInvalidCredentials)
		}
		return handler.Error(err)
	}

	if _, err := s.sessions.Issue(ctx, ctx.ResponseWriter(), ctx.Request(), user.ID); err != nil {
		return handler.Error(err)
	}

	s.logger.InfoContext(ctx, "user logged in",
		logger.UserID(user.ID.String()),
		logger.Component("account"),
		logger.Event("login"),
	)

	return handler.JSON(user)
}

func (s *Service) logout(ctx handler.Context, _ struct{}) handler.Response {
	s.sessions.Revoke(ctx, ctx.ResponseWriter(), ctx.Request())
	return handler.Empty()
}

func (s *Service) me(ctx handler.Context, _ struct{}) handler.Response {
	userID, ok := session.UserIDFromContext(ctx)
	if !ok {
		return handler.Error(handler.ErrUnauthorized)
	}

	user, err := s.auth.GetUser(ctx, userID)
	if err != nil {
		// The account behind a live session is gone.
		if errors.Is(err, auth.ErrUserNotFound) {
			return handler.Error(handler.ErrUnauthorized)
		}
		return handler.Error(err)
	}

	return handler.JSON(user)
}
