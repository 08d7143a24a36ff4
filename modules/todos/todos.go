package todos

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/dmitrymomot/todokit/handler"
	"github.com/dmitrymomot/todokit/pkg/logger"
	"github.com/dmitrymomot/todokit/pkg/session"
	"github.com/dmitrymomot/todokit/svc/todo"
)

// TodoService defines the owner-scoped operations the endpoints need.
type TodoService interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]todo.Todo, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (*todo.Todo, error)
	Create(ctx context.Context, ownerID uuid.UUID, in todo.CreateInput) (*todo.Todo, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, p todo.Patch) (*todo.Todo, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

// Service serves the /api/todos endpoints. Routes must sit behind
// session.Manager.RequireAuth; the owner is always the session's user.
type Service struct {
	todos        TodoService
	errorHandler handler.ErrorHandler[handler.Context]
	logger       *slog.Logger
}

type Option func(*Service)

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

func NewService(todos TodoService, opts ...Option) *Service {
	s := &Service{
		todos:  todos,
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.errorHandler == nil {
		s.errorHandler = handler.NewErrorHandler(s.logger)
	}
	return s
}

type createRequest struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Completed bool   `json:"completed"`
}

type itemRequest struct {
	ID string `path:"id"`
}

// updateRequest fields are pointers: absent keys leave the todo unchanged.
type updateRequest struct {
	ID        string  `path:"id" json:"-"`
	Title     *string `json:"title"`
	Content   *string `json:"content"`
	Completed *bool   `json:"completed"`
}

func (s *Service) list(ctx handler.Context, _ struct{}) handler.Response {
	ownerID, ok := session.UserIDFromContext(ctx)
	if !ok {
		return handler.Error(handler.ErrUnauthorized)
	}

	items, err := s.todos.List(ctx, ownerID)
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(items)
}

func (s *Service) create(ctx handler.Context, req createRequest) handler.Response {
	ownerID, ok := session.UserIDFromContext(ctx)
	if !ok {
		return handler.Error(handler.ErrUnauthorized)
	}

	item, err := s.todos.Create(ctx, ownerID, todo.CreateInput{
		Title:     req.Title,
		Content:   req.Content,
		Completed: req.Completed,
	})
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(item, handler.WithJSONStatus(http.StatusCreated))
}

func (s *Service) get(ctx handler.Context, req itemRequest) handler.Response {
	ownerID, ok := session.UserIDFromContext(ctx)
	if !ok {
		return handler.Error(handler.ErrUnauthorized)
	}
	id, ok := parseID(req.ID)
	if !ok {
		return handler.Error(handler.ErrNotFound)
	}

	item, err := s.todos.Get(ctx, ownerID, id)
	if err != nil {
		return handler.Error(mapError(err))
	}
	return handler.JSON(item)
}

func (s *Service) update(ctx handler.Context, req updateRequest) handler.Response {
	ownerID, ok := session.UserIDFromContext(ctx)
	if !ok {
		return handler.Error(handler.ErrUnauthorized)
	}
	id, ok := parseID(req.ID)
	if !ok {
		return handler.Error(handler.ErrNotFound)
	}

	item, err := s.todos.Update(ctx, ownerID, id, todo.Patch{
		Title:     req.Title,
		Content:   req.Content,
		Completed: req.Completed,
	})
	if err != nil {
		return handler.Error(mapError(err))
	}
	return handler.JSON(item)
}

func (s *Service) delete(ctx handler.Context, req itemRequest) handler.Response {
	ownerID, ok := session.UserIDFromContext(ctx)
	if !ok {
		return handler.Error(handler.ErrUnauthorized)
	}
	id, ok := parseID(req.ID)
	if !ok {
		return handler.Error(handler.ErrNotFound)
	}

	if err := s.todos.Delete(ctx, ownerID, id); err != nil {
		return handler.Error(mapError(err))
	}
	return handler.Empty()
}

// parseID rejects malformed ids; callers answer 404 so a bad id looks
// exactly like a missing one.
func parseID(raw string) (uuid.UUID, bool) {
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

func mapError(err error) error {
	if errors.Is(err, todo.ErrNotFound) {
		return handler.ErrNotFound
	}
	return err
}
