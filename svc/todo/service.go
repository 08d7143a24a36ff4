package todo

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/todokit/pkg/logger"
	"github.com/dmitrymomot/todokit/pkg/sanitizer"
	"github.com/dmitrymomot/todokit/pkg/validator"
)

// Service implements owner-scoped todo operations. The owner always comes
// from the authenticated session, never from client input.
type Service struct {
	storage Storage
	logger  *slog.Logger
	now     func() time.Time
}

type Option func(*Service)

// WithLogger sets a custom logger for the service
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock overrides time.Now; intended for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

func NewService(storage Storage, opts ...Option) *Service {
	s := &Service{
		storage: storage,
		logger:  logger.Discard(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns the owner's todos, newest first. The result is never nil.
func (s *Service) List(ctx context.Context, ownerID uuid.UUID) ([]Todo, error) {
	todos, err := s.storage.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	if todos == nil {
		todos = []Todo{}
	}
	return todos, nil
}

func (s *Service) Get(ctx context.Context, ownerID, id uuid.UUID) (*Todo, error) {
	return s.storage.GetByOwner(ctx, ownerID, id)
}

func (s *Service) Create(ctx context.Context, ownerID uuid.UUID, in CreateInput) (*Todo, error) {
	title := sanitizer.NormalizeText(in.Title)
	content := sanitizer.NormalizeMultiline(in.Content)

	if err := validator.Apply(
		validator.Required("title", title),
		validator.MaxLen("title", title, MaxTitleLength),
		validator.MaxLen("content", content, MaxContentLength),
	); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	t := &Todo{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Title:     title,
		Content:   content,
		Completed: in.Completed,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.storage.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to create todo: %w", err)
	}

	s.logger.DebugContext(ctx, "todo created",
		slog.String("todo_id", t.ID.String()),
		logger.Component("todo"),
		logger.Event("create"),
	)
	return t, nil
}

// Update applies p to the owner's todo. An empty patch returns the todo
// unchanged, still failing with ErrNotFound if it is not the owner's.
func (s *Service) Update(ctx context.Context, ownerID, id uuid.UUID, p Patch) (*Todo, error) {
	if p.Title != nil {
		title := sanitizer.NormalizeText(*p.Title)
		p.Title = &title
	}
	if p.Content != nil {
		content := sanitizer.NormalizeMultiline(*p.Content)
		p.Content = &content
	}

	if err := validator.Apply(
		validator.When(p.Title != nil, validator.Required("title", deref(p.Title))),
		validator.When(p.Title != nil, validator.MaxLen("title", deref(p.Title), MaxTitleLength)),
		validator.When(p.Content != nil, validator.MaxLen("content", deref(p.Content), MaxContentLength)),
	); err != nil {
		return nil, err
	}

	if p.IsEmpty() {
		return s.storage.GetByOwner(ctx, ownerID, id)
	}

	return s.storage.Update(ctx, ownerID, id, p, s.now().UTC())
}

func (s *Service) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return s.storage.Delete(ctx, ownerID, id)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
