package todo

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Storage persists todos. Every read and write is scoped by owner: a todo
// that belongs to another owner must be reported as ErrNotFound.
type Storage interface {
	Create(ctx context.Context, t *Todo) error
	// ListByOwner returns the owner's todos, newest first, never nil.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]Todo, error)
	GetByOwner(ctx context.Context, ownerID, id uuid.UUID) (*Todo, error)
	// Update applies p atomically and returns the updated todo.
	Update(ctx context.Context, ownerID, id uuid.UUID, p Patch, updatedAt time.Time) (*Todo, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}
