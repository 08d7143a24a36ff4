package todo

import (
	"time"

	"github.com/google/uuid"
)

const (
	MaxTitleLength   = 200
	MaxContentLength = 2000
)

// Todo is a to-do item. Every todo has exactly one owner and is only ever
// visible to that owner.
type Todo struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateInput holds the fields accepted when creating a todo.
type CreateInput struct {
	Title     string
	Content   string
	Completed bool
}

// Patch is a partial update; nil fields are left unchanged.
type Patch struct {
	Title     *string
	Content   *string
	Completed *bool
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Title == nil && p.Content == nil && p.Completed == nil
}

// apply returns a copy of t with the patch applied.
func (p Patch) apply(t Todo) Todo {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Content != nil {
		t.Content = *p.Content
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	return t
}
