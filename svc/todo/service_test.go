package todo_test

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/todokit/pkg/validator"
	"github.com/dmitrymomot/todokit/svc/todo"
)

type stepClock struct {
	mu  sync.Mutex
	now time.Time
}

// Now advances by one second on every call so creation order is visible.
func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}

func ptr[T any](v T) *T { return &v }

func newService() *todo.Service {
	clk := &stepClock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	return todo.NewService(todo.NewMemoryStorage(), todo.WithClock(clk.Now))
}

func TestService_Create(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newService()
	owner := uuid.New()

	created, err := svc.Create(ctx, owner, todo.CreateInput{Title: "  buy   milk ", Content: "2 liters\n\n", Completed: false})
	require.NoError(t, err)
	assert.Equal(t, owner, created.OwnerID)
	assert.Equal(t, "buy milk", created.Title)
	assert.Equal(t, "2 liters", created.Content)
	assert.False(t, created.Completed)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	t.Run("validation", func(t *testing.T) {
		_, err := svc.Create(ctx, owner, todo.CreateInput{Title: "   "})
		verrs := validator.ExtractValidationErrors(err)
		require.NotNil(t, verrs)
		assert.True(t, verrs.Has("title"))

		_, err = svc.Create(ctx, owner, todo.CreateInput{
			Title:   strings.Repeat("t", todo.MaxTitleLength+1),
			Content: strings.Repeat("c", todo.MaxContentLength+1),
		})
		verrs = validator.ExtractValidationErrors(err)
		assert.ElementsMatch(t, []string{"title", "content"}, verrs.Fields())
	})
}

func TestService_List(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newService()
	ann, bob := uuid.New(), uuid.New()

	empty, err := svc.List(ctx, ann)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	for _, title := range []string{"first", "second", "third"} {
		_, err := svc.Create(ctx, ann, todo.CreateInput{Title: title})
		require.NoError(t, err)
	}
	_, err = svc.Create(ctx, bob, todo.CreateInput{Title: "bob's"})
	require.NoError(t, err)

	list, err := svc.List(ctx, ann)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "third", list[0].Title)
	assert.Equal(t, "first", list[2].Title)
	for _, item := range list {
		assert.Equal(t, ann, item.OwnerID)
	}
}

func TestService_Update(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newService()
	owner := uuid.New()

	created, err := svc.Create(ctx, owner, todo.CreateInput{Title: "buy milk", Content: "whole"})
	require.NoError(t, err)

	t.Run("partial", func(t *testing.T) {
		updated, err := svc.Update(ctx, owner, created.ID, todo.Patch{Completed: ptr(true)})
		require.NoError(t, err)
		assert.True(t, updated.Completed)
		assert.Equal(t, "buy milk", updated.Title)
		assert.Equal(t, "whole", updated.Content)
		assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
		assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	})

	t.Run("clear content", func(t *testing.T) {
		updated, err := svc.Update(ctx, owner, created.ID, todo.Patch{Content: ptr("")})
		require.NoError(t, err)
		assert.Empty(t, updated.Content)
		assert.True(t, updated.Completed)
	})

	t.Run("empty title rejected", func(t *testing.T) {
		_, err := svc.Update(ctx, owner, created.ID, todo.Patch{Title: ptr(" ")})
		assert.True(t, validator.IsValidationError(err))
	})

	t.Run("empty patch returns current", func(t *testing.T) {
		got, err := svc.Update(ctx, owner, created.ID, todo.Patch{})
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := svc.Update(ctx, owner, uuid.New(), todo.Patch{Completed: ptr(true)})
		assert.ErrorIs(t, err, todo.ErrNotFound)
	})
}

func TestService_OwnerIsolation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newService()
	ann, bob := uuid.New(), uuid.New()

	annTodo, err := svc.Create(ctx, ann, todo.CreateInput{Title: "ann's"})
	require.NoError(t, err)

	_, err = svc.Get(ctx, bob, annTodo.ID)
	assert.ErrorIs(t, err, todo.ErrNotFound)

	_, err = svc.Update(ctx, bob, annTodo.ID, todo.Patch{Title: ptr("hijacked")})
	assert.ErrorIs(t, err, todo.ErrNotFound)

	_, err = svc.Update(ctx, bob, annTodo.ID, todo.Patch{})
	assert.ErrorIs(t, err, todo.ErrNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, bob, annTodo.ID), todo.ErrNotFound)

	got, err := svc.Get(ctx, ann, annTodo.ID)
	require.NoError(t, err)
	assert.Equal(t, "ann's", got.Title)
}

func TestService_Delete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newService()
	owner := uuid.New()

	created, err := svc.Create(ctx, owner, todo.CreateInput{Title: "x"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, owner, created.ID))
	assert.ErrorIs(t, svc.Delete(ctx, owner, created.ID), todo.ErrNotFound)

	_, err = svc.Get(ctx, owner, created.ID)
	assert.ErrorIs(t, err, todo.ErrNotFound)
}
