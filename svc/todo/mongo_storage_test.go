package todo_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/todokit/pkg/mongo"
	"github.com/dmitrymomot/todokit/svc/todo"
)

func TestMongoStorage(t *testing.T) {
	url := os.Getenv("MONGODB_URL")
	if url == "" {
		t.Skip("MONGODB_URL not set")
	}

	ctx := context.Background()
	db, err := mongo.NewWithDatabase(ctx, mongo.Config{
		ConnectionURL:  url,
		Database:       "todokit_todo_test_" + bson.NewObjectID().Hex(),
		ConnectTimeout: 5 * time.Second,
		RetryAttempts:  1,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Drop(context.Background())
		_ = db.Client().Disconnect(context.Background())
	})

	storage := todo.NewMongoStorage(db)
	require.NoError(t, storage.EnsureIndexes(ctx))

	clk := &stepClock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	svc := todo.NewService(storage, todo.WithClock(clk.Now))
	ann, bob := uuid.New(), uuid.New()

	empty, err := svc.List(ctx, ann)
	require.NoError(t, err)
	assert.NotNil(t, empty)

	first, err := svc.Create(ctx, ann, todo.CreateInput{Title: "first"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, ann, todo.CreateInput{Title: "second"})
	require.NoError(t, err)

	list, err := svc.List(ctx, ann)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "second", list[0].Title)

	updated, err := svc.Update(ctx, ann, first.ID, todo.Patch{Completed: ptr(true)})
	require.NoError(t, err)
	assert.True(t, updated.Completed)
	assert.Equal(t, "first", updated.Title)

	_, err = svc.Update(ctx, bob, first.ID, todo.Patch{Completed: ptr(false)})
	assert.ErrorIs(t, err, todo.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, bob, first.ID), todo.ErrNotFound)

	require.NoError(t, svc.Delete(ctx, ann, first.ID))
	_, err = svc.Get(ctx, ann, first.ID)
	assert.ErrorIs(t, err, todo.ErrNotFound)
}
