package session_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/todokit/pkg/mongo"
	"github.com/dmitrymomot/todokit/pkg/session"
)

func newTestSession(token string, expiresIn time.Duration) *session.Session {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return &session.Session{
		Token:          token,
		UserID:         uuid.New(),
		Data:           map[string]any{"ip": "127.0.0.1"},
		CreatedAt:      now,
		LastActivityAt: now,
		ExpiresAt:      now.Add(expiresIn),
	}
}

// testStore runs the behaviour every Store implementation must share.
func testStore(t *testing.T, store session.Store) {
	ctx := context.Background()

	t.Run("create and get", func(t *testing.T) {
		s := newTestSession(uuid.NewString(), time.Hour)
		require.NoError(t, store.Create(ctx, s))

		got, err := store.Get(ctx, s.Token)
		require.NoError(t, err)
		assert.Equal(t, s.UserID, got.UserID)
		assert.WithinDuration(t, s.ExpiresAt, got.ExpiresAt, time.Millisecond)
		v, ok := got.GetString("ip")
		assert.True(t, ok)
		assert.Equal(t, "127.0.0.1", v)
	})

	t.Run("duplicate token rejected", func(t *testing.T) {
		s := newTestSession(uuid.NewString(), time.Hour)
		require.NoError(t, store.Create(ctx, s))

		other := newTestSession(s.Token, time.Hour)
		assert.ErrorIs(t, store.Create(ctx, other), session.ErrInvalidSession)

		got, err := store.Get(ctx, s.Token)
		require.NoError(t, err)
		assert.Equal(t, s.UserID, got.UserID)
	})

	t.Run("invalid session", func(t *testing.T) {
		assert.ErrorIs(t, store.Create(ctx, nil), session.ErrInvalidSession)
		assert.ErrorIs(t, store.Create(ctx, &session.Session{}), session.ErrInvalidSession)
	})

	t.Run("get missing", func(t *testing.T) {
		_, err := store.Get(ctx, "missing-"+uuid.NewString())
		assert.ErrorIs(t, err, session.ErrSessionNotFound)
	})

	t.Run("touch keeps user", func(t *testing.T) {
		s := newTestSession(uuid.NewString(), time.Hour)
		require.NoError(t, store.Create(ctx, s))

		activity := s.LastActivityAt.Add(10 * time.Minute)
		expires := s.ExpiresAt.Add(10 * time.Minute)
		require.NoError(t, store.Touch(ctx, s.Token, activity, expires))

		got, err := store.Get(ctx, s.Token)
		require.NoError(t, err)
		assert.Equal(t, s.UserID, got.UserID)
		assert.WithinDuration(t, activity, got.LastActivityAt, time.Millisecond)
		assert.WithinDuration(t, expires, got.ExpiresAt, time.Millisecond)
	})

	t.Run("touch missing", func(t *testing.T) {
		err := store.Touch(ctx, "missing-"+uuid.NewString(), time.Now(), time.Now().Add(time.Hour))
		assert.ErrorIs(t, err, session.ErrSessionNotFound)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		s := newTestSession(uuid.NewString(), time.Hour)
		require.NoError(t, store.Create(ctx, s))

		require.NoError(t, store.Delete(ctx, s.Token))
		require.NoError(t, store.Delete(ctx, s.Token))

		_, err := store.Get(ctx, s.Token)
		assert.ErrorIs(t, err, session.ErrSessionNotFound)
	})
}

func TestMemoryStore(t *testing.T) {
	t.Parallel()
	testStore(t, session.NewMemoryStore())
}

func TestMemoryStore_DeleteExpired(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := session.NewMemoryStore()

	live := newTestSession("live", time.Hour)
	stale := newTestSession("stale", time.Hour)
	stale.ExpiresAt = time.Now().Add(-time.Minute)
	require.NoError(t, store.Create(ctx, live))
	require.NoError(t, store.Create(ctx, stale))

	n, err := store.DeleteExpired(ctx, time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.Equal(t, 1, store.Len())

	_, err = store.Get(ctx, "live")
	assert.NoError(t, err)
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := session.NewMemoryStore()
	s := newTestSession("tok", time.Hour)
	require.NoError(t, store.Create(ctx, s))

	got, err := store.Get(ctx, "tok")
	require.NoError(t, err)
	got.UserID = uuid.New()
	got.Data["ip"] = "10.0.0.1"

	again, err := store.Get(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, s.UserID, again.UserID)
	assert.Equal(t, "127.0.0.1", again.Data["ip"])
}

func TestMongoStore(t *testing.T) {
	url := os.Getenv("MONGODB_URL")
	if url == "" {
		t.Skip("MONGODB_URL not set")
	}

	ctx := context.Background()
	db, err := mongo.NewWithDatabase(ctx, mongo.Config{
		ConnectionURL:  url,
		Database:       "todokit_session_test_" + bson.NewObjectID().Hex(),
		ConnectTimeout: 5 * time.Second,
		RetryAttempts:  1,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Drop(context.Background())
		_ = db.Client().Disconnect(context.Background())
	})

	store := session.NewMongoStore(db)
	require.NoError(t, store.EnsureIndexes(ctx))
	testStore(t, store)

	stale := newTestSession(uuid.NewString(), time.Hour)
	stale.ExpiresAt = time.Now().Add(-time.Minute)
	require.NoError(t, store.Create(ctx, stale))

	n, err := store.DeleteExpired(ctx, time.Now())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, int64(1))
}

func TestRedisStore(t *testing.T) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set")
	}

	opts, err := goredis.ParseURL(url)
	require.NoError(t, err)
	client := goredis.NewClient(opts)
	t.Cleanup(func() { _ = client.Close() })

	store := session.NewRedisStore(client, "todokit_test:"+uuid.NewString()+":")
	testStore(t, store)

	n, err := store.DeleteExpired(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Zero(t, n)
}
