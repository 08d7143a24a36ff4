package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	mongox "github.com/dmitrymomot/todokit/pkg/mongo"
)

// DefaultCollection is the collection MongoStore uses unless overridden.
const DefaultCollection = "sessions"

type sessionDocument struct {
	Token          string         `bson:"_id"`
	UserID         string         `bson:"user_id"`
	Data           map[string]any `bson:"data,omitempty"`
	CreatedAt      time.Time      `bson:"created_at"`
	LastActivityAt time.Time      `bson:"last_activity_at"`
	ExpiresAt      time.Time      `bson:"expires_at"`
}

func (d sessionDocument) toSession() (*Session, error) {
	uid, err := uuid.Parse(d.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: bad user id in session document: %v", ErrStoreFailure, err)
	}
	return &Session{
		Token:          d.Token,
		UserID:         uid,
		Data:           d.Data,
		CreatedAt:      d.CreatedAt,
		LastActivityAt: d.LastActivityAt,
		ExpiresAt:      d.ExpiresAt,
	}, nil
}

// MongoStore persists sessions in MongoDB. The token is the document _id,
// so lookups hit the primary key index, and a TTL index on expires_at lets
// the server purge expired documents on its own.
type MongoStore struct {
	coll *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{coll: db.Collection(DefaultCollection)}
}

// EnsureIndexes declares the TTL index on expires_at and the user_id index.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	return mongox.EnsureIndexes(ctx, s.coll,
		mongo.IndexModel{
			Keys:    bson.D{{Key: "expires_at", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(0),
		},
		mongo.IndexModel{
			Keys: bson.D{{Key: "user_id", Value: 1}},
		},
	)
}

func (s *MongoStore) Create(ctx context.Context, sess *Session) error {
	if sess == nil || sess.Token == "" {
		return ErrInvalidSession
	}

	_, err := s.coll.InsertOne(ctx, sessionDocument{
		Token:          sess.Token,
		UserID:         sess.UserID.String(),
		Data:           sess.Data,
		CreatedAt:      sess.CreatedAt.UTC(),
		LastActivityAt: sess.LastActivityAt.UTC(),
		ExpiresAt:      sess.ExpiresAt.UTC(),
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrInvalidSession
		}
		return errors.Join(ErrStoreFailure, err)
	}
	return nil
}

func (s *MongoStore) Get(ctx context.Context, token string) (*Session, error) {
	var doc sessionDocument
	if err := s.coll.FindOne(ctx, bson.M{"_id": token}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrSessionNotFound
		}
		return nil, errors.Join(ErrStoreFailure, err)
	}
	return doc.toSession()
}

// Touch updates only the timestamps; the single-document update is atomic.
func (s *MongoStore) Touch(ctx context.Context, token string, lastActivity, expiresAt time.Time) error {
	res, err := s.coll.UpdateOne(ctx,
		bson.M{"_id": token},
		bson.M{"$set": bson.M{
			"last_activity_at": lastActivity.UTC(),
			"expires_at":       expiresAt.UTC(),
		}},
	)
	if err != nil {
		return errors.Join(ErrStoreFailure, err)
	}
	if res.MatchedCount == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func (s *MongoStore) Delete(ctx context.Context, token string) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": token}); err != nil {
		return errors.Join(ErrStoreFailure, err)
	}
	return nil
}

// DeleteExpired complements the TTL monitor, which only runs once a minute.
func (s *MongoStore) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := s.coll.DeleteMany(ctx, bson.M{"expires_at": bson.M{"$lte": now.UTC()}})
	if err != nil {
		return 0, errors.Join(ErrStoreFailure, err)
	}
	return res.DeletedCount, nil
}
