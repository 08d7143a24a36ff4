package todo

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

// Collection is the collection MongoStorage keeps todos in.
const Collection = "todos"

type todoDocument struct {
	ID        string    `bson:"_id"`
	OwnerID   string    `bson:"owner_id"`
	Title     string    `bson:"title"`
	Content   string    `bson:"content"`
	Completed bool      `bson:"completed"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

func newTodoDocument(t *Todo) todoDocument {
	return todoDocument{
		ID:        t.ID.String(),
		OwnerID:   t.OwnerID.String(),
		Title:     t.Title,
		Content:   t.Content,
		Completed: t.Completed,
		CreatedAt: t.CreatedAt.UTC(),
		UpdatedAt: t.UpdatedAt.UTC(),
	}
}

func (d todoDocument) toTodo() (Todo, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return Todo{}, fmt.Errorf("%w: bad todo id %q: %v", ErrStorageFailure, d.ID, err)
	}
	owner, err := uuid.Parse(d.OwnerID)
	if err != nil {
		return Todo{}, fmt.Errorf("%w: bad owner id %q: %v", ErrStorageFailure, d.OwnerID, err)
	}
	return Todo{
		ID:        id,
		OwnerID:   owner,
		Title:     d.Title,
		Content:   d.Content,
		Completed: d.Completed,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}, nil
}

// ownedBy is the filter every query goes through.
func ownedBy(ownerID, id uuid.UUID) bson.M {
	return bson.M{"_id": id.String(), "owner_id": ownerID.String()}
}

// MongoStorage implements Storage on MongoDB.
type MongoStorage struct {
	coll *mongo.Collection
}

func NewMongoStorage(db *mongo.Database) *MongoStorage {
	return &MongoStorage{coll: db.Collection(Collection)}
}

// EnsureIndexes creates the {owner_id, created_at} index backing ListByOwner.
func (s *MongoStorage) EnsureIndexes(ctx context.Context) error {
	return mongox.EnsureIndexes(ctx, s.coll, mongo.IndexModel{
		Keys: bson.D{{Key: "owner_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
}

func (s *MongoStorage) Create(ctx context.Context, t *Todo) error {
	if _, err := s.coll.InsertOne(ctx, newTodoDocument(t)); err != nil {
		return errors.Join(ErrStorageFailure, err)
	}
	return nil
}

func (s *MongoStorage) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]Todo, error) {
	cur, err := s.coll.Find(ctx,
		bson.M{"owner_id": ownerID.String()},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}),
	)
	if err != nil {
		return nil, errors.Join(ErrStorageFailure, err)
	}

	var docs []todoDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, errors.Join(ErrStorageFailure, err)
	}

	todos := make([]Todo, 0, len(docs))
	for _, d := range docs {
		t, err := d.toTodo()
		if err != nil {
			return nil, err
		}
		todos = append(todos, t)
	}
	return todos, nil
}

func (s *MongoStorage) GetByOwner(ctx context.Context, ownerID, id uuid.UUID) (*Todo, error) {
	var doc todoDocument
	if err := s.coll.FindOne(ctx, ownedBy(ownerID, id)).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, errors.Join(ErrStorageFailure, err)
	}
	t, err := doc.toTodo()
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *MongoStorage) Update(ctx context.Context, ownerID, id uuid.UUID, p Patch, updatedAt time.Time) (*Todo, error) {
	set := bson.M{"updated_at": updatedAt.UTC()}
	if p.Title != nil {
		set["title"] = *p.Title
	}
	if p.Content != nil {
		set["content"] = *p.Content
	}
	if p.Completed != nil {
		set["completed"] = *p.Completed
	}

	var doc todoDocument
	err := s.coll.FindOneAndUpdate(ctx,
		ownedBy(ownerID, id),
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, errors.Join(ErrStorageFailure, err)
	}

	t, err := doc.toTodo()
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *MongoStorage) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	res, err := s.coll.DeleteOne(ctx, ownedBy(ownerID, id))
	if err != nil {
		return errors.Join(ErrStorageFailure, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
