package todo

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

type memoryRecord struct {
	todo Todo
	seq  uint64
}

// MemoryStorage implements Storage in process memory.
type MemoryStorage struct {
	mu    sync.RWMutex
	todos map[uuid.UUID]memoryRecord
	seq   uint64
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{todos: make(map[uuid.UUID]memoryRecord)}
}

func (s *MemoryStorage) Create(ctx context.Context, t *Todo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	s.todos[t.ID] = memoryRecord{todo: *t, seq: s.seq}
	return nil
}

func (s *MemoryStorage) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]Todo, error) {
	s.mu.RLock()
	records := make([]memoryRecord, 0)
	for _, r := range s.todos {
		if r.todo.OwnerID == ownerID {
			records = append(records, r)
		}
	}
	s.mu.RUnlock()

	slices.SortFunc(records, func(a, b memoryRecord) int {
		if c := b.todo.CreatedAt.Compare(a.todo.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.seq, a.seq)
	})

	todos := make([]Todo, 0, len(records))
	for _, r := range records {
		todos = append(todos, r.todo)
	}
	return todos, nil
}

func (s *MemoryStorage) GetByOwner(ctx context.Context, ownerID, id uuid.UUID) (*Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.todos[id]
	if !ok || r.todo.OwnerID != ownerID {
		return nil, ErrNotFound
	}
	t := r.todo
	return &t, nil
}

func (s *MemoryStorage) Update(ctx context.Context, ownerID, id uuid.UUID, p Patch, updatedAt time.Time) (*Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.todos[id]
	if !ok || r.todo.OwnerID != ownerID {
		return nil, ErrNotFound
	}
	r.todo = p.apply(r.todo)
	r.todo.UpdatedAt = updatedAt
	s.todos[id] = r

	t := r.todo
	return &t, nil
}

func (s *MemoryStorage) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.todos[id]
	if !ok || r.todo.OwnerID != ownerID {
		return ErrNotFound
	}
	delete(s.todos, id)
	return nil
}
