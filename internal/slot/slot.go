package slot

import (
	"context"
	"errors"
	"sync"
)

var ErrNotFound = errors.New("slot not found")

// Repository provides access to named durable slots. Each slot holds a
// single text value that survives restarts (the serialized content
// document, admin credentials, session marker and language choice).
type Repository interface {
	Read(ctx context.Context, name string) (string, error)
	Write(ctx context.Context, name, value string) error
	Delete(ctx context.Context, name string) error
}

// InMemoryRepository is a simple in-memory implementation useful for tests
// and local development without a database.
type InMemoryRepository struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{values: make(map[string]string)}
}

func (r *InMemoryRepository) Read(_ context.Context, name string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	value, ok := r.values[name]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

func (r *InMemoryRepository) Write(_ context.Context, name, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[name] = value
	return nil
}

func (r *InMemoryRepository) Delete(_ context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.values, name)
	return nil
}
