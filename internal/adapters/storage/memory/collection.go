package memory

import (
	"context"
	"sync"
)

// Collection es un Store en memoria, para tests y modo dev.
// Mismo contrato que jsonfile: load-all / replace-all, sin nada más.
type Collection[T any] struct {
	mu    sync.RWMutex
	items []T
}

func NewCollection[T any]() *Collection[T] {
	return &Collection[T]{items: []T{}}
}

func (c *Collection[T]) LoadAll(ctx context.Context) ([]T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.items))
	copy(out, c.items)
	return out, nil
}

func (c *Collection[T]) ReplaceAll(ctx context.Context, items []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make([]T, len(items))
	copy(c.items, items)
	return nil
}
