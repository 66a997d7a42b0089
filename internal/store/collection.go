package store

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"
)

// Collection keeps a named, homogeneous list of records in memory and
// mirrors the full list into the KeyValue substrate after every mutation.
// Insertion order is preserved. The write-through is not transactional with
// the in-memory change: if it fails the substrate goes stale but the
// running process stays correct until the next Load.
type Collection[T any] struct {
	name   string
	kv     KeyValue
	idOf   func(T) string
	logger zerolog.Logger

	mu    sync.RWMutex
	items []T
}

// NewCollection builds a collection persisted under the given substrate key.
// idOf extracts the record identifier used by Update and Delete.
func NewCollection[T any](name string, kv KeyValue, idOf func(T) string, logger zerolog.Logger) *Collection[T] {
	return &Collection[T]{
		name:   name,
		kv:     kv,
		idOf:   idOf,
		logger: logger.With().Str("collection", name).Logger(),
		items:  []T{},
	}
}

// Load reads the persisted collection. An absent key or malformed payload
// yields an empty collection; neither is fatal. Only a substrate transport
// failure is returned.
func (c *Collection[T]) Load(ctx context.Context) error {
	raw, err := c.kv.Get(ctx, c.name)
	if err != nil {
		if err == ErrKeyNotFound {
			return nil
		}
		return err
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		c.logger.Warn().Err(err).Msg("persisted collection is malformed, starting empty")
		return nil
	}

	c.mu.Lock()
	if items == nil {
		items = []T{}
	}
	c.items = items
	c.mu.Unlock()
	return nil
}

// List returns a copy of the current collection in insertion order.
func (c *Collection[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Get returns the record with the given id, if present.
func (c *Collection[T]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, item := range c.items {
		if c.idOf(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Insert builds a new record under the collection lock (so id assignment can
// inspect the current items), appends it and writes through.
func (c *Collection[T]) Insert(ctx context.Context, build func(items []T) T) T {
	c.mu.Lock()
	defer c.mu.Unlock()

	item := build(c.items)
	c.items = append(c.items, item)
	c.persistLocked(ctx)
	return item
}

// Append adds the given records and writes through once.
func (c *Collection[T]) Append(ctx context.Context, items ...T) {
	if len(items) == 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = append(c.items, items...)
	c.persistLocked(ctx)
}

// Update applies merge to the matching record. A missing id is a no-op, not
// an error; the return value reports whether anything changed.
func (c *Collection[T]) Update(ctx context.Context, id string, merge func(*T)) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.idOf(c.items[i]) == id {
			merge(&c.items[i])
			c.persistLocked(ctx)
			return true
		}
	}
	return false
}

// Mutate applies fn to a copy of the matching record under the collection
// lock. If fn returns an error nothing is changed or persisted, so guarded
// state transitions stay atomic even across concurrent requests.
func (c *Collection[T]) Mutate(ctx context.Context, id string, fn func(*T) error) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.idOf(c.items[i]) == id {
			updated := c.items[i]
			if err := fn(&updated); err != nil {
				var zero T
				return zero, err
			}
			c.items[i] = updated
			c.persistLocked(ctx)
			return updated, nil
		}
	}
	var zero T
	return zero, ErrRecordNotFound
}

// Delete removes the matching record. A missing id is a no-op.
func (c *Collection[T]) Delete(ctx context.Context, id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.idOf(c.items[i]) == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			c.persistLocked(ctx)
			return true
		}
	}
	return false
}

func (c *Collection[T]) persistLocked(ctx context.Context) {
	raw, err := json.Marshal(c.items)
	if err != nil {
		c.logger.Error().Err(err).Msg("failed to serialise collection")
		return
	}
	if err := c.kv.Set(ctx, c.name, string(raw)); err != nil {
		c.logger.Error().Err(err).Msg("write-through failed, substrate is stale")
	}
}
