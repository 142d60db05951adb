package store

import (
	"context"
	"fmt"
	"sync"

	"cookbook/internal/cookbook/models"
	"cookbook/pkg/platform/sentinel"
)

// Reader is the read-only view handed to View callbacks. Entries returned by
// Lookup must not be modified.
type Reader interface {
	Lookup(name string) (*models.Entry, bool)
	Version() uint64
}

// Error Contract:
// - Create and Insert return models.ErrDuplicateName (also sentinel.ErrAlreadyUsed) for a
//   taken name, before the payload is built or validated
// - Create and Insert return the entry's validation error unchanged
// - FindByName returns models.ErrNotFound (also sentinel.ErrNotFound) for unknown names
//
// InMemory is the process-wide cookbook registry. Names are unique across
// both entry kinds.
type InMemory struct {
	mu      sync.RWMutex
	entries map[string]*models.Entry
	version uint64
}

// NewInMemory constructs an empty registry.
func NewInMemory() *InMemory {
	return &InMemory{entries: make(map[string]*models.Entry)}
}

// Create registers the entry produced by build under name. The name check
// runs first, so a taken name wins over any payload error from build or
// validation. Everything happens under one write lock.
func (s *InMemory) Create(_ context.Context, name string, build func() (*models.Entry, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkAvailable(name); err != nil {
		return err
	}
	entry, err := build()
	if err != nil {
		return err
	}
	if err := entry.Validate(); err != nil {
		return err
	}
	if entry.Name != name {
		if err := s.checkAvailable(entry.Name); err != nil {
			return err
		}
	}
	s.entries[entry.Name] = entry.Clone()
	s.version++
	return nil
}

// Insert stores a copy of an already built entry.
func (s *InMemory) Insert(ctx context.Context, entry *models.Entry) error {
	return s.Create(ctx, entry.Name, func() (*models.Entry, error) { return entry, nil })
}

func (s *InMemory) checkAvailable(name string) error {
	if _, exists := s.entries[name]; exists {
		return fmt.Errorf("%w: %q: %w", models.ErrDuplicateName, name, sentinel.ErrAlreadyUsed)
	}
	return nil
}

// FindByName is the point lookup for callers outside resolution, which
// reads through View instead. It returns a copy.
func (s *InMemory) FindByName(_ context.Context, name string) (*models.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if entry, ok := s.entries[name]; ok {
		return entry.Clone(), nil
	}
	return nil, fmt.Errorf("%w: %q: %w", models.ErrNotFound, name, sentinel.ErrNotFound)
}

// View runs fn against a consistent snapshot: no insert or reset can land
// while fn is executing.
func (s *InMemory) View(_ context.Context, fn func(r Reader) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(snapshot{entries: s.entries, version: s.version})
}

// Reset drops every entry. Calling it on an empty registry is a no-op apart
// from bumping the version.
func (s *InMemory) Reset(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]*models.Entry)
	s.version++
	return nil
}

func (s *InMemory) Count(_ context.Context) (models.Counts, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var c models.Counts
	for _, e := range s.entries {
		switch e.Kind {
		case models.KindIngredient:
			c.Ingredients++
		case models.KindRecipe:
			c.Recipes++
		}
	}
	return c, nil
}

// Version increases on every successful mutation.
func (s *InMemory) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

type snapshot struct {
	entries map[string]*models.Entry
	version uint64
}

func (s snapshot) Lookup(name string) (*models.Entry, bool) {
	e, ok := s.entries[name]
	return e, ok
}

func (s snapshot) Version() uint64 {
	return s.version
}
