package headless

import (
	"context"
	"maps"
	"sync"

	"github.com/bnema/workbench/internal/application/port"
	"github.com/bnema/workbench/internal/domain/entity"
)

var _ port.Storage = (*MemoryStorage)(nil)

// MemoryStorage is a port.Storage kept in memory. A scope counts as new
// when it held no value at construction time.
type MemoryStorage struct {
	mu       sync.RWMutex
	values   map[entity.StorageScope]map[string]string
	targets  map[string]entity.StorageTarget
	existing map[entity.StorageScope]bool

	watchers map[entity.StorageScope]*emitter[func(ctx context.Context, key string)]
}

// NewMemoryStorage returns a storage seeded with values per scope.
func NewMemoryStorage(seed map[entity.StorageScope]map[string]string) *MemoryStorage {
	s := &MemoryStorage{
		values:   make(map[entity.StorageScope]map[string]string),
		targets:  make(map[string]entity.StorageTarget),
		existing: make(map[entity.StorageScope]bool),
		watchers: make(map[entity.StorageScope]*emitter[func(ctx context.Context, key string)]),
	}
	for scope, values := range seed {
		if len(values) == 0 {
			continue
		}
		s.values[scope] = maps.Clone(values)
		s.existing[scope] = true
	}
	return s
}

// Get returns the value stored for key in scope.
func (s *MemoryStorage) Get(_ context.Context, key string, scope entity.StorageScope) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[scope][key]
	return v, ok, nil
}

// IsNew reports whether scope was empty when the storage was created.
func (s *MemoryStorage) IsNew(_ context.Context, scope entity.StorageScope) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.existing[scope], nil
}

// Store saves value and notifies the scope watchers when it changed.
func (s *MemoryStorage) Store(
	ctx context.Context,
	key, value string,
	scope entity.StorageScope,
	target entity.StorageTarget,
) error {
	s.mu.Lock()
	values := s.values[scope]
	if values == nil {
		values = make(map[string]string)
		s.values[scope] = values
	}
	old, had := values[key]
	values[key] = value
	s.targets[key] = target
	s.mu.Unlock()

	if !had || old != value {
		s.notify(ctx, scope, key)
	}
	return nil
}

// Remove deletes key from scope.
func (s *MemoryStorage) Remove(ctx context.Context, key string, scope entity.StorageScope) error {
	s.mu.Lock()
	_, had := s.values[scope][key]
	delete(s.values[scope], key)
	s.mu.Unlock()

	if had {
		s.notify(ctx, scope, key)
	}
	return nil
}

// OnDidChangeValue registers fn for changes in scope.
func (s *MemoryStorage) OnDidChangeValue(scope entity.StorageScope, fn func(ctx context.Context, key string)) func() {
	return s.watcher(scope).add(fn)
}

// Snapshot returns a copy of every stored value of scope.
func (s *MemoryStorage) Snapshot(scope entity.StorageScope) map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.values[scope])
}

// Target returns the target key was last stored with.
func (s *MemoryStorage) Target(key string) (entity.StorageTarget, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.targets[key]
	return t, ok
}

func (s *MemoryStorage) watcher(scope entity.StorageScope) *emitter[func(ctx context.Context, key string)] {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.watchers[scope]
	if !ok {
		w = &emitter[func(ctx context.Context, key string)]{}
		s.watchers[scope] = w
	}
	return w
}

func (s *MemoryStorage) notify(ctx context.Context, scope entity.StorageScope, key string) {
	for _, fn := range s.watcher(scope).snapshot() {
		fn(ctx, key)
	}
}
