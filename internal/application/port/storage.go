package port

import (
	"context"

	"github.com/bnema/workbench/internal/domain/entity"
)

// StorageReader reads persisted layout values.
type StorageReader interface {
	// Get returns the stored string for key in scope. ok is false when absent.
	Get(ctx context.Context, key string, scope entity.StorageScope) (value string, ok bool, err error)

	// IsNew reports whether nothing had ever been stored in scope before this session.
	IsNew(ctx context.Context, scope entity.StorageScope) (bool, error)
}

// StorageWriter persists layout values.
type StorageWriter interface {
	Store(ctx context.Context, key, value string, scope entity.StorageScope, target entity.StorageTarget) error
	Remove(ctx context.Context, key string, scope entity.StorageScope) error
}

// StorageWatcher notifies about values changed by another writer of the same
// storage (for example a second window sharing the profile).
type StorageWatcher interface {
	OnDidChangeValue(scope entity.StorageScope, fn func(ctx context.Context, key string)) func()
}

// Storage is the full storage capability used by the layout state model.
type Storage interface {
	StorageReader
	StorageWriter
	StorageWatcher
}
