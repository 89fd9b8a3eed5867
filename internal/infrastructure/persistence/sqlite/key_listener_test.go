package sqlite_test

import "context"

//go:generate mockgen -source=key_listener_test.go -destination=mock_key_listener_test.go -package=sqlite_test

// KeyListener receives the keys reported by OnDidChangeValue.
type KeyListener interface {
	KeyChanged(ctx context.Context, key string)
}
