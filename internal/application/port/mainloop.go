package port

import "context"

// TaskQueue runs layout mutations one at a time on a single writer.
// Work submitted from a context that already belongs to the writer runs inline.
type TaskQueue interface {
	Run(ctx context.Context, fn func(ctx context.Context) error) error
	Post(ctx context.Context, fn func(ctx context.Context))
	InWriter(ctx context.Context) bool
}
