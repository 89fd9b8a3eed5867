package mainloop

import (
	"context"
	"sync"
)

// Coalescer merges bursts of same-key tasks: only the latest callback
// posted for a key before the scheduled run executes.
type Coalescer struct {
	mu        sync.Mutex
	pending   map[string]bool
	callbacks map[string]func(ctx context.Context)
	post      func(ctx context.Context, fn func(ctx context.Context))
	destroyed bool
}

// NewCoalescer schedules merged tasks with post, typically Serializer.Post.
func NewCoalescer(post func(ctx context.Context, fn func(ctx context.Context))) *Coalescer {
	if post == nil {
		panic("mainloop.NewCoalescer: post function cannot be nil")
	}

	return &Coalescer{
		pending:   make(map[string]bool),
		callbacks: make(map[string]func(ctx context.Context)),
		post:      post,
	}
}

// Post replaces the pending callback for key, scheduling a run if none is queued.
func (c *Coalescer) Post(ctx context.Context, key string, fn func(ctx context.Context)) {
	if fn == nil || key == "" {
		return
	}

	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return
	}
	c.callbacks[key] = fn
	if c.pending[key] {
		c.mu.Unlock()
		return
	}
	c.pending[key] = true
	post := c.post
	c.mu.Unlock()

	post(ctx, func(ctx context.Context) {
		c.mu.Lock()
		if c.destroyed {
			delete(c.pending, key)
			delete(c.callbacks, key)
			c.mu.Unlock()
			return
		}
		fn := c.callbacks[key]
		delete(c.pending, key)
		delete(c.callbacks, key)
		c.mu.Unlock()

		if fn != nil {
			fn(ctx)
		}
	})
}

// Destroy drops pending work and ignores later posts.
func (c *Coalescer) Destroy() {
	c.mu.Lock()
	c.destroyed = true
	c.pending = map[string]bool{}
	c.callbacks = map[string]func(ctx context.Context){}
	c.mu.Unlock()
}
