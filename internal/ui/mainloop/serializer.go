// Package mainloop runs layout mutations on a single writer goroutine and
// merges bursts of same-key requests.
package mainloop

import (
	"context"
	"errors"
	"sync"
)

// ErrClosed is returned by Run after Close.
var ErrClosed = errors.New("mainloop: serializer closed")

type writerKey struct{}

type task struct {
	ctx  context.Context
	fn   func(ctx context.Context) error
	done chan error
}

// Serializer owns a single goroutine that executes every submitted task in
// submission order. Tasks submitted from inside a running task execute
// inline, so nested operations and listeners never deadlock.
type Serializer struct {
	tasks chan task
	quit  chan struct{}
	wg    sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

// NewSerializer starts the writer goroutine.
func NewSerializer() *Serializer {
	s := &Serializer{
		tasks: make(chan task, 64),
		quit:  make(chan struct{}),
	}
	s.wg.Add(1)
	go s.loop()
	return s
}

func (s *Serializer) loop() {
	defer s.wg.Done()
	for {
		select {
		case t := <-s.tasks:
			s.execute(t)
		case <-s.quit:
			// Drain what was accepted before Close.
			for {
				select {
				case t := <-s.tasks:
					s.execute(t)
				default:
					return
				}
			}
		}
	}
}

func (s *Serializer) execute(t task) {
	ctx := context.WithValue(t.ctx, writerKey{}, s)
	err := t.fn(ctx)
	if t.done != nil {
		t.done <- err
	}
}

// InWriter reports whether ctx belongs to a task running on this serializer.
func (s *Serializer) InWriter(ctx context.Context) bool {
	owner, _ := ctx.Value(writerKey{}).(*Serializer)
	return owner == s
}

// Run executes fn on the writer goroutine and waits for it. When ctx already
// belongs to the writer, fn runs inline.
func (s *Serializer) Run(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.InWriter(ctx) {
		return fn(ctx)
	}

	done := make(chan error, 1)
	if err := s.submit(task{ctx: context.WithoutCancel(ctx), fn: fn, done: done}); err != nil {
		return err
	}

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Post queues fn without waiting. It is dropped after Close.
func (s *Serializer) Post(ctx context.Context, fn func(ctx context.Context)) {
	if s.InWriter(ctx) {
		// Still deferred: Post never runs work synchronously.
		go func() {
			_ = s.submit(task{ctx: context.WithoutCancel(ctx), fn: func(ctx context.Context) error {
				fn(ctx)
				return nil
			}})
		}()
		return
	}
	_ = s.submit(task{ctx: context.WithoutCancel(ctx), fn: func(ctx context.Context) error {
		fn(ctx)
		return nil
	}})
}

func (s *Serializer) submit(t task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	// Blocks while the queue is full; the writer never submits to itself.
	s.tasks <- t
	return nil
}

// Close stops accepting work, runs what is queued and waits for the writer to exit.
func (s *Serializer) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	close(s.quit)
	s.mu.Unlock()
	s.wg.Wait()
}
