// Package headless provides in-memory implementations of the workbench
// services the layout engine drives. They back the terminal front-end and
// the tests; every type is safe for concurrent use.
package headless

import "sync"

// emitter keeps listeners in registration order. Listeners are called
// outside the lock so they may call back into the emitting service.
type emitter[F any] struct {
	mu     sync.Mutex
	nextID int
	fns    []emitterEntry[F]
}

type emitterEntry[F any] struct {
	id int
	fn F
}

func (e *emitter[F]) add(fn F) func() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.nextID++
	id := e.nextID
	e.fns = append(e.fns, emitterEntry[F]{id: id, fn: fn})

	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		for i, entry := range e.fns {
			if entry.id == id {
				e.fns = append(e.fns[:i], e.fns[i+1:]...)
				return
			}
		}
	}
}

func (e *emitter[F]) snapshot() []F {
	e.mu.Lock()
	defer e.mu.Unlock()

	fns := make([]F, len(e.fns))
	for i, entry := range e.fns {
		fns[i] = entry.fn
	}
	return fns
}
