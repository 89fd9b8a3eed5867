package mainloop

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializerRunsNestedCallsInline(t *testing.T) {
	s := NewSerializer()
	defer s.Close()

	var order []string
	err := s.Run(context.Background(), func(ctx context.Context) error {
		order = append(order, "outer")
		require.True(t, s.InWriter(ctx))
		return s.Run(ctx, func(context.Context) error {
			order = append(order, "inner")
			return nil
		})
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"outer", "inner"}, order)
}

func TestSerializerOrdersConcurrentCallers(t *testing.T) {
	s := NewSerializer()
	defer s.Close()

	var (
		mu      sync.Mutex
		running int
		maxSeen int
		wg      sync.WaitGroup
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Run(context.Background(), func(context.Context) error {
				mu.Lock()
				running++
				if running > maxSeen {
					maxSeen = running
				}
				mu.Unlock()

				time.Sleep(time.Millisecond)

				mu.Lock()
				running--
				mu.Unlock()
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxSeen, "tasks must never overlap")
}

func TestSerializerPropagatesErrors(t *testing.T) {
	s := NewSerializer()
	defer s.Close()

	boom := errors.New("boom")
	err := s.Run(context.Background(), func(context.Context) error { return boom })

	assert.ErrorIs(t, err, boom)
}

func TestSerializerRejectsWorkAfterClose(t *testing.T) {
	s := NewSerializer()
	s.Close()

	err := s.Run(context.Background(), func(context.Context) error { return nil })

	assert.ErrorIs(t, err, ErrClosed)
}

func TestSerializerPostFeedsCoalescer(t *testing.T) {
	s := NewSerializer()
	c := NewCoalescer(s.Post)

	done := make(chan int, 1)
	c.Post(context.Background(), "container-layout", func(ctx context.Context) {
		if s.InWriter(ctx) {
			done <- 1
		}
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("coalesced task did not run on the writer")
	}
	s.Close()
}
