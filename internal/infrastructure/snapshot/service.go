// Package snapshot saves the layout state in the background after changes.
package snapshot

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/bnema/workbench/internal/logging"
)

const (
	defaultInterval   = 5 * time.Second
	defaultRetries    = 2
	defaultRetryDelay = 100 * time.Millisecond
)

// StateSaver flushes the layout state to storage.
type StateSaver interface {
	WillSaveState(ctx context.Context) error
}

// Service handles debounced layout state saves.
type Service struct {
	saver    StateSaver
	interval time.Duration

	retries    int
	retryDelay time.Duration

	mu     sync.Mutex
	timer  *time.Timer
	dirty  bool
	ready  bool // true once the stored layout has been restored
	ctx    context.Context
	cancel context.CancelFunc
}

// NewService creates a new snapshot service. A non-positive interval uses
// five seconds.
func NewService(saver StateSaver, interval time.Duration) *Service {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Service{
		saver:      saver,
		interval:   interval,
		retries:    defaultRetries,
		retryDelay: defaultRetryDelay,
	}
}

// Start begins watching for dirty state.
func (s *Service) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ctx, s.cancel = context.WithCancel(ctx)
	logging.FromContext(ctx).Debug().Dur("interval", s.interval).Msg("layout autosave started")
}

// SetReady marks the service as ready to save. Call it after the layout has
// been restored so defaults never overwrite the stored state. A change marked
// before is saved right away.
func (s *Service) SetReady() {
	s.mu.Lock()
	s.ready = true
	pending := s.dirty
	ctx := s.ctx
	s.mu.Unlock()

	if pending && ctx != nil {
		go func() {
			if err := s.save(ctx); err != nil {
				logging.FromContext(ctx).Error().Err(err).Msg("failed to save pending layout state")
			}
		}()
	}
}

// Stop stops the service and saves final state.
func (s *Service) Stop(ctx context.Context) error {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()

	return s.SaveNow(ctx)
}

// MarkDirty signals that the layout changed. Saves are debounced.
func (s *Service) MarkDirty() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dirty = true

	if s.timer != nil {
		s.timer.Stop()
	}

	s.timer = time.AfterFunc(s.interval, func() {
		s.mu.Lock()
		ctx := s.ctx
		s.mu.Unlock()

		if ctx == nil || ctx.Err() != nil {
			return
		}

		if err := s.save(ctx); err != nil {
			logging.FromContext(ctx).Error().Err(err).Msg("failed to autosave layout state")
		}
	})
}

// SaveNow saves immediately when something changed.
func (s *Service) SaveNow(ctx context.Context) error {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	dirty := s.dirty
	s.mu.Unlock()

	if !dirty {
		return nil
	}

	return s.save(ctx)
}

func (s *Service) save(ctx context.Context) error {
	s.mu.Lock()
	if !s.ready {
		// Keep the change pending until SetReady.
		s.mu.Unlock()
		return nil
	}
	s.dirty = false
	s.mu.Unlock()

	var err error
	for attempt := 0; attempt <= s.retries; attempt++ {
		if attempt > 0 {
			logging.FromContext(ctx).Debug().Int("attempt", attempt).Err(err).Msg("retrying layout save")
			time.Sleep(s.retryDelay)
		}
		err = s.saver.WillSaveState(ctx)
		if err == nil || !isBusy(err) {
			break
		}
	}

	if err != nil {
		s.mu.Lock()
		s.dirty = true
		s.mu.Unlock()
	}
	return err
}

// isBusy reports whether another connection held the database lock.
func isBusy(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "database is locked") || strings.Contains(msg, "SQLITE_BUSY")
}
