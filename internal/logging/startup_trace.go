package logging

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Milestone is one timing checkpoint of a workbench bootstrap.
type Milestone struct {
	Name    string
	Elapsed time.Duration // since the trace started
	Delta   time.Duration // since the previous milestone
}

// StartupTrace records bootstrap milestones (config loaded, storage opened,
// layout restored) and logs them at debug level.
// A nil or disabled trace ignores every call.
type StartupTrace struct {
	mu         sync.Mutex
	t0         time.Time
	now        func() time.Time
	logger     *zerolog.Logger
	milestones []Milestone
	finished   bool
}

// NewStartupTrace starts a trace. It is enabled only when logger would emit
// debug events.
func NewStartupTrace(logger *zerolog.Logger) *StartupTrace {
	return newStartupTrace(logger, time.Now)
}

func newStartupTrace(logger *zerolog.Logger, now func() time.Time) *StartupTrace {
	if logger == nil || logger.GetLevel() > zerolog.DebugLevel {
		return nil
	}
	return &StartupTrace{
		t0:         now(),
		now:        now,
		logger:     logger,
		milestones: make([]Milestone, 0, 8),
	}
}

// Mark records a milestone.
func (st *StartupTrace) Mark(name string) {
	if st == nil {
		return
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	if st.finished {
		return
	}

	elapsed := st.now().Sub(st.t0)
	m := Milestone{Name: name, Elapsed: elapsed}
	if n := len(st.milestones); n > 0 {
		m.Delta = elapsed - st.milestones[n-1].Elapsed
	}
	st.milestones = append(st.milestones, m)

	event := st.logger.Debug().
		Str("milestone", m.Name).
		Int64("t_ms", m.Elapsed.Milliseconds())
	if m.Delta > 0 {
		event = event.Int64("delta_ms", m.Delta.Milliseconds())
	}
	event.Msg("startup_trace")
}

// Finish stops the trace and logs a one-line summary.
func (st *StartupTrace) Finish() {
	if st == nil {
		return
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	if st.finished {
		return
	}
	st.finished = true

	st.logger.Debug().
		Int64("total_ms", st.now().Sub(st.t0).Milliseconds()).
		Str("milestones", st.summary()).
		Msg("startup_trace: workbench ready")
}

// Milestones returns a copy of the recorded milestones.
func (st *StartupTrace) Milestones() []Milestone {
	if st == nil {
		return nil
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	return append([]Milestone(nil), st.milestones...)
}

// summary must be called with st.mu held.
func (st *StartupTrace) summary() string {
	parts := make([]string, 0, len(st.milestones))
	for _, m := range st.milestones {
		parts = append(parts, fmt.Sprintf("%s:%d", m.Name, m.Elapsed.Milliseconds()))
	}
	return strings.Join(parts, ",")
}
