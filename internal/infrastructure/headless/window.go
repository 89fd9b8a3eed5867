package headless

import (
	"context"
	"sync"

	"github.com/bnema/workbench/internal/application/port"
	"github.com/bnema/workbench/internal/domain/entity"
	"github.com/bnema/workbench/internal/logging"
)

var (
	_ port.WindowHost                = (*Window)(nil)
	_ port.PartFocus                 = (*Focus)(nil)
	_ port.NotificationFilterService = (*Notifications)(nil)
)

// Window is a window without a native surface.
type Window struct {
	mu         sync.RWMutex
	fullscreen bool
	dpr        float64

	changes emitter[func(ctx context.Context, fullscreen bool)]
}

// NewWindow returns a windowed host with the given device pixel ratio.
func NewWindow(devicePixelRatio float64) *Window {
	if devicePixelRatio <= 0 {
		devicePixelRatio = 1
	}
	return &Window{dpr: devicePixelRatio}
}

// IsFullscreen reports the fullscreen state.
func (w *Window) IsFullscreen() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.fullscreen
}

// ToggleFullScreen flips fullscreen and notifies listeners.
func (w *Window) ToggleFullScreen(ctx context.Context) error {
	w.SetFullscreen(ctx, !w.IsFullscreen())
	return nil
}

// SetFullscreen sets the fullscreen state, notifying only on change.
func (w *Window) SetFullscreen(ctx context.Context, fullscreen bool) {
	w.mu.Lock()
	changed := w.fullscreen != fullscreen
	w.fullscreen = fullscreen
	w.mu.Unlock()

	if !changed {
		return
	}
	logging.FromContext(ctx).Debug().Bool("fullscreen", fullscreen).Msg("window fullscreen changed")
	for _, fn := range w.changes.snapshot() {
		fn(ctx, fullscreen)
	}
}

// DevicePixelRatio returns the ratio of device pixels to layout pixels.
func (w *Window) DevicePixelRatio() float64 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.dpr
}

// OnDidChangeFullscreen registers fn for fullscreen changes.
func (w *Window) OnDidChangeFullscreen(fn func(ctx context.Context, fullscreen bool)) func() {
	return w.changes.add(fn)
}

// Focus remembers which part holds keyboard focus.
type Focus struct {
	mu      sync.RWMutex
	focused entity.Part
}

// NewFocus returns a focus tracker with the editor focused.
func NewFocus() *Focus {
	return &Focus{focused: entity.PartEditor}
}

// HasFocus reports whether part is focused.
func (f *Focus) HasFocus(part entity.Part) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.focused == part
}

// Focus moves focus to part.
func (f *Focus) Focus(ctx context.Context, part entity.Part) {
	f.mu.Lock()
	f.focused = part
	f.mu.Unlock()

	logging.FromContext(ctx).Trace().Str("part", part.ShortName()).Msg("focus")
}

// Focused returns the focused part.
func (f *Focus) Focused() entity.Part {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.focused
}

// Notifications holds the do-not-disturb filter.
type Notifications struct {
	mu     sync.RWMutex
	filter entity.NotificationFilter
}

// NewNotifications returns a filter that lets everything through.
func NewNotifications() *Notifications {
	return &Notifications{filter: entity.NotificationFilterOff}
}

// Filter returns the current filter.
func (n *Notifications) Filter() entity.NotificationFilter {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.filter
}

// SetFilter replaces the filter.
func (n *Notifications) SetFilter(filter entity.NotificationFilter) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.filter = filter
}
