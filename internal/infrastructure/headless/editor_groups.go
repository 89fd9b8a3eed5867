package headless

import (
	"context"
	"sync"

	"github.com/bnema/workbench/internal/application/port"
	"github.com/bnema/workbench/internal/domain/entity"
)

var _ port.EditorGroupService = (*EditorGroups)(nil)

// minGroupWidth is the narrowest an editor group may get.
const minGroupWidth = 50

// EditorGroups models editor groups laid out side by side. The active
// group can only change width, and only when it has a neighbour to trade
// space with.
type EditorGroups struct {
	mu              sync.RWMutex
	widths          []int
	height          int
	active          int
	maximized       bool
	centered        bool
	visibleEditors  []entity.VisibleEditor
	lineNumbersHide bool
	tabsMode        entity.EditorTabsMode

	restored     chan struct{}
	restoredOnce sync.Once

	changes emitter[func(ctx context.Context, kind entity.EditorGroupEventKind)]
}

// NewEditorGroups returns a single group. Unless restored is true,
// WhenRestored blocks until MarkRestored is called.
func NewEditorGroups(restored bool) *EditorGroups {
	e := &EditorGroups{
		widths:   []int{0},
		tabsMode: entity.EditorTabsMultiple,
		restored: make(chan struct{}),
	}
	if restored {
		e.MarkRestored()
	}
	return e
}

// GroupCount returns the number of groups.
func (e *EditorGroups) GroupCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.widths)
}

// ActiveGroupSize returns the size of the active group.
func (e *EditorGroups) ActiveGroupSize() entity.Dimension {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return entity.Dimension{Width: e.widths[e.active], Height: e.height}
}

// ResizeActiveGroup resizes the active group, trading width with its right
// neighbour (or left for the last group).
func (e *EditorGroups) ResizeActiveGroup(size entity.Dimension) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.widths) < 2 {
		return
	}
	neighbour := e.active + 1
	if neighbour == len(e.widths) {
		neighbour = e.active - 1
	}

	total := e.widths[e.active] + e.widths[neighbour]
	width := clampInt(size.Width, minGroupWidth, total-minGroupWidth)
	e.widths[e.active] = width
	e.widths[neighbour] = total - width
}

// Layout returns the groups as one horizontal row.
func (e *EditorGroups) Layout() entity.EditorGroupsLayout {
	e.mu.RLock()
	defer e.mu.RUnlock()

	layout := entity.EditorGroupsLayout{Orientation: entity.OrientationHorizontal}
	for _, w := range e.widths {
		layout.Groups = append(layout.Groups, entity.EditorGroupLayout{Size: w})
	}
	return layout
}

// HasMaximizedGroup reports whether one group fills the editor part.
func (e *EditorGroups) HasMaximizedGroup() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.maximized
}

// VisibleEditors returns the editors currently shown.
func (e *EditorGroups) VisibleEditors() []entity.VisibleEditor {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return append([]entity.VisibleEditor(nil), e.visibleEditors...)
}

// IsLayoutCentered reports whether the editor renders centered.
func (e *EditorGroups) IsLayoutCentered() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.centered
}

// CenterLayout centers or uncenters the editor.
func (e *EditorGroups) CenterLayout(active bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.centered = active
}

// SetLineNumbersHidden overrides line numbers in every editor.
func (e *EditorGroups) SetLineNumbersHidden(hidden bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.lineNumbersHide = hidden
}

// LineNumbersHidden reports the line number override.
func (e *EditorGroups) LineNumbersHidden() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.lineNumbersHide
}

// EnforceTabsMode applies mode to every group.
func (e *EditorGroups) EnforceTabsMode(mode entity.EditorTabsMode) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.tabsMode = mode
}

// TabsMode returns the tabs mode in effect.
func (e *EditorGroups) TabsMode() entity.EditorTabsMode {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.tabsMode
}

// WhenRestored blocks until MarkRestored has been called or ctx ends.
func (e *EditorGroups) WhenRestored(ctx context.Context) error {
	select {
	case <-e.restored:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// MarkRestored releases WhenRestored callers.
func (e *EditorGroups) MarkRestored() {
	e.restoredOnce.Do(func() { close(e.restored) })
}

// SetEditorArea sizes the groups evenly over the editor part.
func (e *EditorGroups) SetEditorArea(size entity.Dimension) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.height = size.Height
	n := len(e.widths)
	for i := range e.widths {
		e.widths[i] = size.Width / n
	}
	e.widths[n-1] += size.Width % n
}

// AddGroup splits the active group in two and activates the new one.
func (e *EditorGroups) AddGroup(ctx context.Context) {
	e.mu.Lock()
	half := e.widths[e.active] / 2
	e.widths[e.active] -= half
	e.widths = append(e.widths, 0)
	copy(e.widths[e.active+2:], e.widths[e.active+1:])
	e.widths[e.active+1] = half
	e.active++
	e.mu.Unlock()

	e.emit(ctx, entity.EditorGroupAdded)
}

// RemoveGroup closes the active group, giving its width to a neighbour.
func (e *EditorGroups) RemoveGroup(ctx context.Context) {
	e.mu.Lock()
	if len(e.widths) < 2 {
		e.mu.Unlock()
		return
	}
	width := e.widths[e.active]
	e.widths = append(e.widths[:e.active], e.widths[e.active+1:]...)
	if e.active == len(e.widths) {
		e.active--
	}
	e.widths[e.active] += width
	e.mu.Unlock()

	e.emit(ctx, entity.EditorGroupRemoved)
}

// ActivateGroup makes group i active.
func (e *EditorGroups) ActivateGroup(ctx context.Context, i int) {
	e.mu.Lock()
	if i < 0 || i >= len(e.widths) || i == e.active {
		e.mu.Unlock()
		return
	}
	e.active = i
	e.mu.Unlock()

	e.emit(ctx, entity.EditorGroupActivated)
}

// SetMaximized maximizes or restores the active group.
func (e *EditorGroups) SetMaximized(ctx context.Context, maximized bool) {
	e.mu.Lock()
	changed := e.maximized != maximized
	e.maximized = maximized
	e.mu.Unlock()

	if changed {
		e.emit(ctx, entity.EditorGroupMaximizedChanged)
	}
}

// OpenEditor shows editor in the active group.
func (e *EditorGroups) OpenEditor(ctx context.Context, editor entity.VisibleEditor) {
	e.mu.Lock()
	e.visibleEditors = append(e.visibleEditors, editor)
	e.mu.Unlock()

	e.emit(ctx, entity.EditorGroupVisibleEditorsChanged)
	e.emit(ctx, entity.EditorGroupActiveEditorChanged)
}

// CloseEditors closes every editor.
func (e *EditorGroups) CloseEditors(ctx context.Context) {
	e.mu.Lock()
	e.visibleEditors = nil
	e.mu.Unlock()

	e.emit(ctx, entity.EditorGroupVisibleEditorsChanged)
	e.emit(ctx, entity.EditorGroupActiveEditorChanged)
}

// OnDidChangeEditorGroups registers fn for group changes.
func (e *EditorGroups) OnDidChangeEditorGroups(fn func(ctx context.Context, kind entity.EditorGroupEventKind)) func() {
	return e.changes.add(fn)
}

func (e *EditorGroups) emit(ctx context.Context, kind entity.EditorGroupEventKind) {
	for _, fn := range e.changes.snapshot() {
		fn(ctx, kind)
	}
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	return max(lo, min(v, hi))
}
