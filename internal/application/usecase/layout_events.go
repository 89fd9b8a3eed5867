package usecase

import (
	"context"

	"github.com/bnema/workbench/internal/domain/entity"
	"github.com/bnema/workbench/internal/logging"
)

// OnDidChangeLayout registers fn for every layout event. Events are
// delivered on the task queue, in order. The returned function unsubscribes.
func (o *LayoutOrchestrator) OnDidChangeLayout(fn func(ctx context.Context, event entity.LayoutEvent)) func() {
	o.mu.Lock()
	id := o.nextListenerID
	o.nextListenerID++
	o.listeners[id] = fn
	o.mu.Unlock()

	return func() {
		o.mu.Lock()
		delete(o.listeners, id)
		o.mu.Unlock()
	}
}

func (o *LayoutOrchestrator) fire(ctx context.Context, event entity.LayoutEvent) {
	o.mu.RLock()
	listeners := make([]func(context.Context, entity.LayoutEvent), 0, len(o.listeners))
	for id := 0; id < o.nextListenerID; id++ {
		if fn, ok := o.listeners[id]; ok {
			listeners = append(listeners, fn)
		}
	}
	o.mu.RUnlock()

	logging.FromContext(ctx).Trace().Str("event", event.Kind.String()).Str("part", event.Part.ShortName()).Msg("layout event")
	for _, fn := range listeners {
		fn(ctx, event)
	}
}

func (o *LayoutOrchestrator) registerListeners() {
	o.unsubscribe = append(o.unsubscribe,
		o.state.OnDidChangeState(func(ctx context.Context, change entity.StateChange) {
			o.dispatch(ctx, func(ctx context.Context) { o.onStateChange(ctx, change) })
		}),
		o.deps.Window.OnDidChangeFullscreen(func(ctx context.Context, fullscreen bool) {
			o.dispatch(ctx, func(ctx context.Context) { o.onFullscreenChanged(ctx, fullscreen) })
		}),
		o.deps.EditorGroups.OnDidChangeEditorGroups(func(ctx context.Context, kind entity.EditorGroupEventKind) {
			o.dispatch(ctx, func(ctx context.Context) { o.onEditorGroupsChanged(ctx, kind) })
		}),
		o.deps.PaneComposites.OnDidChangePaneComposites(func(ctx context.Context, _ entity.ViewContainerLocation) {
			SetInitializationValue(o.state, entity.KeyAuxiliaryBarEmpty,
				len(o.deps.PaneComposites.VisiblePaneCompositeIDs(entity.LocationAuxiliaryBar)) == 0)
		}),
	)
}

// onStateChange applies runtime key changes that came from legacy settings
// or from another window sharing the profile.
func (o *LayoutOrchestrator) onStateChange(ctx context.Context, change entity.StateChange) {
	if o.currentGrid() == nil {
		return
	}

	switch change.Key {
	case entity.KeyActivityBarHidden:
		o.setActivityBarHidden(ctx, entity.KeyActivityBarHidden.Cast(change.Value))
	case entity.KeyStatusBarHidden:
		o.setStatusBarHidden(ctx, entity.KeyStatusBarHidden.Cast(change.Value))
	case entity.KeySideBarPosition:
		o.setSideBarPosition(ctx, entity.KeySideBarPosition.Cast(change.Value))
	case entity.KeyPanelPosition:
		o.setPanelPosition(ctx, entity.KeyPanelPosition.Cast(change.Value))
	case entity.KeyPanelAlignment:
		o.setPanelAlignment(ctx, entity.KeyPanelAlignment.Cast(change.Value))
	}
}

func (o *LayoutOrchestrator) onFullscreenChanged(ctx context.Context, fullscreen bool) {
	o.mu.Lock()
	o.fullscreen = fullscreen
	o.mu.Unlock()

	if fullscreen {
		return
	}
	exitInfo := GetRuntimeValue(o.state, entity.KeyZenModeExitInfo)
	if exitInfo.TransitionedToFullScreen && o.IsZenModeActive() {
		o.toggleZenMode(ctx, false, false)
	}
}

func (o *LayoutOrchestrator) onEditorGroupsChanged(ctx context.Context, kind entity.EditorGroupEventKind) {
	if o.currentGrid() == nil {
		return
	}

	switch kind {
	case entity.EditorGroupVisibleEditorsChanged, entity.EditorGroupActivated:
		o.mu.RLock()
		restored := o.editorsRestored
		o.mu.RUnlock()
		if restored {
			o.showEditorIfHidden(ctx)
		}
	case entity.EditorGroupActiveEditorChanged,
		entity.EditorGroupAdded,
		entity.EditorGroupRemoved,
		entity.EditorGroupMaximizedChanged:
		o.centerMainEditorLayout(ctx, GetRuntimeValue(o.state, entity.KeyMainEditorCentered), false)
	}
}

func (o *LayoutOrchestrator) showEditorIfHidden(ctx context.Context) {
	if o.IsVisible(entity.PartEditor) {
		return
	}
	if o.IsAuxiliaryBarMaximized() {
		o.toggleMaximizedAuxiliaryBar(ctx)
		return
	}
	o.toggleMaximizedPanel(ctx)
}

// onGridViewVisibilityChanged keeps the hidden keys in sync when the grid
// shows or hides a view on its own.
func (o *LayoutOrchestrator) onGridViewVisibilityChanged(part entity.Part, visible bool) {
	if ctx := o.writerCtx.Load(); ctx != nil {
		o.syncPartVisibility(*ctx, part, visible)
		return
	}
	o.dispatch(o.baseCtx, func(ctx context.Context) { o.syncPartVisibility(ctx, part, visible) })
}

func (o *LayoutOrchestrator) syncPartVisibility(ctx context.Context, part entity.Part, visible bool) {
	if !o.transitionState().InTransition() && o.IsVisible(part) != visible {
		switch part {
		case entity.PartSideBar:
			o.setSideBarHidden(ctx, !visible)
		case entity.PartPanel:
			o.setPanelHidden(ctx, !visible, true)
		case entity.PartAuxiliaryBar:
			o.setAuxiliaryBarHidden(ctx, !visible, true)
		case entity.PartEditor:
			o.setEditorHidden(ctx, !visible)
		}
	}

	o.fire(ctx, entity.LayoutEvent{Kind: entity.LayoutEventPartVisibilityChanged, Part: part, Visible: visible})
	o.fire(ctx, entity.LayoutEvent{Kind: entity.LayoutEventContainerLayout, Dimension: o.Container()})
}

// UpdateWindowMaximizedState records whether window id is maximized and
// notifies when that changed.
func (o *LayoutOrchestrator) UpdateWindowMaximizedState(ctx context.Context, windowID int, maximized bool) error {
	return o.run(ctx, func(ctx context.Context) error {
		o.mu.Lock()
		_, was := o.maximizedWindows[windowID]
		if was == maximized {
			o.mu.Unlock()
			return nil
		}
		if maximized {
			o.maximizedWindows[windowID] = struct{}{}
		} else {
			delete(o.maximizedWindows, windowID)
		}
		o.mu.Unlock()

		o.fire(ctx, entity.LayoutEvent{
			Kind:     entity.LayoutEventWindowMaximizedChanged,
			WindowID: windowID,
			Active:   maximized,
		})
		return nil
	})
}

// IsWindowMaximized reports the last state passed to UpdateWindowMaximizedState.
func (o *LayoutOrchestrator) IsWindowMaximized(windowID int) bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	_, ok := o.maximizedWindows[windowID]
	return ok
}
