package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/workbench/internal/domain/entity"
	"github.com/bnema/workbench/internal/logging"
)

// IsVisible reports whether part is shown. The title bar and banner are
// read from the grid, every other part from the layout state.
func (o *LayoutOrchestrator) IsVisible(part entity.Part) bool {
	switch part {
	case entity.PartTitlebar:
		if grid := o.currentGrid(); grid != nil {
			return grid.IsViewVisible(part)
		}
		return o.titlebarVisible
	case entity.PartBanner:
		if grid := o.currentGrid(); grid != nil {
			return grid.IsViewVisible(part)
		}
		return false
	case entity.PartActivityBar:
		return !GetRuntimeValue(o.state, entity.KeyActivityBarHidden)
	case entity.PartSideBar:
		return !GetRuntimeValue(o.state, entity.KeySideBarHidden)
	case entity.PartEditor:
		return !GetRuntimeValue(o.state, entity.KeyEditorHidden)
	case entity.PartPanel:
		return !GetRuntimeValue(o.state, entity.KeyPanelHidden)
	case entity.PartAuxiliaryBar:
		return !GetRuntimeValue(o.state, entity.KeyAuxiliaryBarHidden)
	case entity.PartStatusBar:
		return !GetRuntimeValue(o.state, entity.KeyStatusBarHidden)
	default:
		return false
	}
}

// SetPartHidden hides or shows part. Unknown parts return entity.ErrUnknownPart.
func (o *LayoutOrchestrator) SetPartHidden(ctx context.Context, part entity.Part, hidden bool) error {
	if !part.Valid() {
		logging.FromContext(ctx).Error().Str("part", string(part)).Msg("cannot change visibility of unknown part")
		return fmt.Errorf("%w: %q", entity.ErrUnknownPart, part)
	}

	return o.run(ctx, func(ctx context.Context) error {
		if o.grid == nil {
			return nil
		}
		ctx = logging.WithPart(ctx, part.ShortName())
		logging.FromContext(ctx).Debug().Bool("hidden", hidden).Msg("set part hidden")
		o.setPartHidden(ctx, part, hidden)
		return nil
	})
}

// TogglePart flips the visibility of part.
func (o *LayoutOrchestrator) TogglePart(ctx context.Context, part entity.Part) error {
	return o.SetPartHidden(ctx, part, o.IsVisible(part))
}

func (o *LayoutOrchestrator) setPartHidden(ctx context.Context, part entity.Part, hidden bool) {
	switch part {
	case entity.PartActivityBar:
		o.setActivityBarHidden(ctx, hidden)
	case entity.PartSideBar:
		o.setSideBarHidden(ctx, hidden)
	case entity.PartEditor:
		o.setEditorHidden(ctx, hidden)
	case entity.PartBanner:
		o.setBannerHidden(hidden)
	case entity.PartAuxiliaryBar:
		o.setAuxiliaryBarHidden(ctx, hidden, false)
	case entity.PartPanel:
		o.setPanelHidden(ctx, hidden, false)
	case entity.PartStatusBar:
		o.setStatusBarHidden(ctx, hidden)
	}
}

func (o *LayoutOrchestrator) setActivityBarHidden(ctx context.Context, hidden bool) {
	SetRuntimeValue(ctx, o.state, entity.KeyActivityBarHidden, hidden)
	o.grid.SetViewVisible(entity.PartActivityBar, !hidden)
}

func (o *LayoutOrchestrator) setBannerHidden(hidden bool) {
	o.grid.SetViewVisible(entity.PartBanner, !hidden)
}

func (o *LayoutOrchestrator) setStatusBarHidden(ctx context.Context, hidden bool) {
	SetRuntimeValue(ctx, o.state, entity.KeyStatusBarHidden, hidden)
	o.grid.SetViewVisible(entity.PartStatusBar, !hidden)
}

func (o *LayoutOrchestrator) setEditorHidden(ctx context.Context, hidden bool) {
	if !hidden && o.setAuxiliaryBarMaximized(ctx, false) && o.IsVisible(entity.PartEditor) {
		return
	}

	SetRuntimeValue(ctx, o.state, entity.KeyEditorHidden, hidden)
	o.grid.SetViewVisible(entity.PartEditor, !hidden)

	// Editor and panel are never hidden together unless the auxiliary bar is maximized.
	if hidden && !o.IsVisible(entity.PartPanel) && !o.IsAuxiliaryBarMaximized() {
		o.setPanelHidden(ctx, false, true)
	}
}

func (o *LayoutOrchestrator) setSideBarHidden(ctx context.Context, hidden bool) {
	if !hidden && o.setAuxiliaryBarMaximized(ctx, false) && o.IsVisible(entity.PartSideBar) {
		return
	}

	SetRuntimeValue(ctx, o.state, entity.KeySideBarHidden, hidden)

	_, active := o.deps.PaneComposites.ActivePaneCompositeID(entity.LocationSideBar)
	switch {
	case hidden && active:
		o.deps.PaneComposites.HideActivePaneComposite(ctx, entity.LocationSideBar)
		if !o.IsAuxiliaryBarMaximized() {
			o.focusPanelOrEditor(ctx)
		}
	case !hidden && !active:
		if id := o.deps.PaneComposites.LastActivePaneCompositeID(entity.LocationSideBar); id != "" {
			o.openViewContainer(ctx, entity.LocationSideBar, id, true)
		}
	}

	o.grid.SetViewVisible(entity.PartSideBar, !hidden)
}

func (o *LayoutOrchestrator) setPanelHidden(ctx context.Context, hidden, skipLayout bool) {
	if o.grid == nil {
		return
	}
	if !hidden && o.setAuxiliaryBarMaximized(ctx, false) && o.IsVisible(entity.PartPanel) {
		return
	}

	wasHidden := !o.IsVisible(entity.PartPanel)
	SetRuntimeValue(ctx, o.state, entity.KeyPanelHidden, hidden)

	isPanelMaximized := o.IsPanelMaximized()
	panelOpensMaximized := o.panelOpensMaximized()

	focusEditor := false
	_, active := o.deps.PaneComposites.ActivePaneCompositeID(entity.LocationPanel)
	switch {
	case hidden && active:
		o.deps.PaneComposites.HideActivePaneComposite(ctx, entity.LocationPanel)
		focusEditor = !o.IsAuxiliaryBarMaximized()
	case !hidden && !active:
		if id := o.containerToOpen(entity.LocationPanel); id != "" {
			o.openViewContainer(ctx, entity.LocationPanel, id, !skipLayout)
		}
	}

	// Leave the maximized state first so the non-maximized size is cached.
	if hidden && isPanelMaximized {
		o.toggleMaximizedPanel(ctx)
	}

	if wasHidden == hidden {
		return
	}

	o.grid.SetViewVisible(entity.PartPanel, !hidden)

	if !hidden {
		if !skipLayout && isPanelMaximized != panelOpensMaximized {
			o.toggleMaximizedPanel(ctx)
		}
	} else {
		SetRuntimeValue(ctx, o.state, entity.KeyPanelWasLastMaximized, isPanelMaximized)
	}

	if focusEditor {
		o.deps.Focus.Focus(ctx, entity.PartEditor)
	}
}

func (o *LayoutOrchestrator) setAuxiliaryBarHidden(ctx context.Context, hidden, skipLayout bool) {
	if hidden && o.setAuxiliaryBarMaximized(ctx, false) && !o.IsVisible(entity.PartAuxiliaryBar) {
		return
	}

	SetRuntimeValue(ctx, o.state, entity.KeyAuxiliaryBarHidden, hidden)

	_, active := o.deps.PaneComposites.ActivePaneCompositeID(entity.LocationAuxiliaryBar)
	switch {
	case hidden && active:
		o.deps.PaneComposites.HideActivePaneComposite(ctx, entity.LocationAuxiliaryBar)
		o.focusPanelOrEditor(ctx)
	case !hidden && !active:
		if id := o.containerToOpen(entity.LocationAuxiliaryBar); id != "" {
			o.openViewContainer(ctx, entity.LocationAuxiliaryBar, id, !skipLayout)
		}
	}

	o.grid.SetViewVisible(entity.PartAuxiliaryBar, !hidden)
}

// containerToOpen picks the last active container of location when it has
// views, otherwise the first container that does.
func (o *LayoutOrchestrator) containerToOpen(location entity.ViewContainerLocation) string {
	id := o.deps.PaneComposites.LastActivePaneCompositeID(location)
	if id != "" && o.deps.ViewContainers.HasViews(id) {
		return id
	}
	for _, candidate := range o.deps.ViewContainers.ViewContainerIDs(location) {
		if o.deps.ViewContainers.HasViews(candidate) {
			return candidate
		}
	}
	return ""
}

// openViewContainer opens id in location, falling back to the default
// container and then to the first visible one. A newer request for the same
// location supersedes this one.
func (o *LayoutOrchestrator) openViewContainer(
	ctx context.Context,
	location entity.ViewContainerLocation,
	id string,
	focus bool,
) bool {
	log := logging.FromContext(ctx)
	token := o.beginOpenRequest(location)

	candidates := []func() string{
		func() string { return id },
		func() string {
			def, _ := o.deps.ViewContainers.DefaultViewContainerID(location)
			return def
		},
		func() string {
			if visible := o.deps.PaneComposites.VisiblePaneCompositeIDs(location); len(visible) > 0 {
				return visible[0]
			}
			return ""
		},
	}

	for _, next := range candidates {
		candidate := next()
		if candidate == "" {
			continue
		}
		opened, err := o.deps.PaneComposites.OpenPaneComposite(ctx, candidate, location, focus)
		if !o.isLatestOpenRequest(location, token) {
			log.Debug().Str("location", location.String()).Str("id", candidate).Msg("open request superseded")
			return false
		}
		if err != nil {
			log.Warn().Err(err).Str("location", location.String()).Str("id", candidate).Msg("failed to open view container")
			continue
		}
		if opened {
			return true
		}
	}
	return false
}

func (o *LayoutOrchestrator) beginOpenRequest(location entity.ViewContainerLocation) uint64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.openRequests[location]++
	return o.openRequests[location]
}

func (o *LayoutOrchestrator) isLatestOpenRequest(location entity.ViewContainerLocation, token uint64) bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.openRequests[location] == token
}

// HasFocus reports whether part holds keyboard focus.
func (o *LayoutOrchestrator) HasFocus(part entity.Part) bool {
	return o.deps.Focus.HasFocus(part)
}

// FocusPart moves keyboard focus to part.
func (o *LayoutOrchestrator) FocusPart(ctx context.Context, part entity.Part) error {
	if !part.Valid() {
		return fmt.Errorf("%w: %q", entity.ErrUnknownPart, part)
	}
	return o.run(ctx, func(ctx context.Context) error {
		o.deps.Focus.Focus(ctx, part)
		return nil
	})
}

// Focus moves focus to the maximized part, or to the editor.
func (o *LayoutOrchestrator) Focus(ctx context.Context) error {
	return o.run(ctx, func(ctx context.Context) error {
		o.focus(ctx)
		return nil
	})
}

func (o *LayoutOrchestrator) focus(ctx context.Context) {
	switch {
	case o.IsPanelMaximized():
		o.deps.Focus.Focus(ctx, entity.PartPanel)
	case o.IsAuxiliaryBarMaximized():
		o.deps.Focus.Focus(ctx, entity.PartAuxiliaryBar)
	default:
		o.deps.Focus.Focus(ctx, entity.PartEditor)
	}
}

func (o *LayoutOrchestrator) focusPanelOrEditor(ctx context.Context) {
	_, activePanel := o.deps.PaneComposites.ActivePaneCompositeID(entity.LocationPanel)
	if (o.HasFocus(entity.PartPanel) || !o.IsVisible(entity.PartEditor)) && activePanel {
		o.deps.Focus.Focus(ctx, entity.PartPanel)
		return
	}
	o.focus(ctx)
}
