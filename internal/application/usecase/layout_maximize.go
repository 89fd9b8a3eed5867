package usecase

import (
	"context"

	"github.com/bnema/workbench/internal/domain/entity"
	"github.com/bnema/workbench/internal/logging"
)

// IsPanelMaximized reports whether the panel fills the editor area. A
// horizontal panel can only be maximized while center aligned.
func (o *LayoutOrchestrator) IsPanelMaximized() bool {
	return (o.PanelAlignment() == entity.AlignmentCenter || !o.PanelPosition().IsHorizontal()) &&
		!o.IsVisible(entity.PartEditor) &&
		!o.IsAuxiliaryBarMaximized()
}

// IsAuxiliaryBarMaximized reports whether the auxiliary bar is maximized.
func (o *LayoutOrchestrator) IsAuxiliaryBarMaximized() bool {
	return GetRuntimeValue(o.state, entity.KeyAuxiliaryBarWasLastMaximized)
}

// ToggleMaximizedPanel maximizes the panel, or restores it.
func (o *LayoutOrchestrator) ToggleMaximizedPanel(ctx context.Context) error {
	return o.run(ctx, func(ctx context.Context) error {
		if o.grid == nil {
			return nil
		}
		o.toggleMaximizedPanel(ctx)
		return nil
	})
}

func (o *LayoutOrchestrator) toggleMaximizedPanel(ctx context.Context) {
	size := o.grid.GetViewSize(entity.PartPanel)
	horizontal := o.PanelPosition().IsHorizontal()
	maximize := !o.IsPanelMaximized()

	logging.FromContext(ctx).Debug().Bool("maximize", maximize).Msg("toggle maximized panel")

	if maximize {
		if o.IsVisible(entity.PartPanel) {
			if horizontal {
				SetRuntimeValue(ctx, o.state, entity.KeyPanelLastNonMaximizedHeight, size.Height)
			} else {
				SetRuntimeValue(ctx, o.state, entity.KeyPanelLastNonMaximizedWidth, size.Width)
			}
		}
		o.setEditorHidden(ctx, true)
	} else {
		o.setEditorHidden(ctx, false)
		target := size
		if horizontal {
			target.Height = GetRuntimeValue(o.state, entity.KeyPanelLastNonMaximizedHeight)
		} else {
			target.Width = GetRuntimeValue(o.state, entity.KeyPanelLastNonMaximizedWidth)
		}
		o.grid.ResizeView(entity.PartPanel, target)
	}

	SetRuntimeValue(ctx, o.state, entity.KeyPanelWasLastMaximized, maximize)
}

func (o *LayoutOrchestrator) panelOpensMaximized() bool {
	if o.PanelAlignment() != entity.AlignmentCenter && o.PanelPosition().IsHorizontal() {
		return false
	}

	switch o.deps.Config.Settings().PanelOpensMaximized {
	case entity.PanelOpensMaximizedAlways:
		return true
	case entity.PanelOpensMaximizedRememberLast, entity.PanelOpensMaximizedPreserve:
		return GetRuntimeValue(o.state, entity.KeyPanelWasLastMaximized)
	default:
		return false
	}
}

// SetAuxiliaryBarMaximized enters or leaves the maximized auxiliary bar. It
// reports false when nothing changed.
func (o *LayoutOrchestrator) SetAuxiliaryBarMaximized(ctx context.Context, maximized bool) (bool, error) {
	var changed bool
	err := o.run(ctx, func(ctx context.Context) error {
		if o.grid == nil {
			return nil
		}
		changed = o.setAuxiliaryBarMaximized(ctx, maximized)
		return nil
	})
	return changed, err
}

// ToggleMaximizedAuxiliaryBar flips the maximized state of the auxiliary bar.
func (o *LayoutOrchestrator) ToggleMaximizedAuxiliaryBar(ctx context.Context) error {
	return o.run(ctx, func(ctx context.Context) error {
		if o.grid == nil {
			return nil
		}
		o.toggleMaximizedAuxiliaryBar(ctx)
		return nil
	})
}

func (o *LayoutOrchestrator) toggleMaximizedAuxiliaryBar(ctx context.Context) {
	o.setAuxiliaryBarMaximized(ctx, !o.IsAuxiliaryBarMaximized())
}

func (o *LayoutOrchestrator) setAuxiliaryBarMaximized(ctx context.Context, maximized bool) bool {
	if o.transitionState().InTransition() || maximized == o.IsAuxiliaryBarMaximized() {
		return false
	}

	log := logging.FromContext(ctx)

	if maximized {
		snapshot := entity.PartVisibility{
			SideBarVisible:      o.IsVisible(entity.PartSideBar),
			EditorVisible:       o.IsVisible(entity.PartEditor),
			PanelVisible:        o.IsVisible(entity.PartPanel),
			AuxiliaryBarVisible: o.IsVisible(entity.PartAuxiliaryBar),
		}
		SetRuntimeValue(ctx, o.state, entity.KeyAuxiliaryBarWasLastMaximized, true)

		o.setTransition(entity.TransitionEnteringMaximize)
		log.Debug().Str("transition", entity.TransitionEnteringMaximize.String()).Msg("maximize auxiliary bar")

		if !snapshot.AuxiliaryBarVisible {
			o.setAuxiliaryBarHidden(ctx, false, false)
		}
		SetRuntimeValue(ctx, o.state, entity.KeyAuxiliaryBarLastNonMaximizedSize,
			o.grid.GetViewSize(entity.PartAuxiliaryBar).Width)

		if snapshot.SideBarVisible {
			o.setSideBarHidden(ctx, true)
		}
		if snapshot.PanelVisible {
			o.setPanelHidden(ctx, true, false)
		}
		if snapshot.EditorVisible {
			o.setEditorHidden(ctx, true)
		}
		SetRuntimeValue(ctx, o.state, entity.KeyAuxiliaryBarLastNonMaximizedVisibility, snapshot)
	} else {
		snapshot := GetRuntimeValue(o.state, entity.KeyAuxiliaryBarLastNonMaximizedVisibility)
		SetRuntimeValue(ctx, o.state, entity.KeyAuxiliaryBarWasLastMaximized, false)

		o.setTransition(entity.TransitionExitingMaximize)
		log.Debug().Str("transition", entity.TransitionExitingMaximize.String()).Msg("restore auxiliary bar")

		// Editor first, then panel and side bar, so the grid restores previous sizes.
		o.setEditorHidden(ctx, !snapshot.EditorVisible)
		o.setPanelHidden(ctx, !snapshot.PanelVisible, false)
		o.setSideBarHidden(ctx, !snapshot.SideBarVisible)

		size := o.grid.GetViewSize(entity.PartAuxiliaryBar)
		o.grid.ResizeView(entity.PartAuxiliaryBar, entity.Dimension{
			Width:  GetRuntimeValue(o.state, entity.KeyAuxiliaryBarLastNonMaximizedSize),
			Height: size.Height,
		})
		if !snapshot.AuxiliaryBarVisible {
			o.setAuxiliaryBarHidden(ctx, true, true)
		}
	}
	o.setTransition(entity.TransitionStable)

	if o.IsVisible(entity.PartAuxiliaryBar) {
		o.deps.Focus.Focus(ctx, entity.PartAuxiliaryBar)
	} else {
		o.focus(ctx)
	}
	o.fire(ctx, entity.LayoutEvent{
		Kind:   entity.LayoutEventAuxiliaryBarMaximizeChanged,
		Part:   entity.PartAuxiliaryBar,
		Active: maximized,
	})
	return true
}
