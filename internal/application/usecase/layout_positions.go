package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/workbench/internal/domain/entity"
	"github.com/bnema/workbench/internal/domain/service"
	"github.com/bnema/workbench/internal/logging"
)

// SetSideBarPosition moves the activity bar and side bar to position; the
// auxiliary bar moves to the opposite side.
func (o *LayoutOrchestrator) SetSideBarPosition(ctx context.Context, position entity.Position) error {
	if position != entity.PositionLeft && position != entity.PositionRight {
		return fmt.Errorf("%w: side bar cannot be at %s", entity.ErrInvalidPosition, position)
	}
	return o.run(ctx, func(ctx context.Context) error {
		if o.grid == nil {
			return nil
		}
		o.setSideBarPosition(ctx, position)
		return nil
	})
}

func (o *LayoutOrchestrator) setSideBarPosition(ctx context.Context, position entity.Position) {
	logging.FromContext(ctx).Debug().Str("position", position.String()).Msg("set side bar position")

	SetRuntimeValue(ctx, o.state, entity.KeySideBarPosition, position)
	o.adjustPartPositions(ctx, position, o.PanelAlignment(), o.PanelPosition())
}

// SetPanelAlignment aligns a horizontal panel. A vertical panel is moved to
// the bottom first, and a maximized panel is restored for non-center alignments.
func (o *LayoutOrchestrator) SetPanelAlignment(ctx context.Context, alignment entity.PanelAlignment) error {
	if !alignment.Valid() {
		return fmt.Errorf("%w: %q", entity.ErrInvalidAlignment, alignment)
	}
	return o.run(ctx, func(ctx context.Context) error {
		if o.grid == nil {
			return nil
		}
		o.setPanelAlignment(ctx, alignment)
		return nil
	})
}

func (o *LayoutOrchestrator) setPanelAlignment(ctx context.Context, alignment entity.PanelAlignment) {
	logging.FromContext(ctx).Debug().Str("alignment", string(alignment)).Msg("set panel alignment")

	if !o.PanelPosition().IsHorizontal() {
		o.setPanelPosition(ctx, entity.PositionBottom)
	}
	if alignment != entity.AlignmentCenter && o.IsPanelMaximized() {
		o.toggleMaximizedPanel(ctx)
	}

	SetRuntimeValue(ctx, o.state, entity.KeyPanelAlignment, alignment)
	o.adjustPartPositions(ctx, o.SideBarPosition(), alignment, o.PanelPosition())

	o.fire(ctx, entity.LayoutEvent{Kind: entity.LayoutEventPanelAlignmentChanged, Alignment: alignment})
}

// SetPanelPosition moves the panel to position relative to the editor.
func (o *LayoutOrchestrator) SetPanelPosition(ctx context.Context, position entity.Position) error {
	if !position.Valid() {
		return fmt.Errorf("%w: %d", entity.ErrInvalidPosition, int(position))
	}
	return o.run(ctx, func(ctx context.Context) error {
		if o.grid == nil {
			return nil
		}
		o.setPanelPosition(ctx, position)
		return nil
	})
}

func (o *LayoutOrchestrator) setPanelPosition(ctx context.Context, position entity.Position) {
	logging.FromContext(ctx).Debug().Str("position", position.String()).Msg("set panel position")

	if !o.IsVisible(entity.PartPanel) {
		o.setPanelHidden(ctx, false, false)
	}

	oldPosition := o.PanelPosition()
	size := o.grid.GetViewSize(entity.PartPanel)
	sideBarSize := o.grid.GetViewSize(entity.PartSideBar)
	auxiliaryBarSize := o.grid.GetViewSize(entity.PartAuxiliaryBar)
	editorHidden := !o.IsVisible(entity.PartEditor)

	// Remember the panel size along the axis it is about to lose.
	if position != oldPosition && !editorHidden {
		if position.IsHorizontal() {
			SetRuntimeValue(ctx, o.state, entity.KeyPanelLastNonMaximizedWidth, size.Width)
		} else if oldPosition.IsHorizontal() {
			SetRuntimeValue(ctx, o.state, entity.KeyPanelLastNonMaximizedHeight, size.Height)
		}
	}

	if position.IsHorizontal() && o.PanelAlignment() != entity.AlignmentCenter && editorHidden {
		o.toggleMaximizedPanel(ctx)
		editorHidden = false
	}

	SetRuntimeValue(ctx, o.state, entity.KeyPanelPosition, position)

	sideBarVisible := o.IsVisible(entity.PartSideBar)
	auxiliaryBarVisible := o.IsVisible(entity.PartAuxiliaryBar)
	hadFocus := o.HasFocus(entity.PartPanel)

	var (
		panelSize int
		direction entity.Direction
	)
	switch position {
	case entity.PositionBottom, entity.PositionTop:
		panelSize = GetRuntimeValue(o.state, entity.KeyPanelLastNonMaximizedHeight)
		if editorHidden {
			panelSize = size.Height
		}
		direction = entity.DirectionDown
		if position == entity.PositionTop {
			direction = entity.DirectionUp
		}
	default:
		panelSize = GetRuntimeValue(o.state, entity.KeyPanelLastNonMaximizedWidth)
		if editorHidden {
			panelSize = size.Width
		}
		direction = entity.DirectionLeft
		if position == entity.PositionRight {
			direction = entity.DirectionRight
		}
	}
	o.moveView(ctx, entity.PartPanel, entity.FixedSizing(panelSize), entity.PartEditor, direction)

	if hadFocus {
		o.deps.Focus.Focus(ctx, entity.PartPanel)
	}

	o.grid.ResizeView(entity.PartSideBar, sideBarSize)
	if !sideBarVisible {
		o.setSideBarHidden(ctx, true)
	}
	o.grid.ResizeView(entity.PartAuxiliaryBar, auxiliaryBarSize)
	if !auxiliaryBarVisible {
		o.setAuxiliaryBarHidden(ctx, true, false)
	}

	if position.IsHorizontal() {
		o.adjustPartPositions(ctx, o.SideBarPosition(), o.PanelAlignment(), position)
	}

	o.fire(ctx, entity.LayoutEvent{Kind: entity.LayoutEventPanelPositionChanged, Position: position})
}

// preMoveSize is the size of a part captured before it is moved in the grid.
type preMoveSize struct {
	sizing  entity.Sizing
	visible bool
}

func (o *LayoutOrchestrator) preMoveSize(part entity.Part, height bool) preMoveSize {
	if !o.IsVisible(part) {
		cached, ok := o.grid.GetViewCachedVisibleSize(part)
		if !ok {
			c := o.constraints[part]
			cached = c.MinimumWidth
			if height {
				cached = c.MinimumHeight
			}
		}
		return preMoveSize{sizing: entity.InvisibleSizing(cached)}
	}

	size := o.grid.GetViewSize(part)
	if height {
		return preMoveSize{sizing: entity.FixedSizing(size.Height), visible: true}
	}
	return preMoveSize{sizing: entity.FixedSizing(size.Width), visible: true}
}

// adjustPartPositions moves the activity bar and both side bars around the
// live grid and puts back the sizes they had before the move.
func (o *LayoutOrchestrator) adjustPartPositions(
	ctx context.Context,
	sideBarPosition entity.Position,
	alignment entity.PanelAlignment,
	panelPosition entity.Position,
) {
	panelVertical := !panelPosition.IsHorizontal()
	sideBarBesideEditor := service.SideBarBesideEditor(sideBarPosition, panelPosition, alignment)
	auxiliaryBarBesideEditor := service.AuxiliaryBarBesideEditor(sideBarPosition, panelPosition, alignment)

	panelWidth := o.preMoveSize(entity.PartPanel, false)
	panelHeight := o.preMoveSize(entity.PartPanel, true)
	sideBarWidth := o.preMoveSize(entity.PartSideBar, false)
	auxiliaryBarWidth := o.preMoveSize(entity.PartAuxiliaryBar, false)

	var focused entity.Part
	for _, part := range []entity.Part{entity.PartPanel, entity.PartSideBar, entity.PartAuxiliaryBar} {
		if o.HasFocus(part) {
			focused = part
			break
		}
	}

	if sideBarPosition == entity.PositionLeft {
		o.moveViewTo(ctx, entity.PartActivityBar, []int{2, 0})
		if sideBarBesideEditor {
			o.moveView(ctx, entity.PartSideBar, sideBarWidth.sizing, entity.PartEditor, entity.DirectionLeft)
		} else {
			o.moveView(ctx, entity.PartSideBar, sideBarWidth.sizing, entity.PartActivityBar, entity.DirectionRight)
		}
		if auxiliaryBarBesideEditor {
			o.moveView(ctx, entity.PartAuxiliaryBar, auxiliaryBarWidth.sizing, entity.PartEditor, entity.DirectionRight)
		} else {
			o.moveViewTo(ctx, entity.PartAuxiliaryBar, []int{2, -1})
		}
	} else {
		o.moveViewTo(ctx, entity.PartActivityBar, []int{2, -1})
		if sideBarBesideEditor {
			o.moveView(ctx, entity.PartSideBar, sideBarWidth.sizing, entity.PartEditor, entity.DirectionRight)
		} else {
			o.moveView(ctx, entity.PartSideBar, sideBarWidth.sizing, entity.PartActivityBar, entity.DirectionLeft)
		}
		if auxiliaryBarBesideEditor {
			o.moveView(ctx, entity.PartAuxiliaryBar, auxiliaryBarWidth.sizing, entity.PartEditor, entity.DirectionLeft)
		} else {
			o.moveViewTo(ctx, entity.PartAuxiliaryBar, []int{2, 0})
		}
	}

	if focused != "" {
		o.deps.Focus.Focus(ctx, focused)
	}

	// The side parts were placed relative to the editor; put a vertical panel
	// back beside it.
	if panelVertical {
		direction := entity.DirectionRight
		if panelPosition == entity.PositionLeft {
			direction = entity.DirectionLeft
		}
		o.moveView(ctx, entity.PartPanel, panelWidth.sizing, entity.PartEditor, direction)
		if panelWidth.visible {
			o.grid.ResizeView(entity.PartPanel, entity.Dimension{
				Width:  panelWidth.sizing.Size,
				Height: panelHeight.sizing.Size,
			})
		}
	}

	// Moving views redistributes space; restore the widths they had.
	if o.IsVisible(entity.PartSideBar) && sideBarWidth.visible {
		o.grid.ResizeView(entity.PartSideBar, entity.Dimension{
			Width:  sideBarWidth.sizing.Size,
			Height: o.grid.GetViewSize(entity.PartSideBar).Height,
		})
	}
	if o.IsVisible(entity.PartAuxiliaryBar) && auxiliaryBarWidth.visible {
		o.grid.ResizeView(entity.PartAuxiliaryBar, entity.Dimension{
			Width:  auxiliaryBarWidth.sizing.Size,
			Height: o.grid.GetViewSize(entity.PartAuxiliaryBar).Height,
		})
	}
}

func (o *LayoutOrchestrator) moveView(
	ctx context.Context,
	part entity.Part,
	sizing entity.Sizing,
	reference entity.Part,
	direction entity.Direction,
) {
	if err := o.grid.MoveView(part, sizing, reference, direction); err != nil {
		logging.FromContext(ctx).Error().Err(err).
			Str("part", part.ShortName()).
			Str("reference", reference.ShortName()).
			Str("direction", direction.String()).
			Msg("failed to move view")
	}
}

func (o *LayoutOrchestrator) moveViewTo(ctx context.Context, part entity.Part, location []int) {
	if err := o.grid.MoveViewTo(part, location); err != nil {
		logging.FromContext(ctx).Error().Err(err).
			Str("part", part.ShortName()).
			Ints("location", location).
			Msg("failed to move view")
	}
}
