package usecase

import (
	"context"
	"fmt"
	"math"

	"github.com/bnema/workbench/internal/domain/entity"
	"github.com/bnema/workbench/internal/logging"
)

// IsMainEditorLayoutCentered reports the requested centered layout state.
// The editor may still render uncentered when auto-resize overrides it.
func (o *LayoutOrchestrator) IsMainEditorLayoutCentered() bool {
	return GetRuntimeValue(o.state, entity.KeyMainEditorCentered)
}

// CenterMainEditorLayout requests the centered editor layout.
func (o *LayoutOrchestrator) CenterMainEditorLayout(ctx context.Context, active bool) error {
	return o.run(ctx, func(ctx context.Context) error {
		if o.grid == nil {
			return nil
		}
		o.centerMainEditorLayout(ctx, active, false)
		return nil
	})
}

// centerMainEditorLayout stores the request and applies it unless
// auto-resize wins: several columns without a maximized group, or a
// complex editor, always render uncentered.
func (o *LayoutOrchestrator) centerMainEditorLayout(ctx context.Context, active, skipLayout bool) {
	SetRuntimeValue(ctx, o.state, entity.KeyMainEditorCentered, active)

	groups := o.deps.EditorGroups
	complexEditor := false
	for _, editor := range groups.VisibleEditors() {
		if editor.IsComplex() {
			complexEditor = true
			break
		}
	}
	moreThanOneColumn := groups.Layout().HasMoreThanOneColumn()

	if o.deps.Config.Settings().CenteredLayoutAutoResize &&
		((moreThanOneColumn && !groups.HasMaximizedGroup()) || complexEditor) {
		active = false
	}

	if groups.IsLayoutCentered() != active {
		logging.FromContext(ctx).Debug().Bool("active", active).Msg("center editor layout")
		groups.CenterLayout(active)
		if !skipLayout {
			o.relayout()
		}
	}

	o.fire(ctx, entity.LayoutEvent{
		Kind:   entity.LayoutEventMainEditorCenteredChanged,
		Part:   entity.PartEditor,
		Active: GetRuntimeValue(o.state, entity.KeyMainEditorCentered),
	})
}

// ResizePart grows or shrinks part by the given CSS pixel deltas, scaled to
// device pixels. Parts that cannot be resized are ignored.
func (o *LayoutOrchestrator) ResizePart(ctx context.Context, part entity.Part, widthChange, heightChange int) error {
	if !part.Valid() {
		return fmt.Errorf("%w: %q", entity.ErrUnknownPart, part)
	}

	return o.run(ctx, func(ctx context.Context) error {
		if o.grid == nil {
			return nil
		}

		dpr := o.deps.Window.DevicePixelRatio()
		dw := screenAwareDelta(widthChange, dpr)
		dh := screenAwareDelta(heightChange, dpr)

		logging.FromContext(ctx).Debug().
			Str("part", part.ShortName()).
			Int("dw", dw).
			Int("dh", dh).
			Msg("resize part")

		switch part {
		case entity.PartSideBar, entity.PartAuxiliaryBar:
			size := o.grid.GetViewSize(part)
			o.grid.ResizeView(part, entity.Dimension{Width: size.Width + dw, Height: size.Height})
		case entity.PartPanel:
			size := o.grid.GetViewSize(part)
			if o.PanelPosition().IsHorizontal() {
				o.grid.ResizeView(part, entity.Dimension{Width: size.Width, Height: size.Height + dh})
			} else {
				o.grid.ResizeView(part, entity.Dimension{Width: size.Width + dw, Height: size.Height})
			}
		case entity.PartEditor:
			o.resizeEditor(dw, dh)
		}
		return nil
	})
}

// resizeEditor resizes the active group first and falls back to the whole
// editor area on the axes the group could not absorb.
func (o *LayoutOrchestrator) resizeEditor(dw, dh int) {
	viewSize := o.grid.GetViewSize(entity.PartEditor)
	groups := o.deps.EditorGroups

	if groups.GroupCount() == 1 {
		o.grid.ResizeView(entity.PartEditor, entity.Dimension{
			Width:  viewSize.Width + dw,
			Height: viewSize.Height + dh,
		})
		return
	}

	before := groups.ActiveGroupSize()
	groups.ResizeActiveGroup(entity.Dimension{Width: before.Width + dw, Height: before.Height + dh})
	after := groups.ActiveGroupSize()

	widthStuck := before.Width == after.Width
	heightStuck := before.Height == after.Height
	if (dh != 0 && heightStuck) || (dw != 0 && widthStuck) {
		target := viewSize
		if widthStuck {
			target.Width += dw
		}
		if heightStuck {
			target.Height += dh
		}
		o.grid.ResizeView(entity.PartEditor, target)
	}
}

func screenAwareDelta(delta int, dpr float64) int {
	if delta == 0 {
		return 0
	}
	if dpr <= 0 {
		dpr = 1
	}
	abs := math.Abs(float64(delta))
	scaled := math.Max(1, math.Floor(abs*dpr)) / dpr
	if delta < 0 {
		scaled = -scaled
	}
	return int(math.Round(scaled))
}

// GetSize returns the live size of part, or zero before initialization.
func (o *LayoutOrchestrator) GetSize(part entity.Part) entity.Dimension {
	grid := o.currentGrid()
	if grid == nil {
		return entity.Dimension{}
	}
	return grid.GetViewSize(part)
}

// SetSize resizes part to size.
func (o *LayoutOrchestrator) SetSize(ctx context.Context, part entity.Part, size entity.Dimension) error {
	if !part.Valid() {
		return fmt.Errorf("%w: %q", entity.ErrUnknownPart, part)
	}
	return o.run(ctx, func(ctx context.Context) error {
		if o.grid == nil {
			return nil
		}
		o.grid.ResizeView(part, size)
		return nil
	})
}

// GetMaximumEditorDimensions returns the space the editor could take in
// container once every visible part shrinks to its minimum size.
func (o *LayoutOrchestrator) GetMaximumEditorDimensions(container entity.Dimension) entity.Dimension {
	panelColumn := !o.PanelPosition().IsHorizontal()
	panelVisible := o.IsVisible(entity.PartPanel)

	takenWidth := 0
	if o.IsVisible(entity.PartActivityBar) {
		takenWidth += o.constraints[entity.PartActivityBar].MinimumWidth
	}
	if o.IsVisible(entity.PartSideBar) {
		takenWidth += o.constraints[entity.PartSideBar].MinimumWidth
	}
	if panelVisible && panelColumn {
		takenWidth += o.constraints[entity.PartPanel].MinimumWidth
	}
	if o.IsVisible(entity.PartAuxiliaryBar) {
		takenWidth += o.constraints[entity.PartAuxiliaryBar].MinimumWidth
	}

	takenHeight := 0
	if o.IsVisible(entity.PartTitlebar) {
		takenHeight += o.constraints[entity.PartTitlebar].MinimumHeight
	}
	if o.IsVisible(entity.PartStatusBar) {
		takenHeight += o.constraints[entity.PartStatusBar].MinimumHeight
	}
	if panelVisible && !panelColumn {
		takenHeight += o.constraints[entity.PartPanel].MinimumHeight
	}

	return entity.Dimension{
		Width:  container.Width - takenWidth,
		Height: container.Height - takenHeight,
	}
}

// GetVisibleNeighborPart returns the first visible part adjacent to part in direction.
func (o *LayoutOrchestrator) GetVisibleNeighborPart(part entity.Part, direction entity.Direction) (entity.Part, bool) {
	grid := o.currentGrid()
	if grid == nil {
		return "", false
	}
	for _, neighbor := range grid.GetNeighborViews(part, direction) {
		if o.IsVisible(neighbor) {
			return neighbor, true
		}
	}
	return "", false
}
