// Package service holds pure domain logic shared by the layout use cases.
package service

import "github.com/bnema/workbench/internal/domain/entity"

// GridDescriptorInput is everything the descriptor builder reads: the
// current layout state plus the available container size.
type GridDescriptorInput struct {
	Width  int
	Height int

	SideBarPosition entity.Position
	PanelPosition   entity.Position
	PanelAlignment  entity.PanelAlignment

	TitlebarVisible     bool
	ActivityBarVisible  bool
	SideBarVisible      bool
	EditorVisible       bool
	PanelVisible        bool
	AuxiliaryBarVisible bool
	StatusBarVisible    bool

	SideBarSize      int
	AuxiliaryBarSize int
	PanelSize        int

	// BannerFirst renders the banner above the title bar (browser window
	// controls overlay without a custom title bar).
	BannerFirst bool

	Constraints map[entity.Part]entity.PartConstraints
}

// MiddleSectionNodes are the leaves arranged by ArrangeMiddleSectionNodes.
type MiddleSectionNodes struct {
	ActivityBar  *entity.GridNode
	SideBar      *entity.GridNode
	Editor       *entity.GridNode
	Panel        *entity.GridNode
	AuxiliaryBar *entity.GridNode
}

// SideBarBesideEditor reports whether the side bar is a direct sibling of
// the editor rather than of the whole editor and panel column.
func SideBarBesideEditor(sideBar, panel entity.Position, alignment entity.PanelAlignment) bool {
	if !panel.IsHorizontal() {
		return true
	}
	return !(alignment == entity.AlignmentCenter ||
		(sideBar == entity.PositionLeft && alignment == entity.AlignmentRight) ||
		(sideBar == entity.PositionRight && alignment == entity.AlignmentLeft))
}

// AuxiliaryBarBesideEditor is SideBarBesideEditor for the auxiliary bar,
// which always sits opposite the side bar.
func AuxiliaryBarBesideEditor(sideBar, panel entity.Position, alignment entity.PanelAlignment) bool {
	if !panel.IsHorizontal() {
		return true
	}
	return !(alignment == entity.AlignmentCenter ||
		(sideBar == entity.PositionRight && alignment == entity.AlignmentRight) ||
		(sideBar == entity.PositionLeft && alignment == entity.AlignmentLeft))
}

// ArrangeEditorNodes builds the editor row. Without side nodes the bare
// editor leaf is returned; otherwise a branch with the bars placed around it.
func ArrangeEditorNodes(
	editor, sideBar, auxiliaryBar *entity.GridNode,
	sideBarPosition entity.Position,
	availableHeight, availableWidth int,
) *entity.GridNode {
	if sideBar == nil && auxiliaryBar == nil {
		editor.Size = clampSize(availableHeight)
		return editor
	}

	nodes := []*entity.GridNode{editor}
	editor.Size = availableWidth

	if sideBar != nil {
		if sideBarPosition == entity.PositionLeft {
			nodes = prepend(nodes, sideBar)
		} else {
			nodes = append(nodes, sideBar)
		}
		editor.Size -= visibleSize(sideBar)
	}

	if auxiliaryBar != nil {
		if sideBarPosition == entity.PositionRight {
			nodes = prepend(nodes, auxiliaryBar)
		} else {
			nodes = append(nodes, auxiliaryBar)
		}
		editor.Size -= visibleSize(auxiliaryBar)
	}

	editor.Size = clampSize(editor.Size)
	return entity.NewBranch(clampSize(availableHeight), nodes...)
}

// ArrangeMiddleSectionNodes orders the middle row of the workbench.
func ArrangeMiddleSectionNodes(
	nodes MiddleSectionNodes,
	in GridDescriptorInput,
	availableWidth, availableHeight int,
) []*entity.GridNode {
	activityBarSize := visibleSize(nodes.ActivityBar)
	sideBarSize := visibleSize(nodes.SideBar)
	auxiliaryBarSize := visibleSize(nodes.AuxiliaryBar)
	panelSize := visibleSize(nodes.Panel)

	sideBarLeft := in.SideBarPosition == entity.PositionLeft

	if !in.PanelPosition.IsHorizontal() {
		nodes.Editor.Size = clampSize(availableWidth - activityBarSize - sideBarSize - panelSize - auxiliaryBarSize)

		result := []*entity.GridNode{nodes.Editor}
		if in.PanelPosition == entity.PositionRight {
			result = append(result, nodes.Panel)
		} else {
			result = prepend(result, nodes.Panel)
		}

		if sideBarLeft {
			result = prepend(result, nodes.SideBar)
			result = prepend(result, nodes.ActivityBar)
			result = append(result, nodes.AuxiliaryBar)
		} else {
			result = append(result, nodes.SideBar)
			result = append(result, nodes.ActivityBar)
			result = prepend(result, nodes.AuxiliaryBar)
		}
		return result
	}

	sideBarBeside := SideBarBesideEditor(in.SideBarPosition, in.PanelPosition, in.PanelAlignment)
	auxBeside := AuxiliaryBarBesideEditor(in.SideBarPosition, in.PanelPosition, in.PanelAlignment)

	editorSectionWidth := availableWidth - activityBarSize
	if !sideBarBeside {
		editorSectionWidth -= sideBarSize
	}
	if !auxBeside {
		editorSectionWidth -= auxiliaryBarSize
	}
	editorSectionWidth = clampSize(editorSectionWidth)

	var besideSideBar, besideAux *entity.GridNode
	if sideBarBeside {
		besideSideBar = nodes.SideBar
	}
	if auxBeside {
		besideAux = nodes.AuxiliaryBar
	}
	editorNodes := ArrangeEditorNodes(nodes.Editor, besideSideBar, besideAux,
		in.SideBarPosition, availableHeight-panelSize, editorSectionWidth)

	var column []*entity.GridNode
	if in.PanelPosition == entity.PositionBottom {
		column = []*entity.GridNode{editorNodes, nodes.Panel}
	} else {
		column = []*entity.GridNode{nodes.Panel, editorNodes}
	}

	result := []*entity.GridNode{entity.NewBranch(editorSectionWidth, column...)}

	if !sideBarBeside {
		if sideBarLeft {
			result = prepend(result, nodes.SideBar)
		} else {
			result = append(result, nodes.SideBar)
		}
	}
	if !auxBeside {
		if in.SideBarPosition == entity.PositionRight {
			result = prepend(result, nodes.AuxiliaryBar)
		} else {
			result = append(result, nodes.AuxiliaryBar)
		}
	}
	if sideBarLeft {
		result = prepend(result, nodes.ActivityBar)
	} else {
		result = append(result, nodes.ActivityBar)
	}
	return result
}

// BuildGridDescriptor produces the full grid tree for the given state.
func BuildGridDescriptor(in GridDescriptorInput) entity.GridDescriptor {
	constraints := in.Constraints
	if constraints == nil {
		constraints = entity.DefaultPartConstraints()
	}

	titleBarHeight := constraints[entity.PartTitlebar].MinimumHeight
	bannerHeight := constraints[entity.PartBanner].MinimumHeight
	statusBarHeight := constraints[entity.PartStatusBar].MinimumHeight
	activityBarWidth := constraints[entity.PartActivityBar].MinimumWidth

	titleBar := entity.NewLeaf(entity.PartTitlebar, titleBarHeight, in.TitlebarVisible)
	banner := entity.NewLeaf(entity.PartBanner, bannerHeight, false)
	statusBar := entity.NewLeaf(entity.PartStatusBar, statusBarHeight, in.StatusBarVisible)

	nodes := MiddleSectionNodes{
		ActivityBar:  entity.NewLeaf(entity.PartActivityBar, activityBarWidth, in.ActivityBarVisible),
		SideBar:      entity.NewLeaf(entity.PartSideBar, in.SideBarSize, in.SideBarVisible),
		Editor:       entity.NewLeaf(entity.PartEditor, 0, in.EditorVisible),
		Panel:        entity.NewLeaf(entity.PartPanel, in.PanelSize, in.PanelVisible),
		AuxiliaryBar: entity.NewLeaf(entity.PartAuxiliaryBar, in.AuxiliaryBarSize, in.AuxiliaryBarVisible),
	}

	middleHeight := clampSize(in.Height - visibleSize(titleBar) - visibleSize(statusBar))
	middle := entity.NewBranch(middleHeight, ArrangeMiddleSectionNodes(nodes, in, in.Width, middleHeight)...)

	top := []*entity.GridNode{titleBar, banner}
	if in.BannerFirst {
		top = []*entity.GridNode{banner, titleBar}
	}

	children := append(top, middle, statusBar)
	root := entity.NewBranch(in.Width, children...)

	return entity.GridDescriptor{
		Root:        root,
		Orientation: entity.OrientationVertical,
		Width:       in.Width,
		Height:      in.Height,
	}
}

func visibleSize(n *entity.GridNode) int {
	if n == nil || !n.Visible {
		return 0
	}
	return n.Size
}

func clampSize(size int) int {
	if size < 0 {
		return 0
	}
	return size
}

func prepend(nodes []*entity.GridNode, n *entity.GridNode) []*entity.GridNode {
	return append([]*entity.GridNode{n}, nodes...)
}
