package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/workbench/internal/domain/entity"
)

// LayoutSummary is what the status line of a layout preview shows.
type LayoutSummary struct {
	Container        entity.Dimension
	SideBar          entity.Position
	Panel            entity.Position
	Alignment        entity.PanelAlignment
	PanelMaximized   bool
	AuxiliaryMaxed   bool
	ZenMode          bool
	EditorCentered   bool
	Classes          []string
	Focused          entity.Part
	HasFocusedPart   bool
	SelectedPart     entity.Part
	HasSelectedPart  bool
	SelectedPartSize entity.Dimension
}

// LayoutRenderer draws workbench grids in the terminal.
type LayoutRenderer struct {
	theme *Theme
}

// NewLayoutRenderer creates a layout renderer with the given theme.
func NewLayoutRenderer(theme *Theme) *LayoutRenderer {
	return &LayoutRenderer{theme: theme}
}

// RenderPreview scales the part rectangles of a container into a cols x rows
// box drawing. Parts with an empty rectangle are hidden and not drawn.
func (r *LayoutRenderer) RenderPreview(rects map[entity.Part]entity.Rect, container entity.Dimension, cols, rows int) string {
	if container.Width <= 0 || container.Height <= 0 || cols < 2 || rows < 2 {
		return r.theme.Subtle.Render("(nothing to draw)")
	}

	c := newCanvas(cols, rows)
	scaleX := func(x int) int { return x * (cols - 1) / container.Width }
	scaleY := func(y int) int { return y * (rows - 1) / container.Height }

	for _, part := range entity.AllParts() {
		rect, ok := rects[part]
		if !ok || rect.W <= 0 || rect.H <= 0 {
			continue
		}
		x0, x1 := scaleX(rect.X), scaleX(rect.X+rect.W)
		y0, y1 := scaleY(rect.Y), scaleY(rect.Y+rect.H)
		c.box(x0, y0, x1, y1, part)
		c.label(x0, y0, x1, y1, part.ShortName(), part)
	}

	lines := make([]string, rows)
	for y := range rows {
		lines[y] = c.renderRow(y, r.theme)
	}
	return strings.Join(lines, "\n")
}

// RenderTree renders the grid descriptor as an indented tree.
func (r *LayoutRenderer) RenderTree(desc entity.GridDescriptor) string {
	if desc.Root == nil {
		return r.theme.Subtle.Render("(empty grid)")
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s\n",
		lipgloss.NewStyle().Foreground(r.theme.Accent).Render(IconTree),
		r.theme.Title.Render(fmt.Sprintf("grid %dx%d", desc.Width, desc.Height)),
	)

	orientation := desc.Orientation
	var walk func(n *entity.GridNode, depth int, o entity.Orientation)
	walk = func(n *entity.GridNode, depth int, o entity.Orientation) {
		indent := strings.Repeat("  ", depth+1)
		if n.IsLeaf() {
			icon, style := IconEye, r.theme.PartStyle(n.Part)
			if !n.Visible {
				icon, style = IconEyeSlash, r.theme.Subtle
			}
			fmt.Fprintf(&sb, "%s%s %s %s\n", indent, icon, style.Render(n.Part.ShortName()), r.theme.Subtle.Render(fmt.Sprintf("%d", n.Size)))
			return
		}
		fmt.Fprintf(&sb, "%s%s %s\n", indent, r.theme.Subtitle.Render(o.String()), r.theme.Subtle.Render(fmt.Sprintf("%d", n.Size)))
		for _, child := range n.Children {
			walk(child, depth+1, o.Orthogonal())
		}
	}
	walk(desc.Root, 0, orientation)

	return strings.TrimRight(sb.String(), "\n")
}

// RenderSummary renders the one-line status of a layout.
func (r *LayoutRenderer) RenderSummary(s LayoutSummary) string {
	label := r.theme.Subtle
	value := r.theme.Normal

	fields := []string{
		label.Render("size ") + value.Render(fmt.Sprintf("%dx%d", s.Container.Width, s.Container.Height)),
		label.Render("sidebar ") + value.Render(s.SideBar.String()),
		label.Render("panel ") + value.Render(fmt.Sprintf("%s/%s", s.Panel, s.Alignment)),
	}

	var flags []string
	if s.PanelMaximized {
		flags = append(flags, IconExpand+" panel")
	}
	if s.AuxiliaryMaxed {
		flags = append(flags, IconExpand+" auxiliarybar")
	}
	if s.ZenMode {
		flags = append(flags, "zen")
	}
	if s.EditorCentered {
		flags = append(flags, "centered")
	}
	if len(flags) > 0 {
		fields = append(fields, r.theme.Highlight.Render(strings.Join(flags, " ")))
	}
	if s.HasFocusedPart {
		fields = append(fields, label.Render("focus ")+r.theme.PartStyle(s.Focused).Render(s.Focused.ShortName()))
	}
	if s.HasSelectedPart {
		fields = append(fields, label.Render("selected ")+r.theme.PartStyle(s.SelectedPart).Render(
			fmt.Sprintf("%s %dx%d", s.SelectedPart.ShortName(), s.SelectedPartSize.Width, s.SelectedPartSize.Height)))
	}
	if len(s.Classes) > 0 {
		fields = append(fields, label.Render(strings.Join(s.Classes, " ")))
	}

	return strings.Join(fields, label.Render(" • "))
}

// RenderApplied renders the confirmation printed after a layout command.
func (r *LayoutRenderer) RenderApplied(action string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	return fmt.Sprintf("  %s %s", iconStyle.Render(IconCheck), r.theme.Normal.Render(action))
}

// RenderError renders a failed layout command.
func (r *LayoutRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)
	return fmt.Sprintf("  %s %v", iconStyle.Render(IconX), err)
}

type cell struct {
	ch   rune
	part entity.Part
}

type canvas struct {
	cols, rows int
	cells      [][]cell
}

func newCanvas(cols, rows int) *canvas {
	cells := make([][]cell, rows)
	for y := range cells {
		cells[y] = make([]cell, cols)
		for x := range cells[y] {
			cells[y][x] = cell{ch: ' '}
		}
	}
	return &canvas{cols: cols, rows: rows, cells: cells}
}

func (c *canvas) set(x, y int, ch rune, part entity.Part) {
	if x < 0 || y < 0 || x >= c.cols || y >= c.rows {
		return
	}
	c.cells[y][x] = cell{ch: ch, part: part}
}

// box draws the outline of a part. Degenerate boxes collapse to a line.
func (c *canvas) box(x0, y0, x1, y1 int, part entity.Part) {
	if x1 <= x0 && y1 <= y0 {
		c.set(x0, y0, '■', part)
		return
	}
	for x := x0; x <= x1; x++ {
		c.set(x, y0, '─', part)
		c.set(x, y1, '─', part)
	}
	for y := y0; y <= y1; y++ {
		c.set(x0, y, '│', part)
		c.set(x1, y, '│', part)
	}
	if x1 > x0 && y1 > y0 {
		c.set(x0, y0, '┌', part)
		c.set(x1, y0, '┐', part)
		c.set(x0, y1, '└', part)
		c.set(x1, y1, '┘', part)
	}
}

// label writes name inside the box, truncated to the inner width.
func (c *canvas) label(x0, y0, x1, y1 int, name string, part entity.Part) {
	inner := x1 - x0 - 1
	if inner <= 0 {
		return
	}
	y := y0 + 1
	if y1-y0 < 2 {
		y = y0
	}
	runes := []rune(name)
	if len(runes) > inner {
		runes = runes[:inner]
	}
	for i, ch := range runes {
		c.set(x0+1+i, y, ch, part)
	}
}

func (c *canvas) renderRow(y int, theme *Theme) string {
	var sb strings.Builder
	row := c.cells[y]
	start := 0
	for x := 1; x <= len(row); x++ {
		if x < len(row) && row[x].part == row[start].part {
			continue
		}
		var seg strings.Builder
		for _, cl := range row[start:x] {
			seg.WriteRune(cl.ch)
		}
		if row[start].part == "" {
			sb.WriteString(seg.String())
		} else {
			sb.WriteString(theme.PartStyle(row[start].part).Render(seg.String()))
		}
		start = x
	}
	return sb.String()
}
