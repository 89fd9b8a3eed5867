package styles_test

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/workbench/internal/cli/styles"
	"github.com/bnema/workbench/internal/domain/entity"
)

func TestLayoutRenderer_RenderPreview(t *testing.T) {
	r := styles.NewLayoutRenderer(styles.NewTheme())
	container := entity.Dimension{Width: 1000, Height: 500}
	rects := map[entity.Part]entity.Rect{
		entity.PartSideBar: {X: 0, Y: 0, W: 300, H: 500},
		entity.PartEditor:  {X: 300, Y: 0, W: 700, H: 500},
		entity.PartPanel:   {},
	}

	out := r.RenderPreview(rects, container, 60, 12)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 12)
	assert.Contains(t, out, "sidebar")
	assert.Contains(t, out, "editor")
	assert.NotContains(t, out, "panel", "hidden parts are not drawn")
	assert.True(t, strings.HasPrefix(lines[0], "┌"))
}

func TestLayoutRenderer_RenderPreview_Degenerate(t *testing.T) {
	r := styles.NewLayoutRenderer(styles.NewTheme())

	out := r.RenderPreview(nil, entity.Dimension{}, 60, 12)

	assert.Contains(t, out, "nothing to draw")
}

func TestLayoutRenderer_RenderTree(t *testing.T) {
	r := styles.NewLayoutRenderer(styles.NewTheme())
	desc := entity.GridDescriptor{
		Width:       800,
		Height:      600,
		Orientation: entity.OrientationVertical,
		Root: entity.NewBranch(600,
			entity.NewLeaf(entity.PartTitlebar, 30, true),
			entity.NewBranch(570,
				entity.NewLeaf(entity.PartSideBar, 200, false),
				entity.NewLeaf(entity.PartEditor, 600, true),
			),
		),
	}

	out := r.RenderTree(desc)

	assert.Contains(t, out, "grid 800x600")
	assert.Contains(t, out, "vertical")
	assert.Contains(t, out, "horizontal")
	assert.Contains(t, out, styles.IconEyeSlash+" sidebar 200")
	assert.Contains(t, out, styles.IconEye+" editor 600")
	assert.Contains(t, r.RenderTree(entity.GridDescriptor{}), "empty grid")
}

func TestLayoutRenderer_RenderSummary(t *testing.T) {
	r := styles.NewLayoutRenderer(styles.NewTheme())

	out := r.RenderSummary(styles.LayoutSummary{
		Container:      entity.Dimension{Width: 1200, Height: 800},
		SideBar:        entity.PositionRight,
		Panel:          entity.PositionBottom,
		Alignment:      entity.AlignmentCenter,
		PanelMaximized: true,
		ZenMode:        true,
		Classes:        []string{"nosidebar"},
	})

	assert.Contains(t, out, "1200x800")
	assert.Contains(t, out, "sidebar right")
	assert.Contains(t, out, "panel bottom/center")
	assert.Contains(t, out, "zen")
	assert.Contains(t, out, "nosidebar")
}

func TestStateRows(t *testing.T) {
	rows := styles.StateRows(map[string]any{
		entity.KeySideBarPosition.Name(): entity.PositionRight,
		entity.KeyPanelHidden.Name():     true,
		"unknown.key":                    nil,
	})

	require.Len(t, rows, 3)
	for _, row := range rows {
		switch row[0] {
		case entity.KeySideBarPosition.Name():
			assert.Equal(t, "right", row[2])
			assert.Equal(t, entity.KeySideBarPosition.Scope().String(), row[1])
		case entity.KeyPanelHidden.Name():
			assert.Equal(t, "true", row[2])
		case "unknown.key":
			assert.Equal(t, "", row[1])
			assert.Equal(t, "-", row[2])
		}
	}
	assert.Less(t, rows[0][0], rows[1][0])
}

func TestConfirmModel(t *testing.T) {
	press := func(m styles.ConfirmModel, keys ...string) styles.ConfirmModel {
		for _, k := range keys {
			var msg tea.KeyMsg
			switch k {
			case "enter":
				msg = tea.KeyMsg{Type: tea.KeyEnter}
			case "esc":
				msg = tea.KeyMsg{Type: tea.KeyEsc}
			case "tab":
				msg = tea.KeyMsg{Type: tea.KeyTab}
			default:
				msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
			}
			m, _ = m.Update(msg)
		}
		return m
	}
	theme := styles.NewTheme()

	t.Run("defaults to no", func(t *testing.T) {
		m := press(styles.NewConfirm(theme, "Reset layout?"), "enter")
		assert.True(t, m.Done())
		assert.False(t, m.Result())
	})

	t.Run("yes then confirm", func(t *testing.T) {
		m := press(styles.NewConfirm(theme, "Reset layout?"), "y", "enter")
		assert.True(t, m.Result())
	})

	t.Run("tab toggles", func(t *testing.T) {
		m := press(styles.NewConfirm(theme, "Reset layout?"), "tab")
		assert.True(t, m.Selected())
		m = press(m, "tab")
		assert.False(t, m.Selected())
	})

	t.Run("escape cancels and ignores later keys", func(t *testing.T) {
		m := press(styles.NewConfirm(theme, "Reset layout?"), "esc", "y", "enter")
		assert.True(t, m.Done())
		assert.False(t, m.Result())
	})

	t.Run("view shows message and details", func(t *testing.T) {
		view := styles.NewConfirm(theme, "Reset layout?").WithDetails("12 keys").View()
		assert.Contains(t, view, "Reset layout?")
		assert.Contains(t, view, "12 keys")
	})
}
