package model

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/workbench/internal/cli"
	"github.com/bnema/workbench/internal/cli/styles"
	"github.com/bnema/workbench/internal/domain/entity"
)

func newTestLayoutModel(t *testing.T) (LayoutModel, *cli.Workbench) {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("ENV", "")

	app, err := cli.NewApp(cli.Options{
		ConfigFile: filepath.Join(dir, "config.toml"),
		DBPath:     filepath.Join(dir, "layout.sqlite"),
		LogLevel:   "error",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	ctx := context.Background()
	wb, err := app.OpenWorkbench(ctx, cli.WorkbenchOptions{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = wb.Close(ctx) })

	m := NewLayoutModel(ctx, styles.NewTheme(), LayoutModelConfig{
		Workbench:    wb,
		Settings:     app.Settings,
		PollInterval: time.Hour,
	})
	t.Cleanup(m.Close)
	return m, wb
}

func keyPress(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press feeds a key to the model and runs the action it returns.
func press(t *testing.T, m LayoutModel, s string) LayoutModel {
	t.Helper()

	next, cmd := m.Update(keyPress(s))
	m = next.(LayoutModel)
	require.NotNil(t, cmd)

	next, _ = m.Update(cmd())
	return next.(LayoutModel)
}

func TestLayoutModel_ToggleSideBar(t *testing.T) {
	m, wb := newTestLayoutModel(t)
	require.True(t, wb.Layout.IsVisible(entity.PartSideBar))

	m = press(t, m, "b")

	assert.False(t, wb.Layout.IsVisible(entity.PartSideBar))
	assert.NoError(t, m.err)
	assert.Contains(t, m.View(), "toggled sidebar")
}

func TestLayoutModel_PanelKeys(t *testing.T) {
	m, wb := newTestLayoutModel(t)

	m = press(t, m, "j")
	require.True(t, wb.Layout.IsVisible(entity.PartPanel))

	m = press(t, m, "p")
	assert.Equal(t, entity.PositionRight, wb.Layout.PanelPosition())

	m = press(t, m, "M")
	assert.True(t, wb.Layout.IsPanelMaximized())
	assert.Equal(t, "panel maximize toggled", m.lastAction)
}

func TestLayoutModel_ZenAndCenter(t *testing.T) {
	m, wb := newTestLayoutModel(t)

	m = press(t, m, "z")
	assert.True(t, wb.Layout.IsZenModeActive())

	m = press(t, m, "z")
	assert.False(t, wb.Layout.IsZenModeActive())

	press(t, m, "c")
	assert.True(t, wb.Layout.IsMainEditorLayoutCentered())
}

func TestLayoutModel_WindowSizeResizesContainer(t *testing.T) {
	m, wb := newTestLayoutModel(t)

	next, cmd := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(LayoutModel)

	assert.Nil(t, cmd)
	want := entity.Dimension{Width: 120 * cellWidth, Height: (40 - footerLines) * cellHeight}
	assert.Equal(t, want, m.containerSize())
	require.Eventually(t, func() bool {
		return wb.Layout.Container() == want
	}, time.Second, 10*time.Millisecond)
}

func TestLayoutModel_NextPartSkipsHiddenParts(t *testing.T) {
	m, wb := newTestLayoutModel(t)
	// A new profile shows the auxiliary bar while the panel starts hidden.
	require.False(t, wb.Layout.IsVisible(entity.PartPanel))
	require.True(t, wb.Layout.IsVisible(entity.PartAuxiliaryBar))
	require.Equal(t, entity.PartEditor, selectableParts[m.selected])

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(LayoutModel)

	assert.Nil(t, cmd)
	assert.Equal(t, entity.PartAuxiliaryBar, selectableParts[m.selected])

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(LayoutModel)
	assert.Equal(t, entity.PartSideBar, selectableParts[m.selected])
}

func TestLayoutModel_NextPartSkipsHiddenAuxiliaryBar(t *testing.T) {
	m, wb := newTestLayoutModel(t)
	require.NoError(t, wb.Layout.SetPartHidden(context.Background(), entity.PartAuxiliaryBar, true))
	require.False(t, wb.Layout.IsVisible(entity.PartAuxiliaryBar))

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(LayoutModel)

	assert.Equal(t, entity.PartSideBar, selectableParts[m.selected])
}

func TestLayoutModel_GrowSideBar(t *testing.T) {
	m, wb := newTestLayoutModel(t)
	m.selected = 0
	before := wb.Layout.GetSize(entity.PartSideBar)

	m = press(t, m, "+")

	require.NoError(t, m.err)
	assert.Greater(t, wb.Layout.GetSize(entity.PartSideBar).Width, before.Width)
}

func TestLayoutModel_QuitAndHelp(t *testing.T) {
	m, _ := newTestLayoutModel(t)

	next, cmd := m.Update(keyPress("?"))
	m = next.(LayoutModel)
	assert.Nil(t, cmd)
	assert.True(t, m.help.ShowAll)

	_, cmd = m.Update(keyPress("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestLayoutModel_PollSchedulesNext(t *testing.T) {
	m, _ := newTestLayoutModel(t)

	msg := m.poll()
	require.IsType(t, storagePolledMsg{}, msg)
	assert.NoError(t, msg.(storagePolledMsg).err)

	_, cmd := m.Update(msg)
	assert.NotNil(t, cmd)
}

func TestLayoutModel_ChangesAreSignalled(t *testing.T) {
	m, wb := newTestLayoutModel(t)

	require.NoError(t, wb.Layout.SetPartHidden(context.Background(), entity.PartStatusBar, true))

	select {
	case <-m.changes:
	case <-time.After(time.Second):
		t.Fatal("no layout change signalled")
	}
}

func TestResizeDelta(t *testing.T) {
	tests := []struct {
		name   string
		part   entity.Part
		panel  entity.Position
		dw, dh int
	}{
		{"side bar grows in width", entity.PartSideBar, entity.PositionBottom, 20, 0},
		{"bottom panel grows in height", entity.PartPanel, entity.PositionBottom, 0, 20},
		{"right panel grows in width", entity.PartPanel, entity.PositionRight, 20, 0},
		{"editor grows both ways", entity.PartEditor, entity.PositionBottom, 20, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dw, dh := resizeDelta(tt.part, tt.panel, 20)
			assert.Equal(t, tt.dw, dw)
			assert.Equal(t, tt.dh, dh)
		})
	}
}

func TestCycles(t *testing.T) {
	assert.Equal(t, entity.PositionRight, nextPosition(entity.PositionBottom))
	assert.Equal(t, entity.PositionBottom, nextPosition(entity.PositionLeft))
	assert.Equal(t, entity.AlignmentRight, nextAlignment(entity.AlignmentCenter))
	assert.Equal(t, entity.AlignmentLeft, nextAlignment(entity.AlignmentJustify))
}
