package cli

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/workbench/internal/domain/entity"
)

func newTestApp(t *testing.T, opts Options) *App {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("ENV", "")
	if opts.ConfigFile == "" {
		opts.ConfigFile = filepath.Join(dir, "config.toml")
	}
	if opts.DBPath == "" {
		opts.DBPath = filepath.Join(dir, "layout.sqlite")
	}

	app, err := NewApp(opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })
	return app
}

func TestNewApp_Defaults(t *testing.T) {
	app := newTestApp(t, Options{LogLevel: "error"})

	assert.Equal(t, "default", app.WorkspaceID())
	assert.Equal(t, "default", app.ProfileID())
	assert.FileExists(t, app.Manager.GetConfigFile())
	assert.NotNil(t, app.Ctx())
}

func TestNewApp_FlagsOverrideConfig(t *testing.T) {
	app := newTestApp(t, Options{WorkspaceID: "ws-a", ProfileID: "work"})

	assert.Equal(t, "ws-a", app.WorkspaceID())
	assert.Equal(t, "work", app.ProfileID())
}

func TestWorkbench_StatePersistsAcrossRuns(t *testing.T) {
	app := newTestApp(t, Options{})
	ctx := context.Background()

	wb, err := app.OpenWorkbench(ctx, WorkbenchOptions{})
	require.NoError(t, err)
	assert.True(t, wb.Layout.IsVisible(entity.PartSideBar))
	require.NoError(t, wb.Layout.SetPartHidden(ctx, entity.PartSideBar, true))
	require.NoError(t, wb.Layout.SetSideBarPosition(ctx, entity.PositionRight))
	require.NoError(t, wb.Close(ctx))
	require.NoError(t, wb.Close(ctx), "close is idempotent")

	reopened, err := app.OpenWorkbench(ctx, WorkbenchOptions{})
	require.NoError(t, err)
	defer func() { _ = reopened.Close(ctx) }()

	assert.False(t, reopened.Layout.IsVisible(entity.PartSideBar))
	assert.Equal(t, entity.PositionRight, reopened.Layout.SideBarPosition())
}

func TestWorkbench_WorkspacesAreIsolated(t *testing.T) {
	dir := t.TempDir()
	shared := Options{
		ConfigFile: filepath.Join(dir, "config.toml"),
		DBPath:     filepath.Join(dir, "layout.sqlite"),
	}
	ctx := context.Background()

	one := shared
	one.WorkspaceID = "one"
	first := newTestApp(t, one)
	wb, err := first.OpenWorkbench(ctx, WorkbenchOptions{})
	require.NoError(t, err)
	require.False(t, wb.Layout.IsVisible(entity.PartPanel))
	require.NoError(t, wb.Layout.SetPartHidden(ctx, entity.PartPanel, false))
	require.NoError(t, wb.Close(ctx))
	require.NoError(t, first.Close())

	two := shared
	two.WorkspaceID = "two"
	second := newTestApp(t, two)
	other, err := second.OpenWorkbench(ctx, WorkbenchOptions{})
	require.NoError(t, err)
	defer func() { _ = other.Close(ctx) }()
	assert.False(t, other.Layout.IsVisible(entity.PartPanel))

	again := newTestApp(t, one)
	restored, err := again.OpenWorkbench(ctx, WorkbenchOptions{})
	require.NoError(t, err)
	defer func() { _ = restored.Close(ctx) }()
	assert.True(t, restored.Layout.IsVisible(entity.PartPanel))
}

func TestWorkbench_ResetIgnoresStoredState(t *testing.T) {
	app := newTestApp(t, Options{})
	ctx := context.Background()

	wb, err := app.OpenWorkbench(ctx, WorkbenchOptions{})
	require.NoError(t, err)
	require.NoError(t, wb.Layout.SetPanelPosition(ctx, entity.PositionRight))
	require.NoError(t, wb.Close(ctx))

	reset, err := app.OpenWorkbench(ctx, WorkbenchOptions{Reset: true})
	require.NoError(t, err)
	defer func() { _ = reset.Close(ctx) }()

	assert.Equal(t, entity.PositionBottom, reset.Layout.PanelPosition())
}

func TestWorkbench_RectsFollowResize(t *testing.T) {
	app := newTestApp(t, Options{})
	ctx := context.Background()

	wb, err := app.OpenWorkbench(ctx, WorkbenchOptions{Size: entity.Dimension{Width: 1000, Height: 700}})
	require.NoError(t, err)
	defer func() { _ = wb.Close(ctx) }()

	rects := wb.Rects()
	editor, ok := rects[entity.PartEditor]
	require.True(t, ok)
	assert.Positive(t, editor.W)
	assert.LessOrEqual(t, editor.X+editor.W, 1000)

	require.NoError(t, wb.Resize(ctx, entity.Dimension{Width: 1600, Height: 900}))
	assert.Greater(t, wb.Rects()[entity.PartEditor].W, editor.W)
	assert.Equal(t, entity.Dimension{Width: 1600, Height: 900}, wb.Layout.Container())
}

func TestApp_ResetLayout(t *testing.T) {
	app := newTestApp(t, Options{})
	ctx := context.Background()

	wb, err := app.OpenWorkbench(ctx, WorkbenchOptions{})
	require.NoError(t, err)
	require.NoError(t, wb.Layout.SetPartHidden(ctx, entity.PartSideBar, true))
	require.NoError(t, wb.Layout.SetPanelAlignment(ctx, entity.AlignmentJustify))
	require.NoError(t, wb.Close(ctx))

	require.NoError(t, app.ResetLayout(ctx, false))

	reopened, err := app.OpenWorkbench(ctx, WorkbenchOptions{})
	require.NoError(t, err)
	assert.True(t, reopened.Layout.IsVisible(entity.PartSideBar))
	assert.Equal(t, entity.AlignmentJustify, reopened.Layout.PanelAlignment(), "profile rows are kept")
	require.NoError(t, reopened.Close(ctx))

	require.NoError(t, app.ResetLayout(ctx, true))

	storage, err := app.OpenStorage(ctx)
	require.NoError(t, err)
	values, err := storage.Snapshot(ctx, entity.ScopeProfile)
	require.NoError(t, err)
	assert.Empty(t, values)
}
