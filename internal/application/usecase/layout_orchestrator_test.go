package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/workbench/internal/application/port/mocks"
	"github.com/bnema/workbench/internal/application/usecase"
	"github.com/bnema/workbench/internal/domain/entity"
	"github.com/bnema/workbench/internal/infrastructure/grid"
	"github.com/bnema/workbench/internal/infrastructure/headless"
	"github.com/bnema/workbench/internal/ui/mainloop"
)

const (
	waitFor = time.Second
	tick    = 5 * time.Millisecond
)

// layoutHarness wires an orchestrator to in-memory collaborators and a
// mocked configuration whose settings and change events the test drives.
type layoutHarness struct {
	t *testing.T

	mu        sync.Mutex
	settings  entity.WorkbenchSettings
	listeners map[int]func(ctx context.Context, change entity.ConfigurationChange)
	nextID    int

	config       *mocks.MockConfiguration
	storage      *headless.MemoryStorage
	wb           *headless.Workbench
	loop         *mainloop.Serializer
	orchestrator *usecase.LayoutOrchestrator
}

func newLayoutHarness(t *testing.T, storage *headless.MemoryStorage, opts ...usecase.LayoutOption) *layoutHarness {
	t.Helper()

	if storage == nil {
		storage = headless.NewMemoryStorage(nil)
	}
	h := &layoutHarness{
		t:         t,
		settings:  entity.DefaultWorkbenchSettings(),
		listeners: make(map[int]func(ctx context.Context, change entity.ConfigurationChange)),
		config:    mocks.NewMockConfiguration(t),
		storage:   storage,
		wb:        headless.NewWorkbench(1),
		loop:      mainloop.NewSerializer(),
	}
	t.Cleanup(h.loop.Close)

	h.config.EXPECT().Settings().RunAndReturn(func() entity.WorkbenchSettings {
		h.mu.Lock()
		defer h.mu.Unlock()
		return h.settings
	}).Maybe()
	h.config.EXPECT().OnDidChangeConfiguration(mock.Anything).
		RunAndReturn(func(fn func(context.Context, entity.ConfigurationChange)) func() {
			h.mu.Lock()
			id := h.nextID
			h.nextID++
			h.listeners[id] = fn
			h.mu.Unlock()
			return func() {
				h.mu.Lock()
				delete(h.listeners, id)
				h.mu.Unlock()
			}
		}).Maybe()
	h.config.EXPECT().UpdateSetting(mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()

	h.orchestrator = usecase.NewLayoutOrchestrator(h.deps(grid.NewFactory()), opts...)
	return h
}

func (h *layoutHarness) deps(grids *grid.Factory) usecase.LayoutDependencies {
	return usecase.LayoutDependencies{
		Storage:        h.storage,
		Config:         h.config,
		Grids:          grids,
		PaneComposites: h.wb.Composites,
		ViewContainers: h.wb.Containers,
		EditorGroups:   h.wb.Editors,
		Window:         h.wb.Window,
		Focus:          h.wb.Focus,
		Notifications:  h.wb.Notifications,
		Loop:           h.loop,
	}
}

// start initializes, lays out and restores a 1200x800 folder window.
func (h *layoutHarness) start() *usecase.LayoutOrchestrator {
	h.t.Helper()
	ctx := context.Background()
	o := h.orchestrator

	require.NoError(h.t, o.Initialize(ctx, usecase.InitOptions{
		LoadOptions: usecase.LoadOptions{
			Container:      entity.Dimension{Width: 1200, Height: 800},
			WorkbenchState: entity.WorkbenchFolder,
		},
	}))
	require.NoError(h.t, o.Layout(ctx, 1200, 800))
	require.NoError(h.t, o.Restore(ctx))
	return o
}

func (h *layoutHarness) updateSettings(mutate func(s *entity.WorkbenchSettings), keys ...string) {
	h.mu.Lock()
	mutate(&h.settings)
	listeners := make([]func(context.Context, entity.ConfigurationChange), 0, len(h.listeners))
	for id := 0; id < h.nextID; id++ {
		if fn, ok := h.listeners[id]; ok {
			listeners = append(listeners, fn)
		}
	}
	h.mu.Unlock()

	change := entity.ConfigurationChange{Keys: keys}
	for _, fn := range listeners {
		fn(context.Background(), change)
	}
}

// recordEvents collects layout events of kind.
func recordEvents(o *usecase.LayoutOrchestrator, kind entity.LayoutEventKind) func() []entity.LayoutEvent {
	var (
		mu     sync.Mutex
		events []entity.LayoutEvent
	)
	o.OnDidChangeLayout(func(_ context.Context, event entity.LayoutEvent) {
		if event.Kind != kind {
			return
		}
		mu.Lock()
		events = append(events, event)
		mu.Unlock()
	})
	return func() []entity.LayoutEvent {
		mu.Lock()
		defer mu.Unlock()
		return append([]entity.LayoutEvent(nil), events...)
	}
}

func TestLayoutOrchestrator_Initialize(t *testing.T) {
	t.Run("fresh folder window uses defaults", func(t *testing.T) {
		// Arrange
		h := newLayoutHarness(t, nil)

		// Act
		o := h.start()

		// Assert
		assert.True(t, o.IsInitialized())
		assert.True(t, o.IsVisible(entity.PartSideBar))
		assert.True(t, o.IsVisible(entity.PartEditor))
		assert.True(t, o.IsVisible(entity.PartAuxiliaryBar))
		assert.False(t, o.IsVisible(entity.PartPanel))
		assert.False(t, o.IsVisible(entity.PartBanner))
		assert.Equal(t, entity.PositionLeft, o.SideBarPosition())
		assert.Equal(t, entity.PositionBottom, o.PanelPosition())

		assert.Equal(t, entity.Dimension{Width: 300, Height: 743}, o.GetSize(entity.PartSideBar))
		assert.Equal(t, entity.Dimension{Width: 300, Height: 743}, o.GetSize(entity.PartAuxiliaryBar))
		assert.Equal(t, entity.Dimension{Width: 552, Height: 743}, o.GetSize(entity.PartEditor))
		assert.Equal(t, entity.Dimension{Width: 812, Height: 743},
			o.GetMaximumEditorDimensions(entity.Dimension{Width: 1200, Height: 800}))
		assert.Equal(t, []string{"nopanel"}, o.LayoutClasses())
	})

	t.Run("view containers are restored for visible parts", func(t *testing.T) {
		// Arrange
		h := newLayoutHarness(t, nil)

		// Act
		o := h.start()

		// Assert
		id, ok := o.ContainerToRestore(entity.LocationSideBar)
		assert.True(t, ok)
		assert.Equal(t, "workbench.view.explorer", id)
		id, ok = o.ContainerToRestore(entity.LocationAuxiliaryBar)
		assert.True(t, ok)
		assert.Equal(t, "workbench.panel.chat", id)
		_, ok = o.ContainerToRestore(entity.LocationPanel)
		assert.False(t, ok)

		active, ok := h.wb.Composites.ActivePaneCompositeID(entity.LocationSideBar)
		assert.True(t, ok)
		assert.Equal(t, "workbench.view.explorer", active)
		assert.True(t, o.HasFocus(entity.PartEditor))
	})

	t.Run("stored workspace state wins over defaults", func(t *testing.T) {
		// Arrange
		position, err := entity.KeyPanelPosition.Encode(entity.PositionRight)
		require.NoError(t, err)
		storage := headless.NewMemoryStorage(map[entity.StorageScope]map[string]string{
			entity.ScopeWorkspace: {
				entity.KeySideBarHidden.StorageKey(): "true",
				entity.KeyPanelHidden.StorageKey():   "false",
				entity.KeyPanelPosition.StorageKey(): position,
			},
		})
		h := newLayoutHarness(t, storage)

		// Act
		o := h.start()

		// Assert
		assert.Equal(t, entity.PositionRight, o.PanelPosition())
		assert.False(t, o.IsVisible(entity.PartSideBar))
		assert.True(t, o.IsVisible(entity.PartPanel))
		assert.Equal(t, entity.Dimension{Width: 300, Height: 743}, o.GetSize(entity.PartPanel))
		assert.Equal(t, entity.Dimension{Width: 552, Height: 743}, o.GetSize(entity.PartEditor))

		id, ok := o.ContainerToRestore(entity.LocationPanel)
		assert.True(t, ok)
		assert.Equal(t, "workbench.panel.terminal", id)
		_, ok = o.ContainerToRestore(entity.LocationSideBar)
		assert.False(t, ok)

		neighbor, ok := o.GetVisibleNeighborPart(entity.PartEditor, entity.DirectionRight)
		assert.True(t, ok)
		assert.Equal(t, entity.PartPanel, neighbor)
	})

	t.Run("grid factory errors are wrapped", func(t *testing.T) {
		// Arrange
		h := newLayoutHarness(t, nil)
		factory := mocks.NewMockGridFactory(t)
		boom := errors.New("boom")
		factory.EXPECT().NewGrid(mock.Anything, mock.Anything, mock.Anything).Return(nil, boom)
		deps := h.deps(nil)
		deps.Grids = factory
		o := usecase.NewLayoutOrchestrator(deps)

		// Act
		err := o.Initialize(context.Background(), usecase.InitOptions{
			LoadOptions: usecase.LoadOptions{Container: entity.Dimension{Width: 1200, Height: 800}},
		})

		// Assert
		require.Error(t, err)
		assert.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "failed to create layout grid")
	})
}

func TestLayoutOrchestrator_BeforeInitialize(t *testing.T) {
	// Arrange
	h := newLayoutHarness(t, nil)
	o := h.orchestrator
	ctx := context.Background()

	// Act & Assert
	require.NoError(t, o.SetPartHidden(ctx, entity.PartSideBar, true))
	require.NoError(t, o.ToggleMaximizedPanel(ctx))
	require.NoError(t, o.ToggleZenMode(ctx))
	require.NoError(t, o.Restore(ctx))

	assert.False(t, o.IsInitialized())
	assert.False(t, o.IsZenModeActive())
	assert.Equal(t, entity.Dimension{}, o.GetSize(entity.PartEditor))
	_, err := o.GridSnapshot()
	assert.ErrorIs(t, err, usecase.ErrGridNotInitialized)
}

func TestLayoutOrchestrator_SetPartHidden(t *testing.T) {
	t.Run("rejects unknown parts", func(t *testing.T) {
		o := newLayoutHarness(t, nil).start()

		err := o.SetPartHidden(context.Background(), entity.Part("workbench.parts.bogus"), true)

		assert.ErrorIs(t, err, entity.ErrUnknownPart)
	})

	t.Run("hiding the side bar gives its width to the editor", func(t *testing.T) {
		// Arrange
		h := newLayoutHarness(t, nil)
		o := h.start()
		events := recordEvents(o, entity.LayoutEventPartVisibilityChanged)

		// Act
		require.NoError(t, o.TogglePart(context.Background(), entity.PartSideBar))

		// Assert
		assert.False(t, o.IsVisible(entity.PartSideBar))
		assert.Equal(t, 852, o.GetSize(entity.PartEditor).Width)
		_, active := h.wb.Composites.ActivePaneCompositeID(entity.LocationSideBar)
		assert.False(t, active)
		assert.Equal(t, []entity.LayoutEvent{
			{Kind: entity.LayoutEventPartVisibilityChanged, Part: entity.PartSideBar, Visible: false},
		}, events())

		// Act
		require.NoError(t, o.TogglePart(context.Background(), entity.PartSideBar))

		// Assert
		assert.True(t, o.IsVisible(entity.PartSideBar))
		assert.Equal(t, 300, o.GetSize(entity.PartSideBar).Width)
		assert.Equal(t, 552, o.GetSize(entity.PartEditor).Width)
		assert.True(t, o.HasFocus(entity.PartSideBar))
	})

	t.Run("editor and panel are never both hidden", func(t *testing.T) {
		// Arrange
		o := newLayoutHarness(t, nil).start()
		ctx := context.Background()

		// Act
		require.NoError(t, o.SetPartHidden(ctx, entity.PartEditor, true))

		// Assert
		assert.False(t, o.IsVisible(entity.PartEditor))
		assert.True(t, o.IsVisible(entity.PartPanel))
		assert.True(t, o.IsPanelMaximized())
		assert.Equal(t, entity.Dimension{Width: 552, Height: 743}, o.GetSize(entity.PartPanel))
		assert.Equal(t, 300, o.GetSize(entity.PartAuxiliaryBar).Width)

		// Act
		require.NoError(t, o.SetPartHidden(ctx, entity.PartPanel, true))

		// Assert
		assert.True(t, o.IsVisible(entity.PartEditor))
		assert.False(t, o.IsVisible(entity.PartPanel))
		assert.False(t, o.IsPanelMaximized())
		assert.Equal(t, entity.Dimension{Width: 552, Height: 743}, o.GetSize(entity.PartEditor))
	})
}

func TestLayoutOrchestrator_ToggleMaximizedPanel(t *testing.T) {
	// Arrange
	o := newLayoutHarness(t, nil).start()
	ctx := context.Background()
	require.NoError(t, o.SetPartHidden(ctx, entity.PartPanel, false))
	require.Equal(t, 266, o.GetSize(entity.PartPanel).Height)
	require.Equal(t, 477, o.GetSize(entity.PartEditor).Height)

	// Act
	require.NoError(t, o.ToggleMaximizedPanel(ctx))

	// Assert
	assert.True(t, o.IsPanelMaximized())
	assert.False(t, o.IsVisible(entity.PartEditor))
	assert.Equal(t, 743, o.GetSize(entity.PartPanel).Height)
	assert.Equal(t, 266, o.State()[entity.KeyPanelLastNonMaximizedHeight.Name()])

	// Act
	require.NoError(t, o.ToggleMaximizedPanel(ctx))

	// Assert
	assert.False(t, o.IsPanelMaximized())
	assert.True(t, o.IsVisible(entity.PartEditor))
	assert.Equal(t, 266, o.GetSize(entity.PartPanel).Height)
	assert.Equal(t, 477, o.GetSize(entity.PartEditor).Height)
}

func TestLayoutOrchestrator_AuxiliaryBarMaximized(t *testing.T) {
	t.Run("round trip restores the previous layout", func(t *testing.T) {
		// Arrange
		o := newLayoutHarness(t, nil).start()
		ctx := context.Background()
		events := recordEvents(o, entity.LayoutEventAuxiliaryBarMaximizeChanged)

		// Act
		changed, err := o.SetAuxiliaryBarMaximized(ctx, true)

		// Assert
		require.NoError(t, err)
		assert.True(t, changed)
		assert.True(t, o.IsAuxiliaryBarMaximized())
		assert.False(t, o.IsVisible(entity.PartSideBar))
		assert.False(t, o.IsVisible(entity.PartEditor))
		assert.False(t, o.IsVisible(entity.PartPanel))
		assert.True(t, o.IsVisible(entity.PartAuxiliaryBar))
		assert.Equal(t, 1152, o.GetSize(entity.PartAuxiliaryBar).Width)
		assert.True(t, o.HasFocus(entity.PartAuxiliaryBar))

		changed, err = o.SetAuxiliaryBarMaximized(ctx, true)
		require.NoError(t, err)
		assert.False(t, changed)

		// Act
		changed, err = o.SetAuxiliaryBarMaximized(ctx, false)

		// Assert
		require.NoError(t, err)
		assert.True(t, changed)
		assert.False(t, o.IsAuxiliaryBarMaximized())
		assert.True(t, o.IsVisible(entity.PartSideBar))
		assert.True(t, o.IsVisible(entity.PartEditor))
		assert.False(t, o.IsVisible(entity.PartPanel))
		assert.Equal(t, 300, o.GetSize(entity.PartAuxiliaryBar).Width)
		assert.Equal(t, 300, o.GetSize(entity.PartSideBar).Width)
		assert.Equal(t, 552, o.GetSize(entity.PartEditor).Width)

		got := events()
		require.Len(t, got, 2)
		assert.True(t, got[0].Active)
		assert.False(t, got[1].Active)
	})

	t.Run("showing the editor leaves the maximized auxiliary bar", func(t *testing.T) {
		// Arrange
		o := newLayoutHarness(t, nil).start()
		ctx := context.Background()
		require.NoError(t, o.ToggleMaximizedAuxiliaryBar(ctx))
		require.True(t, o.IsAuxiliaryBarMaximized())

		// Act
		require.NoError(t, o.SetPartHidden(ctx, entity.PartEditor, false))

		// Assert
		assert.False(t, o.IsAuxiliaryBarMaximized())
		assert.True(t, o.IsVisible(entity.PartEditor))
		assert.True(t, o.IsVisible(entity.PartAuxiliaryBar))
	})
}

func TestLayoutOrchestrator_SetSideBarPosition(t *testing.T) {
	// Arrange
	h := newLayoutHarness(t, nil)
	o := h.start()
	ctx := context.Background()

	// Act
	require.NoError(t, o.SetSideBarPosition(ctx, entity.PositionRight))

	// Assert
	assert.Equal(t, entity.PositionRight, o.SideBarPosition())
	h.config.AssertCalled(t, "UpdateSetting", mock.Anything, entity.SettingSideBarLocation, "right")

	snapshot, err := o.GridSnapshot()
	require.NoError(t, err)
	assert.NotNil(t, snapshot.Root.Find(entity.PartSideBar))
	assert.Equal(t, 300, o.GetSize(entity.PartSideBar).Width)
	assert.Equal(t, 300, o.GetSize(entity.PartAuxiliaryBar).Width)
	assert.Equal(t, 552, o.GetSize(entity.PartEditor).Width)

	neighbor, ok := o.GetVisibleNeighborPart(entity.PartEditor, entity.DirectionRight)
	assert.True(t, ok)
	assert.Equal(t, entity.PartSideBar, neighbor)
	neighbor, ok = o.GetVisibleNeighborPart(entity.PartEditor, entity.DirectionLeft)
	assert.True(t, ok)
	assert.Equal(t, entity.PartAuxiliaryBar, neighbor)
	neighbor, ok = o.GetVisibleNeighborPart(entity.PartSideBar, entity.DirectionRight)
	assert.True(t, ok)
	assert.Equal(t, entity.PartActivityBar, neighbor)

	// Act
	require.NoError(t, o.SetSideBarPosition(ctx, entity.PositionLeft))

	// Assert
	neighbor, ok = o.GetVisibleNeighborPart(entity.PartEditor, entity.DirectionLeft)
	assert.True(t, ok)
	assert.Equal(t, entity.PartSideBar, neighbor)
	assert.Equal(t, 300, o.GetSize(entity.PartSideBar).Width)
	assert.Equal(t, 552, o.GetSize(entity.PartEditor).Width)

	assert.ErrorIs(t, o.SetSideBarPosition(ctx, entity.PositionTop), entity.ErrInvalidPosition)
}

func TestLayoutOrchestrator_ZenMode(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		// Arrange
		h := newLayoutHarness(t, nil)
		o := h.start()
		ctx := context.Background()
		events := recordEvents(o, entity.LayoutEventZenModeChanged)

		// Act
		require.NoError(t, o.ToggleZenMode(ctx))

		// Assert
		assert.True(t, o.IsZenModeActive())
		assert.True(t, h.wb.Window.IsFullscreen())
		assert.True(t, o.IsFullscreen())
		assert.Equal(t, entity.NotificationFilterError, h.wb.Notifications.Filter())
		assert.True(t, h.wb.Editors.LineNumbersHidden())
		assert.True(t, h.wb.Editors.IsLayoutCentered())
		for _, part := range []entity.Part{
			entity.PartActivityBar, entity.PartSideBar, entity.PartPanel,
			entity.PartAuxiliaryBar, entity.PartStatusBar,
		} {
			assert.False(t, o.IsVisible(part), part.ShortName())
		}
		assert.Equal(t, entity.Dimension{Width: 1200, Height: 765}, o.GetSize(entity.PartEditor))

		// Act
		require.NoError(t, o.ToggleZenMode(ctx))

		// Assert
		assert.False(t, o.IsZenModeActive())
		assert.False(t, h.wb.Window.IsFullscreen())
		assert.Equal(t, entity.NotificationFilterOff, h.wb.Notifications.Filter())
		assert.False(t, h.wb.Editors.LineNumbersHidden())
		assert.False(t, h.wb.Editors.IsLayoutCentered())
		assert.Equal(t, entity.EditorTabsMultiple, h.wb.Editors.TabsMode())
		assert.True(t, o.IsVisible(entity.PartSideBar))
		assert.True(t, o.IsVisible(entity.PartAuxiliaryBar))
		assert.True(t, o.IsVisible(entity.PartActivityBar))
		assert.True(t, o.IsVisible(entity.PartStatusBar))
		assert.False(t, o.IsVisible(entity.PartPanel))
		assert.Equal(t, 300, o.GetSize(entity.PartSideBar).Width)
		assert.Equal(t, entity.Dimension{Width: 552, Height: 743}, o.GetSize(entity.PartEditor))
		assert.True(t, o.HasFocus(entity.PartEditor))

		got := events()
		require.Len(t, got, 2)
		assert.True(t, got[0].Active)
		assert.False(t, got[1].Active)
	})

	t.Run("leaving fullscreen exits zen mode", func(t *testing.T) {
		// Arrange
		h := newLayoutHarness(t, nil)
		o := h.start()
		require.NoError(t, o.ToggleZenMode(context.Background()))
		require.True(t, h.wb.Window.IsFullscreen())

		// Act
		h.wb.Window.SetFullscreen(context.Background(), false)

		// Assert
		require.Eventually(t, func() bool { return !o.IsZenModeActive() }, waitFor, tick)
		assert.False(t, h.wb.Window.IsFullscreen())
		assert.Eventually(t, func() bool { return o.IsVisible(entity.PartSideBar) }, waitFor, tick)
	})

	t.Run("zen settings apply while active", func(t *testing.T) {
		// Arrange
		h := newLayoutHarness(t, nil)
		o := h.start()
		require.NoError(t, o.ToggleZenMode(context.Background()))
		require.False(t, o.IsVisible(entity.PartStatusBar))

		// Act
		h.updateSettings(func(s *entity.WorkbenchSettings) {
			s.ZenMode.HideStatusBar = false
		}, entity.SettingZenModeHideStatusBar)

		// Assert
		require.Eventually(t, func() bool { return o.IsVisible(entity.PartStatusBar) }, waitFor, tick)
		assert.True(t, o.IsZenModeActive())
	})

	t.Run("zen mode is left on restore when not configured to persist", func(t *testing.T) {
		// Arrange
		storage := headless.NewMemoryStorage(map[entity.StorageScope]map[string]string{
			entity.ScopeWorkspace: {entity.KeyZenModeActive.StorageKey(): "true"},
		})
		h := newLayoutHarness(t, storage)
		h.settings.ZenMode.Restore = false

		// Act
		o := h.start()

		// Assert
		assert.False(t, o.IsZenModeActive())
		assert.False(t, h.wb.Window.IsFullscreen())
	})
}

func TestLayoutOrchestrator_WillSaveState(t *testing.T) {
	// Arrange
	h := newLayoutHarness(t, nil)
	o := h.start()
	ctx := context.Background()
	require.NoError(t, o.SetSize(ctx, entity.PartSideBar, entity.Dimension{Width: 350}))
	require.Equal(t, 502, o.GetSize(entity.PartEditor).Width)

	// Act
	require.NoError(t, o.WillSaveState(ctx))

	// Assert
	workspace := h.storage.Snapshot(entity.ScopeWorkspace)
	profile := h.storage.Snapshot(entity.ScopeProfile)
	assert.Equal(t, "350", profile[entity.KeySideBarSize.StorageKey()])
	assert.Equal(t, "266", profile[entity.KeyPanelSize.StorageKey()])
	assert.Equal(t, "true", workspace[entity.KeyPanelHidden.StorageKey()])

	// A second window picks the saved sizes up.
	next := newLayoutHarness(t, headless.NewMemoryStorage(map[entity.StorageScope]map[string]string{
		entity.ScopeWorkspace: workspace,
		entity.ScopeProfile:   profile,
	})).start()
	assert.Equal(t, 350, next.GetSize(entity.PartSideBar).Width)
	assert.Equal(t, 502, next.GetSize(entity.PartEditor).Width)
	assert.Equal(t, 300, next.GetSize(entity.PartAuxiliaryBar).Width)
}

func TestLayoutOrchestrator_ResizePart(t *testing.T) {
	// Arrange
	o := newLayoutHarness(t, nil).start()
	ctx := context.Background()

	// Act
	require.NoError(t, o.ResizePart(ctx, entity.PartSideBar, 50, 0))

	// Assert
	assert.Equal(t, 350, o.GetSize(entity.PartSideBar).Width)
	assert.Equal(t, 502, o.GetSize(entity.PartEditor).Width)

	// Act
	require.NoError(t, o.ResizePart(ctx, entity.PartEditor, 100, 0))

	// Assert
	assert.Equal(t, 602, o.GetSize(entity.PartEditor).Width)
	assert.ErrorIs(t, o.ResizePart(ctx, entity.Part("nope"), 1, 1), entity.ErrUnknownPart)
}

func TestLayoutOrchestrator_LegacySettings(t *testing.T) {
	// Arrange
	h := newLayoutHarness(t, nil)
	o := h.start()

	// Act
	h.updateSettings(func(s *entity.WorkbenchSettings) {
		s.StatusBarVisible = false
	}, entity.SettingStatusBarVisible)

	// Assert
	require.Eventually(t, func() bool {
		snapshot, err := o.GridSnapshot()
		if err != nil {
			return false
		}
		leaf := snapshot.Root.Find(entity.PartStatusBar)
		return leaf != nil && !leaf.Visible
	}, waitFor, tick)
	assert.False(t, o.IsVisible(entity.PartStatusBar))
	assert.Contains(t, o.LayoutClasses(), "nostatusbar")
}

func TestLayoutOrchestrator_EditorGroupEvents(t *testing.T) {
	t.Run("centered layout yields to several columns", func(t *testing.T) {
		// Arrange
		h := newLayoutHarness(t, nil)
		o := h.start()
		require.NoError(t, o.CenterMainEditorLayout(context.Background(), true))
		require.True(t, h.wb.Editors.IsLayoutCentered())

		// Act
		h.wb.Editors.AddGroup(context.Background())

		// Assert
		require.Eventually(t, func() bool { return !h.wb.Editors.IsLayoutCentered() }, waitFor, tick)
		assert.True(t, o.IsMainEditorLayoutCentered())
	})

	t.Run("opening an editor shows a hidden editor part", func(t *testing.T) {
		// Arrange
		h := newLayoutHarness(t, nil)
		o := h.start()
		ctx := context.Background()
		require.NoError(t, o.SetPartHidden(ctx, entity.PartPanel, false))
		require.NoError(t, o.ToggleMaximizedPanel(ctx))
		require.False(t, o.IsVisible(entity.PartEditor))

		// Act
		h.wb.Editors.OpenEditor(ctx, entity.VisibleEditor{Resource: "main.go"})

		// Assert
		require.Eventually(t, func() bool { return o.IsVisible(entity.PartEditor) }, waitFor, tick)
		assert.True(t, o.IsVisible(entity.PartPanel))
		assert.False(t, o.IsPanelMaximized())
	})
}

func TestLayoutOrchestrator_UpdateWindowMaximizedState(t *testing.T) {
	// Arrange
	o := newLayoutHarness(t, nil).start()
	ctx := context.Background()
	events := recordEvents(o, entity.LayoutEventWindowMaximizedChanged)

	// Act
	require.NoError(t, o.UpdateWindowMaximizedState(ctx, 1, true))
	require.NoError(t, o.UpdateWindowMaximizedState(ctx, 1, true))

	// Assert
	assert.True(t, o.IsWindowMaximized(1))
	assert.False(t, o.IsWindowMaximized(2))
	require.Len(t, events(), 1)

	// Act
	require.NoError(t, o.UpdateWindowMaximizedState(ctx, 1, false))

	// Assert
	assert.False(t, o.IsWindowMaximized(1))
	got := events()
	require.Len(t, got, 2)
	assert.Equal(t, entity.LayoutEvent{Kind: entity.LayoutEventWindowMaximizedChanged, WindowID: 1}, got[1])
}

func TestLayoutOrchestrator_Close(t *testing.T) {
	// Arrange
	o := newLayoutHarness(t, nil).start()
	ctx := context.Background()

	// Act
	require.NoError(t, o.Close(ctx))

	// Assert
	assert.ErrorIs(t, o.SetPartHidden(ctx, entity.PartSideBar, true), usecase.ErrOrchestratorClosed)
	assert.ErrorIs(t, o.ToggleZenMode(ctx), usecase.ErrOrchestratorClosed)
	assert.NoError(t, o.Close(ctx))
	assert.True(t, o.IsVisible(entity.PartSideBar))
}
