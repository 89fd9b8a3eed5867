package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/bnema/workbench/internal/application/port"
	"github.com/bnema/workbench/internal/domain/entity"
	"github.com/bnema/workbench/internal/domain/service"
	"github.com/bnema/workbench/internal/logging"
)

var (
	// ErrOrchestratorClosed is returned by every mutating call after Close.
	ErrOrchestratorClosed = errors.New("layout orchestrator closed")
	// ErrGridNotInitialized is returned by calls that need the grid before Initialize.
	ErrGridNotInitialized = errors.New("layout grid not initialized")
)

// LayoutDependencies are the collaborators the orchestrator drives.
type LayoutDependencies struct {
	Storage        port.Storage
	Config         port.Configuration
	Grids          port.GridFactory
	PaneComposites port.PaneCompositeService
	ViewContainers port.ViewContainerRegistry
	EditorGroups   port.EditorGroupService
	Window         port.WindowHost
	Focus          port.PartFocus
	Notifications  port.NotificationFilterService

	// Loop serializes every mutation. It is owned by the caller.
	Loop port.TaskQueue
}

// LayoutOption customizes a LayoutOrchestrator.
type LayoutOption func(*LayoutOrchestrator)

// WithPartConstraints overrides the size limits of the parts.
func WithPartConstraints(constraints map[entity.Part]entity.PartConstraints) LayoutOption {
	return func(o *LayoutOrchestrator) {
		for part, c := range constraints {
			o.constraints[part] = c
		}
	}
}

// WithBannerFirst renders the banner above the title bar.
func WithBannerFirst() LayoutOption {
	return func(o *LayoutOrchestrator) {
		o.bannerFirst = true
	}
}

// WithTitlebarHidden starts without a custom title bar.
func WithTitlebarHidden() LayoutOption {
	return func(o *LayoutOrchestrator) {
		o.titlebarVisible = false
	}
}

// InitOptions configure Initialize.
type InitOptions struct {
	LoadOptions

	// ViewContainers names the container to reopen per location. Missing
	// entries fall back to the last active, then the default container.
	ViewContainers map[entity.ViewContainerLocation]string
}

// LayoutOrchestrator owns the grid and the layout state model and keeps them
// consistent. Every mutation runs on the task queue; queries may be called
// from any goroutine.
type LayoutOrchestrator struct {
	deps  LayoutDependencies
	state *LayoutStateModel
	loop  port.TaskQueue

	constraints     map[entity.Part]entity.PartConstraints
	bannerFirst     bool
	titlebarVisible bool

	mu                  sync.RWMutex
	grid                port.GridController
	initialized         bool
	closed              bool
	container           entity.Dimension
	fullscreen          bool
	editorsRestored     bool
	transition          entity.MaximizeTransition
	maximizedWindows    map[int]struct{}
	containersToRestore map[entity.ViewContainerLocation]string
	openRequests        map[entity.ViewContainerLocation]uint64
	listeners           map[int]func(ctx context.Context, event entity.LayoutEvent)
	nextListenerID      int

	// writerCtx is the context of the task currently running on the queue.
	writerCtx atomic.Pointer[context.Context]
	baseCtx   context.Context

	zenListener func()
	unsubscribe []func()
}

// NewLayoutOrchestrator wires a layout orchestrator. Call Initialize before use.
func NewLayoutOrchestrator(deps LayoutDependencies, opts ...LayoutOption) *LayoutOrchestrator {
	o := &LayoutOrchestrator{
		deps:                deps,
		state:               NewLayoutStateModel(deps.Storage, deps.Config),
		loop:                deps.Loop,
		constraints:         entity.DefaultPartConstraints(),
		titlebarVisible:     true,
		maximizedWindows:    make(map[int]struct{}),
		containersToRestore: make(map[entity.ViewContainerLocation]string),
		openRequests:        make(map[entity.ViewContainerLocation]uint64),
		listeners:           make(map[int]func(ctx context.Context, event entity.LayoutEvent)),
		baseCtx:             context.Background(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// StateModel exposes the layout state model, mostly for inspection.
func (o *LayoutOrchestrator) StateModel() *LayoutStateModel {
	return o.state
}

// Initialize loads the layout state, validates the view containers to
// restore and builds the grid. Calling it twice is a no-op.
func (o *LayoutOrchestrator) Initialize(ctx context.Context, opts InitOptions) error {
	return o.run(ctx, func(ctx context.Context) error {
		log := logging.FromContext(ctx)

		if o.currentGrid() != nil {
			return nil
		}

		o.baseCtx = context.WithoutCancel(ctx)
		if err := o.state.Load(ctx, opts.LoadOptions); err != nil {
			return fmt.Errorf("failed to load layout state: %w", err)
		}

		o.mu.Lock()
		o.container = opts.Container
		o.fullscreen = o.deps.Window.IsFullscreen()
		o.mu.Unlock()

		o.initLayoutState(ctx, opts.ViewContainers)
		o.registerListeners()

		grid, err := o.deps.Grids.NewGrid(ctx, o.createGridDescriptor(), o.constraints)
		if err != nil {
			return fmt.Errorf("failed to create layout grid: %w", err)
		}

		o.mu.Lock()
		o.grid = grid
		o.mu.Unlock()
		o.unsubscribe = append(o.unsubscribe, grid.OnDidChangeViewVisibility(o.onGridViewVisibilityChanged))

		log.Info().
			Int("width", opts.Container.Width).
			Int("height", opts.Container.Height).
			Str("side_bar", o.SideBarPosition().String()).
			Str("panel", o.PanelPosition().String()).
			Msg("layout initialized")
		return nil
	})
}

func (o *LayoutOrchestrator) initLayoutState(ctx context.Context, requested map[entity.ViewContainerLocation]string) {
	log := logging.FromContext(ctx)

	restore := func(location entity.ViewContainerLocation, hiddenKey *entity.RuntimeKey[bool]) {
		if GetRuntimeValue(o.state, hiddenKey) {
			return
		}

		id := requested[location]
		if id == "" {
			id = o.deps.PaneComposites.LastActivePaneCompositeID(location)
		}
		if id == "" {
			id, _ = o.deps.ViewContainers.DefaultViewContainerID(location)
		}
		if id == "" {
			log.Debug().Str("location", location.String()).Msg("nothing to restore, hiding part")
			SetRuntimeValue(ctx, o.state, hiddenKey, true)
			return
		}

		o.mu.Lock()
		o.containersToRestore[location] = id
		o.mu.Unlock()
	}

	restore(entity.LocationSideBar, entity.KeySideBarHidden)
	restore(entity.LocationPanel, entity.KeyPanelHidden)
	restore(entity.LocationAuxiliaryBar, entity.KeyAuxiliaryBarHidden)
}

func (o *LayoutOrchestrator) createGridDescriptor() entity.GridDescriptor {
	container := o.Container()
	return service.BuildGridDescriptor(service.GridDescriptorInput{
		Width:               container.Width,
		Height:              container.Height,
		SideBarPosition:     GetRuntimeValue(o.state, entity.KeySideBarPosition),
		PanelPosition:       GetRuntimeValue(o.state, entity.KeyPanelPosition),
		PanelAlignment:      GetRuntimeValue(o.state, entity.KeyPanelAlignment),
		TitlebarVisible:     o.titlebarVisible,
		ActivityBarVisible:  !GetRuntimeValue(o.state, entity.KeyActivityBarHidden),
		SideBarVisible:      !GetRuntimeValue(o.state, entity.KeySideBarHidden),
		EditorVisible:       !GetRuntimeValue(o.state, entity.KeyEditorHidden),
		PanelVisible:        !GetRuntimeValue(o.state, entity.KeyPanelHidden),
		AuxiliaryBarVisible: !GetRuntimeValue(o.state, entity.KeyAuxiliaryBarHidden),
		StatusBarVisible:    !GetRuntimeValue(o.state, entity.KeyStatusBarHidden),
		SideBarSize:         GetInitializationValue(o.state, entity.KeySideBarSize),
		AuxiliaryBarSize:    GetInitializationValue(o.state, entity.KeyAuxiliaryBarSize),
		PanelSize:           GetInitializationValue(o.state, entity.KeyPanelSize),
		BannerFirst:         o.bannerFirst,
		Constraints:         o.constraints,
	})
}

// Layout lays the grid out over width x height.
func (o *LayoutOrchestrator) Layout(ctx context.Context, width, height int) error {
	return o.run(ctx, func(ctx context.Context) error {
		grid := o.currentGrid()
		if grid == nil {
			return nil
		}

		dimension := entity.Dimension{Width: width, Height: height}
		o.mu.Lock()
		o.container = dimension
		o.initialized = true
		o.mu.Unlock()

		grid.Layout(width, height)
		logging.FromContext(ctx).Trace().Int("width", width).Int("height", height).Msg("layout")

		o.fire(ctx, entity.LayoutEvent{Kind: entity.LayoutEventContainerLayout, Dimension: dimension})
		return nil
	})
}

// WillSaveState captures live part sizes into the initialization keys and
// flushes the whole state.
func (o *LayoutOrchestrator) WillSaveState(ctx context.Context) error {
	return o.run(ctx, func(ctx context.Context) error {
		grid := o.currentGrid()
		if grid == nil {
			return nil
		}

		sizeOf := func(part entity.Part, hidden bool, height bool) int {
			if hidden {
				size, _ := grid.GetViewCachedVisibleSize(part)
				return size
			}
			if height {
				return grid.GetViewSize(part).Height
			}
			return grid.GetViewSize(part).Width
		}

		SetInitializationValue(o.state, entity.KeySideBarSize,
			sizeOf(entity.PartSideBar, GetRuntimeValue(o.state, entity.KeySideBarHidden), false))
		SetInitializationValue(o.state, entity.KeyPanelSize,
			sizeOf(entity.PartPanel, GetRuntimeValue(o.state, entity.KeyPanelHidden), o.PanelPosition().IsHorizontal()))
		SetInitializationValue(o.state, entity.KeyAuxiliaryBarSize,
			sizeOf(entity.PartAuxiliaryBar, GetRuntimeValue(o.state, entity.KeyAuxiliaryBarHidden), false))

		o.state.Save(ctx, true, true)
		logging.FromContext(ctx).Debug().Msg("layout state saved")
		return nil
	})
}

// Close removes every listener. The task queue is left to its owner.
func (o *LayoutOrchestrator) Close(ctx context.Context) error {
	err := o.run(ctx, func(ctx context.Context) error {
		if o.zenListener != nil {
			o.zenListener()
			o.zenListener = nil
		}
		for _, fn := range o.unsubscribe {
			if fn != nil {
				fn()
			}
		}
		o.unsubscribe = nil
		o.state.Close()

		o.mu.Lock()
		o.closed = true
		o.listeners = make(map[int]func(ctx context.Context, event entity.LayoutEvent))
		o.mu.Unlock()
		return nil
	})
	if errors.Is(err, ErrOrchestratorClosed) {
		return nil
	}
	return err
}

// run executes fn on the task queue, inline when ctx already belongs to it.
func (o *LayoutOrchestrator) run(ctx context.Context, fn func(ctx context.Context) error) error {
	if o.isClosed() {
		return ErrOrchestratorClosed
	}
	return o.loop.Run(ctx, o.writer(fn))
}

// dispatch runs fn inline when called from the writer, otherwise queues it.
func (o *LayoutOrchestrator) dispatch(ctx context.Context, fn func(ctx context.Context)) {
	if o.isClosed() {
		return
	}
	if o.loop.InWriter(ctx) {
		fn(ctx)
		return
	}
	task := o.writer(func(ctx context.Context) error {
		if o.isClosed() {
			return nil
		}
		fn(ctx)
		return nil
	})
	o.loop.Post(ctx, func(ctx context.Context) { _ = task(ctx) })
}

func (o *LayoutOrchestrator) writer(fn func(ctx context.Context) error) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		ctx = logging.WithComponent(ctx, "layout")
		prev := o.writerCtx.Swap(&ctx)
		defer o.writerCtx.Store(prev)
		return fn(ctx)
	}
}

func (o *LayoutOrchestrator) currentGrid() port.GridController {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.grid
}

func (o *LayoutOrchestrator) isClosed() bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.closed
}

func (o *LayoutOrchestrator) transitionState() entity.MaximizeTransition {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.transition
}

func (o *LayoutOrchestrator) setTransition(t entity.MaximizeTransition) {
	o.mu.Lock()
	o.transition = t
	o.mu.Unlock()
}

// Container returns the last container size the layout was given.
func (o *LayoutOrchestrator) Container() entity.Dimension {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.container
}

// IsInitialized reports whether the grid has been laid out at least once.
func (o *LayoutOrchestrator) IsInitialized() bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.initialized
}

// GridSnapshot returns the live grid tree.
func (o *LayoutOrchestrator) GridSnapshot() (entity.GridDescriptor, error) {
	grid := o.currentGrid()
	if grid == nil {
		return entity.GridDescriptor{}, ErrGridNotInitialized
	}
	return grid.Serialize(), nil
}

// State returns every layout state key with its current value, keyed by name.
func (o *LayoutOrchestrator) State() map[string]any {
	values := make(map[string]any)
	for _, key := range entity.AllStateKeys() {
		values[key.Name()] = o.state.Value(key)
	}
	return values
}

// SideBarPosition returns where the side bar renders.
func (o *LayoutOrchestrator) SideBarPosition() entity.Position {
	return GetRuntimeValue(o.state, entity.KeySideBarPosition)
}

// PanelPosition returns where the panel renders.
func (o *LayoutOrchestrator) PanelPosition() entity.Position {
	return GetRuntimeValue(o.state, entity.KeyPanelPosition)
}

// PanelAlignment returns how a horizontal panel is aligned.
func (o *LayoutOrchestrator) PanelAlignment() entity.PanelAlignment {
	return GetRuntimeValue(o.state, entity.KeyPanelAlignment)
}

// IsFullscreen reports the last fullscreen state seen from the window.
func (o *LayoutOrchestrator) IsFullscreen() bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.fullscreen
}

// LayoutClasses returns the class names describing hidden parts, for renderers.
func (o *LayoutOrchestrator) LayoutClasses() []string {
	var classes []string
	if !o.IsVisible(entity.PartSideBar) {
		classes = append(classes, "nosidebar")
	}
	if !o.IsVisible(entity.PartEditor) {
		classes = append(classes, "nomaineditorarea")
	}
	if !o.IsVisible(entity.PartPanel) {
		classes = append(classes, "nopanel")
	}
	if !o.IsVisible(entity.PartAuxiliaryBar) {
		classes = append(classes, "noauxiliarybar")
	}
	if !o.IsVisible(entity.PartStatusBar) {
		classes = append(classes, "nostatusbar")
	}
	if o.IsFullscreen() {
		classes = append(classes, "fullscreen")
	}
	return classes
}
