package cli

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/workbench/internal/application/port"
	"github.com/bnema/workbench/internal/application/usecase"
	"github.com/bnema/workbench/internal/domain/entity"
	"github.com/bnema/workbench/internal/infrastructure/grid"
	"github.com/bnema/workbench/internal/infrastructure/headless"
	"github.com/bnema/workbench/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/workbench/internal/logging"
	"github.com/bnema/workbench/internal/ui/mainloop"
)

// DefaultWindowSize is the container used when no size flag is given.
var DefaultWindowSize = entity.Dimension{Width: 1200, Height: 800}

// WorkbenchOptions configure OpenWorkbench.
type WorkbenchOptions struct {
	Size entity.Dimension
	// Reset ignores the stored layout and starts from defaults.
	Reset bool
	// Empty opens a window without a folder or workspace.
	Empty bool
}

// Workbench is a restored layout backed by the App database. Every layout
// command opens one, applies its change and closes it, which saves the state.
type Workbench struct {
	Layout   *usecase.LayoutOrchestrator
	Storage  *sqlite.LayoutStorageRepository
	Services *headless.Workbench

	loop  *mainloop.Serializer
	grids *gridRecorder

	closeOnce sync.Once
	closeErr  error
}

// OpenWorkbench restores the layout of the configured workspace at opts.Size.
func (a *App) OpenWorkbench(ctx context.Context, opts WorkbenchOptions) (*Workbench, error) {
	if opts.Size.Width <= 0 || opts.Size.Height <= 0 {
		opts.Size = DefaultWindowSize
	}

	storage, err := a.OpenStorage(ctx)
	if err != nil {
		return nil, err
	}
	a.Trace.Mark("storage_opened")

	state := entity.WorkbenchFolder
	if opts.Empty {
		state = entity.WorkbenchEmpty
	}

	wb, err := openWorkbench(ctx, storage, a.Settings, usecase.LoadOptions{
		ResetLayout:    opts.Reset,
		Container:      opts.Size,
		WorkbenchState: state,
	})
	if err != nil {
		return nil, err
	}
	a.Trace.Mark("layout_restored")
	a.Trace.Finish()
	return wb, nil
}

// OpenStorage opens the layout rows of the configured workspace and profile.
func (a *App) OpenStorage(ctx context.Context) (*sqlite.LayoutStorageRepository, error) {
	db, err := a.db.DB(ctx)
	if err != nil {
		return nil, fmt.Errorf("open layout database: %w", err)
	}
	storage, err := sqlite.NewLayoutStorageRepository(ctx, db, a.workspaceID, a.profileID)
	if err != nil {
		return nil, fmt.Errorf("open layout storage: %w", err)
	}
	return storage, nil
}

// ResetLayout forgets the stored layout of the workspace, and of the profile
// too when includeProfile is set. Settings mirrored to the config file are
// left alone.
func (a *App) ResetLayout(ctx context.Context, includeProfile bool) error {
	storage, err := a.OpenStorage(ctx)
	if err != nil {
		return err
	}

	scopes := []entity.StorageScope{entity.ScopeWorkspace}
	if includeProfile {
		scopes = append(scopes, entity.ScopeProfile)
	}
	for _, scope := range scopes {
		if err := storage.Clear(ctx, scope); err != nil {
			return err
		}
	}

	logging.FromContext(ctx).Info().
		Str("workspace", a.workspaceID).
		Str("profile", a.profileID).
		Bool("profile_cleared", includeProfile).
		Msg("layout reset")
	return nil
}

func openWorkbench(
	ctx context.Context,
	storage *sqlite.LayoutStorageRepository,
	config port.Configuration,
	load usecase.LoadOptions,
) (*Workbench, error) {
	services := headless.NewWorkbench(1)
	loop := mainloop.NewSerializer()
	grids := &gridRecorder{factory: grid.NewFactory()}

	orchestrator := usecase.NewLayoutOrchestrator(usecase.LayoutDependencies{
		Storage:        storage,
		Config:         config,
		Grids:          grids,
		PaneComposites: services.Composites,
		ViewContainers: services.Containers,
		EditorGroups:   services.Editors,
		Window:         services.Window,
		Focus:          services.Focus,
		Notifications:  services.Notifications,
		Loop:           loop,
	})

	wb := &Workbench{
		Layout:   orchestrator,
		Storage:  storage,
		Services: services,
		loop:     loop,
		grids:    grids,
	}

	err := orchestrator.Initialize(ctx, usecase.InitOptions{LoadOptions: load})
	if err == nil {
		err = orchestrator.Layout(ctx, load.Container.Width, load.Container.Height)
	}
	if err == nil {
		err = orchestrator.Restore(ctx)
	}
	if err != nil {
		_ = orchestrator.Close(ctx)
		loop.Close()
		return nil, fmt.Errorf("restore layout: %w", err)
	}

	logging.FromContext(ctx).Debug().
		Strs("classes", orchestrator.LayoutClasses()).
		Msg("workbench opened")
	return wb, nil
}

// Rects returns the pixel rectangle of every visible part.
func (w *Workbench) Rects() map[entity.Part]entity.Rect {
	g := w.grids.last()
	if g == nil {
		return nil
	}
	return g.ViewRects()
}

// Resize lays the grid out again over size.
func (w *Workbench) Resize(ctx context.Context, size entity.Dimension) error {
	return w.Layout.Layout(ctx, size.Width, size.Height)
}

// Post queues fn on the layout task queue without waiting.
func (w *Workbench) Post(ctx context.Context, fn func(ctx context.Context)) {
	w.loop.Post(ctx, fn)
}

// Save flushes the layout state to storage.
func (w *Workbench) Save(ctx context.Context) error {
	return w.Layout.WillSaveState(ctx)
}

// Close saves the layout state, then stops the orchestrator and its task queue.
func (w *Workbench) Close(ctx context.Context) error {
	w.closeOnce.Do(func() {
		saveErr := w.Save(ctx)
		closeErr := w.Layout.Close(ctx)
		w.loop.Close()
		w.closeErr = errors.Join(saveErr, closeErr)
	})
	return w.closeErr
}

// gridRecorder builds in-memory grids and keeps the latest one so the CLI can
// draw part rectangles.
type gridRecorder struct {
	factory *grid.Factory

	mu      sync.Mutex
	current *grid.Grid
}

func (r *gridRecorder) NewGrid(
	ctx context.Context,
	descriptor entity.GridDescriptor,
	constraints map[entity.Part]entity.PartConstraints,
) (port.GridController, error) {
	g, err := r.factory.NewGrid(ctx, descriptor, constraints)
	if err != nil {
		return nil, err
	}
	if concrete, ok := g.(*grid.Grid); ok {
		r.mu.Lock()
		r.current = concrete
		r.mu.Unlock()
	}
	return g, nil
}

func (r *gridRecorder) last() *grid.Grid {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}
