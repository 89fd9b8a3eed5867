package headless

import (
	"context"
	"slices"
	"sync"

	"github.com/bnema/workbench/internal/application/port"
	"github.com/bnema/workbench/internal/domain/entity"
	"github.com/bnema/workbench/internal/logging"
)

var (
	_ port.ViewContainerRegistry = (*ViewContainers)(nil)
	_ port.PaneCompositeService  = (*PaneComposites)(nil)
)

// ViewContainer describes one container of views.
type ViewContainer struct {
	ID       string
	Location entity.ViewContainerLocation
	HasViews bool
	Default  bool
}

// DefaultViewContainers returns the containers of a stock workbench.
func DefaultViewContainers() []ViewContainer {
	return []ViewContainer{
		{ID: "workbench.view.explorer", Location: entity.LocationSideBar, HasViews: true, Default: true},
		{ID: "workbench.view.search", Location: entity.LocationSideBar, HasViews: true},
		{ID: "workbench.view.scm", Location: entity.LocationSideBar, HasViews: true},
		{ID: "workbench.panel.terminal", Location: entity.LocationPanel, HasViews: true, Default: true},
		{ID: "workbench.panel.markers", Location: entity.LocationPanel, HasViews: true},
		{ID: "workbench.panel.output", Location: entity.LocationPanel, HasViews: true},
		{ID: "workbench.panel.chat", Location: entity.LocationAuxiliaryBar, HasViews: true, Default: true},
	}
}

// ViewContainers is an in-memory view container registry.
type ViewContainers struct {
	mu         sync.RWMutex
	containers []ViewContainer
}

// NewViewContainers returns a registry holding containers.
func NewViewContainers(containers []ViewContainer) *ViewContainers {
	return &ViewContainers{containers: slices.Clone(containers)}
}

// DefaultViewContainerID returns the default container of location.
func (r *ViewContainers) DefaultViewContainerID(location entity.ViewContainerLocation) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.containers {
		if c.Location == location && c.Default {
			return c.ID, true
		}
	}
	return "", false
}

// ViewContainerIDs returns the containers registered in location.
func (r *ViewContainers) ViewContainerIDs(location entity.ViewContainerLocation) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var ids []string
	for _, c := range r.containers {
		if c.Location == location {
			ids = append(ids, c.ID)
		}
	}
	return ids
}

// HasViews reports whether id has anything to show.
func (r *ViewContainers) HasViews(id string) bool {
	c, ok := r.lookup(id)
	return ok && c.HasViews
}

// SetHasViews marks id as having views or being empty.
func (r *ViewContainers) SetHasViews(id string, hasViews bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.containers {
		if r.containers[i].ID == id {
			r.containers[i].HasViews = hasViews
		}
	}
}

// Register adds or replaces a container.
func (r *ViewContainers) Register(c ViewContainer) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.containers {
		if r.containers[i].ID == c.ID {
			r.containers[i] = c
			return
		}
	}
	r.containers = append(r.containers, c)
}

func (r *ViewContainers) lookup(id string) (ViewContainer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.containers {
		if c.ID == id {
			return c, true
		}
	}
	return ViewContainer{}, false
}

// PaneComposites tracks which container is open in every location.
type PaneComposites struct {
	registry *ViewContainers
	focus    port.PartFocus

	mu         sync.RWMutex
	active     map[entity.ViewContainerLocation]string
	lastActive map[entity.ViewContainerLocation]string

	changes emitter[func(ctx context.Context, location entity.ViewContainerLocation)]
}

// NewPaneComposites returns a pane composite service over registry. focus
// may be nil.
func NewPaneComposites(registry *ViewContainers, focus port.PartFocus) *PaneComposites {
	return &PaneComposites{
		registry:   registry,
		focus:      focus,
		active:     make(map[entity.ViewContainerLocation]string),
		lastActive: make(map[entity.ViewContainerLocation]string),
	}
}

// SetLastActive seeds the last active container of location, as restored
// from a previous session.
func (p *PaneComposites) SetLastActive(location entity.ViewContainerLocation, id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lastActive[location] = id
}

// ActivePaneCompositeID returns the container open in location.
func (p *PaneComposites) ActivePaneCompositeID(location entity.ViewContainerLocation) (string, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	id, ok := p.active[location]
	return id, ok
}

// LastActivePaneCompositeID returns the container opened last in location.
func (p *PaneComposites) LastActivePaneCompositeID(location entity.ViewContainerLocation) string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.lastActive[location]
}

// VisiblePaneCompositeIDs returns the containers of location that have views.
func (p *PaneComposites) VisiblePaneCompositeIDs(location entity.ViewContainerLocation) []string {
	var ids []string
	for _, id := range p.registry.ViewContainerIDs(location) {
		if p.registry.HasViews(id) {
			ids = append(ids, id)
		}
	}
	return ids
}

// OpenPaneComposite opens id in location. Unknown or empty containers and
// containers registered elsewhere are not opened.
func (p *PaneComposites) OpenPaneComposite(
	ctx context.Context,
	id string,
	location entity.ViewContainerLocation,
	focus bool,
) (bool, error) {
	c, ok := p.registry.lookup(id)
	if !ok || c.Location != location || !c.HasViews {
		logging.FromContext(ctx).Debug().
			Str("id", id).
			Str("location", location.String()).
			Msg("view container cannot be opened")
		return false, nil
	}

	p.mu.Lock()
	p.active[location] = id
	p.lastActive[location] = id
	p.mu.Unlock()

	if focus && p.focus != nil {
		p.focus.Focus(ctx, location.Part())
	}
	p.emit(ctx, location)
	return true, nil
}

// HideActivePaneComposite closes the container open in location.
func (p *PaneComposites) HideActivePaneComposite(ctx context.Context, location entity.ViewContainerLocation) {
	p.mu.Lock()
	_, had := p.active[location]
	delete(p.active, location)
	p.mu.Unlock()

	if had {
		p.emit(ctx, location)
	}
}

// OnDidChangePaneComposites registers fn for open and close events.
func (p *PaneComposites) OnDidChangePaneComposites(
	fn func(ctx context.Context, location entity.ViewContainerLocation),
) func() {
	return p.changes.add(fn)
}

func (p *PaneComposites) emit(ctx context.Context, location entity.ViewContainerLocation) {
	for _, fn := range p.changes.snapshot() {
		fn(ctx, location)
	}
}
