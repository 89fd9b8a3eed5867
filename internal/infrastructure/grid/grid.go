package grid

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/bnema/workbench/internal/application/port"
	"github.com/bnema/workbench/internal/domain/entity"
	"github.com/bnema/workbench/internal/logging"
)

var (
	// ErrViewNotFound is returned when a part is not part of the grid.
	ErrViewNotFound = errors.New("view not found in grid")
	// ErrInvalidDescriptor is returned for trees the grid cannot host.
	ErrInvalidDescriptor = errors.New("invalid grid descriptor")
	// ErrInvalidLocation is returned when a location path does not lead to a branch.
	ErrInvalidLocation = errors.New("invalid grid location")
)

var (
	_ port.GridController = (*Grid)(nil)
	_ port.GridFactory    = (*Factory)(nil)
)

type visibilityListener struct {
	id int
	fn func(part entity.Part, visible bool)
}

// Grid is a split tree of workbench parts. All methods are safe for
// concurrent use; visibility listeners run after the lock is released.
type Grid struct {
	mu          sync.RWMutex
	root        *node
	orientation entity.Orientation
	leaves      map[entity.Part]*node
	constraints map[entity.Part]entity.PartConstraints
	width       int
	height      int
	laidOut     bool

	listenersMu sync.Mutex
	listeners   []visibilityListener
	nextID      int
}

// New builds a grid from descriptor. Missing constraints fall back to the
// built-in part constraints.
func New(descriptor entity.GridDescriptor, constraints map[entity.Part]entity.PartConstraints) (*Grid, error) {
	if descriptor.Root == nil {
		return nil, fmt.Errorf("%w: missing root", ErrInvalidDescriptor)
	}

	merged := entity.DefaultPartConstraints()
	for part, c := range constraints {
		merged[part] = c
	}

	g := &Grid{
		orientation: descriptor.Orientation,
		leaves:      make(map[entity.Part]*node),
		constraints: merged,
	}

	root, err := g.build(descriptor.Root, nil)
	if err != nil {
		return nil, err
	}
	if root.isLeaf() {
		wrapper := &node{size: descriptor.Width, children: []*node{root}}
		root.parent = wrapper
		root = wrapper
	}
	g.root = root

	if descriptor.Width > 0 || descriptor.Height > 0 {
		g.Layout(descriptor.Width, descriptor.Height)
	}
	return g, nil
}

func (g *Grid) build(gn *entity.GridNode, parent *node) (*node, error) {
	if gn == nil {
		return nil, fmt.Errorf("%w: nil node", ErrInvalidDescriptor)
	}

	n := &node{parent: parent, size: max(gn.Size, 0)}
	if gn.IsLeaf() {
		if !gn.Part.Valid() {
			return nil, fmt.Errorf("%w: %w: %q", ErrInvalidDescriptor, entity.ErrUnknownPart, gn.Part)
		}
		if _, dup := g.leaves[gn.Part]; dup {
			return nil, fmt.Errorf("%w: duplicate view %s", ErrInvalidDescriptor, gn.Part.ShortName())
		}
		n.part = gn.Part
		n.visible = gn.Visible
		n.cached = n.size
		g.leaves[gn.Part] = n
		return n, nil
	}

	if len(gn.Children) == 0 {
		return nil, fmt.Errorf("%w: empty branch", ErrInvalidDescriptor)
	}
	for _, child := range gn.Children {
		c, err := g.build(child, n)
		if err != nil {
			return nil, err
		}
		n.children = append(n.children, c)
	}
	return n, nil
}

// orientationOf returns the orientation n lays its children out along.
func (g *Grid) orientationOf(n *node) entity.Orientation {
	o := g.orientation
	for p := n.parent; p != nil; p = p.parent {
		o = o.Orthogonal()
	}
	return o
}

// limits returns the minimum and maximum extent of n along o.
func (g *Grid) limits(n *node, o entity.Orientation) (int, int) {
	if !n.isVisible() {
		return 0, 0
	}
	if n.isLeaf() {
		c := g.constraints[n.part]
		lo, hi := c.MinimumWidth, c.MaximumWidth
		if o == entity.OrientationVertical {
			lo, hi = c.MinimumHeight, c.MaximumHeight
		}
		if hi <= 0 {
			hi = entity.Unbounded
		}
		return lo, hi
	}

	along := g.orientationOf(n) == o
	lo, hi := 0, 0
	if !along {
		hi = entity.Unbounded
	}
	for _, c := range n.visibleChildren() {
		clo, chi := g.limits(c, o)
		if along {
			lo += clo
			hi = addSaturating(hi, chi)
		} else {
			lo = max(lo, clo)
			hi = min(hi, chi)
		}
	}
	return lo, hi
}

// absorbOrder lists the visible children of n in the order they give or
// take space: the editor first, then the panel, then the rest from the end.
func absorbOrder(n *node, exclude *node) []*node {
	visible := n.visibleChildren()
	order := make([]*node, 0, len(visible))
	seen := make(map[*node]bool, len(visible))
	for _, part := range []entity.Part{entity.PartEditor, entity.PartPanel} {
		for _, c := range visible {
			if c != exclude && !seen[c] && c.contains(part) {
				order = append(order, c)
				seen[c] = true
			}
		}
	}
	for i := len(visible) - 1; i >= 0; i-- {
		c := visible[i]
		if c != exclude && !seen[c] {
			order = append(order, c)
		}
	}
	return order
}

// Layout distributes width x height over the tree.
func (g *Grid) Layout(width, height int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.width, g.height = max(width, 0), max(height, 0)
	g.laidOut = true
	g.layoutLocked()
}

func (g *Grid) layoutLocked() {
	if !g.laidOut {
		return
	}
	g.root.size = g.width
	if g.orientation == entity.OrientationHorizontal {
		g.root.size = g.height
	}
	g.layoutNode(g.root, entity.Rect{W: g.width, H: g.height}, g.orientation)
}

func (g *Grid) layoutNode(n *node, box entity.Rect, o entity.Orientation) {
	n.box = box
	if n.isLeaf() {
		return
	}

	g.distribute(n, o, extent(box, o))

	offset := 0
	for _, c := range n.children {
		size := 0
		if c.isVisible() {
			size = c.size
		}
		child := entity.Rect{X: box.X, Y: box.Y}
		if o == entity.OrientationVertical {
			child.Y += offset
			child.W, child.H = box.W, size
		} else {
			child.X += offset
			child.W, child.H = size, box.H
		}
		offset += size
		g.layoutNode(c, child, o.Orthogonal())
	}
}

// distribute makes the visible children of n add up to length.
func (g *Grid) distribute(n *node, o entity.Orientation, length int) {
	visible := n.visibleChildren()
	if len(visible) == 0 {
		return
	}

	total := 0
	for _, c := range visible {
		lo, hi := g.limits(c, o)
		c.size = clamp(c.size, lo, hi)
		total += c.size
	}

	delta := length - total
	order := absorbOrder(n, nil)
	for _, c := range order {
		if delta == 0 {
			return
		}
		lo, hi := g.limits(c, o)
		next := clamp(c.size+delta, lo, hi)
		delta -= next - c.size
		c.size = next
	}

	// Not enough room even at minimum sizes: the first absorber overflows.
	if delta < 0 {
		order[0].size = max(0, order[0].size+delta)
	}
}

// resizeAlong sets the extent of n along its parent orientation, taking
// the difference from its siblings.
func (g *Grid) resizeAlong(n *node, value int) {
	p := n.parent
	if p == nil {
		return
	}
	o := g.orientationOf(p)
	lo, hi := g.limits(n, o)
	value = clamp(value, lo, hi)

	if !g.laidOut {
		n.size = value
		return
	}

	delta := value - n.size
	if delta == 0 {
		return
	}

	need := delta
	for _, s := range absorbOrder(p, n) {
		if need == 0 {
			break
		}
		slo, shi := g.limits(s, o)
		next := clamp(s.size-need, slo, shi)
		need -= s.size - next
		s.size = next
	}
	n.size += delta - need
}

// MoveView moves part next to reference in direction. When the reference's
// parent runs the other way, the reference is wrapped in a new branch.
func (g *Grid) MoveView(part entity.Part, sizing entity.Sizing, reference entity.Part, direction entity.Direction) error {
	if part == reference {
		return fmt.Errorf("cannot move %s next to itself", part.ShortName())
	}

	g.mu.Lock()
	leaf, ref := g.leaves[part], g.leaves[reference]
	if leaf == nil || ref == nil {
		g.mu.Unlock()
		missing := part
		if leaf != nil {
			missing = reference
		}
		return fmt.Errorf("%w: %s", ErrViewNotFound, missing.ShortName())
	}

	wasVisible := leaf.visible
	oldParent := g.detach(leaf)
	applySizing(leaf, sizing)
	g.insertBeside(leaf, ref, direction, sizing.Kind == entity.SizingDistribute)
	g.collapse(oldParent)
	g.layoutLocked()
	visible := leaf.visible
	g.mu.Unlock()

	if visible != wasVisible {
		g.emit(part, visible)
	}
	return nil
}

func applySizing(leaf *node, sizing entity.Sizing) {
	switch sizing.Kind {
	case entity.SizingInvisible:
		leaf.visible = false
		leaf.cached = max(sizing.CachedVisibleSize, 0)
		leaf.size = leaf.cached
	case entity.SizingDistribute:
		leaf.visible = true
	default:
		leaf.visible = true
		leaf.size = max(sizing.Size, 0)
	}
}

func (g *Grid) insertBeside(leaf, ref *node, direction entity.Direction, distribute bool) {
	p := ref.parent
	want := entity.OrientationFor(direction)
	after := direction == entity.DirectionDown || direction == entity.DirectionRight

	if g.orientationOf(p) != want {
		i := p.indexOf(ref)
		branch := &node{parent: p, size: ref.size}
		p.children[i] = branch
		ref.parent = branch
		if span := extent(ref.box, want); span > 0 {
			ref.size = span
		}
		p = branch
		p.children = []*node{ref}
	}

	i := p.indexOf(ref)
	if after {
		i++
	}
	insertAt(p, i, leaf)

	if distribute {
		siblings := p.visibleChildren()
		total := 0
		for _, s := range siblings {
			if s != leaf {
				total += s.size
			}
		}
		leaf.size = total / max(len(siblings), 1)
	}
}

func insertAt(p *node, i int, child *node) {
	i = clamp(i, 0, len(p.children))
	p.children = append(p.children, nil)
	copy(p.children[i+1:], p.children[i:])
	p.children[i] = child
	child.parent = p
}

// detach removes n from its parent and returns the former parent.
func (g *Grid) detach(n *node) *node {
	p := n.parent
	if i := p.indexOf(n); i >= 0 {
		p.children = append(p.children[:i], p.children[i+1:]...)
	}
	n.parent = nil
	return p
}

// collapse removes branches left with fewer than two children. A lone
// branch child runs the same way as its grandparent and is merged into it.
func (g *Grid) collapse(p *node) {
	if p == nil || p == g.root || p.parent == nil || len(p.children) > 1 {
		return
	}

	gp := p.parent
	i := gp.indexOf(p)
	if i < 0 {
		return
	}

	switch {
	case len(p.children) == 0:
		gp.children = append(gp.children[:i], gp.children[i+1:]...)
		g.collapse(gp)
	case p.children[0].isLeaf():
		only := p.children[0]
		only.parent = gp
		only.size = p.size
		gp.children[i] = only
	default:
		only := p.children[0]
		merged := make([]*node, 0, len(gp.children)+len(only.children)-1)
		merged = append(merged, gp.children[:i]...)
		for _, c := range only.children {
			c.parent = gp
			merged = append(merged, c)
		}
		merged = append(merged, gp.children[i+1:]...)
		gp.children = merged
	}
	p.parent = nil
}

// MoveViewTo moves part to an absolute location. Every index but the last
// selects a branch; the last is the insertion index. Negative indexes count
// from the end, -1 appending.
func (g *Grid) MoveViewTo(part entity.Part, location []int) error {
	if len(location) == 0 {
		return fmt.Errorf("%w: empty location", ErrInvalidLocation)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	leaf := g.leaves[part]
	if leaf == nil {
		return fmt.Errorf("%w: %s", ErrViewNotFound, part.ShortName())
	}

	target := g.root
	for _, idx := range location[:len(location)-1] {
		n := len(target.children)
		i := idx
		if i < 0 {
			i += n
		}
		if i < 0 || i >= n || target.children[i].isLeaf() {
			return fmt.Errorf("%w: %v", ErrInvalidLocation, location)
		}
		target = target.children[i]
	}
	if target == leaf.parent && len(target.children) <= 2 && target != g.root {
		return fmt.Errorf("%w: %v would dissolve its own branch", ErrInvalidLocation, location)
	}

	oldParent := g.detach(leaf)
	last := location[len(location)-1]
	if last < 0 {
		last += len(target.children) + 1
	}
	insertAt(target, last, leaf)
	g.collapse(oldParent)
	g.layoutLocked()
	return nil
}

// ResizeView sets the size of part. The axis along its parent resizes the
// view itself; the other axis resizes the nearest ancestor running that way.
// A hidden view only updates the size it will be shown with. Zero or
// negative values leave that axis unchanged.
func (g *Grid) ResizeView(part entity.Part, size entity.Dimension) {
	g.mu.Lock()
	defer g.mu.Unlock()

	leaf := g.leaves[part]
	if leaf == nil || leaf.parent == nil {
		return
	}

	axis := g.orientationOf(leaf.parent)
	along, cross := size.Width, size.Height
	if axis == entity.OrientationVertical {
		along, cross = size.Height, size.Width
	}

	if !leaf.visible {
		if along > 0 {
			leaf.cached = along
			leaf.size = along
		}
		return
	}

	if along > 0 {
		g.resizeAlong(leaf, along)
	}

	crossAxis := axis.Orthogonal()
	current := leaf
	for current.parent != nil && g.orientationOf(current.parent) != crossAxis {
		current = current.parent
	}
	if cross > 0 && current.parent != nil && g.laidOut && cross != extent(current.box, crossAxis) {
		g.resizeAlong(current, cross)
	}

	g.layoutLocked()
}

// SetViewVisible shows or hides part. Listeners only hear about actual changes.
func (g *Grid) SetViewVisible(part entity.Part, visible bool) {
	g.mu.Lock()
	leaf := g.leaves[part]
	if leaf == nil || leaf.visible == visible {
		g.mu.Unlock()
		return
	}

	if visible {
		size := leaf.cached
		if size <= 0 && leaf.parent != nil {
			c := g.constraints[part]
			size = c.MinimumWidth
			if g.orientationOf(leaf.parent) == entity.OrientationVertical {
				size = c.MinimumHeight
			}
		}

		// The outermost node that reappears with this leaf.
		top := leaf
		for top.parent != nil && !top.parent.isVisible() {
			top = top.parent
		}

		leaf.visible = true
		leaf.size = size
		if g.laidOut {
			g.reveal(top)
		}
	} else {
		leaf.cached = leaf.size
		leaf.visible = false
	}
	g.layoutLocked()
	g.mu.Unlock()

	g.emit(part, visible)
}

// reveal makes room for n, which just became visible, by shrinking its
// siblings in absorb order.
func (g *Grid) reveal(n *node) {
	p := n.parent
	if p == nil {
		return
	}
	o := g.orientationOf(p)
	lo, hi := g.limits(n, o)
	n.size = clamp(n.size, lo, hi)

	need := n.size
	for _, s := range absorbOrder(p, n) {
		if need == 0 {
			break
		}
		slo, shi := g.limits(s, o)
		next := clamp(s.size-need, slo, shi)
		need -= s.size - next
		s.size = next
	}
	n.size -= need
}

// IsViewVisible reports whether part is shown.
func (g *Grid) IsViewVisible(part entity.Part) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	leaf := g.leaves[part]
	return leaf != nil && leaf.visible
}

// GetViewSize returns the live size of part. Before the first layout only
// the extent along its parent is known.
func (g *Grid) GetViewSize(part entity.Part) entity.Dimension {
	g.mu.RLock()
	defer g.mu.RUnlock()

	leaf := g.leaves[part]
	if leaf == nil {
		return entity.Dimension{}
	}
	if g.laidOut {
		return leaf.box.Dimension()
	}
	if !leaf.visible || leaf.parent == nil {
		return entity.Dimension{}
	}
	if g.orientationOf(leaf.parent) == entity.OrientationVertical {
		return entity.Dimension{Height: leaf.size}
	}
	return entity.Dimension{Width: leaf.size}
}

// GetViewCachedVisibleSize returns the size a hidden view gets when shown.
func (g *Grid) GetViewCachedVisibleSize(part entity.Part) (int, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	leaf := g.leaves[part]
	if leaf == nil || leaf.visible {
		return 0, false
	}
	return leaf.cached, true
}

// GetNeighborViews returns the visible parts sharing an edge with part on
// the side given by direction, ordered along that edge.
func (g *Grid) GetNeighborViews(part entity.Part, direction entity.Direction) []entity.Part {
	g.mu.RLock()
	defer g.mu.RUnlock()

	leaf := g.leaves[part]
	if leaf == nil || !leaf.visible || !g.laidOut {
		return nil
	}
	r := leaf.box

	type candidate struct {
		part entity.Part
		pos  int
	}
	var found []candidate
	g.root.walkLeaves(func(n *node) {
		if n == leaf || !n.visible || n.box.W <= 0 || n.box.H <= 0 {
			return
		}
		o := n.box
		overlapX := o.X < r.X+r.W && r.X < o.X+o.W
		overlapY := o.Y < r.Y+r.H && r.Y < o.Y+o.H

		var adjacent bool
		pos := o.X
		switch direction {
		case entity.DirectionUp:
			adjacent = o.Y+o.H == r.Y && overlapX
		case entity.DirectionDown:
			adjacent = o.Y == r.Y+r.H && overlapX
		case entity.DirectionLeft:
			adjacent = o.X+o.W == r.X && overlapY
			pos = o.Y
		case entity.DirectionRight:
			adjacent = o.X == r.X+r.W && overlapY
			pos = o.Y
		}
		if adjacent {
			found = append(found, candidate{part: n.part, pos: pos})
		}
	})

	sort.SliceStable(found, func(i, j int) bool { return found[i].pos < found[j].pos })
	parts := make([]entity.Part, len(found))
	for i, c := range found {
		parts[i] = c.part
	}
	return parts
}

// ViewRects returns the rectangle of every visible view from the last layout.
func (g *Grid) ViewRects() map[entity.Part]entity.Rect {
	g.mu.RLock()
	defer g.mu.RUnlock()

	rects := make(map[entity.Part]entity.Rect, len(g.leaves))
	for part, leaf := range g.leaves {
		if leaf.visible && g.laidOut {
			rects[part] = leaf.box
		}
	}
	return rects
}

// OnDidChangeViewVisibility registers fn and returns its unsubscribe func.
func (g *Grid) OnDidChangeViewVisibility(fn func(part entity.Part, visible bool)) func() {
	g.listenersMu.Lock()
	defer g.listenersMu.Unlock()

	g.nextID++
	id := g.nextID
	g.listeners = append(g.listeners, visibilityListener{id: id, fn: fn})

	return func() {
		g.listenersMu.Lock()
		defer g.listenersMu.Unlock()
		for i, l := range g.listeners {
			if l.id == id {
				g.listeners = append(g.listeners[:i], g.listeners[i+1:]...)
				return
			}
		}
	}
}

func (g *Grid) emit(part entity.Part, visible bool) {
	g.listenersMu.Lock()
	listeners := make([]visibilityListener, len(g.listeners))
	copy(listeners, g.listeners)
	g.listenersMu.Unlock()

	for _, l := range listeners {
		l.fn(part, visible)
	}
}

// Serialize returns the current tree. Hidden leaves carry the size they
// will be shown with.
func (g *Grid) Serialize() entity.GridDescriptor {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return entity.GridDescriptor{
		Root:        serializeNode(g.root),
		Orientation: g.orientation,
		Width:       g.width,
		Height:      g.height,
	}
}

func serializeNode(n *node) *entity.GridNode {
	if n.isLeaf() {
		size := n.size
		if !n.visible {
			size = n.cached
		}
		return entity.NewLeaf(n.part, size, n.visible)
	}
	children := make([]*entity.GridNode, len(n.children))
	for i, c := range n.children {
		children[i] = serializeNode(c)
	}
	return entity.NewBranch(n.size, children...)
}

// Factory creates in-memory grids.
type Factory struct{}

// NewFactory returns a grid factory.
func NewFactory() *Factory {
	return &Factory{}
}

// NewGrid builds a grid from descriptor.
func (f *Factory) NewGrid(
	ctx context.Context,
	descriptor entity.GridDescriptor,
	constraints map[entity.Part]entity.PartConstraints,
) (port.GridController, error) {
	g, err := New(descriptor, constraints)
	if err != nil {
		logging.FromContext(ctx).Error().Err(err).Msg("failed to build grid")
		return nil, err
	}

	logging.FromContext(ctx).Debug().
		Int("views", len(g.leaves)).
		Int("width", descriptor.Width).
		Int("height", descriptor.Height).
		Msg("grid created")
	return g, nil
}
