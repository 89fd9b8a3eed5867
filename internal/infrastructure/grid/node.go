// Package grid implements an in-memory resizable grid for the workbench
// parts. It keeps the split tree, the sizes and the visibility of every
// view and computes their rectangles; drawing is left to the caller.
package grid

import (
	"slices"

	"github.com/bnema/workbench/internal/domain/entity"
)

// node is either a leaf holding a part or a branch holding children laid
// out along the branch orientation. Orientation is not stored: it
// alternates with depth starting from the root orientation.
type node struct {
	part     entity.Part
	parent   *node
	children []*node

	// size is the extent along the parent orientation.
	size int
	// visible only applies to leaves; branches derive it from children.
	visible bool
	// cached is the size a hidden leaf gets back when shown.
	cached int

	box entity.Rect
}

func (n *node) isLeaf() bool {
	return n.part != ""
}

func (n *node) isVisible() bool {
	if n.isLeaf() {
		return n.visible
	}
	for _, c := range n.children {
		if c.isVisible() {
			return true
		}
	}
	return false
}

func (n *node) contains(part entity.Part) bool {
	if n.isLeaf() {
		return n.part == part
	}
	for _, c := range n.children {
		if c.contains(part) {
			return true
		}
	}
	return false
}

func (n *node) indexOf(child *node) int {
	return slices.Index(n.children, child)
}

func (n *node) visibleChildren() []*node {
	var out []*node
	for _, c := range n.children {
		if c.isVisible() {
			out = append(out, c)
		}
	}
	return out
}

// walkLeaves visits every leaf in tree order.
func (n *node) walkLeaves(fn func(*node)) {
	if n.isLeaf() {
		fn(n)
		return
	}
	for _, c := range n.children {
		c.walkLeaves(fn)
	}
}

func extent(r entity.Rect, o entity.Orientation) int {
	if o == entity.OrientationVertical {
		return r.H
	}
	return r.W
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	return max(lo, min(v, hi))
}

func addSaturating(a, b int) int {
	if a > entity.Unbounded-b {
		return entity.Unbounded
	}
	return a + b
}
