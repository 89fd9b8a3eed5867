package port

import (
	"context"

	"github.com/bnema/workbench/internal/domain/entity"
)

// GridController is the resizable splitter widget hosting the workbench parts.
// It owns pixel geometry; the layout orchestrator only issues structural
// and sizing requests.
type GridController interface {
	// MoveView moves part next to reference in the given direction.
	MoveView(part entity.Part, sizing entity.Sizing, reference entity.Part, direction entity.Direction) error

	// MoveViewTo moves part to an absolute location in the tree.
	// Negative indexes count from the end.
	MoveViewTo(part entity.Part, location []int) error

	// ResizeView sets the size of part. Axes the part cannot grow along are ignored.
	ResizeView(part entity.Part, size entity.Dimension)

	SetViewVisible(part entity.Part, visible bool)
	IsViewVisible(part entity.Part) bool
	GetViewSize(part entity.Part) entity.Dimension

	// GetViewCachedVisibleSize returns the size a hidden view will get when shown.
	GetViewCachedVisibleSize(part entity.Part) (int, bool)

	// GetNeighborViews returns the parts adjacent to part in direction.
	GetNeighborViews(part entity.Part, direction entity.Direction) []entity.Part

	// Layout distributes width x height over the tree.
	Layout(width, height int)

	// OnDidChangeViewVisibility is called whenever a view is shown or hidden.
	OnDidChangeViewVisibility(fn func(part entity.Part, visible bool)) func()

	// Serialize returns the current tree with live sizes.
	Serialize() entity.GridDescriptor
}

// GridFactory builds a grid from a descriptor.
type GridFactory interface {
	NewGrid(
		ctx context.Context,
		descriptor entity.GridDescriptor,
		constraints map[entity.Part]entity.PartConstraints,
	) (GridController, error)
}
