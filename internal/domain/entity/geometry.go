package entity

// Dimension is a width/height pair in pixels.
type Dimension struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Rect is a part's position and size inside the workbench container.
type Rect struct {
	X, Y int // Top-left position relative to the container
	W, H int
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (cx, cy int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Dimension returns the size of the rectangle.
func (r Rect) Dimension() Dimension {
	return Dimension{Width: r.W, Height: r.H}
}

// SizingKind tells the grid how to size a view that is (re)inserted.
type SizingKind int

const (
	// SizingFixed uses the given pixel size.
	SizingFixed SizingKind = iota
	// SizingDistribute splits the available space evenly.
	SizingDistribute
	// SizingInvisible inserts the view hidden, remembering CachedVisibleSize
	// for when it is shown again.
	SizingInvisible
)

// Sizing is the size hint passed to GridController.MoveView.
type Sizing struct {
	Kind              SizingKind
	Size              int
	CachedVisibleSize int
}

// FixedSizing returns a fixed size hint.
func FixedSizing(size int) Sizing {
	return Sizing{Kind: SizingFixed, Size: size}
}

// InvisibleSizing returns a hint that inserts a hidden view with a cached size.
func InvisibleSizing(cached int) Sizing {
	return Sizing{Kind: SizingInvisible, CachedVisibleSize: cached}
}

// DistributeSizing returns a hint that splits space evenly.
func DistributeSizing() Sizing {
	return Sizing{Kind: SizingDistribute}
}

// PartConstraints holds the size limits a part declares.
type PartConstraints struct {
	MinimumWidth  int
	MaximumWidth  int
	MinimumHeight int
	MaximumHeight int
}

// Unbounded is used as a maximum size for parts that can grow freely.
const Unbounded = int(^uint(0) >> 1)

// DefaultPartConstraints returns the built-in size limits for every part.
func DefaultPartConstraints() map[Part]PartConstraints {
	return map[Part]PartConstraints{
		PartTitlebar:     {MinimumWidth: 0, MaximumWidth: Unbounded, MinimumHeight: 35, MaximumHeight: 35},
		PartBanner:       {MinimumWidth: 0, MaximumWidth: Unbounded, MinimumHeight: 26, MaximumHeight: 26},
		PartActivityBar:  {MinimumWidth: 48, MaximumWidth: 48, MinimumHeight: 0, MaximumHeight: Unbounded},
		PartSideBar:      {MinimumWidth: 170, MaximumWidth: Unbounded, MinimumHeight: 0, MaximumHeight: Unbounded},
		PartEditor:       {MinimumWidth: 220, MaximumWidth: Unbounded, MinimumHeight: 70, MaximumHeight: Unbounded},
		PartPanel:        {MinimumWidth: 300, MaximumWidth: Unbounded, MinimumHeight: 77, MaximumHeight: Unbounded},
		PartAuxiliaryBar: {MinimumWidth: 170, MaximumWidth: Unbounded, MinimumHeight: 0, MaximumHeight: Unbounded},
		PartStatusBar:    {MinimumWidth: 0, MaximumWidth: Unbounded, MinimumHeight: 22, MaximumHeight: 22},
	}
}
