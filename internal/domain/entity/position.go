package entity

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidPosition is returned when a position string cannot be parsed.
	ErrInvalidPosition = errors.New("invalid position")
	// ErrInvalidAlignment is returned when a panel alignment string cannot be parsed.
	ErrInvalidAlignment = errors.New("invalid panel alignment")
)

// Position places the side bar or the panel. Values match the persisted encoding.
type Position int

const (
	PositionLeft Position = iota
	PositionRight
	PositionBottom
	PositionTop
)

// String implements fmt.Stringer.
func (p Position) String() string {
	switch p {
	case PositionLeft:
		return "left"
	case PositionRight:
		return "right"
	case PositionBottom:
		return "bottom"
	case PositionTop:
		return "top"
	default:
		return "bottom"
	}
}

// IsHorizontal reports whether a panel in this position spans the width
// of the workbench (top or bottom).
func (p Position) IsHorizontal() bool {
	return p == PositionTop || p == PositionBottom
}

// Valid reports whether p is a known position.
func (p Position) Valid() bool {
	return p >= PositionLeft && p <= PositionTop
}

// Opposite returns the mirrored horizontal side. Top and bottom are returned unchanged.
func (p Position) Opposite() Position {
	switch p {
	case PositionLeft:
		return PositionRight
	case PositionRight:
		return PositionLeft
	default:
		return p
	}
}

// ParsePosition parses "left", "right", "bottom" or "top".
func ParsePosition(s string) (Position, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return PositionLeft, nil
	case "right":
		return PositionRight, nil
	case "bottom":
		return PositionBottom, nil
	case "top":
		return PositionTop, nil
	default:
		return PositionBottom, fmt.Errorf("%w: %q", ErrInvalidPosition, s)
	}
}

// PositionFromString is the lenient variant used for settings: unknown values
// map to fallback.
func PositionFromString(s string, fallback Position) Position {
	p, err := ParsePosition(s)
	if err != nil {
		return fallback
	}
	return p
}

// PanelAlignment controls how a horizontal panel lines up with the side bars.
type PanelAlignment string

const (
	AlignmentLeft    PanelAlignment = "left"
	AlignmentCenter  PanelAlignment = "center"
	AlignmentRight   PanelAlignment = "right"
	AlignmentJustify PanelAlignment = "justify"
)

// Valid reports whether a is a known alignment.
func (a PanelAlignment) Valid() bool {
	switch a {
	case AlignmentLeft, AlignmentCenter, AlignmentRight, AlignmentJustify:
		return true
	default:
		return false
	}
}

// ParsePanelAlignment parses an alignment string.
func ParsePanelAlignment(s string) (PanelAlignment, error) {
	a := PanelAlignment(strings.ToLower(strings.TrimSpace(s)))
	if !a.Valid() {
		return AlignmentCenter, fmt.Errorf("%w: %q", ErrInvalidAlignment, s)
	}
	return a, nil
}

// Direction is a neighbour direction inside the grid.
type Direction int

const (
	DirectionUp Direction = iota
	DirectionDown
	DirectionLeft
	DirectionRight
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return "unknown"
	}
}

// Orientation is the axis along which a grid branch lays out its children.
type Orientation int

const (
	// OrientationVertical stacks children top to bottom.
	OrientationVertical Orientation = iota
	// OrientationHorizontal places children left to right.
	OrientationHorizontal
)

// Orthogonal returns the other orientation.
func (o Orientation) Orthogonal() Orientation {
	if o == OrientationVertical {
		return OrientationHorizontal
	}
	return OrientationVertical
}

// String implements fmt.Stringer.
func (o Orientation) String() string {
	if o == OrientationVertical {
		return "vertical"
	}
	return "horizontal"
}

// OrientationFor returns the branch orientation that lays out views adjacent
// in direction d.
func OrientationFor(d Direction) Orientation {
	if d == DirectionUp || d == DirectionDown {
		return OrientationVertical
	}
	return OrientationHorizontal
}
