// Package entity contains the layout domain types: workbench parts, positions,
// typed state keys and grid descriptors. These are pure Go types with no
// infrastructure dependencies.
package entity

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPart is returned when a part identifier does not name a workbench part.
var ErrUnknownPart = errors.New("unknown part")

// Part identifies one of the fixed workbench regions.
type Part string

const (
	PartTitlebar     Part = "workbench.parts.titlebar"
	PartBanner       Part = "workbench.parts.banner"
	PartActivityBar  Part = "workbench.parts.activitybar"
	PartSideBar      Part = "workbench.parts.sidebar"
	PartEditor       Part = "workbench.parts.editor"
	PartPanel        Part = "workbench.parts.panel"
	PartAuxiliaryBar Part = "workbench.parts.auxiliarybar"
	PartStatusBar    Part = "workbench.parts.statusbar"
)

const partPrefix = "workbench.parts."

// AllParts returns every part in grid order (top to bottom, left to right).
func AllParts() []Part {
	return []Part{
		PartTitlebar,
		PartBanner,
		PartActivityBar,
		PartSideBar,
		PartEditor,
		PartPanel,
		PartAuxiliaryBar,
		PartStatusBar,
	}
}

// Valid reports whether p is one of the known parts.
func (p Part) Valid() bool {
	switch p {
	case PartTitlebar, PartBanner, PartActivityBar, PartSideBar,
		PartEditor, PartPanel, PartAuxiliaryBar, PartStatusBar:
		return true
	default:
		return false
	}
}

// ShortName returns the identifier without the "workbench.parts." prefix.
func (p Part) ShortName() string {
	return strings.TrimPrefix(string(p), partPrefix)
}

// String implements fmt.Stringer.
func (p Part) String() string {
	return string(p)
}

// ParsePart accepts either a full part identifier or its short name
// ("sidebar", "auxiliarybar", ...). A few common aliases are accepted too.
func ParsePart(s string) (Part, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.TrimPrefix(name, partPrefix)

	switch name {
	case "sidebar", "side-bar", "primary-sidebar":
		name = "sidebar"
	case "auxiliarybar", "auxiliary-bar", "secondary-sidebar", "auxbar":
		name = "auxiliarybar"
	case "activitybar", "activity-bar":
		name = "activitybar"
	case "statusbar", "status-bar":
		name = "statusbar"
	case "titlebar", "title-bar":
		name = "titlebar"
	}

	p := Part(partPrefix + name)
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownPart, s)
	}
	return p, nil
}

// ViewContainerLocation is where a pane composite (view container) can live.
type ViewContainerLocation int

const (
	LocationSideBar ViewContainerLocation = iota
	LocationPanel
	LocationAuxiliaryBar
)

// String implements fmt.Stringer.
func (l ViewContainerLocation) String() string {
	switch l {
	case LocationSideBar:
		return "sidebar"
	case LocationPanel:
		return "panel"
	case LocationAuxiliaryBar:
		return "auxiliarybar"
	default:
		return "unknown"
	}
}

// Part returns the workbench part hosting the location.
func (l ViewContainerLocation) Part() Part {
	switch l {
	case LocationPanel:
		return PartPanel
	case LocationAuxiliaryBar:
		return PartAuxiliaryBar
	default:
		return PartSideBar
	}
}

// WorkbenchState describes what the window has opened.
type WorkbenchState int

const (
	WorkbenchEmpty WorkbenchState = iota + 1
	WorkbenchFolder
	WorkbenchWorkspace
)

// String implements fmt.Stringer.
func (s WorkbenchState) String() string {
	switch s {
	case WorkbenchEmpty:
		return "empty"
	case WorkbenchFolder:
		return "folder"
	case WorkbenchWorkspace:
		return "workspace"
	default:
		return "unknown"
	}
}
