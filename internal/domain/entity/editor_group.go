package entity

// EditorGroupLayout is one node of the editor group layout. A group with
// nested Groups is split along the orthogonal axis of its parent.
type EditorGroupLayout struct {
	Size   int                 `json:"size,omitempty"`
	Groups []EditorGroupLayout `json:"groups,omitempty"`
}

// EditorGroupsLayout describes how editor groups are arranged in the editor part.
type EditorGroupsLayout struct {
	Orientation Orientation         `json:"orientation"`
	Groups      []EditorGroupLayout `json:"groups"`
}

// HasMoreThanOneColumn reports whether groups are laid out side by side.
func (l EditorGroupsLayout) HasMoreThanOneColumn() bool {
	if l.Orientation == OrientationHorizontal {
		return len(l.Groups) > 1
	}
	for _, g := range l.Groups {
		if len(g.Groups) > 1 {
			return true
		}
	}
	return false
}

// VisibleEditor summarizes a visible editor for layout policy decisions.
type VisibleEditor struct {
	Resource string
	// SideBySideDiff is a diff editor rendering both sides at once.
	SideBySideDiff bool
	// MultiEditor is an editor hosting several editors in one pane.
	MultiEditor bool
}

// IsComplex reports whether the editor needs the full editor width.
func (e VisibleEditor) IsComplex() bool {
	return e.SideBySideDiff || e.MultiEditor
}

// EditorGroupEventKind enumerates editor group changes the layout reacts to.
type EditorGroupEventKind int

const (
	EditorGroupVisibleEditorsChanged EditorGroupEventKind = iota
	EditorGroupActiveEditorChanged
	EditorGroupActivated
	EditorGroupAdded
	EditorGroupRemoved
	EditorGroupMaximizedChanged
)

// String implements fmt.Stringer.
func (k EditorGroupEventKind) String() string {
	switch k {
	case EditorGroupVisibleEditorsChanged:
		return "visible-editors-changed"
	case EditorGroupActiveEditorChanged:
		return "active-editor-changed"
	case EditorGroupActivated:
		return "group-activated"
	case EditorGroupAdded:
		return "group-added"
	case EditorGroupRemoved:
		return "group-removed"
	case EditorGroupMaximizedChanged:
		return "group-maximized-changed"
	default:
		return "unknown"
	}
}
