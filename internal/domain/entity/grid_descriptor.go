package entity

// GridNodeType tells leaves from branches.
type GridNodeType string

const (
	GridNodeLeaf   GridNodeType = "leaf"
	GridNodeBranch GridNodeType = "branch"
)

// GridNode is one node of the declarative grid tree. Leaves carry a Part,
// branches carry Children. A hidden leaf stays in the tree so it can be
// shown again later.
type GridNode struct {
	Type     GridNodeType `json:"type"`
	Part     Part         `json:"part,omitempty"`
	Size     int          `json:"size"`
	Visible  bool         `json:"visible"`
	Children []*GridNode  `json:"data,omitempty"`
}

// NewLeaf returns a leaf node for part.
func NewLeaf(part Part, size int, visible bool) *GridNode {
	return &GridNode{Type: GridNodeLeaf, Part: part, Size: size, Visible: visible}
}

// NewBranch returns a branch node. It is visible when any child is visible.
func NewBranch(size int, children ...*GridNode) *GridNode {
	return &GridNode{Type: GridNodeBranch, Size: size, Visible: AnyVisible(children), Children: children}
}

// IsLeaf reports whether the node is a leaf.
func (n *GridNode) IsLeaf() bool {
	return n != nil && n.Type == GridNodeLeaf
}

// AnyVisible reports whether at least one node is visible.
func AnyVisible(nodes []*GridNode) bool {
	for _, n := range nodes {
		if n != nil && n.Visible {
			return true
		}
	}
	return false
}

// Find returns the leaf for part, or nil.
func (n *GridNode) Find(part Part) *GridNode {
	if n == nil {
		return nil
	}
	if n.IsLeaf() {
		if n.Part == part {
			return n
		}
		return nil
	}
	for _, c := range n.Children {
		if found := c.Find(part); found != nil {
			return found
		}
	}
	return nil
}

// Walk visits every node depth-first with its depth.
func (n *GridNode) Walk(fn func(node *GridNode, depth int)) {
	n.walk(fn, 0)
}

func (n *GridNode) walk(fn func(node *GridNode, depth int), depth int) {
	if n == nil {
		return
	}
	fn(n, depth)
	for _, c := range n.Children {
		c.walk(fn, depth+1)
	}
}

// Leaves returns the parts of every leaf in tree order.
func (n *GridNode) Leaves() []Part {
	var parts []Part
	n.Walk(func(node *GridNode, _ int) {
		if node.IsLeaf() {
			parts = append(parts, node.Part)
		}
	})
	return parts
}

// GridDescriptor is the full tree handed to the grid on (re)initialization.
// The root orientation is vertical; orientations alternate with depth.
type GridDescriptor struct {
	Root        *GridNode   `json:"root"`
	Orientation Orientation `json:"orientation"`
	Width       int         `json:"width"`
	Height      int         `json:"height"`
}
