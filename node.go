package uik

// Node is an immutable node of the scene tree handed to renderers for
// drawing. Nodes are produced by the widget/component layer and shared
// by pointer between the producing goroutine and the render loop; the
// renderer only ever reads them. Immutability is enforced at the type
// level: all fields are unexported and there is no mutation API, so a
// node in flight can be read from any goroutine without a lock.
type Node struct {
	kind     string
	children []*Node
}

// NewNode creates a scene node of the given kind with the given
// children. The children slice is copied; the caller keeps no way to
// mutate the node afterwards.
func NewNode(kind string, children ...*Node) *Node {
	n := &Node{kind: kind}
	if len(children) > 0 {
		n.children = make([]*Node, len(children))
		copy(n.children, children)
	}
	return n
}

// Kind returns the node's kind identifier (e.g. "button", "card").
func (n *Node) Kind() string {
	return n.kind
}

// ChildCount returns the number of direct children.
func (n *Node) ChildCount() int {
	return len(n.children)
}

// Child returns the i-th child, or nil if i is out of range.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// Count returns the total number of nodes in the tree rooted at n,
// including n itself. Returns 0 for a nil node.
func (n *Node) Count() int {
	if n == nil {
		return 0
	}
	total := 1
	for _, c := range n.children {
		total += c.Count()
	}
	return total
}

// RenderContext is the ephemeral per-frame state passed to a renderer's
// Render call. It is owned by the caller and borrowed by the renderer
// for the duration of the call only.
type RenderContext struct {
	// Frame is the frame sequence number, starting at 0.
	Frame uint64

	// Time is the frame time in seconds since the loop started.
	Time float64

	// Width and Height are the logical viewport dimensions.
	Width, Height int
}
