package dom

// Node is a single node in a DOM-like tree.
//
// Implementations must return an untyped nil from Parent and NextSibling when
// there is no such node, and Node values for the same underlying node must
// compare equal with ==.
type Node interface {
	// Parent returns the parent node, or nil for a root or detached node.
	Parent() Node
	// NextSibling returns the following sibling, or nil for the last child.
	NextSibling() Node
	// Children returns a snapshot of the direct children in document order.
	Children() []Node
	// IsElement reports whether the node is an element (as opposed to text,
	// comments or other node kinds).
	IsElement() bool
	// TextContent returns the concatenated text of the node and its descendants.
	TextContent() string
	// InsertBefore moves child under this node, before ref. A nil ref appends.
	// child is detached from its current parent first.
	InsertBefore(child, ref Node) error
	// ReplaceChild puts newChild in old's position and detaches old.
	// newChild is detached from its current parent first.
	ReplaceChild(newChild, old Node) error
	// RemoveChild detaches child from this node.
	RemoveChild(child Node) error
}

// Document creates nodes belonging to a tree.
type Document interface {
	// CreateTextNode returns a new detached text node.
	CreateTextNode(data string) Node
}

// contains reports whether n is ancestor or equal to other.
func contains(n, other Node) bool {
	for cur := other; cur != nil; cur = cur.Parent() {
		if cur == n {
			return true
		}
	}
	return false
}
