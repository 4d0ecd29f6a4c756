package dom

import "errors"

var (
	// ErrNilNode indicates a required node or document argument was nil.
	ErrNilNode = errors.New("dom: node must not be nil")
	// ErrDetached indicates a node has no parent and therefore no position to swap.
	ErrDetached = errors.New("dom: node is not attached to a parent")
	// ErrHierarchy indicates an operation would place a node inside itself.
	ErrHierarchy = errors.New("dom: node cannot be moved into its own subtree")
	// ErrNotChild indicates a reference node is not a child of the receiver.
	ErrNotChild = errors.New("dom: reference node is not a child of this node")
	// ErrForeignNode indicates a node belongs to a different tree implementation.
	ErrForeignNode = errors.New("dom: node belongs to a different implementation")
)
