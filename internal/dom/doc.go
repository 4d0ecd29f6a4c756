// Package dom relocates and removes nodes in an externally owned, DOM-like tree.
//
// The tree itself is supplied by the caller through the Node and Document
// interfaces; this package never builds a tree and never clones nodes.
//
// Operations:
//
//   - SwapNodes exchanges the positions of two nodes anywhere in the tree.
//   - RemoveDuplicateChildren drops element children whose text content
//     repeats an earlier sibling's.
//
// Errors:
//
//   - ErrNilNode: a node or document argument was nil.
//   - ErrDetached: a node has no parent.
//   - ErrHierarchy: one node contains the other.
//   - ErrNotChild, ErrForeignNode: reported by Node implementations.
//
// Callers must hold exclusive access to the tree for the duration of a call.
package dom
