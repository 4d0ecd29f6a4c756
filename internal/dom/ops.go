package dom

import (
	"errors"
	"fmt"
)

// SwapNodes exchanges the tree positions of a and b. Afterwards a has b's old
// parent and next sibling, and b has a's.
//
// When b is the last child of its parent, an empty text node is appended after
// a once it has moved into b's place. That placeholder stays in the tree as the
// last child. If a collaborator call fails part way, the moves already made are
// undone before the error is returned.
func SwapNodes(doc Document, a, b Node) error {
	if a == nil || b == nil {
		return ErrNilNode
	}
	if a == b {
		return nil
	}

	parentA, parentB := a.Parent(), b.Parent()
	if parentA == nil || parentB == nil {
		return ErrDetached
	}
	if contains(a, b) || contains(b, a) {
		return ErrHierarchy
	}

	origNext := b.NextSibling()
	if origNext == nil && doc == nil {
		return fmt.Errorf("%w: a document is required to swap a last child", ErrNilNode)
	}

	// a directly follows b, so once b leaves, a's new anchor is b itself.
	next := origNext
	if next == a {
		next = b
	}

	if err := parentA.ReplaceChild(b, a); err != nil {
		return fmt.Errorf("failed to move second node: %w", err)
	}

	// restore puts a and b back where they started.
	restore := func(cause error) error {
		if err := parentA.ReplaceChild(a, b); err != nil {
			return errors.Join(cause, fmt.Errorf("failed to restore first node: %w", err))
		}
		if err := parentB.InsertBefore(b, origNext); err != nil {
			return errors.Join(cause, fmt.Errorf("failed to restore second node: %w", err))
		}
		return cause
	}

	if err := parentB.InsertBefore(a, next); err != nil {
		return restore(fmt.Errorf("failed to move first node: %w", err))
	}
	if origNext == nil {
		placeholder := doc.CreateTextNode("")
		if err := parentB.InsertBefore(placeholder, nil); err != nil {
			return restore(fmt.Errorf("failed to insert placeholder: %w", err))
		}
	}
	return nil
}

// RemoveDuplicateChildren removes every element child of parent whose text
// content exactly matches an earlier element child's. Non-element children are
// left alone. It returns the number of children removed.
func RemoveDuplicateChildren(parent Node) (int, error) {
	if parent == nil {
		return 0, ErrNilNode
	}

	seen := make(map[string]bool)
	removed := 0
	for _, child := range parent.Children() {
		if !child.IsElement() {
			continue
		}
		text := child.TextContent()
		if !seen[text] {
			seen[text] = true
			continue
		}
		if err := parent.RemoveChild(child); err != nil {
			return removed, fmt.Errorf("failed to remove duplicate child: %w", err)
		}
		removed++
	}
	return removed, nil
}
