// Package htmldom exposes golang.org/x/net/html trees through the dom.Node
// interface.
package htmldom

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/jmylchreest/lillib/internal/dom"
)

// Node wraps an *html.Node. Two Nodes wrapping the same *html.Node compare equal.
type Node struct {
	n *html.Node
}

var _ dom.Node = Node{}

// Wrap returns n as a dom.Node, or nil when n is nil.
func Wrap(n *html.Node) dom.Node {
	if n == nil {
		return nil
	}
	return Node{n: n}
}

// HTML returns the wrapped node.
func (x Node) HTML() *html.Node {
	return x.n
}

// Parent implements dom.Node.
func (x Node) Parent() dom.Node {
	return Wrap(x.n.Parent)
}

// NextSibling implements dom.Node.
func (x Node) NextSibling() dom.Node {
	return Wrap(x.n.NextSibling)
}

// Children implements dom.Node.
func (x Node) Children() []dom.Node {
	var out []dom.Node
	for c := x.n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, Node{n: c})
	}
	return out
}

// IsElement implements dom.Node.
func (x Node) IsElement() bool {
	return x.n.Type == html.ElementNode
}

// TextContent returns the node's text the way the DOM textContent property
// does: the data of text nodes, concatenated over all descendants.
func (x Node) TextContent() string {
	switch x.n.Type {
	case html.TextNode, html.CommentNode:
		return x.n.Data
	}
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			switch c.Type {
			case html.TextNode:
				sb.WriteString(c.Data)
			case html.ElementNode:
				walk(c)
			}
		}
	}
	walk(x.n)
	return sb.String()
}

// InsertBefore implements dom.Node.
func (x Node) InsertBefore(child, ref dom.Node) error {
	c, err := unwrap(child)
	if err != nil {
		return err
	}
	var r *html.Node
	if ref != nil {
		if r, err = unwrap(ref); err != nil {
			return err
		}
		if r.Parent != x.n {
			return dom.ErrNotChild
		}
	}
	if isAncestor(c, x.n) {
		return dom.ErrHierarchy
	}
	if c == r {
		return nil
	}
	if c.Parent != nil {
		c.Parent.RemoveChild(c)
	}
	x.n.InsertBefore(c, r)
	return nil
}

// ReplaceChild implements dom.Node.
func (x Node) ReplaceChild(newChild, old dom.Node) error {
	nc, err := unwrap(newChild)
	if err != nil {
		return err
	}
	o, err := unwrap(old)
	if err != nil {
		return err
	}
	if o.Parent != x.n {
		return dom.ErrNotChild
	}
	if nc == o {
		return nil
	}
	if err := x.InsertBefore(Node{n: nc}, Node{n: o}); err != nil {
		return err
	}
	x.n.RemoveChild(o)
	return nil
}

// RemoveChild implements dom.Node.
func (x Node) RemoveChild(child dom.Node) error {
	c, err := unwrap(child)
	if err != nil {
		return err
	}
	if c.Parent != x.n {
		return dom.ErrNotChild
	}
	x.n.RemoveChild(c)
	return nil
}

// Document creates nodes for html trees.
type Document struct{}

// CreateTextNode implements dom.Document.
func (Document) CreateTextNode(data string) dom.Node {
	return Node{n: &html.Node{Type: html.TextNode, Data: data}}
}

// Parse reads an HTML document.
func Parse(r io.Reader) (*html.Node, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse html: %w", err)
	}
	return root, nil
}

// Render writes root as HTML.
func Render(w io.Writer, root *html.Node) error {
	if err := html.Render(w, root); err != nil {
		return fmt.Errorf("failed to render html: %w", err)
	}
	return nil
}

// FindByID returns the first element under root (inclusive) whose id
// attribute equals id, or nil.
func FindByID(root *html.Node, id string) dom.Node {
	if root == nil {
		return nil
	}
	if root.Type == html.ElementNode {
		for _, attr := range root.Attr {
			if attr.Namespace == "" && attr.Key == "id" && attr.Val == id {
				return Node{n: root}
			}
		}
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if found := FindByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

func unwrap(n dom.Node) (*html.Node, error) {
	if n == nil {
		return nil, dom.ErrNilNode
	}
	x, ok := n.(Node)
	if !ok {
		return nil, dom.ErrForeignNode
	}
	if x.n == nil {
		return nil, dom.ErrNilNode
	}
	return x.n, nil
}

// isAncestor reports whether a is n or one of n's ancestors.
func isAncestor(a, n *html.Node) bool {
	for cur := n; cur != nil; cur = cur.Parent {
		if cur == a {
			return true
		}
	}
	return false
}
