package dom

import (
	"errors"
	"slices"
	"strings"
)

var errInsertFailed = errors.New("insert failed")

// memNode is a minimal in-memory tree used to exercise the package without a
// real document.
type memNode struct {
	name     string
	text     string
	element  bool
	parent   *memNode
	children []*memNode

	// skipInserts successful InsertBefore calls are allowed before the
	// next insertFailures calls fail with errInsertFailed.
	skipInserts    int
	insertFailures int
}

type memDocument struct{}

func (memDocument) CreateTextNode(data string) Node {
	return &memNode{text: data}
}

func el(name string, children ...*memNode) *memNode {
	n := &memNode{name: name, element: true}
	for _, c := range children {
		c.parent = n
		n.children = append(n.children, c)
	}
	return n
}

func txt(s string) *memNode {
	return &memNode{text: s}
}

// labelled returns an element holding a single text child.
func labelled(name, text string) *memNode {
	return el(name, txt(text))
}

func asMem(n Node) (*memNode, error) {
	if n == nil {
		return nil, nil
	}
	m, ok := n.(*memNode)
	if !ok {
		return nil, ErrForeignNode
	}
	return m, nil
}

func (n *memNode) Parent() Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *memNode) NextSibling() Node {
	if n.parent == nil {
		return nil
	}
	i := n.parent.index(n)
	if i+1 >= len(n.parent.children) {
		return nil
	}
	return n.parent.children[i+1]
}

func (n *memNode) Children() []Node {
	out := make([]Node, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

func (n *memNode) IsElement() bool { return n.element }

func (n *memNode) TextContent() string {
	if !n.element {
		return n.text
	}
	var sb strings.Builder
	for _, c := range n.children {
		sb.WriteString(c.TextContent())
	}
	return sb.String()
}

func (n *memNode) index(child *memNode) int {
	return slices.Index(n.children, child)
}

func (n *memNode) detach() {
	if n.parent == nil {
		return
	}
	p := n.parent
	i := p.index(n)
	p.children = slices.Delete(p.children, i, i+1)
	n.parent = nil
}

func (n *memNode) InsertBefore(child, ref Node) error {
	if n.skipInserts > 0 {
		n.skipInserts--
	} else if n.insertFailures > 0 {
		n.insertFailures--
		return errInsertFailed
	}
	c, err := asMem(child)
	if err != nil {
		return err
	}
	r, err := asMem(ref)
	if err != nil {
		return err
	}
	if r != nil && r.parent != n {
		return ErrNotChild
	}
	if contains(c, n) {
		return ErrHierarchy
	}
	if c == r {
		return nil
	}
	c.detach()
	i := len(n.children)
	if r != nil {
		i = n.index(r)
	}
	n.children = slices.Insert(n.children, i, c)
	c.parent = n
	return nil
}

func (n *memNode) ReplaceChild(newChild, old Node) error {
	nc, err := asMem(newChild)
	if err != nil {
		return err
	}
	o, err := asMem(old)
	if err != nil {
		return err
	}
	if o == nil || o.parent != n {
		return ErrNotChild
	}
	if nc == o {
		return nil
	}
	if err := n.InsertBefore(nc, o); err != nil {
		return err
	}
	o.detach()
	return nil
}

func (n *memNode) RemoveChild(child Node) error {
	c, err := asMem(child)
	if err != nil {
		return err
	}
	if c == nil || c.parent != n {
		return ErrNotChild
	}
	c.detach()
	return nil
}

// layout lists the children of n by name, using "#text" for text nodes.
func layout(n *memNode) []string {
	out := make([]string, 0, len(n.children))
	for _, c := range n.children {
		if c.element {
			out = append(out, c.name)
		} else {
			out = append(out, "#text:"+c.text)
		}
	}
	return out
}
