package htmldom

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/lillib/internal/dom"
)

func parse(t *testing.T, src string) dom.Node {
	t.Helper()
	root, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	return Wrap(root)
}

func find(t *testing.T, root dom.Node, id string) Node {
	t.Helper()
	n := FindByID(root.(Node).HTML(), id)
	require.NotNil(t, n, "element #%s not found", id)
	return n.(Node)
}

func render(t *testing.T, n Node) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, n.HTML()))
	return buf.String()
}

func TestRemoveDuplicateChildren(t *testing.T) {
	root := parse(t, `<ul id="list"><li>a</li>text<li>b</li><li>a</li><li><b>a</b></li><li>A</li></ul>`)
	list := find(t, root, "list")

	removed, err := dom.RemoveDuplicateChildren(list)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)
	assert.Equal(t, `<ul id="list"><li>a</li>text<li>b</li><li>A</li></ul>`, render(t, list))
}

func TestSwapNodesLastChild(t *testing.T) {
	root := parse(t, `<ul id="list"><li id="a">A</li><li id="m">M</li><li id="b">B</li></ul>`)
	list := find(t, root, "list")
	a, b := find(t, root, "a"), find(t, root, "b")

	require.NoError(t, dom.SwapNodes(Document{}, a, b))

	assert.Equal(t, `<ul id="list"><li id="b">B</li><li id="m">M</li><li id="a">A</li></ul>`, render(t, list))

	next := a.NextSibling()
	require.NotNil(t, next)
	assert.False(t, next.IsElement())
	assert.Equal(t, "", next.TextContent())
	assert.Nil(t, next.NextSibling())
}

func TestSwapNodesAcrossParents(t *testing.T) {
	root := parse(t, `<div id="l"><p id="a">A</p><p>x</p></div><div id="r"><p id="b">B</p></div>`)

	require.NoError(t, dom.SwapNodes(Document{}, find(t, root, "a"), find(t, root, "b")))

	assert.Equal(t, `<div id="l"><p id="b">B</p><p>x</p></div>`, render(t, find(t, root, "l")))
	assert.Equal(t, `<div id="r"><p id="a">A</p></div>`, render(t, find(t, root, "r")))
}

func TestSwapNodesAdjacent(t *testing.T) {
	root := parse(t, `<ol id="o"><li id="x">1</li><li id="y">2</li><li>3</li></ol>`)

	require.NoError(t, dom.SwapNodes(Document{}, find(t, root, "y"), find(t, root, "x")))

	assert.Equal(t, `<ol id="o"><li id="y">2</li><li id="x">1</li><li>3</li></ol>`, render(t, find(t, root, "o")))
}

func TestSwapNodesHierarchy(t *testing.T) {
	root := parse(t, `<div id="outer"><span id="inner">i</span></div>`)

	err := dom.SwapNodes(Document{}, find(t, root, "outer"), find(t, root, "inner"))
	assert.ErrorIs(t, err, dom.ErrHierarchy)
}

func TestNodeEquality(t *testing.T) {
	root := parse(t, `<p id="a">A</p><p id="b">B</p>`)
	a := find(t, root, "a")

	var n1, n2 dom.Node = a, Wrap(a.HTML())
	assert.True(t, n1 == n2)
	assert.True(t, a.NextSibling() == dom.Node(find(t, root, "b")))
	assert.Nil(t, Wrap(nil))
}

func TestTextContent(t *testing.T) {
	root := parse(t, `<div id="d">one <b>two</b><!-- skip --> three</div>`)
	assert.Equal(t, "one two three", find(t, root, "d").TextContent())
}

func TestCollaboratorErrors(t *testing.T) {
	root := parse(t, `<ul id="u"><li id="a">A</li></ul><p id="p">P</p>`)
	u, a, p := find(t, root, "u"), find(t, root, "a"), find(t, root, "p")

	assert.ErrorIs(t, u.RemoveChild(p), dom.ErrNotChild)
	assert.ErrorIs(t, u.InsertBefore(p, p), dom.ErrNotChild)
	assert.ErrorIs(t, a.InsertBefore(u, nil), dom.ErrHierarchy)
	assert.ErrorIs(t, u.ReplaceChild(p, p), dom.ErrNotChild)
	assert.ErrorIs(t, u.RemoveChild(nil), dom.ErrNilNode)

	require.NoError(t, u.InsertBefore(p, a))
	assert.Equal(t, `<ul id="u"><p id="p">P</p><li id="a">A</li></ul>`, render(t, u))
}
