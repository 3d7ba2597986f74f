package layout

import (
	"fmt"
	"maps"
	"slices"
)

// NodeID identifies a node within one Tree. IDs are assigned densely in
// creation order and are the keys of a Result.
type NodeID int

// NoNode is the NodeID of a missing node.
const NoNode NodeID = -1

// Kind is the variant of a virtual node.
type Kind uint8

const (
	KindElement Kind = iota // Styled container with children
	KindText                // Text leaf, one cell per grapheme
	KindEmpty               // Zero-sized placeholder
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindEmpty:
		return "empty"
	default:
		return "element"
	}
}

type node struct {
	kind     Kind
	tag      string
	text     string
	style    Style
	attrs    map[string]string
	children []NodeID
	parent   NodeID
}

func (n *node) hidden() bool {
	return n.kind == KindElement && n.style.Hidden()
}

// Tree is an arena of virtual nodes. Each node has at most one parent, so the
// nodes reachable from the root form a single owned hierarchy.
//
// A Tree is not safe for concurrent mutation. Compute only reads it, so any
// number of goroutines may lay out the same tree once it is built.
type Tree struct {
	nodes []node
	root  NodeID
}

// NewTree creates an empty tree with no root.
func NewTree() *Tree {
	return &Tree{root: NoNode}
}

func (t *Tree) add(n node) NodeID {
	n.parent = NoNode
	t.nodes = append(t.nodes, n)
	return NodeID(len(t.nodes) - 1)
}

// Element creates an element node and attaches children in order.
// It panics if a child is invalid or already attached elsewhere.
func (t *Tree) Element(tag string, style Style, children ...NodeID) NodeID {
	id := t.add(node{kind: KindElement, tag: tag, style: style})
	for _, child := range children {
		t.AppendChild(id, child)
	}
	return id
}

// Text creates a text leaf.
func (t *Tree) Text(content string) NodeID {
	return t.add(node{kind: KindText, text: content})
}

// Empty creates an empty leaf.
func (t *Tree) Empty() NodeID {
	return t.add(node{kind: KindEmpty})
}

// AppendChild attaches child as the last child of parent. It panics if either
// id is invalid, if parent is not an element, if child already has a parent,
// or if the attachment would create a cycle.
func (t *Tree) AppendChild(parent, child NodeID) {
	t.mustValid(parent)
	t.mustValid(child)
	if t.nodes[parent].kind != KindElement {
		panic(fmt.Sprintf("layout: node %d is a %s and cannot have children", parent, t.nodes[parent].kind))
	}
	if t.nodes[child].parent != NoNode {
		panic(fmt.Sprintf("layout: node %d is already attached to %d", child, t.nodes[child].parent))
	}
	for p := parent; p != NoNode; p = t.nodes[p].parent {
		if p == child {
			panic(fmt.Sprintf("layout: attaching %d to %d would create a cycle", child, parent))
		}
	}
	t.nodes[parent].children = append(t.nodes[parent].children, child)
	t.nodes[child].parent = parent
}

// SetRoot selects the node Compute starts from.
func (t *Tree) SetRoot(id NodeID) {
	t.mustValid(id)
	t.root = id
}

// Root returns the root node, or NoNode if none was set.
func (t *Tree) Root() NodeID {
	return t.root
}

// Len returns the number of nodes in the arena, attached or not.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return len(t.nodes)
}

// Valid reports whether id names a node of this tree.
func (t *Tree) Valid(id NodeID) bool {
	return t != nil && id >= 0 && int(id) < len(t.nodes)
}

func (t *Tree) mustValid(id NodeID) {
	if !t.Valid(id) {
		panic(fmt.Sprintf("layout: invalid node id %d", id))
	}
}

// Kind returns the variant of a node.
func (t *Tree) Kind(id NodeID) Kind {
	t.mustValid(id)
	return t.nodes[id].kind
}

// Tag returns the element tag, or "" for leaves.
func (t *Tree) Tag(id NodeID) string {
	t.mustValid(id)
	return t.nodes[id].tag
}

// Content returns the text of a text node, or "" for other kinds.
func (t *Tree) Content(id NodeID) string {
	t.mustValid(id)
	return t.nodes[id].text
}

// Style returns the style of an element. Leaves have the zero Style.
func (t *Tree) Style(id NodeID) Style {
	t.mustValid(id)
	return t.nodes[id].style
}

// SetStyle replaces the style of an element.
func (t *Tree) SetStyle(id NodeID, style Style) {
	t.mustValid(id)
	t.nodes[id].style = style
}

// SetAttr sets an attribute on a node.
func (t *Tree) SetAttr(id NodeID, key, value string) {
	t.mustValid(id)
	if t.nodes[id].attrs == nil {
		t.nodes[id].attrs = make(map[string]string)
	}
	t.nodes[id].attrs[key] = value
}

// Attr returns an attribute value and whether it was set.
func (t *Tree) Attr(id NodeID, key string) (string, bool) {
	t.mustValid(id)
	v, ok := t.nodes[id].attrs[key]
	return v, ok
}

// Attrs returns a copy of the node's attributes.
func (t *Tree) Attrs(id NodeID) map[string]string {
	t.mustValid(id)
	return maps.Clone(t.nodes[id].attrs)
}

// Children returns a copy of the node's children in declaration order.
func (t *Tree) Children(id NodeID) []NodeID {
	t.mustValid(id)
	return slices.Clone(t.nodes[id].children)
}

// Parent returns the node's parent, or NoNode.
func (t *Tree) Parent(id NodeID) NodeID {
	t.mustValid(id)
	return t.nodes[id].parent
}

// Hidden reports whether the node is an element with display none.
func (t *Tree) Hidden(id NodeID) bool {
	t.mustValid(id)
	return t.nodes[id].hidden()
}

// VisibleCount returns how many nodes Compute will record: every node
// reachable from the root, minus hidden elements and their subtrees.
func (t *Tree) VisibleCount() int {
	if t == nil || !t.Valid(t.root) {
		return 0
	}
	count := 0
	stack := []NodeID{t.root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := &t.nodes[id]
		if n.hidden() {
			continue
		}
		count++
		stack = append(stack, n.children...)
	}
	return count
}
