package layout

import "github.com/rivo/uniseg"

// Compute lays out the tree rooted at tree.Root() within viewport and returns
// a fresh Result. It never fails: a nil or rootless tree yields an empty
// Result, negative viewport dimensions are treated as zero, and a hidden root
// records nothing.
//
// The root resolves its own width and height against the viewport. Every
// visible descendant is then sized and positioned by its parent's flex rules.
// Width is always reported as the viewport width; height grows when content
// overflows vertically.
func Compute(tree *Tree, viewport Size) *Result {
	viewport = viewport.nonNegative()
	res := newResult(tree.Len())
	res.TotalSize = viewport

	if tree == nil || !tree.Valid(tree.root) || tree.nodes[tree.root].hidden() {
		return res
	}

	e := newEngine(tree)
	size := e.measure(tree.root, viewport)
	e.place(tree.root, Position{}, size, res)

	res.TotalSize.Height = max(viewport.Height, res.bottom)
	return res
}

// measurement caches the size of a node for one available size.
type measurement struct {
	available Size
	size      Size
	ok        bool
}

// engine holds the per-call state of one Compute. The memo lives here rather
// than on the tree so that Compute never writes to its input.
type engine struct {
	tree *Tree
	memo []measurement
}

func newEngine(tree *Tree) *engine {
	return &engine{tree: tree, memo: make([]measurement, len(tree.nodes))}
}

// measure returns the size a node resolves to when offered available space.
// Explicit values resolve directly; Auto axes fall back to the intrinsic
// content size, which for elements requires sizing the children first.
func (e *engine) measure(id NodeID, available Size) Size {
	n := &e.tree.nodes[id]
	switch n.kind {
	case KindText:
		return Size{Width: textWidth(n.text), Height: 1}
	case KindEmpty:
		return Size{}
	}
	if n.hidden() {
		return Size{}
	}
	if m := e.memo[id]; m.ok && m.available == available {
		return m.size
	}

	width := n.style.Width.Resolve(available.Width, 0)
	height := n.style.Height.Resolve(available.Height, 0)
	autoWidth, autoHeight := n.style.Width.IsAuto(), n.style.Height.IsAuto()

	if autoWidth || autoHeight {
		inner := Size{Width: width, Height: height}
		if autoWidth {
			inner.Width = available.Width
		}
		if autoHeight {
			inner.Height = available.Height
		}
		content := e.contentSize(n, inner)
		if autoWidth {
			width = content.Width
		}
		if autoHeight {
			height = content.Height
		}
	}

	size := Size{Width: width, Height: height}
	e.memo[id] = measurement{available: available, size: size, ok: true}
	return size
}

// contentSize is the intrinsic size of an element: the sum of its children
// along the main axis and the largest child along the cross axis.
func (e *engine) contentSize(n *node, inner Size) Size {
	isRow := n.style.direction() == Row
	var mainSum, crossMax int
	for _, item := range e.sizeChildren(n, inner) {
		mainSum = min(mainSum+item.mainSize, maxExtent)
		crossMax = max(crossMax, item.crossSize)
	}
	return fromAxes(mainSum, crossMax, isRow)
}

// place records the box for id and lays out its children inside it.
func (e *engine) place(id NodeID, pos Position, size Size, res *Result) {
	box := Rect{Position: pos, Size: size}
	res.insert(id, box)

	n := &e.tree.nodes[id]
	if n.kind == KindElement && len(n.children) > 0 {
		e.layoutChildren(n, box, res)
	}
}

// textWidth counts user-perceived characters; each occupies one cell.
func textWidth(s string) int {
	return uniseg.GraphemeClusterCount(s)
}
