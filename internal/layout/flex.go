package layout

// flexItem holds intermediate calculation state for a child.
// This is allocated per layout call, not stored on nodes.
type flexItem struct {
	id        NodeID
	fill      bool
	mainSize  int
	crossSize int
	mainPos   int
	crossPos  int
}

// sizeChildren resolves the main and cross size of every visible child of n
// inside a container of the given size. Hidden children are dropped.
//
// Children that do not fill resolve first, against the full main extent, so
// percentages of siblings add up to the container. Fill children then take
// whatever is left in declaration order: the first consumes all of it and any
// later Fill sibling gets zero.
func (e *engine) sizeChildren(n *node, container Size) []flexItem {
	isRow := n.style.direction() == Row
	mainAvail, crossAvail := axes(container, isRow)

	items := make([]flexItem, 0, len(n.children))
	used := 0
	for _, child := range n.children {
		cn := &e.tree.nodes[child]
		if cn.hidden() {
			continue
		}
		item := flexItem{id: child, fill: cn.style.mainValue(isRow).IsFill()}
		if !item.fill {
			size := e.measure(child, fromAxes(mainAvail, crossAvail, isRow))
			item.mainSize, item.crossSize = axes(size, isRow)
			used = min(used+item.mainSize, maxExtent)
		}
		items = append(items, item)
	}

	remaining := max(mainAvail-used, 0)
	for i := range items {
		if !items[i].fill {
			continue
		}
		size := e.measure(items[i].id, fromAxes(remaining, crossAvail, isRow))
		items[i].mainSize, items[i].crossSize = axes(size, isRow)
		remaining = 0
	}
	return items
}

// layoutChildren arranges the children of n within box and recurses into
// each of them. This implements the core flexbox algorithm.
func (e *engine) layoutChildren(n *node, box Rect, res *Result) {
	items := e.sizeChildren(n, box.Size)
	if len(items) == 0 {
		return
	}

	isRow := n.style.direction() == Row
	mainSize, crossSize := axes(box.Size, isRow)
	align := n.style.align()

	// Stretch overrides the cross size unless the child asked for an
	// explicit one.
	if align == AlignStretch {
		for i := range items {
			if !e.tree.nodes[items[i].id].style.crossValue(isRow).IsExplicit() {
				items[i].crossSize = crossSize
			}
		}
	}

	used := 0
	for i := range items {
		used += items[i].mainSize
	}
	offset, spacing := justifyOffsets(n.style.justify(), mainSize-used, len(items))

	for i := range items {
		items[i].mainPos = offset
		offset += items[i].mainSize + spacing
		items[i].crossPos = alignOffset(align, crossSize, items[i].crossSize)
	}

	for _, item := range items {
		var pos Position
		if isRow {
			pos = Position{X: box.X + item.mainPos, Y: box.Y + item.crossPos}
		} else {
			pos = Position{X: box.X + item.crossPos, Y: box.Y + item.mainPos}
		}
		e.place(item.id, pos, fromAxes(item.mainSize, item.crossSize, isRow), res)
	}
}

// justifyOffsets returns the offset of the first child and the extra spacing
// after each child. Negative free space is not distributed: children are
// packed from the main-axis origin. Remainders of uneven splits are dropped.
func justifyOffsets(justify Justify, freeSpace, itemCount int) (offset, spacing int) {
	if freeSpace <= 0 || itemCount == 0 {
		return 0, 0
	}

	switch justify {
	case JustifyEnd:
		return freeSpace, 0
	case JustifyCenter:
		return freeSpace / 2, 0
	case JustifySpaceBetween:
		if itemCount < 2 {
			return 0, 0
		}
		return 0, freeSpace / (itemCount - 1)
	case JustifySpaceAround:
		gap := freeSpace / itemCount
		return gap / 2, gap
	case JustifySpaceEvenly:
		gap := freeSpace / (itemCount + 1)
		return gap, gap
	default: // JustifyStart
		return 0, 0
	}
}

// alignOffset returns the offset for positioning a child on the cross axis.
// A child larger than the container starts at the cross origin.
func alignOffset(align Align, crossSize, itemSize int) int {
	free := max(crossSize-itemSize, 0)
	switch align {
	case AlignEnd:
		return free
	case AlignCenter:
		return free / 2
	default: // AlignStart, AlignStretch
		return 0
	}
}

// axes splits a size into (main, cross) for the given direction.
func axes(s Size, isRow bool) (main, cross int) {
	if isRow {
		return s.Width, s.Height
	}
	return s.Height, s.Width
}

// fromAxes is the inverse of axes.
func fromAxes(main, cross int, isRow bool) Size {
	if isRow {
		return Size{Width: main, Height: cross}
	}
	return Size{Width: cross, Height: main}
}
