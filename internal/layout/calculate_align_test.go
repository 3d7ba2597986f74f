package layout

import "testing"

func TestCompute_AlignModes(t *testing.T) {
	type tc struct {
		align  Align
		child  Style
		y      int
		height int
	}

	// Row container 20x10.
	tests := map[string]tc{
		"start": {
			align:  AlignStart,
			child:  NewStyle(WithSize(Absolute(4), Absolute(2))),
			y:      0,
			height: 2,
		},
		"end": {
			align:  AlignEnd,
			child:  NewStyle(WithSize(Absolute(4), Absolute(2))),
			y:      8,
			height: 2,
		},
		"center": {
			align:  AlignCenter,
			child:  NewStyle(WithSize(Absolute(4), Absolute(2))),
			y:      4,
			height: 2,
		},
		"center odd remainder": {
			align:  AlignCenter,
			child:  NewStyle(WithSize(Absolute(4), Absolute(3))),
			y:      3,
			height: 3,
		},
		"stretch keeps absolute height": {
			align:  AlignStretch,
			child:  NewStyle(WithSize(Absolute(4), Absolute(2))),
			y:      0,
			height: 2,
		},
		"stretch keeps percent height": {
			align:  AlignStretch,
			child:  NewStyle(WithSize(Absolute(4), Percent(50))),
			y:      0,
			height: 5,
		},
		"stretch fills auto height": {
			align:  AlignStretch,
			child:  NewStyle(WithWidth(Absolute(4))),
			y:      0,
			height: 10,
		},
		"center auto height without content": {
			align:  AlignCenter,
			child:  NewStyle(WithWidth(Absolute(4))),
			y:      5,
			height: 0,
		},
		"end with oversized child": {
			align:  AlignEnd,
			child:  NewStyle(WithSize(Absolute(4), Absolute(15))),
			y:      0,
			height: 15,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tree := NewTree()
			child := tree.Element("child", tt.child)
			root := tree.Element("root", fillStyle(WithAlign(tt.align)), child)
			tree.SetRoot(root)

			res := Compute(tree, Size{Width: 20, Height: 10})

			r := rectOf(t, res, child)
			if r.Y != tt.y {
				t.Errorf("child Y = %d, want %d", r.Y, tt.y)
			}
			if r.Height != tt.height {
				t.Errorf("child height = %d, want %d", r.Height, tt.height)
			}
			if r.X != 0 || r.Width != 4 {
				t.Errorf("child X/width = %d/%d, want 0/4", r.X, r.Width)
			}
		})
	}
}

func TestCompute_AlignModes_Column(t *testing.T) {
	type tc struct {
		align Align
		x     int
		width int
	}

	tests := map[string]tc{
		"start":   {AlignStart, 0, 4},
		"end":     {AlignEnd, 16, 4},
		"center":  {AlignCenter, 8, 4},
		"stretch": {AlignStretch, 0, 4},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tree := NewTree()
			child := tree.Element("child", NewStyle(WithSize(Absolute(4), Absolute(2))))
			root := tree.Element("root", fillStyle(WithDirection(Column), WithAlign(tt.align)), child)
			tree.SetRoot(root)

			res := Compute(tree, Size{Width: 20, Height: 10})

			checkRect(t, "child", res, child, tt.x, 0, tt.width, 2)
		})
	}
}

func TestCompute_AlignStretch_Text(t *testing.T) {
	tree := NewTree()
	label := tree.Text("hi")
	root := tree.Element("root", fillStyle(), label)
	tree.SetRoot(root)

	res := Compute(tree, Size{Width: 20, Height: 10})

	// Text has no explicit height, so stretch applies.
	checkRect(t, "label", res, label, 0, 0, 2, 10)
}

func TestCompute_StretchedChildLaysOutInStretchedBox(t *testing.T) {
	tree := NewTree()
	inner := tree.Element("inner", NewStyle(WithWidth(Absolute(2))))
	panel := tree.Element("panel", NewStyle(WithWidth(Absolute(6)), WithDirection(Column), WithJustify(JustifyEnd)), inner)
	root := tree.Element("root", fillStyle(), panel)
	tree.SetRoot(root)

	res := Compute(tree, Size{Width: 20, Height: 10})

	// panel's auto height is 0 intrinsically, stretched to 10, and its
	// children are justified inside the stretched box.
	checkRect(t, "panel", res, panel, 0, 0, 6, 10)
	checkRect(t, "inner", res, inner, 0, 10, 2, 0)
}

func TestCompute_NestedPositionsAccumulate(t *testing.T) {
	tree := NewTree()
	leaf := tree.Element("leaf", NewStyle(WithSize(Absolute(2), Absolute(1))))
	inner := tree.Element("inner", NewStyle(WithSize(Absolute(10), Absolute(5)), WithJustify(JustifyEnd), WithAlign(AlignEnd)), leaf)
	outer := tree.Element("outer", NewStyle(WithSize(Absolute(30), Absolute(12)), WithJustify(JustifyCenter), WithAlign(AlignCenter)), inner)
	root := tree.Element("root", fillStyle(WithJustify(JustifyEnd)), outer)
	tree.SetRoot(root)

	res := Compute(tree, Size{Width: 40, Height: 12})

	checkRect(t, "outer", res, outer, 10, 0, 30, 12)
	checkRect(t, "inner", res, inner, 20, 3, 10, 5)
	checkRect(t, "leaf", res, leaf, 28, 7, 2, 1)
}

func TestAlignOffset(t *testing.T) {
	tests := map[string]struct {
		align Align
		cross int
		item  int
		want  int
	}{
		"start":            {AlignStart, 10, 4, 0},
		"end":              {AlignEnd, 10, 4, 6},
		"center":           {AlignCenter, 10, 4, 3},
		"stretch":          {AlignStretch, 10, 10, 0},
		"end oversized":    {AlignEnd, 10, 14, 0},
		"center oversized": {AlignCenter, 10, 14, 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := alignOffset(tt.align, tt.cross, tt.item); got != tt.want {
				t.Errorf("alignOffset() = %d, want %d", got, tt.want)
			}
		})
	}
}
