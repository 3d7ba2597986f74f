// Package vflex computes flexbox layouts for trees of virtual nodes in a
// terminal grid.
//
// Users import this single package for the layout API: tree construction,
// styles, dimension values, the Compute entry point and its result cache.
// Every coordinate and extent is a whole number of terminal cells.
//
//	tree := vflex.NewTree()
//	header := tree.Element("header", vflex.NewStyle(vflex.WithHeight(vflex.Absolute(3))))
//	body := tree.Element("main", vflex.NewStyle(vflex.WithHeight(vflex.Fill())))
//	root := tree.Element("app", vflex.NewStyle(
//		vflex.WithDirection(vflex.Column),
//		vflex.WithSize(vflex.Fill(), vflex.Fill()),
//	), header, body)
//	tree.SetRoot(root)
//
//	res := vflex.Compute(tree, vflex.Size{Width: 80, Height: 24})
//	r, _ := res.Rect(body) // {0 3 80 21}
package vflex
