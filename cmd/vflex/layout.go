package main

import (
	"fmt"
	"io"

	"github.com/grindlemire/go-vflex/internal/layout"
	"github.com/grindlemire/go-vflex/internal/preview"
)

// runLayout implements the layout subcommand.
// It prints one line per laid-out node followed by the total size and the
// bounding box of all content.
func runLayout(args []string, out io.Writer) error {
	var f inputFlags
	newFlagSet("layout", &f)

	in, err := loadInput(&f, args)
	if err != nil {
		return err
	}

	res := layout.Compute(in.tree, in.viewport)
	fmt.Fprint(out, preview.Table(in.tree, res, preview.Names(in.ids)))
	fmt.Fprintf(out, "total %s\n", res.TotalSize)
	fmt.Fprintf(out, "bounds %s\n", res.Bounds())
	return nil
}
