package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/grindlemire/go-vflex/internal/config"
	"github.com/grindlemire/go-vflex/internal/layout"
	"github.com/grindlemire/go-vflex/internal/preview"
)

// runPreview implements the preview subcommand.
// It draws the layout at TotalSize, clipped to -rows by -cols, with element
// backgrounds and text.
func runPreview(args []string, out io.Writer) error {
	var (
		f      inputFlags
		border bool
		color  string
		rows   int
		cols   int
	)
	fs := newFlagSet("preview", &f)
	fs.BoolVar(&border, "border", false, "frame the preview")
	fs.StringVar(&color, "color", "", "color profile")
	fs.IntVar(&rows, "rows", preview.DefaultMaxRows, "maximum rows drawn")
	fs.IntVar(&cols, "cols", preview.DefaultMaxCols, "maximum columns drawn")

	in, err := loadInput(&f, args)
	if err != nil {
		return err
	}
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("preview: -rows and -cols must be positive")
	}
	if color == "" {
		color = in.cfg.Color
	}

	r := lipgloss.NewRenderer(out)
	profile, ok, err := config.ParseColorProfile(color)
	if err != nil {
		return err
	}
	if ok {
		r.SetColorProfile(profile)
	}

	res := layout.Compute(in.tree, in.viewport)
	fmt.Fprintln(out, preview.Render(in.tree, res, preview.Options{Renderer: r, Border: border, MaxRows: rows, MaxCols: cols}))
	return nil
}
