// Package preview draws a computed layout as text, for debugging documents
// from the command line.
package preview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rivo/uniseg"

	"github.com/grindlemire/go-vflex/internal/layout"
)

// Default caps on the painted area. Layouts larger than this are clipped.
const (
	DefaultMaxRows = 500
	DefaultMaxCols = 500
)

// Options controls Render.
type Options struct {
	// Renderer styles backgrounds and the border. Nil uses
	// lipgloss.DefaultRenderer().
	Renderer *lipgloss.Renderer
	// Border frames the whole preview.
	Border bool
	// MaxRows and MaxCols bound the grid. Zero means the defaults.
	MaxRows int
	MaxCols int
}

// limit returns the grid size for a layout of the given total size. A layout
// with no area paints nothing.
func (o Options) limit(total layout.Size) layout.Size {
	if total.IsZero() {
		return layout.Size{}
	}
	rows, cols := o.MaxRows, o.MaxCols
	if rows <= 0 {
		rows = DefaultMaxRows
	}
	if cols <= 0 {
		cols = DefaultMaxCols
	}
	return layout.Size{Width: min(total.Width, cols), Height: min(total.Height, rows)}
}

type cell struct {
	content string
	bg      string
}

// grid is a TotalSize-sized canvas of single-cell graphemes.
type grid struct {
	width, height int
	cells         []cell
}

func newGrid(size layout.Size) *grid {
	g := &grid{width: size.Width, height: size.Height, cells: make([]cell, size.Area())}
	for i := range g.cells {
		g.cells[i].content = " "
	}
	return g
}

func (g *grid) bounds() layout.Rect {
	return layout.NewRect(0, 0, g.width, g.height)
}

func (g *grid) at(x, y int) *cell {
	return &g.cells[y*g.width+x]
}

func (g *grid) fill(r layout.Rect, bg string) {
	r = r.Intersect(g.bounds())
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			g.at(x, y).bg = bg
		}
	}
}

// text writes s one grapheme per cell from the top-left of r, clipped to r
// and the grid. Backgrounds already painted are kept.
func (g *grid) text(r layout.Rect, s string) {
	bounds := g.bounds()
	if r.Y >= g.height {
		return
	}
	pos := r.Position
	gr := uniseg.NewGraphemes(s)
	for gr.Next() && pos.X < min(r.Right(), g.width) {
		if pos.In(bounds) {
			g.at(pos.X, pos.Y).content = gr.Str()
		}
		pos.X++
	}
}

// Render paints result onto a TotalSize grid. Element backgrounds are
// painted in traversal order, so descendants cover their ancestors. Text is
// written on the first row of its rect.
//
// The grid is clipped to opts.MaxRows by opts.MaxCols so that a layout that
// overflows to an enormous height still renders in bounded memory.
//
// Background colors are lipgloss colors: "#rrggbb" or an ANSI index such as
// "4" or "201". Other strings paint nothing visible.
func Render(tree *layout.Tree, result *layout.Result, opts Options) string {
	r := opts.Renderer
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	out := paint(tree, result, opts.limit(result.TotalSize)).render(r)
	if opts.Border {
		out = r.NewStyle().Border(lipgloss.NormalBorder()).Render(out)
	}
	return out
}

func paint(tree *layout.Tree, result *layout.Result, size layout.Size) *grid {
	g := newGrid(size)
	for id, rect := range result.All() {
		switch tree.Kind(id) {
		case layout.KindElement:
			if bg := tree.Style(id).BackgroundColor; bg != "" {
				g.fill(rect, bg)
			}
		case layout.KindText:
			g.text(rect, tree.Content(id))
		}
	}
	return g
}

// render emits each row as runs of cells sharing a background.
func (g *grid) render(r *lipgloss.Renderer) string {
	rows := make([]string, g.height)
	var run strings.Builder
	for y := range g.height {
		var line strings.Builder
		start := 0
		for x := 0; x <= g.width; x++ {
			if x < g.width && g.at(x, y).bg == g.at(start, y).bg {
				continue
			}
			if x == start {
				break
			}
			run.Reset()
			for i := start; i < x; i++ {
				run.WriteString(g.at(i, y).content)
			}
			if bg := g.at(start, y).bg; bg != "" {
				line.WriteString(r.NewStyle().Background(lipgloss.Color(bg)).Render(run.String()))
			} else {
				line.WriteString(run.String())
			}
			start = x
		}
		rows[y] = line.String()
	}
	return strings.Join(rows, "\n")
}
