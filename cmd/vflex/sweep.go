package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"k8s.io/klog/v2"

	"github.com/grindlemire/go-vflex/internal/layout"
	"github.com/grindlemire/go-vflex/internal/preview"
)

// intList is a comma-separated list of non-negative integers.
type intList []int

func (l *intList) String() string {
	parts := make([]string, len(*l))
	for i, n := range *l {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}

func (l *intList) Set(s string) error {
	*l = (*l)[:0]
	for part := range strings.SplitSeq(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 0 {
			return fmt.Errorf("bad width %q", part)
		}
		*l = append(*l, n)
	}
	return nil
}

// runSweep implements the sweep subcommand.
// It prints the layout table once per width, reusing results through a cache
// when a width repeats.
func runSweep(args []string, out io.Writer) error {
	var (
		f      inputFlags
		widths intList
	)
	fs := newFlagSet("sweep", &f)
	fs.Var(&widths, "widths", "comma-separated widths")

	in, err := loadInput(&f, args)
	if err != nil {
		return err
	}
	if len(widths) == 0 {
		widths = intList{in.viewport.Width}
	}

	cache := layout.NewCache(in.cfg.Cache.Capacity, layout.WithMaxAge(in.cfg.Cache.MaxAge))
	names := preview.Names(in.ids)
	for i, w := range widths {
		if i > 0 {
			fmt.Fprintln(out)
		}
		vp := layout.Size{Width: w, Height: in.viewport.Height}
		res := cache.Compute(in.tree, vp)
		fmt.Fprintf(out, "== %s ==\n", vp)
		fmt.Fprint(out, preview.Table(in.tree, res, names))
		fmt.Fprintf(out, "total %s\n", res.TotalSize)
	}

	stats := cache.Stats()
	klog.V(1).InfoS("sweep finished", "widths", len(widths), "hits", stats.Hits, "misses", stats.Misses)
	return nil
}
