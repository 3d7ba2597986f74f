package main

import (
	"flag"
	"fmt"
	"io"

	"k8s.io/klog/v2"

	"github.com/grindlemire/go-vflex/internal/config"
	"github.com/grindlemire/go-vflex/internal/document"
	"github.com/grindlemire/go-vflex/internal/layout"
)

// inputFlags are the flags shared by every command that reads a document.
type inputFlags struct {
	width  int
	height int
	config string

	fs *flag.FlagSet
}

// newFlagSet creates a command flag set with the klog flags registered.
func newFlagSet(name string, f *inputFlags) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	klog.InitFlags(fs)
	fs.IntVar(&f.width, "w", 0, "viewport width")
	fs.IntVar(&f.height, "h", 0, "viewport height")
	fs.StringVar(&f.config, "config", "", "config file")
	f.fs = fs
	return fs
}

func (f *inputFlags) isSet(name string) bool {
	set := false
	f.fs.Visit(func(fl *flag.Flag) {
		if fl.Name == name {
			set = true
		}
	})
	return set
}

// input is a loaded document with its resolved viewport.
type input struct {
	cfg      *config.Config
	tree     *layout.Tree
	ids      map[string]layout.NodeID
	viewport layout.Size
}

// loadInput parses args, loads the config and the single document argument,
// and resolves the viewport: flags, then document, then config.
func loadInput(f *inputFlags, args []string) (*input, error) {
	if err := f.fs.Parse(args); err != nil {
		return nil, err
	}
	if f.fs.NArg() != 1 {
		return nil, fmt.Errorf("%s: expected one document, got %d arguments", f.fs.Name(), f.fs.NArg())
	}
	if f.width < 0 || f.height < 0 {
		return nil, fmt.Errorf("viewport %dx%d is negative", f.width, f.height)
	}

	cfg, err := config.Load(f.config)
	if err != nil {
		return nil, err
	}

	doc, err := document.Load(f.fs.Arg(0))
	if err != nil {
		return nil, err
	}
	tree, ids, err := doc.Build()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.fs.Arg(0), err)
	}

	viewport := layout.Size{Width: cfg.Viewport.Width, Height: cfg.Viewport.Height}
	if vp, ok, _ := doc.ViewportSize(); ok {
		viewport = vp
	}
	if f.isSet("w") {
		viewport.Width = f.width
	}
	if f.isSet("h") {
		viewport.Height = f.height
	}

	klog.V(2).InfoS("resolved input", "document", f.fs.Arg(0), "nodes", tree.Len(), "viewport", viewport)
	return &input{cfg: cfg, tree: tree, ids: ids, viewport: viewport}, nil
}
