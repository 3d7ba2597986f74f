// Package main provides the CLI tool for inspecting vflex layouts.
//
// Usage:
//
//	vflex layout [flags] file     Print the computed rectangle of every node
//	vflex preview [flags] file    Draw the layout with backgrounds and text
//	vflex sweep [flags] file      Lay a document out at several widths
//	vflex help                    Show help
//
// Examples:
//
//	vflex layout app.yaml             Use the document or config viewport
//	vflex layout -w 120 -h 40 app.toml
//	vflex preview -border app.yaml
//	vflex sweep -widths 40,80,120 app.yaml
package main

import (
	"fmt"
	"os"

	"k8s.io/klog/v2"
)

const version = "0.1.0"

const usage = `vflex - flexbox layout for virtual-node trees

Usage:
  vflex <command> [flags] file

Commands:
  layout      Print the computed rectangle of every node
  preview     Draw the layout with background colors and text
  sweep       Lay the document out at several viewport widths
  version     Print version information
  help        Show this help message

Flags:
  -w N          Viewport width (default: document, then config, then 80)
  -h N          Viewport height (default: document, then config, then 24)
  -config path  Config file (default: $VFLEX_CONFIG_DIR or the user config dir)
  -border       Frame the preview (preview only)
  -color name   auto, ascii, ansi, ansi256 or truecolor (preview only)
  -rows N       Maximum rows drawn, default 500 (preview only)
  -cols N       Maximum columns drawn, default 500 (preview only)
  -widths list  Comma-separated widths (sweep only)
  -v N          Log verbosity

Documents are .yaml, .yml or .toml files.

Examples:
  vflex layout app.yaml
  vflex layout -w 120 -h 40 app.toml
  vflex preview -border -color truecolor app.yaml
  vflex sweep -widths 40,80,120 app.yaml
`

func main() {
	defer klog.Flush()

	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "layout":
		if err := runLayout(args, os.Stdout); err != nil {
			fail(err)
		}
	case "preview":
		if err := runPreview(args, os.Stdout); err != nil {
			fail(err)
		}
	case "sweep":
		if err := runSweep(args, os.Stdout); err != nil {
			fail(err)
		}
	case "version":
		fmt.Printf("vflex version %s\n", version)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", command)
		fmt.Print(usage)
		os.Exit(1)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	klog.Flush()
	os.Exit(1)
}
