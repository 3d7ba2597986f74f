// Package layout implements the flexbox layout engine for virtual-node trees.
//
// A [Tree] is an arena of element, text and empty nodes addressed by [NodeID].
// Elements carry a [Style] with optional sizing ([Value]), direction, justify
// and align hints. [Compute] walks the tree from its root and produces a
// [Result] mapping every visited node to an absolute [Rect], plus the overall
// content size. Types are re-exported through the root vflex package.
//
// The engine is a total function: it has no error type, never mutates the
// tree, and keeps no state between calls. Zero viewports, oversized
// percentages and overflowing children degrade to zero-sized or overflowing
// boxes rather than failures.
package layout
