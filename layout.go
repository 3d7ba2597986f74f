// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package vflex

import (
	"time"

	"github.com/grindlemire/go-vflex/internal/layout"
)

// Display controls whether a node participates in layout.
type Display = layout.Display

const (
	DisplayFlex = layout.DisplayFlex
	DisplayNone = layout.DisplayNone
)

// Direction specifies the main axis for laying out children.
type Direction = layout.Direction

const (
	Row    = layout.Row
	Column = layout.Column
)

// Justify specifies how children are distributed along the main axis.
type Justify = layout.Justify

const (
	JustifyStart        = layout.JustifyStart
	JustifyEnd          = layout.JustifyEnd
	JustifyCenter       = layout.JustifyCenter
	JustifySpaceBetween = layout.JustifySpaceBetween
	JustifySpaceAround  = layout.JustifySpaceAround
	JustifySpaceEvenly  = layout.JustifySpaceEvenly
)

// Align specifies how children are aligned along the cross axis.
type Align = layout.Align

const (
	AlignStart   = layout.AlignStart
	AlignEnd     = layout.AlignEnd
	AlignCenter  = layout.AlignCenter
	AlignStretch = layout.AlignStretch
)

// Value represents a dimension value (auto, fill, percent, or absolute).
type Value = layout.Value

// Unit specifies how a Value is interpreted.
type Unit = layout.Unit

const (
	UnitAuto     = layout.UnitAuto
	UnitFill     = layout.UnitFill
	UnitPercent  = layout.UnitPercent
	UnitAbsolute = layout.UnitAbsolute
)

// Style holds the layout properties of an element.
type Style = layout.Style

// StyleOption configures a Style.
type StyleOption = layout.StyleOption

// Position is a cell coordinate.
type Position = layout.Position

// Size represents a width/height pair.
type Size = layout.Size

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// NodeID identifies a node within a Tree.
type NodeID = layout.NodeID

// NoNode is the NodeID of a missing node.
const NoNode = layout.NoNode

// Kind is the variant of a virtual node.
type Kind = layout.Kind

const (
	KindElement = layout.KindElement
	KindText    = layout.KindText
	KindEmpty   = layout.KindEmpty
)

// Tree is an arena of virtual nodes.
type Tree = layout.Tree

// Result maps every laid-out node to its rectangle.
type Result = layout.Result

// Entry is one node and its rectangle, in traversal order.
type Entry = layout.Entry

// Cache memoizes Results by viewport and tree fingerprint.
type Cache = layout.Cache

// CacheOption configures a Cache.
type CacheOption = layout.CacheOption

// CacheStats counts cache activity.
type CacheStats = layout.CacheStats

// DefaultCacheCapacity is the capacity NewCache uses for a non-positive one.
const DefaultCacheCapacity = layout.DefaultCacheCapacity

// NewTree creates an empty tree with no root.
func NewTree() *Tree {
	return layout.NewTree()
}

// Compute lays out the tree's root within viewport.
func Compute(tree *Tree, viewport Size) *Result {
	return layout.Compute(tree, viewport)
}

// NewCache creates a Cache holding up to capacity results.
func NewCache(capacity int, opts ...CacheOption) *Cache {
	return layout.NewCache(capacity, opts...)
}

// WithMaxAge makes cached results older than d count as misses.
func WithMaxAge(d time.Duration) CacheOption {
	return layout.WithMaxAge(d)
}

// Fingerprint hashes the layout-relevant content of a tree.
func Fingerprint(tree *Tree) uint64 {
	return layout.Fingerprint(tree)
}

// Auto creates a Value that sizes to content.
func Auto() Value {
	return layout.Auto()
}

// Fill creates a Value that takes the remaining space on its axis.
func Fill() Value {
	return layout.Fill()
}

// Percent creates a Value representing a percentage of available space.
func Percent(p float64) Value {
	return layout.Percent(p)
}

// Absolute creates a Value of exactly n cells.
func Absolute(n int) Value {
	return layout.Absolute(n)
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return layout.NewRect(x, y, width, height)
}

// NewStyle builds a Style from options. Unset fields keep their defaults.
func NewStyle(opts ...StyleOption) Style {
	return layout.NewStyle(opts...)
}

// WithDisplay sets the display mode.
func WithDisplay(d Display) StyleOption {
	return layout.WithDisplay(d)
}

// WithHidden sets display none.
func WithHidden() StyleOption {
	return layout.WithHidden()
}

// WithDirection sets the main axis.
func WithDirection(d Direction) StyleOption {
	return layout.WithDirection(d)
}

// WithWidth sets the width.
func WithWidth(v Value) StyleOption {
	return layout.WithWidth(v)
}

// WithHeight sets the height.
func WithHeight(v Value) StyleOption {
	return layout.WithHeight(v)
}

// WithSize sets width and height.
func WithSize(width, height Value) StyleOption {
	return layout.WithSize(width, height)
}

// WithJustify sets main-axis distribution.
func WithJustify(j Justify) StyleOption {
	return layout.WithJustify(j)
}

// WithAlign sets cross-axis alignment.
func WithAlign(a Align) StyleOption {
	return layout.WithAlign(a)
}

// WithBackground sets the background color. It does not affect layout.
func WithBackground(color string) StyleOption {
	return layout.WithBackground(color)
}
