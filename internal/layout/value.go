package layout

import (
	"math"
	"strconv"
)

// maxExtent bounds every resolved extent so that sums over large trees
// cannot overflow.
const maxExtent = math.MaxInt32

// Unit specifies how a Value is interpreted.
type Unit uint8

const (
	UnitAuto     Unit = iota // Size determined by content
	UnitFill                 // All remaining space on the axis
	UnitPercent              // Percentage of the parent's available space
	UnitAbsolute             // Exact number of terminal cells
)

// Value represents one dimension of a node. The zero Value is Auto.
type Value struct {
	Amount float64
	Unit   Unit
}

// Auto returns a Value that is sized from intrinsic content.
func Auto() Value {
	return Value{Unit: UnitAuto}
}

// Fill returns a Value that consumes all remaining space on its axis.
func Fill() Value {
	return Value{Unit: UnitFill}
}

// Percent returns a Value representing a percentage of available space.
// The value is on a 0-100 scale (50.0 = 50%). Values outside that range are
// accepted as-is.
func Percent(p float64) Value {
	return Value{Amount: p, Unit: UnitPercent}
}

// Absolute returns a Value of exactly n terminal cells.
func Absolute(n int) Value {
	return Value{Amount: float64(n), Unit: UnitAbsolute}
}

// Resolve computes the extent of v given the available space on its axis and
// the node's intrinsic size, which is returned for Auto.
//
// Percentages round half away from zero and clamp at zero but not at
// available: Percent(150) of 10 is 15. Absolute values are never clamped to
// available either; the overflow is left to the parent.
func (v Value) Resolve(available, intrinsic int) int {
	switch v.Unit {
	case UnitFill:
		return clampExtent(float64(available))
	case UnitPercent:
		return clampExtent(math.Round(v.Amount / 100 * float64(available)))
	case UnitAbsolute:
		return clampExtent(v.Amount)
	default:
		return clampExtent(float64(intrinsic))
	}
}

// IsAuto returns true if this value should be computed from content.
func (v Value) IsAuto() bool {
	return v.Unit == UnitAuto
}

// IsFill returns true if this value consumes the remaining space.
func (v Value) IsFill() bool {
	return v.Unit == UnitFill
}

// IsExplicit returns true for Absolute and Percent values, which always win
// over stretch alignment.
func (v Value) IsExplicit() bool {
	return v.Unit == UnitAbsolute || v.Unit == UnitPercent
}

func (v Value) String() string {
	switch v.Unit {
	case UnitFill:
		return "fill"
	case UnitPercent:
		return strconv.FormatFloat(v.Amount, 'g', -1, 64) + "%"
	case UnitAbsolute:
		return strconv.Itoa(int(v.Amount))
	default:
		return "auto"
	}
}

// clampExtent converts f to a cell count in [0, maxExtent]. NaN resolves to 0.
func clampExtent(f float64) int {
	switch {
	case math.IsNaN(f), f <= 0:
		return 0
	case f >= maxExtent:
		return maxExtent
	default:
		return int(f)
	}
}
