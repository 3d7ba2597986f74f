package layout

import "fmt"

// Position is the top-left origin of a box in absolute cell coordinates.
type Position struct {
	X, Y int
}

// In returns true if the position is inside the given rectangle.
func (p Position) In(r Rect) bool {
	return r.Contains(p.X, p.Y)
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}
