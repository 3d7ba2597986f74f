package layout

// Display controls whether an element participates in layout.
type Display uint8

const (
	DisplayFlex Display = iota // Laid out as a flex container
	DisplayNone                // Skipped along with its whole subtree
)

// Direction specifies the main axis for laying out children.
type Direction uint8

const (
	Row    Direction = iota // Children laid out left-to-right
	Column                  // Children laid out top-to-bottom
)

// Justify specifies how children are distributed along the main axis.
type Justify uint8

const (
	JustifyStart        Justify = iota // Pack at start
	JustifyEnd                         // Pack at end
	JustifyCenter                      // Center children
	JustifySpaceBetween                // Even space between, none at edges
	JustifySpaceAround                 // Even space around each child
	JustifySpaceEvenly                 // Equal space between and at edges
)

// Align specifies how children are positioned on the cross axis.
type Align uint8

const (
	AlignStart   Align = iota // Align to start of cross axis
	AlignEnd                  // Align to end of cross axis
	AlignCenter               // Center on cross axis
	AlignStretch              // Stretch to fill cross axis
)

// Style holds the per-node layout hints of an element. Nil fields and Auto
// values fall back to the engine defaults: flex display, row direction,
// start justification and stretch alignment.
type Style struct {
	Display        *Display
	Direction      *Direction
	Width          Value
	Height         Value
	JustifyContent *Justify
	AlignItems     *Align

	// BackgroundColor is carried through for renderers and ignored by layout.
	BackgroundColor string
}

func (s Style) display() Display {
	if s.Display == nil {
		return DisplayFlex
	}
	return *s.Display
}

func (s Style) direction() Direction {
	if s.Direction == nil {
		return Row
	}
	return *s.Direction
}

func (s Style) justify() Justify {
	if s.JustifyContent == nil {
		return JustifyStart
	}
	return *s.JustifyContent
}

func (s Style) align() Align {
	if s.AlignItems == nil {
		return AlignStretch
	}
	return *s.AlignItems
}

// Hidden reports whether the style removes the node from layout.
func (s Style) Hidden() bool {
	return s.display() == DisplayNone
}

// mainValue returns the sizing value along the given main axis.
func (s Style) mainValue(isRow bool) Value {
	if isRow {
		return s.Width
	}
	return s.Height
}

// crossValue returns the sizing value along the axis perpendicular to isRow.
func (s Style) crossValue(isRow bool) Value {
	if isRow {
		return s.Height
	}
	return s.Width
}

func (d Display) String() string {
	if d == DisplayNone {
		return "none"
	}
	return "flex"
}

func (d Direction) String() string {
	if d == Column {
		return "column"
	}
	return "row"
}

func (j Justify) String() string {
	switch j {
	case JustifyEnd:
		return "end"
	case JustifyCenter:
		return "center"
	case JustifySpaceBetween:
		return "space-between"
	case JustifySpaceAround:
		return "space-around"
	case JustifySpaceEvenly:
		return "space-evenly"
	default:
		return "start"
	}
}

func (a Align) String() string {
	switch a {
	case AlignEnd:
		return "end"
	case AlignCenter:
		return "center"
	case AlignStretch:
		return "stretch"
	default:
		return "start"
	}
}
