package layout

// StyleOption configures a Style.
type StyleOption func(*Style)

// NewStyle builds a Style from options. Unset fields keep engine defaults.
func NewStyle(opts ...StyleOption) Style {
	var s Style
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// WithDisplay sets the display mode.
func WithDisplay(d Display) StyleOption {
	return func(s *Style) {
		s.Display = &d
	}
}

// WithHidden removes the node and its subtree from layout.
func WithHidden() StyleOption {
	return WithDisplay(DisplayNone)
}

// WithDirection sets the main axis.
func WithDirection(d Direction) StyleOption {
	return func(s *Style) {
		s.Direction = &d
	}
}

// WithWidth sets the width value.
func WithWidth(v Value) StyleOption {
	return func(s *Style) {
		s.Width = v
	}
}

// WithHeight sets the height value.
func WithHeight(v Value) StyleOption {
	return func(s *Style) {
		s.Height = v
	}
}

// WithSize sets both width and height.
func WithSize(width, height Value) StyleOption {
	return func(s *Style) {
		s.Width = width
		s.Height = height
	}
}

// WithJustify sets how children are distributed along the main axis.
func WithJustify(j Justify) StyleOption {
	return func(s *Style) {
		s.JustifyContent = &j
	}
}

// WithAlign sets how children are positioned on the cross axis.
func WithAlign(a Align) StyleOption {
	return func(s *Style) {
		s.AlignItems = &a
	}
}

// WithBackground sets the background color passed through to renderers.
func WithBackground(color string) StyleOption {
	return func(s *Style) {
		s.BackgroundColor = color
	}
}
