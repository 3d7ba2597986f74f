package layout

import "testing"

func TestRect_Edges(t *testing.T) {
	type tc struct {
		rect   Rect
		right  int
		bottom int
		area   int
		empty  bool
	}

	tests := map[string]tc{
		"standard rect": {
			rect:   NewRect(5, 10, 20, 15),
			right:  25,
			bottom: 25,
			area:   300,
		},
		"zero size": {
			rect:   NewRect(5, 5, 0, 0),
			right:  5,
			bottom: 5,
			empty:  true,
		},
		"zero height": {
			rect:   NewRect(0, 0, 10, 0),
			right:  10,
			bottom: 0,
			empty:  true,
		},
		"negative width": {
			rect:   NewRect(0, 0, -5, 10),
			right:  -5,
			bottom: 10,
			empty:  true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.rect.Right(); got != tt.right {
				t.Errorf("Right() = %d, want %d", got, tt.right)
			}
			if got := tt.rect.Bottom(); got != tt.bottom {
				t.Errorf("Bottom() = %d, want %d", got, tt.bottom)
			}
			if got := tt.rect.Area(); got != tt.area {
				t.Errorf("Area() = %d, want %d", got, tt.area)
			}
			if got := tt.rect.IsEmpty(); got != tt.empty {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.empty)
			}
		})
	}
}

func TestRect_Contains(t *testing.T) {
	r := NewRect(10, 10, 5, 5)

	tests := map[string]struct {
		x, y int
		want bool
	}{
		"top-left corner":       {10, 10, true},
		"inside":                {12, 13, true},
		"right edge exclusive":  {15, 12, false},
		"bottom edge exclusive": {12, 15, false},
		"left of rect":          {9, 12, false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
			if got := (Position{X: tt.x, Y: tt.y}).In(r); got != tt.want {
				t.Errorf("Position.In() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRect_IntersectUnion(t *testing.T) {
	type tc struct {
		a, b      Rect
		intersect Rect
		union     Rect
	}

	tests := map[string]tc{
		"overlapping": {
			a:         NewRect(0, 0, 10, 10),
			b:         NewRect(5, 5, 10, 10),
			intersect: NewRect(5, 5, 5, 5),
			union:     NewRect(0, 0, 15, 15),
		},
		"touching edges": {
			a:         NewRect(0, 0, 10, 10),
			b:         NewRect(10, 0, 10, 10),
			intersect: Rect{},
			union:     NewRect(0, 0, 20, 10),
		},
		"one empty": {
			a:         NewRect(3, 3, 0, 0),
			b:         NewRect(5, 5, 2, 2),
			intersect: Rect{},
			union:     NewRect(5, 5, 2, 2),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.a.Intersect(tt.b); got != tt.intersect {
				t.Errorf("Intersect() = %v, want %v", got, tt.intersect)
			}
			if got := tt.a.Union(tt.b); got != tt.union {
				t.Errorf("Union() = %v, want %v", got, tt.union)
			}
			if got := tt.b.Intersect(tt.a); got != tt.intersect {
				t.Errorf("Intersect() (reversed) = %v, want %v", got, tt.intersect)
			}
		})
	}
}

func TestGeometry_Strings(t *testing.T) {
	r := NewRect(1, 2, 30, 4)
	if got := r.String(); got != "(1, 2) 30x4" {
		t.Errorf("Rect.String() = %q", got)
	}
	if got := r.Position.String(); got != "(1, 2)" {
		t.Errorf("Position.String() = %q", got)
	}
	if !(Size{Width: 0, Height: 5}).IsZero() {
		t.Error("0x5 should be zero")
	}
}
