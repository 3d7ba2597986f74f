package layout

import "testing"

// rectOf returns the computed box for id, failing the test if it is missing.
func rectOf(t *testing.T, res *Result, id NodeID) Rect {
	t.Helper()
	r, ok := res.Rect(id)
	if !ok {
		t.Fatalf("node %d missing from result", id)
	}
	return r
}

// checkRect compares a computed box with the expected x, y, width, height.
func checkRect(t *testing.T, name string, res *Result, id NodeID, x, y, w, h int) {
	t.Helper()
	got := rectOf(t, res, id)
	want := NewRect(x, y, w, h)
	if got != want {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

// fillStyle is a flex container that fills its parent.
func fillStyle(opts ...StyleOption) Style {
	return NewStyle(append([]StyleOption{WithSize(Fill(), Fill())}, opts...)...)
}
