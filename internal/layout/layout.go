package layout

import "iter"

// Entry pairs a node with its computed box.
type Entry struct {
	ID   NodeID
	Rect Rect
}

// Result holds the boxes computed by one Compute call, in traversal order
// (pre-order, children in declaration order), and the overall content size.
//
// A Result is never mutated after Compute returns, so it may be shared
// between goroutines.
type Result struct {
	// TotalSize is the viewport width and the larger of the viewport height
	// and the lowest bottom edge of any recorded box.
	TotalSize Size

	entries []Entry
	index   []int // NodeID -> position in entries, -1 if absent
	bottom  int
	bounds  Rect
}

func newResult(nodeCount int) *Result {
	index := make([]int, nodeCount)
	for i := range index {
		index[i] = -1
	}
	return &Result{index: index}
}

func (r *Result) insert(id NodeID, rect Rect) {
	r.index[id] = len(r.entries)
	r.entries = append(r.entries, Entry{ID: id, Rect: rect})
	r.bottom = max(r.bottom, rect.Bottom())
	r.bounds = r.bounds.Union(rect)
}

// Bounds returns the smallest rectangle covering every non-empty recorded
// box. Content that overflows the viewport shows up as bounds extending past
// it on either axis.
func (r *Result) Bounds() Rect {
	return r.bounds
}

// Rect returns the box computed for id and whether the node was visited.
func (r *Result) Rect(id NodeID) (Rect, bool) {
	if id < 0 || int(id) >= len(r.index) || r.index[id] < 0 {
		return Rect{}, false
	}
	return r.entries[r.index[id]].Rect, true
}

// Len returns the number of recorded nodes.
func (r *Result) Len() int {
	return len(r.entries)
}

// Entries returns a copy of all recorded boxes in traversal order.
func (r *Result) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// All iterates over the recorded boxes in traversal order.
func (r *Result) All() iter.Seq2[NodeID, Rect] {
	return func(yield func(NodeID, Rect) bool) {
		for _, e := range r.entries {
			if !yield(e.ID, e.Rect) {
				return
			}
		}
	}
}

// Equal reports whether two results hold the same boxes in the same order
// and the same total size.
func (r *Result) Equal(other *Result) bool {
	if r == nil || other == nil {
		return r == other
	}
	if r.TotalSize != other.TotalSize || len(r.entries) != len(other.entries) {
		return false
	}
	for i := range r.entries {
		if r.entries[i] != other.entries[i] {
			return false
		}
	}
	return true
}
