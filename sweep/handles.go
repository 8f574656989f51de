// Package sweep implements the exact-arithmetic plane-sweep triangulator:
// a Bentley-Ottmann intersection-aware trapezoidation that keeps a partially
// persistent weight-balanced tree of active edges and emits trapezoid-cap
// triangles under a caller-selected winding rule.
package sweep

// Handles are 32-bit indices into arena-backed tables. NodeHandle and
// ListHandle reserve index 0 as a live, read-only nil sentinel (so "absent"
// is encoded by value, never by a Go nil pointer) because both of those
// arenas are walked generically by tree.go/list.go code that needs a
// self-looped "nothing here" node to terminate on. The entity tables
// (slices, points, edges, verticals) carry no such sentinel: handle 0 is
// simply whichever entity was created first, exactly as in the arrays they
// are grounded on.
type (
	NodeHandle     uint32 // index into the tree node arena
	ListHandle     uint32 // index into the list node arena
	SliceHandle    uint32 // index into the slice table
	PointHandle    uint32 // index into the point table
	EdgeHandle     uint32 // index into the edge table
	VerticalHandle uint32 // index into the vertical-marker table
)

const nilHandle = 0
