// An exact-arithmetic, intersection-aware polygon triangulator for Go.
//
// This package converts one or more sets of line segments -- which may
// self-intersect, cross each other, and describe disjoint shapes or holes
// -- into a set of triangles covering exactly the region selected by a
// winding rule. Unlike a simple-polygon triangulator, it never requires its
// input to already be a clean non-self-intersecting contour: intersections
// are found and resolved as part of the sweep.
package trisweep

import "github.com/polysweep/trisweep/sweep"

type Point = sweep.Point2

// Triangulate converts a flat list of segment endpoints and one winding
// value per segment into a triangle mesh. points must have even length:
// each consecutive pair (points[2*i], points[2*i+1]) is one segment, its
// contribution to the winding number of everything to its left carried in
// windings[i]. evenOdd selects the even-odd fill rule over the default
// non-zero rule.
//
// The segments need not form closed contours, need not be simple, and may
// cross each other and themselves; crossings are resolved by the sweep
// itself. A segment with winding 0 is rejected: that value is reserved for
// the helper edges the sweep adds internally around concave vertices and
// holes.
func Triangulate(points []Point, windings []int, evenOdd bool) (vertices []Point, indices []int, err error) {
	if len(points)&1 != 0 {
		return nil, nil, sweep.ErrOddSegments
	}
	if len(points)/2 != len(windings) {
		return nil, nil, sweep.ErrWindingLength
	}
	segments := make([]sweep.Segment, len(windings))
	for i := range windings {
		start, end := points[2*i], points[2*i+1]
		segments[i] = sweep.Segment{
			StartX: start.X, StartY: start.Y,
			EndX: end.X, EndY: end.Y,
			Winding: windings[i],
		}
	}
	out, tris, err := sweep.Triangulate(segments, evenOdd)
	if err != nil {
		return nil, nil, err
	}
	vertices = make([]Point, len(out))
	for i, p := range out {
		vertices[i] = Point(p)
	}
	return vertices, tris, nil
}
