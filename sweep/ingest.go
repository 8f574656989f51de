package sweep

import (
	"math"

	"github.com/pkg/errors"
)

// Segment is one input edge of the polygon, given as two endpoints and the
// signed winding contribution it adds while the sweep crosses it left to
// right. A positive winding is a normal edge traversed start-to-end; sign
// and direction are normalized away during ingest, so callers never need
// to pre-sort endpoints by x.
type Segment struct {
	StartX, StartY float64
	EndX, EndY     float64
	Winding        int
}

// Point2 is a denormalized output vertex.
type Point2 struct {
	X, Y float64
}

// scale picks the fixed-point exponent for one axis (spec component H):
// the largest IEEE exponent seen across every finite, nonzero coordinate on
// that axis, biased down by 21 bits so that ldexp(coordinate, -exp) lands
// comfortably inside an int64-sized integer grid before being promoted to
// X. An axis with no such coordinate at all (every value zero, Inf or NaN)
// gets exponent 0: Frexp is never called on it again, and
// every coordinate on that axis rounds to 0 in the fixed-point grid, which
// correctly degenerates any segment that is actually a single point.
type scale struct {
	xExp, yExp int
}

const expMin = -65536

func computeScale(segments []Segment) scale {
	xExp, yExp := expMin, expMin
	consider := func(v float64, exp *int) {
		if !isNormal(v) {
			return
		}
		_, e := math.Frexp(v)
		if *exp < e {
			*exp = e
		}
	}
	for _, s := range segments {
		consider(s.StartX, &xExp)
		consider(s.EndX, &xExp)
		consider(s.StartY, &yExp)
		consider(s.EndY, &yExp)
	}
	if xExp == expMin {
		xExp = 0
	} else {
		xExp -= 21
	}
	if yExp == expMin {
		yExp = 0
	} else {
		yExp -= 21
	}
	return scale{xExp: xExp, yExp: yExp}
}

func isNormal(v float64) bool {
	return v != 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

func (sc scale) toGridX(v float64) X { return XFromFloatRound(math.Ldexp(v, -sc.xExp)) }
func (sc scale) toGridY(v float64) X { return XFromFloatRound(math.Ldexp(v, -sc.yExp)) }

func (sc scale) fromGrid(x, y X) Point2 {
	return Point2{
		X: math.Ldexp(x.Float64(), sc.xExp),
		Y: math.Ldexp(y.Float64(), sc.yExp),
	}
}

// ingest loads every segment into entities: edges are always recorded with
// a strictly increasing x (the winding sign flips if a segment ran the
// other way), vertical segments (equal x after scaling) bypass the
// active-edge tree entirely and go straight to AddVerticalEdge, and
// segments that collapse to a single grid point contribute nothing.
// Zero-winding input segments are rejected: that winding value is reserved
// for the sweep's own internal helper edges.
func ingest(entities *Entities, segments []Segment) (scale, error) {
	sc := computeScale(segments)
	for _, seg := range segments {
		if seg.Winding == 0 {
			return sc, errors.Wrap(ErrZeroWinding, "ingest")
		}
		startX, startY := sc.toGridX(seg.StartX), sc.toGridY(seg.StartY)
		endX, endY := sc.toGridX(seg.EndX), sc.toGridY(seg.EndY)
		switch {
		case startX.Less(endX):
			entities.AddEdge(entities.AddPoint(entities.AddSlice(startX), startY), entities.AddPoint(entities.AddSlice(endX), endY), seg.Winding)
		case endX.Less(startX):
			entities.AddEdge(entities.AddPoint(entities.AddSlice(endX), endY), entities.AddPoint(entities.AddSlice(startX), startY), -seg.Winding)
		case startY.Less(endY):
			entities.AddVerticalEdge(entities.AddSlice(startX), startY, endY)
		case endY.Less(startY):
			entities.AddVerticalEdge(entities.AddSlice(startX), endY, startY)
		}
	}
	return sc, nil
}

// flush walks the raw triangle handles produced by Engine.Run (which has
// already dropped degenerate ones) and compacts the point handles actually
// used into a dense output vertex buffer, matching
// the original's "optimize points and flush to final buffers" pass.
func flush(entities *Entities, sc scale, triangles []PointHandle) ([]Point2, []int) {
	used := make([]uint32, len(entities.Points))
	var outPoints []Point2
	var outTriangles []int
	for i := 0; i+3 <= len(triangles); i += 3 {
		for _, pt := range triangles[i : i+3] {
			if used[pt] == 0 {
				p := entities.Points[pt]
				outPoints = append(outPoints, sc.fromGrid(p.X, p.Y))
				used[pt] = uint32(len(outPoints))
			}
			outTriangles = append(outTriangles, int(used[pt]-1))
		}
	}
	return outPoints, outTriangles
}
