package sweep

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// windingAtPoint is the brute-force reference oracle: the winding number at
// (px, py) computed directly from the raw segment set, independent of the
// sweep, via a rightward horizontal ray cast. Used to check the sweep's
// output against the definition it is supposed to implement rather than
// against itself.
func windingAtPoint(segments []Segment, px, py float64) int {
	winding := 0
	for _, s := range segments {
		y0, y1 := s.StartY, s.EndY
		if y0 == y1 {
			continue // horizontal segments never cross a horizontal ray
		}
		// Does the segment straddle the ray's y, half-open at the top so a
		// shared endpoint is only ever counted by one of the two segments
		// that meet there?
		upward := y0 < y1
		var lo, hi float64
		if upward {
			lo, hi = y0, y1
		} else {
			lo, hi = y1, y0
		}
		if py < lo || py >= hi {
			continue
		}
		t := (py - y0) / (y1 - y0)
		x := s.StartX + t*(s.EndX-s.StartX)
		if x <= px {
			continue
		}
		if upward {
			winding += s.Winding
		} else {
			winding -= s.Winding
		}
	}
	return winding
}

func fillsUnder(winding int, evenOdd bool) bool {
	if evenOdd {
		return winding&1 != 0
	}
	return winding != 0
}

// pointInMesh reports whether (px, py) lies inside any emitted triangle.
func pointInMesh(vertices []Point2, indices []int, px, py float64) bool {
	for i := 0; i+3 <= len(indices); i += 3 {
		a, b, c := vertices[indices[i]], vertices[indices[i+1]], vertices[indices[i+2]]
		if pointInTriangle(a, b, c, px, py) {
			return true
		}
	}
	return false
}

func pointInTriangle(a, b, c Point2, px, py float64) bool {
	sign := func(x1, y1, x2, y2, x3, y3 float64) float64 {
		return (x1-x3)*(y2-y3) - (x2-x3)*(y1-y3)
	}
	d1 := sign(px, py, a.X, a.Y, b.X, b.Y)
	d2 := sign(px, py, b.X, b.Y, c.X, c.Y)
	d3 := sign(px, py, c.X, c.Y, a.X, a.Y)
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

// nearAnySegment reports whether (px, py) is close enough to a segment's
// supporting line, within its span, that sampling there would be testing
// boundary behavior rather than interior fill.
func nearAnySegment(segments []Segment, px, py, tolerance float64) bool {
	for _, s := range segments {
		dx, dy := s.EndX-s.StartX, s.EndY-s.StartY
		length := math.Hypot(dx, dy)
		if length == 0 {
			continue
		}
		t := ((px-s.StartX)*dx + (py-s.StartY)*dy) / (length * length)
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}
		cx, cy := s.StartX+t*dx, s.StartY+t*dy
		if math.Hypot(px-cx, py-cy) < tolerance {
			return true
		}
	}
	return false
}

func randomSegmentSet(rng *rand.Rand, n, grid int) []Segment {
	segments := make([]Segment, 0, n)
	for len(segments) < n {
		x0, y0 := float64(rng.Intn(grid)), float64(rng.Intn(grid))
		x1, y1 := float64(rng.Intn(grid)), float64(rng.Intn(grid))
		if x0 == x1 && y0 == y1 {
			continue
		}
		w := 1
		if rng.Intn(2) == 0 {
			w = -1
		}
		segments = append(segments, Segment{StartX: x0, StartY: y0, EndX: x1, EndY: y1, Winding: w})
	}
	return segments
}

func sampleGrid(grid int, step float64) [][2]float64 {
	var pts [][2]float64
	for x := step / 2; x < float64(grid); x += step {
		for y := step / 2; y < float64(grid); y += step {
			pts = append(pts, [2]float64{x, y})
		}
	}
	return pts
}

// TestPropertyUnionEqualsFill checks, for several random small segment sets,
// that the emitted mesh covers exactly the region the winding-number fill
// rule says should be filled -- for both the non-zero and even-odd rules.
func TestPropertyUnionEqualsFill(t *testing.T) {
	const grid = 6
	rng := rand.New(rand.NewSource(1))
	samples := sampleGrid(grid, 0.5)

	for trial := 0; trial < 12; trial++ {
		segments := randomSegmentSet(rng, 6, grid)
		for _, evenOdd := range []bool{false, true} {
			vertices, indices, err := Triangulate(segments, evenOdd)
			require.NoError(t, err)

			for _, p := range samples {
				if nearAnySegment(segments, p[0], p[1], 0.05) {
					continue
				}
				want := fillsUnder(windingAtPoint(segments, p[0], p[1]), evenOdd)
				got := pointInMesh(vertices, indices, p[0], p[1])
				require.Equalf(t, want, got,
					"trial %d evenOdd=%v point (%.2f,%.2f): want filled=%v got=%v",
					trial, evenOdd, p[0], p[1], want, got)
			}
		}
	}
}

// TestPropertyStableUnderPermutation checks that shuffling the input segment
// order never changes which points the mesh covers: the fill rule is a
// property of the segment set, not of the order the sweep consumes it in.
func TestPropertyStableUnderPermutation(t *testing.T) {
	const grid = 6
	rng := rand.New(rand.NewSource(2))
	samples := sampleGrid(grid, 0.5)

	for trial := 0; trial < 8; trial++ {
		segments := randomSegmentSet(rng, 6, grid)
		shuffled := make([]Segment, len(segments))
		copy(shuffled, segments)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		for _, evenOdd := range []bool{false, true} {
			vOrig, iOrig, err := Triangulate(segments, evenOdd)
			require.NoError(t, err)
			vPerm, iPerm, err := Triangulate(shuffled, evenOdd)
			require.NoError(t, err)

			for _, p := range samples {
				if nearAnySegment(segments, p[0], p[1], 0.05) {
					continue
				}
				orig := pointInMesh(vOrig, iOrig, p[0], p[1])
				perm := pointInMesh(vPerm, iPerm, p[0], p[1])
				require.Equalf(t, orig, perm,
					"trial %d evenOdd=%v point (%.2f,%.2f): order-dependent fill result",
					trial, evenOdd, p[0], p[1])
			}
		}
	}
}
