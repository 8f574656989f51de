package trisweep

import (
	"testing"

	"github.com/polysweep/trisweep/sweep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriangulateUnitSquare(t *testing.T) {
	points := []Point{
		{X: 0, Y: 0}, {X: 1, Y: 0},
		{X: 1, Y: 0}, {X: 1, Y: 1},
		{X: 1, Y: 1}, {X: 0, Y: 1},
		{X: 0, Y: 1}, {X: 0, Y: 0},
	}
	windings := []int{1, 1, 1, 1}
	vertices, indices, err := Triangulate(points, windings, false)
	require.NoError(t, err)
	assert.NotEmpty(t, vertices)
	assert.Zero(t, len(indices)%3)
}

func TestTriangulateRejectsOddPointList(t *testing.T) {
	_, _, err := Triangulate([]Point{{X: 0, Y: 0}}, []int{1}, false)
	assert.ErrorIs(t, err, sweep.ErrOddSegments)
}

func TestTriangulateRejectsMismatchedWindingLength(t *testing.T) {
	points := []Point{{X: 0, Y: 0}, {X: 1, Y: 1}}
	_, _, err := Triangulate(points, []int{1, 1}, false)
	assert.ErrorIs(t, err, sweep.ErrWindingLength)
}

func TestTriangulateRejectsZeroWinding(t *testing.T) {
	points := []Point{{X: 0, Y: 0}, {X: 1, Y: 1}}
	_, _, err := Triangulate(points, []int{0}, false)
	assert.ErrorIs(t, err, sweep.ErrZeroWinding)
}
