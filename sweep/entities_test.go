package sweep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddSliceDedupes(t *testing.T) {
	e := NewEntities()
	a := e.AddSlice(XFromInt64(5))
	b := e.AddSlice(XFromInt64(5))
	c := e.AddSlice(XFromInt64(7))
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Equal(t, 2, len(e.Slices))
}

func TestAddPointDedupesWithinSlice(t *testing.T) {
	e := NewEntities()
	slice := e.AddSlice(XFromInt64(0))
	p1 := e.AddPoint(slice, XFromInt64(3))
	p2 := e.AddPoint(slice, XFromInt64(3))
	p3 := e.AddPoint(slice, XFromInt64(4))
	assert.Equal(t, p1, p2)
	assert.NotEqual(t, p1, p3)
}

func TestAddEdgeRejectsNonIncreasingX(t *testing.T) {
	e := NewEntities()
	slice0 := e.AddSlice(XFromInt64(0))
	p0 := e.AddPoint(slice0, XFromInt64(0))
	p1 := e.AddPoint(slice0, XFromInt64(1))
	var gotErr error
	func() {
		defer recoverInvariant(&gotErr)
		e.AddEdge(p0, p1, 1)
	}()
	require.Error(t, gotErr)
}

// TestCoincidentOppositeWindingEdgesCancelInTree checks that two edges
// occupying the same position in the active-edge tree with opposite
// winding contribute a net sum of zero, the mechanism spec.md §9(c) relies
// on for coincident, oppositely-wound input segments to cancel without any
// dedicated merge step.
func TestCoincidentOppositeWindingEdgesCancelInTree(t *testing.T) {
	e := NewEntities()
	s0 := e.AddSlice(XFromInt64(0))
	s1 := e.AddSlice(XFromInt64(1))
	start := e.AddPoint(s0, XFromInt64(0))
	end := e.AddPoint(s1, XFromInt64(0))

	up := e.AddEdge(start, end, 1)
	down := e.AddEdge(start, end, -1)

	root := e.Tree.Create(0, 0)
	e.Tree.InsertAfter(true, e.Edges[up].TreeNodeEdges, root, 1)
	e.Tree.InsertAfter(true, e.Edges[down].TreeNodeEdges, e.Edges[up].TreeNodeEdges, 1)

	assert.Equal(t, 0, e.Tree.SumValue(root))
}

func TestAddEdgeComputesDirectionAndBounds(t *testing.T) {
	e := NewEntities()
	s0 := e.AddSlice(XFromInt64(0))
	s1 := e.AddSlice(XFromInt64(4))
	start := e.AddPoint(s0, XFromInt64(0))
	end := e.AddPoint(s1, XFromInt64(8))
	edge := e.AddEdge(start, end, 1)
	ed := e.Edges[edge]
	assert.Equal(t, "4", ed.DirX.String())
	assert.Equal(t, "8", ed.DirY.String())
	assert.Equal(t, "0", ed.MinY.String())
	assert.Equal(t, "8", ed.MaxY.String())
}
