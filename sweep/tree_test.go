package sweep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inOrderElements(t *Tree, root NodeHandle) []uint32 {
	var out []uint32
	cur := t.Next(root)
	for cur != root {
		out = append(out, t.Element(cur))
		cur = t.Next(cur)
	}
	return out
}

func TestTreeSimpleInsertAndOrder(t *testing.T) {
	tr := NewTree()
	root := tr.Create(0, 0)
	var prev NodeHandle = root
	for i := uint32(1); i <= 5; i++ {
		n := tr.Create(i, 0)
		tr.InsertAfter(false, n, prev, nilHandle)
		prev = n
	}
	assert.Equal(t, []uint32{1, 2, 3, 4, 5}, inOrderElements(tr, root))
	for i := uint32(0); i < 5; i++ {
		n := tr.nthFromRoot(root, i)
		tr.ComputeIndex(n)
		assert.Equal(t, i, tr.Index(n))
	}
}

func TestTreeRemoveKeepsOrder(t *testing.T) {
	tr := NewTree()
	root := tr.Create(0, 0)
	var handles []NodeHandle
	prev := root
	for i := uint32(1); i <= 5; i++ {
		n := tr.Create(i, 0)
		tr.InsertAfter(false, n, prev, nilHandle)
		handles = append(handles, n)
		prev = n
	}
	tr.Remove(false, handles[2], nilHandle) // remove element 3
	assert.Equal(t, []uint32{1, 2, 4, 5}, inOrderElements(tr, root))
}

func TestTreeWeightedSumAndWindingAfterInserts(t *testing.T) {
	tr := NewTree()
	root := tr.Create(0, 0)
	n1 := tr.Create(1, 1)
	n2 := tr.Create(2, 1)
	n3 := tr.Create(3, -1)
	tr.InsertAfter(true, n1, root, 1)
	tr.InsertAfter(true, n2, n1, 1)
	tr.InsertAfter(true, n3, n2, 1)
	assert.Equal(t, []uint32{1, 2, 3}, inOrderElements(tr, root))
	require.Equal(t, uint32(3), tr.Size(root))
	assert.Equal(t, 1, tr.SumValue(root))
}

func TestTreeRemoveUpdatesWeightedSum(t *testing.T) {
	tr := NewTree()
	root := tr.Create(0, 0)
	n1 := tr.Create(1, 5)
	n2 := tr.Create(2, 7)
	tr.InsertAfter(true, n1, root, 1)
	tr.InsertAfter(true, n2, n1, 1)
	assert.Equal(t, 12, tr.SumValue(root))
	tr.Remove(true, n1, 2)
	assert.Equal(t, 7, tr.SumValue(root))
	assert.Equal(t, uint32(1), tr.Size(root))
}

// nthFromRoot is a test helper that returns the element at 0-based position
// n, walking n+1 steps forward from root.
func (t *Tree) nthFromRoot(root NodeHandle, n uint32) NodeHandle {
	cur := root
	for i := uint32(0); i <= n; i++ {
		cur = t.Next(cur)
	}
	return cur
}
