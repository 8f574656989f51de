package sweep

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListInsertOrderAndRemove(t *testing.T) {
	l := NewList()
	anchor := l.Create(0)
	a := l.Create(11)
	b := l.Create(22)
	c := l.Create(33)

	l.Insert(a, anchor)
	l.Insert(b, anchor)
	l.Insert(c, anchor)
	// Insert always places right after the anchor, so the most recently
	// inserted item ends up first.
	assert.Equal(t, []uint32{33, 22, 11}, drainElements(l, anchor, false))

	l.Remove(b)
	assert.Equal(t, []uint32{33, 11}, drainElements(l, anchor, false))
	assert.True(t, l.Empty(anchor) == false)
}

func TestListMoveBetweenAnchors(t *testing.T) {
	l := NewList()
	anchor1 := l.Create(0)
	anchor2 := l.Create(0)
	a := l.Create(1)

	l.Insert(a, anchor1)
	assert.False(t, l.Empty(anchor1))
	assert.True(t, l.Empty(anchor2))

	l.Insert(a, anchor2)
	assert.True(t, l.Empty(anchor1))
	assert.False(t, l.Empty(anchor2))
}

func TestListInsertIntoOwnAnchorIsNoop(t *testing.T) {
	l := NewList()
	anchor := l.Create(0)
	a := l.Create(1)
	l.Insert(a, anchor)
	l.Insert(a, anchor)
	assert.Equal(t, []uint32{1}, drainElements(l, anchor, false))
}

func drainElements(l *List, anchor ListHandle, remove bool) []uint32 {
	var out []uint32
	cur := l.Next(anchor)
	for cur != anchor {
		out = append(out, l.Element(cur))
		next := l.Next(cur)
		if remove {
			l.Remove(cur)
		}
		cur = next
	}
	return out
}
