package sweep

// This file holds the exact geometric predicates and the active-edge
// tree's two lookup families (by absolute position, and by the tree shape
// as of a given slice's start). Every comparison is a sign test on an exact
// cross product; rounding happens only where a crossing has to become a
// grid coordinate (a new slice's x, or a point's y on a slice).

// EdgeIntersectX returns the y at which edge crosses the vertical line
// x, rounded to the nearest integer (ties toward +y).
func (e *Entities) EdgeIntersectX(edge EdgeHandle, x X) X {
	ed := &e.Edges[edge]
	total := x.Mul(ed.DirY).Add(ed.Cross)
	y, mod := total.QuoRem(ed.DirX)
	if mod.Sign() < 0 {
		mod = mod.Add(ed.DirX)
		y = y.Sub(XFromInt64(1))
	}
	if mod.Shl1().Cmp(ed.DirX) >= 0 {
		y = y.Add(XFromInt64(1))
	}
	return y
}

// EdgeIntersectEdge returns the y coordinate at which edge1 and edge2's
// supporting lines cross, rounded to the nearest integer.
func (e *Entities) EdgeIntersectEdge(edge1, edge2 EdgeHandle) X {
	e1, e2 := &e.Edges[edge1], &e.Edges[edge2]
	total := e2.Cross.Mul(e1.DirY).Sub(e1.Cross.Mul(e2.DirY))
	factor := e1.DirY.Mul(e2.DirX).Sub(e2.DirY.Mul(e1.DirX))
	y, mod := total.QuoRem(factor)
	if mod.Sign() < 0 {
		mod = mod.Add(factor)
		y = y.Sub(XFromInt64(1))
	}
	if mod.Shl1().Cmp(factor) >= 0 {
		y = y.Add(XFromInt64(1))
	}
	return y
}

// GetEdgeBefore returns the last active edge passing below (x, y), by
// position in the active-edge tree's current shape. Returns the
// active-edge tree's own root anchor when the tree is empty.
func (e *Entities) GetEdgeBefore(x, y X) NodeHandle {
	current := e.Tree.Right(e.EdgesTree)
	if current == nilHandle {
		return e.EdgesTree
	}
	for {
		ed := &e.Edges[e.Tree.Element(current)]
		cross := y.Mul(ed.DirX).Sub(x.Mul(ed.DirY)).Sub(ed.Cross)
		switch {
		case cross.Sign() > 0:
			if right := e.Tree.Right(current); right != nilHandle {
				current = right
				continue
			}
			return current
		case cross.Sign() < 0:
			if left := e.Tree.Left(current); left != nilHandle {
				current = left
				continue
			}
			return e.Tree.Prev(current)
		default:
			return e.Tree.Prev(current)
		}
	}
}

// GetEdgeBeforeEnd is GetEdgeBefore, but breaks ties at (x, y) using the
// direction toward (endX, endY) as a tiebreaker. It is a best-effort
// refinement: active edges are not guaranteed to be sorted by where they
// end, only by where they currently stand.
func (e *Entities) GetEdgeBeforeEnd(x, y, endX, endY X) NodeHandle {
	current := e.Tree.Right(e.EdgesTree)
	if current == nilHandle {
		return e.EdgesTree
	}
	aX := endX.Sub(x)
	aY := endY.Sub(y)
	for {
		elem := e.Tree.Element(current)
		ed := &e.Edges[elem]
		cross := y.Mul(ed.DirX).Sub(x.Mul(ed.DirY)).Sub(ed.Cross)
		if cross.Sign() > 0 {
			if right := e.Tree.Right(current); right != nilHandle {
				current = right
				continue
			}
			return current
		}
		if cross.Sign() < 0 {
			if left := e.Tree.Left(current); left != nilHandle {
				current = left
				continue
			}
			return e.Tree.Prev(current)
		}
		endPt := &e.Points[e.Edges[elem].PointEnd]
		cross = aY.Mul(endPt.X.Sub(x)).Sub(aX.Mul(endPt.Y.Sub(y)))
		switch {
		case cross.Sign() > 0:
			if right := e.Tree.Right(current); right != nilHandle {
				current = right
				continue
			}
			return current
		case cross.Sign() < 0:
			if left := e.Tree.Left(current); left != nilHandle {
				current = left
				continue
			}
			return e.Tree.Prev(current)
		default:
			return e.Tree.Prev(current)
		}
	}
}

// GetEdgeBeforePrevious is GetEdgeBefore, but reads the active-edge tree's
// shape as of the start of slice rather than its current shape: wherever
// the walk reaches a node already touched during slice, it continues down
// that node's Previous view instead of Current.
func (e *Entities) GetEdgeBeforePrevious(slice SliceHandle, y X) NodeHandle {
	sliceVersion := uint32(slice)
	var current NodeHandle
	if e.Tree.SliceVersion(e.EdgesTree) == sliceVersion {
		current = e.Tree.view(e.EdgesTree, sliceVersion).Right
	} else {
		current = e.Tree.Right(e.EdgesTree)
	}
	if current == nilHandle {
		return e.EdgesTree
	}
	x := e.Slices[slice].X
	for {
		ed := &e.Edges[e.Tree.Element(current)]
		cross := y.Mul(ed.DirX).Sub(x.Mul(ed.DirY)).Sub(ed.Cross)
		usePrevious := e.Tree.SliceVersion(current) == sliceVersion
		if cross.Sign() > 0 {
			if usePrevious {
				if right := e.Tree.view(current, sliceVersion).Right; right != nilHandle {
					current = right
					continue
				}
			} else if right := e.Tree.Right(current); right != nilHandle {
				current = right
				continue
			}
			return current
		}
		if usePrevious {
			if cross.Sign() < 0 {
				if left := e.Tree.view(current, sliceVersion).Left; left != nilHandle {
					current = left
					continue
				}
			}
			return e.Tree.view(current, sliceVersion).Prev
		}
		if cross.Sign() < 0 {
			if left := e.Tree.Left(current); left != nilHandle {
				current = left
				continue
			}
		}
		return e.Tree.Prev(current)
	}
}

// EdgeGetWindingPrevious returns the accumulated signed winding of every
// active edge up to and including treeNodeEdge, as of the active-edge
// tree's shape at the start of slice version. It sums treeNodeEdge's own
// winding plus every left sibling's subtree sum along the path to the
// root, consulting each node's Previous view wherever that node was
// already touched during version.
func (e *Entities) EdgeGetWindingPrevious(treeNodeEdge NodeHandle, version uint32) int {
	winding := e.Tree.SelfValue(treeNodeEdge)
	current := treeNodeEdge
	var parent NodeHandle
	left := e.Tree.view(treeNodeEdge, version).Left
	if e.Tree.SliceVersion(treeNodeEdge) == version {
		parent = e.Tree.view(treeNodeEdge, version).Parent
	} else {
		parent = e.Tree.Parent(treeNodeEdge)
	}
	winding += e.Tree.view(left, version).SumValue

	for parent != nilHandle {
		useParentPrevious := e.Tree.SliceVersion(parent) == version
		var right, parentLeft, grandparent NodeHandle
		if useParentPrevious {
			v := e.Tree.view(parent, version)
			right, parentLeft, grandparent = v.Right, v.Left, v.Parent
		} else {
			right, parentLeft, grandparent = e.Tree.Right(parent), e.Tree.Left(parent), e.Tree.Parent(parent)
		}
		if right == current {
			winding += e.Tree.view(parentLeft, version).SumValue + e.Tree.SelfValue(parent)
		}
		current = parent
		parent = grandparent
	}
	return winding
}

// CheckIntersection tests treeNodeEdge's edge against its in-order
// successor in the active-edge tree for a crossing at or before the
// earlier of the two edges' next scheduled recheck slice, and if one
// exists, schedules a recheck at the (rounded-down) crossing slice.
func (e *Entities) CheckIntersection(treeNodeEdge NodeHandle) {
	assertf(treeNodeEdge != e.EdgesTree && e.Tree.Next(treeNodeEdge) != e.EdgesTree, "check intersection: no successor edge")
	edge1 := EdgeHandle(e.Tree.Element(treeNodeEdge))
	edge2 := EdgeHandle(e.Tree.Element(e.Tree.Next(treeNodeEdge)))
	e1, e2 := &e.Edges[edge1], &e.Edges[edge2]
	if e1.MaxY.Less(e2.MinY) || e1.PointStart == e2.PointStart {
		return
	}
	max := e.Slices[e1.NextCheck].X
	if e.Slices[e2.NextCheck].X.Less(max) {
		max = e.Slices[e2.NextCheck].X
	}
	lhs := max.Mul(e2.DirY).Add(e2.Cross).Mul(e1.DirX)
	rhs := max.Mul(e1.DirY).Add(e1.Cross).Mul(e2.DirX)
	if lhs.Cmp(rhs) >= 0 {
		return
	}
	total := e2.Cross.Mul(e1.DirX).Sub(e1.Cross.Mul(e2.DirX))
	factor := e1.DirY.Mul(e2.DirX).Sub(e2.DirY.Mul(e1.DirX))
	x, mod := total.QuoRem(factor)
	if mod.Sign() < 0 {
		x = x.Sub(XFromInt64(1))
	}
	e1.NextCheck = e.AddSlice(x)
	e.List.Insert(e1.ListNodeCheck, e.Slices[e1.NextCheck].CheckList)
}
