package sweep

// Engine drives the per-slice sweep (spec component F) over a fully
// populated Entities arena and emits trapezoid-cap triangles (component G)
// as flat PointHandle triples. Every phase below is a direct translation
// of one numbered block of the original per-slice loop; the phase ordering
// itself is part of the algorithm's correctness (later phases depend on
// trees and lists only the earlier phases have settled) and must not be
// reordered.
type Engine struct {
	Entities    *Entities
	WindingMask int
}

// NewEngine builds a driver over entities. evenOdd selects the even-odd
// fill rule (mask 1, parity test) over the default non-zero rule (mask -1,
// any-nonzero test).
func NewEngine(entities *Entities, evenOdd bool) *Engine {
	mask := -1
	if evenOdd {
		mask = 1
	}
	return &Engine{Entities: entities, WindingMask: mask}
}

func inside(winding, mask int) bool { return winding&mask != 0 }

// Run sweeps every slice in x order and returns the triangulation as flat
// PointHandle triples, with degenerate (zero-area-by-identical-vertex)
// triangles already dropped.
func (en *Engine) Run() []PointHandle {
	e := en.Entities
	incoming := e.List.Create(0)
	outgoing := e.List.Create(0)
	var triangles []PointHandle

	sliceIter := e.Tree.Next(e.SlicesTree)
	for sliceIter != e.SlicesTree {
		slice := SliceHandle(e.Tree.Element(sliceIter))

		en.removeEndingEdges(slice, incoming)
		en.markVerticalIntersections(slice, incoming, outgoing)
		en.addStartingEdges(slice, outgoing)
		en.checkOrderChanges(slice, incoming, outgoing)
		en.addIncomingToPoints(slice, incoming)
		en.addOutgoingToPoints(slice, outgoing)
		en.eraseUnusedPoints(slice)
		en.forceThroughPoints(slice)
		triangles = en.produceTriangles(slice, triangles)
		en.setOutgoingPoints(slice)
		en.addHelperEdges(slice)
		en.checkNextIntersections(slice)
		en.cleanupPoints(slice)

		assertf(e.List.Empty(incoming), "sweep: incoming list not drained at end of slice")
		assertf(e.List.Empty(outgoing), "sweep: outgoing list not drained at end of slice")

		sliceIter = e.Tree.Next(sliceIter)
	}
	assertf(e.Tree.Right(e.EdgesTree) == nilHandle, "sweep finished with active edges remaining")
	return dedupeDegenerate(triangles)
}

func dedupeDegenerate(triangles []PointHandle) []PointHandle {
	out := triangles[:0]
	for i := 0; i+3 <= len(triangles); i += 3 {
		a, b, c := triangles[i], triangles[i+1], triangles[i+2]
		if a == b || a == c || b == c {
			continue
		}
		out = append(out, a, b, c)
	}
	return out
}

// removeEndingEdges strips every active edge whose end point lies in slice
// out of the active-edge tree, scheduling the edge just below it for a
// recheck against its new neighbor.
func (en *Engine) removeEndingEdges(slice SliceHandle, incoming ListHandle) {
	e := en.Entities
	checkList := e.Slices[slice].CheckList
	checkIter := e.List.Next(checkList)
	for checkIter != checkList {
		edge := EdgeHandle(e.List.Element(checkIter))
		checkIterNext := e.List.Next(checkIter)
		ed := &e.Edges[edge]
		if e.Points[ed.PointEnd].Slice == slice {
			prev := e.Tree.Prev(ed.TreeNodeEdges)
			if prev != e.EdgesTree {
				prevEdge := EdgeHandle(e.Tree.Element(prev))
				e.Edges[prevEdge].NextCheck = slice
				e.List.Insert(e.Edges[prevEdge].ListNodeCheck, checkList)
			}
			e.List.Insert(ed.ListNodeIncoming, incoming)
			e.Tree.Remove(true, ed.TreeNodeEdges, NodeHandle(slice))
			e.List.Remove(checkIter)
		}
		checkIter = checkIterNext
	}
}

// markVerticalIntersections walks every vertical span recorded for slice
// and adds a point wherever an active edge passes through it, so the
// edges crossing the vertical are split there without the vertical ever
// entering the active-edge tree itself. The vertical's own winding is not
// recorded and adds nothing to the fill.
func (en *Engine) markVerticalIntersections(slice SliceHandle, incoming, outgoing ListHandle) {
	e := en.Entities
	vRoot := e.Slices[slice].VerticalTree
	vIter := e.Tree.Next(vRoot)
	for vIter != vRoot {
		start := e.Verticals[e.Tree.Element(vIter)]
		assertf(start.IsStart, "vertical sweep: expected a start marker")
		treeNodeEdge := e.GetEdgeBefore(e.Slices[slice].X, start.Y)
		vIter = e.Tree.Next(vIter)
		assertf(vIter != vRoot, "vertical sweep: missing end marker")
		end := e.Verticals[e.Tree.Element(vIter)]
		assertf(!end.IsStart, "vertical sweep: expected an end marker")
		for e.Tree.Next(treeNodeEdge) != e.EdgesTree {
			treeNodeEdge = e.Tree.Next(treeNodeEdge)
			edge := EdgeHandle(e.Tree.Element(treeNodeEdge))
			ed := &e.Edges[edge]
			if end.Y.Mul(ed.DirX).Sub(e.Slices[slice].X.Mul(ed.DirY)).Cmp(ed.Cross) <= 0 {
				break
			}
			y := e.EdgeIntersectX(edge, e.Slices[slice].X)
			point := e.AddPoint(slice, y)
			e.List.Insert(ed.ListNodeIncoming, incoming)
			e.List.Insert(ed.ListNodeOutgoing, outgoing)
			assertf(e.IsPointOnEdge(point, edge, false), "vertical sweep: added point not on edge")
		}
		vIter = e.Tree.Next(vIter)
	}
}

// addStartingEdges inserts every edge whose start point lies in slice into
// the active-edge tree at its correct position among the edges already
// active.
func (en *Engine) addStartingEdges(slice SliceHandle, outgoing ListHandle) {
	e := en.Entities
	checkList := e.Slices[slice].CheckList
	checkIter := e.List.Next(checkList)
	for checkIter != checkList {
		edge := EdgeHandle(e.List.Element(checkIter))
		ed := &e.Edges[edge]
		if e.Points[ed.PointStart].Slice == slice {
			start := e.Points[ed.PointStart]
			end := e.Points[ed.PointEnd]
			before := e.GetEdgeBeforeEnd(e.Slices[slice].X, start.Y, end.X, end.Y)
			e.List.Insert(ed.ListNodeOutgoing, outgoing)
			e.Tree.InsertAfter(true, ed.TreeNodeEdges, before, NodeHandle(slice))
			if before != e.EdgesTree {
				beforeEdge := EdgeHandle(e.Tree.Element(before))
				e.Edges[beforeEdge].NextCheck = slice
				e.List.Insert(e.Edges[beforeEdge].ListNodeCheck, checkList)
			}
		}
		checkIter = e.List.Next(checkIter)
	}
}

// checkOrderChanges drains slice's recheck list, testing each scheduled
// edge against its current right neighbor at x = slice.X+1 and resolving
// any crossing found: removing whichever of the pair is a spent
// zero-winding helper, or swapping the pair's tree order and rescheduling
// both for another look.
func (en *Engine) checkOrderChanges(slice SliceHandle, incoming, outgoing ListHandle) {
	e := en.Entities
	checkList := e.Slices[slice].CheckList
	x := e.Slices[slice].X.Add(XFromInt64(1))
	for e.List.Next(checkList) != checkList {
		edgeListNode := e.List.Next(checkList)
		edge := EdgeHandle(e.List.Element(edgeListNode))
		e1 := &e.Edges[edge]
		e1.NextCheck = e.Points[e1.PointEnd].Slice
		e.List.Insert(e1.ListNodeCheck, e.Slices[e1.NextCheck].CheckList)

		treeNodeEdgeNext := e.Tree.Next(e1.TreeNodeEdges)
		if treeNodeEdgeNext == e.EdgesTree {
			continue
		}
		edgeNext := EdgeHandle(e.Tree.Element(treeNodeEdgeNext))
		e2 := &e.Edges[edgeNext]
		if e1.MaxY.Less(e2.MinY) {
			continue
		}
		lhs := x.Mul(e2.DirY).Add(e2.Cross).Mul(e1.DirX)
		rhs := x.Mul(e1.DirY).Add(e1.Cross).Mul(e2.DirX)
		if lhs.Cmp(rhs) >= 0 {
			continue
		}

		y := e.EdgeIntersectEdge(edge, edgeNext)
		e.AddPoint(slice, y)

		switch {
		case e.Tree.SelfValue(e1.TreeNodeEdges) == 0:
			e.Tree.Remove(true, e1.TreeNodeEdges, NodeHandle(slice))
			if e.Points[e1.PointStart].Slice != slice {
				e.List.Insert(e1.ListNodeIncoming, incoming)
			}
			if e.Points[e2.PointStart].Slice != slice {
				e.List.Insert(e2.ListNodeIncoming, incoming)
			}
			e.List.Insert(e2.ListNodeOutgoing, outgoing)
			e.List.Remove(e1.ListNodeCheck)
			if prev := e.Tree.Prev(treeNodeEdgeNext); prev != e.EdgesTree {
				prevEdge := EdgeHandle(e.Tree.Element(prev))
				e.Edges[prevEdge].NextCheck = slice
				e.List.Insert(e.Edges[prevEdge].ListNodeCheck, checkList)
			}
		case e.Tree.SelfValue(treeNodeEdgeNext) == 0:
			e.Tree.Remove(true, treeNodeEdgeNext, NodeHandle(slice))
			if e.Points[e1.PointStart].Slice != slice {
				e.List.Insert(e1.ListNodeIncoming, incoming)
			}
			if e.Points[e2.PointStart].Slice != slice {
				e.List.Insert(e2.ListNodeIncoming, incoming)
			}
			e.List.Insert(e1.ListNodeOutgoing, outgoing)
			e.List.Remove(e2.ListNodeCheck)
			e1.NextCheck = slice
			e.List.Insert(e1.ListNodeCheck, checkList)
		default:
			e.Tree.Swap(true, e1.TreeNodeEdges, treeNodeEdgeNext, NodeHandle(slice))
			if e.Points[e1.PointStart].Slice != slice {
				e.List.Insert(e1.ListNodeIncoming, incoming)
			}
			if e.Points[e2.PointStart].Slice != slice {
				e.List.Insert(e2.ListNodeIncoming, incoming)
			}
			e.List.Insert(e1.ListNodeOutgoing, outgoing)
			e.List.Insert(e2.ListNodeOutgoing, outgoing)
			e1.NextCheck = slice
			e.List.Insert(e1.ListNodeCheck, checkList)
			if prev := e.Tree.Prev(treeNodeEdgeNext); prev != e.EdgesTree {
				prevEdge := EdgeHandle(e.Tree.Element(prev))
				e.Edges[prevEdge].NextCheck = slice
				e.List.Insert(e.Edges[prevEdge].ListNodeCheck, checkList)
			}
		}
	}
}

// addIncomingToPoints assigns each edge drained from the incoming list to
// whichever of slice's points its position at the slice's own x lands on,
// ordered by its previous-view active-edge index.
func (en *Engine) addIncomingToPoints(slice SliceHandle, incoming ListHandle) {
	e := en.Entities
	ptRoot := e.Slices[slice].PointsTree
	for e.List.Next(incoming) != incoming {
		edgeListNode := e.List.Next(incoming)
		edge := EdgeHandle(e.List.Element(edgeListNode))
		e.List.Remove(edgeListNode)
		ed := &e.Edges[edge]

		e.Tree.ComputePreviousIndex(ed.TreeNodeEdges, NodeHandle(slice))
		treeNodePoint := e.GetPointBeforeEdge(slice, edge, false)
		next := e.Tree.Next(treeNodePoint)
		if treeNodePoint == ptRoot ||
			(next != ptRoot &&
				!e.IsPointOnEdge(PointHandle(e.Tree.Element(treeNodePoint)), edge, false) &&
				(ed.DirY.Sign() > 0 || e.IsPointOnEdge(PointHandle(e.Tree.Element(next)), edge, false))) {
			treeNodePoint = next
		}
		assertf(treeNodePoint != ptRoot, "add incoming: no point found for edge")
		point := PointHandle(e.Tree.Element(treeNodePoint))
		before := e.PointGetIncomingBefore(point, e.Tree.PreviousIndex(ed.TreeNodeEdges))
		e.Tree.InsertAfter(false, ed.TreeNodeIncoming, before, nilHandle)
	}
}

// addOutgoingToPoints is addIncomingToPoints' counterpart for the outgoing
// list, using each edge's current (not previous-view) active-edge index and
// its position one column past the slice's x.
func (en *Engine) addOutgoingToPoints(slice SliceHandle, outgoing ListHandle) {
	e := en.Entities
	ptRoot := e.Slices[slice].PointsTree
	for e.List.Next(outgoing) != outgoing {
		edgeListNode := e.List.Next(outgoing)
		edge := EdgeHandle(e.List.Element(edgeListNode))
		e.List.Remove(edgeListNode)
		ed := &e.Edges[edge]

		e.Tree.ComputeIndex(ed.TreeNodeEdges)
		treeNodePoint := e.GetPointBeforeEdge(slice, edge, true)
		next := e.Tree.Next(treeNodePoint)
		if treeNodePoint == ptRoot ||
			(next != ptRoot &&
				!e.IsPointOnEdge(PointHandle(e.Tree.Element(treeNodePoint)), edge, true) &&
				(ed.DirY.Sign() < 0 || e.IsPointOnEdge(PointHandle(e.Tree.Element(next)), edge, true))) {
			treeNodePoint = next
		}
		assertf(treeNodePoint != ptRoot, "add outgoing: no point found for edge")
		point := PointHandle(e.Tree.Element(treeNodePoint))
		before := e.PointGetOutgoingBefore(point, e.Tree.Index(ed.TreeNodeEdges))
		e.Tree.InsertAfter(false, ed.TreeNodeOutgoing, before, nilHandle)
	}
}

// eraseUnusedPoints drops any point created for slice that ended up with
// no incoming and no outgoing edges (a speculative lookup that never
// panned out).
func (en *Engine) eraseUnusedPoints(slice SliceHandle) {
	e := en.Entities
	ptRoot := e.Slices[slice].PointsTree
	iter := e.Tree.Next(ptRoot)
	for iter != ptRoot {
		point := PointHandle(e.Tree.Element(iter))
		next := e.Tree.Next(iter)
		if e.Tree.Empty(e.Points[point].IncomingTree) && e.Tree.Empty(e.Points[point].OutgoingTree) {
			e.Tree.Remove(false, iter, nilHandle)
		}
		iter = next
	}
}

// forceThroughPoints makes sure every active edge that merely passes
// through one of slice's points (without starting, ending, or crossing
// there) is still registered as incoming/outgoing on that point, so the
// winding tally in produceTriangles sees it.
func (en *Engine) forceThroughPoints(slice SliceHandle) {
	e := en.Entities
	ptRoot := e.Slices[slice].PointsTree
	pointIter := e.Tree.Next(ptRoot)
	for pointIter != ptRoot {
		point := PointHandle(e.Tree.Element(pointIter))
		treeNodeEdge := e.GetEdgeBeforePrevious(slice, e.Points[point].Y)
		for treeNodeEdge != e.EdgesTree && e.IsPointOnEdge(point, EdgeHandle(e.Tree.Element(treeNodeEdge)), false) {
			treeNodeEdge = en.edgePrevVersioned(treeNodeEdge, slice)
		}
		treeNodeEdge = en.edgeNextVersioned(treeNodeEdge, slice)
		for treeNodeEdge != e.EdgesTree && e.IsPointOnEdge(point, EdgeHandle(e.Tree.Element(treeNodeEdge)), false) {
			edge := EdgeHandle(e.Tree.Element(treeNodeEdge))
			ed := &e.Edges[edge]
			if e.Tree.Parent(ed.TreeNodeIncoming) == nilHandle && e.Tree.Parent(ed.TreeNodeOutgoing) == nilHandle {
				e.Tree.ComputePreviousIndex(treeNodeEdge, NodeHandle(slice))
				before := e.PointGetIncomingBefore(point, e.Tree.PreviousIndex(treeNodeEdge))
				e.Tree.InsertAfter(false, ed.TreeNodeIncoming, before, nilHandle)
				if e.Tree.Parent(treeNodeEdge) != nilHandle {
					e.Tree.ComputeIndex(treeNodeEdge)
					beforeOut := e.PointGetOutgoingBefore(point, e.Tree.Index(treeNodeEdge))
					e.Tree.InsertAfter(false, ed.TreeNodeOutgoing, beforeOut, nilHandle)
				}
			}
			treeNodeEdge = en.edgeNextVersioned(treeNodeEdge, slice)
		}
		pointIter = e.Tree.Next(pointIter)
	}
}

// edgeNextVersioned/edgePrevVersioned read the active-edge tree's Next/Prev
// for h as of the start of slice: the Previous view if h was already
// touched during slice, Current otherwise. Several phases walk the tree in
// this version-aware way because they run after the tree has already
// advanced past the shape the walk needs to see.
func (en *Engine) edgeNextVersioned(h NodeHandle, slice SliceHandle) NodeHandle {
	t := en.Entities.Tree
	if t.SliceVersion(h) == uint32(slice) {
		return t.view(h, uint32(slice)).Next
	}
	return t.Next(h)
}

func (en *Engine) edgePrevVersioned(h NodeHandle, slice SliceHandle) NodeHandle {
	t := en.Entities.Tree
	if t.SliceVersion(h) == uint32(slice) {
		return t.view(h, uint32(slice)).Prev
	}
	return t.Prev(h)
}

// produceTriangles is the trapezoid-cap emission phase: it walks slice's
// points left to right, maintaining a running winding number across the
// active-edge tree, and emits a fan triangle at every point where the
// winding enters or stays in the filled region under the engine's
// WindingMask rule.
func (en *Engine) produceTriangles(slice SliceHandle, triangles []PointHandle) []PointHandle {
	e := en.Entities
	winding := 0
	treeNodeEdgePrevious := e.EdgesTree
	var pointPrevious PointHandle
	ptRoot := e.Slices[slice].PointsTree
	pointIter := e.Tree.Next(ptRoot)

	for pointIter != ptRoot {
		point := PointHandle(e.Tree.Element(pointIter))
		incomingRoot := e.Points[point].IncomingTree
		incomingFirst := e.Tree.Next(incomingRoot)

		var treeNodeEdgeBefore NodeHandle
		if incomingFirst != incomingRoot {
			firstEdge := EdgeHandle(e.Tree.Element(incomingFirst))
			treeNodeEdgeBefore = en.edgePrevVersioned(e.Edges[firstEdge].TreeNodeEdges, slice)
		} else {
			treeNodeEdgeBefore = e.GetEdgeBeforePrevious(slice, e.Points[point].Y)
		}

		if treeNodeEdgeBefore == treeNodeEdgePrevious {
			if inside(winding, en.WindingMask) {
				assertf(treeNodeEdgePrevious != e.EdgesTree, "produce triangles: dangling previous edge")
				next := en.edgeNextVersioned(treeNodeEdgePrevious, slice)
				assertf(next != e.EdgesTree, "produce triangles: previous edge has no successor")
				outgoingPt := e.Edges[EdgeHandle(e.Tree.Element(next))].PointOutgoing
				triangles = append(triangles, pointPrevious, point, outgoingPt)
			}
		} else {
			treeNodeEdgePrevious = treeNodeEdgeBefore
			winding = e.EdgeGetWindingPrevious(treeNodeEdgePrevious, uint32(slice))
			if inside(winding, en.WindingMask) {
				assertf(treeNodeEdgePrevious != e.EdgesTree, "produce triangles: dangling previous edge")
				outgoingPrev := e.Edges[EdgeHandle(e.Tree.Element(treeNodeEdgePrevious))].PointOutgoing
				next := en.edgeNextVersioned(treeNodeEdgePrevious, slice)
				assertf(next != e.EdgesTree, "produce triangles: previous edge has no successor")
				outgoingNext := e.Edges[EdgeHandle(e.Tree.Element(next))].PointOutgoing
				triangles = append(triangles, outgoingPrev, point, outgoingNext)
			}
		}

		incomingIter := incomingFirst
		for incomingIter != incomingRoot {
			incomingEdge := EdgeHandle(e.Tree.Element(incomingIter))
			treeNodeEdgePrevious = e.Edges[incomingEdge].TreeNodeEdges
			winding += e.Tree.SelfValue(treeNodeEdgePrevious)
			if inside(winding, en.WindingMask) {
				assertf(treeNodeEdgePrevious != e.EdgesTree, "produce triangles: dangling previous edge")
				outgoingPrev := e.Edges[EdgeHandle(e.Tree.Element(treeNodeEdgePrevious))].PointOutgoing
				next := en.edgeNextVersioned(treeNodeEdgePrevious, slice)
				assertf(next != e.EdgesTree, "produce triangles: previous edge has no successor")
				outgoingNext := e.Edges[EdgeHandle(e.Tree.Element(next))].PointOutgoing
				triangles = append(triangles, outgoingPrev, point, outgoingNext)
			}
			incomingIter = e.Tree.Next(incomingIter)
		}

		pointPrevious = point
		pointIter = e.Tree.Next(pointIter)
	}
	return triangles
}

// setOutgoingPoints records, on every edge now outgoing from one of
// slice's points, which point it outgoes from -- the value produceTriangles
// will read back for every later slice this edge remains active.
func (en *Engine) setOutgoingPoints(slice SliceHandle) {
	e := en.Entities
	ptRoot := e.Slices[slice].PointsTree
	pointIter := e.Tree.Next(ptRoot)
	for pointIter != ptRoot {
		point := PointHandle(e.Tree.Element(pointIter))
		outRoot := e.Points[point].OutgoingTree
		outIter := e.Tree.Next(outRoot)
		for outIter != outRoot {
			e.Edges[EdgeHandle(e.Tree.Element(outIter))].PointOutgoing = point
			outIter = e.Tree.Next(outIter)
		}
		pointIter = e.Tree.Next(pointIter)
	}
}

// addHelperEdges adds the zero-winding edges needed to keep every
// trapezoid emitted by produceTriangles free of concave boundaries: one
// for a point with no outgoing edges at all (a hole or reflex vertex in x),
// and up to two more for a point whose outgoing fan is concave against its
// active-edge neighbors in y.
func (en *Engine) addHelperEdges(slice SliceHandle) {
	e := en.Entities
	ptRoot := e.Slices[slice].PointsTree
	pointIter := e.Tree.Next(ptRoot)
	for pointIter != ptRoot {
		point := PointHandle(e.Tree.Element(pointIter))
		outRoot := e.Points[point].OutgoingTree

		if e.Tree.Empty(outRoot) {
			before := e.GetEdgeBefore(e.Slices[slice].X, e.Points[point].Y)
			if before != e.EdgesTree && e.Tree.Next(before) != e.EdgesTree {
				after := e.Tree.Next(before)
				beforeEdge := EdgeHandle(e.Tree.Element(before))
				afterEdge := EdgeHandle(e.Tree.Element(after))
				chosenEnd := e.Edges[beforeEdge].PointEnd
				if e.Points[e.Edges[afterEdge].PointEnd].X.Less(e.Points[chosenEnd].X) {
					chosenEnd = e.Edges[afterEdge].PointEnd
				}
				en.insertHelperEdge(slice, point, before, outRoot, chosenEnd)
			}
		}

		if !e.Tree.Empty(outRoot) {
			firstEdge := EdgeHandle(e.Tree.Element(e.Tree.Next(outRoot)))
			if other := e.Tree.Prev(e.Edges[firstEdge].TreeNodeEdges); other != e.EdgesTree && e.Edges[firstEdge].PointStart == point {
				otherEdge := EdgeHandle(e.Tree.Element(other))
				if en.isConcaveAbove(point, e.Edges[firstEdge].PointEnd, e.Edges[otherEdge].PointOutgoing) {
					en.insertHelperEdge(slice, point, other, outRoot, e.Edges[otherEdge].PointEnd)
				}
			}

			lastEdge := EdgeHandle(e.Tree.Element(e.Tree.Prev(outRoot)))
			if other := e.Tree.Next(e.Edges[lastEdge].TreeNodeEdges); other != e.EdgesTree && e.Edges[lastEdge].PointStart == point {
				otherEdge := EdgeHandle(e.Tree.Element(other))
				if en.isConcaveBelow(point, e.Edges[lastEdge].PointEnd, e.Edges[otherEdge].PointOutgoing) {
					en.insertHelperEdge(slice, point, e.Edges[lastEdge].TreeNodeEdges, e.Edges[lastEdge].TreeNodeOutgoing, e.Edges[otherEdge].PointEnd)
				}
			}
		}
		pointIter = e.Tree.Next(pointIter)
	}
}

func (en *Engine) isConcaveAbove(point, edgeEnd, otherOutgoing PointHandle) bool {
	e := en.Entities
	lhs := e.Points[point].X.Sub(e.Points[otherOutgoing].X).Mul(e.Points[edgeEnd].Y.Sub(e.Points[otherOutgoing].Y))
	rhs := e.Points[point].Y.Sub(e.Points[otherOutgoing].Y).Mul(e.Points[edgeEnd].X.Sub(e.Points[otherOutgoing].X))
	return lhs.Cmp(rhs) > 0
}

func (en *Engine) isConcaveBelow(point, edgeEnd, otherOutgoing PointHandle) bool {
	e := en.Entities
	lhs := e.Points[point].X.Sub(e.Points[otherOutgoing].X).Mul(e.Points[edgeEnd].Y.Sub(e.Points[otherOutgoing].Y))
	rhs := e.Points[point].Y.Sub(e.Points[otherOutgoing].Y).Mul(e.Points[edgeEnd].X.Sub(e.Points[otherOutgoing].X))
	return lhs.Cmp(rhs) < 0
}

// insertHelperEdge adds a zero-winding edge from point to end, splices it
// into the active-edge tree immediately after activeAfter, and into
// outgoingAnchor's point-local outgoing tree, then schedules its own
// recheck. Called only when slice's recheck list is empty, which it
// asserts on either side of AddEdge since AddEdge always deposits exactly
// one entry on it.
func (en *Engine) insertHelperEdge(slice SliceHandle, point PointHandle, activeAfter, outgoingAnchor NodeHandle, end PointHandle) {
	e := en.Entities
	checkList := e.Slices[slice].CheckList
	assertf(e.List.Empty(checkList), "add helper edges: check list not drained")
	e.AddEdge(point, end, 0)
	assertf(!e.List.Empty(checkList), "add helper edges: new edge missing from check list")
	newEdge := EdgeHandle(e.List.Element(e.List.Next(checkList)))
	ed := &e.Edges[newEdge]
	e.Tree.InsertAfter(true, ed.TreeNodeEdges, activeAfter, NodeHandle(slice))
	e.Tree.InsertAfter(false, ed.TreeNodeOutgoing, outgoingAnchor, nilHandle)
	ed.NextCheck = e.Points[ed.PointEnd].Slice
	e.List.Insert(ed.ListNodeCheck, e.Slices[ed.NextCheck].CheckList)
	assertf(e.List.Empty(checkList), "add helper edges: check list not drained after insert")
}

// checkNextIntersections tests every newly outgoing edge against both of
// its active-edge neighbors for a future crossing, now that slice's points
// and their incoming/outgoing assignments have fully settled.
func (en *Engine) checkNextIntersections(slice SliceHandle) {
	e := en.Entities
	ptRoot := e.Slices[slice].PointsTree
	pointIter := e.Tree.Next(ptRoot)
	for pointIter != ptRoot {
		point := PointHandle(e.Tree.Element(pointIter))
		outRoot := e.Points[point].OutgoingTree
		outIter := e.Tree.Next(outRoot)
		if outIter != outRoot {
			firstEdge := EdgeHandle(e.Tree.Element(outIter))
			if treeNodeEdge := e.Tree.Prev(e.Edges[firstEdge].TreeNodeEdges); treeNodeEdge != e.EdgesTree {
				e.CheckIntersection(treeNodeEdge)
			}
		}
		for outIter != outRoot {
			edge := EdgeHandle(e.Tree.Element(outIter))
			treeNodeEdge := e.Edges[edge].TreeNodeEdges
			if e.Tree.Next(treeNodeEdge) != e.EdgesTree {
				e.CheckIntersection(treeNodeEdge)
			}
			outIter = e.Tree.Next(outIter)
		}
		pointIter = e.Tree.Next(pointIter)
	}
}

// cleanupPoints clears every point's incoming/outgoing trees, unlinking
// each edge's TreeNodeIncoming/TreeNodeOutgoing node so it can be attached
// to a point of a later slice (and so forceThroughPoints' parent check sees
// it as unattached). Every point gets its own trees from AddPoint; the
// cleared trees themselves are not reused.
func (en *Engine) cleanupPoints(slice SliceHandle) {
	e := en.Entities
	ptRoot := e.Slices[slice].PointsTree
	pointIter := e.Tree.Next(ptRoot)
	for pointIter != ptRoot {
		point := PointHandle(e.Tree.Element(pointIter))
		e.Tree.Clear(false, e.Points[point].IncomingTree, nilHandle)
		e.Tree.Clear(false, e.Points[point].OutgoingTree, nilHandle)
		pointIter = e.Tree.Next(pointIter)
	}
}
