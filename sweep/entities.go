package sweep

// Entities owns every table of spec component B: slices, points, edges and
// vertical markers, plus the single shared Tree and List arenas that back
// every logical sub-tree/sub-list those tables reference (the slice tree,
// each slice's point and vertical trees, each point's incoming/outgoing
// trees, the active-edge tree, and each edge's incoming/outgoing/check
// lists). One arena per kind, many anchors into it: the same layout the
// teacher's query graph uses a single polymorphic node arena for, except
// here the arena is the tree/list themselves rather than a node interface.
type Entities struct {
	Tree *Tree
	List *List

	Slices    []Slice
	Points    []Point
	Edges     []Edge
	Verticals []Vertical

	SlicesTree NodeHandle
	EdgesTree  NodeHandle
}

type Slice struct {
	X            X
	PointsTree   NodeHandle
	VerticalTree NodeHandle
	CheckList    ListHandle
}

type Point struct {
	Slice         SliceHandle
	X, Y          X
	IncomingTree  NodeHandle
	OutgoingTree  NodeHandle
	Used          uint32 // 1-based index into out_points; 0 means not yet emitted
}

type Edge struct {
	PointStart, PointEnd, PointOutgoing PointHandle
	TreeNodeEdges                      NodeHandle // this edge's slot in the active-edge tree (weighted)
	TreeNodeIncoming, TreeNodeOutgoing NodeHandle // this edge's slot in the incoming/outgoing trees of the point it arrives at/leaves from on the current slice (simple)
	ListNodeIncoming, ListNodeOutgoing ListHandle // this edge's slot in the current slice's incoming/outgoing lists
	ListNodeCheck                      ListHandle // this edge's slot in some slice's recheck list
	NextCheck                          SliceHandle
	DirX, DirY, Cross, MinY, MaxY      X
}

type Vertical struct {
	Y       X
	IsStart bool
}

// NewEntities allocates empty tables and the two root anchors (the slice
// tree and the active-edge tree) that persist for the whole sweep.
func NewEntities() *Entities {
	e := &Entities{Tree: NewTree(), List: NewList()}
	e.SlicesTree = e.Tree.Create(0, 0)
	e.EdgesTree = e.Tree.Create(0, 0)
	return e
}

// AddSlice finds or creates the slice at coordinate x, keeping Slices
// ordered by X in SlicesTree (a simple tree: slices never move once
// created, they are only ever looked up or inserted).
func (e *Entities) AddSlice(x X) SliceHandle {
	insertAfter := e.SlicesTree
	current := e.Tree.Right(e.SlicesTree)
	if current != nilHandle {
		for {
			cmp := x.Cmp(e.Slices[e.Tree.Element(current)].X)
			if cmp < 0 {
				if left := e.Tree.Left(current); left != nilHandle {
					current = left
					continue
				}
				insertAfter = e.Tree.Prev(current)
				break
			}
			if cmp > 0 {
				if right := e.Tree.Right(current); right != nilHandle {
					current = right
					continue
				}
				insertAfter = current
				break
			}
			return SliceHandle(e.Tree.Element(current))
		}
	}
	handle := SliceHandle(len(e.Slices))
	s := Slice{
		X:            x,
		PointsTree:   e.Tree.Create(0, 0),
		VerticalTree: e.Tree.Create(0, 0),
		CheckList:    e.List.Create(0),
	}
	e.Tree.InsertAfter(false, e.Tree.Create(uint32(handle), 0), insertAfter, nilHandle)
	e.Slices = append(e.Slices, s)
	return handle
}

// AddPoint finds or creates the point at (slice, y), keeping Points ordered
// by Y within the slice's points tree. Two coincident endpoints from
// different input segments always collapse onto the same PointHandle, which
// is how coincident segments are merged rather than split (see the
// interning discussion in the design notes).
func (e *Entities) AddPoint(slice SliceHandle, y X) PointHandle {
	root := e.Slices[slice].PointsTree
	insertAfter := root
	current := e.Tree.Right(root)
	if current != nilHandle {
		for {
			cmp := y.Cmp(e.Points[e.Tree.Element(current)].Y)
			if cmp < 0 {
				if left := e.Tree.Left(current); left != nilHandle {
					current = left
					continue
				}
				insertAfter = e.Tree.Prev(current)
				break
			}
			if cmp > 0 {
				if right := e.Tree.Right(current); right != nilHandle {
					current = right
					continue
				}
				insertAfter = current
				break
			}
			return PointHandle(e.Tree.Element(current))
		}
	}
	handle := PointHandle(len(e.Points))
	p := Point{
		Slice:        slice,
		X:            e.Slices[slice].X,
		Y:            y,
		IncomingTree: e.Tree.Create(0, 0),
		OutgoingTree: e.Tree.Create(0, 0),
	}
	e.Tree.InsertAfter(false, e.Tree.Create(uint32(handle), 0), insertAfter, nilHandle)
	e.Points = append(e.Points, p)
	return handle
}

// GetPointBeforeEdge returns the last point in slice whose y lies at or
// before edge's crossing of the sweep column (one column past the slice's
// own x when nextX is set), using the cross-product sign test rather than a
// division so the comparison stays exact. Returns the points tree's own
// root anchor when the slice has no points at all.
func (e *Entities) GetPointBeforeEdge(slice SliceHandle, edge EdgeHandle, nextX bool) NodeHandle {
	root := e.Slices[slice].PointsTree
	current := e.Tree.Right(root)
	if current == nilHandle {
		return root
	}
	ed := &e.Edges[edge]
	x := e.Slices[slice].X
	if nextX {
		x = x.Add(XFromInt64(1))
	}
	for {
		pt := &e.Points[e.Tree.Element(current)]
		cross := pt.Y.Mul(ed.DirX).Sub(x.Mul(ed.DirY)).Sub(ed.Cross)
		switch {
		case cross.Sign() > 0:
			if left := e.Tree.Left(current); left != nilHandle {
				current = left
				continue
			}
			return e.Tree.Prev(current)
		case cross.Sign() < 0:
			if right := e.Tree.Right(current); right != nilHandle {
				current = right
				continue
			}
			return current
		default:
			return current
		}
	}
}

// IsPointOnEdge reports whether point lies on edge at the column one past
// the slice's x if nextX is set, testing the rounded crossing against the
// point's y with the doubled-cross trick (avoids dividing by dir_x).
func (e *Entities) IsPointOnEdge(point PointHandle, edge EdgeHandle, nextX bool) bool {
	ed := &e.Edges[edge]
	pt := &e.Points[point]
	x := pt.X
	if nextX {
		x = x.Add(XFromInt64(1))
	}
	mod := pt.Y.Mul(ed.DirX).Sub(x.Mul(ed.DirY)).Sub(ed.Cross).Shl1()
	return mod.Cmp(ed.DirX) <= 0 && mod.Add(ed.DirX).Sign() > 0
}

// PointGetIncomingBefore locates where an edge with the given previous-slice
// active-edge index belongs in point's incoming tree (ordered by that
// index, read from the edges' Previous tree view since the active-edge
// tree has already advanced to the new slice's version by the time this is
// called).
func (e *Entities) PointGetIncomingBefore(point PointHandle, index uint32) NodeHandle {
	root := e.Points[point].IncomingTree
	current := e.Tree.Right(root)
	if current == nilHandle {
		return root
	}
	for {
		edgeTreeNode := e.Edges[e.Tree.Element(current)].TreeNodeEdges
		idx := e.Tree.PreviousIndex(edgeTreeNode)
		if index > idx {
			if right := e.Tree.Right(current); right != nilHandle {
				current = right
				continue
			}
			return current
		}
		if index < idx {
			if left := e.Tree.Left(current); left != nilHandle {
				current = left
				continue
			}
			return e.Tree.Prev(current)
		}
		return e.Tree.Prev(current)
	}
}

// PointGetOutgoingBefore is PointGetIncomingBefore's counterpart for the
// outgoing tree, ordered by the edges' current (not previous) active-edge
// index.
func (e *Entities) PointGetOutgoingBefore(point PointHandle, index uint32) NodeHandle {
	root := e.Points[point].OutgoingTree
	current := e.Tree.Right(root)
	if current == nilHandle {
		return root
	}
	for {
		edgeTreeNode := e.Edges[e.Tree.Element(current)].TreeNodeEdges
		idx := e.Tree.Index(edgeTreeNode)
		if index > idx {
			if right := e.Tree.Right(current); right != nilHandle {
				current = right
				continue
			}
			return current
		}
		if index < idx {
			if left := e.Tree.Left(current); left != nilHandle {
				current = left
				continue
			}
			return e.Tree.Prev(current)
		}
		return e.Tree.Prev(current)
	}
}

// AddEdge creates a non-vertical edge from start to end (start.X must be
// strictly less than end.X) carrying the given signed winding contribution,
// and registers it on its start slice's recheck list so the sweep examines
// it for intersections as soon as it becomes active.
func (e *Entities) AddEdge(start, end PointHandle, winding int) EdgeHandle {
	handle := EdgeHandle(len(e.Edges))
	startPt, endPt := &e.Points[start], &e.Points[end]
	dirX := endPt.X.Sub(startPt.X)
	dirY := endPt.Y.Sub(startPt.Y)
	assertf(dirX.Sign() > 0, "add edge: endpoints are not strictly increasing in x")
	var minY, maxY X
	if dirY.Sign() >= 0 {
		minY, maxY = startPt.Y, endPt.Y
	} else {
		minY, maxY = endPt.Y, startPt.Y
	}
	ed := Edge{
		PointStart:       start,
		PointOutgoing:    start,
		PointEnd:         end,
		TreeNodeEdges:    e.Tree.Create(uint32(handle), winding),
		TreeNodeIncoming: e.Tree.Create(uint32(handle), 0),
		TreeNodeOutgoing: e.Tree.Create(uint32(handle), 0),
		ListNodeIncoming: e.List.Create(uint32(handle)),
		ListNodeOutgoing: e.List.Create(uint32(handle)),
		ListNodeCheck:    e.List.Create(uint32(handle)),
		NextCheck:        startPt.Slice,
		DirX:             dirX,
		DirY:             dirY,
		MinY:             minY,
		MaxY:             maxY,
		Cross:            startPt.Y.Mul(dirX).Sub(startPt.X.Mul(dirY)),
	}
	e.Edges = append(e.Edges, ed)
	e.List.Insert(ed.ListNodeCheck, e.Slices[startPt.Slice].CheckList)
	return handle
}

// AddVerticalEdge records a vertical segment's [yStart, yEnd) span in
// slice's vertical tree, merging it with any overlapping or touching spans
// already present (so Verticals always holds a disjoint, sorted set of
// start/end markers for the slice). Vertical segments never enter the
// active-edge tree and their winding is not recorded: they only force
// points onto the active edges that cross the span (see the engine's
// markVerticalIntersections, the second per-slice phase).
func (e *Entities) AddVerticalEdge(slice SliceHandle, yStart, yEnd X) {
	root := e.Slices[slice].VerticalTree
	var start NodeHandle
	current := e.Tree.Right(root)
	if current == nilHandle {
		start = e.newVerticalMarker(yStart, true)
		e.Tree.InsertAfter(false, start, root, nilHandle)
	} else {
	walk:
		for {
			cmp := yStart.Cmp(e.Verticals[e.Tree.Element(current)].Y)
			switch {
			case cmp < 0:
				if left := e.Tree.Left(current); left != nilHandle {
					current = left
					continue
				}
				if e.Verticals[e.Tree.Element(current)].IsStart {
					start = e.newVerticalMarker(yStart, true)
					e.Tree.InsertAfter(false, start, e.Tree.Prev(current), nilHandle)
				} else {
					start = e.Tree.Prev(current)
				}
				break walk
			case cmp > 0:
				if right := e.Tree.Right(current); right != nilHandle {
					current = right
					continue
				}
				if !e.Verticals[e.Tree.Element(current)].IsStart {
					start = e.newVerticalMarker(yStart, true)
					e.Tree.InsertAfter(false, start, current, nilHandle)
				} else {
					start = current
				}
				break walk
			default:
				if e.Verticals[e.Tree.Element(current)].IsStart {
					start = current
				} else {
					start = e.Tree.Prev(current)
				}
				break walk
			}
		}
	}
	for e.Tree.Next(start) != root {
		next := e.Tree.Next(start)
		v := e.Verticals[e.Tree.Element(next)]
		cmp := yEnd.Cmp(v.Y)
		if cmp < 0 || (cmp == 0 && !v.IsStart) {
			break
		}
		e.Tree.Remove(false, next, nilHandle)
	}
	next := e.Tree.Next(start)
	if next == root || e.Verticals[e.Tree.Element(next)].IsStart {
		end := e.newVerticalMarker(yEnd, false)
		e.Tree.InsertAfter(false, end, start, nilHandle)
	}
}

func (e *Entities) newVerticalMarker(y X, isStart bool) NodeHandle {
	handle := VerticalHandle(len(e.Verticals))
	e.Verticals = append(e.Verticals, Vertical{Y: y, IsStart: isStart})
	return e.Tree.Create(uint32(handle), 0)
}
