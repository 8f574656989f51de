package sweep

// List is an arena of intrusive doubly-linked list nodes (spec component D).
// A node belongs to at most one list at a time; membership is recorded on
// the node itself as an Anchor handle rather than by any owning container
// type, which is what lets the same node type serve the engine's three
// unrelated lists (the sweep's incoming-edge and outgoing-edge staging
// lists, and a slice's recheck list) without wrapper types.
type List struct {
	nodes []ListNode
}

type ListNode struct {
	Anchor, Prev, Next ListHandle
	Element            uint32
}

// NewList allocates a list arena with its nil sentinel node at handle 0.
func NewList() *List {
	return &List{nodes: make([]ListNode, 1)}
}

func (l *List) node(h ListHandle) *ListNode { return &l.nodes[h] }

// Create allocates a new list anchor (or a plain member node, depending on
// how the caller uses the returned handle: inserting it into another list
// makes it a member, leaving it alone makes it usable as an anchor for
// Insert/Next/Empty). A fresh node is its own anchor/prev/next, the sentinel
// "not currently in any list" shape.
func (l *List) Create(element uint32) ListHandle {
	h := ListHandle(len(l.nodes))
	l.nodes = append(l.nodes, ListNode{Anchor: h, Prev: h, Next: h, Element: element})
	return h
}

// Element returns the element recorded at node creation.
func (l *List) Element(h ListHandle) uint32 { return l.node(h).Element }

// Anchor reports which list item currently belongs to (item itself, if it
// is not currently linked into any list).
func (l *List) Anchor(item ListHandle) ListHandle { return l.node(item).Anchor }

// Next returns the item following cursor in its list (cursor may be the
// anchor itself, to start an iteration from the front).
func (l *List) Next(cursor ListHandle) ListHandle { return l.node(cursor).Next }

// Empty reports whether anchor's list has no members.
func (l *List) Empty(anchor ListHandle) bool { return l.node(anchor).Next == anchor }

// Insert links item at the front of list (whose handle must be an anchor,
// i.e. list == l.node(list).Anchor). A no-op if item is already a member of
// list; if item belongs to some other list it is unlinked from it first.
func (l *List) Insert(item, list ListHandle) {
	assertf(item != list, "list insert: item is its own list")
	assertf(l.node(list).Anchor == list, "list insert: target is not an anchor")
	if l.node(item).Anchor == list {
		return
	}
	if l.node(item).Anchor != item {
		l.Remove(item)
	}
	l.node(item).Anchor = list
	l.node(item).Prev = list
	l.node(item).Next = l.node(list).Next
	l.node(l.node(list).Next).Prev = item
	l.node(list).Next = item
}

// Remove unlinks item from whatever list it currently belongs to. A no-op
// if item is not currently a member of any list.
func (l *List) Remove(item ListHandle) {
	n := l.node(item)
	l.node(n.Next).Prev = n.Prev
	l.node(n.Prev).Next = n.Next
	n.Anchor, n.Prev, n.Next = item, item, item
}
