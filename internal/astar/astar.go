package astar

import (
	"container/heap"
)

// Closed tells a NavMesh which nodes are already settled.
type Closed interface {
	Contains(node int) bool
}

// NavMesh is the graph a Search walks. Node ids are chosen by the mesh.
type NavMesh interface {
	// Heuristic estimates the cost from a to b.
	Heuristic(a, b int) int

	// Cost is the cost of moving between neighbours a and b.
	Cost(a, b int) int

	// Neighbours lists nodes reachable from node, optionally leaving out
	// those already in closed.
	Neighbours(node int, closed Closed) []int
}

// Visit describes a node as it is expanded.
type Visit struct {
	Node   int
	Parent int // -1 for the start node
	F      int
	G      int
	H      int
}

// Search finds shortest paths. A Search may be reused; each FindPath starts
// from scratch. Not safe for concurrent use.
type Search struct {
	// Trace, if set, is called for every expanded node.
	Trace func(Visit)

	nodes  []node
	open   openSet
	byID   map[int]int
	closed closedSet
	seq    int
}

type node struct {
	id     int
	parent int // index into Search.nodes, -1 for none
	g, h   int
	seq    int // insertion order, breaks ties in f
	pos    int // position in the heap, -1 once popped
}

func (n *node) f() int {
	return n.g + n.h
}

type closedSet map[int]struct{}

func (c closedSet) Contains(id int) bool {
	_, ok := c[id]
	return ok
}

// New returns a Search with no trace hook.
func New() *Search {
	return &Search{}
}

func (s *Search) reset() {
	s.nodes = s.nodes[:0]
	s.open = openSet{search: s}
	s.byID = map[int]int{}
	s.closed = closedSet{}
	s.seq = 0
}

func (s *Search) push(id, parent, g, h int) {
	idx := len(s.nodes)
	s.nodes = append(s.nodes, node{id: id, parent: parent, g: g, h: h, seq: s.seq})
	s.seq++
	s.byID[id] = idx
	heap.Push(&s.open, idx)
}

// FindPath returns the node ids of a shortest path from start to dst, both
// included, or nil if dst cannot be reached.
func (s *Search) FindPath(start, dst int, mesh NavMesh) []int {
	if start == dst {
		return []int{start}
	}

	s.reset()
	s.push(start, -1, 0, mesh.Heuristic(start, dst))

	for s.open.Len() > 0 {
		idx := heap.Pop(&s.open).(int)
		cur := &s.nodes[idx]
		delete(s.byID, cur.id)
		s.closed[cur.id] = struct{}{}

		if s.Trace != nil {
			parent := -1
			if cur.parent >= 0 {
				parent = s.nodes[cur.parent].id
			}
			s.Trace(Visit{Node: cur.id, Parent: parent, F: cur.f(), G: cur.g, H: cur.h})
		}

		if cur.id == dst {
			return s.path(idx)
		}

		curID, curG := cur.id, cur.g
		for _, next := range mesh.Neighbours(curID, s.closed) {
			if s.closed.Contains(next) {
				continue
			}
			g := curG + mesh.Cost(curID, next)

			known, ok := s.byID[next]
			if !ok {
				s.push(next, idx, g, mesh.Heuristic(next, dst))
				continue
			}

			n := &s.nodes[known]
			if g < n.g {
				n.g = g
				n.parent = idx
				heap.Fix(&s.open, n.pos)
			}
		}
	}

	return nil
}

// path walks parent links back from idx.
func (s *Search) path(idx int) []int {
	out := []int{}
	for i := idx; i >= 0; i = s.nodes[i].parent {
		out = append(out, s.nodes[i].id)
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// openSet is a container/heap of indices into search.nodes ordered by f,
// then insertion order.
type openSet struct {
	search *Search
	items  []int
}

func (o openSet) Len() int {
	return len(o.items)
}

func (o openSet) Less(i, j int) bool {
	a, b := &o.search.nodes[o.items[i]], &o.search.nodes[o.items[j]]
	if a.f() != b.f() {
		return a.f() < b.f()
	}
	return a.seq < b.seq
}

func (o openSet) Swap(i, j int) {
	o.items[i], o.items[j] = o.items[j], o.items[i]
	o.search.nodes[o.items[i]].pos = i
	o.search.nodes[o.items[j]].pos = j
}

func (o *openSet) Push(x interface{}) {
	idx := x.(int)
	o.search.nodes[idx].pos = len(o.items)
	o.items = append(o.items, idx)
}

func (o *openSet) Pop() interface{} {
	last := len(o.items) - 1
	idx := o.items[last]
	o.items = o.items[:last]
	o.search.nodes[idx].pos = -1
	return idx
}
