package mesh

import (
	"image"

	"github.com/pkg/errors"
	"github.com/toby1984/quix/internal/geom"
)

// Collection is an ordered set of edges of one arena, addressable by
// identity. Insertion order is kept; the first match wins for queries.
type Collection struct {
	arena *Arena
	edges []EdgeID
	index map[EdgeID]int
}

// NewCollection returns an empty collection over arena a.
func NewCollection(a *Arena) *Collection {
	return &Collection{arena: a, edges: []EdgeID{}, index: map[EdgeID]int{}}
}

// Arena returns the arena the edges live in.
func (c *Collection) Arena() *Arena {
	return c.arena
}

// Add appends e, ignoring edges already present.
func (c *Collection) Add(e EdgeID) {
	if _, ok := c.index[e]; ok {
		return
	}
	c.index[e] = len(c.edges)
	c.edges = append(c.edges, e)
}

// AddAll appends every given edge.
func (c *Collection) AddAll(edges ...EdgeID) {
	for _, e := range edges {
		c.Add(e)
	}
}

// Edges returns a copy of the edges in insertion order.
func (c *Collection) Edges() []EdgeID {
	out := make([]EdgeID, len(c.edges))
	copy(out, c.edges)
	return out
}

// Len is the number of edges.
func (c *Collection) Len() int {
	return len(c.edges)
}

// Clear drops every edge. The arena is untouched.
func (c *Collection) Clear() {
	c.edges = []EdgeID{}
	c.index = map[EdgeID]int{}
}

// ContainsIdentity is true if this exact edge is held; an edge elsewhere
// at the same coordinates does not count.
func (c *Collection) ContainsIdentity(e EdgeID) bool {
	_, ok := c.index[e]
	return ok
}

// PointOnAnyEdge returns the first edge containing p.
func (c *Collection) PointOnAnyEdge(p image.Point) (EdgeID, bool) {
	v := geom.FromPoint(p)
	for _, e := range c.edges {
		if c.arena.Segment(e).Contains(v) {
			return e, true
		}
	}
	return NoEdge, false
}

// IntersectsSegment returns the first edge sharing a point with a->b.
func (c *Collection) IntersectsSegment(a, b image.Point) (EdgeID, bool) {
	return c.IntersectsSeg(geom.Seg(a, b))
}

// IntersectsSeg is IntersectsSegment over a float segment.
func (c *Collection) IntersectsSeg(s geom.Segment) (EdgeID, bool) {
	for _, e := range c.edges {
		if c.arena.Segment(e).Intersects(s) {
			return e, true
		}
	}
	return NoEdge, false
}

// IntersectsEdge returns the first edge other than e itself that shares a
// point with e.
func (c *Collection) IntersectsEdge(e EdgeID) (EdgeID, bool) {
	s := c.arena.Segment(e)
	for _, o := range c.edges {
		if o == e {
			continue
		}
		if c.arena.Segment(o).Intersects(s) {
			return o, true
		}
	}
	return NoEdge, false
}

// FindEdge returns the edge joining v0 and v1 in either order.
func (c *Collection) FindEdge(v0, v1 VertexID) (EdgeID, bool) {
	for _, e := range c.edges {
		ed := c.arena.Edge(e)
		if (ed.A == v0 && ed.B == v1) || (ed.A == v1 && ed.B == v0) {
			return e, true
		}
	}
	return NoEdge, false
}

// Split breaks e at p and returns the vertex at p.
//
// If p is already an end of e that vertex is returned and nothing changes.
// Otherwise a vertex is created at p, e is shortened to end there and a new
// edge (added to this collection) covers the rest up to e's right / bottom
// end. The new vertex links Left/Up to e and Right/Down to the new edge;
// the far end's Left/Up now references the new edge.
func (c *Collection) Split(e EdgeID, p image.Point) (VertexID, error) {
	a := c.arena
	if v, ok := a.EndpointAt(e, p); ok {
		return v, nil
	}

	o := a.Orientation(e)
	if o == Free {
		return NoVertex, errors.Wrapf(ErrFreeEdge, "split %s at (%d,%d)", a.Describe(e), p.X, p.Y)
	}
	if !a.Segment(e).Contains(geom.FromPoint(p)) {
		return NoVertex, errors.Wrapf(ErrNotOnEdge, "split %s at (%d,%d)", a.Describe(e), p.X, p.Y)
	}

	var back, forward Direction
	var far VertexID
	if o == Vertical {
		back, forward = Up, Down
		far = a.Bottom(e)
	} else {
		back, forward = Left, Right
		far = a.Right(e)
	}

	mid := a.AddVertex(p)
	n := a.AddEdge(mid, far)
	a.Repoint(e, far, mid)

	a.Link(mid, back, e)
	a.Link(mid, forward, n)
	a.Link(far, back, n)

	c.Add(n)
	return mid, nil
}
