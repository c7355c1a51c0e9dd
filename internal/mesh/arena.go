package mesh

import (
	"fmt"
	"image"
	"strings"

	"github.com/pkg/errors"
	"github.com/toby1984/quix/internal/geom"
)

// VertexID addresses a vertex inside an Arena.
type VertexID int

// EdgeID addresses an edge inside an Arena.
type EdgeID int

const (
	NoVertex VertexID = -1
	NoEdge   EdgeID   = -1
)

// Vertex is a lattice position plus the edge leaving it in each direction.
// Two vertices at the same position are distinct until a split unifies
// them.
type Vertex struct {
	ID  VertexID
	Pos image.Point

	Up, Down, Left, Right EdgeID
}

// Exit returns the edge leaving the vertex towards d.
func (v Vertex) Exit(d Direction) EdgeID {
	switch d {
	case Up:
		return v.Up
	case Down:
		return v.Down
	case Left:
		return v.Left
	case Right:
		return v.Right
	}
	return NoEdge
}

func (v *Vertex) setExit(d Direction, e EdgeID) {
	switch d {
	case Up:
		v.Up = e
	case Down:
		v.Down = e
	case Left:
		v.Left = e
	case Right:
		v.Right = e
	}
}

// Orientation of an edge, derived from its end points.
type Orientation int

const (
	Free Orientation = iota
	Horizontal
	Vertical
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	}
	return "free"
}

// Edge joins two vertices.
type Edge struct {
	ID   EdgeID
	A, B VertexID
}

// Arena owns every vertex and edge of a field. Everything else holds IDs.
// IDs are handed out sequentially and never reused; a new game starts
// from a new Arena.
type Arena struct {
	vertices []Vertex
	edges    []Edge
}

// NewArena returns an empty arena.
func NewArena() *Arena {
	return &Arena{vertices: []Vertex{}, edges: []Edge{}}
}

// Clone returns a deep copy.
func (a *Arena) Clone() *Arena {
	c := &Arena{
		vertices: make([]Vertex, len(a.vertices)),
		edges:    make([]Edge, len(a.edges)),
	}
	copy(c.vertices, a.vertices)
	copy(c.edges, a.edges)
	return c
}

// NumVertices is the number of vertices ever created.
func (a *Arena) NumVertices() int {
	return len(a.vertices)
}

// NumEdges is the number of edges ever created.
func (a *Arena) NumEdges() int {
	return len(a.edges)
}

// AddVertex creates an unconnected vertex at p.
func (a *Arena) AddVertex(p image.Point) VertexID {
	id := VertexID(len(a.vertices))
	a.vertices = append(a.vertices, Vertex{
		ID:    id,
		Pos:   p,
		Up:    NoEdge,
		Down:  NoEdge,
		Left:  NoEdge,
		Right: NoEdge,
	})
	return id
}

// AddEdge creates an edge between v0 and v1. Directional references are
// left to the caller (see Link).
func (a *Arena) AddEdge(v0, v1 VertexID) EdgeID {
	a.mustVertex(v0)
	a.mustVertex(v1)
	id := EdgeID(len(a.edges))
	a.edges = append(a.edges, Edge{ID: id, A: v0, B: v1})
	return id
}

func (a *Arena) mustVertex(v VertexID) {
	if v < 0 || int(v) >= len(a.vertices) {
		panic(fmt.Sprintf("vertex %d not in arena of %d vertices", v, len(a.vertices)))
	}
}

// Vertex returns a copy of vertex v.
func (a *Arena) Vertex(v VertexID) Vertex {
	return a.vertices[v]
}

// Edge returns a copy of edge e.
func (a *Arena) Edge(e EdgeID) Edge {
	return a.edges[e]
}

// Pos is the position of vertex v.
func (a *Arena) Pos(v VertexID) image.Point {
	return a.vertices[v].Pos
}

// Points returns the positions of both ends of e.
func (a *Arena) Points(e EdgeID) (image.Point, image.Point) {
	ed := a.edges[e]
	return a.vertices[ed.A].Pos, a.vertices[ed.B].Pos
}

// Segment returns e as a float segment.
func (a *Arena) Segment(e EdgeID) geom.Segment {
	p0, p1 := a.Points(e)
	return geom.Seg(p0, p1)
}

// Orientation of e. A degenerate edge counts as vertical.
func (a *Arena) Orientation(e EdgeID) Orientation {
	p0, p1 := a.Points(e)
	switch {
	case p0.X == p1.X:
		return Vertical
	case p0.Y == p1.Y:
		return Horizontal
	}
	return Free
}

// HasEndpoint is true if v is one of e's ends.
func (a *Arena) HasEndpoint(e EdgeID, v VertexID) bool {
	ed := a.edges[e]
	return ed.A == v || ed.B == v
}

// Other returns the end of e that is not v. Panics if v is not an end of e.
func (a *Arena) Other(e EdgeID, v VertexID) VertexID {
	ed := a.edges[e]
	switch v {
	case ed.A:
		return ed.B
	case ed.B:
		return ed.A
	}
	panic(fmt.Sprintf("vertex %d is not an end of %s", v, a.Describe(e)))
}

// EndpointAt returns the end of e positioned at p, if any.
func (a *Arena) EndpointAt(e EdgeID, p image.Point) (VertexID, bool) {
	ed := a.edges[e]
	if a.vertices[ed.A].Pos == p {
		return ed.A, true
	}
	if a.vertices[ed.B].Pos == p {
		return ed.B, true
	}
	return NoVertex, false
}

// Left returns the end of a horizontal edge with the smaller x.
func (a *Arena) Left(e EdgeID) VertexID {
	lo, _ := a.ends(e, Horizontal)
	return lo
}

// Right returns the end of a horizontal edge with the larger x.
func (a *Arena) Right(e EdgeID) VertexID {
	_, hi := a.ends(e, Horizontal)
	return hi
}

// Top returns the end of a vertical edge with the smaller y.
func (a *Arena) Top(e EdgeID) VertexID {
	lo, _ := a.ends(e, Vertical)
	return lo
}

// Bottom returns the end of a vertical edge with the larger y.
func (a *Arena) Bottom(e EdgeID) VertexID {
	_, hi := a.ends(e, Vertical)
	return hi
}

// ends orders the ends of an axis aligned edge along its axis.
func (a *Arena) ends(e EdgeID, o Orientation) (VertexID, VertexID) {
	if a.Orientation(e) != o {
		panic(fmt.Sprintf("%s is not %s", a.Describe(e), o))
	}
	ed := a.edges[e]
	p0, p1 := a.vertices[ed.A].Pos, a.vertices[ed.B].Pos
	if (o == Horizontal && p0.X <= p1.X) || (o == Vertical && p0.Y <= p1.Y) {
		return ed.A, ed.B
	}
	return ed.B, ed.A
}

// Exit returns the edge leaving v towards d.
func (a *Arena) Exit(v VertexID, d Direction) EdgeID {
	return a.vertices[v].Exit(d)
}

// Link sets v's reference towards d to e (NoEdge clears it). e must have
// v as an end and run from v towards d, anything else panics.
func (a *Arena) Link(v VertexID, d Direction, e EdgeID) {
	if !d.Valid() {
		panic(fmt.Sprintf("cannot link vertex %d towards %s", v, d))
	}
	if e != NoEdge {
		if !a.HasEndpoint(e, v) {
			panic(fmt.Sprintf("cannot link vertex %d to %s it does not touch", v, a.Describe(e)))
		}
		if got := towards(a.Pos(v), a.Pos(a.Other(e, v))); got != d {
			panic(fmt.Sprintf("cannot link vertex %d %s to %s which leaves %s", v, d, a.Describe(e), got))
		}
	}
	a.vertices[v].setExit(d, e)
}

// unlink clears any reference from v to e.
func (a *Arena) unlink(v VertexID, e EdgeID) {
	for _, d := range Directions {
		if a.vertices[v].Exit(d) == e {
			a.vertices[v].setExit(d, NoEdge)
		}
	}
}

// Repoint replaces the end `from` of e with `to`. References from `from`
// to e are cleared; linking `to` is up to the caller.
func (a *Arena) Repoint(e EdgeID, from, to VertexID) {
	a.mustVertex(to)
	ed := &a.edges[e]
	switch from {
	case ed.A:
		ed.A = to
	case ed.B:
		ed.B = to
	default:
		panic(fmt.Sprintf("vertex %d is not an end of %s", from, a.Describe(e)))
	}
	a.unlink(from, e)
}

// MoveVertex relocates v. Edges follow since they only hold IDs.
func (a *Arena) MoveVertex(v VertexID, p image.Point) {
	a.vertices[v].Pos = p
}

// Exits lists the directions in which v has an edge, skipping `ignored`.
func (a *Arena) Exits(v VertexID, ignored EdgeID) []Direction {
	out := []Direction{}
	vx := a.vertices[v]
	for _, d := range Directions {
		e := vx.Exit(d)
		if e == NoEdge || e == ignored {
			continue
		}
		out = append(out, d)
	}
	return out
}

// ExitCount is len(Exits(v, ignored)).
func (a *Arena) ExitCount(v VertexID, ignored EdgeID) int {
	return len(a.Exits(v, ignored))
}

// Check verifies every directional reference points at an edge that
// touches its vertex and leaves it the right way.
func (a *Arena) Check() error {
	for _, vx := range a.vertices {
		for _, d := range Directions {
			e := vx.Exit(d)
			if e == NoEdge {
				continue
			}
			if e < 0 || int(e) >= len(a.edges) {
				return errors.Wrapf(ErrCorrupt, "vertex %d %s references missing edge %d", vx.ID, d, e)
			}
			if !a.HasEndpoint(e, vx.ID) {
				return errors.Wrapf(ErrCorrupt, "vertex %d %s references %s", vx.ID, d, a.Describe(e))
			}
			if got := towards(vx.Pos, a.Pos(a.Other(e, vx.ID))); got != d {
				return errors.Wrapf(ErrCorrupt, "vertex %d %s references %s which leaves %s", vx.ID, d, a.Describe(e), got)
			}
		}
	}
	return nil
}

// Describe renders e for diagnostics.
func (a *Arena) Describe(e EdgeID) string {
	if e < 0 || int(e) >= len(a.edges) {
		return fmt.Sprintf("edge #%d (missing)", e)
	}
	ed := a.edges[e]
	p0, p1 := a.vertices[ed.A].Pos, a.vertices[ed.B].Pos
	return fmt.Sprintf("%s edge #%d %d(%d,%d)->%d(%d,%d)", a.Orientation(e), e, ed.A, p0.X, p0.Y, ed.B, p1.X, p1.Y)
}

// DescribeAll renders a list of edges for diagnostics.
func (a *Arena) DescribeAll(edges []EdgeID) string {
	parts := make([]string, len(edges))
	for i, e := range edges {
		parts[i] = a.Describe(e)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
