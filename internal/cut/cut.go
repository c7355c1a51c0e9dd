package cut

import (
	"fmt"
	"image"

	"github.com/pkg/errors"
	"github.com/toby1984/quix/internal/geom"
	"github.com/toby1984/quix/internal/mesh"
)

var (
	// ErrIllegalMove is returned by Begin when a cut cannot start at the
	// given position and heading.
	ErrIllegalMove = errors.New("illegal move")

	// ErrIdle is returned by Advance before Begin.
	ErrIdle = errors.New("no cut in progress")

	// ErrNotIdle is returned by Begin while a cut is open or closed but
	// not yet Reset.
	ErrNotIdle = errors.New("cut already in progress")
)

// State of a Cut.
type State int

const (
	Idle State = iota
	Cutting
	Closed
)

func (s State) String() string {
	switch s {
	case Cutting:
		return "cutting"
	case Closed:
		return "closed"
	}
	return "idle"
}

// Result of a single Advance.
type Result int

const (
	Moved Result = iota
	CannotMove
	TouchedForeignLine
)

func (r Result) String() string {
	switch r {
	case CannotMove:
		return "cannot move"
	case TouchedForeignLine:
		return "touched foreign line"
	}
	return "moved"
}

// Step reports what an Advance did. Edge is the edge the cutting entity is
// on afterwards and Pos its position.
type Step struct {
	Result Result
	Edge   mesh.EdgeID
	Pos    image.Point
}

// Collider answers questions about everything that is not part of the cut.
type Collider interface {
	// EdgeAt returns the first edge containing p.
	EdgeAt(p image.Point) (mesh.EdgeID, bool)

	// Split breaks e at p, returning the vertex there.
	Split(e mesh.EdgeID, p image.Point) (mesh.VertexID, error)

	// Inside is true if p is open space a cut may enter.
	Inside(p image.Point) bool
}

// Cut is a line being drawn through open space, one lattice step at a
// time. It starts on an existing edge, grows an open edge from its head
// and closes once it steps onto an edge that is not its own.
//
// All edges and vertices live in the arena; the cut only tracks which of
// them it owns. Not safe for concurrent use.
type Cut struct {
	arena *mesh.Arena

	state   State
	heading mesh.Direction

	start mesh.VertexID
	head  mesh.VertexID
	end   mesh.VertexID

	sealed  []mesh.EdgeID
	current mesh.EdgeID
	owned   map[mesh.EdgeID]bool
}

// New returns an idle cut working in arena a.
func New(a *mesh.Arena) *Cut {
	c := &Cut{arena: a}
	c.Reset()
	return c
}

// Reset returns the cut to Idle, forgetting its edges. The edges stay in
// the arena.
func (c *Cut) Reset() {
	c.state = Idle
	c.heading = mesh.NoDirection
	c.start, c.head, c.end = mesh.NoVertex, mesh.NoVertex, mesh.NoVertex
	c.sealed = []mesh.EdgeID{}
	c.current = mesh.NoEdge
	c.owned = map[mesh.EdgeID]bool{}
}

// Begin starts a cut from pos, which must be on an edge, towards heading.
// The step into open space must be possible, otherwise ErrIllegalMove is
// returned and nothing changes. On success the edge under pos is split to
// make the start vertex and the cut's head sits one step from it.
func (c *Cut) Begin(pos image.Point, heading mesh.Direction, col Collider) error {
	if c.state != Idle {
		return errors.Wrapf(ErrNotIdle, "cut is %s", c.state)
	}
	if !heading.Valid() {
		return errors.Wrapf(ErrIllegalMove, "heading %s", heading)
	}

	e, ok := col.EdgeAt(pos)
	if !ok {
		return errors.Wrapf(ErrIllegalMove, "(%d,%d) is not on an edge", pos.X, pos.Y)
	}
	target := pos.Add(heading.Delta())
	if on, hit := col.EdgeAt(target); hit {
		return errors.Wrapf(ErrIllegalMove, "(%d,%d) is on %s", target.X, target.Y, c.arena.Describe(on))
	}
	if !col.Inside(target) {
		return errors.Wrapf(ErrIllegalMove, "(%d,%d) is not open space", target.X, target.Y)
	}

	start, err := col.Split(e, pos)
	if err != nil {
		return err
	}

	head := c.arena.AddVertex(target)
	edge := c.arena.AddEdge(start, head)
	c.arena.Link(start, heading, edge)
	c.arena.Link(head, heading.Opposite(), edge)

	c.state = Cutting
	c.heading = heading
	c.start = start
	c.head = head
	c.current = edge
	c.owned[edge] = true
	return nil
}

// Advance moves the head one step towards heading.
//
// Reversing, stepping onto the cut itself or out of open space yields
// CannotMove. Stepping onto any other edge splits it there, joins the cut
// to the split vertex and closes the cut (TouchedForeignLine). Advancing a
// Closed cut is a programming error and panics.
func (c *Cut) Advance(heading mesh.Direction, col Collider) (Step, error) {
	switch c.state {
	case Closed:
		panic(fmt.Sprintf("advance %s on a closed cut", heading))
	case Idle:
		return Step{Result: CannotMove, Edge: mesh.NoEdge}, ErrIdle
	}

	pos := c.arena.Pos(c.head)
	stay := Step{Result: CannotMove, Edge: c.current, Pos: pos}
	if !heading.Valid() || heading == c.heading.Opposite() {
		return stay, nil
	}

	target := pos.Add(heading.Delta())
	if _, own := c.EdgeAt(target); own {
		return stay, nil
	}

	if e, hit := col.EdgeAt(target); hit {
		v, err := col.Split(e, target)
		if err != nil {
			return stay, err
		}
		c.join(v, heading)
		c.state = Closed
		c.end = v
		return Step{Result: TouchedForeignLine, Edge: c.current, Pos: target}, nil
	}

	if !col.Inside(target) {
		return stay, nil
	}

	if heading == c.heading {
		c.arena.MoveVertex(c.head, target)
	} else {
		c.turn(target, heading)
	}
	return Step{Result: Moved, Edge: c.current, Pos: target}, nil
}

// turn seals the open edge and starts a new one from the head.
func (c *Cut) turn(target image.Point, heading mesh.Direction) {
	next := c.arena.AddVertex(target)
	c.extend(next, heading)
}

// join attaches the head to v, a vertex on a foreign edge one step away.
func (c *Cut) join(v mesh.VertexID, heading mesh.Direction) {
	if heading != c.heading {
		c.extend(v, heading)
		return
	}
	c.arena.Repoint(c.current, c.head, v)
	c.arena.Link(v, heading.Opposite(), c.current)
	c.head = v
}

// extend seals the open edge and adds a new one from the head to v.
func (c *Cut) extend(v mesh.VertexID, heading mesh.Direction) {
	c.sealed = append(c.sealed, c.current)

	e := c.arena.AddEdge(c.head, v)
	c.arena.Link(c.head, heading, e)
	c.arena.Link(v, heading.Opposite(), e)

	c.current = e
	c.owned[e] = true
	c.head = v
	c.heading = heading
}

// State of the cut.
func (c *Cut) State() State {
	return c.state
}

// Heading of the open edge.
func (c *Cut) Heading() mesh.Direction {
	return c.heading
}

// Head is the vertex at the moving end of the cut.
func (c *Cut) Head() mesh.VertexID {
	return c.head
}

// Start is the vertex the cut left from.
func (c *Cut) Start() mesh.VertexID {
	return c.start
}

// End is the vertex the cut closed on, NoVertex until Closed.
func (c *Cut) End() mesh.VertexID {
	return c.end
}

// Current is the open edge (the last edge once Closed).
func (c *Cut) Current() mesh.EdgeID {
	return c.current
}

// Edges returns every edge of the cut from start to head.
func (c *Cut) Edges() []mesh.EdgeID {
	out := make([]mesh.EdgeID, 0, len(c.sealed)+1)
	out = append(out, c.sealed...)
	if c.current != mesh.NoEdge {
		out = append(out, c.current)
	}
	return out
}

// Owns is true if e belongs to this cut.
func (c *Cut) Owns(e mesh.EdgeID) bool {
	return c.owned[e]
}

// EdgeAt returns the first cut edge containing p, sealed edges first.
func (c *Cut) EdgeAt(p image.Point) (mesh.EdgeID, bool) {
	v := geom.FromPoint(p)
	for _, e := range c.Edges() {
		if c.arena.Segment(e).Contains(v) {
			return e, true
		}
	}
	return mesh.NoEdge, false
}

// IntersectsSegment returns the first cut edge sharing a point with a->b.
func (c *Cut) IntersectsSegment(a, b image.Point) (mesh.EdgeID, bool) {
	s := geom.Seg(a, b)
	for _, e := range c.Edges() {
		if c.arena.Segment(e).Intersects(s) {
			return e, true
		}
	}
	return mesh.NoEdge, false
}
