package polygon

import (
	"fmt"
	"image"
	"strings"

	"github.com/pkg/errors"
	"github.com/toby1984/quix/internal/geom"
	"github.com/toby1984/quix/internal/mesh"
)

var (
	// ErrMalformedLoop is returned when edges or points do not form a
	// closed loop of at least three distinct vertices.
	ErrMalformedLoop = errors.New("malformed loop")

	// ErrTriangulationFailed is returned when ear clipping runs out of ears.
	ErrTriangulationFailed = errors.New("triangulation failed")
)

// A Polygon is a simple closed loop of lattice points. The last point
// joins back to the first. Points are ordered so that the shoelace area
// is positive.
type Polygon struct {
	Points []image.Point

	// Vertices parallels Points; mesh.NoVertex where a point did not come
	// from an arena.
	Vertices []mesh.VertexID
}

// New creates a polygon from a bare list of points.
func New(points []image.Point) (*Polygon, error) {
	ids := make([]mesh.VertexID, len(points))
	for i := range ids {
		ids[i] = mesh.NoVertex
	}
	return build(points, ids)
}

// FromEdges chains the edges of a closed loop into a polygon. Edges must be
// given in loop order but each may run either way. Consecutive edges join
// where they share a vertex, or failing that a vertex position, so that
// distinct vertices stacked at one point are treated as one.
func FromEdges(a *mesh.Arena, edges []mesh.EdgeID) (*Polygon, error) {
	if len(edges) < 3 {
		return nil, errors.Wrapf(ErrMalformedLoop, "%d edges %s", len(edges), a.DescribeAll(edges))
	}

	type end struct {
		v mesh.VertexID
		p image.Point
	}
	endsOf := func(e mesh.EdgeID) (end, end) {
		ed := a.Edge(e)
		return end{ed.A, a.Pos(ed.A)}, end{ed.B, a.Pos(ed.B)}
	}
	same := func(x, y end) bool {
		return x.v == y.v || x.p == y.p
	}

	// orient the first edge towards the second
	s0, t0 := endsOf(edges[0])
	s1, t1 := endsOf(edges[1])
	if !same(t0, s1) && !same(t0, t1) {
		s0, t0 = t0, s0
	}

	points := []image.Point{s0.p}
	ids := []mesh.VertexID{s0.v}
	cur := t0
	for i, e := range edges[1:] {
		s, t := endsOf(e)
		switch {
		case same(cur, s):
		case same(cur, t):
			s, t = t, s
		default:
			return nil, errors.Wrapf(ErrMalformedLoop, "edge %d does not join the previous one %s", i+1, a.DescribeAll(edges))
		}
		points = append(points, s.p)
		ids = append(ids, s.v)
		cur = t
	}
	if !same(cur, s0) {
		return nil, errors.Wrapf(ErrMalformedLoop, "loop is not closed %s", a.DescribeAll(edges))
	}

	p, err := build(points, ids)
	if err != nil {
		return nil, errors.Wrap(err, a.DescribeAll(edges))
	}
	return p, nil
}

// build drops repeated points and fixes the winding.
func build(points []image.Point, ids []mesh.VertexID) (*Polygon, error) {
	p := &Polygon{Points: []image.Point{}, Vertices: []mesh.VertexID{}}
	for i, pt := range points {
		if n := len(p.Points); n > 0 && p.Points[n-1] == pt {
			continue
		}
		p.Points = append(p.Points, pt)
		p.Vertices = append(p.Vertices, ids[i])
	}
	for len(p.Points) > 1 && p.Points[0] == p.Points[len(p.Points)-1] {
		p.Points = p.Points[:len(p.Points)-1]
		p.Vertices = p.Vertices[:len(p.Vertices)-1]
	}

	if len(p.Points) < 3 {
		return nil, errors.Wrapf(ErrMalformedLoop, "%d distinct points %s", len(p.Points), p)
	}

	area := geom.SignedArea(p.vecs())
	if area == 0 {
		return nil, errors.Wrapf(ErrMalformedLoop, "zero area %s", p)
	}
	if area < 0 {
		p.reverse()
	}
	return p, nil
}

func (p *Polygon) reverse() {
	for i, j := 0, len(p.Points)-1; i < j; i, j = i+1, j-1 {
		p.Points[i], p.Points[j] = p.Points[j], p.Points[i]
		p.Vertices[i], p.Vertices[j] = p.Vertices[j], p.Vertices[i]
	}
}

func (p *Polygon) vecs() []geom.Vec {
	out := make([]geom.Vec, len(p.Points))
	for i, pt := range p.Points {
		out[i] = geom.FromPoint(pt)
	}
	return out
}

// Len is the number of vertices.
func (p *Polygon) Len() int {
	return len(p.Points)
}

// Area enclosed by the polygon.
func (p *Polygon) Area() float64 {
	return geom.SignedArea(p.vecs())
}

// Bounds returns the highest & lowest x & y values from the Points in this polygon.
func (p *Polygon) Bounds() image.Rectangle {
	first := p.Points[0]
	x0, y0, x1, y1 := first.X, first.Y, first.X, first.Y

	for _, pt := range p.Points[1:] {
		if pt.X < x0 {
			x0 = pt.X
		} else if pt.X > x1 {
			x1 = pt.X
		}

		if pt.Y < y0 {
			y0 = pt.Y
		} else if pt.Y > y1 {
			y1 = pt.Y
		}
	}

	return image.Rect(x0, y0, x1, y1)
}

// Edges returns the sides of the polygon, the i-th running from point i
// to point i+1.
func (p *Polygon) Edges() []geom.Segment {
	return ring(p.vecs()).edges()
}

// Contains is true if v is strictly inside the polygon; points on the
// boundary are not contained.
func (p *Polygon) Contains(v geom.Vec) bool {
	return ring(p.vecs()).strictlyContains(v)
}

func (p *Polygon) String() string {
	parts := make([]string, len(p.Points))
	for i, pt := range p.Points {
		parts[i] = fmt.Sprintf("%d(%d,%d)", p.Vertices[i], pt.X, pt.Y)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// ring is a closed loop of float points.
type ring []geom.Vec

func (r ring) edges() []geom.Segment {
	out := make([]geom.Segment, len(r))
	for i := range r {
		out[i] = geom.Segment{A: r[i], B: r[(i+1)%len(r)]}
	}
	return out
}

// strictlyContains tests v against every side, then counts crossings of a
// ray cast from left of the loop to v. A side counts when it straddles
// v's y with one end strictly above, so vertices on the ray are counted
// once.
func (r ring) strictlyContains(v geom.Vec) bool {
	inside := false
	for _, s := range r.edges() {
		if s.Contains(v) {
			return false
		}
		if crossesRay(v, s) {
			inside = !inside
		}
	}
	return inside
}

// crossesRay is true if s crosses the horizontal ray running from -inf to v.
func crossesRay(v geom.Vec, s geom.Segment) bool {
	if (s.A.Y > v.Y) == (s.B.Y > v.Y) {
		return false
	}
	x := s.A.X + (v.Y-s.A.Y)*(s.B.X-s.A.X)/(s.B.Y-s.A.Y)
	return x < v.X
}
