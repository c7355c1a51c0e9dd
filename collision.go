package quix

import (
	"image"

	"github.com/pkg/errors"
	"github.com/toby1984/quix/internal/geom"
	"github.com/toby1984/quix/internal/mesh"
)

// collider looks at the settled edges first, then at the open cut.
type collider struct {
	f *Field
}

// EdgeAt returns the first edge containing p.
func (c *collider) EdgeAt(p image.Point) (EdgeID, bool) {
	if e, ok := c.f.perm.PointOnAnyEdge(p); ok {
		return e, true
	}
	return c.f.cut.EdgeAt(p)
}

// Split breaks a settled edge at p. Cut edges are never split.
func (c *collider) Split(e EdgeID, p image.Point) (VertexID, error) {
	if !c.f.perm.ContainsIdentity(e) {
		return NoVertex, errors.Errorf("cannot split %s, it is not settled", c.f.arena.Describe(e))
	}
	before := c.f.arena.NumVertices()
	v, err := c.f.perm.Split(e, p)
	if err != nil {
		return NoVertex, err
	}
	if c.f.arena.NumVertices() != before {
		Logger().Debug("split edge", "edge", c.f.arena.Describe(e), "at", p, "vertex", v)
	}
	return v, nil
}

// Inside is true for points on the field that are not claimed.
func (c *collider) Inside(p image.Point) bool {
	if p.X < 0 || p.Y < 0 || p.X > c.f.cfg.Width || p.Y > c.f.cfg.Height {
		return false
	}
	return !c.f.claimed.IsSet(p)
}

// IntersectsSegment returns the first edge sharing a point with a->b.
func (c *collider) IntersectsSegment(a, b image.Point) (EdgeID, bool) {
	if e, ok := c.f.perm.IntersectsSegment(a, b); ok {
		return e, true
	}
	return c.f.cut.IntersectsSegment(a, b)
}

// IntersectsEdge returns the first edge other than e sharing a point
// with it.
func (c *collider) IntersectsEdge(e EdgeID) (EdgeID, bool) {
	if o, ok := c.f.perm.IntersectsEdge(e); ok {
		return o, true
	}
	s := c.f.arena.Segment(e)
	for _, o := range c.f.cut.Edges() {
		if o != e && c.f.arena.Segment(o).Intersects(s) {
			return o, true
		}
	}
	return mesh.NoEdge, false
}

// edgeDist is the distance from p to edge e.
func (c *collider) edgeDist(e EdgeID, p image.Point) float64 {
	return c.f.arena.Segment(e).Dist(geom.FromPoint(p))
}
