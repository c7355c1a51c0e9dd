package polygon

import (
	"image"
	"math"

	"github.com/pkg/errors"
	"github.com/toby1984/quix/internal/geom"
	"github.com/toby1984/quix/internal/mesh"
)

// ChordShrink is how far, as a fraction of its length, the chord of a
// candidate ear is pulled in at each end before testing it against the
// polygon. On lattice polygons with axis aligned sides the shrunk chord
// stays clear of every side it does not actually cross.
const ChordShrink = 1e-3

// Triangle is one piece of a triangulated polygon.
type Triangle struct {
	Points   [3]image.Point
	Vertices [3]mesh.VertexID
}

// Area of the triangle.
func (t Triangle) Area() float64 {
	a, b, c := geom.FromPoint(t.Points[0]), geom.FromPoint(t.Points[1]), geom.FromPoint(t.Points[2])
	return math.Abs(geom.SignedArea([]geom.Vec{a, b, c}))
}

// TotalArea sums the areas of the given triangles.
func TotalArea(ts []Triangle) float64 {
	sum := 0.0
	for _, t := range ts {
		sum += t.Area()
	}
	return sum
}

// working is the shrinking copy of a polygon during ear clipping.
type working struct {
	points []image.Point
	ids    []mesh.VertexID
	loop   ring
}

// Triangulate splits the polygon into Len()-2 triangles by ear clipping.
//
// A vertex is clipped when it is strictly convex and the chord between its
// neighbours, shrunk by ChordShrink, crosses no side of what is left of the
// polygon with both chord ends strictly inside it. Ears are searched from
// the first vertex forwards, falling back to a backwards search, and the
// search restarts after every clip.
func (p *Polygon) Triangulate() ([]Triangle, error) {
	w := &working{
		points: append([]image.Point{}, p.Points...),
		ids:    append([]mesh.VertexID{}, p.Vertices...),
		loop:   ring(p.vecs()),
	}

	out := make([]Triangle, 0, len(p.Points)-2)
	for len(w.points) > 3 {
		i, ok := w.findEar(false)
		if !ok {
			i, ok = w.findEar(true)
		}
		if !ok {
			return nil, errors.Wrapf(ErrTriangulationFailed, "no ear among %d remaining vertices of %s", len(w.points), p)
		}
		out = append(out, w.triangle(i))
		w.remove(i)
	}
	return append(out, w.triangle(1)), nil
}

func (w *working) findEar(backwards bool) (int, bool) {
	n := len(w.points)
	for k := 0; k < n; k++ {
		i := k
		if backwards {
			i = n - 1 - k
		}
		if w.isEar(i) {
			return i, true
		}
	}
	return 0, false
}

func (w *working) neighbours(i int) (int, int) {
	n := len(w.points)
	return (i + n - 1) % n, (i + 1) % n
}

func (w *working) isEar(i int) bool {
	prev, next := w.neighbours(i)
	a, b, c := w.loop[prev], w.loop[i], w.loop[next]
	if geom.Turn(a, b, c) <= 0 {
		return false
	}

	chord := geom.Segment{A: a, B: c}.Shrink(ChordShrink)
	for _, side := range w.loop.edges() {
		if side.Intersects(chord) {
			return false
		}
	}
	return w.loop.strictlyContains(chord.A) && w.loop.strictlyContains(chord.B)
}

func (w *working) triangle(i int) Triangle {
	prev, next := w.neighbours(i)
	return Triangle{
		Points:   [3]image.Point{w.points[prev], w.points[i], w.points[next]},
		Vertices: [3]mesh.VertexID{w.ids[prev], w.ids[i], w.ids[next]},
	}
}

func (w *working) remove(i int) {
	w.points = append(w.points[:i], w.points[i+1:]...)
	w.ids = append(w.ids[:i], w.ids[i+1:]...)
	w.loop = append(w.loop[:i], w.loop[i+1:]...)
}
