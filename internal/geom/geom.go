package geom

import (
	"image"
	"math"

	"github.com/golang/geo/r2"
)

const (
	// Epsilon is the tolerance for collinearity, parallel slopes and equal
	// intercepts.
	Epsilon = 1e-5

	// slack widens interval checks so that crossings computed exactly at a
	// segment end are not lost to rounding.
	slack = 1e-7
)

// Vec is a 2D position or displacement.
type Vec = r2.Point

// V is shorthand for Vec{X: x, Y: y}
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// FromPoint converts a lattice point.
func FromPoint(p image.Point) Vec {
	return Vec{X: float64(p.X), Y: float64(p.Y)}
}

// Round returns the nearest lattice point.
func Round(v Vec) image.Point {
	return image.Pt(int(math.Round(v.X)), int(math.Round(v.Y)))
}

// Dist is the euclidean distance between a & b
func Dist(a, b Vec) float64 {
	return a.Sub(b).Norm()
}

// Dist2 is the squared euclidean distance between a & b
func Dist2(a, b Vec) float64 {
	d := a.Sub(b)
	return d.Dot(d)
}

// PointDist2 is Dist2 over lattice points, kept in integers.
func PointDist2(a, b image.Point) int {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx + dy*dy
}

// Lerp returns a + (b-a)*t
func Lerp(a, b Vec, t float64) Vec {
	return a.Add(b.Sub(a).Mul(t))
}

// SignedArea is the shoelace area of the closed loop pts. The sign follows
// the winding order; positive means the cross products of consecutive
// sides are positive.
func SignedArea(pts []Vec) float64 {
	if len(pts) < 3 {
		return 0
	}
	sum := 0.0
	prev := pts[len(pts)-1]
	for _, p := range pts {
		sum += prev.Cross(p)
		prev = p
	}
	return sum / 2
}

// Turn is the cross product of (b-a) and (c-b); positive when a->b->c bends
// the same way as a loop with positive SignedArea.
func Turn(a, b, c Vec) float64 {
	return b.Sub(a).Cross(c.Sub(b))
}
