package geom

import (
	"image"
	"math"

	"github.com/golang/geo/r2"
)

// Segment is a closed line segment between A and B.
type Segment struct {
	A, B Vec
}

// Seg builds a Segment from two lattice points.
func Seg(a, b image.Point) Segment {
	return Segment{A: FromPoint(a), B: FromPoint(b)}
}

// IsVertical is true when both ends share an x coordinate (this includes
// degenerate single point segments).
func (s Segment) IsVertical() bool {
	return s.A.X == s.B.X
}

// IsHorizontal is true when both ends share a y coordinate.
func (s Segment) IsHorizontal() bool {
	return s.A.Y == s.B.Y
}

// Slope of the segment, 0 for vertical segments.
func (s Segment) Slope() float64 {
	if s.IsVertical() {
		return 0
	}
	return (s.B.Y - s.A.Y) / (s.B.X - s.A.X)
}

// intercept of y = mx + c.
func (s Segment) intercept(m float64) float64 {
	return s.A.Y - m*s.A.X
}

// Length of the segment.
func (s Segment) Length() float64 {
	return Dist(s.A, s.B)
}

// Bounds returns the bounding rectangle.
func (s Segment) Bounds() r2.Rect {
	return r2.RectFromPoints(s.A, s.B)
}

// Shrink pulls both ends toward each other by f of the segment's length.
// Axis aligned segments stay exactly axis aligned.
func (s Segment) Shrink(f float64) Segment {
	d := s.B.Sub(s.A).Mul(f)
	return Segment{A: s.A.Add(d), B: s.B.Sub(d)}
}

// Contains reports whether p lies on the segment. Axis aligned segments use
// an exact range test, anything else allows Epsilon of perpendicular
// distance.
func (s Segment) Contains(p Vec) bool {
	switch {
	case s.IsVertical():
		return p.X == s.A.X && within(p.Y, s.A.Y, s.B.Y, 0)
	case s.IsHorizontal():
		return p.Y == s.A.Y && within(p.X, s.A.X, s.B.X, 0)
	}
	if !s.Bounds().ExpandedByMargin(Epsilon).ContainsPoint(p) {
		return false
	}
	d := s.B.Sub(s.A)
	return math.Abs(d.Cross(p.Sub(s.A)))/d.Norm() < Epsilon
}

// Intersects reports whether the two segments share at least one point.
// Parallel overlapping segments intersect, as do segments that only share
// an end.
func (s Segment) Intersects(o Segment) bool {
	if s.A == o.A || s.A == o.B || s.B == o.A || s.B == o.B {
		return true
	}

	sv, ov := s.IsVertical(), o.IsVertical()
	switch {
	case sv && ov:
		return s.A.X == o.A.X && overlaps(s.A.Y, s.B.Y, o.A.Y, o.B.Y)
	case sv:
		return crossesVertical(s, o)
	case ov:
		return crossesVertical(o, s)
	}

	// x range both segments cover
	lo := math.Max(math.Min(s.A.X, s.B.X), math.Min(o.A.X, o.B.X))
	hi := math.Min(math.Max(s.A.X, s.B.X), math.Max(o.A.X, o.B.X))
	if lo > hi+slack {
		return false
	}

	m1, m2 := s.Slope(), o.Slope()
	c1, c2 := s.intercept(m1), o.intercept(m2)
	if math.Abs(m1-m2) < Epsilon {
		return math.Abs(c1-c2) < Epsilon
	}

	x := (c2 - c1) / (m1 - m2)
	return x >= lo-slack && x <= hi+slack
}

// crossesVertical tests vertical segment v against non vertical n by
// evaluating n at v's x.
func crossesVertical(v, n Segment) bool {
	x := v.A.X
	if !within(x, n.A.X, n.B.X, slack) {
		return false
	}
	y := n.A.Y + n.Slope()*(x-n.A.X)
	return within(y, v.A.Y, v.B.Y, slack)
}

// within is true if v lies in [min(a,b)-pad, max(a,b)+pad]
func within(v, a, b, pad float64) bool {
	if a > b {
		a, b = b, a
	}
	return v >= a-pad && v <= b+pad
}

// overlaps is true if ranges [a0,a1] and [b0,b1] share a value.
func overlaps(a0, a1, b0, b1 float64) bool {
	return math.Max(math.Min(a0, a1), math.Min(b0, b1)) <= math.Min(math.Max(a0, a1), math.Max(b0, b1))
}

// Dist is the distance from p to the nearest point of the segment.
func (s Segment) Dist(p Vec) float64 {
	d := s.B.Sub(s.A)
	l2 := d.Dot(d)
	if l2 == 0 {
		return Dist(p, s.A)
	}
	t := math.Max(0, math.Min(1, p.Sub(s.A).Dot(d)/l2))
	return Dist(p, Lerp(s.A, s.B, t))
}
