package quix

import (
	"image"

	"github.com/boljen/go-bitmap"
	"github.com/toby1984/quix/internal/line"
)

// claimMap holds one bit per lattice point of the field, set once the
// point is inside (or on the boundary of) a claimed region.
type claimMap struct {
	// lattice runs (0,0) to bounds.Max inclusive
	bounds image.Rectangle
	bits   bitmap.Bitmap
	count  int
}

func newClaimMap(width, height int) *claimMap {
	return &claimMap{
		bounds: image.Rect(0, 0, width, height),
		bits:   bitmap.New((width + 1) * (height + 1)),
	}
}

// index of p in bits, false if p is off the field.
func (c *claimMap) index(p image.Point) (int, bool) {
	if p.X < 0 || p.Y < 0 || p.X > c.bounds.Max.X || p.Y > c.bounds.Max.Y {
		return 0, false
	}
	return p.Y*(c.bounds.Max.X+1) + p.X, true
}

// IsSet returns if p is claimed. Points off the field never are.
func (c *claimMap) IsSet(p image.Point) bool {
	i, ok := c.index(p)
	return ok && c.bits.Get(i)
}

func (c *claimMap) set(p image.Point) {
	i, ok := c.index(p)
	if !ok || c.bits.Get(i) {
		return
	}
	c.bits.Set(i, true)
	c.count++
}

// fill marks every lattice point of the triangles. Triangles of one
// region share their sloped sides, so rounding along those sides stays
// inside the region.
func (c *claimMap) fill(ts []Triangle) {
	for _, t := range ts {
		for y, span := range line.Spans(t.Points[:]...) {
			for x := span.Min; x <= span.Max; x++ {
				c.set(image.Pt(x, y))
			}
		}
	}
}

// Count is the number of claimed lattice points.
func (c *claimMap) Count() int {
	return c.count
}
