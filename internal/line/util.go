package line

import (
	"image"
)

// listPlot meets the Plotter interface by collecting every point.
type listPlot struct {
	pts []image.Point
}

// Plot records a new point on the line
func (l *listPlot) Plot(x, y int) {
	l.pts = append(l.pts, image.Pt(x, y))
}

// PointsBetween returns all points on a line between a,b in order from a.
func PointsBetween(a, b image.Point) []image.Point {
	lp := &listPlot{pts: []image.Point{}}
	bresenham(lp, a.X, a.Y, b.X, b.Y)
	return lp.pts
}

// Span is the run of x values [Min, Max] covered on one row.
type Span struct {
	Min, Max int
}

// Spans walks the closed outline through corners and returns, per row,
// the leftmost and rightmost point of the outline on that row. For a
// convex outline (eg. a triangle) the spans cover its lattice points, give
// or take the rounding along sloped sides.
func Spans(corners ...image.Point) map[int]Span {
	rows := map[int]Span{}
	plot := PlotFunc(func(x, y int) {
		s, ok := rows[y]
		if !ok {
			rows[y] = Span{Min: x, Max: x}
			return
		}
		if x < s.Min {
			s.Min = x
		}
		if x > s.Max {
			s.Max = x
		}
		rows[y] = s
	})
	for i, a := range corners {
		b := corners[(i+1)%len(corners)]
		bresenham(plot, a.X, a.Y, b.X, b.Y)
	}
	return rows
}
