package line

// Plotter receives the lattice points of a walk.
type Plotter interface {
	Plot(x, y int)
}

// PlotFunc adapts a function to Plotter.
type PlotFunc func(x, y int)

// Plot calls f(x, y)
func (f PlotFunc) Plot(x, y int) {
	f(x, y)
}

// bresenham plots every lattice point from (x1,y1) to (x2,y2), both ends
// included, stepping one unit along the major axis at a time.
func bresenham(p Plotter, x1, y1, x2, y2 int) {
	dx, sx := abs(x2-x1), sign(x2-x1)
	dy, sy := -abs(y2-y1), sign(y2-y1)
	e := dx + dy

	for {
		p.Plot(x1, y1)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x1 += sx
		}
		if e2 <= dx {
			e += dx
			y1 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
