package mesh

import (
	"image"
)

// Direction is one of the four axis aligned headings, in screen
// coordinates (Up is -y).
type Direction int

const (
	NoDirection Direction = iota
	Up
	Down
	Left
	Right
)

// Directions lists the real headings in neighbour enumeration order.
var Directions = [...]Direction{Up, Left, Right, Down}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	return NoDirection
}

// Delta is the unit step for this heading.
func (d Direction) Delta() image.Point {
	switch d {
	case Up:
		return image.Pt(0, -1)
	case Down:
		return image.Pt(0, 1)
	case Left:
		return image.Pt(-1, 0)
	case Right:
		return image.Pt(1, 0)
	}
	return image.Point{}
}

func (d Direction) IsHorizontal() bool {
	return d == Left || d == Right
}

func (d Direction) IsVertical() bool {
	return d == Up || d == Down
}

// Valid is true for the four real headings.
func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "none"
}

// towards returns the heading that leads from a to b when the two points
// share an axis.
func towards(a, b image.Point) Direction {
	switch {
	case a.X == b.X && b.Y < a.Y:
		return Up
	case a.X == b.X && b.Y > a.Y:
		return Down
	case a.Y == b.Y && b.X < a.X:
		return Left
	case a.Y == b.Y && b.X > a.X:
		return Right
	}
	return NoDirection
}
