package mesh

import (
	"github.com/pkg/errors"
)

var (
	// ErrNotOnEdge is returned when splitting an edge at a point it does
	// not contain.
	ErrNotOnEdge = errors.New("point is not on edge")

	// ErrFreeEdge is returned when splitting an edge that is neither
	// horizontal nor vertical.
	ErrFreeEdge = errors.New("cannot split free edge")

	// ErrCorrupt is returned for inconsistent directional references or
	// snapshots that do not decode into a valid arena.
	ErrCorrupt = errors.New("corrupt arena")
)
