// Package quix is the playfield of an area claiming arcade game.
//
// A Field starts as a bare rectangle. The player cuts new lines through
// open space starting from any edge; once a cut touches an edge again the
// shorter way back along existing edges closes a loop, and the region
// inside it is claimed. Edges and vertices live in an arena and are
// addressed by ID, so the graph can be cloned and snapshotted freely.
package quix

import (
	"github.com/pkg/errors"
	"github.com/toby1984/quix/internal/cut"
	"github.com/toby1984/quix/internal/mesh"
	"github.com/toby1984/quix/internal/polygon"
)

type (
	// VertexID addresses a vertex of the field.
	VertexID = mesh.VertexID

	// EdgeID addresses an edge of the field.
	EdgeID = mesh.EdgeID

	// Direction is a heading in screen coordinates (Up is -y).
	Direction = mesh.Direction

	// Step reports the outcome of advancing a cut.
	Step = cut.Step

	// Result is the kind of a Step.
	Result = cut.Result
)

const (
	NoVertex = mesh.NoVertex
	NoEdge   = mesh.NoEdge

	NoDirection = mesh.NoDirection
	Up          = mesh.Up
	Down        = mesh.Down
	Left        = mesh.Left
	Right       = mesh.Right

	Moved              = cut.Moved
	CannotMove         = cut.CannotMove
	TouchedForeignLine = cut.TouchedForeignLine
)

var (
	// ErrIllegalMove means a cut cannot start where or how it was asked to.
	ErrIllegalMove = cut.ErrIllegalMove

	// ErrMalformedLoop means a closed cut and its way back do not form a
	// loop. Indicates the graph was corrupted.
	ErrMalformedLoop = polygon.ErrMalformedLoop

	// ErrTriangulationFailed means a claimed region could not be split
	// into triangles. Indicates the graph was corrupted.
	ErrTriangulationFailed = polygon.ErrTriangulationFailed

	// ErrNoPath means the ends of a closed cut are not connected by the
	// settled edges. Indicates the graph was corrupted.
	ErrNoPath = errors.New("no path between cut ends")

	// ErrInvalidConfig is returned by New for unusable settings.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrNotCutting is returned when advancing without an open cut.
	ErrNotCutting = cut.ErrIdle
)
