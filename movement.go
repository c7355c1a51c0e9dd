package quix

import (
	"github.com/pkg/errors"
	"github.com/toby1984/quix/internal/geom"
)

// Move is one tick of player input. While a cut is open it is advanced
// regardless of mode. Otherwise a cutting mode tries to begin a cut towards
// dir and falls back to walking when that is not possible; ModeMove only
// walks along the edges.
//
// Returns whether the player moved. Claims made on the way are available
// from Claims.
func (f *Field) Move(dir Direction, mode Mode) (bool, error) {
	if f.IsCutting() {
		step, _, err := f.AdvanceCut(dir)
		return step.Result != CannotMove, err
	}

	if mode.cutting() {
		err := f.BeginCut(f.player, dir, mode)
		if err == nil {
			return true, nil
		}
		if !errors.Is(err, ErrIllegalMove) {
			return false, err
		}
	}
	return f.walk(dir), nil
}

// walk steps the player one unit along the edges. At a vertex any exit may
// be taken, between vertices only the edge's own axis is open.
func (f *Field) walk(dir Direction) bool {
	if !dir.Valid() {
		return false
	}

	// splits elsewhere may have moved the player onto a new edge
	e := f.playerEdge
	if e == NoEdge || !f.arena.Segment(e).Contains(geom.FromPoint(f.player)) {
		var ok bool
		if e, ok = f.perm.PointOnAnyEdge(f.player); !ok {
			return false
		}
	}
	if v, ok := f.arena.EndpointAt(e, f.player); ok {
		e = f.arena.Exit(v, dir)
		if e == NoEdge {
			return false
		}
	}

	target := f.player.Add(dir.Delta())
	if !f.arena.Segment(e).Contains(geom.FromPoint(target)) {
		return false
	}
	f.player = target
	f.playerEdge = e
	return true
}
