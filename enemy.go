package quix

import (
	"image"

	"github.com/toby1984/quix/internal/geom"
	"github.com/unixpickle/essentials"
)

const (
	// spawnEdges is how many edges SpawnPoint tries before giving up.
	spawnEdges = 20

	// spawnCandidates is how many points SpawnPoint draws per edge.
	spawnCandidates = 8
)

// PointFilter accepts or rejects a candidate point.
type PointFilter func(p image.Point) bool

// MinDistanceFrom accepts points at least dist away from q.
func MinDistanceFrom(q image.Point, dist float64) PointFilter {
	return func(p image.Point) bool {
		return geom.Dist(geom.FromPoint(p), geom.FromPoint(q)) >= dist
	}
}

// AwayFromPlayer accepts points at least dist away from where the player
// is at the time of the call.
func (f *Field) AwayFromPlayer(dist float64) PointFilter {
	return MinDistanceFrom(f.player, dist)
}

// SpawnPoint picks a random point on a random settled edge that every
// filter accepts.
func (f *Field) SpawnPoint(filters ...PointFilter) (image.Point, EdgeID, bool) {
	edges := f.perm.Edges()
	for attempt := 0; attempt < spawnEdges && len(edges) > 0; attempt++ {
		e := edges[f.rng.Intn(len(edges))]
		a, b := f.arena.Points(e)

		candidates := make([]image.Point, spawnCandidates)
		for i := range candidates {
			candidates[i] = geom.Round(geom.Lerp(geom.FromPoint(a), geom.FromPoint(b), f.rng.Float64()))
		}
		for i := len(candidates) - 1; i >= 0; i-- {
			if !accepted(candidates[i], filters) {
				essentials.UnorderedDelete(&candidates, i)
			}
		}
		if len(candidates) > 0 {
			return candidates[0], e, true
		}
	}
	return image.Point{}, NoEdge, false
}

func accepted(p image.Point, filters []PointFilter) bool {
	for _, fn := range filters {
		if !fn(p) {
			return false
		}
	}
	return true
}

// Exits lists the directions in which v has an edge, up, left, right, down
// order, skipping the edge `ignored`.
func (f *Field) Exits(v VertexID, ignored EdgeID) []Direction {
	return f.arena.Exits(v, ignored)
}

// PickExit chooses where something arriving at v while moving towards
// heading goes next. It carries straight on when it can, unless a roll
// comes in under StraightBias; otherwise it takes any exit but the way it
// came, chosen uniformly. A dead end sends it back.
func (f *Field) PickExit(v VertexID, heading Direction) (Direction, EdgeID, bool) {
	ahead := f.arena.Exit(v, heading)
	if heading.Valid() && ahead != NoEdge && f.rng.Float64() >= f.cfg.StraightBias {
		return heading, ahead, true
	}

	exits := f.arena.Exits(v, NoEdge)
	choices := make([]Direction, 0, len(exits))
	for _, d := range exits {
		if !heading.Valid() || d != heading.Opposite() {
			choices = append(choices, d)
		}
	}
	if len(choices) == 0 {
		choices = exits
	}
	if len(choices) == 0 {
		return NoDirection, NoEdge, false
	}

	d := choices[f.rng.Intn(len(choices))]
	return d, f.arena.Exit(v, d), true
}
