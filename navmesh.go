package quix

import (
	"github.com/toby1984/quix/internal/astar"
	"github.com/toby1984/quix/internal/geom"
	"github.com/toby1984/quix/internal/mesh"
)

// navMesh lets the path search walk the vertices of an arena along their
// directional references. Edges for which forbidden is true are skipped.
//
// Both heuristic and cost are squared distances: they order paths the same
// way real distances would for single axis aligned hops.
type navMesh struct {
	arena     *mesh.Arena
	forbidden func(EdgeID) bool
}

func (n *navMesh) dist2(a, b int) int {
	return geom.PointDist2(n.arena.Pos(VertexID(a)), n.arena.Pos(VertexID(b)))
}

func (n *navMesh) Heuristic(a, b int) int {
	return n.dist2(a, b)
}

func (n *navMesh) Cost(a, b int) int {
	return n.dist2(a, b)
}

// Neighbours visits the up, left, right and down references in that order.
func (n *navMesh) Neighbours(node int, closed astar.Closed) []int {
	v := VertexID(node)
	out := make([]int, 0, 4)
	for _, d := range mesh.Directions {
		e := n.arena.Exit(v, d)
		if e == NoEdge || (n.forbidden != nil && n.forbidden(e)) {
			continue
		}
		next := int(n.arena.Other(e, v))
		if closed.Contains(next) {
			continue
		}
		out = append(out, next)
	}
	return out
}
