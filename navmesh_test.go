package quix

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toby1984/quix/internal/astar"
)

type closedIDs map[int]bool

func (c closedIDs) Contains(id int) bool {
	return c[id]
}

func TestNavMeshNeighbours(t *testing.T) {
	f := newTestField(t)
	top, ok := f.ClosestEdgeTo(image.Pt(320, 0))
	require.True(t, ok)

	// border corners: 0 nw, 1 ne, 2 se, 3 sw
	nav := &navMesh{arena: f.arena}
	assert.Equal(t, []int{1, 3}, nav.Neighbours(0, closedIDs{}))
	assert.Equal(t, []int{1}, nav.Neighbours(0, closedIDs{3: true}))
	assert.Equal(t, []int{0, 2}, nav.Neighbours(3, closedIDs{}))

	nav.forbidden = func(e EdgeID) bool { return e == top }
	assert.Equal(t, []int{3}, nav.Neighbours(0, closedIDs{}))

	assert.Equal(t, 640*640, nav.Cost(0, 1))
	assert.Equal(t, nav.Cost(1, 2), nav.Heuristic(1, 2))
}

func TestNavMeshPath(t *testing.T) {
	f := newTestField(t)
	nav := &navMesh{arena: f.arena}

	path := astar.New().FindPath(0, 2, nav)
	require.Len(t, path, 3)
	assert.Equal(t, 0, path[0])
	assert.Equal(t, 2, path[2])

	top, _ := f.ClosestEdgeTo(image.Pt(320, 0))
	left, _ := f.ClosestEdgeTo(image.Pt(0, 240))
	nav.forbidden = func(e EdgeID) bool { return e == top || e == left }
	assert.Nil(t, astar.New().FindPath(0, 2, nav))
}
