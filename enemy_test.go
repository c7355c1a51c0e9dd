package quix

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toby1984/quix/internal/geom"
)

func biasedField(t *testing.T, bias float64) *Field {
	cfg := DefaultConfig()
	cfg.Seed = 7
	cfg.StraightBias = bias
	f, err := New(cfg)
	require.NoError(t, err)
	return f
}

func TestExits(t *testing.T) {
	f := newTestField(t)

	nw, ok := f.ClosestVertexTo(image.Pt(0, 0))
	require.True(t, ok)
	assert.Equal(t, []Direction{Right, Down}, f.Exits(nw, NoEdge))

	top, ok := f.ClosestEdgeTo(image.Pt(320, 0))
	require.True(t, ok)
	assert.Equal(t, []Direction{Down}, f.Exits(nw, top))
}

func TestPickExit(t *testing.T) {
	// a T junction: left, right and down out of (100,0)
	junction := func(f *Field) VertexID {
		drawCut(t, f, image.Pt(100, 0), Down, ModeFast, 478)
		v, ok := f.ClosestVertexTo(image.Pt(100, 0))
		require.True(t, ok)
		require.Equal(t, []Direction{Left, Right, Down}, f.Exits(v, NoEdge))
		return v
	}

	t.Run("always straight", func(t *testing.T) {
		f := biasedField(t, 0)
		v := junction(f)
		for i := 0; i < 50; i++ {
			d, e, ok := f.PickExit(v, Right)
			require.True(t, ok)
			assert.Equal(t, Right, d)
			assert.Equal(t, f.arena.Exit(v, Right), e)
		}
	})

	t.Run("always roll", func(t *testing.T) {
		f := biasedField(t, 1)
		v := junction(f)
		seen := map[Direction]int{}
		for i := 0; i < 100; i++ {
			d, e, ok := f.PickExit(v, Right)
			require.True(t, ok)
			assert.Equal(t, f.arena.Exit(v, d), e)
			seen[d]++
		}
		assert.Zero(t, seen[Left], "never back the way it came")
		assert.NotZero(t, seen[Right])
		assert.NotZero(t, seen[Down])
	})

	t.Run("no straight exit", func(t *testing.T) {
		f := biasedField(t, 0)
		v := junction(f)
		for i := 0; i < 20; i++ {
			d, _, ok := f.PickExit(v, Up)
			require.True(t, ok)
			assert.Contains(t, []Direction{Left, Right}, d)
		}
	})

	t.Run("dead end", func(t *testing.T) {
		f := biasedField(t, 0)
		require.NoError(t, f.BeginCut(image.Pt(100, 0), Down, ModeFast))
		head, ok := f.ClosestVertexTo(image.Pt(100, 1))
		require.True(t, ok)
		require.Equal(t, image.Pt(100, 1), f.VertexPos(head))

		d, e, ok := f.PickExit(head, Down)
		require.True(t, ok)
		assert.Equal(t, Up, d)
		assert.True(t, f.IsCutEdge(e))
	})

	t.Run("no edges", func(t *testing.T) {
		f := biasedField(t, 0)
		drawCut(t, f, image.Pt(100, 0), Down, ModeFast, 478)
		// the head of the cut was left behind when it joined the bottom edge
		orphan := VertexID(5)
		require.Equal(t, image.Pt(100, 479), f.VertexPos(orphan))

		_, _, ok := f.PickExit(orphan, Down)
		assert.False(t, ok)
	})
}

func TestSpawnPoint(t *testing.T) {
	f := newTestField(t)

	for i := 0; i < 20; i++ {
		p, e, ok := f.SpawnPoint(f.AwayFromPlayer(f.cfg.SpawnDistance))
		require.True(t, ok)
		assert.True(t, f.arena.Segment(e).Contains(geom.FromPoint(p)), "%v on %s", p, f.arena.Describe(e))
		assert.GreaterOrEqual(t, geom.Dist(geom.FromPoint(p), geom.FromPoint(image.Pt(320, 480))), 30.0)
	}

	_, _, ok := f.SpawnPoint(func(image.Point) bool { return false })
	assert.False(t, ok)

	near := MinDistanceFrom(image.Pt(0, 0), 10)
	assert.False(t, near(image.Pt(6, 7)))
	assert.True(t, near(image.Pt(6, 8)))
}
