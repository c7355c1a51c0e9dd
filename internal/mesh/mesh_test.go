package mesh

import (
	"image"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// border builds the four edges of a w x h rectangle, wired the way a new
// field is. Returns top, right, bottom, left.
func border(w, h int) (*Arena, *Collection, [4]EdgeID) {
	a := NewArena()
	nw := a.AddVertex(image.Pt(0, 0))
	ne := a.AddVertex(image.Pt(w, 0))
	se := a.AddVertex(image.Pt(w, h))
	sw := a.AddVertex(image.Pt(0, h))

	top := a.AddEdge(nw, ne)
	right := a.AddEdge(ne, se)
	bottom := a.AddEdge(sw, se)
	left := a.AddEdge(nw, sw)

	a.Link(nw, Right, top)
	a.Link(nw, Down, left)
	a.Link(ne, Left, top)
	a.Link(ne, Down, right)
	a.Link(se, Up, right)
	a.Link(se, Left, bottom)
	a.Link(sw, Right, bottom)
	a.Link(sw, Up, left)

	c := NewCollection(a)
	c.AddAll(top, right, bottom, left)
	return a, c, [4]EdgeID{top, right, bottom, left}
}

func TestDirection(t *testing.T) {
	for _, d := range Directions {
		assert.Equal(t, d, d.Opposite().Opposite())
		assert.Equal(t, image.Point{}, d.Delta().Add(d.Opposite().Delta()))
		assert.NotEqual(t, d.IsHorizontal(), d.IsVertical())
		assert.True(t, d.Valid())
	}
	assert.Equal(t, NoDirection, NoDirection.Opposite())
	assert.False(t, NoDirection.Valid())
	assert.Equal(t, image.Pt(0, -1), Up.Delta())
	assert.Equal(t, "left", Left.String())
}

func TestBorder(t *testing.T) {
	a, c, edges := border(640, 480)
	require.NoError(t, a.Check())
	assert.Equal(t, 4, c.Len())

	top, right := edges[0], edges[1]
	assert.Equal(t, Horizontal, a.Orientation(top))
	assert.Equal(t, Vertical, a.Orientation(right))
	assert.Equal(t, image.Pt(0, 0), a.Pos(a.Left(top)))
	assert.Equal(t, image.Pt(640, 0), a.Pos(a.Right(top)))
	assert.Equal(t, image.Pt(640, 0), a.Pos(a.Top(right)))
	assert.Equal(t, image.Pt(640, 480), a.Pos(a.Bottom(right)))

	assert.Equal(t, []Direction{Right, Down}, a.Exits(0, NoEdge))
	assert.Equal(t, []Direction{Down}, a.Exits(0, top))
	assert.Equal(t, 1, a.ExitCount(0, top))

	assert.Panics(t, func() { a.Left(right) })
	assert.Panics(t, func() { a.Other(top, 2) })
}

func TestLinkValidates(t *testing.T) {
	a, _, edges := border(10, 10)
	top, left := edges[0], edges[3]

	// top does not touch the south east corner
	assert.Panics(t, func() { a.Link(2, Left, top) })
	// left leaves the north west corner downwards
	assert.Panics(t, func() { a.Link(0, Up, left) })
	assert.Panics(t, func() { a.Link(0, NoDirection, left) })

	a.Link(0, Down, NoEdge)
	assert.Equal(t, NoEdge, a.Exit(0, Down))
	a.Link(0, Down, left)
	assert.Equal(t, left, a.Exit(0, Down))
}

func TestQueries(t *testing.T) {
	a, c, edges := border(640, 480)
	top, right, bottom, left := edges[0], edges[1], edges[2], edges[3]

	e, ok := c.PointOnAnyEdge(image.Pt(100, 0))
	require.True(t, ok)
	assert.Equal(t, top, e)

	// corners belong to the first edge in insertion order
	e, ok = c.PointOnAnyEdge(image.Pt(640, 480))
	require.True(t, ok)
	assert.Equal(t, right, e)

	_, ok = c.PointOnAnyEdge(image.Pt(100, 1))
	assert.False(t, ok)

	e, ok = c.IntersectsSegment(image.Pt(100, 470), image.Pt(100, 490))
	require.True(t, ok)
	assert.Equal(t, bottom, e)

	_, ok = c.IntersectsSegment(image.Pt(1, 1), image.Pt(600, 400))
	assert.False(t, ok)

	e, ok = c.IntersectsEdge(top)
	require.True(t, ok)
	assert.Equal(t, right, e)

	e, ok = c.FindEdge(3, 0)
	require.True(t, ok)
	assert.Equal(t, left, e)

	_, ok = c.FindEdge(0, 2)
	assert.False(t, ok)

	assert.True(t, c.ContainsIdentity(left))

	// an identical edge elsewhere in the arena is a different identity
	twin := a.AddEdge(0, 1)
	assert.False(t, c.ContainsIdentity(twin))

	c.Clear()
	assert.Equal(t, 0, c.Len())
	assert.False(t, c.ContainsIdentity(left))
}

func TestSplitHorizontal(t *testing.T) {
	a, c, edges := border(640, 480)
	top := edges[0]

	mid, err := c.Split(top, image.Pt(100, 0))
	require.NoError(t, err)
	require.NoError(t, a.Check())
	assert.Equal(t, 5, c.Len())
	assert.Equal(t, image.Pt(100, 0), a.Pos(mid))

	n := a.Exit(mid, Right)
	require.NotEqual(t, NoEdge, n)
	assert.True(t, c.ContainsIdentity(n))
	assert.Equal(t, top, a.Exit(mid, Left))

	// union of both halves is the original range
	l0, l1 := a.Points(top)
	r0, r1 := a.Points(n)
	assert.ElementsMatch(t, []image.Point{image.Pt(0, 0), image.Pt(100, 0)}, []image.Point{l0, l1})
	assert.ElementsMatch(t, []image.Point{image.Pt(100, 0), image.Pt(640, 0)}, []image.Point{r0, r1})

	// the north east corner now points at the new edge
	assert.Equal(t, n, a.Exit(1, Left))

	// idempotent at an existing end
	again, err := c.Split(top, image.Pt(100, 0))
	require.NoError(t, err)
	assert.Equal(t, mid, again)
	assert.Equal(t, 5, c.Len())

	corner, err := c.Split(top, image.Pt(0, 0))
	require.NoError(t, err)
	assert.Equal(t, VertexID(0), corner)
}

func TestSplitVertical(t *testing.T) {
	a, c, edges := border(640, 480)
	left := edges[3]

	mid, err := c.Split(left, image.Pt(0, 200))
	require.NoError(t, err)
	require.NoError(t, a.Check())

	n := a.Exit(mid, Down)
	assert.Equal(t, left, a.Exit(mid, Up))
	assert.Equal(t, image.Pt(0, 0), a.Pos(a.Top(left)))
	assert.Equal(t, image.Pt(0, 200), a.Pos(a.Bottom(left)))
	assert.Equal(t, image.Pt(0, 200), a.Pos(a.Top(n)))
	assert.Equal(t, image.Pt(0, 480), a.Pos(a.Bottom(n)))
	assert.Equal(t, n, a.Exit(3, Up))

	// splitting the new lower half again keeps everything wired
	mid2, err := c.Split(n, image.Pt(0, 300))
	require.NoError(t, err)
	require.NoError(t, a.Check())
	assert.Equal(t, n, a.Exit(mid2, Up))
}

func TestSplitEverySide(t *testing.T) {
	cases := []struct {
		name    string
		side    int
		at      image.Point
		forward Direction
	}{
		{"top", 0, image.Pt(320, 0), Right},
		{"right", 1, image.Pt(640, 24), Down},
		{"bottom", 2, image.Pt(100, 480), Right},
		{"left", 3, image.Pt(0, 24), Down},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			a, c, edges := border(640, 480)
			e := edges[tt.side]

			var mid VertexID
			require.NotPanics(t, func() {
				var err error
				mid, err = c.Split(e, tt.at)
				require.NoError(t, err)
			})
			require.NoError(t, a.Check())
			assert.Equal(t, tt.at, a.Pos(mid))
			assert.Equal(t, e, a.Exit(mid, tt.forward.Opposite()))

			n := a.Exit(mid, tt.forward)
			require.NotEqual(t, NoEdge, n)
			assert.True(t, c.ContainsIdentity(n))
			assert.Equal(t, 5, c.Len())
		})
	}
}

func TestSplitErrors(t *testing.T) {
	a, c, edges := border(640, 480)

	_, err := c.Split(edges[0], image.Pt(100, 1))
	assert.True(t, errors.Is(err, ErrNotOnEdge))

	_, err = c.Split(edges[0], image.Pt(700, 0))
	assert.True(t, errors.Is(err, ErrNotOnEdge))

	diag := a.AddEdge(0, 2)
	c.Add(diag)
	_, err = c.Split(diag, image.Pt(320, 240))
	assert.True(t, errors.Is(err, ErrFreeEdge))
	assert.Equal(t, 5, c.Len())
}

func TestRepointAndMove(t *testing.T) {
	a := NewArena()
	v0 := a.AddVertex(image.Pt(0, 0))
	v1 := a.AddVertex(image.Pt(0, 1))
	e := a.AddEdge(v0, v1)
	a.Link(v0, Down, e)
	a.Link(v1, Up, e)

	a.MoveVertex(v1, image.Pt(0, 5))
	require.NoError(t, a.Check())

	v2 := a.AddVertex(image.Pt(0, 6))
	a.Repoint(e, v1, v2)
	a.Link(v2, Up, e)
	require.NoError(t, a.Check())
	assert.Equal(t, NoEdge, a.Exit(v1, Up))
	assert.Equal(t, v2, a.Other(e, v0))
}

func TestSnapshotRoundTrip(t *testing.T) {
	a, c, edges := border(640, 480)
	_, err := c.Split(edges[0], image.Pt(100, 0))
	require.NoError(t, err)

	data, err := a.MarshalBinary()
	require.NoError(t, err)

	b := NewArena()
	require.NoError(t, b.UnmarshalBinary(data))
	assert.Equal(t, a, b)

	clone := a.Clone()
	assert.Equal(t, a, clone)
	clone.MoveVertex(0, image.Pt(1, 1))
	assert.Equal(t, image.Pt(0, 0), a.Pos(0))
}

func TestSnapshotRejectsCorruptData(t *testing.T) {
	a, _, _ := border(10, 10)
	data, err := a.MarshalBinary()
	require.NoError(t, err)

	b := NewArena()
	err = b.UnmarshalBinary(data[:len(data)-3])
	assert.True(t, errors.Is(err, ErrCorrupt))

	// point the north west corner's Right slot at the left edge
	bad := append([]byte{}, data...)
	copy(bad[4+5*4:4+6*4], []byte{0, 0, 0, 3})
	err = b.UnmarshalBinary(bad)
	assert.True(t, errors.Is(err, ErrCorrupt))
	assert.Equal(t, 0, b.NumVertices())
}
