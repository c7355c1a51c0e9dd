package quix

import (
	"image"
	"math"
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"github.com/toby1984/quix/internal/astar"
	"github.com/toby1984/quix/internal/cut"
	"github.com/toby1984/quix/internal/mesh"
	"github.com/unixpickle/model3d/model2d"
)

// Field holds the playfield: the settled edges, the cut being drawn and
// everything claimed so far. Not safe for concurrent use.
type Field struct {
	cfg  *FieldConfig
	seed int64
	rng  *rand.Rand

	arena  *mesh.Arena
	perm   *mesh.Collection
	cut    *cut.Cut
	col    *collider
	search *astar.Search

	claims      []*Claim
	claimed     *claimMap
	claimedArea float64
	score       int

	player     image.Point
	playerEdge EdgeID
	cutMode    Mode
}

// New returns a Field with just the border. A nil cfg means
// DefaultConfig().
func New(cfg *FieldConfig) (*Field, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	f := &Field{cfg: cfg, seed: seed, search: astar.New()}
	f.col = &collider{f: f}
	f.Restart()
	return f, nil
}

// Restart throws away every cut and claim and puts the player back at the
// start. The random sequence starts over from the same seed.
func (f *Field) Restart() {
	f.rng = rand.New(rand.NewSource(f.seed))

	f.arena = mesh.NewArena()
	f.perm = mesh.NewCollection(f.arena)
	f.cut = cut.New(f.arena)

	f.claims = []*Claim{}
	f.claimed = newClaimMap(f.cfg.Width, f.cfg.Height)
	f.claimedArea = 0
	f.score = 0
	f.cutMode = ModeMove

	w, h := f.cfg.Width, f.cfg.Height
	nw := f.arena.AddVertex(image.Pt(0, 0))
	ne := f.arena.AddVertex(image.Pt(w, 0))
	se := f.arena.AddVertex(image.Pt(w, h))
	sw := f.arena.AddVertex(image.Pt(0, h))

	top := f.arena.AddEdge(nw, ne)
	right := f.arena.AddEdge(ne, se)
	bottom := f.arena.AddEdge(sw, se)
	left := f.arena.AddEdge(nw, sw)

	f.arena.Link(nw, Right, top)
	f.arena.Link(nw, Down, left)
	f.arena.Link(ne, Left, top)
	f.arena.Link(ne, Down, right)
	f.arena.Link(se, Up, right)
	f.arena.Link(se, Left, bottom)
	f.arena.Link(sw, Right, bottom)
	f.arena.Link(sw, Up, left)

	f.perm.AddAll(top, right, bottom, left)

	f.player = image.Pt(w/2, h)
	if f.cfg.Start != nil {
		f.player = *f.cfg.Start
	}
	f.playerEdge, _ = f.perm.PointOnAnyEdge(f.player)
}

// Seed is the seed of the field's random choices.
func (f *Field) Seed() int64 {
	return f.seed
}

// Bounds of the field, Max inclusive.
func (f *Field) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.cfg.Width, f.cfg.Height)
}

// Edges returns the settled edges.
func (f *Field) Edges() []EdgeID {
	return f.perm.Edges()
}

// CutEdges returns the edges of the open cut, empty when not cutting.
func (f *Field) CutEdges() []EdgeID {
	return f.cut.Edges()
}

// EdgePoints returns the ends of e.
func (f *Field) EdgePoints(e EdgeID) (image.Point, image.Point) {
	return f.arena.Points(e)
}

// VertexPos returns the position of v.
func (f *Field) VertexPos(v VertexID) image.Point {
	return f.arena.Pos(v)
}

// Arena returns a copy of the vertices and edges of the field.
func (f *Field) Arena() *mesh.Arena {
	return f.arena.Clone()
}

// Snapshot encodes the vertices and edges of the field, see
// mesh.Arena.UnmarshalBinary.
func (f *Field) Snapshot() ([]byte, error) {
	return f.arena.MarshalBinary()
}

// IsCutting is true while a cut is open.
func (f *Field) IsCutting() bool {
	return f.cut.State() == cut.Cutting
}

// IsCutEdge is true if e belongs to the open cut.
func (f *Field) IsCutEdge(e EdgeID) bool {
	return f.cut.Owns(e)
}

// Player returns the player position and the edge under it.
func (f *Field) Player() (image.Point, EdgeID) {
	return f.player, f.playerEdge
}

// Claims returns every region claimed so far, oldest first.
func (f *Field) Claims() []*Claim {
	out := make([]*Claim, len(f.claims))
	copy(out, f.claims)
	return out
}

// ClaimedArea is the summed area of all claims.
func (f *Field) ClaimedArea() float64 {
	return f.claimedArea
}

// ClaimedPercent is ClaimedArea as a percentage of the field.
func (f *Field) ClaimedPercent() float64 {
	total := float64(f.cfg.Width * f.cfg.Height)
	return math.Min(100, f.claimedArea/total*100)
}

// Score so far.
func (f *Field) Score() int {
	return f.score
}

// IsClaimed is true for points inside or on the outline of a claim.
func (f *Field) IsClaimed(p image.Point) bool {
	return f.claimed.IsSet(p)
}

// ClosestEdgeTo returns the settled or cut edge nearest to p, as long as it
// is within PickRadius.
func (f *Field) ClosestEdgeTo(p image.Point) (EdgeID, bool) {
	best, bestDist := NoEdge, math.Inf(1)
	for _, edges := range [][]EdgeID{f.perm.Edges(), f.cut.Edges()} {
		for _, e := range edges {
			if d := f.col.edgeDist(e, p); d < bestDist {
				best, bestDist = e, d
			}
		}
	}
	if best == NoEdge || bestDist > f.cfg.PickRadius {
		return NoEdge, false
	}
	return best, true
}

// ClosestVertexTo returns the vertex nearest to p that still has an edge,
// as long as it is within PickRadius.
func (f *Field) ClosestVertexTo(p image.Point) (VertexID, bool) {
	coords := []model2d.Coord{}
	byCoord := map[model2d.Coord]VertexID{}
	for i := 0; i < f.arena.NumVertices(); i++ {
		v := VertexID(i)
		if f.arena.ExitCount(v, NoEdge) == 0 {
			continue
		}
		pos := f.arena.Pos(v)
		c := model2d.Coord{X: float64(pos.X), Y: float64(pos.Y)}
		if _, ok := byCoord[c]; ok {
			continue
		}
		byCoord[c] = v
		coords = append(coords, c)
	}
	if len(coords) == 0 {
		return NoVertex, false
	}

	target := model2d.Coord{X: float64(p.X), Y: float64(p.Y)}
	found := model2d.NewCoordTree(coords).KNN(1, target)
	if len(found) == 0 || found[0].Dist(target) > f.cfg.PickRadius {
		return NoVertex, false
	}
	return byCoord[found[0]], true
}

// BeginCut starts a cut from pos, which must be on an edge, towards
// heading. Returns ErrIllegalMove when the first step is not into open
// space, or for ModeMove.
func (f *Field) BeginCut(pos image.Point, heading Direction, mode Mode) error {
	if !mode.cutting() {
		return errors.Wrapf(ErrIllegalMove, "mode %s does not cut", mode)
	}
	if err := f.cut.Begin(pos, heading, f.col); err != nil {
		return err
	}
	f.cutMode = mode
	f.player = f.arena.Pos(f.cut.Head())
	f.playerEdge = f.cut.Current()
	Logger().Debug("cut begun", "at", pos, "heading", heading, "mode", mode)
	return nil
}

// AdvanceCut moves the open cut one step towards heading. When the step
// touches another edge the cut closes and the region it encloses is
// claimed and returned.
//
// An error other than ErrNotCutting means the graph was inconsistent; the
// cut's edges are settled all the same but nothing is claimed.
func (f *Field) AdvanceCut(heading Direction) (Step, *Claim, error) {
	before := f.cut.Heading()
	step, err := f.cut.Advance(heading, f.col)
	if err != nil {
		return step, nil, err
	}
	if step.Result == CannotMove {
		return step, nil, nil
	}

	f.player = step.Pos
	f.playerEdge = step.Edge
	if step.Result == Moved {
		if f.cut.Heading() != before {
			Logger().Debug("cut turned", "at", step.Pos, "heading", heading)
		}
		return step, nil, nil
	}

	claim, err := f.close()
	return step, claim, err
}

// close claims the region enclosed by a closed cut and the shortest way
// back along the settled edges, then settles the cut's edges.
func (f *Field) close() (*Claim, error) {
	edges := f.cut.Edges()
	mode := f.cutMode
	defer func() {
		f.perm.AddAll(edges...)
		f.cut.Reset()
		f.cutMode = ModeMove
	}()

	loop, err := f.loop(edges)
	if err == nil {
		var claim *Claim
		claim, err = f.claim(loop, mode)
		if err == nil {
			return claim, nil
		}
	}
	Logger().Error("closing cut failed", "edges", f.arena.DescribeAll(edges), "err", err)
	return nil, err
}

// loop returns the edges of the cut followed by the way back to its start.
func (f *Field) loop(edges []EdgeID) ([]EdgeID, error) {
	start, end := f.cut.Start(), f.cut.End()
	nav := &navMesh{arena: f.arena, forbidden: f.cut.Owns}
	path := f.search.FindPath(int(start), int(end), nav)
	if path == nil {
		return nil, errors.Wrapf(ErrNoPath, "from vertex %d to %d around %s", start, end, f.arena.DescribeAll(edges))
	}
	Logger().Debug("path found", "from", start, "to", end, "vertices", len(path))

	back := make([]EdgeID, 0, len(path))
	for i := len(path) - 1; i > 0; i-- {
		e, ok := f.perm.FindEdge(VertexID(path[i]), VertexID(path[i-1]))
		if !ok {
			return nil, errors.Wrapf(ErrNoPath, "no edge between vertex %d and %d", path[i], path[i-1])
		}
		back = append(back, e)
	}

	loop := make([]EdgeID, 0, len(edges)+len(back))
	loop = append(loop, edges...)
	return append(loop, back...), nil
}

// IntersectsSegment returns the first settled or cut edge sharing a point
// with the segment a->b.
func (f *Field) IntersectsSegment(a, b image.Point) (EdgeID, bool) {
	return f.col.IntersectsSegment(a, b)
}

// IntersectsEdge returns the first settled or cut edge other than e that
// shares a point with it.
func (f *Field) IntersectsEdge(e EdgeID) (EdgeID, bool) {
	return f.col.IntersectsEdge(e)
}
