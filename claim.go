package quix

import (
	"image"
	"math"

	"github.com/toby1984/quix/internal/polygon"
)

// Triangle is one piece of a claimed region.
type Triangle = polygon.Triangle

// Claim is a region enclosed by a cut.
type Claim struct {
	// ID counts claims from 1 in the order they were made.
	ID int

	// Mode the cut was drawn in.
	Mode Mode

	// Area of the region and the score it earned.
	Area  float64
	Score int

	// Outline of the region, wound to a positive signed area, and its
	// bounds.
	Outline []image.Point
	Bounds  image.Rectangle

	// Triangles covering the region.
	Triangles []Triangle `json:",omitempty"`
}

// MarshalText renders the mode by name.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// claim triangulates the loop and records it.
func (f *Field) claim(loop []EdgeID, mode Mode) (*Claim, error) {
	poly, err := polygon.FromEdges(f.arena, loop)
	if err != nil {
		return nil, err
	}
	triangles, err := poly.Triangulate()
	if err != nil {
		return nil, err
	}

	area := poly.Area()
	if sum := polygon.TotalArea(triangles); math.Abs(sum-area) > 1e-3*area {
		Logger().Warn("triangles do not cover the region", "area", area, "triangles", sum, "outline", poly.String())
	}

	c := &Claim{
		ID:        len(f.claims) + 1,
		Mode:      mode,
		Area:      area,
		Score:     int(math.Round(area)) * mode.scoreFactor(),
		Outline:   poly.Points,
		Bounds:    poly.Bounds(),
		Triangles: triangles,
	}
	f.claims = append(f.claims, c)
	f.claimed.fill(triangles)
	f.claimedArea += area
	f.score += c.Score

	Logger().Info("region claimed", "id", c.ID, "area", area, "mode", mode, "score", f.score, "percent", f.ClaimedPercent())
	return c, nil
}
