package quix

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/colornames"
)

// ColourScheme defines how the parts of a field are drawn by Image.
type ColourScheme struct {
	Background color.Color
	Claimed    color.Color
	Edges      color.Color
	Cut        color.Color
	Player     color.Color

	// EdgeWidth is the stroke width of edges and the cut.
	EdgeWidth float64
}

// DefaultScheme returns a reasonable default ColourScheme.
func DefaultScheme() *ColourScheme {
	return &ColourScheme{
		Background: colornames.Black,
		Claimed:    colornames.Steelblue,
		Edges:      colornames.White,
		Cut:        colornames.Crimson,
		Player:     colornames.Gold,
		EdgeWidth:  1,
	}
}

// Image draws the field as it is right now. A nil scheme means
// DefaultScheme().
func (f *Field) Image(scheme *ColourScheme) image.Image {
	if scheme == nil {
		scheme = DefaultScheme()
	}
	ctx := gg.NewContext(f.cfg.Width+1, f.cfg.Height+1)

	ctx.SetColor(scheme.Background)
	ctx.Clear()

	ctx.SetColor(scheme.Claimed)
	for _, c := range f.claims {
		for _, t := range c.Triangles {
			ctx.MoveTo(float64(t.Points[0].X), float64(t.Points[0].Y))
			ctx.LineTo(float64(t.Points[1].X), float64(t.Points[1].Y))
			ctx.LineTo(float64(t.Points[2].X), float64(t.Points[2].Y))
			ctx.ClosePath()
			ctx.Fill()
		}
	}

	ctx.SetLineWidth(scheme.EdgeWidth)
	f.drawEdges(ctx, f.perm.Edges(), scheme.Edges)
	f.drawEdges(ctx, f.cut.Edges(), scheme.Cut)

	ctx.SetColor(scheme.Player)
	ctx.DrawCircle(float64(f.player.X), float64(f.player.Y), 3)
	ctx.Fill()

	return ctx.Image()
}

// drawEdges strokes each edge in col.
func (f *Field) drawEdges(ctx *gg.Context, edges []EdgeID, col color.Color) {
	ctx.SetColor(col)
	for _, e := range edges {
		a, b := f.arena.Points(e)
		ctx.DrawLine(float64(a.X), float64(a.Y), float64(b.X), float64(b.Y))
		ctx.Stroke()
	}
}

// SavePNG writes Image(scheme) to the given path.
func (f *Field) SavePNG(fpath string, scheme *ColourScheme) error {
	return gg.SavePNG(fpath, f.Image(scheme))
}
