package poster

import (
	"github.com/ByLCY/edgeposter/layout"
	"github.com/ByLCY/edgeposter/renderer"
	"github.com/ByLCY/edgeposter/rng"
)

// BlobCount is the number of glow blobs painted over the background.
const BlobCount = 9

// Background paints the gradient, the overlay grid and the glow blobs.
type Background struct {
	Theme    layout.Theme
	Palette  layout.Palette
	Geometry layout.Geometry
}

// DrawGradient fills the surface along its diagonal: start, mid at 0.5, black at 1.
func (b Background) DrawGradient(ctx renderer.Context) {
	w, h := float64(b.Geometry.Size.Width), float64(b.Geometry.Size.Height)
	ctx.FillLinearGradient(0, 0, w, h, []layout.GradientStop{
		{Offset: 0, Color: b.Palette.GradientStart},
		{Offset: 0.5, Color: b.Palette.GradientMid},
		{Offset: 1, Color: layout.Black},
	})
}

// GridAlpha is the opacity of the overlay grid lines for the theme.
func GridAlpha(t layout.Theme) float64 {
	if t == layout.ThemeMinimal {
		return 0.08
	}
	return 0.14
}

// DrawGrid strokes vertical then horizontal lines every GridStep pixels,
// starting at 0 and including the last line at or before the edge.
func (b Background) DrawGrid(ctx renderer.Context) {
	w, h := float64(b.Geometry.Size.Width), float64(b.Geometry.Size.Height)
	step := b.Geometry.GridStep
	if step <= 0 {
		return
	}
	col := layout.White.WithAlpha(GridAlpha(b.Theme))
	for x := 0.0; x <= w; x += step {
		ctx.StrokeLine(x, 0, x, h, col, 1)
	}
	for y := 0.0; y <= h; y += step {
		ctx.StrokeLine(0, y, w, y, col, 1)
	}
}

// DrawBlobs paints BlobCount radial glows. Each blob draws x, y, then radius
// from src, in blob order; changing that order changes every seeded poster.
func (b Background) DrawBlobs(ctx renderer.Context, src rng.Source) {
	w, h := float64(b.Geometry.Size.Width), float64(b.Geometry.Size.Height)
	short := b.Geometry.Size.Min()
	accent := b.Palette.Accent
	for i := 0; i < BlobCount; i++ {
		x := src.Next() * w
		y := src.Next() * h
		r := (0.06 + src.Next()*0.12) * short
		ctx.FillRadialGradient(x, y, r, []layout.GradientStop{
			{Offset: 0, Color: accent.WithAlpha(0.28)},
			{Offset: 1, Color: accent.WithAlpha(0)},
		})
	}
}
