package poster

import (
	"github.com/ByLCY/edgeposter/layout"
	"github.com/ByLCY/edgeposter/renderer"
)

// Panel draws the translucent card, the accent bar and the corner decoration.
type Panel struct {
	Theme    layout.Theme
	Palette  layout.Palette
	Geometry layout.Geometry
}

// CardStyle returns the card fill and stroke colors for the theme.
func CardStyle(t layout.Theme, p layout.Palette) (fill, stroke layout.Color) {
	if t == layout.ThemeMinimal {
		return layout.Black.WithAlpha(0.55), layout.White.WithAlpha(0.14)
	}
	return layout.Black.WithAlpha(0.45), p.Accent.WithAlpha(0.28)
}

func (p Panel) DrawCard(ctx renderer.Context) {
	fill, stroke := CardStyle(p.Theme, p.Palette)
	g := p.Geometry
	ctx.DrawRoundRect(g.Card, g.CardRadius, fill, stroke, g.StrokeWidth)
}

// DrawAccentBar fills the bar at the card's content origin.
func (p Panel) DrawAccentBar(ctx renderer.Context) {
	alpha := 0.65
	if p.Theme == layout.ThemeMagazine {
		alpha = 0.9
	}
	ctx.FillRect(p.Geometry.AccentBar, p.Palette.Accent.WithAlpha(alpha))
}

// DrawDecoration fills the rounded block near the card's bottom-right corner.
func (p Panel) DrawDecoration(ctx renderer.Context) {
	g := p.Geometry
	ctx.DrawRoundRect(g.Decoration, g.DecorationRadius, p.Palette.Accent.WithAlpha(0.25), layout.Color{}, 0)
}
