package poster

import "github.com/ByLCY/edgeposter/layout"

// GlyphChecker reports the runes a font cannot draw.
type GlyphChecker interface {
	MissingGlyphs(text string, font layout.FontSpec) []rune
}

// GlyphGap names a text field and the runes its font lacks.
type GlyphGap struct {
	Field string
	Runes []rune
}

// CheckGlyphs reports the fields of req, after default copy is applied, that
// contain runes gc cannot draw. Fields are checked in drawing order.
func CheckGlyphs(gc GlyphChecker, req layout.Request) []GlyphGap {
	title, subtitle, footer := req.WithDefaults()
	var gaps []GlyphGap
	for _, f := range []struct {
		name   string
		text   string
		weight int
	}{
		{"title", title, layout.WeightTitle},
		{"subtitle", subtitle, layout.WeightBody},
		{"footer", footer, layout.WeightBody},
	} {
		missing := gc.MissingGlyphs(f.text, layout.FontSpec{Size: 16, Weight: f.weight})
		if len(missing) > 0 {
			gaps = append(gaps, GlyphGap{Field: f.name, Runes: missing})
		}
	}
	return gaps
}
