// Package poster composes a poster onto a renderer.Surface.
//
// Render is the single entry point: it resolves the size and palette for a
// layout.Request, seeds one random stream from the request seed, and runs the
// background, panel and text steps in a fixed order. For a fixed request the
// sequence of drawing calls, and therefore the final pixels, never changes.
package poster

import (
	"fmt"

	"github.com/ByLCY/edgeposter/layout"
	"github.com/ByLCY/edgeposter/renderer"
	"github.com/ByLCY/edgeposter/rng"
)

// Compositor sequences the drawing steps. The zero value is ready to use.
type Compositor struct {
	// NewSource builds the random stream for a seed. Defaults to mulberry32.
	NewSource func(seed uint32) rng.Source
}

var defaultCompositor Compositor

// Render draws req onto s with the default compositor.
func Render(s renderer.Surface, req layout.Request) error {
	return defaultCompositor.Render(s, req)
}

// Render resizes s to the resolved dimensions and draws the poster.
//
// An unrecognized aspect or theme returns an error wrapping
// layout.ErrUnrecognized before anything is drawn. A surface without a
// drawing context is not an error: there is nothing to draw to yet, so Render
// returns nil without drawing.
func (c Compositor) Render(s renderer.Surface, req layout.Request) error {
	size, err := layout.ResolveSize(req.Aspect)
	if err != nil {
		return err
	}
	palette, err := layout.ResolvePalette(req.Theme)
	if err != nil {
		return err
	}

	s.Resize(size)
	ctx := s.Context()
	if ctx == nil {
		return nil
	}

	g := layout.NewGeometry(size)
	bg := Background{Theme: req.Theme, Palette: palette, Geometry: g}
	panel := Panel{Theme: req.Theme, Palette: palette, Geometry: g}
	text := layout.LayoutText(ctx, req, g, palette)

	bg.DrawGradient(ctx)
	bg.DrawGrid(ctx)
	bg.DrawBlobs(ctx, c.source(req.Seed))
	panel.DrawCard(ctx)
	panel.DrawAccentBar(ctx)
	DrawText(ctx, text.Title)
	DrawText(ctx, text.Subtitle)
	DrawText(ctx, text.Footer)
	panel.DrawDecoration(ctx)
	return nil
}

func (c Compositor) source(seed uint32) rng.Source {
	if c.NewSource != nil {
		return c.NewSource(seed)
	}
	return rng.New(seed)
}

// Plan resolves the full layout for req without drawing, measuring text with m.
func Plan(m layout.Measurer, req layout.Request) (*layout.Plan, error) {
	return layout.NewPlan(m, req)
}

// FileName is the download name for a rendered poster, e.g. EdgePoster_9:16_Cyber.png.
func FileName(req layout.Request, ext string) string {
	return fmt.Sprintf("EdgePoster_%s_%s.%s", req.Aspect, req.Theme, ext)
}
