package poster

import (
	"github.com/ByLCY/edgeposter/layout"
	"github.com/ByLCY/edgeposter/renderer"
)

// DrawText fills every line of a laid-out block.
func DrawText(ctx renderer.Context, block layout.TextBlock) {
	for _, ln := range block.Lines {
		ctx.FillText(ln.Content, ln.X, ln.Y, block.Font, block.Color, block.Glow)
	}
}
