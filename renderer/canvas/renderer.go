package canvasrenderer

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"sync"
	"unicode"

	"github.com/disintegration/imaging"
	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/rasterizer"

	"github.com/ByLCY/edgeposter/fonts"
	"github.com/ByLCY/edgeposter/layout"
	"github.com/ByLCY/edgeposter/renderer"
)

// 画布以 1mm 表示 1 像素，光栅化时使用 1 dot/mm。
var resolution = canvas.DPMM(1.0)

// Surface draws posters via github.com/tdewolff/canvas.
// A Surface is owned by one render at a time; it is not safe for concurrent renders.
type Surface struct {
	// injected resources
	fontRes FontSet

	fontMu   sync.Mutex
	family   *canvas.FontFamily
	fontErr  error
	fontOnce bool

	size layout.Dimensions
	c    *canvas.Canvas
	ctx  *canvas.Context

	meta        Meta
	jpegQuality int
}

var (
	_ renderer.Surface  = (*Surface)(nil)
	_ renderer.Context  = (*Surface)(nil)
	_ renderer.Exporter = (*Surface)(nil)
)

// Options configures the canvas surface.
type Options struct {
	Fonts       FontSet
	Meta        Meta
	JPEGQuality int
}

// FontSet selects the font files used for each weight. An empty resource is
// looked up among the installed System families first, then falls back to the
// built-in Go fonts. A non-empty resource that cannot be loaded is an error.
type FontSet struct {
	Regular   Resource
	SemiBold  Resource
	ExtraBold Resource
	// System is a comma-separated list of installed font families, e.g.
	// fonts.SystemCJK. Empty disables the lookup.
	System string
}

// Resource can be provided either by Bytes or by Path.
type Resource struct {
	Bytes []byte
	Path  string
}

// NewSurface creates an unallocated surface; Resize allocates the drawing target.
func NewSurface(opts Options) *Surface {
	return &Surface{fontRes: opts.Fonts, meta: opts.Meta, jpegQuality: opts.JPEGQuality}
}

// Resize allocates a fresh canvas of the given pixel size, discarding previous content.
func (s *Surface) Resize(size layout.Dimensions) {
	s.size = size
	if size.Width <= 0 || size.Height <= 0 {
		s.c, s.ctx = nil, nil
		return
	}
	s.c = canvas.New(float64(size.Width), float64(size.Height))
	s.ctx = canvas.NewContext(s.c)
	s.ctx.SetCoordSystem(canvas.CartesianIV) // 与布局一致，以左上角为原点
}

// Size returns the allocated pixel size.
func (s *Surface) Size() layout.Dimensions { return s.size }

// Context returns s when a canvas is allocated and fonts are usable, nil otherwise.
func (s *Surface) Context() renderer.Context {
	if s.ctx == nil {
		return nil
	}
	if _, err := s.ensureFontFamily(); err != nil {
		return nil
	}
	return s
}

// FontError reports why fonts could not be loaded, if they could not.
func (s *Surface) FontError() error {
	_, err := s.ensureFontFamily()
	return err
}

func (s *Surface) fullRect() *canvas.Path {
	return canvas.Rectangle(float64(s.size.Width), float64(s.size.Height))
}

func (s *Surface) FillLinearGradient(x0, y0, x1, y1 float64, stops []layout.GradientStop) {
	g := canvas.NewLinearGradient(canvas.Point{X: x0, Y: y0}, canvas.Point{X: x1, Y: y1})
	for _, st := range stops {
		g.Add(st.Offset, toRGBA(st.Color))
	}
	s.ctx.SetFillGradient(g)
	s.ctx.SetStrokeColor(color.RGBA{})
	s.ctx.DrawPath(0, 0, s.fullRect())
}

func (s *Surface) FillRadialGradient(cx, cy, r float64, stops []layout.GradientStop) {
	c := canvas.Point{X: cx, Y: cy}
	g := canvas.NewRadialGradient(c, 0, c, r)
	for _, st := range stops {
		g.Add(st.Offset, toRGBA(st.Color))
	}
	s.ctx.SetFillGradient(g)
	s.ctx.SetStrokeColor(color.RGBA{})
	s.ctx.DrawPath(0, 0, s.fullRect())
}

func (s *Surface) StrokeLine(x0, y0, x1, y1 float64, col layout.Color, width float64) {
	p := &canvas.Path{}
	p.MoveTo(x0, y0)
	p.LineTo(x1, y1)
	s.ctx.SetFillColor(color.RGBA{})
	s.ctx.SetStrokeColor(toRGBA(col))
	s.ctx.SetStrokeWidth(width)
	s.ctx.DrawPath(0, 0, p)
}

func (s *Surface) FillRect(rect layout.Rect, col layout.Color) {
	s.ctx.SetFillColor(toRGBA(col))
	s.ctx.SetStrokeColor(color.RGBA{})
	s.ctx.DrawPath(rect.X, rect.Y, canvas.Rectangle(rect.Width, rect.Height))
}

func (s *Surface) DrawRoundRect(rect layout.Rect, radius float64, fill, stroke layout.Color, strokeWidth float64) {
	r := layout.ClampRadius(radius, rect.Width, rect.Height)
	s.ctx.SetFillColor(toRGBA(fill))
	if stroke.A > 0 && strokeWidth > 0 {
		s.ctx.SetStrokeColor(toRGBA(stroke))
		s.ctx.SetStrokeWidth(strokeWidth)
	} else {
		s.ctx.SetStrokeColor(color.RGBA{})
	}
	s.ctx.DrawPath(rect.X, rect.Y, canvas.RoundedRectangle(rect.Width, rect.Height, r))
}

// MeasureText 实现 layout.Measurer，返回像素宽度。
func (s *Surface) MeasureText(text string, font layout.FontSpec) float64 {
	face, err := s.fontFace(font, layout.White)
	if err != nil {
		return 0
	}
	return face.TextWidth(text)
}

// MissingGlyphs returns the distinct runes of text that the face selected
// for font cannot draw, in order of first appearance. Whitespace and control
// runes are ignored.
func (s *Surface) MissingGlyphs(text string, font layout.FontSpec) []rune {
	face, err := s.fontFace(font, layout.White)
	if err != nil {
		return nil
	}
	var missing []rune
	seen := map[rune]bool{}
	for _, r := range text {
		if seen[r] || unicode.IsSpace(r) || unicode.IsControl(r) {
			continue
		}
		seen[r] = true
		if face.Font.GlyphIndex(r) == 0 {
			missing = append(missing, r)
		}
	}
	return missing
}

// FillText 以 (x,y) 为文本顶部绘制：基线位于顶部加字体上升部。
func (s *Surface) FillText(text string, x, y float64, font layout.FontSpec, col layout.Color, glow layout.Glow) {
	face, err := s.fontFace(font, col)
	if err != nil {
		return
	}
	if glow.Blur > 0 && glow.Color.A > 0 {
		s.drawGlow(text, x, y, font, glow)
	}
	baseline := y + face.Metrics().Ascent
	s.ctx.DrawText(x, baseline, canvas.NewTextLine(face, text, canvas.Left))
}

// drawGlow 将文字以发光色单独光栅化，高斯模糊后贴回主画布。
// 模糊半径按 2D canvas 的 shadowBlur 语义换算：sigma = blur / 2。
func (s *Surface) drawGlow(text string, x, y float64, font layout.FontSpec, glow layout.Glow) {
	face, err := s.fontFace(font, glow.Color)
	if err != nil {
		return
	}
	metrics := face.Metrics()
	pad := math.Ceil(glow.Blur * 1.5)
	w := math.Ceil(face.TextWidth(text) + 2*pad)
	h := math.Ceil(metrics.Ascent + math.Abs(metrics.Descent) + 2*pad)

	layer := canvas.New(w, h)
	lctx := canvas.NewContext(layer)
	lctx.SetCoordSystem(canvas.CartesianIV)
	lctx.DrawText(pad, pad+metrics.Ascent, canvas.NewTextLine(face, text, canvas.Left))

	img := rasterizer.Draw(layer, resolution, canvas.DefaultColorSpace)
	blurred := imaging.Blur(img, glow.Blur/2)
	s.ctx.DrawImage(x-pad, y-pad, blurred, resolution)
}

// Image rasterizes the current canvas.
func (s *Surface) Image() (*image.RGBA, error) {
	if s.c == nil {
		return nil, fmt.Errorf("画布尚未分配")
	}
	return rasterizer.Draw(s.c, resolution, canvas.DefaultColorSpace), nil
}

func (s *Surface) fontFace(font layout.FontSpec, col layout.Color) (*canvas.FontFace, error) {
	family, err := s.ensureFontFamily()
	if err != nil {
		return nil, err
	}
	return family.Face(layout.PxToPt(font.Size), toRGBA(col), weightStyle(font.Weight), canvas.FontNormal), nil
}

func (s *Surface) ensureFontFamily() (*canvas.FontFamily, error) {
	s.fontMu.Lock()
	defer s.fontMu.Unlock()

	if s.fontOnce {
		return s.family, s.fontErr
	}
	s.fontOnce = true

	family := canvas.NewFontFamily("edgeposter")
	for _, entry := range []struct {
		res     Resource
		builtin string
		style   canvas.FontStyle
	}{
		{s.fontRes.Regular, fonts.Regular, canvas.FontRegular},
		{s.fontRes.SemiBold, fonts.Medium, canvas.FontSemiBold},
		{s.fontRes.ExtraBold, fonts.Bold, canvas.FontExtraBold},
	} {
		if err := loadFontIntoFamily(family, entry.res, s.fontRes.System, entry.builtin, entry.style); err != nil {
			s.fontErr = err
			return nil, err
		}
	}
	s.family = family
	return family, nil
}

// loadFontIntoFamily 优先加载注入的字体；未注入时依次尝试系统字体与内置字体。
func loadFontIntoFamily(family *canvas.FontFamily, res Resource, system, builtin string, style canvas.FontStyle) error {
	data, err := resourceBytes(res)
	if err != nil {
		return err
	}
	if len(data) > 0 {
		if err := family.LoadFont(data, 0, style); err != nil {
			return fmt.Errorf("解析字体 %s 失败: %w", res.Path, err)
		}
		return nil
	}
	if system != "" {
		if path, ok := canvas.FindSystemFont(system, style); ok {
			if err := family.LoadFontFile(path, style); err == nil {
				return nil
			}
		}
	}
	data, err = fonts.Builtin(builtin)
	if err != nil {
		return err
	}
	if err := family.LoadFont(data, 0, style); err != nil {
		return fmt.Errorf("加载内置字体 %s 失败: %w", builtin, err)
	}
	return nil
}

func resourceBytes(res Resource) ([]byte, error) {
	if len(res.Bytes) > 0 {
		return res.Bytes, nil
	}
	if res.Path == "" {
		return nil, nil
	}
	return fonts.Load(res.Path)
}

// weightStyle 将 CSS 字重映射到已加载的三个字重之一。
func weightStyle(weight int) canvas.FontStyle {
	switch {
	case weight >= 750:
		return canvas.FontExtraBold
	case weight >= 550:
		return canvas.FontSemiBold
	default:
		return canvas.FontRegular
	}
}

func toRGBA(c layout.Color) color.RGBA {
	return canvas.RGBA(float64(c.R)/255.0, float64(c.G)/255.0, float64(c.B)/255.0, c.A)
}
