package layout

import (
	"strings"
)

// 空字段时使用的默认文案。
const (
	DefaultTitle    = "输入一句话，生成海报"
	DefaultSubtitle = "赛博/极简/霓虹/杂志风 · 一键导出PNG"
	DefaultFooter   = "Powered by ESA Pages · EdgePoster"
)

// 行数上限，多出的行直接丢弃。
const (
	MaxTitleLines    = 4
	MaxSubtitleLines = 3
)

// 字重。
const (
	WeightTitle = 800
	WeightBody  = 600
)

var lineBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

// Wrap 按字符贪心折行：逐个字符追加到当前行，若追加后超过 maxWidth 且当前行非空，
// 则先输出当前行再以该字符开启新行。不做分词与连字符处理，因此同样适用于无空格的文字。
// 单个字符本身宽于 maxWidth 时独占一行。
func Wrap(m Measurer, text string, maxWidth float64, font FontSpec) []string {
	return WrapLines(m, text, maxWidth, font, 0)
}

// WrapLines 与 Wrap 相同，但得到 maxLines 行后立即停止，其余文本不再测量。
// maxLines <= 0 表示不限行数。
func WrapLines(m Measurer, text string, maxWidth float64, font FontSpec, maxLines int) []string {
	var lines []string
	var line strings.Builder
	for _, r := range text {
		candidate := line.String() + string(r)
		if m.MeasureText(candidate, font) > maxWidth && line.Len() > 0 {
			lines = append(lines, line.String())
			line.Reset()
			if maxLines > 0 && len(lines) == maxLines {
				return lines
			}
		}
		line.WriteRune(r)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}

// WithDefaults 返回用默认文案填充空字段后的文本。
func (r Request) WithDefaults() (title, subtitle, footer string) {
	title, subtitle, footer = r.Title, r.Subtitle, r.Footer
	if title == "" {
		title = DefaultTitle
	}
	if subtitle == "" {
		subtitle = DefaultSubtitle
	}
	if footer == "" {
		footer = DefaultFooter
	}
	return title, subtitle, footer
}

// LayoutText 计算标题、副标题与页脚每一行的位置。标题与副标题左对齐、顶部锚定，
// 页脚为单行不折行。
func LayoutText(m Measurer, req Request, g Geometry, p Palette) TextLayout {
	title, subtitle, footer := req.WithDefaults()
	fs := g.Fonts

	titleBlock := TextBlock{
		Font:  FontSpec{Size: fs.Title, Weight: WeightTitle},
		Color: White,
		Glow:  Glow{Color: p.Accent.WithAlpha(0.55), Blur: Round(fs.Title * 0.35)},
	}
	if req.Theme == ThemeMinimal {
		titleBlock.Glow.Blur = 0
	}
	y := g.ContentTop + Round(fs.Title*0.52)
	y = placeLines(m, &titleBlock, title, g, y, MaxTitleLines, Round(fs.Title*1.12))

	subBlock := TextBlock{
		Font:  FontSpec{Size: fs.Subtitle, Weight: WeightBody},
		Color: White.WithAlpha(0.86),
	}
	y += Round(fs.Subtitle * 0.4)
	placeLines(m, &subBlock, subtitle, g, y, MaxSubtitleLines, Round(fs.Subtitle*1.35))

	footBlock := TextBlock{
		Font:  FontSpec{Size: fs.Footer, Weight: WeightBody},
		Color: White.WithAlpha(0.72),
	}
	footer = lineBreaks.Replace(footer)
	footY := g.Card.Y + g.Card.Height - Round(g.Padding*1.2)
	footBlock.Lines = []TextLine{{
		Content: footer,
		X:       g.ContentLeft,
		Y:       footY,
		Width:   m.MeasureText(footer, footBlock.Font),
	}}
	footBlock.Bottom = footY + fs.Footer

	return TextLayout{Title: titleBlock, Subtitle: subBlock, Footer: footBlock}
}

func placeLines(m Measurer, block *TextBlock, text string, g Geometry, y float64, maxLines int, pitch float64) float64 {
	lines := WrapLines(m, lineBreaks.Replace(text), g.TextWidth, block.Font, maxLines)
	for _, ln := range lines {
		block.Lines = append(block.Lines, TextLine{
			Content: ln,
			X:       g.ContentLeft,
			Y:       y,
			Width:   m.MeasureText(ln, block.Font),
		})
		y += pitch
	}
	block.Bottom = y
	return y
}
