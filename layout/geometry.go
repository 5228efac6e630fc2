package layout

import "math"

// Geometry 记录固定模板在给定尺寸下的全部几何量（单位：像素）。
type Geometry struct {
	Size    Dimensions `json:"size"`
	Padding float64    `json:"padding"`
	// GridStep 为背景网格间距。
	GridStep float64 `json:"gridStep"`

	Card        Rect    `json:"card"`
	CardRadius  float64 `json:"cardRadius"`
	StrokeWidth float64 `json:"strokeWidth"`

	// ContentLeft/ContentTop 为卡片内容区的左上角，强调条与标题都从这里开始。
	ContentLeft float64 `json:"contentLeft"`
	ContentTop  float64 `json:"contentTop"`
	// TextWidth 为标题与副标题的折行宽度。
	TextWidth float64 `json:"textWidth"`

	Fonts FontSizes `json:"fonts"`

	AccentBar        Rect    `json:"accentBar"`
	Decoration       Rect    `json:"decoration"`
	DecorationRadius float64 `json:"decorationRadius"`
}

// FontSizes 为三类文字的像素字号。
type FontSizes struct {
	Title    float64 `json:"title"`
	Subtitle float64 `json:"subtitle"`
	Footer   float64 `json:"footer"`
}

// ResolveFontSizes 根据画布短边计算字号，并夹在各自的上下限内。
func ResolveFontSizes(d Dimensions) FontSizes {
	title := Clamp(Round(d.Min()*0.085), 56, 112)
	return FontSizes{
		Title:    title,
		Subtitle: Clamp(Round(title*0.42), 22, 48),
		Footer:   Clamp(Round(title*0.26), 16, 32),
	}
}

// NewGeometry 计算卡片、强调条、装饰块与文字区域的位置。
func NewGeometry(d Dimensions) Geometry {
	short := d.Min()
	pad := Round(short * 0.06)
	cardW := float64(d.Width) - pad*2
	cardH := float64(d.Height) - pad*2
	fonts := ResolveFontSizes(d)

	left := pad + Round(pad*0.9)
	top := pad + Round(pad*0.9)

	decoW := Round(cardW * 0.34)
	decoH := Round(decoW * 0.34)

	return Geometry{
		Size:        d,
		Padding:     pad,
		GridStep:    Round(short / 18),
		Card:        Rect{X: pad, Y: pad, Width: cardW, Height: cardH},
		CardRadius:  ClampRadius(Round(pad*0.6), cardW, cardH),
		StrokeWidth: math.Max(2, Round(pad*0.06)),
		ContentLeft: left,
		ContentTop:  top,
		TextWidth:   cardW - Round(pad*1.6),
		Fonts:       fonts,
		AccentBar: Rect{
			X:      left,
			Y:      top,
			Width:  Round(cardW * 0.28),
			Height: math.Max(10, Round(fonts.Title*0.18)),
		},
		Decoration: Rect{
			X:      pad + cardW - decoW - Round(pad*0.9),
			Y:      pad + cardH - decoH - Round(pad*1.8),
			Width:  decoW,
			Height: decoH,
		},
		DecorationRadius: ClampRadius(Round(decoH*0.4), decoW, decoH),
	}
}

// ClampRadius 将圆角半径限制在宽高各自一半以内。
func ClampRadius(r, w, h float64) float64 {
	return math.Max(0, math.Min(r, math.Min(w/2, h/2)))
}
