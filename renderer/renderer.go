package renderer

import (
	"io"

	"github.com/ByLCY/edgeposter/layout"
)

// Surface 是调用方持有的光栅目标。渲染前由合成器按解析出的尺寸调用 Resize，
// 此后各个绘制步骤只通过 Context 修改它，不再改变尺寸。
type Surface interface {
	Resize(size layout.Dimensions)
	// Context 返回绘图上下文；尚无可绘制目标时返回 nil，渲染随即变为空操作。
	Context() Context
}

// Context 是一次渲染可用的绘图操作，坐标以像素为单位，原点在左上角。
type Context interface {
	layout.Measurer

	// FillLinearGradient 以 (x0,y0)→(x1,y1) 的线性渐变填满整个画布。
	FillLinearGradient(x0, y0, x1, y1 float64, stops []layout.GradientStop)
	// FillRadialGradient 以圆心 (cx,cy)、半径 r 的径向渐变填满整个画布（按 alpha 叠加，不裁剪到圆内）。
	FillRadialGradient(cx, cy, r float64, stops []layout.GradientStop)
	StrokeLine(x0, y0, x1, y1 float64, col layout.Color, width float64)
	FillRect(rect layout.Rect, col layout.Color)
	// DrawRoundRect 绘制圆角矩形，fill 或 stroke 的不透明度为 0 时跳过对应步骤。
	DrawRoundRect(rect layout.Rect, radius float64, fill, stroke layout.Color, strokeWidth float64)
	// FillText 以 (x,y) 为左上角绘制单行文本，glow.Blur > 0 时先绘制外发光。
	FillText(text string, x, y float64, font layout.FontSpec, col layout.Color, glow layout.Glow)
}

// Format 为导出格式。
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
	FormatPDF  Format = "pdf"
)

// Exporter 将渲染完成的画布编码输出，例如 PNG 或 PDF。
type Exporter interface {
	Export(w io.Writer, format Format) error
}
