package renderer

import (
	"github.com/ByLCY/edgeposter/layout"
)

// Op 记录一次绘制调用及其参数，字段按操作类型选择性填充。
type Op struct {
	Kind        string                `json:"kind"`
	Points      []float64             `json:"points,omitempty"`
	Rect        *layout.Rect          `json:"rect,omitempty"`
	Radius      float64               `json:"radius,omitempty"`
	Stops       []layout.GradientStop `json:"stops,omitempty"`
	Fill        *layout.Color         `json:"fill,omitempty"`
	Stroke      *layout.Color         `json:"stroke,omitempty"`
	StrokeWidth float64               `json:"strokeWidth,omitempty"`
	Text        string                `json:"text,omitempty"`
	Font        *layout.FontSpec      `json:"font,omitempty"`
	Glow        *layout.Glow          `json:"glow,omitempty"`
}

// 绘制操作类型。
const (
	OpLinearGradient = "linear-gradient"
	OpRadialGradient = "radial-gradient"
	OpLine           = "line"
	OpRect           = "rect"
	OpRoundRect      = "round-rect"
	OpText           = "text"
)

// Recorder 是只记录不绘制的 Surface，用于测试断言与调试 JSON 输出。
type Recorder struct {
	Measurer layout.Measurer
	// Detached 为 true 时 Context 返回 nil，模拟尚无绘图上下文的画布。
	Detached bool

	Size layout.Dimensions `json:"size"`
	Ops  []Op              `json:"ops"`
}

var (
	_ Surface = (*Recorder)(nil)
	_ Context = (*Recorder)(nil)
)

// NewRecorder 创建记录器；m 为空时使用等宽桩测量。
func NewRecorder(m layout.Measurer) *Recorder {
	if m == nil {
		m = layout.MonospaceMeasurer{}
	}
	return &Recorder{Measurer: m}
}

// Resize 记录尺寸并清空已有操作。
func (r *Recorder) Resize(size layout.Dimensions) {
	r.Size = size
	r.Ops = nil
}

func (r *Recorder) Context() Context {
	if r.Detached {
		return nil
	}
	return r
}

// Kinds 返回按顺序排列的操作类型，便于断言绘制顺序。
func (r *Recorder) Kinds() []string {
	kinds := make([]string, len(r.Ops))
	for i, op := range r.Ops {
		kinds[i] = op.Kind
	}
	return kinds
}

// Filter 返回指定类型的全部操作。
func (r *Recorder) Filter(kind string) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

func (r *Recorder) MeasureText(text string, font layout.FontSpec) float64 {
	return r.Measurer.MeasureText(text, font)
}

func (r *Recorder) FillLinearGradient(x0, y0, x1, y1 float64, stops []layout.GradientStop) {
	r.Ops = append(r.Ops, Op{Kind: OpLinearGradient, Points: []float64{x0, y0, x1, y1}, Stops: cloneStops(stops)})
}

func (r *Recorder) FillRadialGradient(cx, cy, radius float64, stops []layout.GradientStop) {
	r.Ops = append(r.Ops, Op{Kind: OpRadialGradient, Points: []float64{cx, cy}, Radius: radius, Stops: cloneStops(stops)})
}

func (r *Recorder) StrokeLine(x0, y0, x1, y1 float64, col layout.Color, width float64) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, Points: []float64{x0, y0, x1, y1}, Stroke: &col, StrokeWidth: width})
}

func (r *Recorder) FillRect(rect layout.Rect, col layout.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpRect, Rect: &rect, Fill: &col})
}

func (r *Recorder) DrawRoundRect(rect layout.Rect, radius float64, fill, stroke layout.Color, strokeWidth float64) {
	r.Ops = append(r.Ops, Op{Kind: OpRoundRect, Rect: &rect, Radius: radius, Fill: &fill, Stroke: &stroke, StrokeWidth: strokeWidth})
}

func (r *Recorder) FillText(text string, x, y float64, font layout.FontSpec, col layout.Color, glow layout.Glow) {
	r.Ops = append(r.Ops, Op{Kind: OpText, Points: []float64{x, y}, Text: text, Font: &font, Fill: &col, Glow: &glow})
}

func cloneStops(stops []layout.GradientStop) []layout.GradientStop {
	return append([]layout.GradientStop(nil), stops...)
}
