package layout

import (
	"encoding/json"
	"os"
)

// Plan 汇总一次渲染解析出的尺寸、配色、几何与文字排版，用于调试输出。
type Plan struct {
	Request  Request    `json:"request"`
	Palette  Palette    `json:"palette"`
	Geometry Geometry   `json:"geometry"`
	Text     TextLayout `json:"text"`
}

// NewPlan 解析请求并完成全部布局计算，不做任何绘制。
func NewPlan(m Measurer, req Request) (*Plan, error) {
	size, err := ResolveSize(req.Aspect)
	if err != nil {
		return nil, err
	}
	palette, err := ResolvePalette(req.Theme)
	if err != nil {
		return nil, err
	}
	g := NewGeometry(size)
	return &Plan{
		Request:  req,
		Palette:  palette,
		Geometry: g,
		Text:     LayoutText(m, req, g, palette),
	}, nil
}

// WriteDebugJSON 将布局结果（或任意可序列化的调试数据）输出为 JSON，便于调试或可视化。
func WriteDebugJSON(v any, path string) error {
	if v == nil {
		return nil
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
