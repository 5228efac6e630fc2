package layout

import "unicode/utf8"

// Measurer 负责按字体度量测量单行文本宽度（像素）。渲染后端实现它，测试中可以换成固定步进的桩实现。
type Measurer interface {
	MeasureText(text string, font FontSpec) float64
}

// MeasureFunc 让普通函数满足 Measurer。
type MeasureFunc func(text string, font FontSpec) float64

func (f MeasureFunc) MeasureText(text string, font FontSpec) float64 { return f(text, font) }

// MonospaceMeasurer 假设每个字符宽度均为 Advance 倍字号，不依赖任何字体文件。
type MonospaceMeasurer struct {
	Advance float64
}

func (m MonospaceMeasurer) MeasureText(text string, font FontSpec) float64 {
	adv := m.Advance
	if adv <= 0 {
		adv = 0.5
	}
	return float64(utf8.RuneCountInString(text)) * adv * font.Size
}
