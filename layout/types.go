package layout

// 该文件定义海报请求、尺寸、配色与排版结果，供布局计算、渲染与调试 JSON 共用。

// Aspect 表示输出图片比例，仅支持 9:16、1:1、16:9 三种。
type Aspect string

const (
	AspectPortrait  Aspect = "9:16"
	AspectSquare    Aspect = "1:1"
	AspectLandscape Aspect = "16:9"
)

// Theme 表示视觉风格，对应一组固定的三色配色。
type Theme string

const (
	ThemeCyber    Theme = "Cyber"
	ThemeMinimal  Theme = "Minimal"
	ThemeNeon     Theme = "Neon"
	ThemeMagazine Theme = "Magazine"
)

// Request 描述一次渲染所需的全部参数。每次渲染构造一个新值，渲染期间不可变。
type Request struct {
	Aspect   Aspect `json:"aspect" yaml:"aspect"`
	Theme    Theme  `json:"theme" yaml:"theme"`
	Title    string `json:"title" yaml:"title"`
	Subtitle string `json:"subtitle" yaml:"subtitle"`
	Footer   string `json:"footer" yaml:"footer"`
	Seed     uint32 `json:"seed" yaml:"seed"`
}

// Dimensions 为像素尺寸。
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Min 返回宽高中较小的一边，大部分比例常量都以它为基准。
func (d Dimensions) Min() float64 {
	return float64(min(d.Width, d.Height))
}

// Palette 是主题对应的三色：渐变起点、渐变中点与强调色。
type Palette struct {
	GradientStart Color `json:"gradientStart"`
	GradientMid   Color `json:"gradientMid"`
	Accent        Color `json:"accent"`
}

// Rect 以像素为单位，原点在左上角。
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// GradientStop 为渐变色标。
type GradientStop struct {
	Offset float64 `json:"offset"`
	Color  Color   `json:"color"`
}

// FontSpec 描述字号（像素）与字重（CSS 数值，如 600/800）。
type FontSpec struct {
	Size   float64 `json:"size"`
	Weight int     `json:"weight"`
}

// Glow 为文字外发光。Blur 为 0 时不绘制。
type Glow struct {
	Color Color   `json:"color"`
	Blur  float64 `json:"blur"`
}

// TextLine 表示排版后的一行文本及其左上角锚点。
type TextLine struct {
	Content string  `json:"content"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Width   float64 `json:"width"`
}

// TextBlock 是一组共享字体、颜色与发光效果的文本行。
type TextBlock struct {
	Lines []TextLine `json:"lines"`
	Font  FontSpec   `json:"font"`
	Color Color      `json:"color"`
	Glow  Glow       `json:"glow"`
	// Bottom 为最后一行之后的游标位置，下一个块从这里继续排。
	Bottom float64 `json:"bottom"`
}

// TextLayout 汇总标题、副标题与页脚的排版结果。
type TextLayout struct {
	Title    TextBlock `json:"title"`
	Subtitle TextBlock `json:"subtitle"`
	Footer   TextBlock `json:"footer"`
}
