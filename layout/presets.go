package layout

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnrecognized 表示比例或主题不在支持的集合内。尺寸表与配色表只对文档列出的取值完备，
// 因此这里显式报错而不是静默回退到默认值。
var ErrUnrecognized = errors.New("unrecognized configuration")

var sizes = map[Aspect]Dimensions{
	AspectPortrait:  {Width: 1080, Height: 1920},
	AspectSquare:    {Width: 1080, Height: 1080},
	AspectLandscape: {Width: 1920, Height: 1080},
}

var palettes = map[Theme]Palette{
	ThemeCyber:    {GradientStart: MustHex("#070A1A"), GradientMid: MustHex("#1B2A6B"), Accent: MustHex("#00E5FF")},
	ThemeMinimal:  {GradientStart: MustHex("#0A0A0A"), GradientMid: MustHex("#1A1A1A"), Accent: MustHex("#FFFFFF")},
	ThemeNeon:     {GradientStart: MustHex("#090018"), GradientMid: MustHex("#2B007A"), Accent: MustHex("#FF2BD6")},
	ThemeMagazine: {GradientStart: MustHex("#0B0B0B"), GradientMid: MustHex("#222222"), Accent: MustHex("#FFDD00")},
}

// Aspects 按界面展示顺序返回全部比例。
func Aspects() []Aspect {
	return []Aspect{AspectPortrait, AspectSquare, AspectLandscape}
}

// Themes 按界面展示顺序返回全部主题。
func Themes() []Theme {
	return []Theme{ThemeCyber, ThemeMinimal, ThemeNeon, ThemeMagazine}
}

// ResolveSize 将比例映射为固定像素尺寸。
func ResolveSize(a Aspect) (Dimensions, error) {
	d, ok := sizes[a]
	if !ok {
		return Dimensions{}, fmt.Errorf("%w: aspect %q", ErrUnrecognized, string(a))
	}
	return d, nil
}

// ResolvePalette 将主题映射为固定配色。
func ResolvePalette(t Theme) (Palette, error) {
	p, ok := palettes[t]
	if !ok {
		return Palette{}, fmt.Errorf("%w: theme %q", ErrUnrecognized, string(t))
	}
	return p, nil
}

// ParseAspect 解析用户输入的比例，允许 "9x16" 这样的写法。
func ParseAspect(s string) (Aspect, error) {
	a := Aspect(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "x", ":"))
	if _, ok := sizes[a]; !ok {
		return "", fmt.Errorf("%w: aspect %q", ErrUnrecognized, s)
	}
	return a, nil
}

// ParseTheme 解析主题名，大小写不敏感。
func ParseTheme(s string) (Theme, error) {
	name := strings.TrimSpace(s)
	for _, t := range Themes() {
		if strings.EqualFold(name, string(t)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: theme %q", ErrUnrecognized, s)
}

// Validate 检查请求的比例与主题是否合法。
func (r Request) Validate() error {
	if _, err := ResolveSize(r.Aspect); err != nil {
		return err
	}
	if _, err := ResolvePalette(r.Theme); err != nil {
		return err
	}
	return nil
}
