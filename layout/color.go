package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// Color 采用 0-255 的 RGB 数值，A 为 0-1 的不透明度。
type Color struct {
	R uint8   `json:"r"`
	G uint8   `json:"g"`
	B uint8   `json:"b"`
	A float64 `json:"a"`
}

var (
	White = Color{R: 255, G: 255, B: 255, A: 1}
	Black = Color{A: 1}
)

// Hex 解析 #RRGGBB 形式的颜色，结果不透明。
func Hex(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return Color{}, fmt.Errorf("颜色 %q 不是 #RRGGBB 格式", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("解析颜色 %q 失败: %w", s, err)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 1}, nil
}

// MustHex 与 Hex 相同，解析失败时 panic，仅用于内置常量表。
func MustHex(s string) Color {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// WithAlpha 返回同色但不透明度为 a 的颜色。
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// String 输出 #RRGGBB，不透明度不为 1 时附带 @a。
func (c Color) String() string {
	if c.A == 1 {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X@%g", c.R, c.G, c.B, c.A)
}
