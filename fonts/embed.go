package fonts

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/goregular"
)

// 内置字体名，对应 Go 字体家族的三个字重。
const (
	Regular = "go-regular"
	Medium  = "go-medium"
	Bold    = "go-bold"
)

// SystemCJK 列出常见的中文系统字体族，逗号分隔，按顺序匹配第一个已安装的。
const SystemCJK = "Noto Sans CJK SC, Noto Sans SC, Source Han Sans SC, PingFang SC, Hiragino Sans GB, Microsoft YaHei, WenQuanYi Micro Hei, WenQuanYi Zen Hei"

var builtin = map[string][]byte{
	Regular: goregular.TTF,
	Medium:  gomedium.TTF,
	Bold:    gobold.TTF,
}

// Builtin 返回内置字体的 TTF 数据。
func Builtin(name string) ([]byte, error) {
	data, ok := builtin[name]
	if !ok {
		return nil, fmt.Errorf("找不到内置字体 %s", name)
	}
	return data, nil
}

// Load 读取字体数据，src 可写为 "embed:go-bold" 形式的内置字体，或字体文件路径。
func Load(src string) ([]byte, error) {
	if name, ok := strings.CutPrefix(src, "embed:"); ok {
		return Builtin(name)
	}
	if src == "" {
		return nil, fmt.Errorf("字体路径为空")
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return nil, fmt.Errorf("读取字体 %s 失败: %w", src, err)
	}
	return data, nil
}
