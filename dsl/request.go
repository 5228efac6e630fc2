package dsl

import (
	"fmt"
	"strconv"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/ByLCY/edgeposter/layout"
)

// Request converts the document into a poster request. Header values are
// applied first, so `aspect`, `theme` and `seed` statements in the block
// override them. Aspect and theme stay empty when the file omits them.
func (d *Document) Request() (layout.Request, error) {
	var req layout.Request
	if d == nil {
		return req, fmt.Errorf("文档为空")
	}

	for _, arg := range d.Header {
		var err error
		switch {
		case arg.Aspect != nil:
			req.Aspect, err = layout.ParseAspect(string(*arg.Aspect))
		case arg.Theme != nil:
			req.Theme, err = layout.ParseTheme(*arg.Theme)
		case arg.Seed != nil:
			req.Seed, err = parseSeed(*arg.Seed)
		}
		if err != nil {
			return req, posError(arg.Pos, err)
		}
	}

	if d.Block == nil {
		return req, nil
	}
	for _, st := range d.Block.Statements {
		if err := apply(&req, st); err != nil {
			return req, posError(st.Pos, err)
		}
	}
	return req, nil
}

func apply(req *layout.Request, st *Assignment) error {
	v := st.Value
	switch st.Key {
	case "title", "subtitle", "footer":
		if v.Kind() != "string" {
			return fmt.Errorf("%s 需要字符串，实际为 %s", st.Key, v.Kind())
		}
		switch st.Key {
		case "title":
			req.Title = v.Text()
		case "subtitle":
			req.Subtitle = v.Text()
		default:
			req.Footer = v.Text()
		}
	case "aspect":
		a, err := layout.ParseAspect(v.Text())
		if err != nil {
			return err
		}
		req.Aspect = a
	case "theme":
		t, err := layout.ParseTheme(v.Text())
		if err != nil {
			return err
		}
		req.Theme = t
	case "seed":
		if v.Kind() != "number" {
			return fmt.Errorf("seed 需要数字，实际为 %s", v.Kind())
		}
		seed, err := parseSeed(v.Text())
		if err != nil {
			return err
		}
		req.Seed = seed
	default:
		return fmt.Errorf("未知字段 %q", st.Key)
	}
	return nil
}

func parseSeed(s string) (uint32, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("无效的 seed %q: %w", s, err)
	}
	return uint32(n), nil
}

func posError(pos lexer.Position, err error) error {
	if pos.Line == 0 {
		return err
	}
	return fmt.Errorf("%s: %w", pos, err)
}
