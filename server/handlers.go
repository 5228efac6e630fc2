package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/ByLCY/edgeposter/layout"
	"github.com/ByLCY/edgeposter/poster"
	"github.com/ByLCY/edgeposter/renderer"
	canvasrenderer "github.com/ByLCY/edgeposter/renderer/canvas"
)

// 未指定 name 时的问候对象。
const defaultGreetingName = "ESA Pages"

// isoMillis matches JavaScript's Date.toISOString.
const isoMillis = "2006-01-02T15:04:05.000Z"

// MaxTextRunes caps each text query parameter of the poster endpoint.
const MaxTextRunes = 200

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type greeting struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
	Now     string `json:"now"`
}

// hello 返回两空格缩进的问候 JSON。name 参数存在但为空时保留空字符串。
func (s *Server) hello(c *gin.Context) {
	name, ok := c.GetQuery("name")
	if !ok {
		name = defaultGreetingName
	}
	body, err := marshalIndent(greeting{
		OK:      true,
		Message: fmt.Sprintf("Hello, %s!", name),
		Now:     s.now().UTC().Format(isoMillis),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.Header("Cache-Control", "public, max-age=60")
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

func marshalIndent(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// poster 渲染 PNG。aspect/theme 缺省为 9:16 与 Cyber，seed 缺省为 0。
func (s *Server) poster(c *gin.Context) {
	req, width, err := parsePosterQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}

	surface := canvasrenderer.NewSurface(canvasrenderer.Options{Fonts: s.fonts})
	if err := surface.FontError(); err != nil {
		s.logger.Error("加载字体失败", "id", c.GetString("request_id"), "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "font unavailable"})
		return
	}
	if err := poster.Render(surface, req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}
	for _, gap := range poster.CheckGlyphs(surface, req) {
		s.logger.Warn("字体缺少字形", "id", c.GetString("request_id"), "field", gap.Field, "runes", string(gap.Runes))
	}

	var buf bytes.Buffer
	if width > 0 {
		err = surface.Thumbnail(&buf, width)
	} else {
		err = surface.Export(&buf, renderer.FormatPNG)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", poster.FileName(req, "png")))
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

func parsePosterQuery(c *gin.Context) (layout.Request, int, error) {
	req := layout.Request{
		Aspect: layout.AspectPortrait,
		Theme:  layout.ThemeCyber,
	}
	var err error
	for _, f := range []struct {
		name string
		dst  *string
	}{
		{"title", &req.Title},
		{"subtitle", &req.Subtitle},
		{"footer", &req.Footer},
	} {
		v := c.Query(f.name)
		if n := utf8.RuneCountInString(v); n > MaxTextRunes {
			return req, 0, fmt.Errorf("%s too long: %d characters, limit %d", f.name, n, MaxTextRunes)
		}
		*f.dst = v
	}
	if v := c.Query("aspect"); v != "" {
		if req.Aspect, err = layout.ParseAspect(v); err != nil {
			return req, 0, err
		}
	}
	if v := c.Query("theme"); v != "" {
		if req.Theme, err = layout.ParseTheme(v); err != nil {
			return req, 0, err
		}
	}
	if v := c.Query("seed"); v != "" {
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return req, 0, fmt.Errorf("invalid seed %q", v)
		}
		req.Seed = uint32(n)
	}
	width := 0
	if v := c.Query("width"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return req, 0, fmt.Errorf("invalid width %q", v)
		}
		width = n
	}
	return req, width, nil
}
