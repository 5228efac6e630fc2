package poster

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/ByLCY/edgeposter/layout"
	"github.com/ByLCY/edgeposter/renderer"
	"github.com/ByLCY/edgeposter/rng"
)

func render(t *testing.T, c Compositor, req layout.Request) *renderer.Recorder {
	t.Helper()
	rec := renderer.NewRecorder(layout.MonospaceMeasurer{Advance: 0.6})
	if err := c.Render(rec, req); err != nil {
		t.Fatalf("Render 失败: %v", err)
	}
	return rec
}

func TestRenderDrawOrder(t *testing.T) {
	req := layout.Request{Aspect: layout.AspectPortrait, Theme: layout.ThemeCyber, Title: "新品上线", Subtitle: "低至 5 折", Footer: "brand", Seed: 42}
	rec := render(t, Compositor{}, req)

	// gradient, 19+33 grid lines, 9 blobs, card, accent bar, title, subtitle, footer, decoration
	var want []string
	want = append(want, renderer.OpLinearGradient)
	for i := 0; i < 19+33; i++ {
		want = append(want, renderer.OpLine)
	}
	for i := 0; i < BlobCount; i++ {
		want = append(want, renderer.OpRadialGradient)
	}
	want = append(want, renderer.OpRoundRect, renderer.OpRect, renderer.OpText, renderer.OpText, renderer.OpText, renderer.OpRoundRect)

	if got := rec.Kinds(); !reflect.DeepEqual(got, want) {
		t.Fatalf("绘制顺序错误:\n got=%v\nwant=%v", got, want)
	}
	texts := rec.Filter(renderer.OpText)
	if texts[0].Text != "新品上线" || texts[1].Text != "低至 5 折" || texts[2].Text != "brand" {
		t.Fatalf("文本顺序错误: %q %q %q", texts[0].Text, texts[1].Text, texts[2].Text)
	}
	if rec.Size != (layout.Dimensions{Width: 1080, Height: 1920}) {
		t.Fatalf("尺寸错误: %+v", rec.Size)
	}
}

func TestRenderDeterministic(t *testing.T) {
	req := layout.Request{Aspect: layout.AspectLandscape, Theme: layout.ThemeNeon, Title: "Hello", Seed: 12345}
	a := render(t, Compositor{}, req)
	b := render(t, Compositor{}, req)
	if !reflect.DeepEqual(a.Ops, b.Ops) {
		t.Fatalf("相同请求的绘制操作不一致")
	}

	req.Seed = 12346
	c := render(t, Compositor{}, req)
	if reflect.DeepEqual(a.Filter(renderer.OpRadialGradient), c.Filter(renderer.OpRadialGradient)) {
		t.Fatalf("不同种子应得到不同的光斑")
	}
}

func TestRenderBlobParameters(t *testing.T) {
	c := Compositor{NewSource: func(uint32) rng.Source {
		return &rng.Fixed{Values: []float64{0.5, 0.25, 1}}
	}}
	rec := render(t, c, layout.Request{Aspect: layout.AspectLandscape, Theme: layout.ThemeMagazine})
	blobs := rec.Filter(renderer.OpRadialGradient)
	if len(blobs) != BlobCount {
		t.Fatalf("期望 %d 个光斑，实际 %d", BlobCount, len(blobs))
	}
	accent := layout.MustHex("#FFDD00")
	one := 1.0
	for i, op := range blobs {
		if op.Points[0] != 960 || op.Points[1] != 270 {
			t.Fatalf("光斑 %d 圆心 %v", i, op.Points)
		}
		if want := (0.06 + one*0.12) * 1080; op.Radius != want {
			t.Fatalf("光斑 %d 半径 %g，期望 %g", i, op.Radius, want)
		}
		if op.Stops[0].Color != accent.WithAlpha(0.28) || op.Stops[1].Color != accent.WithAlpha(0) {
			t.Fatalf("光斑 %d 色标 %+v", i, op.Stops)
		}
	}
}

func TestRenderBlobsFollowSeed(t *testing.T) {
	rec := render(t, Compositor{}, layout.Request{Aspect: layout.AspectSquare, Theme: layout.ThemeCyber, Seed: 1})
	blobs := rec.Filter(renderer.OpRadialGradient)
	src := rng.New(1)
	x, y, r := src.Next()*1080, src.Next()*1080, (0.06+src.Next()*0.12)*1080
	if blobs[0].Points[0] != x || blobs[0].Points[1] != y || blobs[0].Radius != r {
		t.Fatalf("第一个光斑 (%g,%g,r=%g)，期望 (%g,%g,r=%g)", blobs[0].Points[0], blobs[0].Points[1], blobs[0].Radius, x, y, r)
	}
}

func TestRenderMinimalScenario(t *testing.T) {
	req := layout.Request{Aspect: layout.AspectSquare, Theme: layout.ThemeMinimal, Title: "A", Seed: 1}
	rec := render(t, Compositor{}, req)

	if rec.Size != (layout.Dimensions{Width: 1080, Height: 1080}) {
		t.Fatalf("尺寸错误: %+v", rec.Size)
	}
	lines := rec.Filter(renderer.OpLine)
	if len(lines) != 38 {
		t.Fatalf("1:1 网格应有 38 条线，实际 %d", len(lines))
	}
	for _, ln := range lines {
		if ln.Stroke.A != 0.08 {
			t.Fatalf("Minimal 网格不透明度应为 0.08，实际 %g", ln.Stroke.A)
		}
	}
	texts := rec.Filter(renderer.OpText)
	if texts[0].Text != "A" {
		t.Fatalf("标题 %q", texts[0].Text)
	}
	if texts[0].Glow.Blur != 0 {
		t.Fatalf("Minimal 标题发光应为 0，实际 %g", texts[0].Glow.Blur)
	}
	card := rec.Filter(renderer.OpRoundRect)[0]
	if card.Fill.A != 0.55 || *card.Stroke != layout.White.WithAlpha(0.14) {
		t.Fatalf("Minimal 卡片样式错误: fill=%v stroke=%v", card.Fill, card.Stroke)
	}
}

func TestRenderThemedStyles(t *testing.T) {
	rec := render(t, Compositor{}, layout.Request{Aspect: layout.AspectSquare, Theme: layout.ThemeMagazine, Title: "A"})
	accent := layout.MustHex("#FFDD00")

	if a := rec.Filter(renderer.OpLine)[0].Stroke.A; a != 0.14 {
		t.Fatalf("网格不透明度 %g", a)
	}
	card := rec.Filter(renderer.OpRoundRect)[0]
	if card.Fill.A != 0.45 || *card.Stroke != accent.WithAlpha(0.28) || card.StrokeWidth != 4 {
		t.Fatalf("卡片样式错误: %+v", card)
	}
	bar := rec.Filter(renderer.OpRect)[0]
	if *bar.Fill != accent.WithAlpha(0.9) {
		t.Fatalf("Magazine 强调条应为 0.9，实际 %v", bar.Fill)
	}
	deco := rec.Filter(renderer.OpRoundRect)[1]
	if *deco.Fill != accent.WithAlpha(0.25) || deco.Stroke.A != 0 {
		t.Fatalf("装饰块样式错误: %+v", deco)
	}
	title := rec.Filter(renderer.OpText)[0]
	if title.Glow.Blur != 32 {
		t.Fatalf("标题发光 %g", title.Glow.Blur)
	}
}

func TestRenderFallbackText(t *testing.T) {
	rec := render(t, Compositor{}, layout.Request{Aspect: layout.AspectPortrait, Theme: layout.ThemeCyber})
	var all []string
	for _, op := range rec.Filter(renderer.OpText) {
		all = append(all, op.Text)
	}
	joined := strings.Join(all, "")
	for _, want := range []string{layout.DefaultTitle, layout.DefaultSubtitle, layout.DefaultFooter} {
		if !strings.Contains(joined, want) {
			t.Fatalf("缺少默认文案 %q，实际 %q", want, all)
		}
	}
}

func TestRenderMissingContextIsNoop(t *testing.T) {
	rec := renderer.NewRecorder(nil)
	rec.Detached = true
	err := Render(rec, layout.Request{Aspect: layout.AspectSquare, Theme: layout.ThemeNeon})
	if err != nil {
		t.Fatalf("缺少上下文不应报错: %v", err)
	}
	if len(rec.Ops) != 0 {
		t.Fatalf("缺少上下文时不应绘制，实际 %d 个操作", len(rec.Ops))
	}
}

func TestRenderUnrecognizedConfiguration(t *testing.T) {
	for _, req := range []layout.Request{
		{Aspect: "4:3", Theme: layout.ThemeCyber},
		{Aspect: layout.AspectSquare, Theme: "Retro"},
	} {
		rec := renderer.NewRecorder(nil)
		err := Render(rec, req)
		if !errors.Is(err, layout.ErrUnrecognized) {
			t.Fatalf("%+v: 期望 ErrUnrecognized，实际 %v", req, err)
		}
		if len(rec.Ops) != 0 || rec.Size != (layout.Dimensions{}) {
			t.Fatalf("%+v: 报错前不应修改画布", req)
		}
	}
}

func TestRenderRerunResetsSurface(t *testing.T) {
	rec := renderer.NewRecorder(nil)
	req := layout.Request{Aspect: layout.AspectSquare, Theme: layout.ThemeCyber, Seed: 7}
	if err := Render(rec, req); err != nil {
		t.Fatal(err)
	}
	first := append([]renderer.Op(nil), rec.Ops...)
	req.Aspect = layout.AspectLandscape
	if err := Render(rec, req); err != nil {
		t.Fatal(err)
	}
	if rec.Size.Width != 1920 {
		t.Fatalf("重新渲染应按新比例调整尺寸: %+v", rec.Size)
	}
	if len(rec.Ops) == len(first) && reflect.DeepEqual(rec.Ops, first) {
		t.Fatalf("重新渲染后操作未更新")
	}
}

func TestPlan(t *testing.T) {
	plan, err := Plan(layout.MonospaceMeasurer{}, layout.Request{Aspect: layout.AspectSquare, Theme: layout.ThemeNeon, Title: "T"})
	if err != nil {
		t.Fatalf("Plan 失败: %v", err)
	}
	if plan.Geometry.Padding != 65 || plan.Palette.Accent != layout.MustHex("#FF2BD6") {
		t.Fatalf("Plan 结果错误: %+v", plan)
	}
	if _, err := Plan(layout.MonospaceMeasurer{}, layout.Request{Aspect: "x"}); !errors.Is(err, layout.ErrUnrecognized) {
		t.Fatalf("Plan 应返回 ErrUnrecognized，实际 %v", err)
	}
}

func TestFileName(t *testing.T) {
	req := layout.Request{Aspect: layout.AspectPortrait, Theme: layout.ThemeMagazine}
	if got := FileName(req, "png"); got != "EdgePoster_9:16_Magazine.png" {
		t.Fatalf("unexpected file name %q", got)
	}
}

// asciiOnly 模拟只含拉丁字形的字体。
type asciiOnly struct{ weights []int }

func (a *asciiOnly) MissingGlyphs(text string, font layout.FontSpec) []rune {
	a.weights = append(a.weights, font.Weight)
	var missing []rune
	for _, r := range text {
		if r > 0x7f && !strings.ContainsRune(string(missing), r) {
			missing = append(missing, r)
		}
	}
	return missing
}

func TestCheckGlyphs(t *testing.T) {
	gc := &asciiOnly{}
	gaps := CheckGlyphs(gc, layout.Request{Title: "Hello", Subtitle: "你好 world", Footer: "ok"})
	if len(gaps) != 1 || gaps[0].Field != "subtitle" || string(gaps[0].Runes) != "你好" {
		t.Fatalf("字形缺失报告错误: %+v", gaps)
	}
	want := []int{layout.WeightTitle, layout.WeightBody, layout.WeightBody}
	if !reflect.DeepEqual(gc.weights, want) {
		t.Fatalf("字重错误: got=%v want=%v", gc.weights, want)
	}
}

func TestCheckGlyphsCoversDefaultCopy(t *testing.T) {
	gaps := CheckGlyphs(&asciiOnly{}, layout.Request{})
	var fields []string
	for _, g := range gaps {
		fields = append(fields, g.Field)
	}
	// 默认标题与副标题为中文，默认页脚含 "·"
	if strings.Join(fields, ",") != "title,subtitle,footer" {
		t.Fatalf("默认文案应全部被检查: %v", fields)
	}
}
