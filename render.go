package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ByLCY/edgeposter/binding"
	"github.com/ByLCY/edgeposter/config"
	"github.com/ByLCY/edgeposter/dsl"
	"github.com/ByLCY/edgeposter/layout"
	"github.com/ByLCY/edgeposter/poster"
	"github.com/ByLCY/edgeposter/renderer"
	canvasrenderer "github.com/ByLCY/edgeposter/renderer/canvas"
)

// renderOptions 汇总 render 命令的输入。空字符串表示未指定。
type renderOptions struct {
	input      string
	aspect     string
	theme      string
	title      *string
	subtitle   *string
	footer     *string
	seed       *uint32
	randomSeed bool
	output     string
	format     string
	dataPath   string
	debugPath  string
	thumbnail  int
}

func newRenderCmd() *cobra.Command {
	var (
		opts                    renderOptions
		title, subtitle, footer string
		seed                    uint32
	)

	cmd := &cobra.Command{
		Use:   "render [file.poster]",
		Short: "渲染海报并导出为 PNG / JPEG / PDF",
		Long: `从 .poster 文件和/或命令行参数渲染海报。命令行参数覆盖文件中的同名字段；
未指定比例与主题时使用 9:16 与 Cyber。`,
		Example: `  edgeposter render --title "边缘海报生成器" --theme neon --seed 42
  edgeposter render launch.poster --data data.json --format pdf -o out/launch.pdf`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.input = args[0]
			}
			flags := cmd.Flags()
			if flags.Changed("title") {
				opts.title = &title
			}
			if flags.Changed("subtitle") {
				opts.subtitle = &subtitle
			}
			if flags.Changed("footer") {
				opts.footer = &footer
			}
			if flags.Changed("seed") {
				opts.seed = &seed
			}
			return runRender(cmd.Context(), opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.aspect, "aspect", "", "画布比例：9:16、1:1、16:9（也可写作 9x16）")
	f.StringVar(&opts.theme, "theme", "", "主题：Cyber、Minimal、Neon、Magazine")
	f.StringVar(&title, "title", "", "标题")
	f.StringVar(&subtitle, "subtitle", "", "副标题")
	f.StringVar(&footer, "footer", "", "页脚")
	f.Uint32Var(&seed, "seed", 0, "随机种子")
	f.BoolVar(&opts.randomSeed, "random-seed", false, "使用随机种子（覆盖 --seed）")
	f.StringVarP(&opts.output, "out", "o", "", "输出路径（默认写入 render.output_dir）")
	f.StringVarP(&opts.format, "format", "f", "", "导出格式：png、jpeg、pdf（默认取输出扩展名或配置）")
	f.StringVar(&opts.dataPath, "data", "", "用于 ${path} 插值的 JSON / YAML 数据文件")
	f.StringVar(&opts.debugPath, "debug", "", "布局调试 JSON 输出路径")
	f.IntVar(&opts.thumbnail, "thumbnail", 0, "额外输出指定宽度的 PNG 缩略图")
	return cmd
}

// runRender 串联解析、插值、渲染与导出。
func runRender(ctx context.Context, opts renderOptions) error {
	logger := loggerFromContext(ctx)
	cfg := configFromContext(ctx)
	prog := newProgress(logger)

	req, err := resolveRequest(opts)
	if err != nil {
		return err
	}
	if opts.randomSeed {
		logger.Info("使用随机种子", "seed", req.Seed)
	}
	if opts.dataPath != "" {
		data, err := binding.LoadFile(opts.dataPath)
		if err != nil {
			return err
		}
		req = binding.ApplyRequest(req, data)
	}
	if err := req.Validate(); err != nil {
		return err
	}
	logger.Debug("resolved request", "aspect", req.Aspect, "theme", req.Theme, "seed", req.Seed)

	format, err := resolveFormat(opts.format, opts.output, cfg.Render.Format)
	if err != nil {
		return err
	}
	output := opts.output
	if output == "" {
		name := strings.ReplaceAll(poster.FileName(req, string(format)), ":", "x")
		output = filepath.Join(cfg.Render.OutputDir, name)
	}

	surface := canvasrenderer.NewSurface(canvasrenderer.Options{
		Fonts:       fontSet(cfg.Render.Fonts),
		Meta:        canvasrenderer.Meta{Title: req.Title, Subject: req.Subtitle, Creator: "EdgePoster"},
		JPEGQuality: cfg.Render.JPEGQuality,
	})
	if err := poster.Render(surface, req); err != nil {
		return fmt.Errorf("渲染海报失败: %w", err)
	}
	if err := surface.FontError(); err != nil {
		return fmt.Errorf("加载字体失败: %w", err)
	}
	for _, gap := range poster.CheckGlyphs(surface, req) {
		logger.Warn("字体缺少字形，这些字符将无法显示", "field", gap.Field, "runes", string(gap.Runes))
	}

	if opts.debugPath != "" {
		if err := writeDebug(surface, req, opts.debugPath); err != nil {
			return err
		}
		logger.Debug("wrote layout plan", "path", opts.debugPath)
	}

	if err := writeFile(output, func(f *os.File) error { return surface.Export(f, format) }); err != nil {
		return err
	}
	if opts.thumbnail > 0 {
		thumb := strings.TrimSuffix(output, filepath.Ext(output)) + ".thumb.png"
		if err := writeFile(thumb, func(f *os.File) error { return surface.Thumbnail(f, opts.thumbnail) }); err != nil {
			return err
		}
		logger.Info("已生成缩略图", "path", thumb, "width", opts.thumbnail)
	}
	prog.done("已生成海报", "path", output, "format", format)
	return nil
}

// resolveRequest 合并默认值、.poster 文件与命令行参数，后者优先。
func resolveRequest(opts renderOptions) (layout.Request, error) {
	req := layout.Request{Aspect: layout.AspectPortrait, Theme: layout.ThemeCyber}

	if opts.input != "" {
		file, err := os.Open(opts.input)
		if err != nil {
			return req, fmt.Errorf("无法打开海报文件 %s: %w", opts.input, err)
		}
		defer file.Close()

		doc, err := dsl.Parse(opts.input, file)
		if err != nil {
			return req, fmt.Errorf("解析海报文件失败: %w", err)
		}
		fromFile, err := doc.Request()
		if err != nil {
			return req, fmt.Errorf("海报文件内容无效: %w", err)
		}
		if fromFile.Aspect != "" {
			req.Aspect = fromFile.Aspect
		}
		if fromFile.Theme != "" {
			req.Theme = fromFile.Theme
		}
		req.Title, req.Subtitle, req.Footer = fromFile.Title, fromFile.Subtitle, fromFile.Footer
		req.Seed = fromFile.Seed
	}

	var err error
	if opts.aspect != "" {
		if req.Aspect, err = layout.ParseAspect(opts.aspect); err != nil {
			return req, err
		}
	}
	if opts.theme != "" {
		if req.Theme, err = layout.ParseTheme(opts.theme); err != nil {
			return req, err
		}
	}
	if opts.title != nil {
		req.Title = *opts.title
	}
	if opts.subtitle != nil {
		req.Subtitle = *opts.subtitle
	}
	if opts.footer != nil {
		req.Footer = *opts.footer
	}
	if opts.seed != nil {
		req.Seed = *opts.seed
	}
	if opts.randomSeed {
		req.Seed = rand.Uint32N(1_000_000_000)
	}
	return req, nil
}

// resolveFormat 依次取 --format、输出文件扩展名与配置。
func resolveFormat(flag, output, configured string) (renderer.Format, error) {
	name := flag
	if name == "" {
		name = strings.TrimPrefix(strings.ToLower(filepath.Ext(output)), ".")
	}
	if name == "" {
		name = configured
	}
	switch strings.ToLower(name) {
	case "", "png":
		return renderer.FormatPNG, nil
	case "jpg", "jpeg":
		return renderer.FormatJPEG, nil
	case "pdf":
		return renderer.FormatPDF, nil
	default:
		return "", fmt.Errorf("不支持的导出格式: %q", name)
	}
}

// fontSet 标题使用 title 字体，副标题与页脚使用 body 字体。
func fontSet(fc config.FontConfig) canvasrenderer.FontSet {
	return canvasrenderer.FontSet{
		Regular:   canvasrenderer.Resource{Path: fc.Body},
		SemiBold:  canvasrenderer.Resource{Path: fc.Body},
		ExtraBold: canvasrenderer.Resource{Path: fc.Title},
		System:    fc.System,
	}
}

// checkFonts 预先加载字体，配置的字体文件无法使用时尽早报错。
func checkFonts(fs canvasrenderer.FontSet) error {
	if err := canvasrenderer.NewSurface(canvasrenderer.Options{Fonts: fs}).FontError(); err != nil {
		return fmt.Errorf("加载字体失败: %w", err)
	}
	return nil
}

// debugDump 为 --debug 输出：布局结果与按顺序记录的绘制操作。
type debugDump struct {
	Plan *layout.Plan  `json:"plan"`
	Ops  []renderer.Op `json:"ops"`
}

func writeDebug(m layout.Measurer, req layout.Request, path string) error {
	plan, err := poster.Plan(m, req)
	if err != nil {
		return err
	}
	rec := renderer.NewRecorder(m)
	if err := poster.Render(rec, req); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("创建调试目录失败: %w", err)
	}
	if err := layout.WriteDebugJSON(debugDump{Plan: plan, Ops: rec.Ops}, path); err != nil {
		return fmt.Errorf("输出调试 JSON 失败: %w", err)
	}
	return nil
}

func writeFile(path string, write func(f *os.File) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("创建输出目录失败: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("创建输出文件失败: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("写入输出文件失败: %w", err)
	}
	return nil
}
