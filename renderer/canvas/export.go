package canvasrenderer

import (
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"
	"github.com/tdewolff/canvas/renderers/pdf"

	"github.com/ByLCY/edgeposter/renderer"
)

// DefaultJPEGQuality 用于未显式设置质量的 JPEG 导出。
const DefaultJPEGQuality = 92

// Meta 写入 PDF 文档信息。
type Meta struct {
	Title   string
	Subject string
	Creator string
}

// SetMeta sets the document info used by PDF export.
func (s *Surface) SetMeta(m Meta) { s.meta = m }

// SetJPEGQuality sets the quality (1-100) used by JPEG export.
func (s *Surface) SetJPEGQuality(q int) { s.jpegQuality = q }

// Export 将当前画布编码为指定格式写入 w。
func (s *Surface) Export(w io.Writer, format renderer.Format) error {
	if s.c == nil {
		return fmt.Errorf("画布尚未分配")
	}
	switch format {
	case renderer.FormatPNG, "":
		img, err := s.Image()
		if err != nil {
			return err
		}
		return encodeImage(w, img, imaging.PNG, 0)
	case renderer.FormatJPEG:
		img, err := s.Image()
		if err != nil {
			return err
		}
		return encodeImage(w, img, imaging.JPEG, s.jpegQuality)
	case renderer.FormatPDF:
		return s.exportPDF(w)
	default:
		return fmt.Errorf("不支持的导出格式: %q", format)
	}
}

// Thumbnail 将画布缩放到给定宽度（保持纵横比）后编码为 PNG。
// width 不小于画布宽度时按原尺寸输出。
func (s *Surface) Thumbnail(w io.Writer, width int) error {
	img, err := s.Image()
	if err != nil {
		return err
	}
	if width > 0 && width < img.Bounds().Dx() {
		return encodeImage(w, imaging.Resize(img, width, 0, imaging.Lanczos), imaging.PNG, 0)
	}
	return encodeImage(w, img, imaging.PNG, 0)
}

func (s *Surface) exportPDF(w io.Writer) error {
	writer := pdf.New(w, s.c.W, s.c.H, nil)
	if s.meta != (Meta{}) {
		writer.SetInfo(s.meta.Title, s.meta.Subject, "", "", s.meta.Creator)
	}
	s.c.RenderTo(writer)
	if err := writer.Close(); err != nil {
		return fmt.Errorf("写入 PDF 失败: %w", err)
	}
	return nil
}

func encodeImage(w io.Writer, img image.Image, f imaging.Format, quality int) error {
	var opts []imaging.EncodeOption
	if f == imaging.JPEG {
		if quality <= 0 || quality > 100 {
			quality = DefaultJPEGQuality
		}
		opts = append(opts, imaging.JPEGQuality(quality))
	}
	if err := imaging.Encode(w, img, f, opts...); err != nil {
		return fmt.Errorf("编码 %s 失败: %w", f, err)
	}
	return nil
}
