// Package preview renders a canvas as a raster image or an HTML page.
//
// The raster renderer draws regions in z-order on a white background using
// the Go fonts. It is a preview, not a faithful PowerPoint renderer: text is
// laid out line by line with the default text box insets and no kerning
// adjustments beyond what the font provides.
package preview

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"math"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/tsawler/slidegen/model"
)

// DefaultWidth is the preview width in pixels when Options.Width is zero.
const DefaultWidth = 1280

// Default text box insets, matching the OOXML bodyPr defaults.
const (
	insetX model.EMU = 91440
	insetY model.EMU = 45720
)

var errEmptyCanvas = errors.New("canvas has no area")

// Options configures previews.
type Options struct {
	// Width is the output width in pixels. Height follows the canvas aspect
	// ratio. Default: DefaultWidth.
	Width int
}

func (o Options) width() int {
	if o.Width <= 0 {
		return DefaultWidth
	}
	return o.Width
}

// renderer draws one canvas.
type renderer struct {
	dst   *image.NRGBA
	scale float64 // pixels per EMU
	faces *faceCache
}

func (r *renderer) px(e model.EMU) int {
	return int(math.Round(float64(e) * r.scale))
}

func (r *renderer) rect(b model.Rect) image.Rectangle {
	return image.Rect(r.px(b.X), r.px(b.Y), r.px(b.Right()), r.px(b.Bottom()))
}

// Image renders the canvas.
func Image(c *model.Canvas, opts Options) (*image.NRGBA, error) {
	if c == nil {
		return nil, fmt.Errorf("nil canvas")
	}
	if c.Width <= 0 || c.Height <= 0 {
		return nil, errEmptyCanvas
	}

	faces, err := newFaceCache()
	if err != nil {
		return nil, err
	}
	defer faces.Close()

	w := opts.width()
	scale := float64(w) / float64(c.Width)
	h := int(math.Round(float64(c.Height) * scale))

	r := &renderer{
		dst:   imaging.New(w, h, color.NRGBA{R: 255, G: 255, B: 255, A: 255}),
		scale: scale,
		faces: faces,
	}

	for _, region := range c.Regions() {
		switch reg := region.(type) {
		case *model.ShapeRegion:
			r.drawShape(reg)
		case *model.TextRegion:
			if err := r.drawText(reg); err != nil {
				return nil, fmt.Errorf("region %q: %w", reg.Name(), err)
			}
		}
	}

	return r.dst, nil
}

// PNG renders the canvas and encodes it as PNG.
func PNG(w io.Writer, c *model.Canvas, opts Options) error {
	img, err := Image(c, opts)
	if err != nil {
		return err
	}
	return imaging.Encode(w, img, imaging.PNG)
}

// Thumbnail scales img down to the given width, keeping its aspect ratio.
func Thumbnail(img image.Image, width int) *image.NRGBA {
	return imaging.Resize(img, width, 0, imaging.Lanczos)
}

// SaveImage writes img to path; the format follows the extension.
func SaveImage(path string, img image.Image) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

func (r *renderer) drawShape(s *model.ShapeRegion) {
	rect := r.rect(s.Bounds())
	if s.Fill != nil {
		draw.Draw(r.dst, rect, image.NewUniform(s.Fill.RGBA()), image.Point{}, draw.Src)
	}
	if s.Line != nil {
		r.strokeRect(rect, s.Line.RGBA())
	}
}

// strokeRect draws a one pixel outline inside rect.
func (r *renderer) strokeRect(rect image.Rectangle, c color.RGBA) {
	if rect.Empty() {
		return
	}
	src := image.NewUniform(c)
	edges := []image.Rectangle{
		image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y+1),
		image.Rect(rect.Min.X, rect.Max.Y-1, rect.Max.X, rect.Max.Y),
		image.Rect(rect.Min.X, rect.Min.Y, rect.Min.X+1, rect.Max.Y),
		image.Rect(rect.Max.X-1, rect.Min.Y, rect.Max.X, rect.Max.Y),
	}
	for _, e := range edges {
		draw.Draw(r.dst, e, src, image.Point{}, draw.Src)
	}
}

func (r *renderer) drawText(t *model.TextRegion) error {
	b := t.Bounds()
	left := r.px(b.X + insetX)
	right := r.px(b.Right() - insetX)
	y := fixed.I(r.px(b.Y + insetY))

	for _, p := range t.Paragraphs() {
		face, err := r.faces.face(r.fontPixels(p.Size), p.Bold)
		if err != nil {
			return err
		}
		m := face.Metrics()

		lines := []string{p.Text}
		if t.WordWrap {
			lines = wrapWords(face, p.Text, fixed.I(right-left))
		}

		for _, line := range lines {
			width := font.MeasureString(face, line)
			x := fixed.I(left)
			switch p.Alignment {
			case model.AlignCenter:
				x = (fixed.I(left+right) - width) / 2
			case model.AlignRight:
				x = fixed.I(right) - width
			}

			d := &font.Drawer{
				Dst:  r.dst,
				Src:  image.NewUniform(textColor(p)),
				Face: face,
				Dot:  fixed.Point26_6{X: x, Y: y + m.Ascent},
			}
			d.DrawString(line)
			y += m.Height
		}
	}
	return nil
}

// fontPixels converts a paragraph size in points to pixels. Zero means the
// 18 point viewer default.
func (r *renderer) fontPixels(pt float64) float64 {
	if pt <= 0 {
		pt = 18
	}
	px := pt * float64(model.EMUPerPoint) * r.scale
	return math.Max(1, math.Round(px*4)/4)
}

func textColor(p *model.Paragraph) color.Color {
	if p.Color == nil {
		return color.Black
	}
	return p.Color.RGBA()
}

// wrapWords breaks text at spaces into lines no wider than limit. A word wider
// than limit gets a line of its own.
func wrapWords(face font.Face, text string, limit fixed.Int26_6) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := words[0]
	for _, w := range words[1:] {
		candidate := current + " " + w
		if font.MeasureString(face, candidate) <= limit {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = w
	}
	return append(lines, current)
}
