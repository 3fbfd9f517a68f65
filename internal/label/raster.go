package label

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"
	imagepkg "github.com/vistaar/vistaar/internal/image"
)

// RasterEngine draws labels onto an in-memory pixel canvas.
type RasterEngine struct {
	fonts *imagepkg.Fonts
}

// ProbeRaster acquires the raster engine: it parses the typefaces and makes
// sure a canvas of the label's size can be allocated and drawn on.
func ProbeRaster() (*RasterEngine, error) {
	fonts, err := imagepkg.LoadFonts()
	if err != nil {
		return nil, err
	}
	e := &RasterEngine{fonts: fonts}
	c := e.newCanvas()
	defer c.Close()
	c.DrawText("probe", 0, 20, itemStyle, Black, AlignLeft)
	if w := c.MeasureText("probe", itemStyle); w <= 0 {
		return nil, fmt.Errorf("raster text measurement returned %.1f", w)
	}
	return e, nil
}

type rasterCanvas struct {
	dc    *gg.Context
	faces *imagepkg.FaceSet
}

func (e *RasterEngine) newCanvas() *rasterCanvas {
	return &rasterCanvas{
		dc:    gg.NewContext(CanvasWidth, CanvasHeight),
		faces: e.fonts.NewFaceSet(),
	}
}

func (c *rasterCanvas) Format() string { return FormatPNG }

func (c *rasterCanvas) FillRect(r Rect, col color.Color) {
	c.dc.SetColor(col)
	c.dc.DrawRectangle(r.X, r.Y, r.W, r.H)
	c.dc.Fill()
}

func (c *rasterCanvas) StrokeRect(r Rect, col color.Color, width float64) {
	c.dc.SetColor(col)
	c.dc.SetLineWidth(width)
	c.dc.DrawRectangle(r.X, r.Y, r.W, r.H)
	c.dc.Stroke()
}

func (c *rasterCanvas) DrawText(s string, x, y float64, style imagepkg.Style, col color.Color, align Align) {
	c.dc.SetFontFace(c.faces.Face(style))
	c.dc.SetColor(col)
	if align == AlignCenter {
		c.dc.DrawStringAnchored(s, x, y, 0.5, 0)
		return
	}
	c.dc.DrawString(s, x, y)
}

func (c *rasterCanvas) DrawImage(img image.Image, r Rect) {
	c.dc.DrawImage(imagepkg.Fit(img, int(r.W), int(r.H)), int(r.X), int(r.Y))
}

func (c *rasterCanvas) MeasureText(s string, style imagepkg.Style) float64 {
	return c.faces.Measure(s, style)
}

func (c *rasterCanvas) Encode(w io.Writer) error {
	return c.dc.EncodePNG(w)
}

func (c *rasterCanvas) Close() error {
	return c.faces.Close()
}
