package label

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/go-pdf/fpdf"
	imagepkg "github.com/vistaar/vistaar/internal/image"
)

const pdfFontFamily = "gofont"

// newPDFDocument starts a one-page document the size of the label canvas,
// measured in points so canvas units map 1:1.
func newPDFDocument() *fpdf.Fpdf {
	doc := fpdf.NewCustom(&fpdf.InitType{
		UnitStr: "pt",
		Size:    fpdf.SizeType{Wd: CanvasWidth, Ht: CanvasHeight},
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.SetCreator("VISTAAR", true)
	doc.AddPage()
	return doc
}

// pdfCanvas draws a label straight into a PDF page, with no raster step.
type pdfCanvas struct {
	doc    *fpdf.Fpdf
	images int
}

func newPDFCanvas() *pdfCanvas {
	doc := newPDFDocument()
	doc.AddUTF8FontFromBytes(pdfFontFamily, "", imagepkg.RegularTTF())
	doc.AddUTF8FontFromBytes(pdfFontFamily, "B", imagepkg.BoldTTF())
	return &pdfCanvas{doc: doc}
}

func (c *pdfCanvas) Format() string { return FormatPDF }

func rgb(col color.Color) (int, int, int) {
	r, g, b, _ := col.RGBA()
	return int(r >> 8), int(g >> 8), int(b >> 8)
}

func (c *pdfCanvas) setFont(style imagepkg.Style) {
	weight := ""
	if style.Bold {
		weight = "B"
	}
	c.doc.SetFont(pdfFontFamily, weight, style.Size)
}

func (c *pdfCanvas) FillRect(r Rect, col color.Color) {
	c.doc.SetFillColor(rgb(col))
	c.doc.Rect(r.X, r.Y, r.W, r.H, "F")
}

func (c *pdfCanvas) StrokeRect(r Rect, col color.Color, width float64) {
	c.doc.SetDrawColor(rgb(col))
	c.doc.SetLineWidth(width)
	c.doc.Rect(r.X, r.Y, r.W, r.H, "D")
}

func (c *pdfCanvas) DrawText(s string, x, y float64, style imagepkg.Style, col color.Color, align Align) {
	c.setFont(style)
	c.doc.SetTextColor(rgb(col))
	if align == AlignCenter {
		x -= c.doc.GetStringWidth(s) / 2
	}
	c.doc.Text(x, y, s)
}

func (c *pdfCanvas) DrawImage(img image.Image, r Rect) {
	data, err := imagepkg.EncodePNG(img)
	if err != nil {
		c.doc.SetError(fmt.Errorf("encode image for pdf: %w", err))
		return
	}
	c.images++
	placePNG(c.doc, fmt.Sprintf("image-%d", c.images), data, r)
}

func (c *pdfCanvas) MeasureText(s string, style imagepkg.Style) float64 {
	c.setFont(style)
	return c.doc.GetStringWidth(s)
}

func (c *pdfCanvas) Encode(w io.Writer) error {
	return c.doc.Output(w)
}

func (c *pdfCanvas) Close() error { return nil }

// placePNG registers PNG bytes under name and draws them into r.
func placePNG(doc *fpdf.Fpdf, name string, data []byte, r Rect) {
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	doc.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
	doc.ImageOptions(name, r.X, r.Y, r.W, r.H, false, opts, 0, "")
}
