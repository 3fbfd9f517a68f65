package label

import (
	"image"
	"image/color"

	imagepkg "github.com/vistaar/vistaar/internal/image"
)

// Canvas geometry and layout constants, in canvas units (pixels for PNG,
// points for PDF).
const (
	CanvasWidth  = 800
	CanvasHeight = 1000

	borderWidth = 8
	borderInset = 4

	marginX    = 50
	indentX    = 70
	startY     = 50
	titleWidth = 700

	logoSize    = 100
	logoAdvance = logoSize + 30

	titleLineHeight = 55
	titleGap        = 10
	categoryAdvance = 50
	headingAdvance  = 30
	itemAdvance     = 25
	sectionGap      = 20

	qrSize    = 150
	qrAdvance = 180

	footerAdvance = 30

	FooterText = "Packaged & Designed by VISTAAR"
)

var (
	White       = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	Black       = color.RGBA{A: 0xFF}
	Accent      = color.RGBA{R: 0xD4, G: 0xAF, B: 0x37, A: 0xFF}
	Placeholder = color.RGBA{R: 0xCC, G: 0xCC, B: 0xCC, A: 0xFF}
	MutedText   = color.RGBA{R: 0x66, G: 0x66, B: 0x66, A: 0xFF}
)

var (
	titleStyle       = imagepkg.Style{Size: 48, Bold: true}
	categoryStyle    = imagepkg.Style{Size: 24, Bold: true}
	headingStyle     = imagepkg.Style{Size: 20, Bold: true}
	itemStyle        = imagepkg.Style{Size: 16}
	placeholderStyle = imagepkg.Style{Size: 14}
	footerStyle      = imagepkg.Style{Size: 18, Bold: true}
	sellerStyle      = imagepkg.Style{Size: 14}
)

type Rect struct {
	X, Y, W, H float64
}

type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// Canvas is the drawing surface a layout is replayed onto. Text is anchored
// at its baseline; centered text is centered horizontally on x.
type Canvas interface {
	FillRect(r Rect, c color.Color)
	StrokeRect(r Rect, c color.Color, width float64)
	DrawText(s string, x, y float64, style imagepkg.Style, c color.Color, align Align)
	DrawImage(img image.Image, r Rect)
}

// Measurer reports rendered text widths for wrapping.
type Measurer interface {
	MeasureText(s string, style imagepkg.Style) float64
}

// Command is one drawing step of a layout.
type Command interface {
	Draw(c Canvas)
}

type FillRect struct {
	Rect  Rect
	Color color.Color
}

func (f FillRect) Draw(c Canvas) { c.FillRect(f.Rect, f.Color) }

type StrokeRect struct {
	Rect  Rect
	Color color.Color
	Width float64
}

func (s StrokeRect) Draw(c Canvas) { c.StrokeRect(s.Rect, s.Color, s.Width) }

type Text struct {
	Text  string
	X, Y  float64
	Style imagepkg.Style
	Color color.Color
	Align Align
}

func (t Text) Draw(c Canvas) { c.DrawText(t.Text, t.X, t.Y, t.Style, t.Color, t.Align) }

type Image struct {
	Image image.Image
	Rect  Rect
}

func (i Image) Draw(c Canvas) { c.DrawImage(i.Image, i.Rect) }

// Content is everything a label shows, already parsed and loaded.
type Content struct {
	ProductName string
	Category    string
	SellerName  string
	Ingredients []string
	Nutrition   Nutrition
	Logo        image.Image // nil: no logo
	QR          image.Image // nil: placeholder box
}

// Plan lays the label out top to bottom and returns the drawing commands in
// order. Both renderers replay the same plan.
func Plan(content Content, m Measurer) []Command {
	var cmds []Command
	add := func(c Command) { cmds = append(cmds, c) }
	text := func(s string, x, y float64, style imagepkg.Style, c color.Color) {
		add(Text{Text: s, X: x, Y: y, Style: style, Color: c, Align: AlignLeft})
	}
	centered := func(s string, x, y float64, style imagepkg.Style, c color.Color) {
		add(Text{Text: s, X: x, Y: y, Style: style, Color: c, Align: AlignCenter})
	}

	add(FillRect{Rect: Rect{0, 0, CanvasWidth, CanvasHeight}, Color: White})
	add(StrokeRect{
		Rect:  Rect{borderInset, borderInset, CanvasWidth - 2*borderInset, CanvasHeight - 2*borderInset},
		Color: Accent,
		Width: borderWidth,
	})

	y := float64(startY)

	if content.Logo != nil {
		add(Image{Image: content.Logo, Rect: Rect{marginX, y, logoSize, logoSize}})
		y += logoAdvance
	}

	measureTitle := func(s string) float64 { return m.MeasureText(s, titleStyle) }
	for _, line := range WrapText(measureTitle, content.ProductName, titleWidth) {
		text(line, marginX, y, titleStyle, Black)
		y += titleLineHeight
	}
	y += titleGap

	text(content.Category, marginX, y, categoryStyle, Accent)
	y += categoryAdvance

	if len(content.Ingredients) > 0 {
		text("Ingredients:", marginX, y, headingStyle, Black)
		y += headingAdvance
		for _, item := range content.Ingredients {
			text("• "+item, indentX, y, itemStyle, Black)
			y += itemAdvance
		}
		y += sectionGap
	}

	if len(content.Nutrition) > 0 {
		text("Nutrition Facts:", marginX, y, headingStyle, Black)
		y += headingAdvance
		for _, line := range content.Nutrition.Lines() {
			text(line, indentX, y, itemStyle, Black)
			y += itemAdvance
		}
		y += sectionGap
	}

	if content.QR != nil {
		add(Image{Image: content.QR, Rect: Rect{marginX, y, qrSize, qrSize}})
	} else {
		add(FillRect{Rect: Rect{marginX, y, qrSize, qrSize}, Color: Placeholder})
		centered("QR Code", marginX+qrSize/2, y+qrSize/2, placeholderStyle, MutedText)
	}
	y += qrAdvance

	centered(FooterText, CanvasWidth/2, y, footerStyle, Accent)
	y += footerAdvance
	centered("Seller: "+content.SellerName, CanvasWidth/2, y, sellerStyle, Black)

	return cmds
}
