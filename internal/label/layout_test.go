package label

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	imagepkg "github.com/vistaar/vistaar/internal/image"
)

// monoMeasurer gives every rune a width of half the font size.
type monoMeasurer struct{}

func (monoMeasurer) MeasureText(s string, style imagepkg.Style) float64 {
	return float64(len([]rune(s))) * style.Size / 2
}

func texts(cmds []Command) []Text {
	var out []Text
	for _, c := range cmds {
		if t, ok := c.(Text); ok {
			out = append(out, t)
		}
	}
	return out
}

func findText(t *testing.T, cmds []Command, s string) Text {
	t.Helper()
	for _, txt := range texts(cmds) {
		if txt.Text == s {
			return txt
		}
	}
	require.Failf(t, "text not found", "%q", s)
	return Text{}
}

func hasText(cmds []Command, s string) bool {
	for _, txt := range texts(cmds) {
		if txt.Text == s {
			return true
		}
	}
	return false
}

func images(cmds []Command) []Image {
	var out []Image
	for _, c := range cmds {
		if i, ok := c.(Image); ok {
			out = append(out, i)
		}
	}
	return out
}

func square(n int) image.Image {
	return image.NewRGBA(image.Rect(0, 0, n, n))
}

func TestPlanFullLabel(t *testing.T) {
	logo, qr := square(10), square(20)
	cmds := Plan(Content{
		ProductName: "Honey",
		Category:    "Food",
		SellerName:  "Acme",
		Ingredients: []string{"honey", "love"},
		Nutrition:   Nutrition{{Key: "calories", Value: "100"}},
		Logo:        logo,
		QR:          qr,
	}, monoMeasurer{})

	require.GreaterOrEqual(t, len(cmds), 2)
	assert.Equal(t, FillRect{Rect: Rect{0, 0, 800, 1000}, Color: White}, cmds[0])
	assert.Equal(t, StrokeRect{Rect: Rect{4, 4, 792, 992}, Color: Accent, Width: 8}, cmds[1])

	imgs := images(cmds)
	require.Len(t, imgs, 2)
	assert.Equal(t, Rect{50, 50, 100, 100}, imgs[0].Rect)
	assert.Same(t, logo, imgs[0].Image)

	// Logo pushes the title down by 130.
	title := findText(t, cmds, "Honey")
	assert.Equal(t, 180.0, title.Y)
	assert.Equal(t, 50.0, title.X)
	assert.Equal(t, imagepkg.Style{Size: 48, Bold: true}, title.Style)

	category := findText(t, cmds, "Food")
	assert.Equal(t, 180.0+55+10, category.Y)
	assert.Equal(t, color.Color(Accent), category.Color)

	heading := findText(t, cmds, "Ingredients:")
	assert.Equal(t, 295.0, heading.Y)
	first := findText(t, cmds, "• honey")
	assert.Equal(t, 325.0, first.Y)
	assert.Equal(t, 70.0, first.X)
	assert.Equal(t, 350.0, findText(t, cmds, "• love").Y)

	assert.Equal(t, 395.0, findText(t, cmds, "Nutrition Facts:").Y)
	fact := findText(t, cmds, "calories: 100")
	assert.Equal(t, 425.0, fact.Y)
	assert.Equal(t, 70.0, fact.X)

	assert.Equal(t, Rect{50, 470, 150, 150}, imgs[1].Rect)
	assert.Same(t, qr, imgs[1].Image)

	footer := findText(t, cmds, FooterText)
	assert.Equal(t, 650.0, footer.Y)
	assert.Equal(t, 400.0, footer.X)
	assert.Equal(t, AlignCenter, footer.Align)
	seller := findText(t, cmds, "Seller: Acme")
	assert.Equal(t, 680.0, seller.Y)
	assert.Equal(t, AlignCenter, seller.Align)
}

func TestPlanMinimalLabel(t *testing.T) {
	cmds := Plan(Content{ProductName: "Soap", Category: "Cosmetic", SellerName: "Acme"}, monoMeasurer{})

	assert.Equal(t, 50.0, findText(t, cmds, "Soap").Y, "no logo leaves the cursor at 50")
	assert.Equal(t, 115.0, findText(t, cmds, "Cosmetic").Y)
	assert.False(t, hasText(cmds, "Ingredients:"))
	assert.False(t, hasText(cmds, "Nutrition Facts:"))
	assert.Empty(t, images(cmds))

	// QR placeholder box with its caption centered inside.
	var box *FillRect
	for _, c := range cmds {
		if f, ok := c.(FillRect); ok && f.Color == color.Color(Placeholder) {
			box = &f
		}
	}
	require.NotNil(t, box)
	assert.Equal(t, Rect{50, 165, 150, 150}, box.Rect)
	caption := findText(t, cmds, "QR Code")
	assert.Equal(t, 125.0, caption.X)
	assert.Equal(t, 240.0, caption.Y)
	assert.Equal(t, AlignCenter, caption.Align)

	assert.Equal(t, 345.0, findText(t, cmds, FooterText).Y)
	assert.Equal(t, 375.0, findText(t, cmds, "Seller: Acme").Y)
}

func TestPlanWrapsProductName(t *testing.T) {
	// 24px per rune at 48px: 29 runes fit in 700.
	name := "Cold Pressed Virgin Coconut Oil With Added Vitamins"
	cmds := Plan(Content{ProductName: name, Category: "Oil", SellerName: "Acme"}, monoMeasurer{})

	var titles []Text
	for _, txt := range texts(cmds) {
		if txt.Style == titleStyle {
			titles = append(titles, txt)
		}
	}
	require.Len(t, titles, 2)
	assert.Equal(t, "Cold Pressed Virgin Coconut", titles[0].Text)
	assert.Equal(t, "Oil With Added Vitamins", titles[1].Text)
	assert.Equal(t, 50.0, titles[0].Y)
	assert.Equal(t, 105.0, titles[1].Y)
	assert.Equal(t, 50.0+2*55+10, findText(t, cmds, "Oil").Y)
}
