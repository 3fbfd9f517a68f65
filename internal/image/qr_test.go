package imagepkg

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	qrcode "github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayloadString(t *testing.T) {
	p := Payload{Product: "Soap", Seller: "Acme", Category: "Cosmetic"}
	assert.Equal(t, `{"product":"Soap","seller":"Acme","category":"Cosmetic"}`, p.String())

	p = Payload{Product: "Salt & <Pepper>", Seller: "A\"B", Category: "Spice"}
	assert.Equal(t, `{"product":"Salt & <Pepper>","seller":"A\"B","category":"Spice"}`, p.String())
}

func TestQRCarriesPayload(t *testing.T) {
	text := Payload{Product: "Soap", Seller: "Acme", Category: "Cosmetic"}.String()

	q, err := qrcode.New(text, qrcode.Medium)
	require.NoError(t, err)
	assert.Equal(t, text, q.Content)
	assert.Equal(t, qrcode.Medium, q.Level)

	img, err := GenerateQRImage(text, 150)
	require.NoError(t, err)
	assert.Equal(t, 150, img.Bounds().Dx())
	assert.Equal(t, 150, img.Bounds().Dy())
}

func TestGenerateQRPNG(t *testing.T) {
	b, err := GenerateQRPNG("vistaar", 200)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(b))
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
}

func TestGenerateQRImageTooLong(t *testing.T) {
	_, err := GenerateQRImage(strings.Repeat("x", 4000), 150)
	assert.Error(t, err)
}
