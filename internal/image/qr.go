package imagepkg

import (
	"bytes"
	"encoding/json"
	"image"
	"image/png"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// Payload is the data a label's QR code points back to.
type Payload struct {
	Product  string `json:"product"`
	Seller   string `json:"seller"`
	Category string `json:"category"`
}

// String returns the compact JSON form encoded into the QR code.
func (p Payload) String() string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// Encoding three plain strings cannot fail.
	_ = enc.Encode(p)
	return strings.TrimSuffix(buf.String(), "\n")
}

// GenerateQRPNG returns PNG bytes of a QR code for the given text.
func GenerateQRPNG(text string, size int) ([]byte, error) {
	pngBytes, err := qrcode.Encode(text, qrcode.Medium, size)
	if err != nil {
		return nil, err
	}
	// validate png decode
	_, err = png.Decode(bytes.NewReader(pngBytes))
	if err != nil {
		return nil, err
	}
	return pngBytes, nil
}

// GenerateQRImage returns an image.Image for further composition.
func GenerateQRImage(text string, size int) (image.Image, error) {
	q, err := qrcode.New(text, qrcode.Medium)
	if err != nil {
		return nil, err
	}
	return q.Image(size), nil
}
