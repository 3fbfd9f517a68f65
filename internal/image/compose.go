package imagepkg

import (
	"bytes"
	"image"

	"github.com/disintegration/imaging"
)

// Fit scales img to exactly w x h pixels, ignoring its aspect ratio the same
// way a canvas drawImage call with an explicit size does.
func Fit(img image.Image, w, h int) *image.NRGBA {
	if w <= 0 || h <= 0 {
		return imaging.Clone(img)
	}
	b := img.Bounds()
	if b.Dx() == w && b.Dy() == h {
		return imaging.Clone(img)
	}
	return imaging.Resize(img, w, h, imaging.Lanczos)
}

// EncodePNG serializes img as PNG.
func EncodePNG(img image.Image) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := imaging.Encode(buf, img, imaging.PNG); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
