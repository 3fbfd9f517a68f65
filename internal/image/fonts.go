package imagepkg

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Style selects a face by pixel size and weight.
type Style struct {
	Size float64
	Bold bool
}

// Fonts holds the parsed regular and bold typefaces. Parsed fonts are safe
// to share; faces derived from them are not.
type Fonts struct {
	regular *truetype.Font
	bold    *truetype.Font
}

// LoadFonts parses the bundled Go fonts.
func LoadFonts() (*Fonts, error) {
	regular, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse regular font: %w", err)
	}
	bold, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse bold font: %w", err)
	}
	return &Fonts{regular: regular, bold: bold}, nil
}

// RegularTTF and BoldTTF expose the raw font files for document writers that
// embed fonts themselves.
func RegularTTF() []byte { return goregular.TTF }

func BoldTTF() []byte { return gobold.TTF }

// FaceSet caches faces for a single render. It must not be shared between
// goroutines.
type FaceSet struct {
	fonts *Fonts
	faces map[Style]font.Face
}

func (f *Fonts) NewFaceSet() *FaceSet {
	return &FaceSet{fonts: f, faces: make(map[Style]font.Face)}
}

// Face returns the face for st, creating it on first use.
func (s *FaceSet) Face(st Style) font.Face {
	if face, ok := s.faces[st]; ok {
		return face
	}
	ttf := s.fonts.regular
	if st.Bold {
		ttf = s.fonts.bold
	}
	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    st.Size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	s.faces[st] = face
	return face
}

// Measure returns the advance width of text in pixels.
func (s *FaceSet) Measure(text string, st Style) float64 {
	return float64(font.MeasureString(s.Face(st), text)) / 64
}

func (s *FaceSet) Close() error {
	for st, face := range s.faces {
		face.Close()
		delete(s.faces, st)
	}
	return nil
}
