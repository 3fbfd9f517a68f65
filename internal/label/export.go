package label

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vistaar/vistaar/internal/util"
)

const exportBaseName = "vistaar-label"

// Export is a downloadable rendering of a stored preview.
type Export struct {
	Data        []byte
	ContentType string
	Filename    string
}

// Export loads the preview at previewURL and returns it in format, png or
// pdf. PNG previews are wrapped as a full-page image for pdf; PDF previews
// are only available as pdf.
func (c *Compositor) Export(ctx context.Context, previewURL, format string) (*Export, error) {
	if strings.TrimSpace(previewURL) == "" {
		return nil, ErrBadRequest
	}
	format = strings.ToLower(format)
	if format != FormatPNG && format != FormatPDF {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, format)
	}

	path, err := c.previews.PreviewPath(previewURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	if !util.FileExists(path) {
		return nil, ErrNotFound
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, &RenderError{Op: "read preview", Err: err}
	}

	stored := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	out := &Export{Filename: exportBaseName + "." + format}

	switch {
	case format == stored:
		out.Data = data
	case format == FormatPDF && stored == FormatPNG:
		pdf, err := wrapPNG(data)
		if err != nil {
			return nil, &RenderError{Op: "wrap preview in pdf", Err: err}
		}
		out.Data = pdf
	default:
		return nil, fmt.Errorf("%w: preview is stored as %s", ErrInvalidFormat, stored)
	}

	out.ContentType = "image/png"
	if format == FormatPDF {
		out.ContentType = "application/pdf"
	}
	return out, nil
}

// wrapPNG places a stored PNG preview over a whole canvas-sized PDF page.
func wrapPNG(data []byte) ([]byte, error) {
	doc := newPDFDocument()
	placePNG(doc, "preview", data, Rect{0, 0, CanvasWidth, CanvasHeight})
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
