package label

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vistaar/vistaar/internal/uploads"
)

func TestExportErrors(t *testing.T) {
	c, _ := newTestCompositor(t)
	ctx := context.Background()

	_, err := c.Export(ctx, "", FormatPNG)
	assert.ErrorIs(t, err, ErrBadRequest)

	_, err = c.Export(ctx, "/uploads/previews/preview-1.png", "jpg")
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = c.Export(ctx, "/uploads/previews/preview-123.png", FormatPNG)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = c.Export(ctx, "/uploads/previews/preview-123.png", FormatPDF)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = c.Export(ctx, "/uploads/../../etc/passwd", FormatPNG)
	assert.ErrorIs(t, err, ErrBadRequest)

	_, err = c.Export(ctx, "/uploads/sellers/1-logo.png", FormatPNG)
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestExportPNGIsVerbatim(t *testing.T) {
	c, dir := newTestCompositor(t)
	stored, err := dir.SavePreview(FormatPNG, []byte("\x89PNG fake bytes"))
	require.NoError(t, err)

	out, err := c.Export(context.Background(), stored.URL, "PNG")
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG fake bytes"), out.Data)
	assert.Equal(t, "image/png", out.ContentType)
	assert.Equal(t, "vistaar-label.png", out.Filename)
}

func TestExportWrapsPNGInPDF(t *testing.T) {
	c, _ := newTestCompositor(t)
	rendered, err := c.Render(context.Background(), fullRequest(""))
	require.NoError(t, err)
	require.Equal(t, FormatPNG, rendered.Format)

	out, err := c.Export(context.Background(), rendered.URL, FormatPDF)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out.Data, []byte("%PDF-")))
	assert.Equal(t, "application/pdf", out.ContentType)
	assert.Equal(t, "vistaar-label.pdf", out.Filename)
}

func TestExportPDFPreview(t *testing.T) {
	c, dir := newTestCompositor(t)
	rendered, err := c.RenderPDF(context.Background(), fullRequest(""))
	require.NoError(t, err)

	want, err := os.ReadFile(rendered.Path)
	require.NoError(t, err)

	out, err := c.Export(context.Background(), rendered.URL, FormatPDF)
	require.NoError(t, err)
	assert.Equal(t, want, out.Data)

	_, err = c.Export(context.Background(), rendered.URL, FormatPNG)
	assert.ErrorIs(t, err, ErrInvalidFormat)

	assert.FileExists(t, filepath.Join(dir.Root(), uploads.PreviewsDir, filepath.Base(rendered.Path)))
}
