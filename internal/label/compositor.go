// Package label lays out product labels and renders them to PNG or PDF.
package label

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	imagepkg "github.com/vistaar/vistaar/internal/image"
	"github.com/vistaar/vistaar/internal/uploads"
)

const (
	FormatPNG = "png"
	FormatPDF = "pdf"
)

// State tracks whether the raster engine has been probed and what it found.
type State int32

const (
	StateUninitialized State = iota
	StateRasterAvailable
	StateRasterUnavailable
)

func (s State) String() string {
	switch s {
	case StateRasterAvailable:
		return "raster"
	case StateRasterUnavailable:
		return "pdf-fallback"
	default:
		return "uninitialized"
	}
}

// Capability is the cached probe outcome: Raster is set when the engine is
// usable, Err explains why it is not.
type Capability struct {
	Raster *RasterEngine
	Err    error
}

// ProbeFunc acquires the raster engine.
type ProbeFunc func() (*RasterEngine, error)

// QREncoder turns text into a square QR image of the given size.
type QREncoder func(text string, size int) (image.Image, error)

// Rendered references a stored label.
type Rendered struct {
	URL    string // served location, e.g. /uploads/previews/preview-1.png
	Path   string // location on disk
	Format string // png or pdf
}

type backend interface {
	Canvas
	Measurer
	Format() string
	Encode(w io.Writer) error
	Close() error
}

type Option func(*Compositor)

// WithProbe replaces the raster engine probe.
func WithProbe(p ProbeFunc) Option {
	return func(c *Compositor) { c.probe = p }
}

// WithQREncoder replaces the QR encoder.
func WithQREncoder(enc QREncoder) Option {
	return func(c *Compositor) { c.encodeQR = enc }
}

func WithLogger(l zerolog.Logger) Option {
	return func(c *Compositor) { c.log = l }
}

// Compositor renders labels into the previews directory. The raster engine
// is probed on first use and the result is kept for the Compositor's life.
type Compositor struct {
	previews *uploads.Dir
	probe    ProbeFunc
	encodeQR QREncoder
	log      zerolog.Logger

	once       sync.Once
	state      atomic.Int32
	capability Capability
}

func New(previews *uploads.Dir, opts ...Option) *Compositor {
	c := &Compositor{
		previews: previews,
		probe:    ProbeRaster,
		encodeQR: imagepkg.GenerateQRImage,
		log:      log.Logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State reports the engine state without triggering a probe.
func (c *Compositor) State() State {
	return State(c.state.Load())
}

// Capability probes the raster engine once and returns the cached outcome.
func (c *Compositor) Capability() Capability {
	c.once.Do(func() {
		engine, err := c.probe()
		if err == nil && engine == nil {
			err = fmt.Errorf("raster probe returned no engine")
		}
		if err != nil {
			c.capability = Capability{Err: err}
			c.state.Store(int32(StateRasterUnavailable))
			c.log.Warn().Err(err).Msg("raster engine unavailable, labels will be rendered as PDF")
			return
		}
		c.capability = Capability{Raster: engine}
		c.state.Store(int32(StateRasterAvailable))
		c.log.Info().Msg("raster engine loaded")
	})
	return c.capability
}

// Render validates req, lays the label out and stores it as a PNG, or as a
// PDF when the raster engine is unavailable.
func (c *Compositor) Render(ctx context.Context, req Request) (*Rendered, error) {
	return c.render(ctx, req, false)
}

// RenderPDF renders req directly to a PDF document.
func (c *Compositor) RenderPDF(ctx context.Context, req Request) (*Rendered, error) {
	return c.render(ctx, req, true)
}

func (c *Compositor) render(ctx context.Context, req Request, pdf bool) (out *Rendered, err error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = &RenderError{Op: "compose label", Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	content := c.content(req)

	var be backend
	if !pdf {
		if engine := c.Capability().Raster; engine != nil {
			be = engine.newCanvas()
		}
	}
	if be == nil {
		be = newPDFCanvas()
	}
	defer be.Close()

	for _, cmd := range Plan(content, be) {
		cmd.Draw(be)
	}

	var buf bytes.Buffer
	if err := be.Encode(&buf); err != nil {
		return nil, &RenderError{Op: "encode " + be.Format(), Err: err}
	}
	stored, err := c.previews.SavePreview(be.Format(), buf.Bytes())
	if err != nil {
		return nil, &RenderError{Op: "save preview", Err: err}
	}

	c.log.Info().
		Str("product", req.ProductName).
		Str("format", be.Format()).
		Str("preview", stored.URL).
		Msg("label generated")

	return &Rendered{URL: stored.URL, Path: stored.Path, Format: be.Format()}, nil
}

// content parses and loads everything the layout needs. QR and logo
// failures degrade the label instead of failing it.
func (c *Compositor) content(req Request) Content {
	content := Content{
		ProductName: req.ProductName,
		Category:    req.Category,
		SellerName:  req.SellerName,
		Ingredients: req.IngredientList(),
		Nutrition:   ParseNutrition(req.NutritionalInfo),
	}

	payload := req.Payload().String()
	if qr, err := c.encodeQR(payload, qrSize); err != nil {
		c.log.Warn().Err(err).Msg("qr code generation failed, drawing placeholder")
	} else {
		content.QR = qr
	}

	if req.LogoPath != "" {
		if logo, err := imagepkg.LoadImage(req.LogoPath); err != nil {
			c.log.Warn().Err(err).Str("logo", req.LogoPath).Msg("logo could not be loaded, skipping")
		} else {
			content.Logo = logo
		}
	}
	return content
}
