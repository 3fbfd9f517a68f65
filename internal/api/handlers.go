package api

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	imagepkg "github.com/vistaar/vistaar/internal/image"
	"github.com/vistaar/vistaar/internal/intake"
	"github.com/vistaar/vistaar/internal/label"
	"github.com/vistaar/vistaar/internal/store"
	"github.com/vistaar/vistaar/internal/uploads"
)

// Labels renders and exports product labels.
type Labels interface {
	Render(ctx context.Context, req label.Request) (*label.Rendered, error)
	RenderPDF(ctx context.Context, req label.Request) (*label.Rendered, error)
	Export(ctx context.Context, previewURL, format string) (*label.Export, error)
	State() label.State
}

// Intake stores contact submissions and seller registrations.
type Intake interface {
	SubmitContact(ctx context.Context, in intake.ContactInput) (*store.Contact, error)
	RegisterSeller(ctx context.Context, in intake.SellerInput, logo *intake.Upload) (*store.Seller, error)
}

type Handler struct {
	labels Labels
	intake Intake
	files  *uploads.Dir
	debug  bool
}

func NewHandler(labels Labels, in Intake, files *uploads.Dir, debug bool) *Handler {
	return &Handler{labels: labels, intake: in, files: files, debug: debug}
}

// health
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"message":  "VISTAAR API is running",
		"renderer": h.labels.State().String(),
	})
}

// qrHandler returns the QR code a label would carry for the given product.
func (h *Handler) qrHandler(c *gin.Context) {
	payload := imagepkg.Payload{
		Product:  c.Query("product"),
		Seller:   c.Query("seller"),
		Category: c.Query("category"),
	}
	if payload.Product == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "product is required"})
		return
	}
	size := 300
	if v, err := strconv.Atoi(c.Query("size")); err == nil && v > 0 && v <= 1000 {
		size = v
	}
	b, err := imagepkg.GenerateQRPNG(payload.String(), size)
	if err != nil {
		h.fail(c, err, "Failed to generate QR code")
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}

func (h *Handler) submitContact(c *gin.Context) {
	var in intake.ContactInput
	if err := c.ShouldBind(&in); err != nil {
		badInput(c, err)
		return
	}
	if _, err := h.intake.SubmitContact(c.Request.Context(), in); err != nil {
		h.fail(c, err, "Failed to submit contact form")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Contact form submitted successfully"})
}

func (h *Handler) registerSeller(c *gin.Context) {
	var in intake.SellerInput
	if err := c.ShouldBind(&in); err != nil {
		badInput(c, err)
		return
	}

	var logo *intake.Upload
	fh, err := formFile(c, "logo")
	if err != nil {
		h.fail(c, err, "Failed to register seller")
		return
	}
	if fh != nil {
		f, err := fh.Open()
		if err != nil {
			h.fail(c, err, "Failed to register seller")
			return
		}
		defer f.Close()
		logo = &intake.Upload{Filename: fh.Filename, Body: f}
	}

	seller, err := h.intake.RegisterSeller(c.Request.Context(), in, logo)
	if err != nil {
		h.fail(c, err, "Failed to register seller")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Seller registered successfully",
		"sellerId": seller.ID,
	})
}

func (h *Handler) generateLabel(c *gin.Context) {
	var req label.Request
	if err := c.ShouldBind(&req); err != nil {
		badInput(c, err)
		return
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		h.fail(c, err, "Failed to generate label")
		return
	}

	fh, err := formFile(c, "logo")
	if err != nil {
		h.fail(c, err, "Failed to generate label")
		return
	}
	if fh != nil {
		req.LogoPath = h.storeLogo(fh)
	}

	render := h.labels.Render
	if c.PostForm("format") == label.FormatPDF {
		render = h.labels.RenderPDF
	}
	out, err := render(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err, "Failed to generate label")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"previewUrl": out.URL,
		"format":     out.Format,
		"message":    "Label generated successfully",
	})
}

// storeLogo saves an uploaded logo and returns its path on disk. A logo that
// cannot be stored is dropped from the label.
func (h *Handler) storeLogo(fh *multipart.FileHeader) string {
	f, err := fh.Open()
	if err != nil {
		log.Warn().Err(err).Str("file", fh.Filename).Msg("could not open uploaded logo")
		return ""
	}
	defer f.Close()
	stored, err := h.files.SaveUpload(uploads.LogosDir, fh.Filename, f)
	if err != nil {
		log.Warn().Err(err).Str("file", fh.Filename).Msg("could not store uploaded logo")
		return ""
	}
	return stored.Path
}

func (h *Handler) downloadLabel(c *gin.Context) {
	out, err := h.labels.Export(c.Request.Context(), c.Query("previewUrl"), c.Param("format"))
	if err != nil {
		h.fail(c, err, "Failed to download label")
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, out.Filename))
	c.Data(http.StatusOK, out.ContentType, out.Data)
}

// formFile returns the named upload, or nil when the form has none.
func formFile(c *gin.Context, name string) (*multipart.FileHeader, error) {
	fh, err := c.FormFile(name)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return fh, nil
}
