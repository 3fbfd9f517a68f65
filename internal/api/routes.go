package api

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/vistaar/vistaar/internal/uploads"
	"github.com/vistaar/vistaar/internal/util"
)

// Options configures the router beyond the API handlers.
type Options struct {
	UploadDir      string
	StaticDir      string // built frontend; empty disables it
	MaxUploadBytes int64
}

// NewRouter builds the gin engine with middleware, API routes, uploaded
// files and the optional frontend.
func NewRouter(h *Handler, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(), CORS())
	if opts.MaxUploadBytes > 0 {
		r.MaxMultipartMemory = opts.MaxUploadBytes
		r.Use(LimitBody(opts.MaxUploadBytes))
	}

	RegisterRoutes(r, h)

	if opts.UploadDir != "" {
		r.Static(uploads.URLPrefix, opts.UploadDir)
	}
	serveFrontend(r, opts.StaticDir)
	return r
}

func RegisterRoutes(r *gin.Engine, h *Handler) {
	api := r.Group("/api")
	{
		api.GET("/health", h.health)
		api.GET("/qr", h.qrHandler)
		api.POST("/contact", h.submitContact)
		api.POST("/register-seller", h.registerSeller)
		api.POST("/generate-label", h.generateLabel)
		api.GET("/generate-label/download/:format", h.downloadLabel)
	}
}

// serveFrontend serves files from dir and falls back to index.html so the
// single-page app can route client side. Unknown /api paths stay JSON 404s.
func serveFrontend(r *gin.Engine, dir string) {
	r.NoRoute(func(c *gin.Context) {
		path := c.Request.URL.Path
		if dir == "" || strings.HasPrefix(path, "/api/") || c.Request.Method != http.MethodGet {
			c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
			return
		}
		file := filepath.Join(dir, filepath.FromSlash(filepath.Clean("/"+path)))
		if util.FileExists(file) {
			c.File(file)
			return
		}
		index := filepath.Join(dir, "index.html")
		if !util.FileExists(index) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
			return
		}
		c.File(index)
	})
}
