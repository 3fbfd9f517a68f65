package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/vistaar/vistaar/internal/intake"
	"github.com/vistaar/vistaar/internal/label"
)

// fail maps err to a status and a {message, details} body. Unexpected errors
// get fallback as their message; their cause is only shown in debug mode.
func (h *Handler) fail(c *gin.Context, err error, fallback string) {
	var (
		labelInvalid  *label.ValidationError
		intakeInvalid *intake.ValidationError
		maxBytes      *http.MaxBytesError
	)
	switch {
	case errors.As(err, &labelInvalid):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"message": "Missing required fields: productName, category, and sellerName are required",
			"details": labelInvalid.Missing,
		})
	case errors.As(err, &intakeInvalid):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"message": "Missing required fields: " + strings.Join(intakeInvalid.Missing, ", "),
			"details": intakeInvalid.Missing,
		})
	case errors.As(err, &maxBytes):
		c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{"message": "Upload too large"})
	case errors.Is(err, label.ErrInvalidFormat):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Invalid format. Use png or pdf"})
	case errors.Is(err, label.ErrBadRequest):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Preview URL required"})
	case errors.Is(err, label.ErrNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "Preview not found"})
	default:
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg(fallback)
		body := gin.H{"message": fallback}
		if h.debug {
			body["details"] = err.Error()
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, body)
	}
}

// badInput answers a request whose body could not be bound.
func badInput(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
		"message": "Invalid request",
		"details": err.Error(),
	})
}
