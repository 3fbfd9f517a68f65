package label

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrBadRequest is returned when a download is missing or malforms its
	// preview reference.
	ErrBadRequest = errors.New("preview url required")
	// ErrNotFound is returned when the referenced preview is not on disk.
	ErrNotFound = errors.New("preview not found")
	// ErrInvalidFormat is returned for download formats other than png and pdf.
	ErrInvalidFormat = errors.New("invalid format, use png or pdf")
	// ErrInternalRender marks unexpected failures while composing or storing a label.
	ErrInternalRender = errors.New("failed to generate label")
)

// ValidationError lists the required request fields that were empty.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Missing, ", ")
}

// RenderError wraps the cause of an unexpected render failure. It matches
// ErrInternalRender with errors.Is.
type RenderError struct {
	Op  string
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *RenderError) Unwrap() []error {
	return []error{ErrInternalRender, e.Err}
}
