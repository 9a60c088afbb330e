package pxl

import (
	"errors"
	"fmt"
)

// Sentinel errors. Returned errors wrap these, so test with errors.Is.
var (
	// ErrInvalidColorSyntax reports a malformed hex color string.
	ErrInvalidColorSyntax = errors.New("pxl: invalid color syntax")

	// ErrSurfaceUnavailable reports that New could not acquire a
	// presentation surface.
	ErrSurfaceUnavailable = errors.New("pxl: presentation surface unavailable")

	// ErrRenderFailure reports that the surface rejected a frame or a
	// resize. The canvas buffer is left intact.
	ErrRenderFailure = errors.New("pxl: render failed")

	// ErrInvalidDimensions reports a zero or negative width or height.
	ErrInvalidDimensions = errors.New("pxl: invalid dimensions")

	// ErrCanvasClosed is returned by operations on a closed canvas.
	ErrCanvasClosed = errors.New("pxl: canvas is closed")
)

// ColorSyntaxError is returned by FromHex for malformed input.
type ColorSyntaxError struct {
	Input string
}

func (e *ColorSyntaxError) Error() string {
	return fmt.Sprintf("pxl: invalid color syntax %q: want 8 hex digits rrggbbaa", e.Input)
}

// Unwrap returns ErrInvalidColorSyntax.
func (e *ColorSyntaxError) Unwrap() error {
	return ErrInvalidColorSyntax
}
