// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"fmt"
)

// Surface is a presentation target for a finished frame.
//
// A Surface owns a byte frame of Width*Height*4 bytes in row-major RGBA
// order with straight (non-premultiplied) alpha. Callers write into the
// slice returned by Frame and then call Present to show it.
//
// Surfaces are NOT thread-safe. Each surface should be used from a single
// goroutine, or external synchronization must be used.
//
// Example usage:
//
//	s := surface.NewImageSurface(320, 240)
//	defer s.Close()
//
//	frame := s.Frame()
//	copy(frame[0:4], []byte{0xff, 0, 0, 0xff})
//	err := s.Present()
type Surface interface {
	// Width returns the frame width in pixels.
	Width() int

	// Height returns the frame height in pixels.
	Height() int

	// Frame returns the writable frame buffer. The slice is valid until
	// the next Resize or Close.
	Frame() []byte

	// Present shows the current frame contents.
	Present() error

	// Resize reallocates the frame for the new dimensions. Frame contents
	// after a resize are unspecified until the next write.
	Resize(width, height int) error

	// Close releases all resources associated with the surface.
	// Close is idempotent; multiple calls are safe.
	Close() error
}

// Errors shared by every backend.
var (
	// ErrClosed is returned by Present and Resize after Close.
	ErrClosed = errors.New("surface: closed")

	// ErrInvalidDimensions is returned for a zero or negative size.
	ErrInvalidDimensions = errors.New("surface: invalid dimensions")
)

// ValidateSize returns ErrInvalidDimensions unless both sides are positive.
func ValidateSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return nil
}

// FrameSize returns the byte length of a width x height RGBA frame.
func FrameSize(width, height int) int {
	return width * height * 4
}
