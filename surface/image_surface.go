// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"fmt"
	"image"
	"image/png"
	"os"
)

// ImageBackend is the registry name of ImageSurface.
const ImageBackend = "image"

// ImageSurface is an in-memory surface. Present copies the frame into an
// *image.NRGBA snapshot that can be inspected or written out as PNG.
//
// It is the lowest priority backend and is always available, so headless
// programs and tests get a surface without any device.
//
// Example:
//
//	s := surface.NewImageSurface(320, 240)
//	defer s.Close()
//
//	// ... write into s.Frame() ...
//	_ = s.Present()
//	img := s.Snapshot()
type ImageSurface struct {
	width  int
	height int

	// frame backs Frame(); its Pix slice is handed out directly.
	frame *image.NRGBA

	// shown holds the most recently presented frame.
	shown *image.NRGBA

	presented int
	closed    bool
}

// NewImageSurface creates an in-memory surface with the given dimensions.
// Non-positive dimensions are clamped to 1.
func NewImageSurface(width, height int) *ImageSurface {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}

	s := &ImageSurface{}
	s.alloc(width, height)
	return s
}

func (s *ImageSurface) alloc(width, height int) {
	r := image.Rect(0, 0, width, height)
	s.width = width
	s.height = height
	s.frame = image.NewNRGBA(r)
	s.shown = image.NewNRGBA(r)
}

// Width returns the surface width.
func (s *ImageSurface) Width() int {
	return s.width
}

// Height returns the surface height.
func (s *ImageSurface) Height() int {
	return s.height
}

// Frame returns the writable RGBA frame. It returns nil after Close.
func (s *ImageSurface) Frame() []byte {
	if s.closed {
		return nil
	}
	return s.frame.Pix
}

// Present records the current frame as the visible image.
func (s *ImageSurface) Present() error {
	if s.closed {
		return ErrClosed
	}
	copy(s.shown.Pix, s.frame.Pix)
	s.presented++
	return nil
}

// Resize reallocates the frame. The visible image is cleared.
func (s *ImageSurface) Resize(width, height int) error {
	if s.closed {
		return ErrClosed
	}
	if err := ValidateSize(width, height); err != nil {
		return err
	}
	s.alloc(width, height)
	return nil
}

// Presented reports how many times Present has succeeded.
func (s *ImageSurface) Presented() int {
	return s.presented
}

// Snapshot returns a copy of the most recently presented frame.
func (s *ImageSurface) Snapshot() *image.NRGBA {
	if s.closed {
		return nil
	}

	result := image.NewNRGBA(s.shown.Rect)
	copy(result.Pix, s.shown.Pix)
	return result
}

// SavePNG writes the most recently presented frame to path.
func (s *ImageSurface) SavePNG(path string) (err error) {
	if s.closed {
		return ErrClosed
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("surface: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()
	if err := png.Encode(f, s.shown); err != nil {
		return fmt.Errorf("surface: encode %s: %w", path, err)
	}
	return nil
}

// Close releases resources associated with the surface.
func (s *ImageSurface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.frame = nil
	s.shown = nil
	return nil
}

var _ Surface = (*ImageSurface)(nil)
