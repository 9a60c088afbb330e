// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package fbdev presents pxl frames on a Linux framebuffer device.
//
// The frame is scaled to the device resolution with nearest-neighbour
// sampling, so a small logical canvas fills the whole screen with square
// pixels when the ratios match. Translucent pixels are composited over
// black; the device itself is always written opaque.
//
// Importing the package registers the "fbdev" backend:
//
//	import _ "github.com/gogpu/pxl/surface/fbdev"
//
//	c, err := pxl.New(320, 240, pxl.WithBackend("fbdev"))
//
// The device path is taken from the "fbdev.path" custom option, then the
// PXL_FBDEV environment variable, then DefaultPath.
package fbdev

import (
	"fmt"
	"image"
	"image/color"
	"os"

	fb "github.com/gonutz/framebuffer"
	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/pxl"
	"github.com/gogpu/pxl/surface"
)

const (
	// Backend is the registry name.
	Backend = "fbdev"

	// DefaultPath is the framebuffer used when nothing else is configured.
	DefaultPath = "/dev/fb0"

	// EnvPath names the environment variable that overrides DefaultPath.
	EnvPath = "PXL_FBDEV"

	// OptionPath is the surface.Options.Custom key for the device path.
	OptionPath = "fbdev.path"
)

// device is the part of *framebuffer.Device the surface writes to.
type device interface {
	Bounds() image.Rectangle
	Set(x, y int, c color.Color)
}

// Surface is a surface.Surface backed by a framebuffer device.
type Surface struct {
	dev      device
	closeDev func()
	path     string

	// frame backs Frame(); scaled is the device-sized staging image.
	frame  *image.NRGBA
	scaled *image.RGBA
	closed bool
}

// Open opens the framebuffer at path for a width x height frame.
func Open(path string, width, height int) (*Surface, error) {
	if err := surface.ValidateSize(width, height); err != nil {
		return nil, err
	}
	dev, err := fb.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fbdev: open %s: %w", path, err)
	}
	s := newSurface(dev, func() { dev.Close() }, width, height)
	s.path = path

	b := dev.Bounds()
	pxl.Logger().Info("fbdev: device opened", "path", path, "device", fmt.Sprintf("%dx%d", b.Dx(), b.Dy()),
		"frame", fmt.Sprintf("%dx%d", width, height))
	return s, nil
}

func newSurface(dev device, closeDev func(), width, height int) *Surface {
	return &Surface{
		dev:      dev,
		closeDev: closeDev,
		frame:    image.NewNRGBA(image.Rect(0, 0, width, height)),
	}
}

// Width returns the frame width.
func (s *Surface) Width() int {
	return s.frame.Rect.Dx()
}

// Height returns the frame height.
func (s *Surface) Height() int {
	return s.frame.Rect.Dy()
}

// Frame returns the writable RGBA frame.
func (s *Surface) Frame() []byte {
	if s.closed {
		return nil
	}
	return s.frame.Pix
}

// Path returns the device path, or "" for surfaces not opened from a path.
func (s *Surface) Path() string {
	return s.path
}

// Present scales the frame to the device and writes every device pixel.
func (s *Surface) Present() error {
	if s.closed {
		return surface.ErrClosed
	}

	b := s.dev.Bounds()
	if b.Empty() {
		return fmt.Errorf("fbdev: device has empty bounds %v", b)
	}
	if s.scaled == nil || s.scaled.Rect.Dx() != b.Dx() || s.scaled.Rect.Dy() != b.Dy() {
		s.scaled = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	}

	xdraw.NearestNeighbor.Scale(s.scaled, s.scaled.Rect, s.frame, s.frame.Rect, xdraw.Src, nil)

	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			p := s.scaled.RGBAAt(x, y)
			p.A = 0xff
			s.dev.Set(b.Min.X+x, b.Min.Y+y, p)
		}
	}
	return nil
}

// Resize reallocates the frame. The device resolution is unchanged.
func (s *Surface) Resize(width, height int) error {
	if s.closed {
		return surface.ErrClosed
	}
	if err := surface.ValidateSize(width, height); err != nil {
		return err
	}
	s.frame = image.NewNRGBA(image.Rect(0, 0, width, height))
	return nil
}

// Close closes the device. Close is idempotent.
func (s *Surface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if s.closeDev != nil {
		s.closeDev()
	}
	return nil
}

// devicePath resolves the framebuffer path for opts.
func devicePath(opts surface.Options) string {
	if p, ok := opts.CustomString(OptionPath); ok {
		return p
	}
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	return DefaultPath
}

func available() bool {
	_, err := os.Stat(devicePath(surface.Options{}))
	return err == nil
}

func init() {
	surface.MustRegister(surface.Backend{
		Name:     Backend,
		Priority: 50,
		Open: func(opts surface.Options) (surface.Surface, error) {
			return Open(devicePath(opts), opts.Width, opts.Height)
		},
		Probe: available,
	})
}

var _ surface.Surface = (*Surface)(nil)
