// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpusurface

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/pxl"
	"github.com/gogpu/pxl/surface"
)

// Errors returned by this package.
var (
	// ErrNilProvider is returned by New when provider is nil.
	ErrNilProvider = errors.New("gpusurface: provider cannot be nil")

	// ErrNilDrawer is returned by New when drawer is nil.
	ErrNilDrawer = errors.New("gpusurface: drawer cannot be nil")

	// ErrNoTextureCreator is returned by Present when the drawer has no
	// texture creator.
	ErrNoTextureCreator = errors.New("gpusurface: drawer has no texture creator")
)

// textureDestroyer is the interface for destroying textures.
// This matches the gogpu.Texture.Destroy signature.
type textureDestroyer interface {
	Destroy()
}

// Surface is a surface.Surface that presents frames as a GPU texture.
//
// Surface is NOT safe for concurrent use; call it from the host's draw
// callback.
type Surface struct {
	provider gpucontext.DeviceProvider
	drawer   gpucontext.TextureDrawer

	width  int
	height int
	frame  []byte

	// uploaded mirrors what the texture holds, for dirty-row detection.
	uploaded []byte

	texture    gpucontext.Texture
	oldTexture gpucontext.Texture // awaiting deferred destruction
	x, y       float32
	closed     bool
}

// Option configures a Surface.
type Option func(*Surface)

// WithPosition sets where the texture is drawn in the host's coordinate
// space. The default is (0, 0).
func WithPosition(x, y float32) Option {
	return func(s *Surface) {
		s.x, s.y = x, y
	}
}

// New creates a width x height surface drawn through drawer.
//
// provider describes the host's GPU device. A host without a presentation
// surface (headless) is accepted and logged.
func New(provider gpucontext.DeviceProvider, drawer gpucontext.TextureDrawer, width, height int, opts ...Option) (*Surface, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	if drawer == nil {
		return nil, ErrNilDrawer
	}
	if err := surface.ValidateSize(width, height); err != nil {
		return nil, err
	}

	s := &Surface{
		provider: provider,
		drawer:   drawer,
	}
	s.alloc(width, height)
	for _, opt := range opts {
		opt(s)
	}

	info := provider.AdapterInfo()
	log := pxl.Logger()
	log.Info("gpusurface: created",
		"width", width, "height", height,
		"adapter", info.Name, "adapterType", info.Type.String())
	if format := provider.SurfaceFormat(); format == gputypes.TextureFormatUndefined {
		log.Warn("gpusurface: host has no presentation surface (headless)")
	} else {
		log.Debug("gpusurface: host surface format", "format", format.String())
	}
	return s, nil
}

func (s *Surface) alloc(width, height int) {
	s.width = width
	s.height = height
	s.frame = make([]byte, surface.FrameSize(width, height))
	s.uploaded = nil
}

// Width returns the frame width.
func (s *Surface) Width() int {
	return s.width
}

// Height returns the frame height.
func (s *Surface) Height() int {
	return s.height
}

// Frame returns the writable RGBA frame.
func (s *Surface) Frame() []byte {
	if s.closed {
		return nil
	}
	return s.frame
}

// Texture returns the current GPU texture, or nil before the first
// Present.
func (s *Surface) Texture() gpucontext.Texture {
	return s.texture
}

// Provider returns the device provider.
func (s *Surface) Provider() gpucontext.DeviceProvider {
	return s.provider
}

// Present uploads the frame and draws the texture.
func (s *Surface) Present() error {
	if s.closed {
		return surface.ErrClosed
	}

	if s.texture == nil {
		if err := s.createTexture(); err != nil {
			return err
		}
	} else if err := s.upload(); err != nil {
		return err
	}

	if err := s.drawer.DrawTexture(s.texture, s.x, s.y); err != nil {
		return fmt.Errorf("gpusurface: draw texture: %w", err)
	}
	return nil
}

// createTexture creates the texture from the whole frame. Creation waits
// for the GPU, after which a retired texture can be destroyed safely.
func (s *Surface) createTexture() error {
	creator := s.drawer.TextureCreator()
	if creator == nil {
		return ErrNoTextureCreator
	}

	tex, err := creator.NewTextureFromRGBA(s.width, s.height, s.frame)
	if err != nil {
		return fmt.Errorf("gpusurface: NewTextureFromRGBA failed: %w", err)
	}

	// pxl frames carry straight alpha.
	if pt, ok := tex.(interface{ SetPremultiplied(bool) }); ok {
		pt.SetPremultiplied(false)
	}

	s.texture = tex
	s.uploaded = append(s.uploaded[:0], s.frame...)
	s.destroyOld()
	pxl.Logger().Debug("gpusurface: texture created", "width", s.width, "height", s.height)
	return nil
}

// upload sends the rows that changed since the last upload.
func (s *Surface) upload() error {
	y0, y1, dirty := s.dirtyRows()
	if !dirty {
		return nil
	}
	stride := s.width * 4

	switch tex := s.texture.(type) {
	case gpucontext.TextureRegionUpdater:
		data := s.frame[y0*stride : (y1+1)*stride]
		if err := tex.UpdateRegion(0, y0, s.width, y1-y0+1, data); err != nil {
			return fmt.Errorf("gpusurface: texture region update failed: %w", err)
		}
	case gpucontext.TextureUpdater:
		if err := tex.UpdateData(s.frame); err != nil {
			return fmt.Errorf("gpusurface: texture update failed: %w", err)
		}
	default:
		// Immutable texture: replace it.
		s.retire()
		return s.createTexture()
	}

	copy(s.uploaded[y0*stride:(y1+1)*stride], s.frame[y0*stride:(y1+1)*stride])
	return nil
}

// dirtyRows returns the first and last rows that differ from the upload
// mirror.
func (s *Surface) dirtyRows() (y0, y1 int, dirty bool) {
	stride := s.width * 4
	if len(s.uploaded) != len(s.frame) {
		return 0, s.height - 1, true
	}
	y0 = -1
	for y := 0; y < s.height; y++ {
		row := y * stride
		if !bytes.Equal(s.frame[row:row+stride], s.uploaded[row:row+stride]) {
			if y0 < 0 {
				y0 = y
			}
			y1 = y
		}
	}
	return y0, y1, y0 >= 0
}

// Resize reallocates the frame. The current texture is retired and
// destroyed after the next texture creation, since in-flight GPU work may
// still reference it.
func (s *Surface) Resize(width, height int) error {
	if s.closed {
		return surface.ErrClosed
	}
	if err := surface.ValidateSize(width, height); err != nil {
		return err
	}
	if width == s.width && height == s.height {
		return nil
	}
	s.alloc(width, height)
	s.retire()
	return nil
}

// retire moves the current texture aside for deferred destruction.
func (s *Surface) retire() {
	if s.texture == nil {
		return
	}
	s.destroyOld()
	s.oldTexture = s.texture
	s.texture = nil
}

func (s *Surface) destroyOld() {
	if s.oldTexture == nil {
		return
	}
	if d, ok := s.oldTexture.(textureDestroyer); ok {
		d.Destroy()
	}
	s.oldTexture = nil
}

// Close destroys the textures. Close is idempotent.
func (s *Surface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.destroyOld()
	if d, ok := s.texture.(textureDestroyer); ok {
		d.Destroy()
	}
	s.texture = nil
	s.frame = nil
	s.uploaded = nil
	return nil
}

var _ surface.Surface = (*Surface)(nil)
