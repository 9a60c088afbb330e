// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// TestNewImageSurface tests surface creation.
func TestNewImageSurface(t *testing.T) {
	s := NewImageSurface(100, 50)
	if s == nil {
		t.Fatal("NewImageSurface returned nil")
	}
	defer s.Close()

	if s.Width() != 100 {
		t.Errorf("Width() = %d, want 100", s.Width())
	}
	if s.Height() != 50 {
		t.Errorf("Height() = %d, want 50", s.Height())
	}
	if got, want := len(s.Frame()), FrameSize(100, 50); got != want {
		t.Errorf("len(Frame()) = %d, want %d", got, want)
	}
}

// TestNewImageSurfaceInvalidSize tests handling of invalid dimensions.
func TestNewImageSurfaceInvalidSize(t *testing.T) {
	// Should clamp to minimum of 1x1
	s := NewImageSurface(0, -3)
	defer s.Close()

	if s.Width() != 1 || s.Height() != 1 {
		t.Errorf("expected 1x1, got %dx%d", s.Width(), s.Height())
	}
}

// TestImageSurfacePresent tests that only presented frames are visible.
func TestImageSurfacePresent(t *testing.T) {
	s := NewImageSurface(2, 2)
	defer s.Close()

	frame := s.Frame()
	copy(frame[4:8], []byte{0xff, 0x00, 0x00, 0xff})

	if got := s.Snapshot().NRGBAAt(1, 0); got != (color.NRGBA{}) {
		t.Errorf("unpresented pixel visible: %v", got)
	}

	if err := s.Present(); err != nil {
		t.Fatalf("Present: %v", err)
	}
	if got := s.Snapshot().NRGBAAt(1, 0); got != (color.NRGBA{R: 0xff, A: 0xff}) {
		t.Errorf("pixel (1,0) = %v, want red", got)
	}
	if s.Presented() != 1 {
		t.Errorf("Presented() = %d, want 1", s.Presented())
	}
}

// TestImageSurfaceSnapshotIsCopy tests that snapshots are detached.
func TestImageSurfaceSnapshotIsCopy(t *testing.T) {
	s := NewImageSurface(1, 1)
	defer s.Close()

	snap := s.Snapshot()
	snap.Pix[0] = 0xaa
	if s.Snapshot().Pix[0] != 0 {
		t.Error("modifying snapshot changed the surface")
	}
}

// TestImageSurfaceResize tests frame reallocation.
func TestImageSurfaceResize(t *testing.T) {
	s := NewImageSurface(2, 2)
	defer s.Close()

	if err := s.Resize(5, 3); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if s.Width() != 5 || s.Height() != 3 {
		t.Errorf("size = %dx%d, want 5x3", s.Width(), s.Height())
	}
	if len(s.Frame()) != FrameSize(5, 3) {
		t.Errorf("len(Frame()) = %d, want %d", len(s.Frame()), FrameSize(5, 3))
	}

	if err := s.Resize(0, 3); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("Resize(0, 3) = %v, want ErrInvalidDimensions", err)
	}
}

// TestImageSurfaceClose tests Close idempotency and use after close.
func TestImageSurfaceClose(t *testing.T) {
	s := NewImageSurface(2, 2)

	if err := s.Close(); err != nil {
		t.Errorf("first Close: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
	if s.Frame() != nil {
		t.Error("Frame() should be nil after Close")
	}
	if s.Snapshot() != nil {
		t.Error("Snapshot() should be nil after Close")
	}
	if err := s.Present(); !errors.Is(err, ErrClosed) {
		t.Errorf("Present after Close = %v, want ErrClosed", err)
	}
	if err := s.Resize(1, 1); !errors.Is(err, ErrClosed) {
		t.Errorf("Resize after Close = %v, want ErrClosed", err)
	}
}

// TestImageSurfaceSavePNG tests writing the presented frame to disk.
func TestImageSurfaceSavePNG(t *testing.T) {
	s := NewImageSurface(3, 1)
	defer s.Close()

	copy(s.Frame()[8:12], []byte{0x00, 0x00, 0xff, 0xff})
	if err := s.Present(); err != nil {
		t.Fatalf("Present: %v", err)
	}

	path := filepath.Join(t.TempDir(), "frame.png")
	if err := s.SavePNG(path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 1 {
		t.Errorf("bounds = %v, want 3x1", b)
	}
	r, g, b, a := img.At(2, 0).RGBA()
	if r != 0 || g != 0 || b != 0xffff || a != 0xffff {
		t.Errorf("pixel (2,0) = %d %d %d %d, want opaque blue", r, g, b, a)
	}
}
