// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package surface provides the presentation target abstraction for pxl.
//
// A Surface owns a byte frame in RGBA order and knows how to show it. The
// drawing itself happens elsewhere: pxl.Canvas keeps its own pixel buffer
// and copies it into the surface frame on Render. This keeps every backend
// small:
//
//   - ImageSurface: in-memory snapshot, PNG output (package surface)
//   - fbdev: Linux framebuffer device (package surface/fbdev)
//   - terminal: half-block characters in a terminal (package surface/termsurface)
//   - gpusurface: texture upload through a gpucontext host (package surface/gpusurface)
//
// # Registry
//
// Backends register themselves from init, so a blank import selects them:
//
//	import _ "github.com/gogpu/pxl/surface/fbdev"
//
//	s, err := surface.OpenNamed("fbdev", surface.DefaultOptions(320, 240))
//
//	// or take the best available backend:
//	s, name, err := surface.Open(surface.DefaultOptions(320, 240))
//
// The "image" backend is always registered and always available, so Open
// only fails on a headless machine when it is unregistered.
//
// # Usage
//
//	s := surface.NewImageSurface(4, 4)
//	defer s.Close()
//
//	frame := s.Frame()
//	copy(frame[0:4], []byte{0xff, 0x00, 0x00, 0xff}) // red at (0,0)
//	if err := s.Present(); err != nil {
//	    return err
//	}
//	img := s.Snapshot()
package surface
