// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gpusurface presents pxl frames as GPU textures through a
// gpucontext host, such as a gogpu window.
//
// The host supplies a gpucontext.DeviceProvider and a
// gpucontext.TextureDrawer. The first Present creates a texture from the
// frame; later presents upload only the rows that changed since the last
// upload, using gpucontext.TextureRegionUpdater when the texture supports
// it.
//
// Example:
//
//	app.OnDraw(func(dc *gogpu.Context) {
//	    if s == nil {
//	        s, _ = gpusurface.New(app.GPUContextProvider(), dc.AsTextureDrawer(), 320, 240)
//	        canvas, _ = pxl.New(320, 240, pxl.WithSurface(s))
//	    }
//	    drawScene(canvas)
//	    _ = canvas.Render()
//	})
//
// The surface needs a live host, so it is not added to the surface
// registry; pass it to pxl.New with pxl.WithSurface.
package gpusurface
