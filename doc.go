// Package pxl provides an integer 2D software rasterizer for pixel-exact
// drawing.
//
// # Overview
//
// pxl draws single-color pixels, lines and triangles into a fixed-size
// buffer and presents the finished frame on a surface: an in-memory
// image, a Linux framebuffer, a terminal, or a GPU texture. Every
// coordinate is an integer pixel and every algorithm is exact integer
// arithmetic, so the same calls always produce the same pixels.
//
// # Quick Start
//
//	import "github.com/gogpu/pxl"
//
//	c, err := pxl.New(320, 240)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer c.Close()
//
//	c.FillTriangle(pxl.Pt(20, 20), pxl.Pt(300, 60), pxl.Pt(100, 220), pxl.Red)
//	c.DrawTriangle(pxl.Pt(20, 20), pxl.Pt(300, 60), pxl.Pt(100, 220), pxl.White)
//	if err := c.Render(); err != nil {
//	    log.Fatal(err)
//	}
//	_ = c.SavePNG("out.png")
//
// # Surfaces
//
// Without options New picks the best available backend from the surface
// registry. The "image" backend is always present; the others register
// when their package is imported:
//
//	import _ "github.com/gogpu/pxl/surface/fbdev"       // "fbdev"
//	import _ "github.com/gogpu/pxl/surface/termsurface" // "terminal"
//
// Use WithBackend to pick one by name or WithSurface to pass a surface you
// created yourself, such as a gpusurface.Surface.
//
// # Drawing Model
//
//   - Pixels outside the canvas are skipped, never reported as errors.
//   - Lines include both endpoints and have no gaps in any direction.
//   - Filled triangles include their edges and vertices; two triangles
//     sharing an edge leave no seam between them.
//   - Render shows the buffer; ClearFrame shows the background without
//     touching the buffer; ResetFrame clears the buffer itself.
//
// # Logging
//
// pxl is silent by default. Call SetLogger to enable structured logging
// through log/slog.
package pxl
