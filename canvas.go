package pxl

import (
	"fmt"
	"image"

	"github.com/gogpu/pxl/internal/raster"
	"github.com/gogpu/pxl/surface"
)

// Canvas is a fixed-size grid of colored pixels bound to a presentation
// surface.
//
// Drawing operations write into an in-memory buffer; nothing is shown
// until Render copies the buffer into the surface frame and presents it.
// The buffer always holds a defined color for every pixel.
//
// Canvas is NOT safe for concurrent use.
//
// Example:
//
//	c, err := pxl.New(320, 240)
//	if err != nil {
//	    return err
//	}
//	defer c.Close()
//
//	c.FillTriangle(pxl.Pt(10, 10), pxl.Pt(300, 40), pxl.Pt(120, 220), pxl.Red)
//	c.DrawLine(pxl.Pt(0, 0), pxl.Pt(319, 239), pxl.White)
//	if err := c.Render(); err != nil {
//	    return err
//	}
type Canvas struct {
	width  int
	height int

	pix        *pixmap
	background Color

	surf    surface.Surface
	backend string
	closed  bool
}

// New creates a width x height canvas and acquires its presentation
// surface.
//
// The surface is the one given by WithSurface, otherwise the backend named
// by WithBackend, otherwise the best available registered backend. The
// buffer starts filled with the background color (Black by default).
//
// New returns ErrInvalidDimensions for a non-positive size and
// ErrSurfaceUnavailable, wrapping the backend's error, when no surface can
// be acquired.
func New(width, height int, opts ...Option) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	surf, backend, err := acquireSurface(width, height, o)
	if err != nil {
		Logger().Error("pxl: surface acquisition failed", "backend", o.backend, "err", err)
		return nil, fmt.Errorf("%w: %w", ErrSurfaceUnavailable, err)
	}

	c := &Canvas{
		width:      width,
		height:     height,
		pix:        newPixmap(width, height, o.background),
		background: o.background,
		surf:       surf,
		backend:    backend,
	}
	Logger().Info("pxl: canvas created", "width", width, "height", height, "backend", backend)
	return c, nil
}

// acquireSurface resolves the surface for a new canvas and reports a name
// for it. An injected surface is resized to the canvas if needed.
func acquireSurface(width, height int, o options) (surface.Surface, string, error) {
	if o.surface != nil {
		if o.surface.Width() != width || o.surface.Height() != height {
			if err := o.surface.Resize(width, height); err != nil {
				return nil, "", err
			}
		}
		return o.surface, fmt.Sprintf("%T", o.surface), nil
	}

	sopts := surface.Options{Width: width, Height: height, Custom: o.custom}
	if o.backend != "" {
		s, err := surface.OpenNamed(o.backend, sopts)
		return s, o.backend, err
	}
	Logger().Debug("pxl: selecting backend", "candidates", surface.Available())
	return surface.Open(sopts)
}

// Width returns the canvas width in pixels.
func (cv *Canvas) Width() int {
	return cv.width
}

// Height returns the canvas height in pixels.
func (cv *Canvas) Height() int {
	return cv.height
}

// Background returns the background color.
func (cv *Canvas) Background() Color {
	return cv.background
}

// SetBackground changes the background color. The buffer is not touched;
// the new color applies from the next ResetFrame, Resize or ClearFrame.
func (cv *Canvas) SetBackground(col Color) {
	cv.background = col
}

// Surface returns the presentation surface.
func (cv *Canvas) Surface() surface.Surface {
	return cv.surf
}

// DrawPixel sets the pixel at (x, y). Positions outside the canvas are
// ignored.
func (cv *Canvas) DrawPixel(x, y int, col Color) {
	cv.pix.set(x, y, col)
}

// Pixel returns the buffer color at (x, y). ok is false outside the canvas.
func (cv *Canvas) Pixel(x, y int) (col Color, ok bool) {
	return cv.pix.get(x, y)
}

// DrawLine draws a line from start to end with both endpoints included.
func (cv *Canvas) DrawLine(start, end Point, col Color) {
	raster.Line(cv.brush(col), start.raster(), end.raster())
}

// DrawTriangle draws the triangle outline as the lines a-b, b-c and c-a.
func (cv *Canvas) DrawTriangle(a, b, c Point, col Color) {
	cv.DrawLine(a, b, col)
	cv.DrawLine(b, c, col)
	cv.DrawLine(c, a, col)
}

// FillTriangle fills the triangle a, b, c, including its edges and
// vertices. Vertex order does not matter and degenerate triangles
// (collinear or coincident vertices) fill the covered pixels.
func (cv *Canvas) FillTriangle(a, b, c Point, col Color) {
	raster.FillTriangle(cv.brush(col), a.raster(), b.raster(), c.raster())
}

// ResetFrame sets every pixel of a freshly allocated buffer to the
// background color.
func (cv *Canvas) ResetFrame() {
	cv.pix = newPixmap(cv.width, cv.height, cv.background)
}

// Render copies the buffer into the surface frame and presents it.
//
// On failure the error wraps ErrRenderFailure and the buffer is left as it
// was, so Render may be called again.
func (cv *Canvas) Render() error {
	if cv.closed {
		return ErrCanvasClosed
	}
	frame, err := cv.frame()
	if err != nil {
		return err
	}
	cv.pix.writeFrame(frame)
	if err := cv.present(); err != nil {
		return err
	}
	Logger().Debug("pxl: frame rendered", "width", cv.width, "height", cv.height)
	return nil
}

// ClearFrame fills the surface frame with the background color and
// presents it. The buffer is not touched, so the next Render shows the
// drawing again.
func (cv *Canvas) ClearFrame() error {
	if cv.closed {
		return ErrCanvasClosed
	}
	frame, err := cv.frame()
	if err != nil {
		return err
	}
	bg := cv.background.Bytes()
	for i := 0; i+4 <= len(frame); i += 4 {
		copy(frame[i:i+4], bg[:])
	}
	return cv.present()
}

// Resize changes the canvas dimensions and reallocates the buffer filled
// with the background color, then resizes the surface.
//
// The new dimensions take effect even when the surface fails to resize;
// that failure is returned wrapped in ErrRenderFailure.
func (cv *Canvas) Resize(width, height int) error {
	if cv.closed {
		return ErrCanvasClosed
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	cv.width = width
	cv.height = height
	cv.pix = newPixmap(width, height, cv.background)
	Logger().Debug("pxl: canvas resized", "width", width, "height", height)

	if err := cv.surf.Resize(width, height); err != nil {
		Logger().Error("pxl: surface resize failed", "width", width, "height", height, "err", err)
		return fmt.Errorf("%w: surface resize: %w", ErrRenderFailure, err)
	}
	return nil
}

// Image returns a copy of the buffer as an image.
func (cv *Canvas) Image() *image.NRGBA {
	return cv.pix.toImage()
}

// SavePNG writes the buffer to a PNG file.
func (cv *Canvas) SavePNG(path string) error {
	if err := cv.pix.savePNG(path); err != nil {
		return fmt.Errorf("pxl: save %s: %w", path, err)
	}
	return nil
}

// Close closes the surface. Close is idempotent; the buffer stays
// readable but Render, ClearFrame and Resize return ErrCanvasClosed.
func (cv *Canvas) Close() error {
	if cv.closed {
		return nil
	}
	cv.closed = true
	if err := cv.surf.Close(); err != nil {
		Logger().Warn("pxl: surface close failed", "err", err)
		return err
	}
	return nil
}

func (cv *Canvas) String() string {
	return fmt.Sprintf("pxl.Canvas{%dx%d, background=%s, backend=%s}",
		cv.width, cv.height, cv.background, cv.backend)
}

// frame returns the surface frame, checking that it matches the buffer.
func (cv *Canvas) frame() ([]byte, error) {
	frame := cv.surf.Frame()
	if want := surface.FrameSize(cv.width, cv.height); len(frame) != want {
		err := fmt.Errorf("%w: frame is %d bytes, want %d", ErrRenderFailure, len(frame), want)
		Logger().Error("pxl: frame size mismatch", "got", len(frame), "want", want)
		return nil, err
	}
	return frame, nil
}

func (cv *Canvas) present() error {
	if err := cv.surf.Present(); err != nil {
		Logger().Error("pxl: present failed", "err", err)
		return fmt.Errorf("%w: %w", ErrRenderFailure, err)
	}
	return nil
}

// brush adapts the canvas to raster.SpanPlotter for a single color.
type brush struct {
	c   *Canvas
	col Color
}

func (cv *Canvas) brush(col Color) brush {
	return brush{c: cv, col: col}
}

// Plot implements raster.Plotter.
func (b brush) Plot(x, y int) {
	b.c.DrawPixel(x, y, b.col)
}

// PlotSpan implements raster.SpanPlotter.
func (b brush) PlotSpan(x0, x1, y int) {
	b.c.pix.span(x0, x1, y, b.col)
}
