package pxl

// Drawer is the drawing contract implemented by Canvas.
//
// Coordinates are integer pixels with (0, 0) at the top-left. Drawing
// never fails: pixels outside the canvas are skipped. Only the operations
// that touch the presentation surface return errors.
type Drawer interface {
	// Width returns the canvas width in pixels.
	Width() int

	// Height returns the canvas height in pixels.
	Height() int

	// Render copies the buffer to the surface and presents it.
	Render() error

	// DrawPixel sets one pixel.
	DrawPixel(x, y int, c Color)

	// DrawLine draws a line with both endpoints included.
	DrawLine(start, end Point, c Color)

	// DrawTriangle draws the outline a-b, b-c, c-a.
	DrawTriangle(a, b, c Point, col Color)

	// FillTriangle fills the triangle a, b, c including its boundary.
	FillTriangle(a, b, c Point, col Color)

	// ClearFrame presents a background-only frame without touching the buffer.
	ClearFrame() error

	// ResetFrame sets every buffer cell back to the background color.
	ResetFrame()

	// Resize changes the canvas dimensions and resets the buffer.
	Resize(width, height int) error
}

var _ Drawer = (*Canvas)(nil)
