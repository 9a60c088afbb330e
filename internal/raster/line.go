package raster

// Line plots the segment from p0 to p1 with both ends included.
//
// Horizontal and vertical segments are emitted as exact runs. Every other
// slope follows the Bresenham error accumulator, so the result never has
// gaps regardless of octant or direction.
func Line(dst Plotter, p0, p1 Point) {
	switch {
	case p0.Y == p1.Y:
		span(dst, p0.X, p1.X, p0.Y)
	case p0.X == p1.X:
		y0, y1 := min(p0.Y, p1.Y), max(p0.Y, p1.Y)
		for y := y0; y <= y1; y++ {
			dst.Plot(p0.X, y)
		}
	default:
		Walk(p0, p1, func(p Point) { dst.Plot(p.X, p.Y) })
	}
}

// Triangle plots the three edges a-b, b-c and c-a.
func Triangle(dst Plotter, a, b, c Point) {
	Line(dst, a, b)
	Line(dst, b, c)
	Line(dst, c, a)
}
