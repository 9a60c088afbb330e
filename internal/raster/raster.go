// Package raster provides integer scan conversion for lines and triangles.
//
// Coordinates are whole pixel positions. Nothing in this package clips:
// every produced pixel goes to a Plotter, which drops positions outside
// its own bounds.
package raster

import "fmt"

// Point is an integer pixel position (internal copy to avoid import cycle).
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Plotter receives the pixels produced by the scan converters.
type Plotter interface {
	Plot(x, y int)
}

// SpanPlotter is an optional interface for plotters that can write a
// horizontal run in one call. Both x0 and x1 are inclusive and x0 <= x1.
// The run may extend past the plotter's bounds.
type SpanPlotter interface {
	Plotter
	PlotSpan(x0, x1, y int)
}

// PlotterFunc adapts an ordinary function to the Plotter interface.
type PlotterFunc func(x, y int)

// Plot calls f(x, y).
func (f PlotterFunc) Plot(x, y int) { f(x, y) }

// span plots the inclusive run between x0 and x1 on row y.
func span(dst Plotter, x0, x1, y int) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if sp, ok := dst.(SpanPlotter); ok {
		sp.PlotSpan(x0, x1, y)
		return
	}
	for x := x0; x <= x1; x++ {
		dst.Plot(x, y)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// floorDiv returns floor(a / b). b must not be zero.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
