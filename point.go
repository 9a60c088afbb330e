package pxl

import (
	"fmt"

	"github.com/gogpu/pxl/internal/raster"
)

// Point is an integer pixel position. (0, 0) is the top-left pixel;
// x grows to the right and y grows downward.
//
// Points may lie outside the canvas, including negative coordinates.
// Drawing operations simply skip the pixels that fall outside.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// In reports whether p lies inside a width x height canvas.
func (p Point) In(width, height int) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < width && p.Y < height
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

func (p Point) raster() raster.Point {
	return raster.Point{X: p.X, Y: p.Y}
}
