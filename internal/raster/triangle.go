package raster

import (
	"cmp"
	"slices"
)

// Shape classifies a triangle whose vertices are already sorted by
// SortVertices.
type Shape int

const (
	// ShapeDegenerate has every vertex on one scanline.
	ShapeDegenerate Shape = iota
	// ShapeFlatTop has the top and middle vertices on one scanline.
	ShapeFlatTop
	// ShapeFlatBottom has the middle and bottom vertices on one scanline.
	ShapeFlatBottom
	// ShapeGeneral has three distinct scanlines and is split in two.
	ShapeGeneral
)

// String returns a human-readable name for the shape.
func (s Shape) String() string {
	switch s {
	case ShapeDegenerate:
		return "Degenerate"
	case ShapeFlatTop:
		return "FlatTop"
	case ShapeFlatBottom:
		return "FlatBottom"
	case ShapeGeneral:
		return "General"
	default:
		return "Unknown"
	}
}

// SortVertices orders three vertices by descending y. Vertices on the same
// row are ordered by ascending x.
func SortVertices(a, b, c Point) (top, mid, bottom Point) {
	v := [3]Point{a, b, c}
	slices.SortStableFunc(v[:], func(p, q Point) int {
		if p.Y != q.Y {
			return cmp.Compare(q.Y, p.Y)
		}
		return cmp.Compare(p.X, q.X)
	})
	return v[0], v[1], v[2]
}

// Classify reports which fill strategy applies to a sorted triangle.
// The checks run in order, so a triangle with all three vertices on one
// row is degenerate rather than flat.
func Classify(top, mid, bottom Point) Shape {
	switch {
	case top.Y == bottom.Y:
		return ShapeDegenerate
	case mid.Y == top.Y:
		return ShapeFlatTop
	case mid.Y == bottom.Y:
		return ShapeFlatBottom
	default:
		return ShapeGeneral
	}
}

// SplitPoint returns the point on the long edge top-bottom that lies on
// the middle vertex's row. The x coordinate is rounded down. top and
// bottom must be on different rows.
func SplitPoint(top, mid, bottom Point) Point {
	dy := bottom.Y - top.Y
	num := (mid.Y - top.Y) * (bottom.X - top.X)
	return Point{X: top.X + floorDiv(num, dy), Y: mid.Y}
}

// FillTriangle plots every pixel covered by the triangle a, b, c,
// including its vertices and boundary rows.
//
// Each row is filled between the outermost pixels that Line plots for the
// triangle's edges on that row. The fill therefore contains the outline
// drawn by Triangle, and two triangles sharing an edge both cover every
// pixel of that edge, leaving no seam between them.
//
// A general triangle is split at the middle vertex's row into a flat-top
// and a flat-bottom half. The long edge is walked once across both halves
// and the row where they meet is plotted by both.
func FillTriangle(dst Plotter, a, b, c Point) {
	top, mid, bottom := SortVertices(a, b, c)
	switch Classify(top, mid, bottom) {
	case ShapeDegenerate:
		span(dst, min(a.X, b.X, c.X), max(a.X, b.X, c.X), top.Y)
	case ShapeFlatTop:
		// Apex at the bottom, base top-mid on the top row.
		fillRows(dst, bottom.Y, top.Y, newEdgeWalker(bottom, top), newEdgeWalker(bottom, mid))
	case ShapeFlatBottom:
		// Apex at the top, base mid-bottom on the bottom row.
		fillRows(dst, bottom.Y, top.Y, newEdgeWalker(bottom, top), newEdgeWalker(mid, top))
	default:
		p4 := SplitPoint(top, mid, bottom)
		long := newEdgeWalker(bottom, top)
		fillRows(dst, bottom.Y, p4.Y, long, newEdgeWalker(bottom, mid))
		fillRows(dst, p4.Y, top.Y, long, newEdgeWalker(mid, top))
	}
}

// fillRows fills scanlines y0 through y1 (y0 <= y1), both inclusive. Each
// row covers the union of the edges' runs on that row, and the edges are
// advanced together one scanline at a time.
func fillRows(dst Plotter, y0, y1 int, edges ...*edgeWalker) {
	for y := y0; y <= y1; y++ {
		lo, hi, found := 0, 0, false
		for _, e := range edges {
			eLo, eHi, ok := e.row(y)
			if !ok {
				continue
			}
			if !found {
				lo, hi, found = eLo, eHi, true
				continue
			}
			lo = min(lo, eLo)
			hi = max(hi, eHi)
		}
		if found {
			span(dst, lo, hi, y)
		}
	}
}
