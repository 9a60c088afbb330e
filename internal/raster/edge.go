package raster

// edgeWalker follows one triangle edge upwards through the scanlines and
// reports the pixel run the edge covers on each of them.
//
// Shallow edges put several pixels on the same row and steep edges put one
// pixel per row. Querying every edge by row, instead of by step index,
// keeps edges of different lengths on the same scanline. The pixels are
// exactly those Line plots for the same endpoints, in either order.
type edgeWalker struct {
	s   lineStepper
	cur Point
	ok  bool

	// last row reported, so the row where two fill passes meet can be
	// asked for twice.
	rowY       int
	rowLo      int
	rowHi      int
	rowFound   bool
	rowVisited bool
}

func newEdgeWalker(a, b Point) *edgeWalker {
	w := &edgeWalker{s: newLineStepper(a, b)}
	w.cur, w.ok = w.s.next()
	return w
}

// row returns the x extent of the edge pixels on scanline y. Rows must be
// queried in ascending order; a repeated query returns the same run.
// found is false when the edge has no pixel on y.
func (w *edgeWalker) row(y int) (minX, maxX int, found bool) {
	if w.rowVisited && w.rowY == y {
		return w.rowLo, w.rowHi, w.rowFound
	}
	for w.ok && w.cur.Y < y {
		w.cur, w.ok = w.s.next()
	}
	for w.ok && w.cur.Y == y {
		if !found {
			minX, maxX, found = w.cur.X, w.cur.X, true
		} else {
			minX = min(minX, w.cur.X)
			maxX = max(maxX, w.cur.X)
		}
		w.cur, w.ok = w.s.next()
	}
	w.rowY, w.rowLo, w.rowHi, w.rowFound, w.rowVisited = y, minX, maxX, found, true
	return minX, maxX, found
}
