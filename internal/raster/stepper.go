package raster

// lineStepper walks the Bresenham approximation of a segment one pixel at
// a time. Consecutive pixels are 8-connected and both endpoints are
// produced.
//
// The walk always starts at the endpoint with the smaller (y, x), so a
// segment covers the same pixels whichever way round its endpoints are
// given. Rows are visited in ascending order.
type lineStepper struct {
	x, y   int
	x1, y1 int
	dx, dy int // dx >= 0, dy <= 0
	sx     int
	err    int
	done   bool
}

func newLineStepper(p0, p1 Point) lineStepper {
	if p1.Y < p0.Y || (p1.Y == p0.Y && p1.X < p0.X) {
		p0, p1 = p1, p0
	}
	s := lineStepper{
		x:  p0.X,
		y:  p0.Y,
		x1: p1.X,
		y1: p1.Y,
		dx: abs(p1.X - p0.X),
		dy: -(p1.Y - p0.Y),
		sx: 1,
	}
	if p0.X > p1.X {
		s.sx = -1
	}
	s.err = s.dx + s.dy
	return s
}

// next returns the current pixel and advances. ok is false once the
// endpoint has already been returned.
func (s *lineStepper) next() (p Point, ok bool) {
	if s.done {
		return Point{}, false
	}
	p = Point{X: s.x, Y: s.y}
	if s.x == s.x1 && s.y == s.y1 {
		s.done = true
		return p, true
	}
	e2 := 2 * s.err
	if e2 >= s.dy {
		s.err += s.dy
		s.x += s.sx
	}
	if e2 <= s.dx {
		s.err += s.dx
		s.y++
	}
	return p, true
}

// Walk calls fn for every pixel of the Bresenham segment between p0 and
// p1, endpoints included. Pixels are visited from the endpoint with the
// smaller (y, x); swapping p0 and p1 visits the same pixels.
func Walk(p0, p1 Point, fn func(Point)) {
	s := newLineStepper(p0, p1)
	for p, ok := s.next(); ok; p, ok = s.next() {
		fn(p)
	}
}
