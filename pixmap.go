package pxl

import (
	"image"
	"image/png"
	"os"
)

// pixmap is the canvas's logical draw buffer: one Color per cell in
// row-major order. Every cell always holds a defined color.
type pixmap struct {
	width  int
	height int
	cells  []Color
}

// newPixmap creates a pixmap with every cell set to bg.
func newPixmap(width, height int, bg Color) *pixmap {
	p := &pixmap{
		width:  width,
		height: height,
		cells:  make([]Color, width*height),
	}
	p.clear(bg)
	return p
}

func (p *pixmap) in(x, y int) bool {
	return x >= 0 && x < p.width && y >= 0 && y < p.height
}

// set writes one cell. Out-of-range positions are ignored.
func (p *pixmap) set(x, y int, c Color) {
	if !p.in(x, y) {
		return
	}
	p.cells[y*p.width+x] = c
}

// get returns the cell at (x, y) and whether it is in range.
func (p *pixmap) get(x, y int) (Color, bool) {
	if !p.in(x, y) {
		return Color{}, false
	}
	return p.cells[y*p.width+x], true
}

// span writes the inclusive run [x0, x1] on row y, clipped to the buffer.
func (p *pixmap) span(x0, x1, y int, c Color) {
	if y < 0 || y >= p.height {
		return
	}
	x0 = max(x0, 0)
	x1 = min(x1, p.width-1)
	if x0 > x1 {
		return
	}
	row := p.cells[y*p.width : (y+1)*p.width]
	for x := x0; x <= x1; x++ {
		row[x] = c
	}
}

// clear fills the entire pixmap with a color.
func (p *pixmap) clear(c Color) {
	for i := range p.cells {
		p.cells[i] = c
	}
}

// writeFrame copies the cells into an RGBA byte frame of matching size.
func (p *pixmap) writeFrame(frame []byte) {
	for i, c := range p.cells {
		b := c.Bytes()
		copy(frame[i*4:i*4+4], b[:])
	}
}

// toImage converts the pixmap to an image.NRGBA.
func (p *pixmap) toImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	p.writeFrame(img.Pix)
	return img
}

// savePNG saves the pixmap to a PNG file.
func (p *pixmap) savePNG(path string) (err error) {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return png.Encode(f, p.toImage())
}
