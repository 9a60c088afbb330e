package main

import (
	"fmt"
	"image"

	"github.com/golang/freetype/truetype"
	"github.com/skip2/go-qrcode"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/pxl"
)

var (
	orange = pxl.MustHex("ff8c1aff")
	teal   = pxl.MustHex("1ac6b0ff")
	violet = pxl.MustHex("8a5cf5ff")
	grey   = pxl.MustHex("5a6478ff")
)

// drawScene draws the demo picture scaled to the canvas size.
func drawScene(d pxl.Drawer) {
	w, h := d.Width(), d.Height()
	at := func(fx, fy int) pxl.Point {
		return pxl.Pt(fx*(w-1)/100, fy*(h-1)/100)
	}

	// Frame.
	d.DrawLine(at(0, 0), at(100, 0), grey)
	d.DrawLine(at(100, 0), at(100, 100), grey)
	d.DrawLine(at(100, 100), at(0, 100), grey)
	d.DrawLine(at(0, 100), at(0, 0), grey)

	// Fan of lines covering every octant.
	center := at(25, 40)
	for _, p := range []pxl.Point{
		at(45, 40), at(45, 20), at(25, 10), at(5, 20),
		at(5, 40), at(5, 60), at(25, 70), at(45, 60),
	} {
		d.DrawLine(center, p, teal)
	}

	// Flat-bottom, flat-top and general filled triangles, each outlined.
	d.FillTriangle(at(60, 10), at(50, 40), at(70, 40), orange)
	d.FillTriangle(at(75, 10), at(95, 10), at(85, 40), violet)
	d.FillTriangle(at(65, 50), at(52, 70), at(94, 90), teal)
	d.DrawTriangle(at(65, 50), at(52, 70), at(94, 90), pxl.White)

	// Triangles reaching past the edges are clipped.
	d.FillTriangle(at(90, 95), pxl.Pt(w+20, h-1), pxl.Pt(w-1, h+20), orange)
}

// drawQR draws payload as a QR code in the top-right corner, one pixel
// per module, using two filled triangles per dark module.
func drawQR(d pxl.Drawer, payload string, col pxl.Color) error {
	code, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		return err
	}
	code.DisableBorder = true
	bitmap := code.Bitmap()
	if len(bitmap) == 0 {
		return nil
	}

	size := len(bitmap)
	module := max(1, min(d.Width(), d.Height())/(3*size))
	origin := pxl.Pt(d.Width()-size*module-2, 2)
	if origin.X < 0 {
		return fmt.Errorf("pxdemo: canvas too small for a %dx%d QR code", size, size)
	}
	for y, row := range bitmap {
		for x, dark := range row {
			if !dark {
				continue
			}
			tl := origin.Add(pxl.Pt(x*module, y*module))
			br := tl.Add(pxl.Pt(module-1, module-1))
			d.FillTriangle(tl, pxl.Pt(br.X, tl.Y), pxl.Pt(tl.X, br.Y), col)
			d.FillTriangle(br, pxl.Pt(br.X, tl.Y), pxl.Pt(tl.X, br.Y), col)
		}
	}
	return nil
}

// labelFace returns Go Regular at the requested pixel height, or the 7x13
// bitmap face when the TrueType font cannot be parsed.
func labelFace(px int) font.Face {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		pxl.Logger().Warn("pxdemo: truetype parse failed, using basicfont", "err", err)
		return basicfont.Face7x13
	}
	return truetype.NewFace(f, &truetype.Options{Size: float64(px), DPI: 72, Hinting: font.HintingFull})
}

// drawLabel stamps text with its baseline at origin. Glyph coverage is
// thresholded so every written pixel is fully col.
func drawLabel(d pxl.Drawer, text string, origin pxl.Point, col pxl.Color) error {
	face := labelFace(max(8, d.Height()/8))
	defer face.Close()

	mask := image.NewAlpha(image.Rect(0, 0, d.Width(), d.Height()))
	drawer := &font.Drawer{
		Dst:  mask,
		Src:  image.Opaque,
		Face: face,
		Dot:  fixed.P(origin.X, origin.Y),
	}
	if drawer.MeasureString(text).Ceil() > d.Width()-origin.X {
		return fmt.Errorf("pxdemo: label %q does not fit in %d pixels", text, d.Width())
	}
	drawer.DrawString(text)

	for y := 0; y < d.Height(); y++ {
		for x := 0; x < d.Width(); x++ {
			if mask.AlphaAt(x, y).A >= 0x80 {
				d.DrawPixel(x, y, col)
			}
		}
	}
	return nil
}
